package treasury

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// PaymentUseCase registra pagos asociados a facturas de venta. Los pagos
// no mueven el saldo: el efecto de caja ocurre al crear la factura.
type PaymentUseCase struct {
	paymentRepo repository.PaymentRepository
	invoiceRepo repository.SaleInvoiceRepository
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(paymentRepo repository.PaymentRepository, invoiceRepo repository.SaleInvoiceRepository) *PaymentUseCase {
	return &PaymentUseCase{paymentRepo: paymentRepo, invoiceRepo: invoiceRepo}
}

// Create registra un pago contra una factura existente del mismo tenant.
func (uc *PaymentUseCase) Create(scope access.Scope, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	tenantID, err := scope.WriteTenant(in.TenantID)
	if err != nil {
		return nil, err
	}
	if in.InvoiceID == "" || in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(in.InvoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	paymentDate := in.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}
	payment := &entity.Payment{
		ID:            uuid.New().String(),
		TenantID:      tenantID,
		InvoiceID:     in.InvoiceID,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Reference:     in.Reference,
		PaymentDate:   paymentDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.paymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// GetByID carga un pago validando el alcance del actor.
func (uc *PaymentUseCase) GetByID(scope access.Scope, id string) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil || payment == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(payment.TenantID); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Update modifica campos del pago. Sin efecto de saldo.
func (uc *PaymentUseCase) Update(scope access.Scope, id string, in dto.UpdatePaymentRequest) (*dto.PaymentResponse, error) {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil || payment == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(payment.TenantID); err != nil {
		return nil, err
	}
	if in.Amount != nil {
		if in.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		payment.Amount = *in.Amount
	}
	if in.PaymentMethod != nil {
		payment.PaymentMethod = *in.PaymentMethod
	}
	if in.Reference != nil {
		payment.Reference = *in.Reference
	}
	if in.PaymentDate != nil {
		payment.PaymentDate = *in.PaymentDate
	}
	payment.UpdatedAt = time.Now()
	if err := uc.paymentRepo.Update(payment); err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// Delete elimina el pago. Sin efecto de saldo.
func (uc *PaymentUseCase) Delete(scope access.Scope, id string) error {
	payment, err := uc.paymentRepo.GetByID(id)
	if err != nil || payment == nil {
		return domain.ErrNotFound
	}
	if err := scope.CanMutate(payment.TenantID); err != nil {
		return err
	}
	return uc.paymentRepo.Delete(payment.ID)
}

// List pagos del alcance del actor.
func (uc *PaymentUseCase) List(scope access.Scope, tenantID string, page dto.PageRequest) (*dto.PaymentListResponse, error) {
	page.DefaultPage()
	payments, err := uc.paymentRepo.List(scope.TenantFilter(tenantID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.PaymentListResponse{
		Items: make([]dto.PaymentResponse, 0, len(payments)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, payment := range payments {
		out.Items = append(out.Items, *toPaymentResponse(payment))
	}
	return out, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            p.ID,
		TenantID:      p.TenantID,
		InvoiceID:     p.InvoiceID,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		PaymentDate:   p.PaymentDate,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
