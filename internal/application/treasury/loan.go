package treasury

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// LoanUseCase gestiona préstamos de caja a clientes.
//
// Reglas de saldo: crear pendiente resta Amount (el dinero sale de la
// caja); marcar devuelto suma Amount; volver a pendiente resta de nuevo;
// eliminar un préstamo pendiente devuelve Amount; eliminar uno devuelto
// no afecta. Cambiar el estado al mismo valor no tiene efecto.
type LoanUseCase struct {
	txRunner    TxRunner
	loanRepo    repository.LoanRepository
	clientRepo  repository.ClientRepository
	companyRepo repository.CompanyRepository
	receipts    LoanReceiptPDFGenerator
}

// NewLoanUseCase construye el caso de uso.
func NewLoanUseCase(
	txRunner TxRunner,
	loanRepo repository.LoanRepository,
	clientRepo repository.ClientRepository,
	companyRepo repository.CompanyRepository,
	receipts LoanReceiptPDFGenerator,
) *LoanUseCase {
	return &LoanUseCase{
		txRunner:    txRunner,
		loanRepo:    loanRepo,
		clientRepo:  clientRepo,
		companyRepo: companyRepo,
		receipts:    receipts,
	}
}

// Create crea el préstamo con un snapshot del nombre e identificación
// del cliente. Si nace pendiente descuenta Amount del saldo.
func (uc *LoanUseCase) Create(ctx context.Context, scope access.Scope, in dto.CreateLoanRequest) (*dto.LoanResponse, error) {
	tenantID, err := scope.WriteTenant(in.TenantID)
	if err != nil {
		return nil, err
	}
	if in.ClientID == "" || in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(tenantID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if client.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	loan := &entity.Loan{
		ID:                   uuid.New().String(),
		TenantID:             tenantID,
		ClientID:             in.ClientID,
		ClientName:           client.FullName(),
		ClientIdentification: client.Identification,
		Amount:               in.Amount,
		Description:          in.Description,
		Status:               in.Status,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	err = uc.txRunner.RunTreasury(ctx, func(
		_ repository.SupplierDepositRepository,
		loanRepo repository.LoanRepository,
		companyRepo repository.CompanyRepository,
		_ repository.AuditRepository,
	) error {
		if err := loanRepo.Create(loan); err != nil {
			return err
		}
		if loan.Status {
			return nil // nació devuelto: sin efecto de caja
		}
		return companyRepo.AdjustBalance(tenantID, loan.Amount.Neg())
	})
	if err != nil {
		return nil, err
	}
	return toLoanResponse(loan), nil
}

// UpdateStatus cambia el estado del préstamo ajustando el saldo por
// ±Amount. Repetir el mismo estado no produce ningún efecto.
func (uc *LoanUseCase) UpdateStatus(ctx context.Context, scope access.Scope, id string, status bool) (*dto.LoanResponse, error) {
	loan, err := uc.loanRepo.GetByID(id)
	if err != nil || loan == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(loan.TenantID); err != nil {
		return nil, err
	}
	if loan.Status == status {
		return toLoanResponse(loan), nil
	}

	err = uc.txRunner.RunTreasury(ctx, func(
		_ repository.SupplierDepositRepository,
		loanRepo repository.LoanRepository,
		companyRepo repository.CompanyRepository,
		_ repository.AuditRepository,
	) error {
		if err := loanRepo.UpdateStatus(loan.ID, status); err != nil {
			return err
		}
		if status {
			// pendiente → devuelto: el dinero vuelve a la caja
			return companyRepo.AdjustBalance(loan.TenantID, loan.Amount)
		}
		// devuelto → pendiente: vuelve a salir
		return companyRepo.AdjustBalance(loan.TenantID, loan.Amount.Neg())
	})
	if err != nil {
		return nil, err
	}
	loan.Status = status
	loan.UpdatedAt = time.Now()
	return toLoanResponse(loan), nil
}

// Delete elimina el préstamo. Uno pendiente devuelve Amount a la caja;
// uno devuelto no toca el saldo (ya volvió al marcarlo).
func (uc *LoanUseCase) Delete(ctx context.Context, scope access.Scope, id string) error {
	loan, err := uc.loanRepo.GetByID(id)
	if err != nil || loan == nil {
		return domain.ErrNotFound
	}
	if err := scope.CanMutate(loan.TenantID); err != nil {
		return err
	}
	return uc.txRunner.RunTreasury(ctx, func(
		_ repository.SupplierDepositRepository,
		loanRepo repository.LoanRepository,
		companyRepo repository.CompanyRepository,
		_ repository.AuditRepository,
	) error {
		if err := loanRepo.Delete(loan.ID); err != nil {
			return err
		}
		if loan.Status {
			return nil
		}
		return companyRepo.AdjustBalance(loan.TenantID, loan.Amount)
	})
}

// GetByID carga un préstamo validando el alcance del actor.
func (uc *LoanUseCase) GetByID(scope access.Scope, id string) (*dto.LoanResponse, error) {
	loan, err := uc.loanRepo.GetByID(id)
	if err != nil || loan == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(loan.TenantID); err != nil {
		return nil, err
	}
	return toLoanResponse(loan), nil
}

// List préstamos del alcance del actor; status nil trae todos.
func (uc *LoanUseCase) List(scope access.Scope, tenantID string, status *bool) (*dto.LoanListResponse, error) {
	loans, err := uc.loanRepo.List(scope.TenantFilter(tenantID), status)
	if err != nil {
		return nil, err
	}
	return toLoanList(loans), nil
}

// ListByClient préstamos de un cliente del alcance del actor.
func (uc *LoanUseCase) ListByClient(scope access.Scope, clientID string) (*dto.LoanListResponse, error) {
	client, err := uc.clientRepo.GetByID(clientID)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(client.TenantID); err != nil {
		return nil, err
	}
	loans, err := uc.loanRepo.ListByClient(clientID)
	if err != nil {
		return nil, err
	}
	return toLoanList(loans), nil
}

// Stats agregados de préstamos por estado.
func (uc *LoanUseCase) Stats(scope access.Scope, tenantID string) (*dto.LoanStatsResponse, error) {
	stats, err := uc.loanRepo.Stats(scope.TenantFilter(tenantID))
	if err != nil {
		return nil, err
	}
	return &dto.LoanStatsResponse{
		TotalPending:        stats.TotalPending,
		TotalAmountPending:  stats.TotalAmountPending,
		TotalReturned:       stats.TotalReturned,
		TotalAmountReturned: stats.TotalAmountReturned,
	}, nil
}

// Report arma el reporte global de préstamos: totales por estado y, si
// se consulta una empresa concreta, su saldo actual.
func (uc *LoanUseCase) Report(scope access.Scope, tenantID string) (*dto.LoanReportResponse, error) {
	filter := scope.TenantFilter(tenantID)
	stats, err := uc.loanRepo.Stats(filter)
	if err != nil {
		return nil, err
	}
	loans, err := uc.loanRepo.List(filter, nil)
	if err != nil {
		return nil, err
	}

	resp := &dto.LoanReportResponse{
		GeneratedAt: time.Now(),
		Total:       len(loans),
		Summary: dto.LoanReportSummary{
			TotalAmount:    stats.TotalAmountPending.Add(stats.TotalAmountReturned),
			PendingAmount:  stats.TotalAmountPending,
			ReturnedAmount: stats.TotalAmountReturned,
			PendingCount:   stats.TotalPending,
			ReturnedCount:  stats.TotalReturned,
		},
		Loans: toLoanList(loans).Items,
	}
	if filter != "" {
		company, err := uc.companyRepo.GetByID(filter)
		if err != nil {
			return nil, err
		}
		if company != nil {
			resp.Company = &dto.LoanReportCompany{
				Name:           company.Name,
				CurrentBalance: company.CurrentBalance,
			}
		}
	}
	return resp, nil
}

// ReceiptPDF genera el comprobante PDF del préstamo.
func (uc *LoanUseCase) ReceiptPDF(scope access.Scope, id string) ([]byte, string, error) {
	loan, err := uc.loanRepo.GetByID(id)
	if err != nil || loan == nil {
		return nil, "", domain.ErrNotFound
	}
	if err := scope.CanMutate(loan.TenantID); err != nil {
		return nil, "", err
	}
	client, err := uc.clientRepo.GetByID(loan.ClientID)
	if err != nil || client == nil {
		return nil, "", domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(loan.TenantID)
	if err != nil || company == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.receipts.LoanReceiptPDF(loan, client, company)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: comprobante de préstamo: %w", err)
	}
	return pdf, fmt.Sprintf("prestamo_%s.pdf", loan.ID), nil
}

func toLoanResponse(loan *entity.Loan) *dto.LoanResponse {
	return &dto.LoanResponse{
		ID:                   loan.ID,
		TenantID:             loan.TenantID,
		ClientID:             loan.ClientID,
		ClientName:           loan.ClientName,
		ClientIdentification: loan.ClientIdentification,
		Amount:               loan.Amount,
		Description:          loan.Description,
		Status:               loan.Status,
		CreatedAt:            loan.CreatedAt,
		UpdatedAt:            loan.UpdatedAt,
	}
}

func toLoanList(loans []*entity.Loan) *dto.LoanListResponse {
	out := &dto.LoanListResponse{Items: make([]dto.LoanResponse, 0, len(loans))}
	for _, loan := range loans {
		out.Items = append(out.Items, *toLoanResponse(loan))
	}
	return out
}
