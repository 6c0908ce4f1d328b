package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
	"github.com/jhoicas/axia-erp/pkg/logger"
)

// SaleInvoiceUseCase orquesta el ciclo de vida de las facturas de venta.
//
// Reglas de consistencia: crear la factura descuenta TotalPrice del
// saldo de la empresa en la misma transacción; actualizar o eliminar no
// vuelve a tocar el saldo. El stock de productos no se descuenta al
// vender; solo se restaura al eliminar líneas o la factura completa.
type SaleInvoiceUseCase struct {
	txRunner    TxRunner
	invoiceRepo repository.SaleInvoiceRepository
	clientRepo  repository.ClientRepository
	companyRepo repository.CompanyRepository
	productRepo repository.ProductRepository
	publisher   ElectronicBillPublisher
	log         *logger.Logger
}

// NewSaleInvoiceUseCase construye el caso de uso.
func NewSaleInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.SaleInvoiceRepository,
	clientRepo repository.ClientRepository,
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
	publisher ElectronicBillPublisher,
	log *logger.Logger,
) *SaleInvoiceUseCase {
	return &SaleInvoiceUseCase{
		txRunner:    txRunner,
		invoiceRepo: invoiceRepo,
		clientRepo:  clientRepo,
		companyRepo: companyRepo,
		productRepo: productRepo,
		publisher:   publisher,
		log:         log,
	}
}

// Create crea la factura con sus líneas y descuenta TotalPrice del saldo,
// todo en una transacción. Si ElectronicBill está activo, publica el XML
// después del commit; un fallo ahí solo se registra.
func (uc *SaleInvoiceUseCase) Create(ctx context.Context, scope access.Scope, in dto.CreateSaleInvoiceRequest) (*dto.SaleInvoiceResponse, error) {
	tenantID, err := scope.WriteTenant(in.TenantID)
	if err != nil {
		return nil, err
	}
	if in.ClientID == "" {
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

	// Validar productos fuera de la transacción (solo lectura).
	products := make(map[string]*entity.Product, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		if product.TenantID != tenantID {
			return nil, domain.ErrForbidden
		}
		products[item.ProductID] = product
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	inv := &entity.SaleInvoice{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		ClientID:       in.ClientID,
		Date:           date,
		TotalPrice:     in.TotalPrice,
		ElectronicBill: in.ElectronicBill,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	items := make([]*entity.SaleInvoiceItem, 0, len(in.Items))
	for _, item := range in.Items {
		items = append(items, &entity.SaleInvoiceItem{
			ID:        uuid.New().String(),
			TenantID:  tenantID,
			InvoiceID: inv.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			CreatedAt: now,
		})
	}

	err = uc.txRunner.RunSales(ctx, func(
		invoiceRepo repository.SaleInvoiceRepository,
		_ repository.ProductRepository,
		companyRepo repository.CompanyRepository,
	) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		// La venta descuenta caja una sola vez, al crear.
		return companyRepo.AdjustBalance(tenantID, inv.TotalPrice.Neg())
	})
	if err != nil {
		return nil, err
	}

	if inv.ElectronicBill {
		if perr := uc.publisher.Publish(ctx, inv, items, client, company, products); perr != nil {
			uc.log.Warn().Err(perr).Str("invoice_id", inv.ID).Msg("factura electrónica no generada")
		}
	}

	return toSaleInvoiceResponse(inv, items), nil
}

// GetByID carga la factura con sus líneas, validando el alcance del actor.
func (uc *SaleInvoiceUseCase) GetByID(scope access.Scope, id string) (*dto.SaleInvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(inv.TenantID); err != nil {
		return nil, err
	}
	items, err := uc.invoiceRepo.ListItems(inv.ID)
	if err != nil {
		return nil, err
	}
	return toSaleInvoiceResponse(inv, items), nil
}

// Update reemplaza cabecera y, si vienen, las líneas completas. No toca
// el saldo ni el stock: el efecto de caja ya ocurrió al crear.
func (uc *SaleInvoiceUseCase) Update(ctx context.Context, scope access.Scope, id string, in dto.UpdateSaleInvoiceRequest) (*dto.SaleInvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(inv.TenantID); err != nil {
		return nil, err
	}
	wasElectronic := inv.ElectronicBill

	if in.ClientID != nil {
		client, err := uc.clientRepo.GetByID(*in.ClientID)
		if err != nil || client == nil {
			return nil, domain.ErrNotFound
		}
		if client.TenantID != inv.TenantID {
			return nil, domain.ErrForbidden
		}
		inv.ClientID = *in.ClientID
	}
	if in.Date != nil {
		inv.Date = *in.Date
	}
	if in.TotalPrice != nil {
		inv.TotalPrice = *in.TotalPrice
	}
	if in.ElectronicBill != nil {
		inv.ElectronicBill = *in.ElectronicBill
	}
	now := time.Now()
	inv.UpdatedAt = now

	var newItems []*entity.SaleInvoiceItem
	if in.Items != nil {
		for _, item := range in.Items {
			if item.ProductID == "" || item.Quantity < 1 {
				return nil, domain.ErrInvalidInput
			}
			product, err := uc.productRepo.GetByID(item.ProductID)
			if err != nil || product == nil {
				return nil, domain.ErrNotFound
			}
			if product.TenantID != inv.TenantID {
				return nil, domain.ErrForbidden
			}
			newItems = append(newItems, &entity.SaleInvoiceItem{
				ID:        uuid.New().String(),
				TenantID:  inv.TenantID,
				InvoiceID: inv.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				CreatedAt: now,
			})
		}
	}

	err = uc.txRunner.RunSales(ctx, func(
		invoiceRepo repository.SaleInvoiceRepository,
		_ repository.ProductRepository,
		_ repository.CompanyRepository,
	) error {
		if err := invoiceRepo.Update(inv); err != nil {
			return err
		}
		if in.Items == nil {
			return nil
		}
		if err := invoiceRepo.DeleteItems(inv.ID); err != nil {
			return err
		}
		for _, item := range newItems {
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if newItems == nil {
		items, err := uc.invoiceRepo.ListItems(inv.ID)
		if err != nil {
			return nil, err
		}
		newItems = items
	}

	resp := toSaleInvoiceResponse(inv, newItems)
	// La transición a factura electrónica publica el XML; sin líneas no
	// hay nada que publicar y el cambio queda avisado en la respuesta.
	if !wasElectronic && inv.ElectronicBill {
		if len(newItems) == 0 {
			resp.Warning = "factura electrónica activada sin líneas; el XML no se generó"
		} else if perr := uc.publishExisting(ctx, inv, newItems); perr != nil {
			uc.log.Warn().Err(perr).Str("invoice_id", inv.ID).Msg("factura electrónica no generada")
		}
	}
	return resp, nil
}

func (uc *SaleInvoiceUseCase) publishExisting(ctx context.Context, inv *entity.SaleInvoice, items []*entity.SaleInvoiceItem) error {
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil || client == nil {
		return domain.ErrNotFound
	}
	company, err := uc.companyRepo.GetByID(inv.TenantID)
	if err != nil || company == nil {
		return domain.ErrNotFound
	}
	products := make(map[string]*entity.Product, len(items))
	for _, item := range items {
		if product, err := uc.productRepo.GetByID(item.ProductID); err == nil && product != nil {
			products[item.ProductID] = product
		}
	}
	return uc.publisher.Publish(ctx, inv, items, client, company, products)
}

// Delete elimina la factura: restaura el stock de cada línea, borra las
// líneas y luego la cabecera, en una transacción. El saldo no cambia.
func (uc *SaleInvoiceUseCase) Delete(ctx context.Context, scope access.Scope, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return domain.ErrNotFound
	}
	if err := scope.CanMutate(inv.TenantID); err != nil {
		return err
	}
	return uc.txRunner.RunSales(ctx, func(
		invoiceRepo repository.SaleInvoiceRepository,
		productRepo repository.ProductRepository,
		_ repository.CompanyRepository,
	) error {
		items, err := invoiceRepo.ListItems(inv.ID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		}
		if err := invoiceRepo.DeleteItems(inv.ID); err != nil {
			return err
		}
		return invoiceRepo.Delete(inv.ID)
	})
}

// List facturas del alcance del actor, paginadas.
func (uc *SaleInvoiceUseCase) List(scope access.Scope, tenantID string, page dto.PageRequest) (*dto.SaleInvoiceListResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.List(scope.TenantFilter(tenantID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toSaleInvoiceList(invoices, page), nil
}

// ListPublic listado limitado sin autenticación (vitrina pública).
func (uc *SaleInvoiceUseCase) ListPublic() (*dto.SaleInvoiceListResponse, error) {
	invoices, err := uc.invoiceRepo.ListPublic(20)
	if err != nil {
		return nil, err
	}
	return toSaleInvoiceList(invoices, dto.PageRequest{Limit: 20}), nil
}

// SearchByDateRange facturas emitidas dentro del rango [from, to].
func (uc *SaleInvoiceUseCase) SearchByDateRange(scope access.Scope, tenantID string, from, to time.Time) (*dto.SaleInvoiceListResponse, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	invoices, err := uc.invoiceRepo.SearchByDateRange(scope.TenantFilter(tenantID), from, to)
	if err != nil {
		return nil, err
	}
	return toSaleInvoiceList(invoices, dto.PageRequest{}), nil
}

// SearchByClientName facturas cuyo cliente coincide con el nombre.
func (uc *SaleInvoiceUseCase) SearchByClientName(scope access.Scope, tenantID, name string) (*dto.SaleInvoiceListResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	invoices, err := uc.invoiceRepo.SearchByClientName(scope.TenantFilter(tenantID), name)
	if err != nil {
		return nil, err
	}
	return toSaleInvoiceList(invoices, dto.PageRequest{}), nil
}

func toSaleInvoiceResponse(inv *entity.SaleInvoice, items []*entity.SaleInvoiceItem) *dto.SaleInvoiceResponse {
	resp := &dto.SaleInvoiceResponse{
		ID:             inv.ID,
		TenantID:       inv.TenantID,
		ClientID:       inv.ClientID,
		Date:           inv.Date,
		TotalPrice:     inv.TotalPrice,
		ElectronicBill: inv.ElectronicBill,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        item.ID,
			InvoiceID: item.InvoiceID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return resp
}

func toSaleInvoiceList(invoices []*entity.SaleInvoice, page dto.PageRequest) *dto.SaleInvoiceListResponse {
	out := &dto.SaleInvoiceListResponse{
		Items: make([]dto.SaleInvoiceResponse, 0, len(invoices)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, inv := range invoices {
		out.Items = append(out.Items, *toSaleInvoiceResponse(inv, nil))
	}
	return out
}
