package purchasing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// PurchaseInvoiceUseCase orquesta el ciclo de vida de las facturas de
// compra y la reconciliación de stock de sus líneas.
//
// Cada línea creada suma su cantidad al stock del producto; cada línea
// eliminada la resta. Reemplazar las líneas de una factura revierte
// primero todas las anteriores y aplica después las nuevas. Las facturas
// de compra nunca tocan el saldo de la empresa.
type PurchaseInvoiceUseCase struct {
	txRunner     TxRunner
	invoiceRepo  repository.PurchaseInvoiceRepository
	supplierRepo repository.SupplierRepository
	companyRepo  repository.CompanyRepository
	productRepo  repository.ProductRepository
}

// NewPurchaseInvoiceUseCase construye el caso de uso.
func NewPurchaseInvoiceUseCase(
	txRunner TxRunner,
	invoiceRepo repository.PurchaseInvoiceRepository,
	supplierRepo repository.SupplierRepository,
	companyRepo repository.CompanyRepository,
	productRepo repository.ProductRepository,
) *PurchaseInvoiceUseCase {
	return &PurchaseInvoiceUseCase{
		txRunner:     txRunner,
		invoiceRepo:  invoiceRepo,
		supplierRepo: supplierRepo,
		companyRepo:  companyRepo,
		productRepo:  productRepo,
	}
}

// Create crea la factura con sus líneas y suma cada cantidad al stock
// del producto correspondiente, en una transacción.
func (uc *PurchaseInvoiceUseCase) Create(ctx context.Context, scope access.Scope, in dto.CreatePurchaseInvoiceRequest) (*dto.PurchaseInvoiceResponse, error) {
	tenantID, err := scope.WriteTenant(in.TenantID)
	if err != nil {
		return nil, err
	}
	if in.SupplierID == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(tenantID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}
	if err := uc.validateItems(tenantID, in.Items); err != nil {
		return nil, err
	}

	now := time.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	inv := &entity.PurchaseInvoice{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		SupplierID: in.SupplierID,
		Date:       date,
		TotalPrice: in.TotalPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	items := buildPurchaseItems(inv, in.Items, now)

	err = uc.txRunner.RunPurchasing(ctx, func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := invoiceRepo.Create(inv); err != nil {
			return err
		}
		for _, item := range items {
			if err := productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
			if err := invoiceRepo.CreateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseInvoiceResponse(inv, items), nil
}

// GetByID carga la factura con sus líneas, validando el alcance del actor.
func (uc *PurchaseInvoiceUseCase) GetByID(scope access.Scope, id string) (*dto.PurchaseInvoiceResponse, error) {
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
	return toPurchaseInvoiceResponse(inv, items), nil
}

// Update reemplaza cabecera y, si viene lista de líneas, el set
// completo: revierte el stock de cada línea anterior, las borra, y crea
// las nuevas aplicando su stock. El efecto neto equivale a reemplazar el
// set atómicamente desde la óptica del inventario.
func (uc *PurchaseInvoiceUseCase) Update(ctx context.Context, scope access.Scope, id string, in dto.UpdatePurchaseInvoiceRequest) (*dto.PurchaseInvoiceResponse, error) {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(inv.TenantID); err != nil {
		return nil, err
	}

	if in.SupplierID != nil {
		supplier, err := uc.supplierRepo.GetByID(*in.SupplierID)
		if err != nil || supplier == nil {
			return nil, domain.ErrNotFound
		}
		if supplier.TenantID != inv.TenantID {
			return nil, domain.ErrForbidden
		}
		inv.SupplierID = *in.SupplierID
	}
	if in.Date != nil {
		inv.Date = *in.Date
	}
	if in.TotalPrice != nil {
		inv.TotalPrice = *in.TotalPrice
	}
	now := time.Now()
	inv.UpdatedAt = now

	var newItems []*entity.PurchaseInvoiceItem
	if in.Items != nil {
		if err := uc.validateItems(inv.TenantID, in.Items); err != nil {
			return nil, err
		}
		newItems = buildPurchaseItems(inv, in.Items, now)
	}

	err = uc.txRunner.RunPurchasing(ctx, func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := invoiceRepo.Update(inv); err != nil {
			return err
		}
		if in.Items == nil {
			return nil
		}
		// Revertir las líneas anteriores antes de aplicar las nuevas.
		previous, err := invoiceRepo.ListItems(inv.ID)
		if err != nil {
			return err
		}
		for _, item := range previous {
			if err := productRepo.AdjustStock(item.ProductID, -item.Quantity); err != nil {
				return err
			}
		}
		if err := invoiceRepo.DeleteItems(inv.ID); err != nil {
			return err
		}
		for _, item := range newItems {
			if err := productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
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
	return toPurchaseInvoiceResponse(inv, newItems), nil
}

// Delete elimina la factura revirtiendo el stock de cada línea, luego
// borra las líneas y la cabecera, en una transacción.
func (uc *PurchaseInvoiceUseCase) Delete(ctx context.Context, scope access.Scope, id string) error {
	inv, err := uc.invoiceRepo.GetByID(id)
	if err != nil || inv == nil {
		return domain.ErrNotFound
	}
	if err := scope.CanMutate(inv.TenantID); err != nil {
		return err
	}
	return uc.txRunner.RunPurchasing(ctx, func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		productRepo repository.ProductRepository,
	) error {
		items, err := invoiceRepo.ListItems(inv.ID)
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := productRepo.AdjustStock(item.ProductID, -item.Quantity); err != nil {
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
func (uc *PurchaseInvoiceUseCase) List(scope access.Scope, tenantID string, page dto.PageRequest) (*dto.PurchaseInvoiceListResponse, error) {
	page.DefaultPage()
	invoices, err := uc.invoiceRepo.List(scope.TenantFilter(tenantID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toPurchaseInvoiceList(invoices, page), nil
}

// ListPublic listado limitado sin autenticación.
func (uc *PurchaseInvoiceUseCase) ListPublic() (*dto.PurchaseInvoiceListResponse, error) {
	invoices, err := uc.invoiceRepo.ListPublic(20)
	if err != nil {
		return nil, err
	}
	return toPurchaseInvoiceList(invoices, dto.PageRequest{Limit: 20}), nil
}

func (uc *PurchaseInvoiceUseCase) validateItems(tenantID string, items []dto.PurchaseItemInput) error {
	for _, item := range items {
		if item.ProductID == "" || item.Quantity < 1 {
			return domain.ErrInvalidInput
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return domain.ErrNotFound
		}
		if product.TenantID != tenantID {
			return domain.ErrForbidden
		}
	}
	return nil
}

func buildPurchaseItems(inv *entity.PurchaseInvoice, inputs []dto.PurchaseItemInput, now time.Time) []*entity.PurchaseInvoiceItem {
	items := make([]*entity.PurchaseInvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, &entity.PurchaseInvoiceItem{
			ID:        uuid.New().String(),
			TenantID:  inv.TenantID,
			InvoiceID: inv.ID,
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			CreatedAt: now,
		})
	}
	return items
}

func toPurchaseInvoiceResponse(inv *entity.PurchaseInvoice, items []*entity.PurchaseInvoiceItem) *dto.PurchaseInvoiceResponse {
	resp := &dto.PurchaseInvoiceResponse{
		ID:         inv.ID,
		TenantID:   inv.TenantID,
		SupplierID: inv.SupplierID,
		Date:       inv.Date,
		TotalPrice: inv.TotalPrice,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ID:        item.ID,
			InvoiceID: item.InvoiceID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return resp
}

func toPurchaseInvoiceList(invoices []*entity.PurchaseInvoice, page dto.PageRequest) *dto.PurchaseInvoiceListResponse {
	out := &dto.PurchaseInvoiceListResponse{
		Items: make([]dto.PurchaseInvoiceResponse, 0, len(invoices)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, inv := range invoices {
		out.Items = append(out.Items, *toPurchaseInvoiceResponse(inv, nil))
	}
	return out
}
