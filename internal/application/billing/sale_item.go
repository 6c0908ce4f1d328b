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
)

// Operaciones sobre líneas sueltas de facturas de venta. Crear o
// actualizar una línea no toca el stock; eliminarla lo restaura.

// AddItem agrega una línea a una factura existente.
func (uc *SaleInvoiceUseCase) AddItem(ctx context.Context, scope access.Scope, invoiceID string, in dto.SaleItemInput) (*dto.SaleItemResponse, error) {
	if in.ProductID == "" || in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil || inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(inv.TenantID); err != nil {
		return nil, err
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil || product == nil {
		return nil, domain.ErrNotFound
	}
	if product.TenantID != inv.TenantID {
		return nil, domain.ErrForbidden
	}
	item := &entity.SaleInvoiceItem{
		ID:        uuid.New().String(),
		TenantID:  inv.TenantID,
		InvoiceID: inv.ID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedAt: time.Now(),
	}
	if err := uc.invoiceRepo.CreateItem(item); err != nil {
		return nil, err
	}
	return &dto.SaleItemResponse{ID: item.ID, InvoiceID: item.InvoiceID, ProductID: item.ProductID, Quantity: item.Quantity}, nil
}

// UpdateItem cambia producto o cantidad de una línea. Sin efecto en stock.
func (uc *SaleInvoiceUseCase) UpdateItem(ctx context.Context, scope access.Scope, itemID string, in dto.UpdateSaleItemRequest) (*dto.SaleItemResponse, error) {
	item, err := uc.invoiceRepo.GetItem(itemID)
	if err != nil || item == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(item.TenantID); err != nil {
		return nil, err
	}
	if in.ProductID != nil {
		product, err := uc.productRepo.GetByID(*in.ProductID)
		if err != nil || product == nil {
			return nil, domain.ErrNotFound
		}
		if product.TenantID != item.TenantID {
			return nil, domain.ErrForbidden
		}
		item.ProductID = *in.ProductID
	}
	if in.Quantity != nil {
		if *in.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		item.Quantity = *in.Quantity
	}
	if err := uc.invoiceRepo.UpdateItem(item); err != nil {
		return nil, err
	}
	return &dto.SaleItemResponse{ID: item.ID, InvoiceID: item.InvoiceID, ProductID: item.ProductID, Quantity: item.Quantity}, nil
}

// RemoveItem elimina una línea y devuelve su cantidad al stock del
// producto, en una transacción.
func (uc *SaleInvoiceUseCase) RemoveItem(ctx context.Context, scope access.Scope, itemID string) error {
	item, err := uc.invoiceRepo.GetItem(itemID)
	if err != nil || item == nil {
		return domain.ErrNotFound
	}
	if err := scope.CanMutate(item.TenantID); err != nil {
		return err
	}
	return uc.txRunner.RunSales(ctx, func(
		invoiceRepo repository.SaleInvoiceRepository,
		productRepo repository.ProductRepository,
		_ repository.CompanyRepository,
	) error {
		if err := productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
			return err
		}
		return invoiceRepo.DeleteItem(item.ID)
	})
}
