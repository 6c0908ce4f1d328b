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

// Operaciones sobre líneas sueltas de facturas de compra. A diferencia
// del lado de ventas, aquí cada operación produce su delta de stock.

// AddItem agrega una línea y suma su cantidad al stock del producto.
func (uc *PurchaseInvoiceUseCase) AddItem(ctx context.Context, scope access.Scope, invoiceID string, in dto.PurchaseItemInput) (*dto.PurchaseItemResponse, error) {
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
	item := &entity.PurchaseInvoiceItem{
		ID:        uuid.New().String(),
		TenantID:  inv.TenantID,
		InvoiceID: inv.ID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedAt: time.Now(),
	}
	err = uc.txRunner.RunPurchasing(ctx, func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
			return err
		}
		return invoiceRepo.CreateItem(item)
	})
	if err != nil {
		return nil, err
	}
	return &dto.PurchaseItemResponse{ID: item.ID, InvoiceID: item.InvoiceID, ProductID: item.ProductID, Quantity: item.Quantity}, nil
}

// UpdateItem cambia producto o cantidad de una línea. Si cambia solo la
// cantidad se aplica el delta (nueva - anterior) al mismo producto; si
// cambia el producto se revierte la cantidad anterior en el producto
// previo y se aplica la nueva en el nuevo, como dos escrituras separadas.
func (uc *PurchaseInvoiceUseCase) UpdateItem(ctx context.Context, scope access.Scope, itemID string, in dto.UpdatePurchaseItemRequest) (*dto.PurchaseItemResponse, error) {
	item, err := uc.invoiceRepo.GetItem(itemID)
	if err != nil || item == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(item.TenantID); err != nil {
		return nil, err
	}

	oldProductID := item.ProductID
	oldQuantity := item.Quantity

	if in.ProductID != nil && *in.ProductID != item.ProductID {
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

	err = uc.txRunner.RunPurchasing(ctx, func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		productRepo repository.ProductRepository,
	) error {
		if item.ProductID != oldProductID {
			if err := productRepo.AdjustStock(oldProductID, -oldQuantity); err != nil {
				return err
			}
			if err := productRepo.AdjustStock(item.ProductID, item.Quantity); err != nil {
				return err
			}
		} else if delta := item.Quantity - oldQuantity; delta != 0 {
			if err := productRepo.AdjustStock(item.ProductID, delta); err != nil {
				return err
			}
		}
		return invoiceRepo.UpdateItem(item)
	})
	if err != nil {
		return nil, err
	}
	return &dto.PurchaseItemResponse{ID: item.ID, InvoiceID: item.InvoiceID, ProductID: item.ProductID, Quantity: item.Quantity}, nil
}

// RemoveItem elimina una línea restando su cantidad del stock.
func (uc *PurchaseInvoiceUseCase) RemoveItem(ctx context.Context, scope access.Scope, itemID string) error {
	item, err := uc.invoiceRepo.GetItem(itemID)
	if err != nil || item == nil {
		return domain.ErrNotFound
	}
	if err := scope.CanMutate(item.TenantID); err != nil {
		return err
	}
	return uc.txRunner.RunPurchasing(ctx, func(
		invoiceRepo repository.PurchaseInvoiceRepository,
		productRepo repository.ProductRepository,
	) error {
		if err := productRepo.AdjustStock(item.ProductID, -item.Quantity); err != nil {
			return err
		}
		return invoiceRepo.DeleteItem(item.ID)
	})
}
