package repository

import "github.com/jhoicas/axia-erp/internal/domain/entity"

// PurchaseInvoiceRepository puerto de persistencia para facturas de
// compra y sus líneas. tenantFilter vacío = todas las empresas.
type PurchaseInvoiceRepository interface {
	Create(invoice *entity.PurchaseInvoice) error
	GetByID(id string) (*entity.PurchaseInvoice, error)
	Update(invoice *entity.PurchaseInvoice) error
	Delete(id string) error
	List(tenantFilter string, limit, offset int) ([]*entity.PurchaseInvoice, error)
	ListPublic(limit int) ([]*entity.PurchaseInvoice, error)
	// CountBySupplier cuenta facturas de compra de un proveedor (análisis de confiabilidad).
	CountBySupplier(supplierID string) (int, error)

	CreateItem(item *entity.PurchaseInvoiceItem) error
	GetItem(id string) (*entity.PurchaseInvoiceItem, error)
	UpdateItem(item *entity.PurchaseInvoiceItem) error
	DeleteItem(id string) error
	ListItems(invoiceID string) ([]*entity.PurchaseInvoiceItem, error)
	DeleteItems(invoiceID string) error
}
