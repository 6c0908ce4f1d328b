package repository

import (
	"time"

	"github.com/jhoicas/axia-erp/internal/domain/entity"
)

// SaleInvoiceRepository puerto de persistencia para facturas de venta y
// sus líneas. tenantFilter vacío = todas las empresas.
type SaleInvoiceRepository interface {
	Create(invoice *entity.SaleInvoice) error
	GetByID(id string) (*entity.SaleInvoice, error)
	Update(invoice *entity.SaleInvoice) error
	Delete(id string) error
	List(tenantFilter string, limit, offset int) ([]*entity.SaleInvoice, error)
	ListPublic(limit int) ([]*entity.SaleInvoice, error)
	SearchByDateRange(tenantFilter string, from, to time.Time) ([]*entity.SaleInvoice, error)
	SearchByClientName(tenantFilter, name string) ([]*entity.SaleInvoice, error)

	CreateItem(item *entity.SaleInvoiceItem) error
	GetItem(id string) (*entity.SaleInvoiceItem, error)
	UpdateItem(item *entity.SaleInvoiceItem) error
	DeleteItem(id string) error
	ListItems(invoiceID string) ([]*entity.SaleInvoiceItem, error)
	DeleteItems(invoiceID string) error
}
