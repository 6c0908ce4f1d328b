package billing

import (
	"context"

	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repos de facturación de venta. Cualquier error en fn hace rollback de
// todas las escrituras (cabecera, líneas, stock y saldo).
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		invoiceRepo repository.SaleInvoiceRepository,
		productRepo repository.ProductRepository,
		companyRepo repository.CompanyRepository,
	) error) error
}

// ElectronicBillPublisher genera y publica el artefacto de factura
// electrónica (XML) después del commit. El caller trata el error como no
// fatal: lo registra y no lo propaga.
type ElectronicBillPublisher interface {
	Publish(ctx context.Context, invoice *entity.SaleInvoice, items []*entity.SaleInvoiceItem, client *entity.Client, company *entity.Company, products map[string]*entity.Product) error
}

// InvoicePDFGenerator renderiza el PDF de una factura de venta.
type InvoicePDFGenerator interface {
	InvoicePDF(invoice *entity.SaleInvoice, items []*entity.SaleInvoiceItem, client *entity.Client, company *entity.Company, products map[string]*entity.Product) ([]byte, error)
}
