package billing

import (
	"fmt"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// PDFUseCase genera la representación gráfica (PDF) de una factura de venta.
type PDFUseCase struct {
	invoiceRepo repository.SaleInvoiceRepository
	companyRepo repository.CompanyRepository
	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	generator   InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando todas sus dependencias.
func NewPDFUseCase(
	invoiceRepo repository.SaleInvoiceRepository,
	companyRepo repository.CompanyRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		invoiceRepo: invoiceRepo,
		companyRepo: companyRepo,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		generator:   generator,
	}
}

// DownloadInvoicePDF recupera factura, empresa, cliente y productos y
// genera el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la factura no existe.
//   - domain.ErrForbidden        si la factura no pertenece al alcance del actor.
func (uc *PDFUseCase) DownloadInvoicePDF(scope access.Scope, invoiceID string) (pdfBytes []byte, filename string, err error) {
	inv, err := uc.invoiceRepo.GetByID(invoiceID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	if err := scope.CanMutate(inv.TenantID); err != nil {
		return nil, "", err
	}

	company, err := uc.companyRepo.GetByID(inv.TenantID)
	if err != nil || company == nil {
		return nil, "", domain.ErrNotFound
	}
	client, err := uc.clientRepo.GetByID(inv.ClientID)
	if err != nil || client == nil {
		return nil, "", domain.ErrNotFound
	}
	items, err := uc.invoiceRepo.ListItems(inv.ID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener líneas: %w", err)
	}
	products := make(map[string]*entity.Product, len(items))
	for _, item := range items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(item.ProductID)
		if err != nil || product == nil {
			return nil, "", domain.ErrNotFound
		}
		products[item.ProductID] = product
	}

	pdfBytes, err = uc.generator.InvoicePDF(inv, items, client, company, products)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generar documento: %w", err)
	}
	return pdfBytes, fmt.Sprintf("factura_%s.pdf", inv.ID), nil
}
