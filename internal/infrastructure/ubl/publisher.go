package ubl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/axia-erp/internal/application/billing"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/pkg/logger"
)

var _ billing.ElectronicBillPublisher = (*FilePublisher)(nil)

// FilePublisher genera el XML de la factura y lo deja como archivo en el
// directorio de salida configurado. El caller trata los errores como no
// fatales: la factura ya quedó confirmada cuando se publica.
type FilePublisher struct {
	builder *XMLBuilder
	dir     string
	log     *logger.Logger
}

// NewFilePublisher construye el publicador de artefactos XML.
func NewFilePublisher(dir string, log *logger.Logger) *FilePublisher {
	return &FilePublisher{builder: NewXMLBuilder(), dir: dir, log: log}
}

// Publish genera el XML y lo escribe en <dir>/factura_<id>.xml.
func (p *FilePublisher) Publish(
	_ context.Context,
	invoice *entity.SaleInvoice,
	items []*entity.SaleInvoiceItem,
	client *entity.Client,
	company *entity.Company,
	products map[string]*entity.Product,
) error {
	data, err := p.builder.Build(invoice, items, client, company, products)
	if err != nil {
		return fmt.Errorf("ubl: construir XML: %w", err)
	}

	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("ubl: crear directorio de salida: %w", err)
	}

	path := filepath.Join(p.dir, "factura_"+invoice.ID+".xml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ubl: escribir artefacto: %w", err)
	}

	p.log.Info().
		Str("invoice_id", invoice.ID).
		Str("path", path).
		Msg("factura electrónica generada")
	return nil
}
