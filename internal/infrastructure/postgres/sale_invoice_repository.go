package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ repository.SaleInvoiceRepository = (*SaleInvoiceRepo)(nil)

// SaleInvoiceRepo implementación del puerto SaleInvoiceRepository sobre
// PostgreSQL. Cabeceras en sale_invoices, líneas en sale_invoice_items.
type SaleInvoiceRepo struct {
	db Querier
}

// NewSaleInvoiceRepository construye el adaptador de persistencia para
// facturas de venta. Acepta el pool o una transacción.
func NewSaleInvoiceRepository(db Querier) *SaleInvoiceRepo {
	return &SaleInvoiceRepo{db: db}
}

const saleInvoiceColumns = `id, tenant_id, client_id, date, total_price, electronic_bill, created_at, updated_at`

func scanSaleInvoice(row interface{ Scan(dest ...any) error }) (*entity.SaleInvoice, error) {
	var inv entity.SaleInvoice
	err := row.Scan(&inv.ID, &inv.TenantID, &inv.ClientID, &inv.Date,
		&inv.TotalPrice, &inv.ElectronicBill, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *SaleInvoiceRepo) Create(invoice *entity.SaleInvoice) error {
	query := `
		INSERT INTO sale_invoices (id, tenant_id, client_id, date, total_price, electronic_bill, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(context.Background(), query,
		invoice.ID, invoice.TenantID, invoice.ClientID, invoice.Date,
		invoice.TotalPrice, invoice.ElectronicBill, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale invoice: %w", err)
	}
	return nil
}

func (r *SaleInvoiceRepo) GetByID(id string) (*entity.SaleInvoice, error) {
	query := `SELECT ` + saleInvoiceColumns + ` FROM sale_invoices WHERE id = $1`
	inv, err := scanSaleInvoice(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale invoice: %w", err)
	}
	return inv, nil
}

func (r *SaleInvoiceRepo) Update(invoice *entity.SaleInvoice) error {
	query := `
		UPDATE sale_invoices SET client_id = $2, date = $3, total_price = $4, electronic_bill = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query,
		invoice.ID, invoice.ClientID, invoice.Date,
		invoice.TotalPrice, invoice.ElectronicBill, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update sale invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleInvoiceRepo) Delete(id string) error {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM sale_invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleInvoiceRepo) List(tenantFilter string, limit, offset int) ([]*entity.SaleInvoice, error) {
	query := `
		SELECT ` + saleInvoiceColumns + ` FROM sale_invoices
		WHERE ($1 = '' OR tenant_id = $1)
		ORDER BY date DESC LIMIT $2 OFFSET $3`
	return r.queryInvoices(query, tenantFilter, limit, offset)
}

func (r *SaleInvoiceRepo) ListPublic(limit int) ([]*entity.SaleInvoice, error) {
	query := `
		SELECT ` + saleInvoiceColumns + ` FROM sale_invoices
		ORDER BY date DESC LIMIT $1`
	return r.queryInvoices(query, limit)
}

func (r *SaleInvoiceRepo) SearchByDateRange(tenantFilter string, from, to time.Time) ([]*entity.SaleInvoice, error) {
	query := `
		SELECT ` + saleInvoiceColumns + ` FROM sale_invoices
		WHERE ($1 = '' OR tenant_id = $1) AND date >= $2 AND date <= $3
		ORDER BY date DESC`
	return r.queryInvoices(query, tenantFilter, from, to)
}

func (r *SaleInvoiceRepo) SearchByClientName(tenantFilter, name string) ([]*entity.SaleInvoice, error) {
	query := `
		SELECT i.id, i.tenant_id, i.client_id, i.date, i.total_price, i.electronic_bill, i.created_at, i.updated_at
		FROM sale_invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE ($1 = '' OR i.tenant_id = $1)
		  AND (c.first_name || ' ' || c.last_name) ILIKE '%' || $2 || '%'
		ORDER BY i.date DESC`
	return r.queryInvoices(query, tenantFilter, name)
}

func (r *SaleInvoiceRepo) queryInvoices(query string, args ...any) ([]*entity.SaleInvoice, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query sale invoices: %w", err)
	}
	defer rows.Close()

	var out []*entity.SaleInvoice
	for rows.Next() {
		inv, err := scanSaleInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale invoice: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

const saleItemColumns = `id, tenant_id, invoice_id, product_id, quantity, created_at`

func scanSaleItem(row interface{ Scan(dest ...any) error }) (*entity.SaleInvoiceItem, error) {
	var it entity.SaleInvoiceItem
	err := row.Scan(&it.ID, &it.TenantID, &it.InvoiceID, &it.ProductID, &it.Quantity, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *SaleInvoiceRepo) CreateItem(item *entity.SaleInvoiceItem) error {
	query := `
		INSERT INTO sale_invoice_items (id, tenant_id, invoice_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		item.ID, item.TenantID, item.InvoiceID, item.ProductID, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale item: %w", err)
	}
	return nil
}

func (r *SaleInvoiceRepo) GetItem(id string) (*entity.SaleInvoiceItem, error) {
	query := `SELECT ` + saleItemColumns + ` FROM sale_invoice_items WHERE id = $1`
	it, err := scanSaleItem(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale item: %w", err)
	}
	return it, nil
}

func (r *SaleInvoiceRepo) UpdateItem(item *entity.SaleInvoiceItem) error {
	query := `UPDATE sale_invoice_items SET product_id = $2, quantity = $3 WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query, item.ID, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("update sale item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleInvoiceRepo) DeleteItem(id string) error {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM sale_invoice_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleInvoiceRepo) ListItems(invoiceID string) ([]*entity.SaleInvoiceItem, error) {
	query := `
		SELECT ` + saleItemColumns + ` FROM sale_invoice_items
		WHERE invoice_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("query sale items: %w", err)
	}
	defer rows.Close()

	var out []*entity.SaleInvoiceItem
	for rows.Next() {
		it, err := scanSaleItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *SaleInvoiceRepo) DeleteItems(invoiceID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM sale_invoice_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete sale items: %w", err)
	}
	return nil
}
