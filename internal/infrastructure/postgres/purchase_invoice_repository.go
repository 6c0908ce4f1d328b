package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ repository.PurchaseInvoiceRepository = (*PurchaseInvoiceRepo)(nil)

// PurchaseInvoiceRepo implementación del puerto PurchaseInvoiceRepository
// sobre PostgreSQL. Cabeceras en purchase_invoices, líneas en
// purchase_invoice_items.
type PurchaseInvoiceRepo struct {
	db Querier
}

// NewPurchaseInvoiceRepository construye el adaptador de persistencia para
// facturas de compra. Acepta el pool o una transacción.
func NewPurchaseInvoiceRepository(db Querier) *PurchaseInvoiceRepo {
	return &PurchaseInvoiceRepo{db: db}
}

const purchaseInvoiceColumns = `id, tenant_id, supplier_id, date, total_price, created_at, updated_at`

func scanPurchaseInvoice(row interface{ Scan(dest ...any) error }) (*entity.PurchaseInvoice, error) {
	var inv entity.PurchaseInvoice
	err := row.Scan(&inv.ID, &inv.TenantID, &inv.SupplierID, &inv.Date,
		&inv.TotalPrice, &inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *PurchaseInvoiceRepo) Create(invoice *entity.PurchaseInvoice) error {
	query := `
		INSERT INTO purchase_invoices (id, tenant_id, supplier_id, date, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		invoice.ID, invoice.TenantID, invoice.SupplierID, invoice.Date,
		invoice.TotalPrice, invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase invoice: %w", err)
	}
	return nil
}

func (r *PurchaseInvoiceRepo) GetByID(id string) (*entity.PurchaseInvoice, error) {
	query := `SELECT ` + purchaseInvoiceColumns + ` FROM purchase_invoices WHERE id = $1`
	inv, err := scanPurchaseInvoice(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase invoice: %w", err)
	}
	return inv, nil
}

func (r *PurchaseInvoiceRepo) Update(invoice *entity.PurchaseInvoice) error {
	query := `
		UPDATE purchase_invoices SET supplier_id = $2, date = $3, total_price = $4, updated_at = $5
		WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query,
		invoice.ID, invoice.SupplierID, invoice.Date, invoice.TotalPrice, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update purchase invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PurchaseInvoiceRepo) Delete(id string) error {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM purchase_invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PurchaseInvoiceRepo) List(tenantFilter string, limit, offset int) ([]*entity.PurchaseInvoice, error) {
	query := `
		SELECT ` + purchaseInvoiceColumns + ` FROM purchase_invoices
		WHERE ($1 = '' OR tenant_id = $1)
		ORDER BY date DESC LIMIT $2 OFFSET $3`
	return r.queryInvoices(query, tenantFilter, limit, offset)
}

func (r *PurchaseInvoiceRepo) ListPublic(limit int) ([]*entity.PurchaseInvoice, error) {
	query := `
		SELECT ` + purchaseInvoiceColumns + ` FROM purchase_invoices
		ORDER BY date DESC LIMIT $1`
	return r.queryInvoices(query, limit)
}

func (r *PurchaseInvoiceRepo) CountBySupplier(supplierID string) (int, error) {
	var count int
	err := r.db.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM purchase_invoices WHERE supplier_id = $1`, supplierID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count purchases by supplier: %w", err)
	}
	return count, nil
}

func (r *PurchaseInvoiceRepo) queryInvoices(query string, args ...any) ([]*entity.PurchaseInvoice, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query purchase invoices: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseInvoice
	for rows.Next() {
		inv, err := scanPurchaseInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase invoice: %w", err)
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

const purchaseItemColumns = `id, tenant_id, invoice_id, product_id, quantity, created_at`

func scanPurchaseItem(row interface{ Scan(dest ...any) error }) (*entity.PurchaseInvoiceItem, error) {
	var it entity.PurchaseInvoiceItem
	err := row.Scan(&it.ID, &it.TenantID, &it.InvoiceID, &it.ProductID, &it.Quantity, &it.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *PurchaseInvoiceRepo) CreateItem(item *entity.PurchaseInvoiceItem) error {
	query := `
		INSERT INTO purchase_invoice_items (id, tenant_id, invoice_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		item.ID, item.TenantID, item.InvoiceID, item.ProductID, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase item: %w", err)
	}
	return nil
}

func (r *PurchaseInvoiceRepo) GetItem(id string) (*entity.PurchaseInvoiceItem, error) {
	query := `SELECT ` + purchaseItemColumns + ` FROM purchase_invoice_items WHERE id = $1`
	it, err := scanPurchaseItem(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase item: %w", err)
	}
	return it, nil
}

func (r *PurchaseInvoiceRepo) UpdateItem(item *entity.PurchaseInvoiceItem) error {
	query := `UPDATE purchase_invoice_items SET product_id = $2, quantity = $3 WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query, item.ID, item.ProductID, item.Quantity)
	if err != nil {
		return fmt.Errorf("update purchase item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PurchaseInvoiceRepo) DeleteItem(id string) error {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM purchase_invoice_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete purchase item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PurchaseInvoiceRepo) ListItems(invoiceID string) ([]*entity.PurchaseInvoiceItem, error) {
	query := `
		SELECT ` + purchaseItemColumns + ` FROM purchase_invoice_items
		WHERE invoice_id = $1 ORDER BY created_at`
	rows, err := r.db.Query(context.Background(), query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("query purchase items: %w", err)
	}
	defer rows.Close()

	var out []*entity.PurchaseInvoiceItem
	for rows.Next() {
		it, err := scanPurchaseItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *PurchaseInvoiceRepo) DeleteItems(invoiceID string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM purchase_invoice_items WHERE invoice_id = $1`, invoiceID)
	if err != nil {
		return fmt.Errorf("delete purchase items: %w", err)
	}
	return nil
}
