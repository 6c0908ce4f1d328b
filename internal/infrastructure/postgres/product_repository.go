package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// Los listados excluyen productos con borrado lógico.
type ProductRepo struct {
	db Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
func NewProductRepository(db Querier) *ProductRepo {
	return &ProductRepo{db: db}
}

const productColumns = `id, tenant_id, supplier_id, name, sale_price, purchase_price, tax, stock, is_deleted, created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.ID, &p.TenantID, &p.SupplierID, &p.Name, &p.SalePrice,
		&p.PurchasePrice, &p.Tax, &p.Stock, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(product *entity.Product) error {
	query := `
		INSERT INTO products (id, tenant_id, supplier_id, name, sale_price, purchase_price, tax, stock, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(context.Background(), query,
		product.ID, product.TenantID, product.SupplierID, product.Name,
		product.SalePrice, product.PurchasePrice, product.Tax, product.Stock,
		product.IsDeleted, product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID (incluye eliminados: las facturas
// históricas los siguen referenciando).
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// Update actualiza datos del producto (sin stock).
func (r *ProductRepo) Update(product *entity.Product) error {
	query := `
		UPDATE products SET supplier_id = $2, name = $3, sale_price = $4, purchase_price = $5, tax = $6, updated_at = $7
		WHERE id = $1 AND is_deleted = false`
	cmd, err := r.db.Exec(context.Background(), query,
		product.ID, product.SupplierID, product.Name, product.SalePrice,
		product.PurchasePrice, product.Tax, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SoftDelete marca el producto como eliminado sin borrar la fila.
func (r *ProductRepo) SoftDelete(id string) error {
	cmd, err := r.db.Exec(context.Background(),
		`UPDATE products SET is_deleted = true, updated_at = now() WHERE id = $1 AND is_deleted = false`, id)
	if err != nil {
		return fmt.Errorf("soft delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List productos no eliminados; tenantFilter vacío = todas las empresas.
func (r *ProductRepo) List(tenantFilter string, limit, offset int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE is_deleted = false AND ($1 = '' OR tenant_id = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	return r.queryProducts(query, tenantFilter, limit, offset)
}

// SearchByName búsqueda parcial por nombre (case-insensitive).
func (r *ProductRepo) SearchByName(tenantFilter, name string) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE is_deleted = false AND ($1 = '' OR tenant_id = $1) AND name ILIKE '%' || $2 || '%'
		ORDER BY name`
	return r.queryProducts(query, tenantFilter, name)
}

// ListPublic listado limitado sin filtro de empresa.
func (r *ProductRepo) ListPublic(limit int) ([]*entity.Product, error) {
	query := `
		SELECT ` + productColumns + ` FROM products
		WHERE is_deleted = false ORDER BY created_at DESC LIMIT $1`
	return r.queryProducts(query, limit)
}

// AdjustStock incremento atómico del stock en el almacenamiento.
func (r *ProductRepo) AdjustStock(id string, delta int) error {
	query := `UPDATE products SET stock = stock + $2, updated_at = now() WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductRepo) queryProducts(query string, args ...any) ([]*entity.Product, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
