package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas agregadas de solo lectura sobre PostgreSQL.
// Todas las consultas exigen un tenant concreto: los agregados no se
// mezclan entre empresas.
type AnalyticsRepo struct {
	db Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(db Querier) *AnalyticsRepo {
	return &AnalyticsRepo{db: db}
}

// lowStockThreshold límite por debajo del cual un producto cuenta como
// stock bajo (sin llegar a cero).
const lowStockThreshold = 5

func (r *AnalyticsRepo) DashboardMetrics(tenantID string) (*repository.DashboardMetrics, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total_price) FROM sale_invoices WHERE tenant_id = $1), 0),
			COALESCE((SELECT SUM(total_price) FROM purchase_invoices WHERE tenant_id = $1), 0),
			COALESCE((SELECT SUM(amount) FROM payments WHERE tenant_id = $1), 0),
			(SELECT COUNT(*) FROM loans WHERE tenant_id = $1 AND NOT status),
			COALESCE((SELECT SUM(amount) FROM loans WHERE tenant_id = $1 AND NOT status), 0),
			COALESCE((SELECT current_balance FROM companies WHERE id = $1), 0),
			(SELECT COUNT(*) FROM products WHERE tenant_id = $1 AND is_deleted = false),
			(SELECT COUNT(*) FROM clients WHERE tenant_id = $1)`
	var m repository.DashboardMetrics
	err := r.db.QueryRow(context.Background(), query, tenantID).Scan(
		&m.TotalSales, &m.TotalPurchases, &m.TotalPayments,
		&m.PendingLoans, &m.PendingLoanAmount, &m.CompanyBalance,
		&m.ProductCount, &m.ClientCount,
	)
	if err != nil {
		return nil, fmt.Errorf("dashboard metrics: %w", err)
	}
	return &m, nil
}

func (r *AnalyticsRepo) InventorySummary(tenantID string) (*repository.InventorySummary, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(stock), 0),
			COALESCE(SUM(stock * purchase_price), 0),
			COUNT(*) FILTER (WHERE stock = 0),
			COUNT(*) FILTER (WHERE stock > 0 AND stock < $2)
		FROM products
		WHERE tenant_id = $1 AND is_deleted = false`
	var s repository.InventorySummary
	err := r.db.QueryRow(context.Background(), query, tenantID, lowStockThreshold).Scan(
		&s.TotalProducts, &s.TotalStock, &s.InventoryValue, &s.OutOfStock, &s.LowStock,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory summary: %w", err)
	}
	return &s, nil
}

func (r *AnalyticsRepo) SalesByDay(tenantID string, from, to time.Time) ([]*repository.SalesPoint, error) {
	query := `
		SELECT date_trunc('day', date) AS day, COALESCE(SUM(total_price), 0), COUNT(*)
		FROM sale_invoices
		WHERE tenant_id = $1 AND date >= $2 AND date <= $3
		GROUP BY day
		ORDER BY day`
	rows, err := r.db.Query(context.Background(), query, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("sales by day: %w", err)
	}
	defer rows.Close()

	var out []*repository.SalesPoint
	for rows.Next() {
		var p repository.SalesPoint
		if err := rows.Scan(&p.Day, &p.Total, &p.Count); err != nil {
			return nil, fmt.Errorf("scan sales point: %w", err)
		}
		out = append(out, &p)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) TopProducts(tenantID string, limit int) ([]*repository.TopProduct, error) {
	query := `
		SELECT p.id, p.name, COALESCE(SUM(i.quantity), 0) AS qty, COALESCE(SUM(i.quantity * p.sale_price), 0)
		FROM sale_invoice_items i
		JOIN products p ON p.id = i.product_id
		WHERE i.tenant_id = $1
		GROUP BY p.id, p.name
		ORDER BY qty DESC
		LIMIT $2`
	rows, err := r.db.Query(context.Background(), query, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	defer rows.Close()

	var out []*repository.TopProduct
	for rows.Next() {
		var t repository.TopProduct
		if err := rows.Scan(&t.ProductID, &t.ProductName, &t.Quantity, &t.Revenue); err != nil {
			return nil, fmt.Errorf("scan top product: %w", err)
		}
		out = append(out, &t)
	}
	return out, rows.Err()
}

func (r *AnalyticsRepo) CustomerMetrics(tenantID string) (*repository.CustomerMetrics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM clients WHERE tenant_id = $1),
			(SELECT COUNT(*) FROM clients WHERE tenant_id = $1 AND created_at >= date_trunc('month', now())),
			(SELECT COUNT(*) FROM sale_invoices WHERE tenant_id = $1),
			COALESCE((SELECT SUM(total_price) FROM sale_invoices WHERE tenant_id = $1), 0)`
	var m repository.CustomerMetrics
	err := r.db.QueryRow(context.Background(), query, tenantID).Scan(
		&m.TotalClients, &m.NewThisMonth, &m.InvoiceCount, &m.TotalRevenue,
	)
	if err != nil {
		return nil, fmt.Errorf("customer metrics: %w", err)
	}

	segments := `
		SELECT
			COUNT(*) FILTER (WHERE n = 1),
			COUNT(*) FILTER (WHERE n BETWEEN 2 AND 3),
			COUNT(*) FILTER (WHERE n >= 4)
		FROM (
			SELECT client_id, COUNT(*) AS n
			FROM sale_invoices
			WHERE tenant_id = $1
			GROUP BY client_id
		) compras`
	err = r.db.QueryRow(context.Background(), segments, tenantID).Scan(
		&m.NewBuyers, &m.RegularBuyers, &m.FrequentBuyers,
	)
	if err != nil {
		return nil, fmt.Errorf("customer segments: %w", err)
	}
	return &m, nil
}

func (r *AnalyticsRepo) Profitability(tenantID string, from time.Time) (*repository.ProfitabilityInput, error) {
	query := `
		SELECT
			COALESCE((SELECT SUM(total_price) FROM sale_invoices WHERE tenant_id = $1 AND date >= $2), 0),
			COALESCE((SELECT SUM(i.quantity * p.purchase_price)
				FROM sale_invoice_items i
				JOIN sale_invoices si ON si.id = i.invoice_id
				JOIN products p ON p.id = i.product_id
				WHERE i.tenant_id = $1 AND si.date >= $2), 0)`
	var in repository.ProfitabilityInput
	err := r.db.QueryRow(context.Background(), query, tenantID, from).Scan(
		&in.GrossRevenue, &in.CostOfGoods,
	)
	if err != nil {
		return nil, fmt.Errorf("profitability: %w", err)
	}
	return &in, nil
}
