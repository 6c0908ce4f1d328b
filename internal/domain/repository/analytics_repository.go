package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardMetrics resumen general del negocio para el panel.
type DashboardMetrics struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalPurchases    decimal.Decimal `json:"total_purchases"`
	TotalPayments     decimal.Decimal `json:"total_payments"`
	PendingLoans      int             `json:"pending_loans"`
	PendingLoanAmount decimal.Decimal `json:"pending_loan_amount"`
	CompanyBalance    decimal.Decimal `json:"company_balance"`
	ProductCount      int             `json:"product_count"`
	ClientCount       int             `json:"client_count"`
}

// InventorySummary estado agregado del inventario.
type InventorySummary struct {
	TotalProducts  int             `json:"total_products"`
	TotalStock     int             `json:"total_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	OutOfStock     int             `json:"out_of_stock"`
	LowStock       int             `json:"low_stock"`
}

// SalesPoint venta agregada por día para series de tiempo.
type SalesPoint struct {
	Day   time.Time       `json:"day"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// TopProduct producto más vendido por cantidad.
type TopProduct struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// CustomerMetrics agregados de clientes y su comportamiento de compra.
// Los segmentos cuentan clientes según cuántas facturas acumulan.
type CustomerMetrics struct {
	TotalClients   int             `json:"total_clients"`
	NewThisMonth   int             `json:"new_this_month"`
	InvoiceCount   int             `json:"invoice_count"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	NewBuyers      int             `json:"new_buyers"`
	RegularBuyers  int             `json:"regular_buyers"`
	FrequentBuyers int             `json:"frequent_buyers"`
}

// ProfitabilityInput ingresos y costo de lo vendido desde from.
type ProfitabilityInput struct {
	GrossRevenue decimal.Decimal `json:"gross_revenue"`
	CostOfGoods  decimal.Decimal `json:"cost_of_goods"`
}

// AnalyticsRepository consultas agregadas de solo lectura.
type AnalyticsRepository interface {
	DashboardMetrics(tenantID string) (*DashboardMetrics, error)
	InventorySummary(tenantID string) (*InventorySummary, error)
	SalesByDay(tenantID string, from, to time.Time) ([]*SalesPoint, error)
	TopProducts(tenantID string, limit int) ([]*TopProduct, error)
	CustomerMetrics(tenantID string) (*CustomerMetrics, error)
	Profitability(tenantID string, from time.Time) (*ProfitabilityInput, error)
}
