package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesMetricsRequest parámetros para la serie de ventas por día.
type SalesMetricsRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; por defecto primer día del mes actual
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; por defecto hoy
}

// DashboardResponse resumen general del negocio.
type DashboardResponse struct {
	TotalSales        decimal.Decimal `json:"total_sales"`
	TotalPurchases    decimal.Decimal `json:"total_purchases"`
	TotalPayments     decimal.Decimal `json:"total_payments"`
	PendingLoans      int             `json:"pending_loans"`
	PendingLoanAmount decimal.Decimal `json:"pending_loan_amount"`
	CompanyBalance    decimal.Decimal `json:"company_balance"`
	ProductCount      int             `json:"product_count"`
	ClientCount       int             `json:"client_count"`
}

// InventorySummaryResponse estado agregado del inventario.
type InventorySummaryResponse struct {
	TotalProducts  int             `json:"total_products"`
	TotalStock     int             `json:"total_stock"`
	InventoryValue decimal.Decimal `json:"inventory_value"`
	OutOfStock     int             `json:"out_of_stock"`
	LowStock       int             `json:"low_stock"`
}

// SalesPointDTO venta agregada por día.
type SalesPointDTO struct {
	Day   time.Time       `json:"day"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// SalesMetricsResponse serie de ventas en el período.
type SalesMetricsResponse struct {
	StartDate string          `json:"start_date"`
	EndDate   string          `json:"end_date"`
	Points    []SalesPointDTO `json:"points"`
}

// TopProductDTO producto más vendido.
type TopProductDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Revenue     decimal.Decimal `json:"revenue"`
}

// TopProductsResponse ranking de productos por cantidad vendida.
type TopProductsResponse struct {
	Items []TopProductDTO `json:"items"`
}

// CustomerSegmentDTO segmento de clientes por frecuencia de compra.
type CustomerSegmentDTO struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CustomerMetricsResponse métricas de clientes y ticket promedio.
type CustomerMetricsResponse struct {
	TotalClients      int                  `json:"total_clients"`
	NewThisMonth      int                  `json:"new_this_month"`
	TotalRevenue      decimal.Decimal      `json:"total_revenue"`
	AverageOrderValue decimal.Decimal      `json:"average_order_value"`
	Segments          []CustomerSegmentDTO `json:"segments"`
}

// ProfitabilityResponse rentabilidad del período: ingresos, costo de lo
// vendido, gasto operativo estimado, utilidad neta y margen (%).
type ProfitabilityResponse struct {
	Period        string          `json:"period"`
	GrossRevenue  decimal.Decimal `json:"gross_revenue"`
	CostOfGoods   decimal.Decimal `json:"cost_of_goods"`
	OperatingCost decimal.Decimal `json:"operating_cost"`
	NetProfit     decimal.Decimal `json:"net_profit"`
	ProfitMargin  decimal.Decimal `json:"profit_margin"`
}
