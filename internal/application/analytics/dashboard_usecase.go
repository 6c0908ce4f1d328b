package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// DashboardUseCase consultas agregadas de solo lectura para el panel.
// Todas las métricas son por empresa: un SUPERADMIN debe indicar cuál.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

func (uc *DashboardUseCase) resolveTenant(scope access.Scope, requested string) (string, error) {
	tenantID := scope.TenantFilter(requested)
	if tenantID == "" {
		return "", domain.ErrInvalidInput
	}
	return tenantID, nil
}

// Dashboard métricas generales del negocio.
func (uc *DashboardUseCase) Dashboard(scope access.Scope, tenantID string) (*dto.DashboardResponse, error) {
	id, err := uc.resolveTenant(scope, tenantID)
	if err != nil {
		return nil, err
	}
	m, err := uc.analyticsRepo.DashboardMetrics(id)
	if err != nil {
		return nil, err
	}
	return &dto.DashboardResponse{
		TotalSales:        m.TotalSales,
		TotalPurchases:    m.TotalPurchases,
		TotalPayments:     m.TotalPayments,
		PendingLoans:      m.PendingLoans,
		PendingLoanAmount: m.PendingLoanAmount,
		CompanyBalance:    m.CompanyBalance,
		ProductCount:      m.ProductCount,
		ClientCount:       m.ClientCount,
	}, nil
}

// InventorySummary estado agregado del inventario.
func (uc *DashboardUseCase) InventorySummary(scope access.Scope, tenantID string) (*dto.InventorySummaryResponse, error) {
	id, err := uc.resolveTenant(scope, tenantID)
	if err != nil {
		return nil, err
	}
	s, err := uc.analyticsRepo.InventorySummary(id)
	if err != nil {
		return nil, err
	}
	return &dto.InventorySummaryResponse{
		TotalProducts:  s.TotalProducts,
		TotalStock:     s.TotalStock,
		InventoryValue: s.InventoryValue,
		OutOfStock:     s.OutOfStock,
		LowStock:       s.LowStock,
	}, nil
}

// SalesMetrics serie de ventas por día en el rango pedido. Fechas en
// formato YYYY-MM-DD; por defecto el mes en curso.
func (uc *DashboardUseCase) SalesMetrics(scope access.Scope, tenantID string, in dto.SalesMetricsRequest) (*dto.SalesMetricsResponse, error) {
	id, err := uc.resolveTenant(scope, tenantID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := now
	if in.StartDate != "" {
		from, err = time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if in.EndDate != "" {
		to, err = time.Parse("2006-01-02", in.EndDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	if to.Before(from) {
		return nil, domain.ErrInvalidInput
	}
	points, err := uc.analyticsRepo.SalesByDay(id, from, to)
	if err != nil {
		return nil, err
	}
	resp := &dto.SalesMetricsResponse{
		StartDate: from.Format("2006-01-02"),
		EndDate:   to.Format("2006-01-02"),
		Points:    make([]dto.SalesPointDTO, 0, len(points)),
	}
	for _, p := range points {
		resp.Points = append(resp.Points, dto.SalesPointDTO{Day: p.Day, Total: p.Total, Count: p.Count})
	}
	return resp, nil
}

// TopProducts ranking de productos por cantidad vendida.
func (uc *DashboardUseCase) TopProducts(scope access.Scope, tenantID string, limit int) (*dto.TopProductsResponse, error) {
	id, err := uc.resolveTenant(scope, tenantID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	tops, err := uc.analyticsRepo.TopProducts(id, limit)
	if err != nil {
		return nil, err
	}
	resp := &dto.TopProductsResponse{Items: make([]dto.TopProductDTO, 0, len(tops))}
	for _, tp := range tops {
		resp.Items = append(resp.Items, dto.TopProductDTO{
			ProductID:   tp.ProductID,
			ProductName: tp.ProductName,
			Quantity:    tp.Quantity,
			Revenue:     tp.Revenue,
		})
	}
	return resp, nil
}

// Proporción del ingreso estimada como gasto operativo en el cálculo
// de rentabilidad.
var operatingCostRate = decimal.NewFromFloat(0.2)

// CustomerMetrics métricas de clientes: totales, nuevos del mes, ticket
// promedio y segmentos por frecuencia de compra.
func (uc *DashboardUseCase) CustomerMetrics(scope access.Scope, tenantID string) (*dto.CustomerMetricsResponse, error) {
	id, err := uc.resolveTenant(scope, tenantID)
	if err != nil {
		return nil, err
	}
	m, err := uc.analyticsRepo.CustomerMetrics(id)
	if err != nil {
		return nil, err
	}
	avg := decimal.Zero
	if m.InvoiceCount > 0 {
		avg = m.TotalRevenue.Div(decimal.NewFromInt(int64(m.InvoiceCount)))
	}
	return &dto.CustomerMetricsResponse{
		TotalClients:      m.TotalClients,
		NewThisMonth:      m.NewThisMonth,
		TotalRevenue:      m.TotalRevenue,
		AverageOrderValue: avg,
		Segments: []dto.CustomerSegmentDTO{
			{Name: "Nuevos (1 compra)", Count: m.NewBuyers},
			{Name: "Recurrentes (2-3 compras)", Count: m.RegularBuyers},
			{Name: "Frecuentes (4+ compras)", Count: m.FrequentBuyers},
		},
	}, nil
}

// Profitability rentabilidad del período (week, month o year; por
// defecto month): ingresos menos costo de lo vendido y un gasto
// operativo estimado sobre el ingreso.
func (uc *DashboardUseCase) Profitability(scope access.Scope, tenantID, period string) (*dto.ProfitabilityResponse, error) {
	id, err := uc.resolveTenant(scope, tenantID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	var from time.Time
	switch period {
	case "week":
		from = now.AddDate(0, 0, -7)
	case "", "month":
		period = "month"
		from = now.AddDate(0, -1, 0)
	case "year":
		from = now.AddDate(-1, 0, 0)
	default:
		return nil, domain.ErrInvalidInput
	}
	in, err := uc.analyticsRepo.Profitability(id, from)
	if err != nil {
		return nil, err
	}
	operating := in.GrossRevenue.Mul(operatingCostRate)
	net := in.GrossRevenue.Sub(in.CostOfGoods).Sub(operating)
	margin := decimal.Zero
	if in.GrossRevenue.IsPositive() {
		margin = net.Div(in.GrossRevenue).Mul(decimal.NewFromInt(100))
	}
	return &dto.ProfitabilityResponse{
		Period:        period,
		GrossRevenue:  in.GrossRevenue,
		CostOfGoods:   in.CostOfGoods,
		OperatingCost: operating,
		NetProfit:     net,
		ProfitMargin:  margin,
	}, nil
}
