package analytics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/axia-erp/internal/application/analytics"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

type fakeAnalyticsRepo struct {
	customers     *repository.CustomerMetrics
	profitability *repository.ProfitabilityInput
	profitFrom    time.Time
}

func (r *fakeAnalyticsRepo) DashboardMetrics(string) (*repository.DashboardMetrics, error) {
	return &repository.DashboardMetrics{}, nil
}

func (r *fakeAnalyticsRepo) InventorySummary(string) (*repository.InventorySummary, error) {
	return &repository.InventorySummary{}, nil
}

func (r *fakeAnalyticsRepo) SalesByDay(string, time.Time, time.Time) ([]*repository.SalesPoint, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) TopProducts(string, int) ([]*repository.TopProduct, error) {
	return nil, nil
}

func (r *fakeAnalyticsRepo) CustomerMetrics(string) (*repository.CustomerMetrics, error) {
	return r.customers, nil
}

func (r *fakeAnalyticsRepo) Profitability(_ string, from time.Time) (*repository.ProfitabilityInput, error) {
	r.profitFrom = from
	return r.profitability, nil
}

var scopeAdmin = access.Scope{Role: entity.RoleAdmin, TenantID: "empresa-a"}

func TestMetricasDeClientes(t *testing.T) {
	repo := &fakeAnalyticsRepo{customers: &repository.CustomerMetrics{
		TotalClients:   12,
		NewThisMonth:   3,
		InvoiceCount:   4,
		TotalRevenue:   decimal.NewFromInt(1000),
		NewBuyers:      2,
		RegularBuyers:  1,
		FrequentBuyers: 1,
	}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.CustomerMetrics(scopeAdmin, "")
	require.NoError(t, err)
	assert.Equal(t, 12, out.TotalClients)
	assert.Equal(t, 3, out.NewThisMonth)
	assert.True(t, out.AverageOrderValue.Equal(decimal.NewFromInt(250)), "ticket promedio 1000/4")
	require.Len(t, out.Segments, 3)
	assert.Equal(t, 2, out.Segments[0].Count)
	assert.Equal(t, 1, out.Segments[1].Count)
	assert.Equal(t, 1, out.Segments[2].Count)
}

func TestMetricasDeClientesSinFacturas(t *testing.T) {
	repo := &fakeAnalyticsRepo{customers: &repository.CustomerMetrics{TotalClients: 5}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.CustomerMetrics(scopeAdmin, "")
	require.NoError(t, err)
	assert.True(t, out.AverageOrderValue.IsZero(), "sin facturas el promedio es cero")
}

func TestRentabilidad(t *testing.T) {
	repo := &fakeAnalyticsRepo{profitability: &repository.ProfitabilityInput{
		GrossRevenue: decimal.NewFromInt(1000),
		CostOfGoods:  decimal.NewFromInt(400),
	}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.Profitability(scopeAdmin, "", "")
	require.NoError(t, err)
	assert.Equal(t, "month", out.Period)
	assert.True(t, out.OperatingCost.Equal(decimal.NewFromInt(200)), "20 por ciento del ingreso")
	assert.True(t, out.NetProfit.Equal(decimal.NewFromInt(400)), "1000 - 400 - 200")
	assert.True(t, out.ProfitMargin.Equal(decimal.NewFromInt(40)), "400/1000 en porcentaje")
}

func TestRentabilidadSinVentas(t *testing.T) {
	repo := &fakeAnalyticsRepo{profitability: &repository.ProfitabilityInput{
		GrossRevenue: decimal.Zero,
		CostOfGoods:  decimal.Zero,
	}}
	uc := analytics.NewDashboardUseCase(repo)

	out, err := uc.Profitability(scopeAdmin, "", "year")
	require.NoError(t, err)
	assert.Equal(t, "year", out.Period)
	assert.True(t, out.ProfitMargin.IsZero(), "sin ingreso no hay margen que calcular")
}

func TestRentabilidadPeriodoInvalido(t *testing.T) {
	uc := analytics.NewDashboardUseCase(&fakeAnalyticsRepo{})
	_, err := uc.Profitability(scopeAdmin, "", "decade")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSuperAdminDebeIndicarEmpresa(t *testing.T) {
	repo := &fakeAnalyticsRepo{customers: &repository.CustomerMetrics{TotalClients: 1}}
	uc := analytics.NewDashboardUseCase(repo)
	super := access.Scope{Role: entity.RoleSuperAdmin}

	_, err := uc.CustomerMetrics(super, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	out, err := uc.CustomerMetrics(super, "empresa-a")
	require.NoError(t, err)
	assert.Equal(t, 1, out.TotalClients)
}
