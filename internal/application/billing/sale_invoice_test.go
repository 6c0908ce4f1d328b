package billing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/axia-erp/internal/application/billing"
	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/pkg/logger"
)

const (
	tenantA = "empresa-a"
	tenantB = "empresa-b"
)

func seedBilling(t *testing.T) (*billing.SaleInvoiceUseCase, *memState, *fakePublisher) {
	t.Helper()
	s := newMemState()
	s.companies[tenantA] = &entity.Company{ID: tenantA, Name: "Empresa A", NIT: "900123456-1", CurrentBalance: decimal.NewFromInt(1000)}
	s.companies[tenantB] = &entity.Company{ID: tenantB, Name: "Empresa B", NIT: "900654321-2"}
	s.clients["cli-1"] = &entity.Client{ID: "cli-1", TenantID: tenantA, FirstName: "Laura", LastName: "Mejía"}
	s.products["prod-1"] = &entity.Product{ID: "prod-1", TenantID: tenantA, Name: "Café 500g", Stock: 10}
	s.products["prod-2"] = &entity.Product{ID: "prod-2", TenantID: tenantA, Name: "Panela", Stock: 4}

	pub := &fakePublisher{}
	uc := billing.NewSaleInvoiceUseCase(
		&memTxRunner{s},
		&memSaleInvoiceRepo{s},
		&memClientRepo{s},
		&memCompanyRepo{s},
		&memProductRepo{s},
		pub,
		logger.Nop(),
	)
	return uc, s, pub
}

var scopeA = access.Scope{Role: entity.RoleAdmin, TenantID: tenantA}

// Crear una factura descuenta el total del saldo y no toca el stock.
func TestCreateFacturaDescuentaSaldoSinTocarStock(t *testing.T) {
	uc, s, _ := seedBilling(t)

	resp, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID:   "cli-1",
		TotalPrice: decimal.NewFromInt(250),
		Items: []dto.SaleItemInput{
			{ProductID: "prod-1", Quantity: 3},
			{ProductID: "prod-2", Quantity: 1},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)

	assert.True(t, s.companies[tenantA].CurrentBalance.Equal(decimal.NewFromInt(750)),
		"saldo 1000 - 250 = 750, got %s", s.companies[tenantA].CurrentBalance)
	assert.Equal(t, 10, s.products["prod-1"].Stock, "la venta no descuenta stock")
	assert.Equal(t, 4, s.products["prod-2"].Stock)
}

// Actualizar la factura no vuelve a tocar el saldo.
func TestUpdateFacturaNoTocaElSaldo(t *testing.T) {
	uc, s, _ := seedBilling(t)
	resp, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID: "cli-1", TotalPrice: decimal.NewFromInt(250),
	})
	require.NoError(t, err)

	nuevoTotal := decimal.NewFromInt(900)
	_, err = uc.Update(context.Background(), scopeA, resp.ID, dto.UpdateSaleInvoiceRequest{
		TotalPrice: &nuevoTotal,
	})
	require.NoError(t, err)

	assert.True(t, s.companies[tenantA].CurrentBalance.Equal(decimal.NewFromInt(750)),
		"el saldo solo se movió en la creación")
}

// Actualizar con lista de líneas reemplaza el set completo sin tocar stock.
func TestUpdateFacturaReemplazaLineas(t *testing.T) {
	uc, s, _ := seedBilling(t)
	resp, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID: "cli-1", TotalPrice: decimal.NewFromInt(100),
		Items: []dto.SaleItemInput{{ProductID: "prod-1", Quantity: 3}},
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), scopeA, resp.ID, dto.UpdateSaleInvoiceRequest{
		Items: []dto.SaleItemInput{{ProductID: "prod-2", Quantity: 5}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "prod-2", updated.Items[0].ProductID)
	assert.Len(t, s.items, 1)

	assert.Equal(t, 10, s.products["prod-1"].Stock)
	assert.Equal(t, 4, s.products["prod-2"].Stock)
}

// Eliminar la factura restaura el stock de cada línea y no toca el saldo.
func TestDeleteFacturaRestauraStock(t *testing.T) {
	uc, s, _ := seedBilling(t)
	resp, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID: "cli-1", TotalPrice: decimal.NewFromInt(250),
		Items: []dto.SaleItemInput{
			{ProductID: "prod-1", Quantity: 3},
			{ProductID: "prod-2", Quantity: 1},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), scopeA, resp.ID))

	assert.Equal(t, 13, s.products["prod-1"].Stock, "10 + 3 devueltas")
	assert.Equal(t, 5, s.products["prod-2"].Stock, "4 + 1 devuelta")
	assert.True(t, s.companies[tenantA].CurrentBalance.Equal(decimal.NewFromInt(750)),
		"eliminar no devuelve el dinero")
	assert.Empty(t, s.items)
	assert.Empty(t, s.invoices)
}

// Eliminar una línea suelta devuelve su cantidad al stock; crearla o
// actualizarla no lo toca (asimetría del flujo de venta).
func TestLineaSueltaAsimetriaDeStock(t *testing.T) {
	uc, s, _ := seedBilling(t)
	resp, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID: "cli-1", TotalPrice: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	item, err := uc.AddItem(context.Background(), scopeA, resp.ID, dto.SaleItemInput{ProductID: "prod-1", Quantity: 4})
	require.NoError(t, err)
	assert.Equal(t, 10, s.products["prod-1"].Stock, "agregar línea no descuenta stock")

	q := 7
	_, err = uc.UpdateItem(context.Background(), scopeA, item.ID, dto.UpdateSaleItemRequest{Quantity: &q})
	require.NoError(t, err)
	assert.Equal(t, 10, s.products["prod-1"].Stock, "actualizar línea no toca stock")

	require.NoError(t, uc.RemoveItem(context.Background(), scopeA, item.ID))
	assert.Equal(t, 17, s.products["prod-1"].Stock, "eliminar devuelve la cantidad vigente (7)")
}

// Un fallo al publicar la factura electrónica no tumba la creación.
func TestFacturaElectronicaFallaSinPropagarse(t *testing.T) {
	uc, s, pub := seedBilling(t)
	pub.fail = true

	resp, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID: "cli-1", TotalPrice: decimal.NewFromInt(50), ElectronicBill: true,
	})
	require.NoError(t, err, "el fallo del XML se registra, no se propaga")
	assert.NotEmpty(t, resp.ID)
	assert.True(t, s.companies[tenantA].CurrentBalance.Equal(decimal.NewFromInt(950)))
}

func TestFacturaElectronicaSePublica(t *testing.T) {
	uc, _, pub := seedBilling(t)
	resp, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID: "cli-1", TotalPrice: decimal.NewFromInt(50), ElectronicBill: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{resp.ID}, pub.published)
}

// Activar el flag electrónico en un update publica el XML de la factura.
func TestFacturaElectronicaActivadaEnUpdate(t *testing.T) {
	uc, _, pub := seedBilling(t)
	created, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID:   "cli-1",
		TotalPrice: decimal.NewFromInt(80),
		Items:      []dto.SaleItemInput{{ProductID: "prod-1", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Empty(t, pub.published)

	on := true
	resp, err := uc.Update(context.Background(), scopeA, created.ID, dto.UpdateSaleInvoiceRequest{ElectronicBill: &on})
	require.NoError(t, err)
	assert.Empty(t, resp.Warning)
	assert.Equal(t, []string{created.ID}, pub.published)
}

// Sin líneas no hay nada que publicar: el update pasa con aviso.
func TestFacturaElectronicaActivadaSinLineas(t *testing.T) {
	uc, _, pub := seedBilling(t)
	created, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID: "cli-1", TotalPrice: decimal.NewFromInt(80),
	})
	require.NoError(t, err)

	on := true
	resp, err := uc.Update(context.Background(), scopeA, created.ID, dto.UpdateSaleInvoiceRequest{ElectronicBill: &on})
	require.NoError(t, err)
	assert.True(t, resp.ElectronicBill)
	assert.NotEmpty(t, resp.Warning)
	assert.Empty(t, pub.published)
}

// Aislamiento multi-tenant: un actor de otra empresa no puede mutar.
func TestAislamientoEntreEmpresas(t *testing.T) {
	uc, _, _ := seedBilling(t)
	resp, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID: "cli-1", TotalPrice: decimal.NewFromInt(100),
	})
	require.NoError(t, err)

	scopeB := access.Scope{Role: entity.RoleAdmin, TenantID: tenantB}
	err = uc.Delete(context.Background(), scopeB, resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.GetByID(scopeB, resp.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Un cliente de otra empresa tampoco sirve como receptor.
	_, err = uc.Create(context.Background(), scopeB, dto.CreateSaleInvoiceRequest{
		ClientID: "cli-1", TotalPrice: decimal.NewFromInt(10),
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBusquedaPorRangoDeFechas(t *testing.T) {
	uc, _, _ := seedBilling(t)
	_, err := uc.Create(context.Background(), scopeA, dto.CreateSaleInvoiceRequest{
		ClientID: "cli-1", TotalPrice: decimal.NewFromInt(100),
		Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	res, err := uc.SearchByDateRange(scopeA, "",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	res, err = uc.SearchByDateRange(scopeA, "",
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, res.Items)

	_, err = uc.SearchByDateRange(scopeA, "",
		time.Date(2026, 4, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
