package purchasing_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/purchasing"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

const (
	tenantA = "empresa-a"
	tenantB = "empresa-b"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	companies map[string]*entity.Company
	suppliers map[string]*entity.Supplier
	products  map[string]*entity.Product
	invoices  map[string]*entity.PurchaseInvoice
	items     map[string]*entity.PurchaseInvoiceItem
}

type memCompanyRepo struct{ s *memState }

func (r *memCompanyRepo) Create(c *entity.Company) error { r.s.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	return r.s.companies[id], nil
}
func (r *memCompanyRepo) Update(c *entity.Company) error           { r.s.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) Delete(id string) error                   { delete(r.s.companies, id); return nil }
func (r *memCompanyRepo) List(int, int) ([]*entity.Company, error) { return nil, nil }
func (r *memCompanyRepo) AdjustBalance(id string, delta decimal.Decimal) error {
	c := r.s.companies[id]
	c.CurrentBalance = c.CurrentBalance.Add(delta)
	return nil
}
func (r *memCompanyRepo) ResetBalance(id string) error {
	r.s.companies[id].CurrentBalance = decimal.Zero
	return nil
}

type memSupplierRepo struct{ s *memState }

func (r *memSupplierRepo) Create(sp *entity.Supplier) error { r.s.suppliers[sp.ID] = sp; return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return r.s.suppliers[id], nil
}
func (r *memSupplierRepo) Update(sp *entity.Supplier) error { r.s.suppliers[sp.ID] = sp; return nil }
func (r *memSupplierRepo) Delete(id string) error           { delete(r.s.suppliers, id); return nil }
func (r *memSupplierRepo) List(string, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *memSupplierRepo) SearchByName(string, string) ([]*entity.Supplier, error) {
	return nil, nil
}

type memProductRepo struct{ s *memState }

func (r *memProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.s.products[id], nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *memProductRepo) SoftDelete(id string) error {
	if p := r.s.products[id]; p != nil {
		p.IsDeleted = true
	}
	return nil
}
func (r *memProductRepo) List(string, int, int) ([]*entity.Product, error)       { return nil, nil }
func (r *memProductRepo) SearchByName(string, string) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) ListPublic(int) ([]*entity.Product, error)              { return nil, nil }
func (r *memProductRepo) AdjustStock(id string, delta int) error {
	p := r.s.products[id]
	if p == nil {
		return domain.ErrNotFound
	}
	p.Stock += delta
	return nil
}

type memPurchaseRepo struct{ s *memState }

func (r *memPurchaseRepo) Create(inv *entity.PurchaseInvoice) error {
	r.s.invoices[inv.ID] = inv
	return nil
}
func (r *memPurchaseRepo) GetByID(id string) (*entity.PurchaseInvoice, error) {
	return r.s.invoices[id], nil
}
func (r *memPurchaseRepo) Update(inv *entity.PurchaseInvoice) error {
	r.s.invoices[inv.ID] = inv
	return nil
}
func (r *memPurchaseRepo) Delete(id string) error { delete(r.s.invoices, id); return nil }
func (r *memPurchaseRepo) List(tenantFilter string, _, _ int) ([]*entity.PurchaseInvoice, error) {
	var out []*entity.PurchaseInvoice
	for _, inv := range r.s.invoices {
		if tenantFilter == "" || inv.TenantID == tenantFilter {
			out = append(out, inv)
		}
	}
	return out, nil
}
func (r *memPurchaseRepo) ListPublic(limit int) ([]*entity.PurchaseInvoice, error) {
	return r.List("", limit, 0)
}
func (r *memPurchaseRepo) CountBySupplier(supplierID string) (int, error) {
	n := 0
	for _, inv := range r.s.invoices {
		if inv.SupplierID == supplierID {
			n++
		}
	}
	return n, nil
}
func (r *memPurchaseRepo) CreateItem(item *entity.PurchaseInvoiceItem) error {
	r.s.items[item.ID] = item
	return nil
}
func (r *memPurchaseRepo) GetItem(id string) (*entity.PurchaseInvoiceItem, error) {
	return r.s.items[id], nil
}
func (r *memPurchaseRepo) UpdateItem(item *entity.PurchaseInvoiceItem) error {
	r.s.items[item.ID] = item
	return nil
}
func (r *memPurchaseRepo) DeleteItem(id string) error { delete(r.s.items, id); return nil }
func (r *memPurchaseRepo) ListItems(invoiceID string) ([]*entity.PurchaseInvoiceItem, error) {
	var out []*entity.PurchaseInvoiceItem
	for _, item := range r.s.items {
		if item.InvoiceID == invoiceID {
			out = append(out, item)
		}
	}
	return out, nil
}
func (r *memPurchaseRepo) DeleteItems(invoiceID string) error {
	for id, item := range r.s.items {
		if item.InvoiceID == invoiceID {
			delete(r.s.items, id)
		}
	}
	return nil
}

type memTxRunner struct{ s *memState }

func (t *memTxRunner) RunPurchasing(_ context.Context, fn func(
	invoiceRepo repository.PurchaseInvoiceRepository,
	productRepo repository.ProductRepository,
) error) error {
	return fn(&memPurchaseRepo{t.s}, &memProductRepo{t.s})
}

func seedPurchasing(t *testing.T) (*purchasing.PurchaseInvoiceUseCase, *memState) {
	t.Helper()
	s := &memState{
		companies: map[string]*entity.Company{},
		suppliers: map[string]*entity.Supplier{},
		products:  map[string]*entity.Product{},
		invoices:  map[string]*entity.PurchaseInvoice{},
		items:     map[string]*entity.PurchaseInvoiceItem{},
	}
	s.companies[tenantA] = &entity.Company{ID: tenantA, Name: "Empresa A", NIT: "900123456-1", CurrentBalance: decimal.NewFromInt(1000)}
	s.suppliers["prov-1"] = &entity.Supplier{ID: "prov-1", TenantID: tenantA, Name: "Distribuidora Norte"}
	s.products["prod-1"] = &entity.Product{ID: "prod-1", TenantID: tenantA, Name: "Café 500g", Stock: 10}
	s.products["prod-2"] = &entity.Product{ID: "prod-2", TenantID: tenantA, Name: "Panela", Stock: 4}

	uc := purchasing.NewPurchaseInvoiceUseCase(
		&memTxRunner{s},
		&memPurchaseRepo{s},
		&memSupplierRepo{s},
		&memCompanyRepo{s},
		&memProductRepo{s},
	)
	return uc, s
}

var scopeA = access.Scope{Role: entity.RoleAdmin, TenantID: tenantA}

// ──────────────────────────────────────────────────────────────────────────────
// Reconciliación de stock, lado de compras
// ──────────────────────────────────────────────────────────────────────────────

// Escenario completo: stock 10 → crear línea de 5 → 15 → cantidad a 2 →
// 12 → eliminar línea → 10 (ida y vuelta sin residuo).
func TestStockIdaYVuelta(t *testing.T) {
	uc, s := seedPurchasing(t)

	inv, err := uc.Create(context.Background(), scopeA, dto.CreatePurchaseInvoiceRequest{
		SupplierID: "prov-1",
		TotalPrice: decimal.NewFromInt(500),
	})
	require.NoError(t, err)

	item, err := uc.AddItem(context.Background(), scopeA, inv.ID, dto.PurchaseItemInput{ProductID: "prod-1", Quantity: 5})
	require.NoError(t, err)
	assert.Equal(t, 15, s.products["prod-1"].Stock)

	q := 2
	_, err = uc.UpdateItem(context.Background(), scopeA, item.ID, dto.UpdatePurchaseItemRequest{Quantity: &q})
	require.NoError(t, err)
	assert.Equal(t, 12, s.products["prod-1"].Stock, "delta 2 - 5 = -3")

	require.NoError(t, uc.RemoveItem(context.Background(), scopeA, item.ID))
	assert.Equal(t, 10, s.products["prod-1"].Stock, "vuelta al stock original")
}

// Cambiar el producto de una línea revierte la cantidad anterior en el
// producto previo y aplica la nueva en el nuevo (dos escrituras).
func TestCambioDeProductoDosEscrituras(t *testing.T) {
	uc, s := seedPurchasing(t)
	inv, err := uc.Create(context.Background(), scopeA, dto.CreatePurchaseInvoiceRequest{
		SupplierID: "prov-1",
		Items:      []dto.PurchaseItemInput{{ProductID: "prod-1", Quantity: 5}},
	})
	require.NoError(t, err)
	require.Equal(t, 15, s.products["prod-1"].Stock)

	itemID := inv.Items[0].ID
	newProduct := "prod-2"
	newQty := 3
	_, err = uc.UpdateItem(context.Background(), scopeA, itemID, dto.UpdatePurchaseItemRequest{
		ProductID: &newProduct,
		Quantity:  &newQty,
	})
	require.NoError(t, err)

	assert.Equal(t, 10, s.products["prod-1"].Stock, "15 - 5 revertidas")
	assert.Equal(t, 7, s.products["prod-2"].Stock, "4 + 3 nuevas")
}

// Reemplazar el set completo de líneas revierte las anteriores y aplica
// las nuevas; el efecto neto equivale a un reemplazo atómico.
func TestReemplazoCompletoDeLineas(t *testing.T) {
	uc, s := seedPurchasing(t)
	inv, err := uc.Create(context.Background(), scopeA, dto.CreatePurchaseInvoiceRequest{
		SupplierID: "prov-1",
		Items: []dto.PurchaseItemInput{
			{ProductID: "prod-1", Quantity: 5},
			{ProductID: "prod-2", Quantity: 2},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 15, s.products["prod-1"].Stock)
	require.Equal(t, 6, s.products["prod-2"].Stock)

	updated, err := uc.Update(context.Background(), scopeA, inv.ID, dto.UpdatePurchaseInvoiceRequest{
		Items: []dto.PurchaseItemInput{{ProductID: "prod-2", Quantity: 8}},
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)

	assert.Equal(t, 10, s.products["prod-1"].Stock, "las 5 anteriores revertidas")
	assert.Equal(t, 12, s.products["prod-2"].Stock, "4 + 8 del nuevo set")
	assert.Len(t, s.items, 1)
}

// Eliminar la factura completa revierte el stock de todas sus líneas.
func TestDeleteFacturaRevierteStock(t *testing.T) {
	uc, s := seedPurchasing(t)
	inv, err := uc.Create(context.Background(), scopeA, dto.CreatePurchaseInvoiceRequest{
		SupplierID: "prov-1",
		Items: []dto.PurchaseItemInput{
			{ProductID: "prod-1", Quantity: 5},
			{ProductID: "prod-2", Quantity: 2},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), scopeA, inv.ID))

	assert.Equal(t, 10, s.products["prod-1"].Stock)
	assert.Equal(t, 4, s.products["prod-2"].Stock)
	assert.Empty(t, s.invoices)
	assert.Empty(t, s.items)
}

// Las facturas de compra nunca tocan el saldo de la empresa.
func TestCompraNoTocaElSaldo(t *testing.T) {
	uc, s := seedPurchasing(t)
	inv, err := uc.Create(context.Background(), scopeA, dto.CreatePurchaseInvoiceRequest{
		SupplierID: "prov-1",
		TotalPrice: decimal.NewFromInt(800),
		Items:      []dto.PurchaseItemInput{{ProductID: "prod-1", Quantity: 5}},
	})
	require.NoError(t, err)
	assert.True(t, s.companies[tenantA].CurrentBalance.Equal(decimal.NewFromInt(1000)))

	require.NoError(t, uc.Delete(context.Background(), scopeA, inv.ID))
	assert.True(t, s.companies[tenantA].CurrentBalance.Equal(decimal.NewFromInt(1000)))
}

func TestAislamientoEntreEmpresas(t *testing.T) {
	uc, _ := seedPurchasing(t)
	inv, err := uc.Create(context.Background(), scopeA, dto.CreatePurchaseInvoiceRequest{
		SupplierID: "prov-1",
		Items:      []dto.PurchaseItemInput{{ProductID: "prod-1", Quantity: 5}},
	})
	require.NoError(t, err)

	scopeB := access.Scope{Role: entity.RoleAdmin, TenantID: tenantB}
	assert.ErrorIs(t, uc.Delete(context.Background(), scopeB, inv.ID), domain.ErrForbidden)
	_, err = uc.Update(context.Background(), scopeB, inv.ID, dto.UpdatePurchaseInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestValidaciones(t *testing.T) {
	uc, _ := seedPurchasing(t)

	// Proveedor obligatorio
	_, err := uc.Create(context.Background(), scopeA, dto.CreatePurchaseInvoiceRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Cantidad mínima 1
	_, err = uc.Create(context.Background(), scopeA, dto.CreatePurchaseInvoiceRequest{
		SupplierID: "prov-1",
		Items:      []dto.PurchaseItemInput{{ProductID: "prod-1", Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Producto inexistente
	_, err = uc.Create(context.Background(), scopeA, dto.CreatePurchaseInvoiceRequest{
		SupplierID: "prov-1",
		Items:      []dto.PurchaseItemInput{{ProductID: "prod-zzz", Quantity: 1}},
		Date:       time.Now(),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
