package billing_test

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria compartidos por los tests de facturación.
// El txRunner falso ejecuta fn directamente sobre los mismos fakes: no hay
// rollback, pero los tests solo recorren caminos felices o fallan antes de
// la primera escritura.
// ──────────────────────────────────────────────────────────────────────────────

type memState struct {
	companies map[string]*entity.Company
	clients   map[string]*entity.Client
	products  map[string]*entity.Product
	invoices  map[string]*entity.SaleInvoice
	items     map[string]*entity.SaleInvoiceItem
}

func newMemState() *memState {
	return &memState{
		companies: map[string]*entity.Company{},
		clients:   map[string]*entity.Client{},
		products:  map[string]*entity.Product{},
		invoices:  map[string]*entity.SaleInvoice{},
		items:     map[string]*entity.SaleInvoiceItem{},
	}
}

type memCompanyRepo struct{ s *memState }

func (r *memCompanyRepo) Create(c *entity.Company) error { r.s.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) {
	c, ok := r.s.companies[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *memCompanyRepo) Update(c *entity.Company) error { r.s.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) Delete(id string) error         { delete(r.s.companies, id); return nil }
func (r *memCompanyRepo) List(int, int) ([]*entity.Company, error) {
	out := make([]*entity.Company, 0, len(r.s.companies))
	for _, c := range r.s.companies {
		out = append(out, c)
	}
	return out, nil
}
func (r *memCompanyRepo) AdjustBalance(id string, delta decimal.Decimal) error {
	c, ok := r.s.companies[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.CurrentBalance = c.CurrentBalance.Add(delta)
	return nil
}
func (r *memCompanyRepo) ResetBalance(id string) error {
	c, ok := r.s.companies[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.CurrentBalance = decimal.Zero
	return nil
}

type memClientRepo struct{ s *memState }

func (r *memClientRepo) Create(c *entity.Client) error { r.s.clients[c.ID] = c; return nil }
func (r *memClientRepo) GetByID(id string) (*entity.Client, error) {
	c, ok := r.s.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (r *memClientRepo) Update(c *entity.Client) error { r.s.clients[c.ID] = c; return nil }
func (r *memClientRepo) Delete(id string) error        { delete(r.s.clients, id); return nil }
func (r *memClientRepo) List(string, int, int) ([]*entity.Client, error) {
	return nil, nil
}
func (r *memClientRepo) SearchByName(string, string) ([]*entity.Client, error) { return nil, nil }

type memProductRepo struct{ s *memState }

func (r *memProductRepo) Create(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.s.products[p.ID] = p; return nil }
func (r *memProductRepo) SoftDelete(id string) error {
	if p, ok := r.s.products[id]; ok {
		p.IsDeleted = true
	}
	return nil
}
func (r *memProductRepo) List(string, int, int) ([]*entity.Product, error)    { return nil, nil }
func (r *memProductRepo) SearchByName(string, string) ([]*entity.Product, error) { return nil, nil }
func (r *memProductRepo) ListPublic(int) ([]*entity.Product, error)           { return nil, nil }
func (r *memProductRepo) AdjustStock(id string, delta int) error {
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock += delta
	return nil
}

type memSaleInvoiceRepo struct{ s *memState }

func (r *memSaleInvoiceRepo) Create(inv *entity.SaleInvoice) error {
	r.s.invoices[inv.ID] = inv
	return nil
}
func (r *memSaleInvoiceRepo) GetByID(id string) (*entity.SaleInvoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	return inv, nil
}
func (r *memSaleInvoiceRepo) Update(inv *entity.SaleInvoice) error {
	r.s.invoices[inv.ID] = inv
	return nil
}
func (r *memSaleInvoiceRepo) Delete(id string) error { delete(r.s.invoices, id); return nil }
func (r *memSaleInvoiceRepo) List(tenantFilter string, _, _ int) ([]*entity.SaleInvoice, error) {
	var out []*entity.SaleInvoice
	for _, inv := range r.s.invoices {
		if tenantFilter == "" || inv.TenantID == tenantFilter {
			out = append(out, inv)
		}
	}
	return out, nil
}
func (r *memSaleInvoiceRepo) ListPublic(limit int) ([]*entity.SaleInvoice, error) {
	return r.List("", limit, 0)
}
func (r *memSaleInvoiceRepo) SearchByDateRange(tenantFilter string, from, to time.Time) ([]*entity.SaleInvoice, error) {
	var out []*entity.SaleInvoice
	for _, inv := range r.s.invoices {
		if tenantFilter != "" && inv.TenantID != tenantFilter {
			continue
		}
		if inv.Date.Before(from) || inv.Date.After(to) {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}
func (r *memSaleInvoiceRepo) SearchByClientName(tenantFilter, name string) ([]*entity.SaleInvoice, error) {
	var out []*entity.SaleInvoice
	for _, inv := range r.s.invoices {
		if tenantFilter != "" && inv.TenantID != tenantFilter {
			continue
		}
		client, ok := r.s.clients[inv.ClientID]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(client.FullName()), strings.ToLower(name)) {
			out = append(out, inv)
		}
	}
	return out, nil
}
func (r *memSaleInvoiceRepo) CreateItem(item *entity.SaleInvoiceItem) error {
	r.s.items[item.ID] = item
	return nil
}
func (r *memSaleInvoiceRepo) GetItem(id string) (*entity.SaleInvoiceItem, error) {
	item, ok := r.s.items[id]
	if !ok {
		return nil, nil
	}
	return item, nil
}
func (r *memSaleInvoiceRepo) UpdateItem(item *entity.SaleInvoiceItem) error {
	r.s.items[item.ID] = item
	return nil
}
func (r *memSaleInvoiceRepo) DeleteItem(id string) error { delete(r.s.items, id); return nil }
func (r *memSaleInvoiceRepo) ListItems(invoiceID string) ([]*entity.SaleInvoiceItem, error) {
	var out []*entity.SaleInvoiceItem
	for _, item := range r.s.items {
		if item.InvoiceID == invoiceID {
			out = append(out, item)
		}
	}
	return out, nil
}
func (r *memSaleInvoiceRepo) DeleteItems(invoiceID string) error {
	for id, item := range r.s.items {
		if item.InvoiceID == invoiceID {
			delete(r.s.items, id)
		}
	}
	return nil
}

type memTxRunner struct{ s *memState }

func (t *memTxRunner) RunSales(_ context.Context, fn func(
	invoiceRepo repository.SaleInvoiceRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	return fn(&memSaleInvoiceRepo{t.s}, &memProductRepo{t.s}, &memCompanyRepo{t.s})
}

// fakePublisher registra las publicaciones; con fail activo siempre falla.
type fakePublisher struct {
	published []string
	fail      bool
}

func (p *fakePublisher) Publish(_ context.Context, inv *entity.SaleInvoice, _ []*entity.SaleInvoiceItem, _ *entity.Client, _ *entity.Company, _ map[string]*entity.Product) error {
	if p.fail {
		return errors.New("xml: disco lleno")
	}
	p.published = append(p.published, inv.ID)
	return nil
}
