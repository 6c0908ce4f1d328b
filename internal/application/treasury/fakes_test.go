package treasury_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// Fakes en memoria para los tests de tesorería.

type memState struct {
	companies map[string]*entity.Company
	suppliers map[string]*entity.Supplier
	clients   map[string]*entity.Client
	deposits  map[string]*entity.SupplierDeposit
	loans     map[string]*entity.Loan
	payments  map[string]*entity.Payment
	invoices  map[string]*entity.SaleInvoice
	auditLogs []*entity.AuditLog
	balanceTx []*entity.BalanceTransaction
}

func newMemState() *memState {
	return &memState{
		companies: map[string]*entity.Company{},
		suppliers: map[string]*entity.Supplier{},
		clients:   map[string]*entity.Client{},
		deposits:  map[string]*entity.SupplierDeposit{},
		loans:     map[string]*entity.Loan{},
		payments:  map[string]*entity.Payment{},
		invoices:  map[string]*entity.SaleInvoice{},
	}
}

type memCompanyRepo struct{ s *memState }

func (r *memCompanyRepo) Create(c *entity.Company) error             { r.s.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) GetByID(id string) (*entity.Company, error) { return r.s.companies[id], nil }
func (r *memCompanyRepo) Update(c *entity.Company) error             { r.s.companies[c.ID] = c; return nil }
func (r *memCompanyRepo) Delete(id string) error                     { delete(r.s.companies, id); return nil }
func (r *memCompanyRepo) List(int, int) ([]*entity.Company, error)   { return nil, nil }
func (r *memCompanyRepo) AdjustBalance(id string, delta decimal.Decimal) error {
	c := r.s.companies[id]
	if c == nil {
		return domain.ErrNotFound
	}
	c.CurrentBalance = c.CurrentBalance.Add(delta)
	return nil
}
func (r *memCompanyRepo) ResetBalance(id string) error {
	c := r.s.companies[id]
	if c == nil {
		return domain.ErrNotFound
	}
	c.CurrentBalance = decimal.Zero
	return nil
}

type memSupplierRepo struct{ s *memState }

func (r *memSupplierRepo) Create(sp *entity.Supplier) error            { r.s.suppliers[sp.ID] = sp; return nil }
func (r *memSupplierRepo) GetByID(id string) (*entity.Supplier, error) { return r.s.suppliers[id], nil }
func (r *memSupplierRepo) Update(sp *entity.Supplier) error            { r.s.suppliers[sp.ID] = sp; return nil }
func (r *memSupplierRepo) Delete(id string) error                      { delete(r.s.suppliers, id); return nil }
func (r *memSupplierRepo) List(string, int, int) ([]*entity.Supplier, error) {
	return nil, nil
}
func (r *memSupplierRepo) SearchByName(string, string) ([]*entity.Supplier, error) {
	return nil, nil
}

type memClientRepo struct{ s *memState }

func (r *memClientRepo) Create(c *entity.Client) error             { r.s.clients[c.ID] = c; return nil }
func (r *memClientRepo) GetByID(id string) (*entity.Client, error) { return r.s.clients[id], nil }
func (r *memClientRepo) Update(c *entity.Client) error             { r.s.clients[c.ID] = c; return nil }
func (r *memClientRepo) Delete(id string) error                    { delete(r.s.clients, id); return nil }
func (r *memClientRepo) List(string, int, int) ([]*entity.Client, error) {
	return nil, nil
}
func (r *memClientRepo) SearchByName(string, string) ([]*entity.Client, error) { return nil, nil }

type memDepositRepo struct{ s *memState }

func (r *memDepositRepo) Create(d *entity.SupplierDeposit) error { r.s.deposits[d.ID] = d; return nil }
func (r *memDepositRepo) GetByID(id string) (*entity.SupplierDeposit, error) {
	return r.s.deposits[id], nil
}
func (r *memDepositRepo) UpdateAmount(id string, amount decimal.Decimal) error {
	d := r.s.deposits[id]
	if d == nil {
		return domain.ErrNotFound
	}
	d.Amount = amount
	return nil
}
func (r *memDepositRepo) Delete(id string) error { delete(r.s.deposits, id); return nil }
func (r *memDepositRepo) List(tenantFilter string, _, _ int) ([]*entity.SupplierDeposit, error) {
	var out []*entity.SupplierDeposit
	for _, d := range r.s.deposits {
		if tenantFilter == "" || d.TenantID == tenantFilter {
			out = append(out, d)
		}
	}
	return out, nil
}

type memLoanRepo struct{ s *memState }

func (r *memLoanRepo) Create(l *entity.Loan) error             { r.s.loans[l.ID] = l; return nil }
func (r *memLoanRepo) GetByID(id string) (*entity.Loan, error) { return r.s.loans[id], nil }
func (r *memLoanRepo) UpdateStatus(id string, status bool) error {
	l := r.s.loans[id]
	if l == nil {
		return domain.ErrNotFound
	}
	l.Status = status
	return nil
}
func (r *memLoanRepo) Delete(id string) error { delete(r.s.loans, id); return nil }
func (r *memLoanRepo) List(tenantFilter string, status *bool) ([]*entity.Loan, error) {
	var out []*entity.Loan
	for _, l := range r.s.loans {
		if tenantFilter != "" && l.TenantID != tenantFilter {
			continue
		}
		if status != nil && l.Status != *status {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}
func (r *memLoanRepo) ListByClient(clientID string) ([]*entity.Loan, error) {
	var out []*entity.Loan
	for _, l := range r.s.loans {
		if l.ClientID == clientID {
			out = append(out, l)
		}
	}
	return out, nil
}
func (r *memLoanRepo) Stats(tenantFilter string) (*repository.LoanStats, error) {
	stats := &repository.LoanStats{
		TotalAmountPending:  decimal.Zero,
		TotalAmountReturned: decimal.Zero,
	}
	for _, l := range r.s.loans {
		if tenantFilter != "" && l.TenantID != tenantFilter {
			continue
		}
		if l.Status {
			stats.TotalReturned++
			stats.TotalAmountReturned = stats.TotalAmountReturned.Add(l.Amount)
		} else {
			stats.TotalPending++
			stats.TotalAmountPending = stats.TotalAmountPending.Add(l.Amount)
		}
	}
	return stats, nil
}

type memAuditRepo struct{ s *memState }

func (r *memAuditRepo) CreateLog(l *entity.AuditLog) error {
	r.s.auditLogs = append(r.s.auditLogs, l)
	return nil
}
func (r *memAuditRepo) CreateBalanceTransaction(tx *entity.BalanceTransaction) error {
	r.s.balanceTx = append(r.s.balanceTx, tx)
	return nil
}
func (r *memAuditRepo) ListLogs(string, int, int) ([]*entity.AuditLog, error) {
	return r.s.auditLogs, nil
}

type memPaymentRepo struct{ s *memState }

func (r *memPaymentRepo) Create(p *entity.Payment) error             { r.s.payments[p.ID] = p; return nil }
func (r *memPaymentRepo) GetByID(id string) (*entity.Payment, error) { return r.s.payments[id], nil }
func (r *memPaymentRepo) Update(p *entity.Payment) error             { r.s.payments[p.ID] = p; return nil }
func (r *memPaymentRepo) Delete(id string) error                     { delete(r.s.payments, id); return nil }
func (r *memPaymentRepo) List(tenantFilter string, _, _ int) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.s.payments {
		if tenantFilter == "" || p.TenantID == tenantFilter {
			out = append(out, p)
		}
	}
	return out, nil
}

// memInvoiceRepo solo implementa lo que PaymentUseCase necesita.
type memInvoiceRepo struct{ s *memState }

func (r *memInvoiceRepo) Create(inv *entity.SaleInvoice) error { r.s.invoices[inv.ID] = inv; return nil }
func (r *memInvoiceRepo) GetByID(id string) (*entity.SaleInvoice, error) {
	return r.s.invoices[id], nil
}
func (r *memInvoiceRepo) Update(inv *entity.SaleInvoice) error { r.s.invoices[inv.ID] = inv; return nil }
func (r *memInvoiceRepo) Delete(id string) error               { delete(r.s.invoices, id); return nil }
func (r *memInvoiceRepo) List(string, int, int) ([]*entity.SaleInvoice, error) {
	return nil, nil
}
func (r *memInvoiceRepo) ListPublic(int) ([]*entity.SaleInvoice, error) { return nil, nil }
func (r *memInvoiceRepo) SearchByDateRange(string, time.Time, time.Time) ([]*entity.SaleInvoice, error) {
	return nil, nil
}
func (r *memInvoiceRepo) SearchByClientName(string, string) ([]*entity.SaleInvoice, error) {
	return nil, nil
}
func (r *memInvoiceRepo) CreateItem(*entity.SaleInvoiceItem) error          { return nil }
func (r *memInvoiceRepo) GetItem(string) (*entity.SaleInvoiceItem, error)   { return nil, nil }
func (r *memInvoiceRepo) UpdateItem(*entity.SaleInvoiceItem) error          { return nil }
func (r *memInvoiceRepo) DeleteItem(string) error                           { return nil }
func (r *memInvoiceRepo) ListItems(string) ([]*entity.SaleInvoiceItem, error) { return nil, nil }
func (r *memInvoiceRepo) DeleteItems(string) error                          { return nil }

type memTxRunner struct{ s *memState }

func (t *memTxRunner) RunTreasury(_ context.Context, fn func(
	depositRepo repository.SupplierDepositRepository,
	loanRepo repository.LoanRepository,
	companyRepo repository.CompanyRepository,
	auditRepo repository.AuditRepository,
) error) error {
	return fn(&memDepositRepo{t.s}, &memLoanRepo{t.s}, &memCompanyRepo{t.s}, &memAuditRepo{t.s})
}

type nopReceipts struct{}

func (nopReceipts) LoanReceiptPDF(*entity.Loan, *entity.Client, *entity.Company) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}
