package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/axia-erp/internal/application/billing"
	"github.com/jhoicas/axia-erp/internal/application/purchasing"
	"github.com/jhoicas/axia-erp/internal/application/treasury"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ billing.TxRunner = (*TxRunner)(nil)
var _ purchasing.TxRunner = (*TxRunner)(nil)
var _ treasury.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con
// repositorios atados a la tx. Un error del callback hace Rollback.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunSales transacción con repos de facturación de venta.
func (r *TxRunner) RunSales(ctx context.Context, fn func(
	invoiceRepo repository.SaleInvoiceRepository,
	productRepo repository.ProductRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSaleInvoiceRepository(tx), NewProductRepository(tx), NewCompanyRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPurchasing transacción con repos de compras.
func (r *TxRunner) RunPurchasing(ctx context.Context, fn func(
	invoiceRepo repository.PurchaseInvoiceRepository,
	productRepo repository.ProductRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewPurchaseInvoiceRepository(tx), NewProductRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunTreasury transacción con repos de tesorería y auditoría.
func (r *TxRunner) RunTreasury(ctx context.Context, fn func(
	depositRepo repository.SupplierDepositRepository,
	loanRepo repository.LoanRepository,
	companyRepo repository.CompanyRepository,
	auditRepo repository.AuditRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewSupplierDepositRepository(tx), NewLoanRepository(tx), NewCompanyRepository(tx), NewAuditRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
