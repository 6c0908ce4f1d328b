package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ repository.LoanRepository = (*LoanRepo)(nil)

// LoanRepo implementación del puerto LoanRepository sobre PostgreSQL.
type LoanRepo struct {
	db Querier
}

// NewLoanRepository construye el adaptador de persistencia para préstamos.
// Acepta el pool o una transacción.
func NewLoanRepository(db Querier) *LoanRepo {
	return &LoanRepo{db: db}
}

const loanColumns = `id, tenant_id, client_id, client_name, client_identification, amount, description, status, created_at, updated_at`

func scanLoan(row interface{ Scan(dest ...any) error }) (*entity.Loan, error) {
	var l entity.Loan
	err := row.Scan(&l.ID, &l.TenantID, &l.ClientID, &l.ClientName, &l.ClientIdentification,
		&l.Amount, &l.Description, &l.Status, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *LoanRepo) Create(loan *entity.Loan) error {
	query := `
		INSERT INTO loans (id, tenant_id, client_id, client_name, client_identification, amount, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		loan.ID, loan.TenantID, loan.ClientID, loan.ClientName, loan.ClientIdentification,
		loan.Amount, loan.Description, loan.Status, loan.CreatedAt, loan.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert loan: %w", err)
	}
	return nil
}

func (r *LoanRepo) GetByID(id string) (*entity.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	l, err := scanLoan(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get loan: %w", err)
	}
	return l, nil
}

func (r *LoanRepo) UpdateStatus(id string, status bool) error {
	query := `UPDATE loans SET status = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query, id, status)
	if err != nil {
		return fmt.Errorf("update loan status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LoanRepo) Delete(id string) error {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM loans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *LoanRepo) List(tenantFilter string, status *bool) ([]*entity.Loan, error) {
	query := `
		SELECT ` + loanColumns + ` FROM loans
		WHERE ($1 = '' OR tenant_id = $1) AND ($2::boolean IS NULL OR status = $2)
		ORDER BY created_at DESC`
	return r.queryLoans(query, tenantFilter, status)
}

func (r *LoanRepo) ListByClient(clientID string) ([]*entity.Loan, error) {
	query := `
		SELECT ` + loanColumns + ` FROM loans
		WHERE client_id = $1 ORDER BY created_at DESC`
	return r.queryLoans(query, clientID)
}

func (r *LoanRepo) Stats(tenantFilter string) (*repository.LoanStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE NOT status),
			COALESCE(SUM(amount) FILTER (WHERE NOT status), 0),
			COUNT(*) FILTER (WHERE status),
			COALESCE(SUM(amount) FILTER (WHERE status), 0)
		FROM loans
		WHERE ($1 = '' OR tenant_id = $1)`
	var stats repository.LoanStats
	err := r.db.QueryRow(context.Background(), query, tenantFilter).Scan(
		&stats.TotalPending, &stats.TotalAmountPending,
		&stats.TotalReturned, &stats.TotalAmountReturned,
	)
	if err != nil {
		return nil, fmt.Errorf("loan stats: %w", err)
	}
	return &stats, nil
}

func (r *LoanRepo) queryLoans(query string, args ...any) ([]*entity.Loan, error) {
	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var out []*entity.Loan
	for rows.Next() {
		l, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
