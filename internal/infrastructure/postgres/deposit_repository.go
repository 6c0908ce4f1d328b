package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ repository.SupplierDepositRepository = (*SupplierDepositRepo)(nil)

// SupplierDepositRepo implementación del puerto SupplierDepositRepository
// sobre PostgreSQL.
type SupplierDepositRepo struct {
	db Querier
}

// NewSupplierDepositRepository construye el adaptador de persistencia para
// depósitos de proveedores. Acepta el pool o una transacción.
func NewSupplierDepositRepository(db Querier) *SupplierDepositRepo {
	return &SupplierDepositRepo{db: db}
}

const depositColumns = `id, tenant_id, supplier_id, amount, created_at, updated_at`

func scanDeposit(row interface{ Scan(dest ...any) error }) (*entity.SupplierDeposit, error) {
	var d entity.SupplierDeposit
	err := row.Scan(&d.ID, &d.TenantID, &d.SupplierID, &d.Amount, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *SupplierDepositRepo) Create(deposit *entity.SupplierDeposit) error {
	query := `
		INSERT INTO supplier_deposits (id, tenant_id, supplier_id, amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(context.Background(), query,
		deposit.ID, deposit.TenantID, deposit.SupplierID, deposit.Amount,
		deposit.CreatedAt, deposit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert deposit: %w", err)
	}
	return nil
}

func (r *SupplierDepositRepo) GetByID(id string) (*entity.SupplierDeposit, error) {
	query := `SELECT ` + depositColumns + ` FROM supplier_deposits WHERE id = $1`
	d, err := scanDeposit(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get deposit: %w", err)
	}
	return d, nil
}

func (r *SupplierDepositRepo) UpdateAmount(id string, amount decimal.Decimal) error {
	query := `UPDATE supplier_deposits SET amount = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query, id, amount)
	if err != nil {
		return fmt.Errorf("update deposit amount: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierDepositRepo) Delete(id string) error {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM supplier_deposits WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete deposit: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SupplierDepositRepo) List(tenantFilter string, limit, offset int) ([]*entity.SupplierDeposit, error) {
	query := `
		SELECT ` + depositColumns + ` FROM supplier_deposits
		WHERE ($1 = '' OR tenant_id = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, tenantFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query deposits: %w", err)
	}
	defer rows.Close()

	var out []*entity.SupplierDeposit
	for rows.Next() {
		d, err := scanDeposit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deposit: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
