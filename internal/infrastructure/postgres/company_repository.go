package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (id, nit, name, address, phone, sector, current_balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		company.ID, company.NIT, company.Name, company.Address,
		company.Phone, company.Sector, company.CurrentBalance,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(id string) (*entity.Company, error) {
	query := `
		SELECT id, nit, name, address, phone, sector, current_balance, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.db.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.NIT, &c.Name, &c.Address, &c.Phone, &c.Sector,
		&c.CurrentBalance, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente (nunca el saldo).
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `
		UPDATE companies SET nit = $2, name = $3, address = $4, phone = $5, sector = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query,
		company.ID, company.NIT, company.Name, company.Address,
		company.Phone, company.Sector, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una empresa.
func (r *CompanyRepo) Delete(id string) error {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List empresas paginadas.
func (r *CompanyRepo) List(limit, offset int) ([]*entity.Company, error) {
	query := `
		SELECT id, nit, name, address, phone, sector, current_balance, created_at, updated_at
		FROM companies ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var out []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.NIT, &c.Name, &c.Address, &c.Phone, &c.Sector,
			&c.CurrentBalance, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		out = append(out, &c)
	}
	return out, rows.Err()
}

// AdjustBalance incremento atómico del saldo en el almacenamiento: las
// escrituras concurrentes no se pisan entre sí.
func (r *CompanyRepo) AdjustBalance(id string, delta decimal.Decimal) error {
	query := `UPDATE companies SET current_balance = current_balance + $2, updated_at = now() WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query, id, delta)
	if err != nil {
		return fmt.Errorf("adjust balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ResetBalance pone el saldo en cero.
func (r *CompanyRepo) ResetBalance(id string) error {
	cmd, err := r.db.Exec(context.Background(),
		`UPDATE companies SET current_balance = 0, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("reset balance: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
