package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación del puerto PaymentRepository sobre PostgreSQL.
type PaymentRepo struct {
	db Querier
}

// NewPaymentRepository construye el adaptador de persistencia para pagos.
func NewPaymentRepository(db Querier) *PaymentRepo {
	return &PaymentRepo{db: db}
}

const paymentColumns = `id, tenant_id, invoice_id, amount, payment_method, reference, payment_date, created_at, updated_at`

func scanPayment(row interface{ Scan(dest ...any) error }) (*entity.Payment, error) {
	var p entity.Payment
	err := row.Scan(&p.ID, &p.TenantID, &p.InvoiceID, &p.Amount,
		&p.PaymentMethod, &p.Reference, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) Create(payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, tenant_id, invoice_id, amount, payment_method, reference, payment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.db.Exec(context.Background(), query,
		payment.ID, payment.TenantID, payment.InvoiceID, payment.Amount,
		payment.PaymentMethod, payment.Reference, payment.PaymentDate,
		payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	p, err := scanPayment(r.db.QueryRow(context.Background(), query, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepo) Update(payment *entity.Payment) error {
	query := `
		UPDATE payments SET amount = $2, payment_method = $3, reference = $4, payment_date = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.db.Exec(context.Background(), query,
		payment.ID, payment.Amount, payment.PaymentMethod,
		payment.Reference, payment.PaymentDate, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PaymentRepo) Delete(id string) error {
	cmd, err := r.db.Exec(context.Background(), `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *PaymentRepo) List(tenantFilter string, limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + ` FROM payments
		WHERE ($1 = '' OR tenant_id = $1)
		ORDER BY payment_date DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, tenantFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
