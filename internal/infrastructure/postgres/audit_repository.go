package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

var _ repository.AuditRepository = (*AuditRepo)(nil)

// AuditRepo implementación del puerto AuditRepository sobre PostgreSQL.
type AuditRepo struct {
	db Querier
}

// NewAuditRepository construye el adaptador para el log de auditoría.
// Acepta el pool o una transacción.
func NewAuditRepository(db Querier) *AuditRepo {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) CreateLog(log *entity.AuditLog) error {
	query := `
		INSERT INTO audit_logs (id, tenant_id, user_id, action, details, ip_address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(context.Background(), query,
		log.ID, log.TenantID, log.UserID, log.Action, log.Details, log.IPAddress, log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

func (r *AuditRepo) CreateBalanceTransaction(tx *entity.BalanceTransaction) error {
	query := `
		INSERT INTO balance_transactions (id, tenant_id, user_id, type, amount, previous_balance, new_balance, description, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.Exec(context.Background(), query,
		tx.ID, tx.TenantID, tx.UserID, tx.Type, tx.Amount,
		tx.PreviousBalance, tx.NewBalance, tx.Description, tx.Status, tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert balance transaction: %w", err)
	}
	return nil
}

func (r *AuditRepo) ListLogs(tenantFilter string, limit, offset int) ([]*entity.AuditLog, error) {
	query := `
		SELECT id, tenant_id, user_id, action, details, ip_address, created_at
		FROM audit_logs
		WHERE ($1 = '' OR tenant_id = $1)
		ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(context.Background(), query, tenantFilter, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("query audit logs: %w", err)
	}
	defer rows.Close()

	var out []*entity.AuditLog
	for rows.Next() {
		var l entity.AuditLog
		if err := rows.Scan(&l.ID, &l.TenantID, &l.UserID, &l.Action, &l.Details, &l.IPAddress, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit log: %w", err)
		}
		out = append(out, &l)
	}
	return out, rows.Err()
}
