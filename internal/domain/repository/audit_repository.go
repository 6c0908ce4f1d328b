package repository

import "github.com/jhoicas/axia-erp/internal/domain/entity"

// AuditRepository registra acciones sensibles y movimientos de balance.
type AuditRepository interface {
	CreateLog(log *entity.AuditLog) error
	CreateBalanceTransaction(tx *entity.BalanceTransaction) error
	ListLogs(tenantFilter string, limit, offset int) ([]*entity.AuditLog, error)
}
