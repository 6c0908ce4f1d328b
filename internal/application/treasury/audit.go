package treasury

import (
	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// AuditUseCase consulta del log de auditoría administrativa.
// Solo ADMIN y SUPERADMIN; cada uno dentro de su alcance.
type AuditUseCase struct {
	auditRepo repository.AuditRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(auditRepo repository.AuditRepository) *AuditUseCase {
	return &AuditUseCase{auditRepo: auditRepo}
}

// ListLogs lista las entradas más recientes del log dentro del alcance
// del actor.
func (uc *AuditUseCase) ListLogs(scope access.Scope, page dto.PageRequest) (*dto.AuditLogListResponse, error) {
	if !scope.CanResetBalance() {
		return nil, domain.ErrForbidden
	}
	page.DefaultPage()
	logs, err := uc.auditRepo.ListLogs(scope.TenantFilter(""), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.AuditLogListResponse{
		Items: make([]dto.AuditLogResponse, 0, len(logs)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, l := range logs {
		out.Items = append(out.Items, dto.AuditLogResponse{
			ID:        l.ID,
			TenantID:  l.TenantID,
			UserID:    l.UserID,
			Action:    l.Action,
			Details:   l.Details,
			IPAddress: l.IPAddress,
			CreatedAt: l.CreatedAt,
		})
	}
	return out, nil
}
