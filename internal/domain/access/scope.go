// Package access centraliza la política de alcance multi-tenant: qué filas
// puede ver y mutar un actor según su rol y su empresa. Reemplaza el
// branching por rol repetido en cada handler con un único componente.
package access

import (
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
)

// Scope es la identidad efectiva del actor para decisiones de alcance.
// TenantID va vacío para SUPERADMIN.
type Scope struct {
	Role     string
	TenantID string
}

// IsSuperAdmin informa si el actor tiene visibilidad entre empresas.
func (s Scope) IsSuperAdmin() bool {
	return s.Role == entity.RoleSuperAdmin
}

// TenantFilter devuelve el tenant con el que filtrar lecturas.
// SUPERADMIN puede pasar un tenant explícito para acotar voluntariamente
// (vacío = todas las empresas); cualquier otro rol queda siempre
// restringido a su propia empresa, ignorando lo que venga en el request.
func (s Scope) TenantFilter(requested string) string {
	if s.IsSuperAdmin() {
		return requested
	}
	return s.TenantID
}

// WriteTenant devuelve el tenant que debe llevar un payload de escritura.
// Para no-SUPERADMIN se fuerza el tenant del actor: un request no puede
// suplantar el tenantId de otra empresa. SUPERADMIN debe indicar uno.
func (s Scope) WriteTenant(requested string) (string, error) {
	if s.IsSuperAdmin() {
		if requested == "" {
			return "", domain.ErrInvalidInput
		}
		return requested, nil
	}
	if s.TenantID == "" {
		return "", domain.ErrForbidden
	}
	return s.TenantID, nil
}

// CanMutate valida la propiedad de una fila ya cargada antes de
// actualizarla o eliminarla. Un mismatch es un error de autorización
// explícito, no un filtrado silencioso.
func (s Scope) CanMutate(rowTenantID string) error {
	if s.IsSuperAdmin() {
		return nil
	}
	if rowTenantID != s.TenantID {
		return domain.ErrForbidden
	}
	return nil
}

// CanResetBalance informa si el actor puede resetear el saldo de una
// empresa (solo ADMIN y SUPERADMIN).
func (s Scope) CanResetBalance() bool {
	return s.Role == entity.RoleAdmin || s.Role == entity.RoleSuperAdmin
}

// CanAssignRole informa si el actor puede asignar el rol dado al crear o
// actualizar usuarios. Solo SUPERADMIN crea otros SUPERADMIN; los demás
// actores solo crean usuarios rasos.
func (s Scope) CanAssignRole(role string) bool {
	if role == entity.RoleSuperAdmin {
		return s.IsSuperAdmin()
	}
	return true
}
