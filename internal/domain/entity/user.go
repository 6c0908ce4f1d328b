package entity

import "time"

// Roles válidos para User. SUPERADMIN tiene visibilidad entre empresas;
// los demás quedan restringidos a su TenantID.
const (
	RoleSuperAdmin = "SUPERADMIN"
	RoleAdmin      = "ADMIN"
	RoleEditor     = "EDITOR"
	RoleUser       = "USER"
)

// User representa un usuario del sistema. TenantID va vacío para
// usuarios SUPERADMIN (no pertenecen a ninguna empresa).
type User struct {
	ID           string
	TenantID     string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string
	Avatar       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ValidRole informa si el rol es uno de los conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleSuperAdmin, RoleAdmin, RoleEditor, RoleUser:
		return true
	}
	return false
}
