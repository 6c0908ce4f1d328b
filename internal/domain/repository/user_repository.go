package repository

import (
	"time"

	"github.com/jhoicas/axia-erp/internal/domain/entity"
)

// UserRepository puerto de persistencia para usuarios.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id string) error
	List(tenantFilter string, limit, offset int) ([]*entity.User, error)
	SearchByNameOrRole(tenantFilter, name, role string) ([]*entity.User, error)
	ListPublic(limit int) ([]*entity.User, error)
	// Count total de usuarios del sistema (bootstrap del primer SUPERADMIN).
	Count() (int, error)
}

// RevokedTokenRepository lista de denegación de sesiones.
type RevokedTokenRepository interface {
	Revoke(token string) error
	IsRevoked(token string) (bool, error)
	// PurgeOlderThan elimina entradas anteriores a cutoff; devuelve cuántas.
	PurgeOlderThan(cutoff time.Time) (int64, error)
}
