package repository

import "github.com/jhoicas/axia-erp/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
//
// En los métodos de lectura, tenantFilter vacío significa "todas las
// empresas" (solo el scope de un SUPERADMIN produce ese valor). Los
// listados excluyen productos con borrado lógico.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// SoftDelete marca el producto como eliminado sin borrar la fila.
	SoftDelete(id string) error
	List(tenantFilter string, limit, offset int) ([]*entity.Product, error)
	SearchByName(tenantFilter, name string) ([]*entity.Product, error)
	ListPublic(limit int) ([]*entity.Product, error)

	// AdjustStock aplica stock = stock + delta (delta puede ser negativo).
	AdjustStock(id string, delta int) error
}
