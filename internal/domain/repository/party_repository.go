package repository

import "github.com/jhoicas/axia-erp/internal/domain/entity"

// ClientRepository puerto de persistencia para clientes.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	Delete(id string) error
	List(tenantFilter string, limit, offset int) ([]*entity.Client, error)
	SearchByName(tenantFilter, name string) ([]*entity.Client, error)
}

// SupplierRepository puerto de persistencia para proveedores.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	Delete(id string) error
	List(tenantFilter string, limit, offset int) ([]*entity.Supplier, error)
	SearchByName(tenantFilter, name string) ([]*entity.Supplier, error)
}
