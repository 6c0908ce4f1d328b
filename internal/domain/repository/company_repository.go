package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/domain/entity"
)

// CompanyRepository puerto de persistencia para empresas (tenants).
//
// AdjustBalance y ResetBalance son las únicas vías de escritura del saldo:
// incrementos atómicos en el almacenamiento, nunca read-modify-write en
// código de aplicación.
type CompanyRepository interface {
	Create(company *entity.Company) error
	GetByID(id string) (*entity.Company, error)
	Update(company *entity.Company) error
	Delete(id string) error
	List(limit, offset int) ([]*entity.Company, error)

	// AdjustBalance aplica current_balance = current_balance + delta (delta puede ser negativo).
	AdjustBalance(id string, delta decimal.Decimal) error
	// ResetBalance pone el saldo en 0.
	ResetBalance(id string) error
}
