package repository

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/domain/entity"
)

// PaymentRepository puerto de persistencia para pagos de facturas.
type PaymentRepository interface {
	Create(payment *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	Update(payment *entity.Payment) error
	Delete(id string) error
	List(tenantFilter string, limit, offset int) ([]*entity.Payment, error)
}

// SupplierDepositRepository puerto de persistencia para depósitos de proveedores.
type SupplierDepositRepository interface {
	Create(deposit *entity.SupplierDeposit) error
	GetByID(id string) (*entity.SupplierDeposit, error)
	UpdateAmount(id string, amount decimal.Decimal) error
	Delete(id string) error
	List(tenantFilter string, limit, offset int) ([]*entity.SupplierDeposit, error)
}

// LoanStats agregados de préstamos por estado.
type LoanStats struct {
	TotalPending        int
	TotalAmountPending  decimal.Decimal
	TotalReturned       int
	TotalAmountReturned decimal.Decimal
}

// LoanRepository puerto de persistencia para préstamos.
// status nil = todos los estados.
type LoanRepository interface {
	Create(loan *entity.Loan) error
	GetByID(id string) (*entity.Loan, error)
	UpdateStatus(id string, status bool) error
	Delete(id string) error
	List(tenantFilter string, status *bool) ([]*entity.Loan, error)
	ListByClient(clientID string) ([]*entity.Loan, error)
	Stats(tenantFilter string) (*LoanStats, error)
}
