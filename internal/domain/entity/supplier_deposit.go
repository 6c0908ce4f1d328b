package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SupplierDeposit representa un depósito recibido de un proveedor.
// Crear suma Amount al saldo de la empresa, eliminar lo resta y
// actualizar ajusta el saldo por la diferencia (nuevo - anterior).
type SupplierDeposit struct {
	ID         string
	TenantID   string
	SupplierID string
	Amount     decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
