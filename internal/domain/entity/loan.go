package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan representa un préstamo de caja a un cliente.
//
// Status false = pendiente (el dinero salió de la caja), true = devuelto.
// Reglas de saldo: crear pendiente resta Amount; pasar a devuelto suma
// Amount; volver a pendiente resta de nuevo; eliminar un préstamo
// pendiente devuelve Amount a la caja; eliminar uno devuelto no afecta.
type Loan struct {
	ID                   string
	TenantID             string
	ClientID             string
	ClientName           string
	ClientIdentification string
	Amount               decimal.Decimal
	Description          string
	Status               bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
