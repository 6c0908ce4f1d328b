package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Acciones registradas en el log de auditoría.
const (
	AuditActionResetBalance = "RESET_BALANCE"
)

// AuditLog registra acciones administrativas sensibles (quién, qué, desde dónde).
type AuditLog struct {
	ID        string
	TenantID  string
	UserID    string
	Action    string
	Details   string
	IPAddress string
	CreatedAt time.Time
}

// Tipos y estados de transacciones de saldo.
const (
	TxTypeBalanceReset = "BALANCE_RESET"
	TxStatusCompleted  = "COMPLETED"
)

// BalanceTransaction deja rastro de cada cambio administrativo del saldo
// (hoy solo el reset), con el valor anterior y el nuevo.
type BalanceTransaction struct {
	ID              string
	TenantID        string
	UserID          string
	Type            string
	Amount          decimal.Decimal
	PreviousBalance decimal.Decimal
	NewBalance      decimal.Decimal
	Description     string
	Status          string
	CreatedAt       time.Time
}
