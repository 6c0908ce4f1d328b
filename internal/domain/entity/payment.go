package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment representa un pago asociado a una factura de venta.
// No afecta el saldo de la empresa: el saldo se mueve al crear la
// factura, no al cobrarla.
type Payment struct {
	ID            string
	TenantID      string
	InvoiceID     string
	Amount        decimal.Decimal
	PaymentMethod string
	Reference     string
	PaymentDate   time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
