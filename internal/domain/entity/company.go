package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Company representa una empresa/tenant del sistema. Todas las demás
// entidades le pertenecen vía TenantID.
//
// CurrentBalance es el saldo de caja acumulado de la empresa. Solo lo
// mutan las rutas de negocio (facturas de venta, depósitos a proveedores,
// préstamos) y el reset administrativo; nunca se edita directamente.
type Company struct {
	ID             string
	NIT            string // NIT colombiano (con o sin dígito de verificación)
	Name           string
	Address        string
	Phone          string
	Sector         string
	CurrentBalance decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
