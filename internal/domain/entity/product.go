package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una empresa.
//
// Stock solo se muta a través de la reconciliación de líneas de factura
// de compra/venta (incrementos atómicos en la capa de almacenamiento).
// El borrado es lógico (IsDeleted); los listados filtran los eliminados.
type Product struct {
	ID            string
	TenantID      string
	SupplierID    string
	Name          string
	SalePrice     decimal.Decimal
	PurchasePrice decimal.Decimal
	Tax           decimal.Decimal // porcentaje de IVA: 0, 5 o 19
	Stock         int
	IsDeleted     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
