package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseInvoice representa la cabecera de una factura de compra a un
// proveedor. No afecta el saldo de la empresa.
type PurchaseInvoice struct {
	ID         string
	TenantID   string
	SupplierID string
	Date       time.Time
	TotalPrice decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PurchaseInvoiceItem es una línea de factura de compra.
//
// Crear la línea suma Quantity al stock del producto; eliminarla lo
// resta. Actualizar la cantidad aplica el delta; cambiar de producto
// resta la cantidad anterior al producto previo y suma la nueva al nuevo.
type PurchaseInvoiceItem struct {
	ID        string
	TenantID  string
	InvoiceID string
	ProductID string
	Quantity  int
	CreatedAt time.Time
}
