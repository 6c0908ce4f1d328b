package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleInvoice representa la cabecera de una factura de venta.
//
// Crear una factura de venta descuenta TotalPrice del saldo de la
// empresa; actualizarla o eliminarla no vuelve a tocar el saldo.
// ElectronicBill marca que debe generarse el XML de factura electrónica
// después de persistir (efecto no fatal: si falla, solo se registra).
type SaleInvoice struct {
	ID             string
	TenantID       string
	ClientID       string
	Date           time.Time
	TotalPrice     decimal.Decimal
	ElectronicBill bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SaleInvoiceItem es una línea de factura de venta (producto + cantidad).
//
// Crear o actualizar la línea NO descuenta stock; eliminar la línea (o la
// factura completa) incrementa el stock del producto en Quantity. La
// asimetría replica el comportamiento del flujo de caja observado.
type SaleInvoiceItem struct {
	ID        string
	TenantID  string
	InvoiceID string
	ProductID string
	Quantity  int
	CreatedAt time.Time
}
