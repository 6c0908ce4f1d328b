package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemInput línea de factura de venta en la creación.
type SaleItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateSaleInvoiceRequest entrada para crear una factura de venta con
// sus líneas. TotalPrice es el valor que se descuenta del saldo.
type CreateSaleInvoiceRequest struct {
	ClientID       string          `json:"client_id" validate:"required"`
	Date           time.Time       `json:"date"`
	TotalPrice     decimal.Decimal `json:"total_price"`
	ElectronicBill bool            `json:"electronic_bill"`
	Items          []SaleItemInput `json:"items"`
	TenantID       string          `json:"tenant_id"`
}

// UpdateSaleInvoiceRequest reemplaza cabecera y líneas completas de una
// factura de venta. No vuelve a tocar el saldo.
type UpdateSaleInvoiceRequest struct {
	ClientID       *string          `json:"client_id"`
	Date           *time.Time       `json:"date"`
	TotalPrice     *decimal.Decimal `json:"total_price"`
	ElectronicBill *bool            `json:"electronic_bill"`
	Items          []SaleItemInput  `json:"items"`
}

// SaleItemResponse línea de factura de venta en respuestas.
type SaleItemResponse struct {
	ID        string `json:"id"`
	InvoiceID string `json:"invoice_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// SaleInvoiceResponse salida de una factura de venta.
type SaleInvoiceResponse struct {
	ID             string             `json:"id"`
	TenantID       string             `json:"tenant_id"`
	ClientID       string             `json:"client_id"`
	Date           time.Time          `json:"date"`
	TotalPrice     decimal.Decimal    `json:"total_price"`
	ElectronicBill bool               `json:"electronic_bill"`
	Items          []SaleItemResponse `json:"items,omitempty"`
	Warning        string             `json:"warning,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// SaleInvoiceListResponse lista paginada de facturas de venta.
type SaleInvoiceListResponse struct {
	Items []SaleInvoiceResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// UpdateSaleItemRequest cambia producto o cantidad de una línea suelta.
type UpdateSaleItemRequest struct {
	ProductID *string `json:"product_id"`
	Quantity  *int    `json:"quantity" validate:"omitempty,min=1"`
}

// CreatePaymentRequest entrada para registrar un pago de factura.
type CreatePaymentRequest struct {
	InvoiceID     string          `json:"invoice_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Reference     string          `json:"reference"`
	PaymentDate   time.Time       `json:"payment_date"`
	TenantID      string          `json:"tenant_id"`
}

// UpdatePaymentRequest entrada para actualizar un pago (campos opcionales).
type UpdatePaymentRequest struct {
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"payment_method"`
	Reference     *string          `json:"reference"`
	PaymentDate   *time.Time       `json:"payment_date"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	InvoiceID     string          `json:"invoice_id"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	Reference     string          `json:"reference"`
	PaymentDate   time.Time       `json:"payment_date"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// PaymentListResponse lista paginada de pagos.
type PaymentListResponse struct {
	Items []PaymentResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
