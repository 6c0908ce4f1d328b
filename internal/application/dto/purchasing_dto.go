package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseItemInput línea de factura de compra en la creación.
type PurchaseItemInput struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreatePurchaseInvoiceRequest entrada para crear una factura de compra
// con sus líneas. Cada línea suma su cantidad al stock del producto.
type CreatePurchaseInvoiceRequest struct {
	SupplierID string              `json:"supplier_id" validate:"required"`
	Date       time.Time           `json:"date"`
	TotalPrice decimal.Decimal     `json:"total_price"`
	Items      []PurchaseItemInput `json:"items"`
	TenantID   string              `json:"tenant_id"`
}

// UpdatePurchaseInvoiceRequest reemplaza cabecera y líneas completas.
// Las líneas anteriores revierten su stock y las nuevas lo aplican.
type UpdatePurchaseInvoiceRequest struct {
	SupplierID *string             `json:"supplier_id"`
	Date       *time.Time          `json:"date"`
	TotalPrice *decimal.Decimal    `json:"total_price"`
	Items      []PurchaseItemInput `json:"items"`
}

// PurchaseItemResponse línea de factura de compra en respuestas.
type PurchaseItemResponse struct {
	ID        string `json:"id"`
	InvoiceID string `json:"invoice_id"`
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// PurchaseInvoiceResponse salida de una factura de compra.
type PurchaseInvoiceResponse struct {
	ID         string                 `json:"id"`
	TenantID   string                 `json:"tenant_id"`
	SupplierID string                 `json:"supplier_id"`
	Date       time.Time              `json:"date"`
	TotalPrice decimal.Decimal        `json:"total_price"`
	Items      []PurchaseItemResponse `json:"items,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// PurchaseInvoiceListResponse lista paginada de facturas de compra.
type PurchaseInvoiceListResponse struct {
	Items []PurchaseInvoiceResponse `json:"items"`
	Page  PageResponse              `json:"page"`
}

// UpdatePurchaseItemRequest cambia producto o cantidad de una línea suelta.
type UpdatePurchaseItemRequest struct {
	ProductID *string `json:"product_id"`
	Quantity  *int    `json:"quantity" validate:"omitempty,min=1"`
}
