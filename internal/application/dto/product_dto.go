package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto. Stock es la
// cantidad inicial; después solo lo mueven las facturas.
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	SupplierID    string          `json:"supplier_id" validate:"required"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Tax           decimal.Decimal `json:"tax"`
	Stock         int             `json:"stock" validate:"min=0"`
	TenantID      string          `json:"tenant_id"`
}

// UpdateProductRequest entrada para actualizar un producto (sin Stock:
// el inventario solo lo mueve la reconciliación de facturas).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	SupplierID    *string          `json:"supplier_id"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	Tax           *decimal.Decimal `json:"tax"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID            string          `json:"id"`
	TenantID      string          `json:"tenant_id"`
	SupplierID    string          `json:"supplier_id"`
	Name          string          `json:"name"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	Tax           decimal.Decimal `json:"tax"`
	Stock         int             `json:"stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
