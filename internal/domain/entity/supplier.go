package entity

import "time"

// Supplier representa un proveedor de una empresa (emisor de facturas de
// compra y dueño de productos del catálogo).
type Supplier struct {
	ID             string
	TenantID       string
	Name           string
	Identification string
	Email          string
	Phone          string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
