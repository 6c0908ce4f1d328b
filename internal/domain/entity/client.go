package entity

import "time"

// Client representa un cliente de una empresa (receptor de facturas de
// venta y de préstamos).
type Client struct {
	ID             string
	TenantID       string
	FirstName      string
	LastName       string
	Identification string
	Email          string
	Phone          string
	Address        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// FullName devuelve el nombre completo para presentación (PDF, XML).
func (c Client) FullName() string {
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
