package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCompanyRequest entrada para crear una empresa.
type CreateCompanyRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=200"`
	NIT     string `json:"nit" validate:"required,min=1,max=20"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Sector  string `json:"sector"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (campos
// opcionales). El saldo no es editable por esta vía.
type UpdateCompanyRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=200"`
	NIT     *string `json:"nit" validate:"omitempty,min=1,max=20"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
	Sector  *string `json:"sector"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	NIT            string          `json:"nit"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Sector         string          `json:"sector"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// CompanyListResponse lista paginada de empresas.
type CompanyListResponse struct {
	Items []CompanyResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// BalanceResetResponse resultado del reset administrativo del saldo.
type BalanceResetResponse struct {
	CompanyID       string          `json:"company_id"`
	PreviousBalance decimal.Decimal `json:"previous_balance"`
	NewBalance      decimal.Decimal `json:"new_balance"`
	AlreadyZero     bool            `json:"already_zero"`
}
