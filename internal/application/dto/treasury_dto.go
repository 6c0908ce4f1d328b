package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDepositRequest entrada para registrar un depósito de proveedor.
// Amount se suma al saldo de la empresa.
type CreateDepositRequest struct {
	SupplierID string          `json:"supplier_id" validate:"required"`
	Amount     decimal.Decimal `json:"amount"`
	TenantID   string          `json:"tenant_id"`
}

// UpdateDepositRequest cambia el monto; el saldo se ajusta por la
// diferencia (nuevo - anterior).
type UpdateDepositRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// DepositResponse salida de un depósito.
type DepositResponse struct {
	ID         string          `json:"id"`
	TenantID   string          `json:"tenant_id"`
	SupplierID string          `json:"supplier_id"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// DepositListResponse lista de depósitos.
type DepositListResponse struct {
	Items []DepositResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// CreateLoanRequest entrada para crear un préstamo. Status false
// (pendiente, el default) descuenta Amount del saldo; true (devuelto)
// no tiene efecto de caja.
type CreateLoanRequest struct {
	ClientID    string          `json:"client_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Status      bool            `json:"status"`
	TenantID    string          `json:"tenant_id"`
}

// UpdateLoanStatusRequest cambia el estado del préstamo.
// true = devuelto (suma al saldo), false = pendiente (resta del saldo).
type UpdateLoanStatusRequest struct {
	Status bool `json:"status"`
}

// LoanResponse salida de un préstamo.
type LoanResponse struct {
	ID                   string          `json:"id"`
	TenantID             string          `json:"tenant_id"`
	ClientID             string          `json:"client_id"`
	ClientName           string          `json:"client_name"`
	ClientIdentification string          `json:"client_identification"`
	Amount               decimal.Decimal `json:"amount"`
	Description          string          `json:"description"`
	Status               bool            `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// LoanListResponse lista de préstamos.
type LoanListResponse struct {
	Items []LoanResponse `json:"items"`
}

// LoanStatsResponse agregados de préstamos por estado.
type LoanStatsResponse struct {
	TotalPending        int             `json:"total_pending"`
	TotalAmountPending  decimal.Decimal `json:"total_amount_pending"`
	TotalReturned       int             `json:"total_returned"`
	TotalAmountReturned decimal.Decimal `json:"total_amount_returned"`
}

// AuditLogResponse entrada del log de auditoría administrativa.
type AuditLogResponse struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenant_id"`
	UserID    string    `json:"user_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	IPAddress string    `json:"ip_address"`
	CreatedAt time.Time `json:"created_at"`
}

// AuditLogListResponse lista paginada del log de auditoría.
type AuditLogListResponse struct {
	Items []AuditLogResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// LoanReportCompany saldo de la empresa incluido en el reporte.
type LoanReportCompany struct {
	Name           string          `json:"name"`
	CurrentBalance decimal.Decimal `json:"current_balance"`
}

// LoanReportSummary totales del reporte por estado.
type LoanReportSummary struct {
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	ReturnedAmount decimal.Decimal `json:"returned_amount"`
	PendingCount   int             `json:"pending_count"`
	ReturnedCount  int             `json:"returned_count"`
}

// LoanReportResponse reporte global de préstamos con sus totales y,
// si se consulta una empresa concreta, su saldo actual.
type LoanReportResponse struct {
	GeneratedAt time.Time          `json:"generated_at"`
	Company     *LoanReportCompany `json:"company,omitempty"`
	Total       int                `json:"total"`
	Summary     LoanReportSummary  `json:"summary"`
	Loans       []LoanResponse     `json:"loans"`
}
