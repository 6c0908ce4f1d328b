package treasury

import (
	"context"

	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción que incluye los
// repos de tesorería. Cada evento de negocio (depósito, préstamo, reset)
// hace exactamente una escritura de saldo junto con su escritura de
// dominio; un error en fn revierte ambas.
type TxRunner interface {
	RunTreasury(ctx context.Context, fn func(
		depositRepo repository.SupplierDepositRepository,
		loanRepo repository.LoanRepository,
		companyRepo repository.CompanyRepository,
		auditRepo repository.AuditRepository,
	) error) error
}

// LoanReceiptPDFGenerator renderiza el comprobante PDF de un préstamo.
type LoanReceiptPDFGenerator interface {
	LoanReceiptPDF(loan *entity.Loan, client *entity.Client, company *entity.Company) ([]byte, error)
}
