package treasury

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// BalanceResetUseCase pone el saldo de una empresa en cero dejando
// rastro de auditoría con el valor anterior. Solo ADMIN y SUPERADMIN.
// La operación es idempotente: un segundo reset consecutivo informa que
// el saldo ya estaba en cero y no escribe una nueva transacción.
type BalanceResetUseCase struct {
	txRunner    TxRunner
	companyRepo repository.CompanyRepository
}

// NewBalanceResetUseCase construye el caso de uso.
func NewBalanceResetUseCase(txRunner TxRunner, companyRepo repository.CompanyRepository) *BalanceResetUseCase {
	return &BalanceResetUseCase{txRunner: txRunner, companyRepo: companyRepo}
}

// Reset ejecuta el reset para la empresa indicada. userID e ipAddress
// quedan en la auditoría.
func (uc *BalanceResetUseCase) Reset(ctx context.Context, scope access.Scope, companyID, userID, ipAddress string) (*dto.BalanceResetResponse, error) {
	if !scope.CanResetBalance() {
		return nil, domain.ErrForbidden
	}
	if err := scope.CanMutate(companyID); err != nil {
		return nil, err
	}
	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}

	previous := company.CurrentBalance
	if previous.IsZero() {
		return &dto.BalanceResetResponse{
			CompanyID:       companyID,
			PreviousBalance: previous,
			NewBalance:      decimal.Zero,
			AlreadyZero:     true,
		}, nil
	}

	now := time.Now()
	err = uc.txRunner.RunTreasury(ctx, func(
		_ repository.SupplierDepositRepository,
		_ repository.LoanRepository,
		companyRepo repository.CompanyRepository,
		auditRepo repository.AuditRepository,
	) error {
		if err := companyRepo.ResetBalance(companyID); err != nil {
			return err
		}
		if err := auditRepo.CreateBalanceTransaction(&entity.BalanceTransaction{
			ID:              uuid.New().String(),
			TenantID:        companyID,
			UserID:          userID,
			Type:            entity.TxTypeBalanceReset,
			Amount:          previous.Neg(),
			PreviousBalance: previous,
			NewBalance:      decimal.Zero,
			Description:     fmt.Sprintf("Reset administrativo del saldo (anterior: %s)", previous.String()),
			Status:          entity.TxStatusCompleted,
			CreatedAt:       now,
		}); err != nil {
			return err
		}
		return auditRepo.CreateLog(&entity.AuditLog{
			ID:        uuid.New().String(),
			TenantID:  companyID,
			UserID:    userID,
			Action:    entity.AuditActionResetBalance,
			Details:   fmt.Sprintf("saldo anterior %s", previous.String()),
			IPAddress: ipAddress,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}
	return &dto.BalanceResetResponse{
		CompanyID:       companyID,
		PreviousBalance: previous,
		NewBalance:      decimal.Zero,
	}, nil
}
