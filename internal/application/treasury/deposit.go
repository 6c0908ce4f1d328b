package treasury

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// DepositUseCase gestiona depósitos de proveedores, la única entrada de
// caja del sistema: crear suma al saldo, eliminar resta, actualizar
// ajusta por la diferencia.
type DepositUseCase struct {
	txRunner     TxRunner
	depositRepo  repository.SupplierDepositRepository
	supplierRepo repository.SupplierRepository
	companyRepo  repository.CompanyRepository
}

// NewDepositUseCase construye el caso de uso.
func NewDepositUseCase(
	txRunner TxRunner,
	depositRepo repository.SupplierDepositRepository,
	supplierRepo repository.SupplierRepository,
	companyRepo repository.CompanyRepository,
) *DepositUseCase {
	return &DepositUseCase{
		txRunner:     txRunner,
		depositRepo:  depositRepo,
		supplierRepo: supplierRepo,
		companyRepo:  companyRepo,
	}
}

// Create registra el depósito y suma Amount al saldo, en una transacción.
func (uc *DepositUseCase) Create(ctx context.Context, scope access.Scope, in dto.CreateDepositRequest) (*dto.DepositResponse, error) {
	tenantID, err := scope.WriteTenant(in.TenantID)
	if err != nil {
		return nil, err
	}
	if in.SupplierID == "" || in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(tenantID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if supplier.TenantID != tenantID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	dep := &entity.SupplierDeposit{
		ID:         uuid.New().String(),
		TenantID:   tenantID,
		SupplierID: in.SupplierID,
		Amount:     in.Amount,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err = uc.txRunner.RunTreasury(ctx, func(
		depositRepo repository.SupplierDepositRepository,
		_ repository.LoanRepository,
		companyRepo repository.CompanyRepository,
		_ repository.AuditRepository,
	) error {
		if err := depositRepo.Create(dep); err != nil {
			return err
		}
		return companyRepo.AdjustBalance(tenantID, dep.Amount)
	})
	if err != nil {
		return nil, err
	}
	return toDepositResponse(dep), nil
}

// Update cambia el monto y ajusta el saldo por (nuevo - anterior).
func (uc *DepositUseCase) Update(ctx context.Context, scope access.Scope, id string, in dto.UpdateDepositRequest) (*dto.DepositResponse, error) {
	dep, err := uc.depositRepo.GetByID(id)
	if err != nil || dep == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(dep.TenantID); err != nil {
		return nil, err
	}
	if in.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	delta := in.Amount.Sub(dep.Amount)
	err = uc.txRunner.RunTreasury(ctx, func(
		depositRepo repository.SupplierDepositRepository,
		_ repository.LoanRepository,
		companyRepo repository.CompanyRepository,
		_ repository.AuditRepository,
	) error {
		if err := depositRepo.UpdateAmount(dep.ID, in.Amount); err != nil {
			return err
		}
		if delta.IsZero() {
			return nil
		}
		return companyRepo.AdjustBalance(dep.TenantID, delta)
	})
	if err != nil {
		return nil, err
	}
	dep.Amount = in.Amount
	dep.UpdatedAt = time.Now()
	return toDepositResponse(dep), nil
}

// Delete elimina el depósito y resta Amount del saldo.
func (uc *DepositUseCase) Delete(ctx context.Context, scope access.Scope, id string) error {
	dep, err := uc.depositRepo.GetByID(id)
	if err != nil || dep == nil {
		return domain.ErrNotFound
	}
	if err := scope.CanMutate(dep.TenantID); err != nil {
		return err
	}
	return uc.txRunner.RunTreasury(ctx, func(
		depositRepo repository.SupplierDepositRepository,
		_ repository.LoanRepository,
		companyRepo repository.CompanyRepository,
		_ repository.AuditRepository,
	) error {
		if err := depositRepo.Delete(dep.ID); err != nil {
			return err
		}
		return companyRepo.AdjustBalance(dep.TenantID, dep.Amount.Neg())
	})
}

// GetByID carga un depósito validando el alcance del actor.
func (uc *DepositUseCase) GetByID(scope access.Scope, id string) (*dto.DepositResponse, error) {
	dep, err := uc.depositRepo.GetByID(id)
	if err != nil || dep == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(dep.TenantID); err != nil {
		return nil, err
	}
	return toDepositResponse(dep), nil
}

// List depósitos del alcance del actor.
func (uc *DepositUseCase) List(scope access.Scope, tenantID string, page dto.PageRequest) (*dto.DepositListResponse, error) {
	page.DefaultPage()
	deposits, err := uc.depositRepo.List(scope.TenantFilter(tenantID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.DepositListResponse{
		Items: make([]dto.DepositResponse, 0, len(deposits)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, dep := range deposits {
		out.Items = append(out.Items, *toDepositResponse(dep))
	}
	return out, nil
}

func toDepositResponse(dep *entity.SupplierDeposit) *dto.DepositResponse {
	return &dto.DepositResponse{
		ID:         dep.ID,
		TenantID:   dep.TenantID,
		SupplierID: dep.SupplierID,
		Amount:     dep.Amount,
		CreatedAt:  dep.CreatedAt,
		UpdatedAt:  dep.UpdatedAt,
	}
}
