package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// SupplierUseCase CRUD de proveedores.
type SupplierUseCase struct {
	supplierRepo repository.SupplierRepository
	companyRepo  repository.CompanyRepository
}

// NewSupplierUseCase construye el caso de uso.
func NewSupplierUseCase(supplierRepo repository.SupplierRepository, companyRepo repository.CompanyRepository) *SupplierUseCase {
	return &SupplierUseCase{supplierRepo: supplierRepo, companyRepo: companyRepo}
}

// Create crea un proveedor en el tenant del actor.
func (uc *SupplierUseCase) Create(scope access.Scope, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	tenantID, err := scope.WriteTenant(in.TenantID)
	if err != nil {
		return nil, err
	}
	if in.Name == "" || in.Identification == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(tenantID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	supplier := &entity.Supplier{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		Name:           in.Name,
		Identification: in.Identification,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.supplierRepo.Create(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// GetByID carga un proveedor del alcance del actor.
func (uc *SupplierUseCase) GetByID(scope access.Scope, id string) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(supplier.TenantID); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Update modifica datos del proveedor.
func (uc *SupplierUseCase) Update(scope access.Scope, id string, in dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil || supplier == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(supplier.TenantID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		supplier.Name = *in.Name
	}
	if in.Identification != nil {
		supplier.Identification = *in.Identification
	}
	if in.Email != nil {
		supplier.Email = *in.Email
	}
	if in.Phone != nil {
		supplier.Phone = *in.Phone
	}
	if in.Address != nil {
		supplier.Address = *in.Address
	}
	supplier.UpdatedAt = time.Now()
	if err := uc.supplierRepo.Update(supplier); err != nil {
		return nil, err
	}
	return toSupplierResponse(supplier), nil
}

// Delete elimina el proveedor (borrado físico).
func (uc *SupplierUseCase) Delete(scope access.Scope, id string) error {
	supplier, err := uc.supplierRepo.GetByID(id)
	if err != nil || supplier == nil {
		return domain.ErrNotFound
	}
	if err := scope.CanMutate(supplier.TenantID); err != nil {
		return err
	}
	return uc.supplierRepo.Delete(id)
}

// List proveedores del alcance del actor, paginados.
func (uc *SupplierUseCase) List(scope access.Scope, tenantID string, page dto.PageRequest) (*dto.SupplierListResponse, error) {
	page.DefaultPage()
	suppliers, err := uc.supplierRepo.List(scope.TenantFilter(tenantID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toSupplierList(suppliers, page), nil
}

// SearchByName busca proveedores por nombre (coincidencia parcial).
func (uc *SupplierUseCase) SearchByName(scope access.Scope, tenantID, name string) (*dto.SupplierListResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	suppliers, err := uc.supplierRepo.SearchByName(scope.TenantFilter(tenantID), name)
	if err != nil {
		return nil, err
	}
	return toSupplierList(suppliers, dto.PageRequest{}), nil
}

func toSupplierResponse(s *entity.Supplier) *dto.SupplierResponse {
	return &dto.SupplierResponse{
		ID:             s.ID,
		TenantID:       s.TenantID,
		Name:           s.Name,
		Identification: s.Identification,
		Email:          s.Email,
		Phone:          s.Phone,
		Address:        s.Address,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func toSupplierList(suppliers []*entity.Supplier, page dto.PageRequest) *dto.SupplierListResponse {
	out := &dto.SupplierListResponse{
		Items: make([]dto.SupplierResponse, 0, len(suppliers)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, s := range suppliers {
		out.Items = append(out.Items, *toSupplierResponse(s))
	}
	return out
}
