package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// CompanyUseCase CRUD de empresas. El saldo arranca en cero y nunca se
// edita por esta vía: solo las rutas de negocio y el reset lo mueven.
type CompanyUseCase struct {
	companyRepo repository.CompanyRepository
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(companyRepo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{companyRepo: companyRepo}
}

// Create crea la empresa. Solo SUPERADMIN puede crear empresas nuevas.
func (uc *CompanyUseCase) Create(scope access.Scope, in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if !scope.IsSuperAdmin() {
		return nil, domain.ErrForbidden
	}
	if in.Name == "" || in.NIT == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	company := &entity.Company{
		ID:             uuid.New().String(),
		NIT:            in.NIT,
		Name:           in.Name,
		Address:        in.Address,
		Phone:          in.Phone,
		Sector:         in.Sector,
		CurrentBalance: decimal.Zero,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.companyRepo.Create(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// GetByID carga una empresa del alcance del actor.
func (uc *CompanyUseCase) GetByID(scope access.Scope, id string) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(company.ID); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Update modifica datos de la empresa (nunca el saldo).
func (uc *CompanyUseCase) Update(scope access.Scope, id string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.companyRepo.GetByID(id)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(company.ID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		company.Name = *in.Name
	}
	if in.NIT != nil {
		company.NIT = *in.NIT
	}
	if in.Address != nil {
		company.Address = *in.Address
	}
	if in.Phone != nil {
		company.Phone = *in.Phone
	}
	if in.Sector != nil {
		company.Sector = *in.Sector
	}
	company.UpdatedAt = time.Now()
	if err := uc.companyRepo.Update(company); err != nil {
		return nil, err
	}
	return toCompanyResponse(company), nil
}

// Delete elimina la empresa. Solo SUPERADMIN.
func (uc *CompanyUseCase) Delete(scope access.Scope, id string) error {
	if !scope.IsSuperAdmin() {
		return domain.ErrForbidden
	}
	company, err := uc.companyRepo.GetByID(id)
	if err != nil || company == nil {
		return domain.ErrNotFound
	}
	return uc.companyRepo.Delete(id)
}

// List empresas. SUPERADMIN ve todas; los demás solo la propia.
func (uc *CompanyUseCase) List(scope access.Scope, page dto.PageRequest) (*dto.CompanyListResponse, error) {
	page.DefaultPage()
	if !scope.IsSuperAdmin() {
		company, err := uc.companyRepo.GetByID(scope.TenantID)
		if err != nil || company == nil {
			return nil, domain.ErrNotFound
		}
		return &dto.CompanyListResponse{
			Items: []dto.CompanyResponse{*toCompanyResponse(company)},
			Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
		}, nil
	}
	companies, err := uc.companyRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.CompanyListResponse{
		Items: make([]dto.CompanyResponse, 0, len(companies)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, company := range companies {
		out.Items = append(out.Items, *toCompanyResponse(company))
	}
	return out, nil
}

func toCompanyResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:             c.ID,
		Name:           c.Name,
		NIT:            c.NIT,
		Address:        c.Address,
		Phone:          c.Phone,
		Sector:         c.Sector,
		CurrentBalance: c.CurrentBalance,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
