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

// ClientUseCase CRUD de clientes.
type ClientUseCase struct {
	clientRepo  repository.ClientRepository
	companyRepo repository.CompanyRepository
}

// NewClientUseCase construye el caso de uso.
func NewClientUseCase(clientRepo repository.ClientRepository, companyRepo repository.CompanyRepository) *ClientUseCase {
	return &ClientUseCase{clientRepo: clientRepo, companyRepo: companyRepo}
}

// Create crea un cliente en el tenant del actor.
func (uc *ClientUseCase) Create(scope access.Scope, in dto.CreateClientRequest) (*dto.ClientResponse, error) {
	tenantID, err := scope.WriteTenant(in.TenantID)
	if err != nil {
		return nil, err
	}
	if in.FirstName == "" || in.Identification == "" {
		return nil, domain.ErrInvalidInput
	}
	company, err := uc.companyRepo.GetByID(tenantID)
	if err != nil || company == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	client := &entity.Client{
		ID:             uuid.New().String(),
		TenantID:       tenantID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Identification: in.Identification,
		Email:          in.Email,
		Phone:          in.Phone,
		Address:        in.Address,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.clientRepo.Create(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// GetByID carga un cliente del alcance del actor.
func (uc *ClientUseCase) GetByID(scope access.Scope, id string) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(client.TenantID); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Update modifica datos del cliente.
func (uc *ClientUseCase) Update(scope access.Scope, id string, in dto.UpdateClientRequest) (*dto.ClientResponse, error) {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil || client == nil {
		return nil, domain.ErrNotFound
	}
	if err := scope.CanMutate(client.TenantID); err != nil {
		return nil, err
	}
	if in.FirstName != nil {
		client.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		client.LastName = *in.LastName
	}
	if in.Identification != nil {
		client.Identification = *in.Identification
	}
	if in.Email != nil {
		client.Email = *in.Email
	}
	if in.Phone != nil {
		client.Phone = *in.Phone
	}
	if in.Address != nil {
		client.Address = *in.Address
	}
	client.UpdatedAt = time.Now()
	if err := uc.clientRepo.Update(client); err != nil {
		return nil, err
	}
	return toClientResponse(client), nil
}

// Delete elimina el cliente (borrado físico).
func (uc *ClientUseCase) Delete(scope access.Scope, id string) error {
	client, err := uc.clientRepo.GetByID(id)
	if err != nil || client == nil {
		return domain.ErrNotFound
	}
	if err := scope.CanMutate(client.TenantID); err != nil {
		return err
	}
	return uc.clientRepo.Delete(id)
}

// List clientes del alcance del actor, paginados.
func (uc *ClientUseCase) List(scope access.Scope, tenantID string, page dto.PageRequest) (*dto.ClientListResponse, error) {
	page.DefaultPage()
	clients, err := uc.clientRepo.List(scope.TenantFilter(tenantID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toClientList(clients, page), nil
}

// SearchByName busca clientes por nombre (coincidencia parcial).
func (uc *ClientUseCase) SearchByName(scope access.Scope, tenantID, name string) (*dto.ClientListResponse, error) {
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	clients, err := uc.clientRepo.SearchByName(scope.TenantFilter(tenantID), name)
	if err != nil {
		return nil, err
	}
	return toClientList(clients, dto.PageRequest{}), nil
}

func toClientResponse(c *entity.Client) *dto.ClientResponse {
	return &dto.ClientResponse{
		ID:             c.ID,
		TenantID:       c.TenantID,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		Identification: c.Identification,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func toClientList(clients []*entity.Client, page dto.PageRequest) *dto.ClientListResponse {
	out := &dto.ClientListResponse{
		Items: make([]dto.ClientResponse, 0, len(clients)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, c := range clients {
		out.Items = append(out.Items, *toClientResponse(c))
	}
	return out
}
