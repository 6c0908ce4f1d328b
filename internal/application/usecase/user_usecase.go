package usecase

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
)

// UserUseCase gestión de usuarios (el registro vive en el paquete auth).
// Cambiar roles exige que el actor pueda asignar el rol destino.
type UserUseCase struct {
	userRepo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo}
}

// GetByID carga un usuario del alcance del actor.
func (uc *UserUseCase) GetByID(scope access.Scope, id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil || user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := scope.CanMutate(user.TenantID); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update modifica datos del usuario; contraseña rehasheada con bcrypt.
func (uc *UserUseCase) Update(scope access.Scope, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil || user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := scope.CanMutate(user.TenantID); err != nil {
		return nil, err
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		existing, _ := uc.userRepo.GetByEmail(*in.Email)
		if existing != nil && existing.ID != user.ID {
			return nil, domain.ErrEmailAlreadyExists
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	if in.Role != nil {
		if !entity.ValidRole(*in.Role) {
			return nil, domain.ErrInvalidInput
		}
		if !scope.CanAssignRole(*in.Role) {
			return nil, domain.ErrForbidden
		}
		user.Role = *in.Role
	}
	if in.Avatar != nil {
		user.Avatar = *in.Avatar
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina el usuario.
func (uc *UserUseCase) Delete(scope access.Scope, id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil || user == nil {
		return domain.ErrUserNotFound
	}
	if err := scope.CanMutate(user.TenantID); err != nil {
		return err
	}
	return uc.userRepo.Delete(id)
}

// List usuarios del alcance del actor, paginados.
func (uc *UserUseCase) List(scope access.Scope, tenantID string, page dto.PageRequest) (*dto.UserListResponse, error) {
	page.DefaultPage()
	users, err := uc.userRepo.List(scope.TenantFilter(tenantID), page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return toUserList(users, page), nil
}

// Search busca usuarios por nombre o rol.
func (uc *UserUseCase) Search(scope access.Scope, tenantID, name, role string) (*dto.UserListResponse, error) {
	if name == "" && role == "" {
		return nil, domain.ErrInvalidInput
	}
	users, err := uc.userRepo.SearchByNameOrRole(scope.TenantFilter(tenantID), name, role)
	if err != nil {
		return nil, err
	}
	return toUserList(users, dto.PageRequest{}), nil
}

// ListPublic listado limitado sin autenticación.
func (uc *UserUseCase) ListPublic() (*dto.UserListResponse, error) {
	users, err := uc.userRepo.ListPublic(20)
	if err != nil {
		return nil, err
	}
	return toUserList(users, dto.PageRequest{Limit: 20}), nil
}

// GetPublic perfil de un usuario sin autenticación; nunca expone el
// hash del password.
func (uc *UserUseCase) GetPublic(id string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(id)
	if err != nil || user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		TenantID:  u.TenantID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserList(users []*entity.User, page dto.PageRequest) *dto.UserListResponse {
	out := &dto.UserListResponse{
		Items: make([]dto.UserResponse, 0, len(users)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, u := range users {
		out.Items = append(out.Items, *toUserResponse(u))
	}
	return out
}
