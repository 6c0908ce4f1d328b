package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/domain"
	"github.com/jhoicas/axia-erp/internal/domain/access"
	"github.com/jhoicas/axia-erp/internal/domain/entity"
	"github.com/jhoicas/axia-erp/internal/domain/repository"
	"github.com/jhoicas/axia-erp/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login, logout y
// bootstrap del primer SUPERADMIN.
type AuthUseCase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.RevokedTokenRepository
	jwtCfg    JWTConfig
	initKey   string
}

// NewAuthUseCase construye el caso de uso de auth. initKey es la clave
// de inicialización del SUPERADMIN (vacía deshabilita el bootstrap).
func NewAuthUseCase(userRepo repository.UserRepository, tokenRepo repository.RevokedTokenRepository, jwtCfg JWTConfig, initKey string) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, tokenRepo: tokenRepo, jwtCfg: jwtCfg, initKey: initKey}
}

// RegisterUser crea un usuario en nombre del actor: hashea el password
// con bcrypt, fuerza el tenant del actor y valida que el actor pueda
// asignar el rol pedido. Devuelve ErrEmailAlreadyExists si el email ya
// está registrado.
func (uc *AuthUseCase) RegisterUser(scope access.Scope, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}
	if !entity.ValidRole(role) {
		return nil, domain.ErrInvalidInput
	}
	if !scope.CanAssignRole(role) {
		return nil, domain.ErrForbidden
	}
	tenantID, err := scope.WriteTenant(in.TenantID)
	if err != nil && role != entity.RoleSuperAdmin {
		return nil, err
	}
	if role == entity.RoleSuperAdmin {
		tenantID = "" // los SUPERADMIN no pertenecen a ninguna empresa
	}
	existing, _ := uc.userRepo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		TenantID:     tenantID,
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Avatar:       in.Avatar,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica email/password, genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.TenantID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// Logout agrega el token a la lista de denegación. El token rechazado
// deja de servir aunque su firma siga siendo válida.
func (uc *AuthUseCase) Logout(token string) error {
	if token == "" {
		return domain.ErrInvalidInput
	}
	return uc.tokenRepo.Revoke(token)
}

// IsRevoked informa si un token fue invalidado por logout.
func (uc *AuthUseCase) IsRevoked(token string) (bool, error) {
	return uc.tokenRepo.IsRevoked(token)
}

// InitSuperAdmin crea el primer SUPERADMIN del sistema. Solo funciona si
// la clave coincide con la configurada y todavía no existe ningún
// usuario; después de eso la ruta queda inerte.
func (uc *AuthUseCase) InitSuperAdmin(in dto.InitSuperAdminRequest) (*dto.UserResponse, error) {
	if uc.initKey == "" || in.Key != uc.initKey {
		return nil, domain.ErrUnauthorized
	}
	count, err := uc.userRepo.Count()
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, domain.ErrConflict
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         entity.RoleSuperAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
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
