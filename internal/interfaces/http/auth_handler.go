package http

import (
	"github.com/gofiber/fiber/v2"

	appauth "github.com/jhoicas/axia-erp/internal/application/auth"
	"github.com/jhoicas/axia-erp/internal/application/dto"
)

// AuthHandler maneja registro, login, logout y bootstrap del SUPERADMIN.
type AuthHandler struct {
	uc *appauth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *appauth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register crea un usuario dentro del alcance del actor autenticado.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return respondBadRequest(c, "VALIDATION", "name, email y password son requeridos")
	}
	out, err := h.uc.RegisterUser(GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login autentica y devuelve un JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Email == "" || in.Password == "" {
		return respondBadRequest(c, "VALIDATION", "email y password son requeridos")
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Logout revoca el token de la sesión actual.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if err := h.uc.Logout(GetToken(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// InitSuperAdmin bootstrap del primer SUPERADMIN. Solo funciona con la
// clave de inicialización y con la tabla de usuarios vacía.
func (h *AuthHandler) InitSuperAdmin(c *fiber.Ctx) error {
	var in dto.InitSuperAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Key == "" || in.Name == "" || in.Email == "" || in.Password == "" {
		return respondBadRequest(c, "VALIDATION", "key, name, email y password son requeridos")
	}
	out, err := h.uc.InitSuperAdmin(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
