package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/treasury"
	"github.com/jhoicas/axia-erp/internal/application/usecase"
)

// CompanyHandler maneja las peticiones HTTP para empresas, incluido el
// reset administrativo del saldo.
type CompanyHandler struct {
	uc      *usecase.CompanyUseCase
	resetUC *treasury.BalanceResetUseCase
}

// NewCompanyHandler construye el handler.
func NewCompanyHandler(uc *usecase.CompanyUseCase, resetUC *treasury.BalanceResetUseCase) *CompanyHandler {
	return &CompanyHandler{uc: uc, resetUC: resetUC}
}

func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" || in.NIT == "" {
		return respondBadRequest(c, "VALIDATION", "name y nit son requeridos")
	}
	out, err := h.uc.Create(GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *CompanyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "empresa no encontrada")
	}
	return c.JSON(out)
}

func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCompanyRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "empresa no encontrada")
	}
	return c.JSON(out)
}

func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *CompanyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ResetBalance pone el saldo de la empresa en cero (solo ADMIN y
// SUPERADMIN). La operación queda auditada.
func (h *CompanyHandler) ResetBalance(c *fiber.Ctx) error {
	out, err := h.resetUC.Reset(c.UserContext(), GetScope(c), c.Params("id"), GetUserID(c), c.IP())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
