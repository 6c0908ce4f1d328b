package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/treasury"
)

// DepositHandler maneja los depósitos de proveedores. Cada operación
// ajusta el saldo de la empresa en la misma transacción.
type DepositHandler struct {
	uc *treasury.DepositUseCase
}

// NewDepositHandler construye el handler.
func NewDepositHandler(uc *treasury.DepositUseCase) *DepositHandler {
	return &DepositHandler{uc: uc}
}

func (h *DepositHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDepositRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.SupplierID == "" {
		return respondBadRequest(c, "VALIDATION", "supplier_id es requerido")
	}
	out, err := h.uc.Create(c.UserContext(), GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *DepositHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "depósito no encontrado")
	}
	return c.JSON(out)
}

// Update cambia el monto; el saldo se ajusta por la diferencia.
func (h *DepositHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateDepositRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "depósito no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina el depósito restando su monto del saldo.
func (h *DepositHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *DepositHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), c.Query("tenant_id"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
