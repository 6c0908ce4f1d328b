package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/treasury"
)

// PaymentHandler maneja los pagos de facturas. Los pagos no mueven el
// saldo de la empresa.
type PaymentHandler struct {
	uc *treasury.PaymentUseCase
}

// NewPaymentHandler construye el handler.
func NewPaymentHandler(uc *treasury.PaymentUseCase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.InvoiceID == "" {
		return respondBadRequest(c, "VALIDATION", "invoice_id es requerido")
	}
	out, err := h.uc.Create(GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *PaymentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "pago no encontrado")
	}
	return c.JSON(out)
}

func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePaymentRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "pago no encontrado")
	}
	return c.JSON(out)
}

func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PaymentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), c.Query("tenant_id"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
