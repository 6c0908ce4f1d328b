package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/treasury"
)

// LoanHandler maneja los préstamos de caja a clientes.
type LoanHandler struct {
	uc *treasury.LoanUseCase
}

// NewLoanHandler construye el handler.
func NewLoanHandler(uc *treasury.LoanUseCase) *LoanHandler {
	return &LoanHandler{uc: uc}
}

// Create registra el préstamo. Pendiente descuenta del saldo; devuelto
// no tiene efecto de caja.
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateLoanRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.ClientID == "" {
		return respondBadRequest(c, "VALIDATION", "client_id es requerido")
	}
	out, err := h.uc.Create(c.UserContext(), GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *LoanHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "préstamo no encontrado")
	}
	return c.JSON(out)
}

// UpdateStatus cambia el estado del préstamo y ajusta el saldo según la
// transición. Repetir el mismo estado no tiene efecto.
func (h *LoanHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateLoanStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.UpdateStatus(c.UserContext(), GetScope(c), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "préstamo no encontrado")
	}
	return c.JSON(out)
}

// Delete elimina el préstamo. Si estaba pendiente, devuelve el monto a
// la caja; si ya fue devuelto, no hay efecto.
func (h *LoanHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// List lista préstamos; ?status=true/false filtra por estado.
func (h *LoanHandler) List(c *fiber.Ctx) error {
	var status *bool
	switch c.Query("status") {
	case "true":
		v := true
		status = &v
	case "false":
		v := false
		status = &v
	case "":
	default:
		return respondBadRequest(c, "VALIDATION", "status debe ser true o false")
	}
	out, err := h.uc.List(GetScope(c), c.Query("tenant_id"), status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListByClient lista los préstamos de un cliente.
func (h *LoanHandler) ListByClient(c *fiber.Ctx) error {
	out, err := h.uc.ListByClient(GetScope(c), c.Params("clientId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Stats agregados de préstamos por estado.
func (h *LoanHandler) Stats(c *fiber.Ctx) error {
	out, err := h.uc.Stats(GetScope(c), c.Query("tenant_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *LoanHandler) Report(c *fiber.Ctx) error {
	out, err := h.uc.Report(GetScope(c), c.Query("tenant_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadReceipt genera y descarga el comprobante PDF del préstamo.
func (h *LoanHandler) DownloadReceipt(c *fiber.Ctx) error {
	data, filename, err := h.uc.ReceiptPDF(GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
