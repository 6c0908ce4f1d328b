package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/purchasing"
)

// PurchaseInvoiceHandler maneja las facturas de compra y sus líneas.
type PurchaseInvoiceHandler struct {
	uc *purchasing.PurchaseInvoiceUseCase
}

// NewPurchaseInvoiceHandler construye el handler.
func NewPurchaseInvoiceHandler(uc *purchasing.PurchaseInvoiceUseCase) *PurchaseInvoiceHandler {
	return &PurchaseInvoiceHandler{uc: uc}
}

// Create registra la factura de compra y suma al stock las cantidades de
// sus líneas, todo en una transacción.
func (h *PurchaseInvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseInvoiceRequest
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

func (h *PurchaseInvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "factura no encontrada")
	}
	return c.JSON(out)
}

func (h *PurchaseInvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseInvoiceRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(c.UserContext(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "factura no encontrada")
	}
	return c.JSON(out)
}

// Delete elimina la factura revirtiendo del stock las cantidades de
// todas sus líneas.
func (h *PurchaseInvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *PurchaseInvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), c.Query("tenant_id"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddItem agrega una línea y suma su cantidad al stock.
func (h *PurchaseInvoiceHandler) AddItem(c *fiber.Ctx) error {
	var in dto.PurchaseItemInput
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.AddItem(c.UserContext(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem ajusta stock por el delta de cantidad; si cambia el
// producto, revierte en el anterior y aplica en el nuevo.
func (h *PurchaseInvoiceHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdatePurchaseItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.UpdateItem(c.UserContext(), GetScope(c), c.Params("itemId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem elimina la línea restando su cantidad del stock.
func (h *PurchaseInvoiceHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.UserContext(), GetScope(c), c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
