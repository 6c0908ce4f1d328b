package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/billing"
	"github.com/jhoicas/axia-erp/internal/application/dto"
)

// SaleInvoiceHandler maneja las facturas de venta, sus líneas y la
// descarga del PDF.
type SaleInvoiceHandler struct {
	uc    *billing.SaleInvoiceUseCase
	pdfUC *billing.PDFUseCase
}

// NewSaleInvoiceHandler construye el handler.
func NewSaleInvoiceHandler(uc *billing.SaleInvoiceUseCase, pdfUC *billing.PDFUseCase) *SaleInvoiceHandler {
	return &SaleInvoiceHandler{uc: uc, pdfUC: pdfUC}
}

func (h *SaleInvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSaleInvoiceRequest
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

func (h *SaleInvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "factura no encontrada")
	}
	return c.JSON(out)
}

func (h *SaleInvoiceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSaleInvoiceRequest
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

// Delete elimina la factura y devuelve al stock las cantidades de todas
// sus líneas. El saldo no cambia.
func (h *SaleInvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SaleInvoiceHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), c.Query("tenant_id"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SearchByDate filtra por rango de fechas (from/to en YYYY-MM-DD).
func (h *SaleInvoiceHandler) SearchByDate(c *fiber.Ctx) error {
	from, err := time.Parse("2006-01-02", c.Query("from"))
	if err != nil {
		return respondBadRequest(c, "VALIDATION", "from debe tener formato YYYY-MM-DD")
	}
	to, err := time.Parse("2006-01-02", c.Query("to"))
	if err != nil {
		return respondBadRequest(c, "VALIDATION", "to debe tener formato YYYY-MM-DD")
	}
	out, err := h.uc.SearchByDateRange(GetScope(c), c.Query("tenant_id"), from, to)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SearchByClient filtra por nombre del cliente (coincidencia parcial).
func (h *SaleInvoiceHandler) SearchByClient(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return respondBadRequest(c, "VALIDATION", "name es requerido")
	}
	out, err := h.uc.SearchByClientName(GetScope(c), c.Query("tenant_id"), name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF genera y descarga el PDF de la factura.
func (h *SaleInvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	data, filename, err := h.pdfUC.DownloadInvoicePDF(GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

// AddItem agrega una línea a la factura. No toca stock ni saldo.
func (h *SaleInvoiceHandler) AddItem(c *fiber.Ctx) error {
	var in dto.SaleItemInput
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.AddItem(c.UserContext(), GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateItem cambia producto o cantidad de una línea. No toca stock.
func (h *SaleInvoiceHandler) UpdateItem(c *fiber.Ctx) error {
	var in dto.UpdateSaleItemRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.UpdateItem(c.UserContext(), GetScope(c), c.Params("itemId"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem elimina la línea y devuelve su cantidad al stock.
func (h *SaleInvoiceHandler) RemoveItem(c *fiber.Ctx) error {
	if err := h.uc.RemoveItem(c.UserContext(), GetScope(c), c.Params("itemId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
