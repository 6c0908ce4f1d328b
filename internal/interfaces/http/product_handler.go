package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP para productos (protegido).
type ProductHandler struct {
	uc *usecase.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Name == "" || in.SupplierID == "" {
		return respondBadRequest(c, "VALIDATION", "name y supplier_id son requeridos")
	}
	out, err := h.uc.Create(GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Delete borra lógicamente el producto; las facturas históricas siguen
// resolviendo su nombre y precio.
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), c.Query("tenant_id"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *ProductHandler) Search(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return respondBadRequest(c, "VALIDATION", "name es requerido")
	}
	out, err := h.uc.SearchByName(GetScope(c), c.Query("tenant_id"), name)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
