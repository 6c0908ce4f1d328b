package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/usecase"
)

// ClientHandler maneja las peticiones HTTP para clientes (protegido).
type ClientHandler struct {
	uc *usecase.ClientUseCase
}

// NewClientHandler construye el handler.
func NewClientHandler(uc *usecase.ClientUseCase) *ClientHandler {
	return &ClientHandler{uc: uc}
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.FirstName == "" {
		return respondBadRequest(c, "VALIDATION", "first_name es requerido")
	}
	out, err := h.uc.Create(GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func (h *ClientHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(GetScope(c), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "cliente no encontrado")
	}
	return c.JSON(out)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateClientRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.Update(GetScope(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return respondNotFound(c, "cliente no encontrado")
	}
	return c.JSON(out)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetScope(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(GetScope(c), c.Query("tenant_id"), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Search busca clientes por nombre (coincidencia parcial sobre el nombre
// completo).
func (h *ClientHandler) Search(c *fiber.Ctx) error {
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
