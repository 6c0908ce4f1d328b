package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/dto"
	"github.com/jhoicas/axia-erp/internal/application/usecase"
)

// AIHandler maneja los análisis asistidos por LLM.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// AnalyzeSupplier análisis de confiabilidad de un proveedor basado en su
// historial de compras.
func (h *AIHandler) AnalyzeSupplier(c *fiber.Ctx) error {
	var in dto.SupplierAnalysisRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.SupplierID == "" {
		return respondBadRequest(c, "VALIDATION", "supplier_id es requerido")
	}
	out, err := h.uc.AnalyzeSupplier(c.UserContext(), GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SectorTrends tendencias del sector de la empresa del actor.
func (h *AIHandler) SectorTrends(c *fiber.Ctx) error {
	var in dto.SectorTrendsRequest
	if err := c.BodyParser(&in); err != nil {
		return respondBadRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	out, err := h.uc.SectorTrends(c.UserContext(), GetScope(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ProductAdvice recomendaciones sobre el catálogo e inventario.
func (h *AIHandler) ProductAdvice(c *fiber.Ctx) error {
	out, err := h.uc.ProductAdvice(c.UserContext(), GetScope(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
