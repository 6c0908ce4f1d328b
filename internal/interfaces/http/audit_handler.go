package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/treasury"
)

// AuditHandler expone el log de auditoría administrativa.
type AuditHandler struct {
	uc *treasury.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(uc *treasury.AuditUseCase) *AuditHandler {
	return &AuditHandler{uc: uc}
}

func (h *AuditHandler) ListLogs(c *fiber.Ctx) error {
	out, err := h.uc.ListLogs(GetScope(c), parsePage(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
