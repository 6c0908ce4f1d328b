package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/axia-erp/internal/application/analytics"
	"github.com/jhoicas/axia-erp/internal/application/dto"
)

// AnalyticsHandler maneja las consultas agregadas del panel.
type AnalyticsHandler struct {
	uc *analytics.DashboardUseCase
}

// NewAnalyticsHandler construye el handler.
func NewAnalyticsHandler(uc *analytics.DashboardUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{uc: uc}
}

// Dashboard resumen general del negocio del tenant.
func (h *AnalyticsHandler) Dashboard(c *fiber.Ctx) error {
	out, err := h.uc.Dashboard(GetScope(c), c.Query("tenant_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// InventorySummary estado agregado del inventario.
func (h *AnalyticsHandler) InventorySummary(c *fiber.Ctx) error {
	out, err := h.uc.InventorySummary(GetScope(c), c.Query("tenant_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SalesMetrics serie de ventas por día en el período solicitado.
func (h *AnalyticsHandler) SalesMetrics(c *fiber.Ctx) error {
	in := dto.SalesMetricsRequest{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	out, err := h.uc.SalesMetrics(GetScope(c), c.Query("tenant_id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProducts ranking de productos por cantidad vendida.
func (h *AnalyticsHandler) TopProducts(c *fiber.Ctx) error {
	out, err := h.uc.TopProducts(GetScope(c), c.Query("tenant_id"), c.QueryInt("limit", 10))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) CustomerMetrics(c *fiber.Ctx) error {
	out, err := h.uc.CustomerMetrics(GetScope(c), c.Query("tenant_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *AnalyticsHandler) Profitability(c *fiber.Ctx) error {
	out, err := h.uc.Profitability(GetScope(c), c.Query("tenant_id"), c.Query("period"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
