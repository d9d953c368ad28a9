package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/analytics"
)

// DashboardHandler resumen operativo de la farmacia.
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Summary métricas del día, del mes, top de productos y contadores de alertas.
// @Summary      Resumen del dashboard
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.DashboardSummaryDTO
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}
