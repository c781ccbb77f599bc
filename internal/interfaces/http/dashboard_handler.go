package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/mes-pro/internal/application/analytics"
)

// DashboardHandler expone los KPIs del dashboard (protegido).
type DashboardHandler struct {
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// KPIs devuelve los cuatro indicadores, calculados frescos por petición.
func (h *DashboardHandler) KPIs(c *fiber.Ctx) error {
	out, err := h.uc.GetKPIs(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return respondData(c, fiber.StatusOK, "indicadores del dashboard", out)
}
