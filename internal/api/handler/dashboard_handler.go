package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tivra/storefront-gateway/internal/core/ports"
)

type DashboardHandler struct {
	dashboard ports.DashboardService
}

func NewDashboardHandler(dashboard ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Get handles GET /dashboard: the role-specific aggregate of the session's
// collections, each loaded independently.
//
// @Summary      Role dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  ports.Dashboard
// @Failure      401  {object}  map[string]string
// @Router       /dashboard [get]
func (h *DashboardHandler) Get(c echo.Context) error {
	dashboard, err := h.dashboard.Load(c.Request().Context(), ctxSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboard)
}
