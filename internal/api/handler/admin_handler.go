package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

// AdminHandler serves the admin projections behind the admin RBAC group.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type userListResponse struct {
	Users []domain.PlatformUser `json:"users"`
	Count int                   `json:"count"`
}

type auditLogResponse struct {
	Logs  []domain.AuditLog `json:"logs"`
	Count int               `json:"count"`
}

// Users handles GET /admin/users.
//
// @Summary      List platform users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context(), ctxSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: users, Count: len(users)})
}

// Analytics handles GET /admin/analytics.
//
// @Summary      Platform analytics snapshot
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.AnalyticsSnapshot
// @Failure      403  {object}  map[string]string
// @Router       /admin/analytics [get]
func (h *AdminHandler) Analytics(c echo.Context) error {
	snapshot, err := h.admin.Analytics(c.Request().Context(), ctxSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snapshot)
}

// AuditLogs handles GET /admin/audit-logs.
//
// @Summary      List audit-log entries
// @Tags         admin
// @Produce      json
// @Success      200  {object}  auditLogResponse
// @Failure      403  {object}  map[string]string
// @Router       /admin/audit-logs [get]
func (h *AdminHandler) AuditLogs(c echo.Context) error {
	logs, err := h.admin.AuditLogs(c.Request().Context(), ctxSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, auditLogResponse{Logs: logs, Count: len(logs)})
}

// VerifyUser handles PUT /admin/users/:id/verify.
//
// @Summary      Verify a platform user
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "User ID"
// @Success      200  {object}  userListResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/users/{id}/verify [put]
func (h *AdminHandler) VerifyUser(c echo.Context) error {
	fresh, err := h.admin.VerifyUser(c.Request().Context(), ctxSession(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userListResponse{Users: fresh, Count: len(fresh)})
}
