package ports

import (
	"context"

	"github.com/tivra/storefront-gateway/internal/core/domain"
)

// DashboardSection is one independently loaded collection on a dashboard.
// Error is the user-facing note when the section's fetch failed; the Items
// slice is then empty but present, never nil.
type DashboardSection[T any] struct {
	Items []T    `json:"items"`
	Error string `json:"error,omitempty"`
}

// Dashboard is the role-specific aggregate a dashboard screen renders.
// Only the sections relevant to the role are populated.
type Dashboard struct {
	Role       domain.Role                             `json:"role"`
	Navigation []domain.NavEntry                       `json:"navigation"`
	Products   *DashboardSection[domain.Product]       `json:"products,omitempty"`
	Enquiries  *DashboardSection[domain.Enquiry]       `json:"enquiries,omitempty"`
	Orders     *DashboardSection[domain.Order]         `json:"orders,omitempty"`
	Jobs       *DashboardSection[domain.Order]         `json:"jobs,omitempty"`
	Deliveries *DashboardSection[domain.Order]         `json:"deliveries,omitempty"`
	Users      *DashboardSection[domain.PlatformUser]  `json:"users,omitempty"`
	AuditLogs  *DashboardSection[domain.AuditLog]      `json:"audit_logs,omitempty"`
	Analytics  *domain.AnalyticsSnapshot               `json:"analytics,omitempty"`
}

// DashboardService assembles the role dashboard. Collections load
// concurrently and each tolerates failure without blocking the others.
type DashboardService interface {
	Load(ctx context.Context, sess *domain.Session) (*Dashboard, error)
}
