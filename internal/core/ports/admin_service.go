package ports

import (
	"context"

	"github.com/tivra/storefront-gateway/internal/core/domain"
)

// AdminService exposes the read-only admin projections plus the single admin
// mutation, user verification, which returns the reloaded user list.
type AdminService interface {
	ListUsers(ctx context.Context, sess *domain.Session) ([]domain.PlatformUser, error)
	Analytics(ctx context.Context, sess *domain.Session) (*domain.AnalyticsSnapshot, error)
	AuditLogs(ctx context.Context, sess *domain.Session) ([]domain.AuditLog, error)
	VerifyUser(ctx context.Context, sess *domain.Session, userID string) ([]domain.PlatformUser, error)
}
