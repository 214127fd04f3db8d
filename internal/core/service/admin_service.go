package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tivra/storefront-gateway/internal/backend"
	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/normalize"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

// AdminService serves the admin projections. Users, analytics, and audit
// logs are read-only; verification is the one mutation and reloads the user
// list like every other write.
type AdminService struct {
	api   ports.Marketplace
	store ports.SessionStore
	log   zerolog.Logger
}

func NewAdminService(api ports.Marketplace, store ports.SessionStore, log zerolog.Logger) *AdminService {
	return &AdminService{api: api, store: store, log: log}
}

func (s *AdminService) fetchUsers(ctx context.Context, sess *domain.Session) ([]domain.PlatformUser, error) {
	raw, err := s.api.Do(ctx, http.MethodGet, "admin/users/", sess.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	return normalize.Slice(backend.List(raw), normalize.PlatformUser), nil
}

func (s *AdminService) ListUsers(ctx context.Context, sess *domain.Session) ([]domain.PlatformUser, error) {
	if err := requireRole(sess, domain.RoleAdmin); err != nil {
		return nil, err
	}
	users, err := s.fetchUsers(ctx, sess)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}
	return users, nil
}

func (s *AdminService) Analytics(ctx context.Context, sess *domain.Session) (*domain.AnalyticsSnapshot, error) {
	if err := requireRole(sess, domain.RoleAdmin); err != nil {
		return nil, err
	}
	raw, err := s.api.Do(ctx, http.MethodGet, "admin/analytics/", sess.AccessToken, nil)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}
	snapshot := normalize.Analytics(backend.Record(raw))
	return &snapshot, nil
}

func (s *AdminService) AuditLogs(ctx context.Context, sess *domain.Session) ([]domain.AuditLog, error) {
	if err := requireRole(sess, domain.RoleAdmin); err != nil {
		return nil, err
	}
	raw, err := s.api.Do(ctx, http.MethodGet, "admin/audit-logs/", sess.AccessToken, nil)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}
	return normalize.Slice(backend.List(raw), normalize.AuditRecord), nil
}

func (s *AdminService) VerifyUser(ctx context.Context, sess *domain.Session, userID string) ([]domain.PlatformUser, error) {
	if err := requireRole(sess, domain.RoleAdmin); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("admin/users/%s/verify/", userID)
	fresh, err := MutateThenReload(ctx, "users", nil,
		func(ctx context.Context) error {
			_, err := s.api.Do(ctx, http.MethodPut, path, sess.AccessToken, map[string]any{})
			return err
		},
		func(ctx context.Context) ([]domain.PlatformUser, error) {
			return s.fetchUsers(ctx, sess)
		},
	)
	return fresh, surface(ctx, s.store, sess, s.log, err)
}
