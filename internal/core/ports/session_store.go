package ports

import (
	"context"

	"github.com/tivra/storefront-gateway/internal/core/domain"
)

// SessionStore persists the session triple between requests. Set writes all
// three fields atomically; Get returns domain.ErrNoSession for unknown or
// token-less sessions; Clear is idempotent.
type SessionStore interface {
	Set(ctx context.Context, sess domain.Session) error
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
	Clear(ctx context.Context, sessionID string) error
}
