package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tivra/storefront-gateway/internal/api/metrics"
	"github.com/tivra/storefront-gateway/internal/backend"
	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

// surface converts a failed backend call into the domain error the HTTP
// layer maps. An authentication failure clears the session before the error
// is returned, so the next screen re-prompts for login. Validation errors
// pass through untouched to keep their field detail.
func surface(ctx context.Context, store ports.SessionStore, sess *domain.Session, log zerolog.Logger, err error) error {
	if err == nil {
		return nil
	}
	var be *backend.Error
	if !errors.As(err, &be) {
		return err
	}
	switch be.Kind {
	case backend.KindUnauthorized:
		if sess != nil && sess.ID != "" {
			if cerr := store.Clear(ctx, sess.ID); cerr != nil {
				log.Error().Err(cerr).Msg("failed to clear session after auth failure")
			}
			metrics.SessionsClearedTotal.WithLabelValues("auth_expired").Inc()
		}
		return fmt.Errorf("%w: %s", domain.ErrAuthExpired, be.Message)
	case backend.KindNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, be.Message)
	case backend.KindValidation:
		return be
	default: // server or network
		return fmt.Errorf("%w: %s", domain.ErrBackendUnavailable, be.Message)
	}
}

// requireAuth enforces the invariant that no authenticated data call is
// issued without a token present.
func requireAuth(sess *domain.Session) error {
	if !sess.Authenticated() {
		return domain.ErrNoSession
	}
	return nil
}

// requireRole additionally restricts an operation to the given roles.
func requireRole(sess *domain.Session, roles ...domain.Role) error {
	if err := requireAuth(sess); err != nil {
		return err
	}
	for _, r := range roles {
		if sess.Role == r {
			return nil
		}
	}
	return domain.ErrForbidden
}

func token(sess *domain.Session) string {
	if sess == nil {
		return ""
	}
	return sess.AccessToken
}
