package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/tivra/storefront-gateway/internal/api/metrics"
	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

// SessionKey is the echo context key the resolved session is stored under.
const SessionKey = "session"

// RequireSession resolves the session cookie against the store and injects
// the session into context. Requests without a valid session are rejected
// with 401 before any data call is issued. A session whose backend-issued
// access token has visibly expired is cleared and rejected the same way.
func RequireSession(store ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return sessionMiddleware(store, cookieName, true)
}

// OptionalSession injects the session when present but lets anonymous
// requests through. Used on the public catalog routes.
func OptionalSession(store ports.SessionStore, cookieName string) echo.MiddlewareFunc {
	return sessionMiddleware(store, cookieName, false)
}

func sessionMiddleware(store ports.SessionStore, cookieName string, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "login required")
				}
				return next(c)
			}

			sess, err := store.Get(c.Request().Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrNoSession) {
					if required {
						return echo.NewHTTPError(http.StatusUnauthorized, "login required")
					}
					return next(c)
				}
				return err
			}

			if tokenExpired(sess.AccessToken) {
				_ = store.Clear(c.Request().Context(), sess.ID)
				metrics.SessionsClearedTotal.WithLabelValues("auth_expired").Inc()
				if required {
					return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
				}
				return next(c)
			}

			c.Set(SessionKey, sess)
			return next(c)
		}
	}
}

// tokenExpired inspects the backend-issued JWT's exp claim without verifying
// the signature. The backend owns the key; the gateway only reads the
// expiry to avoid forwarding a token it already knows is dead. Opaque or
// claim-less tokens defer to the store's TTL.
func tokenExpired(accessToken string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(accessToken, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}
