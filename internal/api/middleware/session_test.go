package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/session"
)

const cookieName = "storefront_session"

func signedToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"exp": expiresAt.Unix()}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return tok
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, cookie string) (*httptest.ResponseRecorder, *domain.Session, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *domain.Session
	err := mw(func(c echo.Context) error {
		seen, _ = c.Get(SessionKey).(*domain.Session)
		return c.NoContent(http.StatusOK)
	})(c)
	return rec, seen, err
}

func TestRequireSession_InjectsSession(t *testing.T) {
	store := session.NewMemoryStore()
	_ = store.Set(context.Background(), domain.Session{
		ID: "s1", AccessToken: signedToken(t, time.Now().Add(time.Hour)), Role: domain.RoleSeller,
	})

	_, seen, err := invoke(t, RequireSession(store, cookieName), "s1")
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if seen == nil || seen.Role != domain.RoleSeller {
		t.Fatalf("session in context: %+v", seen)
	}
}

func TestRequireSession_NoCookie(t *testing.T) {
	_, _, err := invoke(t, RequireSession(session.NewMemoryStore(), cookieName), "")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("got %v, want 401", err)
	}
}

func TestRequireSession_UnknownCookie(t *testing.T) {
	_, _, err := invoke(t, RequireSession(session.NewMemoryStore(), cookieName), "stale-id")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("got %v, want 401", err)
	}
}

func TestRequireSession_ExpiredTokenClearsSession(t *testing.T) {
	store := session.NewMemoryStore()
	_ = store.Set(context.Background(), domain.Session{
		ID: "s1", AccessToken: signedToken(t, time.Now().Add(-time.Hour)), Role: domain.RoleBuyer,
	})

	_, _, err := invoke(t, RequireSession(store, cookieName), "s1")
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("got %v, want 401", err)
	}
	if _, err := store.Get(context.Background(), "s1"); !errors.Is(err, domain.ErrNoSession) {
		t.Fatal("expired session not cleared from the store")
	}
}

func TestRequireSession_OpaqueTokenDefersToStoreTTL(t *testing.T) {
	store := session.NewMemoryStore()
	_ = store.Set(context.Background(), domain.Session{
		ID: "s1", AccessToken: "not-a-jwt", Role: domain.RoleBuyer,
	})

	_, seen, err := invoke(t, RequireSession(store, cookieName), "s1")
	if err != nil {
		t.Fatalf("opaque token rejected: %v", err)
	}
	if seen == nil {
		t.Fatal("session not injected")
	}
}

func TestOptionalSession_AnonymousPassesThrough(t *testing.T) {
	rec, seen, err := invoke(t, OptionalSession(session.NewMemoryStore(), cookieName), "")
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status %d", rec.Code)
	}
	if seen != nil {
		t.Errorf("anonymous request got a session: %+v", seen)
	}
}

func TestOptionalSession_StaleCookiePassesThrough(t *testing.T) {
	_, seen, err := invoke(t, OptionalSession(session.NewMemoryStore(), cookieName), "gone")
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if seen != nil {
		t.Errorf("stale cookie resolved a session: %+v", seen)
	}
}
