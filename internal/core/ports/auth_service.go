package ports

import (
	"context"

	"github.com/tivra/storefront-gateway/internal/core/domain"
)

// LoginInput carries the credentials forwarded to the backend.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput carries a new-account request forwarded to the backend.
// The profile fields are all required by the backend's register endpoint;
// a request missing any of them is rejected with a field error.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Role        domain.Role
	GSTNumber   string
	KYCDocument string
	Location    string
	ContactInfo string
}

// LoginResult is returned after the backend accepted the credentials and the
// session triple was persisted.
type LoginResult struct {
	SessionID  string
	Role       domain.Role
	Navigation []domain.NavEntry
}

// AuthService owns the session lifecycle: it exchanges credentials with the
// backend, persists the resulting token triple, and tears sessions down.
type AuthService interface {
	Login(ctx context.Context, input LoginInput) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) error
	// Refresh exchanges the stored refresh token for a new access token.
	// Only ever invoked explicitly; the gateway never renews silently.
	Refresh(ctx context.Context, sess *domain.Session) error
	Logout(ctx context.Context, sess *domain.Session) error
}
