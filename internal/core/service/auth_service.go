package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tivra/storefront-gateway/internal/api/metrics"
	"github.com/tivra/storefront-gateway/internal/backend"
	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

// AuthService exchanges credentials with the backend and owns the session
// triple. Authentication itself (password checks, token signing) is entirely
// backend-side; the gateway only stores and forwards what it is issued.
type AuthService struct {
	api   ports.Marketplace
	store ports.SessionStore
	log   zerolog.Logger
}

func NewAuthService(api ports.Marketplace, store ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, store: store, log: log}
}

// loginResponse is the backend's login payload: {token:{access,refresh}, role}.
type loginResponse struct {
	Token struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	} `json:"token"`
	Role string `json:"role"`
}

func (s *AuthService) Login(ctx context.Context, input ports.LoginInput) (*ports.LoginResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	raw, err := s.api.Do(ctx, http.MethodPost, "auth/login/", "", map[string]string{
		"email":    input.Email,
		"password": input.Password,
	})
	if err != nil {
		if backend.IsUnauthorized(err) || backend.IsKind(err, backend.KindValidation) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, surface(ctx, s.store, nil, s.log, err)
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil || resp.Token.Access == "" {
		return nil, fmt.Errorf("%w: malformed login response", domain.ErrBackendUnavailable)
	}

	// The backend emits capitalized roles ("Seller"); fold before validating
	// so a seller session does not degrade to the buyer surface.
	role := domain.ParseRole(resp.Role)
	if role == "" {
		role = domain.RoleBuyer
	}

	sess := domain.Session{
		ID:           uuid.NewString(),
		AccessToken:  resp.Token.Access,
		RefreshToken: resp.Token.Refresh,
		Role:         role,
	}
	if err := s.store.Set(ctx, sess); err != nil {
		return nil, err
	}

	metrics.SessionsStartedTotal.WithLabelValues(string(role)).Inc()
	s.log.Info().Str("role", string(role)).Msg("session started")

	return &ports.LoginResult{
		SessionID:  sess.ID,
		Role:       role,
		Navigation: domain.NavigationFor(role),
	}, nil
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) error {
	if !input.Role.Valid() {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidCredentials, input.Role)
	}
	// The backend requires the full profile field set and validates the
	// role against its capitalized literals.
	_, err := s.api.Do(ctx, http.MethodPost, "auth/register/", "", map[string]string{
		"username":     input.Username,
		"email":        input.Email,
		"password":     input.Password,
		"role":         input.Role.Backend(),
		"gst_number":   input.GSTNumber,
		"kyc_document": input.KYCDocument,
		"location":     input.Location,
		"contact_info": input.ContactInfo,
	})
	return surface(ctx, s.store, nil, s.log, err)
}

// Refresh trades the stored refresh token for a new access token and rewrites
// the session. Callers invoke it explicitly; nothing in the gateway renews a
// token behind the user's back.
func (s *AuthService) Refresh(ctx context.Context, sess *domain.Session) error {
	if sess == nil || sess.RefreshToken == "" {
		return domain.ErrNoSession
	}

	raw, err := s.api.Do(ctx, http.MethodPost, "auth/refresh/", "", map[string]string{
		"refresh": sess.RefreshToken,
	})
	if err != nil {
		return surface(ctx, s.store, sess, s.log, err)
	}

	var resp struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil || resp.Access == "" {
		return fmt.Errorf("%w: malformed refresh response", domain.ErrBackendUnavailable)
	}

	updated := *sess
	updated.AccessToken = resp.Access
	return s.store.Set(ctx, updated)
}

func (s *AuthService) Logout(ctx context.Context, sess *domain.Session) error {
	if sess == nil || sess.ID == "" {
		return nil
	}
	if err := s.store.Clear(ctx, sess.ID); err != nil {
		return err
	}
	metrics.SessionsClearedTotal.WithLabelValues("logout").Inc()
	s.log.Info().Str("role", string(sess.Role)).Msg("session ended")
	return nil
}
