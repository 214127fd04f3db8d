package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tivra/storefront-gateway/internal/backend"
	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
	"github.com/tivra/storefront-gateway/internal/session"
)

func TestLogin_StoresSessionTriple(t *testing.T) {
	api := newStubMarketplace()
	api.reply("POST", "auth/login/", `{"token":{"access":"acc-1","refresh":"ref-1"},"role":"Seller"}`)
	store := session.NewMemoryStore()
	svc := NewAuthService(api, store, nopLog())

	res, err := svc.Login(context.Background(), ports.LoginInput{Email: "s@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Role != domain.RoleSeller {
		t.Errorf("role = %q, want seller", res.Role)
	}
	if len(res.Navigation) == 0 {
		t.Error("expected role navigation entries")
	}

	sess, err := store.Get(context.Background(), res.SessionID)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if sess.AccessToken != "acc-1" || sess.RefreshToken != "ref-1" || sess.Role != domain.RoleSeller {
		t.Errorf("stored session = %+v", sess)
	}

	if c := api.lastCall(t); c.token != "" {
		t.Errorf("login sent a bearer token: %q", c.token)
	}
}

func TestLogin_UnknownRoleDefaultsToBuyer(t *testing.T) {
	api := newStubMarketplace()
	api.reply("POST", "auth/login/", `{"token":{"access":"acc","refresh":"ref"},"role":"superuser"}`)
	svc := NewAuthService(api, session.NewMemoryStore(), nopLog())

	res, err := svc.Login(context.Background(), ports.LoginInput{Email: "x@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Role != domain.RoleBuyer {
		t.Errorf("role = %q, want buyer fallback", res.Role)
	}
}

func TestLogin_RejectedCredentials(t *testing.T) {
	api := newStubMarketplace()
	api.fail("POST", "auth/login/", &backend.Error{Kind: backend.KindUnauthorized, Status: 401, Message: "bad credentials"})
	svc := NewAuthService(api, session.NewMemoryStore(), nopLog())

	_, err := svc.Login(context.Background(), ports.LoginInput{Email: "x@example.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_EmptyCredentialsNeverHitBackend(t *testing.T) {
	api := newStubMarketplace()
	svc := NewAuthService(api, session.NewMemoryStore(), nopLog())

	if _, err := svc.Login(context.Background(), ports.LoginInput{}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("got %v, want ErrInvalidCredentials", err)
	}
	if len(api.calls) != 0 {
		t.Fatalf("backend called %d times for empty credentials", len(api.calls))
	}
}

func TestLogin_MalformedResponse(t *testing.T) {
	api := newStubMarketplace()
	api.reply("POST", "auth/login/", `{"unexpected":"shape"}`)
	svc := NewAuthService(api, session.NewMemoryStore(), nopLog())

	_, err := svc.Login(context.Background(), ports.LoginInput{Email: "x@example.com", Password: "pw"})
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("got %v, want ErrBackendUnavailable", err)
	}
}

func TestRefresh_RewritesAccessToken(t *testing.T) {
	api := newStubMarketplace()
	api.reply("POST", "auth/refresh/", `{"access":"acc-2"}`)
	store := session.NewMemoryStore()
	svc := NewAuthService(api, store, nopLog())
	sess := testSession(t, store, domain.RoleBuyer)

	if err := svc.Refresh(context.Background(), sess); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}

	updated, err := store.Get(context.Background(), sess.ID)
	if err != nil {
		t.Fatalf("session gone after refresh: %v", err)
	}
	if updated.AccessToken != "acc-2" {
		t.Errorf("access token = %q, want acc-2", updated.AccessToken)
	}
	if updated.RefreshToken != sess.RefreshToken {
		t.Errorf("refresh token changed: %q", updated.RefreshToken)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	store := session.NewMemoryStore()
	svc := NewAuthService(newStubMarketplace(), store, nopLog())
	sess := testSession(t, store, domain.RoleBuyer)

	if err := svc.Logout(context.Background(), sess); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := store.Get(context.Background(), sess.ID); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("session still present after logout: %v", err)
	}

	// Logging out twice is harmless.
	if err := svc.Logout(context.Background(), sess); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
}

func TestRegister_ForwardsFullProfile(t *testing.T) {
	api := newStubMarketplace()
	api.reply("POST", "auth/register/", `{"message":"User registered successfully"}`)
	svc := NewAuthService(api, session.NewMemoryStore(), nopLog())

	err := svc.Register(context.Background(), ports.RegisterInput{
		Username:    "ramesh",
		Email:       "ramesh@example.com",
		Password:    "pw",
		Role:        domain.RoleSeller,
		GSTNumber:   "27AAPFU0939F1ZV",
		KYCDocument: "aadhaar-1234",
		Location:    "Nashik",
		ContactInfo: "+91-9000000000",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}

	body, ok := api.lastCall(t).body.(map[string]string)
	if !ok {
		t.Fatalf("payload type = %T, want map[string]string", api.lastCall(t).body)
	}
	// The backend validates against its capitalized role literals and
	// rejects registrations missing any profile field.
	if body["role"] != "Seller" {
		t.Errorf("role = %q, want Seller", body["role"])
	}
	for _, k := range []string{"gst_number", "kyc_document", "location", "contact_info"} {
		if body[k] == "" {
			t.Errorf("payload missing %s", k)
		}
	}
}

func TestRegister_InvalidRole(t *testing.T) {
	api := newStubMarketplace()
	svc := NewAuthService(api, session.NewMemoryStore(), nopLog())

	err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "u", Email: "u@example.com", Password: "pw", Role: domain.Role("warlord"),
	})
	if err == nil {
		t.Fatal("expected an error for an unknown role")
	}
	if len(api.calls) != 0 {
		t.Fatal("backend called for an invalid role")
	}
}
