package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/session"
)

func TestAdmin_RoleGate(t *testing.T) {
	api := newStubMarketplace()
	store := session.NewMemoryStore()
	svc := NewAdminService(api, store, nopLog())
	seller := testSession(t, store, domain.RoleSeller)

	if _, err := svc.ListUsers(context.Background(), seller); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("ListUsers: got %v, want ErrForbidden", err)
	}
	if _, err := svc.Analytics(context.Background(), seller); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Analytics: got %v, want ErrForbidden", err)
	}
	if _, err := svc.AuditLogs(context.Background(), seller); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("AuditLogs: got %v, want ErrForbidden", err)
	}
	if len(api.calls) != 0 {
		t.Fatal("backend reached past the role gate")
	}
}

func TestAdmin_ListUsers(t *testing.T) {
	api := newStubMarketplace()
	api.reply("GET", "admin/users/", `[
		{"id": 1, "name": "Asha", "email": "asha@example.com", "role": "Seller", "status": "active"},
		{"id": 2, "name": "Ravi", "email": "ravi@example.com", "role": "Transporter"}
	]`)
	store := session.NewMemoryStore()
	svc := NewAdminService(api, store, nopLog())
	admin := testSession(t, store, domain.RoleAdmin)

	users, err := svc.ListUsers(context.Background(), admin)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 || users[0].Name != "Asha" || users[0].Role != domain.RoleSeller {
		t.Fatalf("got %+v", users)
	}
	if users[1].Role != domain.RoleTransporter {
		t.Errorf("capitalized backend role mapped to %q", users[1].Role)
	}
}

func TestAdmin_VerifyUserReloadsList(t *testing.T) {
	api := newStubMarketplace()
	api.reply("PUT", "admin/users/2/verify/", `{}`)
	api.reply("GET", "admin/users/", `[{"id": 2, "name": "Ravi", "status": "verified"}]`)
	store := session.NewMemoryStore()
	svc := NewAdminService(api, store, nopLog())
	admin := testSession(t, store, domain.RoleAdmin)

	users, err := svc.VerifyUser(context.Background(), admin, "2")
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if len(users) != 1 || users[0].Status != "verified" {
		t.Fatalf("reloaded list %+v", users)
	}
	if api.calls[0].path != "admin/users/2/verify/" || api.calls[0].method != "PUT" {
		t.Errorf("verify call %+v", api.calls[0])
	}
}

func TestAdmin_Analytics(t *testing.T) {
	api := newStubMarketplace()
	api.reply("GET", "admin/analytics/", `{"total_users": 42, "revenue": "1250.5"}`)
	store := session.NewMemoryStore()
	svc := NewAdminService(api, store, nopLog())
	admin := testSession(t, store, domain.RoleAdmin)

	snap, err := svc.Analytics(context.Background(), admin)
	if err != nil {
		t.Fatalf("analytics failed: %v", err)
	}
	if snap.TotalUsers != 42 {
		t.Errorf("total users %d", snap.TotalUsers)
	}
	if snap.Revenue != 1250.5 {
		t.Errorf("revenue %v, string amounts should coerce", snap.Revenue)
	}
}
