package domain

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleBuyer, RoleSeller, RoleTransporter, RoleAdmin} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	for _, r := range []Role{"", "superuser", "Buyer"} {
		if Role(r).Valid() {
			t.Errorf("%q should be invalid", r)
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"Seller", RoleSeller},
		{"Transporter", RoleTransporter},
		{"ADMIN", RoleAdmin},
		{" Buyer ", RoleBuyer},
		{"buyer", RoleBuyer},
		{"superuser", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoleBackend(t *testing.T) {
	tests := []struct {
		role Role
		want string
	}{
		{RoleBuyer, "Buyer"},
		{RoleSeller, "Seller"},
		{RoleTransporter, "Transporter"},
		{RoleAdmin, "Admin"},
		{Role("superuser"), ""},
	}
	for _, tt := range tests {
		if got := tt.role.Backend(); got != tt.want {
			t.Errorf("%q.Backend() = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestNavigationFor(t *testing.T) {
	for _, r := range []Role{RoleBuyer, RoleSeller, RoleTransporter, RoleAdmin} {
		nav := NavigationFor(r)
		if len(nav) == 0 {
			t.Errorf("role %q has no navigation", r)
		}
		for _, entry := range nav {
			if entry.Label == "" || entry.Path == "" {
				t.Errorf("role %q has a blank navigation entry: %+v", r, entry)
			}
		}
	}

	if nav := NavigationFor(Role("unknown")); len(nav) != 0 {
		t.Errorf("unknown role got navigation %+v", nav)
	}
}
