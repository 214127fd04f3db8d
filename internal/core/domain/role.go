package domain

import "strings"

// Role identifies which storefront surface a session belongs to.
type Role string

const (
	RoleBuyer       Role = "buyer"
	RoleSeller      Role = "seller"
	RoleTransporter Role = "transporter"
	RoleAdmin       Role = "admin"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleTransporter, RoleAdmin:
		return true
	}
	return false
}

// ParseRole maps a backend role literal to its Role. The backend stores
// capitalized names ("Seller", "Transporter"); matching is case-insensitive.
// Unknown literals yield an empty, invalid Role.
func ParseRole(s string) Role {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if r.Valid() {
		return r
	}
	return ""
}

// Backend returns the capitalized literal the marketplace API stores for r,
// or "" for an invalid role. Outbound payloads must use this form; the
// backend rejects any other casing.
func (r Role) Backend() string {
	switch r {
	case RoleBuyer:
		return "Buyer"
	case RoleSeller:
		return "Seller"
	case RoleTransporter:
		return "Transporter"
	case RoleAdmin:
		return "Admin"
	}
	return ""
}

// NavEntry is a single navigation item shown to a role.
type NavEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavigationFor maps a role to its static, ordered navigation entries.
// Unknown roles get an empty slice, not nil, so callers can range safely.
func NavigationFor(role Role) []NavEntry {
	switch role {
	case RoleBuyer:
		return []NavEntry{
			{Label: "Dashboard", Path: "/dashboard"},
			{Label: "Browse Products", Path: "/products"},
			{Label: "My Enquiries", Path: "/enquiries"},
			{Label: "My Orders", Path: "/orders"},
			{Label: "Messages", Path: "/messages"},
		}
	case RoleSeller:
		return []NavEntry{
			{Label: "Dashboard", Path: "/dashboard"},
			{Label: "My Products", Path: "/products"},
			{Label: "Enquiries", Path: "/enquiries"},
			{Label: "Orders", Path: "/orders"},
			{Label: "Messages", Path: "/messages"},
		}
	case RoleTransporter:
		return []NavEntry{
			{Label: "Dashboard", Path: "/dashboard"},
			{Label: "Available Jobs", Path: "/jobs"},
			{Label: "My Deliveries", Path: "/deliveries"},
			{Label: "Messages", Path: "/messages"},
		}
	case RoleAdmin:
		return []NavEntry{
			{Label: "Dashboard", Path: "/dashboard"},
			{Label: "Users", Path: "/admin/users"},
			{Label: "Analytics", Path: "/admin/analytics"},
			{Label: "Audit Logs", Path: "/admin/audit-logs"},
		}
	}
	return []NavEntry{}
}
