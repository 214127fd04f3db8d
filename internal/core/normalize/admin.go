package normalize

import "github.com/tivra/storefront-gateway/internal/core/domain"

// PlatformUser maps a raw admin user record. Roles arrive in the backend's
// capitalized form ("Seller"); ParseRole folds them.
func PlatformUser(m Raw) domain.PlatformUser {
	role := domain.ParseRole(str(m, "", "role"))
	if role == "" {
		role = domain.RoleBuyer
	}
	return domain.PlatformUser{
		ID:         id(m, "id"),
		Name:       str(m, "Unknown User", "name", "username"),
		Email:      str(m, "", "email"),
		Role:       role,
		Status:     str(m, "pending", "status"),
		JoinDate:   when(m, "join_date", "date_joined"),
		LastActive: when(m, "last_active"),
	}
}

// Analytics maps the admin analytics aggregate. Every counter defaults to 0;
// a failed or partial analytics payload renders as an all-zero snapshot.
func Analytics(m Raw) domain.AnalyticsSnapshot {
	return domain.AnalyticsSnapshot{
		TotalUsers:    id(m, "total_users", "totalUsers"),
		ActiveUsers:   id(m, "active_users", "activeUsers"),
		TotalProducts: id(m, "total_products", "totalProducts"),
		TotalOrders:   id(m, "total_orders", "totalOrders"),
		Revenue:       num(m, 0, "revenue"),
		GrowthRate:    num(m, 0, "growth_rate", "growthRate"),
	}
}

// AuditRecord maps a raw audit-log record.
func AuditRecord(m Raw) domain.AuditLog {
	return domain.AuditLog{
		ID:        id(m, "id"),
		Action:    str(m, "unknown", "action"),
		User:      str(m, "system", "user"),
		Details:   str(m, "", "details"),
		Severity:  str(m, "info", "severity"),
		Timestamp: when(m, "timestamp"),
	}
}
