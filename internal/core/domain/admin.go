package domain

import "time"

// PlatformUser is the admin-facing view of a registered user.
type PlatformUser struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Role       Role      `json:"role"`
	Status     string    `json:"status"`
	JoinDate   time.Time `json:"join_date"`
	LastActive time.Time `json:"last_active"`
}

// AnalyticsSnapshot is a read-only aggregate computed server-side.
type AnalyticsSnapshot struct {
	TotalUsers    int64   `json:"total_users"`
	ActiveUsers   int64   `json:"active_users"`
	TotalProducts int64   `json:"total_products"`
	TotalOrders   int64   `json:"total_orders"`
	Revenue       float64 `json:"revenue"`
	GrowthRate    float64 `json:"growth_rate"`
}

// AuditLog is a read-only record of a privileged action on the platform.
type AuditLog struct {
	ID        int64     `json:"id"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	Details   string    `json:"details"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}
