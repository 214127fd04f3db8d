package ports

import (
	"context"

	"github.com/tivra/storefront-gateway/internal/core/domain"
)

// CreateOrderInput creates a fulfillment record from an accepted enquiry.
// TransporterID is optional; zero leaves the order in the job pool.
type CreateOrderInput struct {
	EnquiryID     int64
	TransporterID int64
}

// OrderService covers the three perspectives on the same backend entity:
// the parties' order list, the transporter's assigned deliveries, and the
// unassigned job pool. Mutations return the reloaded owning collection.
// The job pool is read-only: the backend exposes no write that records a
// transporter on an order, so there is no claim operation to offer.
type OrderService interface {
	ListOrders(ctx context.Context, sess *domain.Session) ([]domain.Order, error)
	CreateOrder(ctx context.Context, sess *domain.Session, input CreateOrderInput) ([]domain.Order, error)
	// UpdateStatus advances an order one step; the transition is validated
	// against the current fetched state before the backend round-trip.
	UpdateStatus(ctx context.Context, sess *domain.Session, orderID string, next domain.OrderStatus) ([]domain.Order, error)
	// ListDeliveries is the orders list filtered to the session's assignment.
	ListDeliveries(ctx context.Context, sess *domain.Session) ([]domain.Order, error)
	ListJobs(ctx context.Context, sess *domain.Session) ([]domain.Order, error)
}
