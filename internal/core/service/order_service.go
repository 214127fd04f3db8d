package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/tivra/storefront-gateway/internal/backend"
	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/normalize"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

// OrderService serves the order list and its two transporter projections:
// assigned deliveries and the unassigned job pool. Status advances are
// validated against the last fetched state before any round-trip, then the
// owning collection is reloaded.
type OrderService struct {
	api   ports.Marketplace
	store ports.SessionStore
	log   zerolog.Logger
}

func NewOrderService(api ports.Marketplace, store ports.SessionStore, log zerolog.Logger) *OrderService {
	return &OrderService{api: api, store: store, log: log}
}

func (s *OrderService) fetchOrders(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	raw, err := s.api.Do(ctx, http.MethodGet, "orders/", token(sess), nil)
	if err != nil {
		return nil, err
	}
	return normalize.Slice(backend.List(raw), normalize.Order), nil
}

func (s *OrderService) fetchJobs(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	raw, err := s.api.Do(ctx, http.MethodGet, "orders/available_jobs/", token(sess), nil)
	if err != nil {
		return nil, err
	}
	return normalize.Slice(backend.List(raw), normalize.Order), nil
}

func (s *OrderService) ListOrders(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}
	orders, err := s.fetchOrders(ctx, sess)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}
	return orders, nil
}

func (s *OrderService) CreateOrder(ctx context.Context, sess *domain.Session, input ports.CreateOrderInput) ([]domain.Order, error) {
	if err := requireRole(sess, domain.RoleBuyer); err != nil {
		return nil, err
	}
	payload := map[string]any{"enquiry_id": input.EnquiryID}
	if input.TransporterID != 0 {
		payload["transporter_id"] = input.TransporterID
	}
	fresh, err := MutateThenReload(ctx, "orders", nil,
		func(ctx context.Context) error {
			_, err := s.api.Do(ctx, http.MethodPost, "orders/", sess.AccessToken, payload)
			return err
		},
		func(ctx context.Context) ([]domain.Order, error) {
			return s.fetchOrders(ctx, sess)
		},
	)
	return fresh, surface(ctx, s.store, sess, s.log, err)
}

// UpdateStatus advances one order a single forward step. The current status
// comes from a fresh fetch, never from client input, so an out-of-date
// screen cannot skip a state.
func (s *OrderService) UpdateStatus(ctx context.Context, sess *domain.Session, orderID string, next domain.OrderStatus) ([]domain.Order, error) {
	if err := requireRole(sess, domain.RoleTransporter); err != nil {
		return nil, err
	}

	orders, err := s.fetchOrders(ctx, sess)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}
	current, ok := findOrder(orders, orderID)
	if !ok {
		return nil, fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
	}
	if !current.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, next)
	}

	fresh, err := MutateThenReload(ctx, "orders", orders,
		func(ctx context.Context) error {
			_, err := s.api.Do(ctx, http.MethodPut, "orders/"+orderID+"/", sess.AccessToken, map[string]any{
				"status": next.Backend(),
			})
			return err
		},
		func(ctx context.Context) ([]domain.Order, error) {
			return s.fetchOrders(ctx, sess)
		},
	)
	return fresh, surface(ctx, s.store, sess, s.log, err)
}

// ListDeliveries projects the order list onto this transporter's assigned
// work. There is no distinct delivery entity server-side.
func (s *OrderService) ListDeliveries(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	if err := requireRole(sess, domain.RoleTransporter); err != nil {
		return nil, err
	}
	orders, err := s.fetchOrders(ctx, sess)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}
	deliveries := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.Transporter.Assigned {
			deliveries = append(deliveries, o)
		}
	}
	return deliveries, nil
}

func (s *OrderService) ListJobs(ctx context.Context, sess *domain.Session) ([]domain.Order, error) {
	if err := requireRole(sess, domain.RoleTransporter); err != nil {
		return nil, err
	}
	jobs, err := s.fetchJobs(ctx, sess)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}
	return jobs, nil
}

func findOrder(orders []domain.Order, orderID string) (domain.Order, bool) {
	id, err := strconv.ParseInt(orderID, 10, 64)
	if err != nil {
		return domain.Order{}, false
	}
	for _, o := range orders {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Order{}, false
}
