package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
	"github.com/tivra/storefront-gateway/internal/core/view"
)

// DashboardService assembles the role-specific landing screen. Each section
// is fetched concurrently and fails independently: a dead enquiries endpoint
// must not blank the products panel. Failed sections carry an inline error
// note and an empty (never nil) item list.
type DashboardService struct {
	catalog   ports.CatalogService
	enquiries ports.EnquiryService
	orders    ports.OrderService
	admin     ports.AdminService
	log       zerolog.Logger
}

func NewDashboardService(
	catalog ports.CatalogService,
	enquiries ports.EnquiryService,
	orders ports.OrderService,
	admin ports.AdminService,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		catalog:   catalog,
		enquiries: enquiries,
		orders:    orders,
		admin:     admin,
		log:       log,
	}
}

func (s *DashboardService) Load(ctx context.Context, sess *domain.Session) (*ports.Dashboard, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}

	d := &ports.Dashboard{
		Role:       sess.Role,
		Navigation: domain.NavigationFor(sess.Role),
	}

	var wg sync.WaitGroup
	run := func(fn func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn()
		}()
	}

	switch sess.Role {
	case domain.RoleBuyer, domain.RoleSeller:
		run(func() {
			d.Products = section(s.catalog.ListProducts(ctx, sess, view.Filters{}))
		})
		run(func() {
			d.Enquiries = section(s.enquiries.ListEnquiries(ctx, sess, view.Filters{}))
		})
		run(func() {
			d.Orders = section(s.orders.ListOrders(ctx, sess))
		})
	case domain.RoleTransporter:
		run(func() {
			d.Deliveries = section(s.orders.ListDeliveries(ctx, sess))
		})
		run(func() {
			d.Jobs = section(s.orders.ListJobs(ctx, sess))
		})
	case domain.RoleAdmin:
		run(func() {
			d.Users = section(s.admin.ListUsers(ctx, sess))
		})
		run(func() {
			d.AuditLogs = section(s.admin.AuditLogs(ctx, sess))
		})
		run(func() {
			snapshot, err := s.admin.Analytics(ctx, sess)
			if err != nil {
				s.log.Warn().Err(err).Msg("analytics section failed")
				snapshot = &domain.AnalyticsSnapshot{}
			}
			d.Analytics = snapshot
		})
	default:
		return nil, domain.ErrForbidden
	}

	wg.Wait()
	return d, nil
}

// section converts a (list, err) pair into a dashboard section: errors become
// an inline note over an empty list rather than failing the whole screen.
func section[T any](items []T, err error) *ports.DashboardSection[T] {
	if err != nil {
		return &ports.DashboardSection[T]{Items: []T{}, Error: err.Error()}
	}
	if items == nil {
		items = []T{}
	}
	return &ports.DashboardSection[T]{Items: items}
}
