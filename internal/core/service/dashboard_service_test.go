package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
	"github.com/tivra/storefront-gateway/internal/core/view"
)

// Dashboard stubs return canned results per collection so section
// independence can be exercised without a backend.

type stubCatalog struct {
	products []domain.Product
	err      error
}

func (s *stubCatalog) ListProducts(context.Context, *domain.Session, view.Filters) ([]domain.Product, error) {
	return s.products, s.err
}
func (s *stubCatalog) GetProduct(context.Context, *domain.Session, string) (*domain.Product, error) {
	return nil, errors.New("not stubbed")
}
func (s *stubCatalog) CreateProduct(context.Context, *domain.Session, ports.ProductInput, view.Filters) ([]domain.Product, error) {
	return nil, errors.New("not stubbed")
}
func (s *stubCatalog) UpdateProduct(context.Context, *domain.Session, string, ports.ProductInput, view.Filters) ([]domain.Product, error) {
	return nil, errors.New("not stubbed")
}
func (s *stubCatalog) DeleteProduct(context.Context, *domain.Session, string, view.Filters) ([]domain.Product, error) {
	return nil, errors.New("not stubbed")
}

type stubEnquiries struct {
	enquiries []domain.Enquiry
	err       error
}

func (s *stubEnquiries) ListEnquiries(context.Context, *domain.Session, view.Filters) ([]domain.Enquiry, error) {
	return s.enquiries, s.err
}
func (s *stubEnquiries) CreateEnquiry(context.Context, *domain.Session, ports.CreateEnquiryInput, view.Filters) ([]domain.Enquiry, error) {
	return nil, errors.New("not stubbed")
}
func (s *stubEnquiries) RespondToEnquiry(context.Context, *domain.Session, string, ports.RespondInput, view.Filters) ([]domain.Enquiry, error) {
	return nil, errors.New("not stubbed")
}

type stubOrders struct {
	orders     []domain.Order
	deliveries []domain.Order
	jobs       []domain.Order
	err        error
}

func (s *stubOrders) ListOrders(context.Context, *domain.Session) ([]domain.Order, error) {
	return s.orders, s.err
}
func (s *stubOrders) CreateOrder(context.Context, *domain.Session, ports.CreateOrderInput) ([]domain.Order, error) {
	return nil, errors.New("not stubbed")
}
func (s *stubOrders) UpdateStatus(context.Context, *domain.Session, string, domain.OrderStatus) ([]domain.Order, error) {
	return nil, errors.New("not stubbed")
}
func (s *stubOrders) ListDeliveries(context.Context, *domain.Session) ([]domain.Order, error) {
	return s.deliveries, s.err
}
func (s *stubOrders) ListJobs(context.Context, *domain.Session) ([]domain.Order, error) {
	return s.jobs, s.err
}

type stubAdmin struct {
	users     []domain.PlatformUser
	analytics *domain.AnalyticsSnapshot
	logs      []domain.AuditLog
	err       error
}

func (s *stubAdmin) ListUsers(context.Context, *domain.Session) ([]domain.PlatformUser, error) {
	return s.users, s.err
}
func (s *stubAdmin) Analytics(context.Context, *domain.Session) (*domain.AnalyticsSnapshot, error) {
	return s.analytics, s.err
}
func (s *stubAdmin) AuditLogs(context.Context, *domain.Session) ([]domain.AuditLog, error) {
	return s.logs, s.err
}
func (s *stubAdmin) VerifyUser(context.Context, *domain.Session, string) ([]domain.PlatformUser, error) {
	return nil, errors.New("not stubbed")
}

func buyerSession() *domain.Session {
	return &domain.Session{ID: "s1", AccessToken: "tok", Role: domain.RoleBuyer}
}

func TestDashboard_BuyerSections(t *testing.T) {
	svc := NewDashboardService(
		&stubCatalog{products: []domain.Product{{ID: 1}}},
		&stubEnquiries{enquiries: []domain.Enquiry{{ID: 2}, {ID: 3}}},
		&stubOrders{orders: []domain.Order{}},
		&stubAdmin{},
		nopLog(),
	)

	d, err := svc.Load(context.Background(), buyerSession())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if d.Role != domain.RoleBuyer || len(d.Navigation) == 0 {
		t.Errorf("role/navigation missing: %+v", d)
	}
	if d.Products == nil || len(d.Products.Items) != 1 {
		t.Errorf("products section %+v", d.Products)
	}
	if d.Enquiries == nil || len(d.Enquiries.Items) != 2 {
		t.Errorf("enquiries section %+v", d.Enquiries)
	}
	if d.Orders == nil || d.Orders.Items == nil {
		t.Error("empty orders section must still carry a non-nil item list")
	}
	if d.Users != nil || d.Jobs != nil || d.Deliveries != nil {
		t.Error("buyer dashboard carries foreign sections")
	}
}

func TestDashboard_FailedSectionIsIsolated(t *testing.T) {
	svc := NewDashboardService(
		&stubCatalog{products: []domain.Product{{ID: 1}}},
		&stubEnquiries{err: errors.New("enquiries endpoint down")},
		&stubOrders{orders: []domain.Order{{ID: 4}}},
		&stubAdmin{},
		nopLog(),
	)

	d, err := svc.Load(context.Background(), buyerSession())
	if err != nil {
		t.Fatalf("one dead section failed the whole screen: %v", err)
	}
	if d.Enquiries == nil || d.Enquiries.Error == "" {
		t.Fatalf("failed section has no error note: %+v", d.Enquiries)
	}
	if d.Enquiries.Items == nil || len(d.Enquiries.Items) != 0 {
		t.Errorf("failed section items %+v, want empty non-nil", d.Enquiries.Items)
	}
	if len(d.Products.Items) != 1 || len(d.Orders.Items) != 1 {
		t.Error("healthy sections affected by a failing one")
	}
}

func TestDashboard_TransporterSections(t *testing.T) {
	svc := NewDashboardService(
		&stubCatalog{},
		&stubEnquiries{},
		&stubOrders{
			deliveries: []domain.Order{{ID: 1}},
			jobs:       []domain.Order{{ID: 2}, {ID: 3}},
		},
		&stubAdmin{},
		nopLog(),
	)

	d, err := svc.Load(context.Background(), &domain.Session{ID: "s2", AccessToken: "tok", Role: domain.RoleTransporter})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if d.Deliveries == nil || len(d.Deliveries.Items) != 1 {
		t.Errorf("deliveries section %+v", d.Deliveries)
	}
	if d.Jobs == nil || len(d.Jobs.Items) != 2 {
		t.Errorf("jobs section %+v", d.Jobs)
	}
	if d.Products != nil || d.Enquiries != nil || d.Orders != nil {
		t.Error("transporter dashboard carries trading sections")
	}
}

func TestDashboard_AdminSections(t *testing.T) {
	svc := NewDashboardService(
		&stubCatalog{},
		&stubEnquiries{},
		&stubOrders{},
		&stubAdmin{
			users:     []domain.PlatformUser{{ID: 1}},
			analytics: &domain.AnalyticsSnapshot{TotalUsers: 10},
			logs:      []domain.AuditLog{{ID: 1}, {ID: 2}},
		},
		nopLog(),
	)

	d, err := svc.Load(context.Background(), &domain.Session{ID: "s3", AccessToken: "tok", Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if d.Users == nil || len(d.Users.Items) != 1 {
		t.Errorf("users section %+v", d.Users)
	}
	if d.AuditLogs == nil || len(d.AuditLogs.Items) != 2 {
		t.Errorf("audit section %+v", d.AuditLogs)
	}
	if d.Analytics == nil || d.Analytics.TotalUsers != 10 {
		t.Errorf("analytics %+v", d.Analytics)
	}
}

func TestDashboard_RequiresSession(t *testing.T) {
	svc := NewDashboardService(&stubCatalog{}, &stubEnquiries{}, &stubOrders{}, &stubAdmin{}, nopLog())

	if _, err := svc.Load(context.Background(), &domain.Session{}); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("got %v, want ErrNoSession", err)
	}
}
