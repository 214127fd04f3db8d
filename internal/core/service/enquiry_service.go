package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tivra/storefront-gateway/internal/backend"
	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/normalize"
	"github.com/tivra/storefront-gateway/internal/core/ports"
	"github.com/tivra/storefront-gateway/internal/core/view"
)

// EnquiryService lists and mutates enquiries. Buyers create them, sellers
// respond; the backend scopes the returned collection to the caller.
type EnquiryService struct {
	api   ports.Marketplace
	store ports.SessionStore
	log   zerolog.Logger
}

func NewEnquiryService(api ports.Marketplace, store ports.SessionStore, log zerolog.Logger) *EnquiryService {
	return &EnquiryService{api: api, store: store, log: log}
}

// enquiryFields: searchable on the product's commodity type, its pickup
// location, and the status text; price sorting uses the offered price.
func enquiryFields(e domain.Enquiry) view.Fields {
	return view.Fields{
		Label:      e.Product.CommodityType,
		Category:   e.Product.CommodityType,
		Location:   e.Product.PickupLocation,
		Searchable: []string{e.Product.CommodityType, e.Product.PickupLocation, string(e.Status)},
		Price:      e.OfferedPrice,
	}
}

func (s *EnquiryService) fetchEnquiries(ctx context.Context, sess *domain.Session, filters view.Filters) ([]domain.Enquiry, error) {
	raw, err := s.api.Do(ctx, http.MethodGet, "enquiries/", token(sess), nil)
	if err != nil {
		return nil, err
	}
	enquiries := normalize.Slice(backend.List(raw), normalize.Enquiry)
	return view.Derive(enquiries, filters, enquiryFields), nil
}

func (s *EnquiryService) ListEnquiries(ctx context.Context, sess *domain.Session, filters view.Filters) ([]domain.Enquiry, error) {
	if err := requireAuth(sess); err != nil {
		return nil, err
	}
	enquiries, err := s.fetchEnquiries(ctx, sess, filters)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}
	return enquiries, nil
}

func (s *EnquiryService) CreateEnquiry(ctx context.Context, sess *domain.Session, input ports.CreateEnquiryInput, filters view.Filters) ([]domain.Enquiry, error) {
	if err := requireRole(sess, domain.RoleBuyer); err != nil {
		return nil, err
	}
	fresh, err := MutateThenReload(ctx, "enquiries", nil,
		func(ctx context.Context) error {
			_, err := s.api.Do(ctx, http.MethodPost, "enquiries/", sess.AccessToken, map[string]any{
				"product_id":    input.ProductID,
				"quantity":      input.Quantity,
				"offered_price": input.OfferedPrice,
			})
			return err
		},
		func(ctx context.Context) ([]domain.Enquiry, error) {
			return s.fetchEnquiries(ctx, sess, filters)
		},
	)
	return fresh, surface(ctx, s.store, sess, s.log, err)
}

func (s *EnquiryService) RespondToEnquiry(ctx context.Context, sess *domain.Session, enquiryID string, input ports.RespondInput, filters view.Filters) ([]domain.Enquiry, error) {
	if err := requireRole(sess, domain.RoleSeller); err != nil {
		return nil, err
	}
	if !domain.KnownEnquiryStatus(input.Status) {
		return nil, fmt.Errorf("%w: unknown enquiry status %q", domain.ErrInvalidTransition, input.Status)
	}
	path := fmt.Sprintf("enquiries/%s/respond/", enquiryID)
	fresh, err := MutateThenReload(ctx, "enquiries", nil,
		func(ctx context.Context) error {
			_, err := s.api.Do(ctx, http.MethodPatch, path, sess.AccessToken, map[string]any{
				"status":  string(input.Status),
				"message": input.Message,
			})
			return err
		},
		func(ctx context.Context) ([]domain.Enquiry, error) {
			return s.fetchEnquiries(ctx, sess, filters)
		},
	)
	return fresh, surface(ctx, s.store, sess, s.log, err)
}
