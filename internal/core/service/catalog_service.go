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

// CatalogService runs the product pipeline: fetch the collection, normalize
// every record, derive the filtered/sorted view. Mutations are seller-only
// and round-trip through the backend before the list is reloaded.
type CatalogService struct {
	api   ports.Marketplace
	store ports.SessionStore
	log   zerolog.Logger
}

func NewCatalogService(api ports.Marketplace, store ports.SessionStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{api: api, store: store, log: log}
}

// productFields projects a product for the view derivation: searchable on
// commodity type, pickup location, and seller name; sortable by label,
// price, and seller rating.
func productFields(p domain.Product) view.Fields {
	return view.Fields{
		Label:      p.CommodityType,
		Category:   p.CommodityType,
		Location:   p.PickupLocation,
		Searchable: []string{p.CommodityType, p.PickupLocation, p.Seller.Username},
		Price:      p.PricePerUnit,
		Rating:     p.Seller.Rating,
	}
}

func (s *CatalogService) fetchProducts(ctx context.Context, sess *domain.Session, filters view.Filters) ([]domain.Product, error) {
	raw, err := s.api.Do(ctx, http.MethodGet, "products/", token(sess), nil)
	if err != nil {
		return nil, err
	}
	products := normalize.Slice(backend.List(raw), normalize.Product)
	return view.Derive(products, filters, productFields), nil
}

// ListProducts is public: an unauthenticated session browses the same
// catalog, just without seller-scoped results.
func (s *CatalogService) ListProducts(ctx context.Context, sess *domain.Session, filters view.Filters) ([]domain.Product, error) {
	products, err := s.fetchProducts(ctx, sess, filters)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}
	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, sess *domain.Session, productID string) (*domain.Product, error) {
	raw, err := s.api.Do(ctx, http.MethodGet, "products/"+productID+"/", token(sess), nil)
	if err != nil {
		return nil, surface(ctx, s.store, sess, s.log, err)
	}
	p := normalize.Product(backend.Record(raw))
	return &p, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, sess *domain.Session, input ports.ProductInput, filters view.Filters) ([]domain.Product, error) {
	if err := requireRole(sess, domain.RoleSeller); err != nil {
		return nil, err
	}
	fresh, err := MutateThenReload(ctx, "products", nil,
		func(ctx context.Context) error {
			_, err := s.api.Do(ctx, http.MethodPost, "products/", sess.AccessToken, productPayload(input))
			return err
		},
		func(ctx context.Context) ([]domain.Product, error) {
			return s.fetchProducts(ctx, sess, filters)
		},
	)
	return fresh, surface(ctx, s.store, sess, s.log, err)
}

func (s *CatalogService) UpdateProduct(ctx context.Context, sess *domain.Session, productID string, input ports.ProductInput, filters view.Filters) ([]domain.Product, error) {
	if err := requireRole(sess, domain.RoleSeller); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("products/%s/update_product/", productID)
	fresh, err := MutateThenReload(ctx, "products", nil,
		func(ctx context.Context) error {
			_, err := s.api.Do(ctx, http.MethodPatch, path, sess.AccessToken, productPayload(input))
			return err
		},
		func(ctx context.Context) ([]domain.Product, error) {
			return s.fetchProducts(ctx, sess, filters)
		},
	)
	return fresh, surface(ctx, s.store, sess, s.log, err)
}

func (s *CatalogService) DeleteProduct(ctx context.Context, sess *domain.Session, productID string, filters view.Filters) ([]domain.Product, error) {
	if err := requireRole(sess, domain.RoleSeller); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("products/%s/delete_product/", productID)
	fresh, err := MutateThenReload(ctx, "products", nil,
		func(ctx context.Context) error {
			_, err := s.api.Do(ctx, http.MethodDelete, path, sess.AccessToken, nil)
			return err
		},
		func(ctx context.Context) ([]domain.Product, error) {
			return s.fetchProducts(ctx, sess, filters)
		},
	)
	return fresh, surface(ctx, s.store, sess, s.log, err)
}

func productPayload(input ports.ProductInput) map[string]any {
	return map[string]any{
		"commodity_type":  input.CommodityType,
		"price":           input.PricePerUnit,
		"unit_of_measure": input.UnitOfMeasure,
		"quantity":        input.Quantity,
		"pickup_location": input.PickupLocation,
	}
}
