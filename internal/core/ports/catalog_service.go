package ports

import (
	"context"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/view"
)

// ProductInput carries the seller-entered fields of a product create or edit.
type ProductInput struct {
	CommodityType  string
	PricePerUnit   float64
	UnitOfMeasure  string
	Quantity       float64
	PickupLocation string
}

// CatalogService is the product list pipeline: fetch, normalize, derive.
// Listing is public (nil session allowed); mutations are seller actions and
// each returns the reloaded, re-derived list so the caller can replace its
// state wholesale.
type CatalogService interface {
	ListProducts(ctx context.Context, sess *domain.Session, filters view.Filters) ([]domain.Product, error)
	GetProduct(ctx context.Context, sess *domain.Session, productID string) (*domain.Product, error)
	CreateProduct(ctx context.Context, sess *domain.Session, input ProductInput, filters view.Filters) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, sess *domain.Session, productID string, input ProductInput, filters view.Filters) ([]domain.Product, error)
	DeleteProduct(ctx context.Context, sess *domain.Session, productID string, filters view.Filters) ([]domain.Product, error)
}
