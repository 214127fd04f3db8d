package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

// ProductHandler serves the catalog screens. Listing and detail are public;
// create, edit, and delete are seller actions behind the session middleware.
type ProductHandler struct {
	catalog ports.CatalogService
}

func NewProductHandler(catalog ports.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type productRequest struct {
	CommodityType  string  `json:"commodity_type" validate:"required"`
	PricePerUnit   float64 `json:"price" validate:"gt=0"`
	UnitOfMeasure  string  `json:"unit_of_measure" validate:"required"`
	Quantity       float64 `json:"quantity" validate:"gt=0"`
	PickupLocation string  `json:"pickup_location" validate:"required"`
}

type productListResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// List handles GET /products with optional search/category/location/sort.
//
// @Summary      Browse the product catalog
// @Tags         products
// @Produce      json
// @Param        search    query  string  false  "Free-text search"
// @Param        category  query  string  false  "Commodity type filter"
// @Param        location  query  string  false  "Pickup location filter"
// @Param        sort      query  string  false  "name | price_low | price_high | rating"
// @Success      200  {object}  productListResponse
// @Failure      502  {object}  map[string]string
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.catalog.ListProducts(c.Request().Context(), ctxSession(c), ctxFilters(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Products: products, Count: len(products)})
}

// Get handles GET /products/:id.
//
// @Summary      Product detail
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200  {object}  domain.Product
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), ctxSession(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /products (seller). The response body is the reloaded
// product list, the only state a screen may replace its own with.
//
// @Summary      Create a product listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      productRequest  true  "Listing details"
// @Success      201   {object}  productListResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	req, err := bindProduct(c)
	if err != nil {
		return err
	}
	fresh, err := h.catalog.CreateProduct(c.Request().Context(), ctxSession(c), req, ctxFilters(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, productListResponse{Products: fresh, Count: len(fresh)})
}

// Update handles PATCH /products/:id (seller).
//
// @Summary      Edit a product listing
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Product ID"
// @Param        body  body      productRequest  true  "Updated fields"
// @Success      200   {object}  productListResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	req, err := bindProduct(c)
	if err != nil {
		return err
	}
	fresh, err := h.catalog.UpdateProduct(c.Request().Context(), ctxSession(c), c.Param("id"), req, ctxFilters(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Products: fresh, Count: len(fresh)})
}

// Delete handles DELETE /products/:id (seller).
//
// @Summary      Remove a product listing
// @Tags         products
// @Produce      json
// @Param        id  path  string  true  "Product ID"
// @Success      200  {object}  productListResponse
// @Failure      404  {object}  map[string]string
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	fresh, err := h.catalog.DeleteProduct(c.Request().Context(), ctxSession(c), c.Param("id"), ctxFilters(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productListResponse{Products: fresh, Count: len(fresh)})
}

func bindProduct(c echo.Context) (ports.ProductInput, error) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return ports.ProductInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.ProductInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return ports.ProductInput{
		CommodityType:  req.CommodityType,
		PricePerUnit:   req.PricePerUnit,
		UnitOfMeasure:  req.UnitOfMeasure,
		Quantity:       req.Quantity,
		PickupLocation: req.PickupLocation,
	}, nil
}
