package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
)

type EnquiryHandler struct {
	enquiries ports.EnquiryService
}

func NewEnquiryHandler(enquiries ports.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiries: enquiries}
}

type createEnquiryRequest struct {
	ProductID    int64   `json:"product_id" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"gt=0"`
	OfferedPrice float64 `json:"offered_price" validate:"gt=0"`
}

type respondRequest struct {
	Status  string `json:"status" validate:"required"`
	Message string `json:"message"`
}

type enquiryListResponse struct {
	Enquiries []domain.Enquiry `json:"enquiries"`
	Count     int              `json:"count"`
}

// List handles GET /enquiries.
//
// @Summary      List enquiries visible to the session
// @Tags         enquiries
// @Produce      json
// @Param        search  query  string  false  "Free-text search"
// @Success      200  {object}  enquiryListResponse
// @Failure      401  {object}  map[string]string
// @Router       /enquiries [get]
func (h *EnquiryHandler) List(c echo.Context) error {
	enquiries, err := h.enquiries.ListEnquiries(c.Request().Context(), ctxSession(c), ctxFilters(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enquiryListResponse{Enquiries: enquiries, Count: len(enquiries)})
}

// Create handles POST /enquiries (buyer).
//
// @Summary      Send an enquiry for a product
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Param        body  body      createEnquiryRequest  true  "Enquiry details"
// @Success      201   {object}  enquiryListResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /enquiries [post]
func (h *EnquiryHandler) Create(c echo.Context) error {
	var req createEnquiryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fresh, err := h.enquiries.CreateEnquiry(c.Request().Context(), ctxSession(c), ports.CreateEnquiryInput{
		ProductID:    req.ProductID,
		Quantity:     req.Quantity,
		OfferedPrice: req.OfferedPrice,
	}, ctxFilters(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, enquiryListResponse{Enquiries: fresh, Count: len(fresh)})
}

// Respond handles PATCH /enquiries/:id/respond (seller).
//
// @Summary      Respond to an enquiry
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Enquiry ID"
// @Param        body  body      respondRequest  true  "New status and optional message"
// @Success      200   {object}  enquiryListResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /enquiries/{id}/respond [patch]
func (h *EnquiryHandler) Respond(c echo.Context) error {
	var req respondRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fresh, err := h.enquiries.RespondToEnquiry(c.Request().Context(), ctxSession(c), c.Param("id"), ports.RespondInput{
		Status:  domain.EnquiryStatus(req.Status),
		Message: req.Message,
	}, ctxFilters(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, enquiryListResponse{Enquiries: fresh, Count: len(fresh)})
}
