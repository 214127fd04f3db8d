package ports

import (
	"context"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/view"
)

// CreateEnquiryInput is a buyer's expression of interest in a product.
type CreateEnquiryInput struct {
	ProductID    int64
	Quantity     float64
	OfferedPrice float64
}

// RespondInput is a seller's reply to an enquiry: a new status plus an
// optional message for the buyer.
type RespondInput struct {
	Status  domain.EnquiryStatus
	Message string
}

// EnquiryService lists, creates, and responds to enquiries. Mutations return
// the reloaded list.
type EnquiryService interface {
	ListEnquiries(ctx context.Context, sess *domain.Session, filters view.Filters) ([]domain.Enquiry, error)
	CreateEnquiry(ctx context.Context, sess *domain.Session, input CreateEnquiryInput, filters view.Filters) ([]domain.Enquiry, error)
	RespondToEnquiry(ctx context.Context, sess *domain.Session, enquiryID string, input RespondInput, filters view.Filters) ([]domain.Enquiry, error)
}

// MessageService lists the immutable messages of enquiry threads.
// A zero enquiryID lists across all threads visible to the session.
type MessageService interface {
	ListMessages(ctx context.Context, sess *domain.Session, enquiryID int64) ([]domain.Message, error)
}
