package domain

import "time"

// EnquiryStatus is the seller-driven lifecycle of a buyer enquiry.
// Transitions happen server-side; the gateway only displays and requests them.
type EnquiryStatus string

const (
	EnquiryPending     EnquiryStatus = "Pending"
	EnquiryUnderReview EnquiryStatus = "Under Review"
	EnquiryNegotiating EnquiryStatus = "Negotiating"
	EnquiryAccepted    EnquiryStatus = "Accepted"
	EnquiryRejected    EnquiryStatus = "Rejected"
)

// KnownEnquiryStatus reports whether s is one of the displayable statuses.
func KnownEnquiryStatus(s EnquiryStatus) bool {
	switch s {
	case EnquiryPending, EnquiryUnderReview, EnquiryNegotiating, EnquiryAccepted, EnquiryRejected:
		return true
	}
	return false
}

// ProductRef is the embedded product summary carried on enquiries and orders.
type ProductRef struct {
	ID             int64   `json:"id"`
	CommodityType  string  `json:"commodity_type"`
	UnitOfMeasure  string  `json:"unit_of_measure"`
	PickupLocation string  `json:"pickup_location"`
	PricePerUnit   float64 `json:"price"`
}

// Enquiry is a buyer's expression of interest in a product.
type Enquiry struct {
	ID           int64         `json:"id"`
	Product      ProductRef    `json:"product"`
	Quantity     float64       `json:"quantity"`
	OfferedPrice float64       `json:"offered_price"`
	Status       EnquiryStatus `json:"status"`
	Response     string        `json:"response"`
	CreatedAt    time.Time     `json:"created_at"`
}
