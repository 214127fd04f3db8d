package normalize

import "github.com/tivra/storefront-gateway/internal/core/domain"

// Enquiry maps a raw enquiry record. Unknown statuses default to Pending so
// the status badge always renders something meaningful.
func Enquiry(m Raw) domain.Enquiry {
	status := domain.EnquiryStatus(str(m, string(domain.EnquiryPending), "status"))
	if !domain.KnownEnquiryStatus(status) {
		status = domain.EnquiryPending
	}
	return domain.Enquiry{
		ID:           id(m, "id"),
		Product:      productRef(nested(m, "product")),
		Quantity:     num(m, 0, "quantity"),
		OfferedPrice: num(m, 0, "offered_price"),
		Status:       status,
		Response:     str(m, "", "response", "message"),
		CreatedAt:    when(m, "created_at"),
	}
}
