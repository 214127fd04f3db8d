package normalize

import "github.com/tivra/storefront-gateway/internal/core/domain"

// Order maps a raw order record. A null transporter means the order is still
// in the available-jobs pool; Assigned carries that distinction so the
// delivery projection does not have to re-inspect raw JSON. The backend
// emits capitalized statuses ("In Transit"); ParseOrderStatus folds them.
func Order(m Raw) domain.Order {
	status, ok := domain.ParseOrderStatus(str(m, string(domain.OrderRequested), "status"))
	if !ok {
		status = domain.OrderRequested
	}

	return domain.Order{
		ID:          id(m, "id"),
		Enquiry:     enquiryRef(nested(m, "enquiry")),
		Transporter: transporter(nested(m, "transporter")),
		Status:      status,
		CreatedAt:   when(m, "created_at"),
		UpdatedAt:   when(m, "updated_at"),
	}
}

func enquiryRef(m Raw) domain.EnquiryRef {
	return domain.EnquiryRef{
		ID:       id(m, "id"),
		Product:  productRef(nested(m, "product")),
		Quantity: num(m, 0, "quantity"),
	}
}

func transporter(m Raw) domain.TransporterRef {
	if m == nil {
		return domain.TransporterRef{}
	}
	ref := domain.TransporterRef{
		ID:       id(m, "id"),
		Username: str(m, "", "username"),
		Assigned: boolean(m, false, "assigned"),
	}
	if ref.ID != 0 || ref.Username != "" {
		ref.Assigned = true
	}
	return ref
}
