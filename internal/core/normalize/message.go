package normalize

import "github.com/tivra/storefront-gateway/internal/core/domain"

// Message maps a raw message record. The backend serializes the enquiry
// association either as a bare ID or as a nested object.
func Message(m Raw) domain.Message {
	enquiryID := id(m, "enquiry", "enquiry_id")
	if enquiryID == 0 {
		enquiryID = id(nested(m, "enquiry"), "id")
	}
	return domain.Message{
		ID:        id(m, "id"),
		Sender:    sender(nested(m, "sender")),
		Content:   str(m, "", "content"),
		EnquiryID: enquiryID,
		Timestamp: when(m, "timestamp", "created_at"),
	}
}

func sender(m Raw) domain.UserRef {
	return domain.UserRef{
		ID:       id(m, "id"),
		Username: str(m, "Unknown User", "username", "name"),
	}
}
