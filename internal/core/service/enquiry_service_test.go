package service

import (
	"context"
	"errors"
	"testing"

	"github.com/tivra/storefront-gateway/internal/core/domain"
	"github.com/tivra/storefront-gateway/internal/core/ports"
	"github.com/tivra/storefront-gateway/internal/core/view"
	"github.com/tivra/storefront-gateway/internal/session"
)

const enquiryListBody = `[
	{"id": 1, "status": "Pending", "offered_price": 250,
	 "product": {"id": 4, "commodity_type": "Biomass", "pickup_location": "Nagpur"}},
	{"id": 2, "status": "Accepted", "offered_price": 90,
	 "product": {"id": 5, "commodity_type": "Rice Husk", "pickup_location": "Pune"}}
]`

func TestListEnquiries_Derivation(t *testing.T) {
	api := newStubMarketplace()
	api.reply("GET", "enquiries/", enquiryListBody)
	store := session.NewMemoryStore()
	svc := NewEnquiryService(api, store, nopLog())
	sess := testSession(t, store, domain.RoleSeller)

	enquiries, err := svc.ListEnquiries(context.Background(), sess, view.Filters{Search: "accepted"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(enquiries) != 1 || enquiries[0].ID != 2 {
		t.Fatalf("status search got %+v", enquiries)
	}
}

func TestCreateEnquiry_BuyerOnly(t *testing.T) {
	api := newStubMarketplace()
	store := session.NewMemoryStore()
	svc := NewEnquiryService(api, store, nopLog())
	seller := testSession(t, store, domain.RoleSeller)

	_, err := svc.CreateEnquiry(context.Background(), seller, ports.CreateEnquiryInput{ProductID: 4}, view.Filters{})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
}

func TestCreateEnquiry_PayloadAndReload(t *testing.T) {
	api := newStubMarketplace()
	api.reply("POST", "enquiries/", `{"id": 3}`)
	api.reply("GET", "enquiries/", enquiryListBody)
	store := session.NewMemoryStore()
	svc := NewEnquiryService(api, store, nopLog())
	buyer := testSession(t, store, domain.RoleBuyer)

	enquiries, err := svc.CreateEnquiry(context.Background(), buyer, ports.CreateEnquiryInput{
		ProductID: 4, Quantity: 2, OfferedPrice: 250,
	}, view.Filters{})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if len(enquiries) != 2 {
		t.Fatalf("reloaded list has %d enquiries", len(enquiries))
	}

	body := api.calls[0].body.(map[string]any)
	if body["product_id"] != int64(4) || body["offered_price"] != 250.0 {
		t.Errorf("create payload %v", body)
	}
}

func TestRespondToEnquiry_RejectsUnknownStatus(t *testing.T) {
	api := newStubMarketplace()
	store := session.NewMemoryStore()
	svc := NewEnquiryService(api, store, nopLog())
	seller := testSession(t, store, domain.RoleSeller)

	_, err := svc.RespondToEnquiry(context.Background(), seller, "1", ports.RespondInput{
		Status: domain.EnquiryStatus("Maybe Later"),
	}, view.Filters{})
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("got %v, want ErrInvalidTransition", err)
	}
	if len(api.calls) != 0 {
		t.Fatal("backend called with an unknown status")
	}
}

func TestRespondToEnquiry_UsesRespondRoute(t *testing.T) {
	api := newStubMarketplace()
	api.reply("PATCH", "enquiries/1/respond/", `{}`)
	api.reply("GET", "enquiries/", `[]`)
	store := session.NewMemoryStore()
	svc := NewEnquiryService(api, store, nopLog())
	seller := testSession(t, store, domain.RoleSeller)

	_, err := svc.RespondToEnquiry(context.Background(), seller, "1", ports.RespondInput{
		Status: domain.EnquiryAccepted, Message: "deal",
	}, view.Filters{})
	if err != nil {
		t.Fatalf("respond failed: %v", err)
	}

	body := api.calls[0].body.(map[string]any)
	if body["status"] != string(domain.EnquiryAccepted) || body["message"] != "deal" {
		t.Errorf("respond payload %v", body)
	}
}

func TestListMessages_FiltersByThread(t *testing.T) {
	api := newStubMarketplace()
	api.reply("GET", "messages/", `[
		{"id": 1, "enquiry": 4, "content": "hello"},
		{"id": 2, "enquiry": {"id": 9}, "content": "other thread"},
		{"id": 3, "enquiry": 4, "content": "reply"}
	]`)
	store := session.NewMemoryStore()
	svc := NewMessageService(api, store, nopLog())
	sess := testSession(t, store, domain.RoleBuyer)

	thread, err := svc.ListMessages(context.Background(), sess, 4)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(thread) != 2 {
		t.Fatalf("thread has %d messages, want 2", len(thread))
	}

	all, err := svc.ListMessages(context.Background(), sess, 0)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("unfiltered list has %d messages", len(all))
	}
}
