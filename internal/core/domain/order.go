package domain

import (
	"strings"
	"time"
)

// OrderStatus is the fulfillment lifecycle, advanced monotonically by the
// assigned transporter. Delivered is terminal.
type OrderStatus string

const (
	OrderRequested OrderStatus = "requested"
	OrderPicked    OrderStatus = "picked"
	OrderInTransit OrderStatus = "in_transit"
	OrderDelivered OrderStatus = "delivered"
)

// ParseOrderStatus maps a backend status literal to its OrderStatus. The
// backend stores capitalized, space-separated names ("In Transit");
// matching folds case and spaces. The second return reports recognition.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	folded := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
	st := OrderStatus(folded)
	switch st {
	case OrderRequested, OrderPicked, OrderInTransit, OrderDelivered:
		return st, true
	}
	return "", false
}

// Backend returns the capitalized literal the marketplace API stores for s,
// or "" for an unknown status. Status writes must use this form; the
// backend's status field validates against it.
func (s OrderStatus) Backend() string {
	switch s {
	case OrderRequested:
		return "Requested"
	case OrderPicked:
		return "Picked"
	case OrderInTransit:
		return "In Transit"
	case OrderDelivered:
		return "Delivered"
	}
	return ""
}

var orderTransitions = map[OrderStatus]OrderStatus{
	OrderRequested: OrderPicked,
	OrderPicked:    OrderInTransit,
	OrderInTransit: OrderDelivered,
}

// CanTransitionTo reports whether advancing from s to next is a legal
// forward step. The backend enforces this too; the gateway checks first to
// fail fast without a round-trip.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	return orderTransitions[s] == next
}

// Terminal reports whether the order has reached its final state.
func (s OrderStatus) Terminal() bool { return s == OrderDelivered }

// EnquiryRef is the embedded enquiry summary carried on an order.
type EnquiryRef struct {
	ID       int64      `json:"id"`
	Product  ProductRef `json:"product"`
	Quantity float64    `json:"quantity"`
}

// TransporterRef identifies the transporter assigned to an order. A zero ID
// with Assigned false means the order is still in the job pool.
type TransporterRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Assigned bool   `json:"assigned"`
}

// Order is the fulfillment record created from an accepted enquiry.
type Order struct {
	ID          int64          `json:"id"`
	Enquiry     EnquiryRef     `json:"enquiry"`
	Transporter TransporterRef `json:"transporter"`
	Status      OrderStatus    `json:"status"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
