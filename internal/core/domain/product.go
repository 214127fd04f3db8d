package domain

// Defaults substituted by the normalizer when a backend record is missing or
// malformed. Display code may rely on these never being empty.
const (
	UnknownLocation = "Unknown Location"
	UnknownSeller   = "Unknown Seller"
	UnknownProduct  = "Product"
	DefaultUnit     = "unit"
)

// SellerRef is the embedded seller summary carried on a product.
type SellerRef struct {
	ID       int64   `json:"id"`
	Username string  `json:"username"`
	Rating   float64 `json:"rating"`
	Verified bool    `json:"verified"`
}

// Product is a seller-owned commodity listing. The gateway never holds the
// authoritative copy; every mutation round-trips through the backend.
type Product struct {
	ID             int64     `json:"id"`
	CommodityType  string    `json:"commodity_type"`
	PricePerUnit   float64   `json:"price"`
	UnitOfMeasure  string    `json:"unit_of_measure"`
	Quantity       float64   `json:"quantity"`
	PickupLocation string    `json:"pickup_location"`
	Seller         SellerRef `json:"seller"`
	Status         string    `json:"status"`
}
