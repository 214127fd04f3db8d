package normalize

import "github.com/tivra/storefront-gateway/internal/core/domain"

// Product maps a raw product record to its display-safe form.
//
// Defaults: commodity type "Product", unit "unit", location
// "Unknown Location", seller "Unknown Seller", numeric fields 0,
// status "available".
func Product(m Raw) domain.Product {
	return domain.Product{
		ID:             id(m, "id"),
		CommodityType:  str(m, domain.UnknownProduct, "commodity_type", "name"),
		PricePerUnit:   num(m, 0, "price", "price_per_unit"),
		UnitOfMeasure:  str(m, domain.DefaultUnit, "unit_of_measure"),
		Quantity:       num(m, 0, "quantity"),
		PickupLocation: str(m, domain.UnknownLocation, "pickup_location"),
		Seller:         seller(nested(m, "seller")),
		Status:         str(m, "available", "status"),
	}
}

func seller(m Raw) domain.SellerRef {
	return domain.SellerRef{
		ID:       id(m, "id"),
		Username: str(m, domain.UnknownSeller, "username", "name"),
		Rating:   sellerRating(m),
		Verified: boolean(m, false, "verified", "is_verified"),
	}
}

// sellerRating reads the flattened rating first, then the backend's nested
// profile object. Missing ratings sort as 0.
func sellerRating(m Raw) float64 {
	if r := num(m, -1, "rating"); r >= 0 {
		return r
	}
	return num(nested(m, "profile"), 0, "rating")
}

// productRef maps the embedded product summary on enquiries and orders.
func productRef(m Raw) domain.ProductRef {
	return domain.ProductRef{
		ID:             id(m, "id"),
		CommodityType:  str(m, domain.UnknownProduct, "commodity_type", "name"),
		UnitOfMeasure:  str(m, domain.DefaultUnit, "unit_of_measure"),
		PickupLocation: str(m, domain.UnknownLocation, "pickup_location"),
		PricePerUnit:   num(m, 0, "price", "price_per_unit"),
	}
}
