package models

import "travelbackend/internal/domain"

// ClassPrices holds per-class fares for one offer.
type ClassPrices struct {
	Economy  float64 `json:"economy"`
	Business float64 `json:"business"`
	First    float64 `json:"first"`
}

// ClassSeats holds per-class seat availability for one offer.
type ClassSeats struct {
	Economy  int `json:"economy"`
	Business int `json:"business"`
	First    int `json:"first"`
}

// Offer is a computed, non-persisted (avenue, mode) availability and pricing
// result. It is never stored; the engine rebuilds it from bookings on every
// search.
type Offer struct {
	Avenue           Avenue
	Mode             domain.TravelMode
	Discount         int
	Prices           ClassPrices
	SeatAvailability ClassSeats
	MaxSeats         int
	BookedSeats      int
}
