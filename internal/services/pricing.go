package services

import "travelbackend/internal/domain"

// Per-mode seat capacities. These are fleet-wide constants, not per-avenue
// settings.
const (
	SeatsAir   = 140
	SeatsCoach = 50
	SeatsTrain = 240
)

// Fare class multipliers, economy:business:first = 1:2:3.
const (
	multEconomy  = 1
	multBusiness = 2
	multFirst    = 3
)

// ModeCapacity returns the fixed seat capacity for a travel mode.
func ModeCapacity(mode domain.TravelMode) int {
	switch mode {
	case domain.ModeCoach:
		return SeatsCoach
	case domain.ModeTrain:
		return SeatsTrain
	default:
		return SeatsAir
	}
}

// ModeFare adjusts an avenue's base price for the travel mode: coach rides a
// third of the nominal price, train three times it, air unchanged. The
// asymmetry is the published fare policy.
func ModeFare(mode domain.TravelMode, basePrice float64) float64 {
	switch mode {
	case domain.ModeCoach:
		return basePrice / 3
	case domain.ModeTrain:
		return basePrice * 3
	default:
		return basePrice
	}
}

// DiscountPercent maps days booked in advance to the advance-purchase
// discount. Only the highest matching tier applies; past dates fall through
// to zero.
func DiscountPercent(daysAdvance int) int {
	switch {
	case daysAdvance >= 91:
		return 30
	case daysAdvance >= 80:
		return 20
	case daysAdvance >= 60:
		return 10
	case daysAdvance >= 45:
		return 5
	default:
		return 0
	}
}

// ClassPrices applies class multipliers and the discount to a mode-adjusted
// fare.
func ClassPrices(modeFare float64, discount int) (economy, business, first float64) {
	factor := 1 - float64(discount)/100
	economy = modeFare * multEconomy * factor
	business = modeFare * multBusiness * factor
	first = modeFare * multFirst * factor
	return
}

// ClassSeats splits remaining capacity 60/20/20 across classes. Each share is
// floored independently, so the three counts may undershoot the total; that
// slack is the published allocation rule, not a rounding bug to fix here.
func ClassSeats(remaining int) (economy, business, first int) {
	economy = int(float64(remaining) * 0.6)
	business = int(float64(remaining) * 0.2)
	first = int(float64(remaining) * 0.2)
	return
}

// RefundPercent maps days before departure at cancellation time to the share
// of the payment returned. The schedule is non-contiguous: 51-60 days falls
// in no tier and refunds nothing. Reproduced from the published policy;
// change only with a deliberate policy decision.
func RefundPercent(daysBefore int) float64 {
	switch {
	case daysBefore > 60:
		return 1.0
	case daysBefore >= 40 && daysBefore <= 50:
		return 0.6
	default:
		return 0.0
	}
}
