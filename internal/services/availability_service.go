package services

import (
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"
)

// AvailabilityService computes bookable (avenue, mode) offers. It is a pure
// read path: seat usage is re-aggregated from bookings on every call, so two
// concurrent searches can disagree; the booking transaction is what finally
// arbitrates capacity.
type AvailabilityService struct {
	Avenues  repositories.AvenueRepository
	Bookings repositories.BookingRepository

	// Now is injectable for deterministic discount math in tests.
	Now func() time.Time
}

type AvailabilityRequest struct {
	From      int64
	To        *int64
	Date      string
	Passenger int
	Mode      string
}

func (s AvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

// Search returns one offer per (avenue, mode) pair that both endpoints
// support and that still has seats on the journey date.
func (s AvailabilityService) Search(req AvailabilityRequest) ([]models.Offer, error) {
	if req.From <= 0 {
		return nil, domain.ValidationError{Field: "from", Msg: "departure destination is required"}
	}
	journeyDate, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, domain.ValidationError{Field: "date", Msg: "invalid date format (use YYYY-MM-DD)", Err: err}
	}
	if req.Passenger <= 0 {
		return nil, domain.ValidationError{Field: "passenger", Msg: "passenger count must be positive integer"}
	}

	var requestedMode *domain.TravelMode
	if req.Mode != "" {
		m, err := domain.ParseTravelMode(req.Mode)
		if err != nil {
			return nil, err
		}
		requestedMode = &m
	}

	avenues, err := s.Avenues.ListActiveByRoute(req.From, req.To)
	if err != nil {
		return nil, err
	}

	daysAdvance := utils.DaysUntil(s.now(), journeyDate)
	discount := DiscountPercent(daysAdvance)

	offers := []models.Offer{}
	for _, avenue := range avenues {
		modes := avenue.SupportedModes()
		if len(modes) == 0 {
			continue
		}
		if requestedMode != nil {
			if !containsMode(modes, *requestedMode) {
				continue
			}
			modes = []domain.TravelMode{*requestedMode}
		}

		for _, mode := range modes {
			capacity := ModeCapacity(mode)
			booked, err := s.Bookings.SumConfirmedSeats(nil, avenue.ID, journeyDate, mode, false)
			if err != nil {
				return nil, err
			}
			remaining := capacity - booked
			if remaining <= 0 {
				continue
			}

			fare := ModeFare(mode, avenue.Price)
			economy, business, first := ClassPrices(fare, discount)
			seatEco, seatBiz, seatFirst := ClassSeats(remaining)

			offers = append(offers, models.Offer{
				Avenue:   avenue,
				Mode:     mode,
				Discount: discount,
				Prices: models.ClassPrices{
					Economy:  economy,
					Business: business,
					First:    first,
				},
				SeatAvailability: models.ClassSeats{
					Economy:  seatEco,
					Business: seatBiz,
					First:    seatFirst,
				},
				MaxSeats:    capacity,
				BookedSeats: booked,
			})
		}
	}
	return offers, nil
}

func containsMode(modes []domain.TravelMode, mode domain.TravelMode) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}
