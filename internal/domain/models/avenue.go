package models

import (
	"time"

	"travelbackend/internal/domain"
)

// Avenue is a scheduled departure/arrival destination pair with a base fare.
// LeaveTime and ArriveTime are times of day ("15:04:05").
type Avenue struct {
	ID                  int64
	LeaveDestinationID  int64
	ArriveDestinationID int64
	LeaveTime           string
	ArriveTime          string
	Price               float64
	Status              domain.GlobalStatus
	CreatedAt           time.Time

	LeaveDestination  *Destination
	ArriveDestination *Destination
}

// SupportedModes returns the travel modes offered by both endpoints.
func (a Avenue) SupportedModes() []domain.TravelMode {
	if a.LeaveDestination == nil || a.ArriveDestination == nil {
		return nil
	}
	out := make([]domain.TravelMode, 0, len(domain.TravelModes))
	for _, m := range domain.TravelModes {
		if a.LeaveDestination.Supports(m) && a.ArriveDestination.Supports(m) {
			out = append(out, m)
		}
	}
	return out
}

// AvenueUpdate supports PATCH-style updates via key presence.
type AvenueUpdate struct {
	LeaveDestinationID  *int64
	ArriveDestinationID *int64
	LeaveTime           *string
	ArriveTime          *string
	Price               *float64
	Status              *domain.GlobalStatus
}
