package models

import (
	"time"

	"travelbackend/internal/domain"
)

type Destination struct {
	ID        int64
	Name      string
	Air       bool
	Coach     bool
	Train     bool
	Status    domain.GlobalStatus
	CreatedAt time.Time
}

// Supports reports whether the destination offers the given travel mode.
func (d Destination) Supports(mode domain.TravelMode) bool {
	switch mode {
	case domain.ModeAir:
		return d.Air
	case domain.ModeCoach:
		return d.Coach
	case domain.ModeTrain:
		return d.Train
	}
	return false
}

// DestinationUpdate supports PATCH-style updates via key presence.
type DestinationUpdate struct {
	Name   *string
	Air    *bool
	Coach  *bool
	Train  *bool
	Status *domain.GlobalStatus
}
