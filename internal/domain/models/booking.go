package models

import (
	"time"

	"travelbackend/internal/domain"
)

// Booking ties a traveller to an avenue on a journey date. Date carries only
// the calendar day (midnight UTC).
type Booking struct {
	ID         int64
	Identifier string
	AvenueID   int64
	UserID     int64
	Date       time.Time
	Mode       domain.TravelMode
	Type       domain.SeatClass
	Seat       int
	Price      float64
	Status     domain.BookingStatus
	Ticket     domain.ScannedStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Avenue       *Avenue
	User         *User
	Transactions []Transaction
}
