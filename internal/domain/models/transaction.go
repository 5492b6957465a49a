package models

import (
	"time"

	"travelbackend/internal/domain"
)

// Transaction records a payment or refund. BookingID is nil for booking-less
// transaction types.
type Transaction struct {
	ID            int64
	Identifier    string
	BookingID     *int64
	Amount        float64
	PaymentMethod domain.PaymentMethod
	Status        domain.TransactionStatus
	Type          domain.TransactionType
	CreatedAt     time.Time
}
