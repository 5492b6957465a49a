package services

import (
	"database/sql"
	"fmt"
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/metrics"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"
)

type BookingService struct {
	DB           *sql.DB
	Bookings     repositories.BookingRepository
	Transactions repositories.TransactionRepository
	Avenues      repositories.AvenueRepository
	Users        repositories.UserRepository

	// Now is injectable for deterministic refund-tier tests.
	Now func() time.Time
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

type CreateBookingInput struct {
	AvenueID      int64
	UserID        int64
	Date          string
	Mode          string
	Type          string
	Seat          int
	Price         float64
	PaymentMethod string
}

// CreateBooking persists a confirmed booking and its successful payment
// transaction in one atomic commit. Remaining capacity is re-checked under a
// row lock inside the same transaction, so two concurrent bookings cannot
// jointly oversell a mode.
func (s BookingService) CreateBooking(in CreateBookingInput) (models.Booking, error) {
	if in.AvenueID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "avenue_id", Msg: "avenue is required"}
	}
	if in.UserID <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "user_id", Msg: "traveller is required"}
	}
	date, err := utils.ParseDate(in.Date)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "date", Msg: "invalid date format (use YYYY-MM-DD)", Err: err}
	}
	mode, err := domain.ParseTravelMode(in.Mode)
	if err != nil {
		return models.Booking{}, err
	}
	class, err := domain.ParseSeatClass(in.Type)
	if err != nil {
		return models.Booking{}, err
	}
	if in.Seat <= 0 {
		return models.Booking{}, domain.ValidationError{Field: "seat", Msg: "seat count must be positive"}
	}
	if in.Price < 0 {
		return models.Booking{}, domain.ValidationError{Field: "price", Msg: "price must not be negative"}
	}
	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return models.Booking{}, err
	}

	if _, err := s.Avenues.GetByID(in.AvenueID); err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		Identifier: utils.NewReference("BK"),
		AvenueID:   in.AvenueID,
		UserID:     in.UserID,
		Date:       date,
		Mode:       mode,
		Type:       class,
		Seat:       in.Seat,
		Price:      in.Price,
		Status:     domain.BookingConfirmed,
		Ticket:     domain.TicketUnscanned,
	}
	payment := models.Transaction{
		Identifier:    utils.NewReference("TXN"),
		Amount:        in.Price,
		PaymentMethod: method,
		Status:        domain.TxnSuccess,
		Type:          domain.TxnPayment,
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	booked, err := s.Bookings.SumConfirmedSeats(tx, in.AvenueID, date, mode, true)
	if err != nil {
		return models.Booking{}, err
	}
	capacity := ModeCapacity(mode)
	if booked+in.Seat > capacity {
		return models.Booking{}, domain.ConflictError{
			Resource: "booking",
			Msg:      fmt.Sprintf("not enough seats: %d of %d remaining", capacity-booked, capacity),
		}
	}

	if err := s.Bookings.Create(tx, &booking); err != nil {
		return models.Booking{}, err
	}
	payment.BookingID = &booking.ID
	if err := s.Transactions.Create(tx, &payment); err != nil {
		return models.Booking{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	metrics.BookingsCreated.Inc()
	booking.Transactions = []models.Transaction{payment}
	return s.hydrate(booking)
}

// CancelBooking sets the booking to cancelled and, when a successful payment
// exists, records a refund per the day-before-departure schedule. The whole
// operation commits atomically; any failure rolls back both the status change
// and the refund.
func (s BookingService) CancelBooking(bookingID int64) (models.Booking, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	booking, err := s.Bookings.GetByID(tx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	hasRefund, err := s.Transactions.HasRefund(tx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if hasRefund {
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "refund already in progress"}
	}

	if err := s.Bookings.UpdateStatus(tx, bookingID, domain.BookingCancelled); err != nil {
		return models.Booking{}, err
	}
	booking.Status = domain.BookingCancelled
	booking.UpdatedAt = s.now()

	payment, err := s.Transactions.LatestSuccessfulPayment(tx, bookingID)
	if err != nil {
		return models.Booking{}, err
	}

	refunded := false
	if payment != nil {
		daysBefore := utils.DaysUntil(s.now(), booking.Date)
		refundAmount := payment.Amount * RefundPercent(daysBefore)

		if refundAmount > 0 {
			refund := models.Transaction{
				Identifier:    utils.NewReference("RF"),
				BookingID:     &bookingID,
				Amount:        refundAmount,
				PaymentMethod: payment.PaymentMethod,
				Status:        domain.TxnSuccess,
				Type:          domain.TxnRefund,
			}
			if err := s.Transactions.Create(tx, &refund); err != nil {
				return models.Booking{}, err
			}
			refunded = true
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	metrics.BookingsCancelled.Inc()
	if refunded {
		metrics.RefundsIssued.Inc()
	}
	return s.hydrate(booking)
}

func (s BookingService) GetBooking(bookingID int64) (models.Booking, error) {
	booking, err := s.Bookings.GetByID(nil, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	return s.hydrate(booking)
}

// ListUserBookings returns a traveller's bookings with avenue and
// transaction details attached.
func (s BookingService) ListUserBookings(userID int64) ([]models.Booking, error) {
	bookings, err := s.Bookings.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(bookings)
}

// ListBookings returns all bookings, optionally filtered by status and
// traveller (admin view).
func (s BookingService) ListBookings(status, userID string) ([]models.Booking, error) {
	var statusFilter *domain.BookingStatus
	if status != "" {
		st, err := domain.ParseBookingStatus(status)
		if err != nil {
			return nil, err
		}
		statusFilter = &st
	}
	var userFilter *int64
	if userID != "" {
		id, err := parseID(userID, "user_id")
		if err != nil {
			return nil, err
		}
		userFilter = &id
	}
	bookings, err := s.Bookings.List(statusFilter, userFilter)
	if err != nil {
		return nil, err
	}
	return s.hydrateAll(bookings)
}

func (s BookingService) UpdateStatus(bookingID int64, status string) (models.Booking, error) {
	st, err := domain.ParseBookingStatus(status)
	if err != nil {
		return models.Booking{}, err
	}
	booking, err := s.Bookings.GetByID(nil, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if err := s.Bookings.UpdateStatus(nil, bookingID, st); err != nil {
		return models.Booking{}, err
	}
	booking.Status = st
	booking.UpdatedAt = s.now()
	return s.hydrate(booking)
}

// ScanTicket flips a confirmed booking's ticket to scanned at the gate.
func (s BookingService) ScanTicket(bookingID int64) (models.Booking, error) {
	booking, err := s.Bookings.GetByID(nil, bookingID)
	if err != nil {
		return models.Booking{}, err
	}
	if booking.Status != domain.BookingConfirmed {
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "only confirmed bookings can be scanned"}
	}
	if booking.Ticket == domain.TicketScanned {
		return models.Booking{}, domain.ConflictError{Resource: "booking", Msg: "ticket already scanned"}
	}
	if err := s.Bookings.UpdateTicket(bookingID, domain.TicketScanned); err != nil {
		return models.Booking{}, err
	}
	booking.Ticket = domain.TicketScanned
	return s.hydrate(booking)
}

// hydrate attaches the avenue (with destinations), traveller and
// transactions to a booking for response shaping.
func (s BookingService) hydrate(b models.Booking) (models.Booking, error) {
	avenue, err := s.Avenues.GetByID(b.AvenueID)
	if err != nil {
		return models.Booking{}, err
	}
	b.Avenue = &avenue

	user, err := s.Users.GetByID(b.UserID)
	if err != nil {
		return models.Booking{}, err
	}
	b.User = &user

	if b.Transactions == nil {
		txns, err := s.Transactions.ListByBooking(nil, b.ID)
		if err != nil {
			return models.Booking{}, err
		}
		b.Transactions = txns
	}
	return b, nil
}

func (s BookingService) hydrateAll(bookings []models.Booking) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		h, err := s.hydrate(b)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
