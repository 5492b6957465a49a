package services

import (
	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"
)

type TransactionService struct {
	Transactions repositories.TransactionRepository
	Bookings     repositories.BookingRepository
}

type CreatePaymentInput struct {
	BookingID     int64
	Amount        float64
	PaymentMethod string
}

// CreatePayment records a successful payment against a booking. Booking
// creation normally does this in the same transaction; this path covers
// payments recorded after the fact.
func (s TransactionService) CreatePayment(in CreatePaymentInput) (models.Transaction, error) {
	if in.BookingID <= 0 {
		return models.Transaction{}, domain.ValidationError{Field: "booking_id", Msg: "booking is required"}
	}
	if in.Amount < 0 {
		return models.Transaction{}, domain.ValidationError{Field: "amount", Msg: "amount must not be negative"}
	}
	method, err := domain.ParsePaymentMethod(in.PaymentMethod)
	if err != nil {
		return models.Transaction{}, err
	}
	if _, err := s.Bookings.GetByID(nil, in.BookingID); err != nil {
		return models.Transaction{}, err
	}

	txn := models.Transaction{
		Identifier:    utils.NewReference("TXN"),
		BookingID:     &in.BookingID,
		Amount:        in.Amount,
		PaymentMethod: method,
		Status:        domain.TxnSuccess,
		Type:          domain.TxnPayment,
	}
	if err := s.Transactions.Create(nil, &txn); err != nil {
		return models.Transaction{}, err
	}
	return txn, nil
}

func (s TransactionService) GetTransaction(id int64) (models.Transaction, error) {
	return s.Transactions.GetByID(id)
}

// ListTransactions returns transactions optionally filtered by status and
// booking.
func (s TransactionService) ListTransactions(status, bookingID string) ([]models.Transaction, error) {
	var statusFilter *domain.TransactionStatus
	if status != "" {
		st, err := domain.ParseTransactionStatus(status)
		if err != nil {
			return nil, err
		}
		statusFilter = &st
	}
	var bookingFilter *int64
	if bookingID != "" {
		id, err := parseID(bookingID, "booking_id")
		if err != nil {
			return nil, err
		}
		bookingFilter = &id
	}
	return s.Transactions.List(statusFilter, bookingFilter)
}

func (s TransactionService) UpdateStatus(id int64, status string) (models.Transaction, error) {
	st, err := domain.ParseTransactionStatus(status)
	if err != nil {
		return models.Transaction{}, err
	}
	if err := s.Transactions.UpdateStatus(id, st); err != nil {
		return models.Transaction{}, err
	}
	return s.Transactions.GetByID(id)
}
