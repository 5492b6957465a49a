package services

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"

	"github.com/DATA-DOG/go-sqlmock"
)

var bookingCols = []string{
	"id", "identifier", "avenue_id", "user_id", "date", "mode", "type",
	"seat", "price", "status", "ticket", "created_at", "updated_at",
}

var transactionCols = []string{
	"id", "identifier", "booking_id", "amount", "payment_method", "status", "type", "created_at",
}

var userCols = []string{"id", "username", "email", "role", "password_hash", "created_at"}

func newBookingService(t *testing.T, now time.Time) (BookingService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := BookingService{
		DB:           db,
		Bookings:     repositories.BookingRepository{DB: db},
		Transactions: repositories.TransactionRepository{DB: db},
		Avenues:      repositories.AvenueRepository{DB: db},
		Users:        repositories.UserRepository{DB: db},
		Now:          func() time.Time { return now },
	}
	return svc, mock
}

func expectAvenueRow(mock sqlmock.Sqlmock, now time.Time) {
	mock.ExpectQuery("FROM avenues a").
		WillReturnRows(sqlmock.NewRows(avenueCols).AddRow(
			7, 1, 2, "08:00:00", "12:00:00", 100.0, "active", now,
			1, "Alpha", true, true, true, "active", now,
			2, "Beta", true, true, true, "active", now,
		))
}

func TestCreateBookingCommitsBookingAndPayment(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	svc, mock := newBookingService(t, now)

	expectAvenueRow(mock, now)
	mock.ExpectBegin()
	mock.ExpectQuery(`COALESCE\(SUM\(seat\), 0\)`).
		WithArgs(int64(7), "2026-04-11", "air", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0))
	mock.ExpectExec("INSERT INTO bookings").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO transactions").
		WillReturnResult(sqlmock.NewResult(21, 1))
	mock.ExpectCommit()

	// hydration after commit
	expectAvenueRow(mock, now)
	mock.ExpectQuery("SELECT id, username").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(5, "alice", "alice@example.com", "member", "hash", now))

	booking, err := svc.CreateBooking(CreateBookingInput{
		AvenueID:      7,
		UserID:        5,
		Date:          "2026-04-11",
		Mode:          "air",
		Type:          "economy",
		Seat:          2,
		Price:         140,
		PaymentMethod: "stripe",
	})
	if err != nil {
		t.Fatalf("CreateBooking returned error: %v", err)
	}

	if booking.ID != 11 {
		t.Fatalf("booking id = %d, want 11", booking.ID)
	}
	if booking.Status != domain.BookingConfirmed || booking.Ticket != domain.TicketUnscanned {
		t.Fatalf("booking state = %s/%s, want confirmed/unscanned", booking.Status, booking.Ticket)
	}
	if !strings.HasPrefix(booking.Identifier, "BK-") || len(booking.Identifier) != len("BK-")+16 {
		t.Fatalf("unexpected booking identifier %q", booking.Identifier)
	}
	if len(booking.Transactions) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(booking.Transactions))
	}
	payment := booking.Transactions[0]
	if payment.Type != domain.TxnPayment || payment.Status != domain.TxnSuccess || payment.Amount != 140 {
		t.Fatalf("unexpected payment %+v", payment)
	}
	if !strings.HasPrefix(payment.Identifier, "TXN-") {
		t.Fatalf("unexpected payment identifier %q", payment.Identifier)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateBookingRejectsOversell(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	svc, mock := newBookingService(t, now)

	expectAvenueRow(mock, now)
	mock.ExpectBegin()
	// 49 of 50 coach seats taken; a 2-seat booking must not squeeze in.
	mock.ExpectQuery(`COALESCE\(SUM\(seat\), 0\)`).
		WithArgs(int64(7), "2026-04-11", "coach", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(49))
	mock.ExpectRollback()

	_, err := svc.CreateBooking(CreateBookingInput{
		AvenueID:      7,
		UserID:        5,
		Date:          "2026-04-11",
		Mode:          "coach",
		Type:          "economy",
		Seat:          2,
		Price:         60,
		PaymentMethod: "paypal",
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict on oversell, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelBookingIssuesTieredRefund(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	svc, mock := newBookingService(t, now)

	journey := now.AddDate(0, 0, 45) // 45 days out lands in the 60% tier

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings WHERE id=").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(
			1, "BK-aaaaaaaaaaaaaaaa", 7, 5, journey, "air", "economy", 2, 300.0, "confirmed", "unscanned", now, now,
		))
	mock.ExpectQuery("SELECT id FROM transactions").
		WithArgs(int64(1), "refund").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("UPDATE bookings SET status=").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM transactions").
		WithArgs(int64(1), "payment", "success").
		WillReturnRows(sqlmock.NewRows(transactionCols).AddRow(
			21, "TXN-bbbbbbbbbbbbbbbb", 1, 300.0, "stripe", "success", "payment", now,
		))
	mock.ExpectExec("INSERT INTO transactions").
		WithArgs(sqlmock.AnyArg(), int64(1), 180.0, "stripe", "success", "refund").
		WillReturnResult(sqlmock.NewResult(22, 1))
	mock.ExpectCommit()

	// hydration after commit
	expectAvenueRow(mock, now)
	mock.ExpectQuery("SELECT id, username").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(5, "alice", "alice@example.com", "member", "hash", now))
	mock.ExpectQuery("FROM transactions WHERE booking_id=").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(transactionCols).
			AddRow(21, "TXN-bbbbbbbbbbbbbbbb", 1, 300.0, "stripe", "success", "payment", now).
			AddRow(22, "RF-cccccccccccccccc", 1, 180.0, "stripe", "success", "refund", now))

	booking, err := svc.CancelBooking(1)
	if err != nil {
		t.Fatalf("CancelBooking returned error: %v", err)
	}
	if booking.Status != domain.BookingCancelled {
		t.Fatalf("booking status = %s, want cancelled", booking.Status)
	}
	if len(booking.Transactions) != 2 {
		t.Fatalf("expected payment + refund, got %d transactions", len(booking.Transactions))
	}
	refund := booking.Transactions[1]
	if refund.Type != domain.TxnRefund || refund.Amount != 180 {
		t.Fatalf("unexpected refund %+v", refund)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelBookingRefusesSecondRefund(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	svc, mock := newBookingService(t, now)

	journey := now.AddDate(0, 0, 45)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings WHERE id=").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(
			1, "BK-aaaaaaaaaaaaaaaa", 7, 5, journey, "air", "economy", 2, 300.0, "cancelled", "unscanned", now, now,
		))
	mock.ExpectQuery("SELECT id FROM transactions").
		WithArgs(int64(1), "refund").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(22))
	mock.ExpectRollback()

	_, err := svc.CancelBooking(1)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict on second refund, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCancelBookingPastRefundWindowKeepsPayment(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	svc, mock := newBookingService(t, now)

	journey := now.AddDate(0, 0, 10) // inside 39 days: no refund

	mock.ExpectBegin()
	mock.ExpectQuery("FROM bookings WHERE id=").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(bookingCols).AddRow(
			1, "BK-aaaaaaaaaaaaaaaa", 7, 5, journey, "air", "economy", 2, 300.0, "confirmed", "unscanned", now, now,
		))
	mock.ExpectQuery("SELECT id FROM transactions").
		WithArgs(int64(1), "refund").
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("UPDATE bookings SET status=").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM transactions").
		WithArgs(int64(1), "payment", "success").
		WillReturnRows(sqlmock.NewRows(transactionCols).AddRow(
			21, "TXN-bbbbbbbbbbbbbbbb", 1, 300.0, "stripe", "success", "payment", now,
		))
	// no refund insert expected
	mock.ExpectCommit()

	expectAvenueRow(mock, now)
	mock.ExpectQuery("SELECT id, username").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(5, "alice", "alice@example.com", "member", "hash", now))
	mock.ExpectQuery("FROM transactions WHERE booking_id=").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(transactionCols).AddRow(
			21, "TXN-bbbbbbbbbbbbbbbb", 1, 300.0, "stripe", "success", "payment", now,
		))

	booking, err := svc.CancelBooking(1)
	if err != nil {
		t.Fatalf("CancelBooking returned error: %v", err)
	}
	if booking.Status != domain.BookingCancelled {
		t.Fatalf("booking status = %s, want cancelled", booking.Status)
	}
	if len(booking.Transactions) != 1 {
		t.Fatalf("expected only the original payment, got %d transactions", len(booking.Transactions))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDaysUntilMatchesRefundMath(t *testing.T) {
	today := time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)
	journey := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	if got := utils.DaysUntil(today, journey); got != 45 {
		t.Fatalf("DaysUntil = %d, want 45", got)
	}
}
