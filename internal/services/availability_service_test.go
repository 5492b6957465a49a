package services

import (
	"testing"
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var avenueCols = []string{
	"id", "leave_destination_id", "arrive_destination_id", "leave_time", "arrive_time",
	"price", "status", "created_at",
	"ld_id", "ld_name", "ld_air", "ld_coach", "ld_train", "ld_status", "ld_created_at",
	"ad_id", "ad_name", "ad_air", "ad_coach", "ad_train", "ad_status", "ad_created_at",
}

func newAvailabilityService(t *testing.T, now time.Time) (AvailabilityService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	svc := AvailabilityService{
		Avenues:  repositories.AvenueRepository{DB: db},
		Bookings: repositories.BookingRepository{DB: db},
		Now:      func() time.Time { return now },
	}
	return svc, mock
}

func TestSearchOffersOnlyCommonModes(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	svc, mock := newAvailabilityService(t, now)

	// Departure supports air+coach, arrival supports air only, so only the
	// air offer should come back.
	mock.ExpectQuery("FROM avenues a").
		WithArgs("active", int64(1)).
		WillReturnRows(sqlmock.NewRows(avenueCols).AddRow(
			7, 1, 2, "08:00:00", "12:00:00", 100.0, "active", now,
			1, "Alpha", true, true, false, "active", now,
			2, "Beta", true, false, false, "active", now,
		))
	mock.ExpectQuery(`COALESCE\(SUM\(seat\), 0\)`).
		WithArgs(int64(7), "2026-04-11", "air", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0))

	// 2026-04-11 is 100 days out, which lands in the 30% discount tier.
	offers, err := svc.Search(AvailabilityRequest{From: 1, Date: "2026-04-11", Passenger: 2})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(offers) != 1 {
		t.Fatalf("expected 1 offer, got %d", len(offers))
	}

	offer := offers[0]
	if offer.Mode != domain.ModeAir {
		t.Fatalf("offer mode = %s, want air", offer.Mode)
	}
	if offer.Discount != 30 {
		t.Fatalf("discount = %d, want 30", offer.Discount)
	}
	if offer.Prices.Economy != 70 || offer.Prices.Business != 140 || offer.Prices.First != 210 {
		t.Fatalf("prices = %v/%v/%v, want 70/140/210",
			offer.Prices.Economy, offer.Prices.Business, offer.Prices.First)
	}
	if offer.SeatAvailability.Economy != 84 || offer.SeatAvailability.Business != 28 || offer.SeatAvailability.First != 28 {
		t.Fatalf("seat split = %d/%d/%d, want 84/28/28",
			offer.SeatAvailability.Economy, offer.SeatAvailability.Business, offer.SeatAvailability.First)
	}
	if offer.MaxSeats != 140 || offer.BookedSeats != 0 {
		t.Fatalf("capacity = %d booked %d, want 140/0", offer.MaxSeats, offer.BookedSeats)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchSkipsSoldOutMode(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	svc, mock := newAvailabilityService(t, now)

	mock.ExpectQuery("FROM avenues a").
		WithArgs("active", int64(1)).
		WillReturnRows(sqlmock.NewRows(avenueCols).AddRow(
			7, 1, 2, "08:00:00", "12:00:00", 90.0, "active", now,
			1, "Alpha", false, true, false, "active", now,
			2, "Beta", false, true, false, "active", now,
		))
	mock.ExpectQuery(`COALESCE\(SUM\(seat\), 0\)`).
		WithArgs(int64(7), "2026-02-01", "coach", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(50))

	offers, err := svc.Search(AvailabilityRequest{From: 1, Date: "2026-02-01", Passenger: 1})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if len(offers) != 0 {
		t.Fatalf("expected no offers for a sold-out mode, got %d", len(offers))
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSearchRejectsBadInput(t *testing.T) {
	now := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	svc, _ := newAvailabilityService(t, now)

	if _, err := svc.Search(AvailabilityRequest{From: 0, Date: "2026-02-01", Passenger: 1}); !domain.IsValidation(err) {
		t.Fatalf("missing from: got %v, want validation error", err)
	}
	if _, err := svc.Search(AvailabilityRequest{From: 1, Date: "02/01/2026", Passenger: 1}); !domain.IsValidation(err) {
		t.Fatalf("bad date: got %v, want validation error", err)
	}
	if _, err := svc.Search(AvailabilityRequest{From: 1, Date: "2026-02-01", Passenger: 0}); !domain.IsValidation(err) {
		t.Fatalf("zero passengers: got %v, want validation error", err)
	}
	if _, err := svc.Search(AvailabilityRequest{From: 1, Date: "2026-02-01", Passenger: 1, Mode: "boat"}); !domain.IsValidation(err) {
		t.Fatalf("unknown mode: got %v, want validation error", err)
	}
}
