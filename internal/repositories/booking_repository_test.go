package repositories

import (
	"testing"
	"time"

	"travelbackend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestSumConfirmedSeatsLocksRowsInsideTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := BookingRepository{DB: db}
	date := time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`COALESCE\(SUM\(seat\), 0\) FROM bookings.+FOR UPDATE`).
		WithArgs(int64(7), "2026-04-11", "air", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(12))
	mock.ExpectCommit()

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("Begin: %v", err)
	}
	total, err := repo.SumConfirmedSeats(tx, 7, date, domain.ModeAir, true)
	if err != nil {
		t.Fatalf("SumConfirmedSeats returned error: %v", err)
	}
	if total != 12 {
		t.Fatalf("total = %d, want 12", total)
	}
	if err := tx.Commit(); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSumConfirmedSeatsPlainReadSkipsLock(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	repo := BookingRepository{DB: db}
	date := time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`COALESCE\(SUM\(seat\), 0\) FROM bookings\s+WHERE avenue_id=\? AND date=\? AND mode=\? AND status=\?$`).
		WithArgs(int64(7), "2026-04-11", "coach", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0))

	total, err := repo.SumConfirmedSeats(nil, 7, date, domain.ModeCoach, false)
	if err != nil {
		t.Fatalf("SumConfirmedSeats returned error: %v", err)
	}
	if total != 0 {
		t.Fatalf("total = %d, want 0", total)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
