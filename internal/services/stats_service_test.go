package services

import (
	"testing"
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newStatsService(t *testing.T, now time.Time) (StatsService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return StatsService{
		Stats: repositories.StatsRepository{DB: db},
		Now:   func() time.Time { return now },
	}, mock
}

func TestUserStatsAggregates(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc, mock := newStatsService(t, now)

	mock.ExpectQuery("SELECT status, COUNT").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"status", "n"}).
			AddRow("confirmed", 3).
			AddRow("cancelled", 1))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(int64(5), "confirmed", "scanned").
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))

	stats, err := svc.UserStats(5)
	if err != nil {
		t.Fatalf("UserStats returned error: %v", err)
	}
	if stats.TotalBookings != 4 || stats.ConfirmedBookings != 3 || stats.CancelledBookings != 1 {
		t.Fatalf("unexpected booking counts %+v", stats)
	}
	if stats.ScannedTickets != 2 {
		t.Fatalf("scanned tickets = %d, want 2", stats.ScannedTickets)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSeriesRejectsUnknownPeriod(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc, _ := newStatsService(t, now)

	if _, err := svc.Series("decade"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown period, got %v", err)
	}
}

func TestSeriesBucketShapes(t *testing.T) {
	now := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)

	if got := len(weekBuckets(now)); got != 7 {
		t.Fatalf("week buckets = %d, want 7", got)
	}
	if got := len(monthBuckets(now)); got != 5 {
		t.Fatalf("month buckets = %d, want 5", got)
	}
	year := yearBuckets(now)
	if len(year) != 12 {
		t.Fatalf("year buckets = %d, want 12", len(year))
	}
	if year[0].label != "Jan" || year[11].label != "Dec" {
		t.Fatalf("unexpected year labels %q..%q", year[0].label, year[11].label)
	}
	if year[5].filter.Args[1] != 6 {
		t.Fatalf("june bucket args = %v", year[5].filter.Args)
	}
}
