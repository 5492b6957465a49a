package services

import (
	"testing"
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newAvenueService(t *testing.T) (AvenueService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return AvenueService{Avenues: repositories.AvenueRepository{DB: db}}, mock
}

func TestCreateAvenueRejectsDuplicateSchedule(t *testing.T) {
	svc, mock := newAvenueService(t)

	mock.ExpectQuery("SELECT id FROM avenues").
		WithArgs(int64(1), int64(2), "08:00:00", "12:00:00").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

	_, err := svc.CreateAvenue(CreateAvenueInput{
		LeaveDestinationID:  1,
		ArriveDestinationID: 2,
		LeaveTime:           "08:00",
		ArriveTime:          "12:00",
		Price:               100,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate schedule, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateAvenueValidatesTimes(t *testing.T) {
	svc, _ := newAvenueService(t)

	_, err := svc.CreateAvenue(CreateAvenueInput{
		LeaveDestinationID:  1,
		ArriveDestinationID: 2,
		LeaveTime:           "8 o'clock",
		ArriveTime:          "12:00",
		Price:               100,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad leave_time, got %v", err)
	}

	_, err = svc.CreateAvenue(CreateAvenueInput{
		LeaveDestinationID:  1,
		ArriveDestinationID: 2,
		LeaveTime:           "08:00",
		ArriveTime:          "12:00",
		Price:               -1,
	})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for negative price, got %v", err)
	}
}

func TestListAvenuesParsesFilters(t *testing.T) {
	svc, mock := newAvenueService(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM avenues a").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(avenueCols).AddRow(
			7, 1, 2, "08:00:00", "12:00:00", 100.0, "active", now,
			1, "Alpha", true, true, false, "active", now,
			2, "Beta", true, false, false, "active", now,
		))

	avenues, err := svc.ListAvenues("1", "")
	if err != nil {
		t.Fatalf("ListAvenues returned error: %v", err)
	}
	if len(avenues) != 1 || avenues[0].ID != 7 {
		t.Fatalf("unexpected result %+v", avenues)
	}

	if _, err := svc.ListAvenues("abc", ""); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for bad leave_id, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
