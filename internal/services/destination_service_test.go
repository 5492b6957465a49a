package services

import (
	"testing"
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var destinationCols = []string{"id", "name", "air", "coach", "train", "status", "created_at"}

func newDestinationService(t *testing.T) (DestinationService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return DestinationService{
		Destinations: repositories.DestinationRepository{DB: db},
		Avenues:      repositories.AvenueRepository{DB: db},
	}, mock
}

func TestCreateDestinationRejectsDuplicateName(t *testing.T) {
	svc, mock := newDestinationService(t)

	mock.ExpectQuery("SELECT id FROM destinations WHERE name=").
		WithArgs("London", int64(0)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

	_, err := svc.CreateDestination(CreateDestinationInput{Name: "London", Air: true})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for duplicate name, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteDestinationBlockedWhileReferenced(t *testing.T) {
	svc, mock := newDestinationService(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM destinations WHERE id=").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(destinationCols).AddRow(4, "London", true, true, false, "active", now))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM avenues`).
		WithArgs(int64(4), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(2))

	_, err := svc.DeleteDestination(4)
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict while avenues reference the destination, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteDestinationRemovesUnreferenced(t *testing.T) {
	svc, mock := newDestinationService(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM destinations WHERE id=").
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(destinationCols).AddRow(4, "London", true, true, false, "active", now))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM avenues`).
		WithArgs(int64(4), int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(0))
	mock.ExpectExec("DELETE FROM destinations").
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	dest, err := svc.DeleteDestination(4)
	if err != nil {
		t.Fatalf("DeleteDestination returned error: %v", err)
	}
	if dest.Name != "London" {
		t.Fatalf("unexpected destination %+v", dest)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
