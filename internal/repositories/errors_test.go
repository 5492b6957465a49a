package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"

	"travelbackend/internal/domain"
)

func TestMapWriteErrTranslatesDriverCodes(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
	if err := mapWriteErr(dup, "avenue"); !domain.IsConflict(err) {
		t.Fatalf("duplicate entry mapped to %v, want conflict", err)
	}

	fk := &mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"}
	if err := mapWriteErr(fk, "booking"); !domain.IsIntegrity(err) {
		t.Fatalf("foreign key failure mapped to %v, want integrity", err)
	}

	other := errors.New("connection reset")
	if err := mapWriteErr(other, "booking"); !domain.IsInternal(err) {
		t.Fatalf("driver failure mapped to %v, want internal", err)
	}

	if err := mapWriteErr(nil, "booking"); err != nil {
		t.Fatalf("nil should pass through, got %v", err)
	}
}

func TestMapReadErr(t *testing.T) {
	if err := mapReadErr(sql.ErrNoRows, "user"); !domain.IsNotFound(err) {
		t.Fatalf("no rows mapped to %v, want not found", err)
	}
	if err := mapReadErr(errors.New("boom"), "user"); !domain.IsInternal(err) {
		t.Fatalf("read failure mapped to %v, want internal", err)
	}
}
