package repositories

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"travelbackend/internal/domain"
)

const (
	mysqlErrDupEntry = 1062
	mysqlErrNoRefRow = 1452
)

// mapWriteErr converts driver-level failures into domain errors so callers
// never branch on MySQL error numbers.
func mapWriteErr(err error, resource string) error {
	if err == nil {
		return nil
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case mysqlErrDupEntry:
			return domain.ConflictError{Resource: resource, Err: err}
		case mysqlErrNoRefRow:
			return domain.IntegrityError{Err: err}
		}
	}
	return domain.InternalError{Err: err}
}

// mapReadErr converts a read failure, treating sql.ErrNoRows as NotFound.
func mapReadErr(err error, resource string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	return domain.InternalError{Err: err}
}
