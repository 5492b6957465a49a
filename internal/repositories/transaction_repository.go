package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intdb "travelbackend/internal/db"
	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
)

type TransactionRepository struct {
	DB *sql.DB
}

func (r TransactionRepository) q(q intdb.Queryer) intdb.Queryer {
	if q != nil {
		return q
	}
	return r.DB
}

func (r TransactionRepository) Create(q intdb.Queryer, t *models.Transaction) error {
	var bookingID any
	if t.BookingID != nil {
		bookingID = *t.BookingID
	}
	res, err := r.q(q).Exec(`
		INSERT INTO transactions (identifier, booking_id, amount, payment_method, status, type)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.Identifier, bookingID, t.Amount, string(t.PaymentMethod), string(t.Status), string(t.Type),
	)
	if err != nil {
		return mapWriteErr(err, "transaction")
	}
	t.ID, _ = res.LastInsertId()
	return nil
}

const transactionColumns = `id, identifier, booking_id, amount, payment_method, status, type, created_at`

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	var bookingID sql.NullInt64
	var method, status, txnType string
	err := row.Scan(&t.ID, &t.Identifier, &bookingID, &t.Amount, &method, &status, &txnType, &t.CreatedAt)
	if err != nil {
		return models.Transaction{}, err
	}
	if bookingID.Valid {
		t.BookingID = &bookingID.Int64
	}
	t.PaymentMethod = domain.PaymentMethod(method)
	t.Status = domain.TransactionStatus(status)
	t.Type = domain.TransactionType(txnType)
	return t, nil
}

func (r TransactionRepository) GetByID(id int64) (models.Transaction, error) {
	t, err := scanTransaction(r.DB.QueryRow(`SELECT `+transactionColumns+` FROM transactions WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.Transaction{}, mapReadErr(err, "transaction")
	}
	return t, nil
}

// List returns transactions optionally filtered by status and booking,
// newest first.
func (r TransactionRepository) List(status *domain.TransactionStatus, bookingID *int64) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions`
	where := []string{}
	args := []any{}
	if status != nil {
		where = append(where, "status=?")
		args = append(args, string(*status))
	}
	if bookingID != nil {
		where = append(where, "booking_id=?")
		args = append(args, *bookingID)
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	return r.listQuery(query, args...)
}

// ListByBooking returns every transaction attached to a booking, oldest
// first, matching the order they were recorded.
func (r TransactionRepository) ListByBooking(q intdb.Queryer, bookingID int64) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE booking_id=? ORDER BY created_at`
	rows, err := r.q(q).Query(query, bookingID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r TransactionRepository) listQuery(query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func collectTransactions(rows *sql.Rows) ([]models.Transaction, error) {
	var out []models.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// HasRefund reports whether any refund transaction exists for the booking.
// This is the sole double-refund guard, so it runs inside the cancellation
// transaction.
func (r TransactionRepository) HasRefund(q intdb.Queryer, bookingID int64) (bool, error) {
	var id int64
	err := r.q(q).QueryRow(`
		SELECT id FROM transactions
		WHERE booking_id=? AND type=?
		LIMIT 1`,
		bookingID, string(domain.TxnRefund),
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

// LatestSuccessfulPayment returns the most recent successful payment on the
// booking, or nil when none exists.
func (r TransactionRepository) LatestSuccessfulPayment(q intdb.Queryer, bookingID int64) (*models.Transaction, error) {
	row := r.q(q).QueryRow(`
		SELECT `+transactionColumns+` FROM transactions
		WHERE booking_id=? AND type=? AND status=?
		ORDER BY created_at DESC, id DESC
		LIMIT 1`,
		bookingID, string(domain.TxnPayment), string(domain.TxnSuccess),
	)
	t, err := scanTransaction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return &t, nil
}

func (r TransactionRepository) UpdateStatus(id int64, status domain.TransactionStatus) error {
	res, err := r.DB.Exec(`UPDATE transactions SET status=? WHERE id=?`, string(status), id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		if _, err := r.GetByID(id); err != nil {
			return err
		}
	}
	return nil
}
