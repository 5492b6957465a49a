package repositories

import (
	"database/sql"

	"travelbackend/internal/domain"
)

type StatsRepository struct {
	DB *sql.DB
}

// PeriodFilter narrows an aggregate to one reporting period, e.g.
// {Expr: "DAYOFWEEK(created_at)=?", Args: []any{2}}. Expressions are built
// from fixed templates in the stats service, never from user input.
type PeriodFilter struct {
	Expr string
	Args []any
}

// BookingStatusCounts groups bookings by status, optionally narrowed to one
// traveller and one reporting period.
func (r StatsRepository) BookingStatusCounts(f *PeriodFilter, userID *int64) (map[domain.BookingStatus]int, error) {
	query := `SELECT status, COUNT(*) FROM bookings`
	where, args := buildWhere(f, userID)
	query += where + ` GROUP BY status`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := map[domain.BookingStatus]int{}
	for rows.Next() {
		var status string
		var n int
		if err := rows.Scan(&status, &n); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out[domain.BookingStatus(status)] = n
	}
	return out, rows.Err()
}

// TicketCounts groups confirmed bookings by ticket scan state.
func (r StatsRepository) TicketCounts(f *PeriodFilter) (map[domain.ScannedStatus]int, error) {
	query := `SELECT ticket, COUNT(*) FROM bookings WHERE status=?`
	args := []any{string(domain.BookingConfirmed)}
	if f != nil {
		query += ` AND ` + f.Expr
		args = append(args, f.Args...)
	}
	query += ` GROUP BY ticket`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := map[domain.ScannedStatus]int{}
	for rows.Next() {
		var ticket string
		var n int
		if err := rows.Scan(&ticket, &n); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out[domain.ScannedStatus(ticket)] = n
	}
	return out, rows.Err()
}

// TransactionSums groups successful transaction amounts by type.
func (r StatsRepository) TransactionSums(f *PeriodFilter) (map[domain.TransactionType]float64, error) {
	query := `SELECT type, COALESCE(SUM(amount), 0) FROM transactions WHERE status=?`
	args := []any{string(domain.TxnSuccess)}
	if f != nil {
		query += ` AND ` + f.Expr
		args = append(args, f.Args...)
	}
	query += ` GROUP BY type`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := map[domain.TransactionType]float64{}
	for rows.Next() {
		var txnType string
		var sum float64
		if err := rows.Scan(&txnType, &sum); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out[domain.TransactionType(txnType)] = sum
	}
	return out, rows.Err()
}

// ScannedCount counts a traveller's confirmed bookings whose ticket was
// scanned.
func (r StatsRepository) ScannedCount(userID int64) (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM bookings
		WHERE user_id=? AND status=? AND ticket=?`,
		userID, string(domain.BookingConfirmed), string(domain.TicketScanned),
	).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

func (r StatsRepository) CountUsers() (int, error) {
	return r.count(`SELECT COUNT(*) FROM users`)
}

func (r StatsRepository) CountActiveAvenues() (int, error) {
	return r.count(`SELECT COUNT(*) FROM avenues WHERE status=?`, string(domain.StatusActive))
}

func (r StatsRepository) CountActiveDestinations() (int, error) {
	return r.count(`SELECT COUNT(*) FROM destinations WHERE status=?`, string(domain.StatusActive))
}

func (r StatsRepository) CountSuccessfulTransactions() (int, error) {
	return r.count(`SELECT COUNT(*) FROM transactions WHERE status=?`, string(domain.TxnSuccess))
}

func (r StatsRepository) count(query string, args ...any) (int, error) {
	var n int
	if err := r.DB.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}

func buildWhere(f *PeriodFilter, userID *int64) (string, []any) {
	where := ""
	args := []any{}
	add := func(expr string, a ...any) {
		if where == "" {
			where = ` WHERE ` + expr
		} else {
			where += ` AND ` + expr
		}
		args = append(args, a...)
	}
	if userID != nil {
		add("user_id=?", *userID)
	}
	if f != nil {
		add(f.Expr, f.Args...)
	}
	return where, args
}
