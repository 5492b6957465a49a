package repositories

import (
	"database/sql"
	"strings"
	"time"

	intdb "travelbackend/internal/db"
	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/utils"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) q(q intdb.Queryer) intdb.Queryer {
	if q != nil {
		return q
	}
	return r.DB
}

// Create inserts a booking. Pass a *sql.Tx to make the insert part of a
// larger atomic operation.
func (r BookingRepository) Create(q intdb.Queryer, b *models.Booking) error {
	res, err := r.q(q).Exec(`
		INSERT INTO bookings (identifier, avenue_id, user_id, date, mode, type, seat, price, status, ticket)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.Identifier, b.AvenueID, b.UserID, utils.FormatDate(b.Date),
		string(b.Mode), string(b.Type), b.Seat, b.Price, string(b.Status), string(b.Ticket),
	)
	if err != nil {
		return mapWriteErr(err, "booking")
	}
	b.ID, _ = res.LastInsertId()
	return nil
}

const bookingColumns = `id, identifier, avenue_id, user_id, date, mode, type, seat, price, status, ticket, created_at, updated_at`

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	var mode, class, status, ticket string
	err := row.Scan(
		&b.ID, &b.Identifier, &b.AvenueID, &b.UserID, &b.Date,
		&mode, &class, &b.Seat, &b.Price, &status, &ticket,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	b.Mode = domain.TravelMode(mode)
	b.Type = domain.SeatClass(class)
	b.Status = domain.BookingStatus(status)
	b.Ticket = domain.ScannedStatus(ticket)
	return b, nil
}

func (r BookingRepository) GetByID(q intdb.Queryer, id int64) (models.Booking, error) {
	b, err := scanBooking(r.q(q).QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.Booking{}, mapReadErr(err, "booking")
	}
	return b, nil
}

func (r BookingRepository) GetByIdentifier(identifier string) (models.Booking, error) {
	b, err := scanBooking(r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE identifier=? LIMIT 1`, identifier))
	if err != nil {
		return models.Booking{}, mapReadErr(err, "booking")
	}
	return b, nil
}

// ListByUser returns a traveller's bookings, latest journey first.
func (r BookingRepository) ListByUser(userID int64) ([]models.Booking, error) {
	return r.list(`SELECT `+bookingColumns+` FROM bookings WHERE user_id=? ORDER BY date DESC`, userID)
}

// List returns bookings optionally filtered by status and traveller, newest
// first.
func (r BookingRepository) List(status *domain.BookingStatus, userID *int64) ([]models.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	where := []string{}
	args := []any{}
	if status != nil {
		where = append(where, "status=?")
		args = append(args, string(*status))
	}
	if userID != nil {
		where = append(where, "user_id=?")
		args = append(args, *userID)
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC`
	return r.list(query, args...)
}

func (r BookingRepository) list(query string, args ...any) ([]models.Booking, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	var out []models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BookingRepository) UpdateStatus(q intdb.Queryer, id int64, status domain.BookingStatus) error {
	_, err := r.q(q).Exec(`UPDATE bookings SET status=?, updated_at=? WHERE id=?`,
		string(status), utils.NowUTC(), id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

func (r BookingRepository) UpdateTicket(id int64, ticket domain.ScannedStatus) error {
	_, err := r.DB.Exec(`UPDATE bookings SET ticket=?, updated_at=? WHERE id=?`,
		string(ticket), utils.NowUTC(), id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}

// SumConfirmedSeats aggregates confirmed seats for one (avenue, date, mode)
// key. With forUpdate set the matching rows are locked until the surrounding
// transaction commits, which is what keeps the capacity re-check race free.
func (r BookingRepository) SumConfirmedSeats(q intdb.Queryer, avenueID int64, date time.Time, mode domain.TravelMode, forUpdate bool) (int, error) {
	query := `
		SELECT COALESCE(SUM(seat), 0) FROM bookings
		WHERE avenue_id=? AND date=? AND mode=? AND status=?`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var total int
	err := r.q(q).QueryRow(query, avenueID, utils.FormatDate(date), string(mode), string(domain.BookingConfirmed)).Scan(&total)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return total, nil
}
