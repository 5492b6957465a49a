package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
)

type AvenueRepository struct {
	DB *sql.DB
}

func (r AvenueRepository) Create(a *models.Avenue) error {
	res, err := r.DB.Exec(`
		INSERT INTO avenues (leave_destination_id, arrive_destination_id, leave_time, arrive_time, price, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.LeaveDestinationID, a.ArriveDestinationID, a.LeaveTime, a.ArriveTime, a.Price, string(a.Status),
	)
	if err != nil {
		return mapWriteErr(err, "avenue")
	}
	a.ID, _ = res.LastInsertId()
	return nil
}

// avenueSelect joins both endpoint destinations so a single round trip
// produces a fully populated avenue.
const avenueSelect = `
	SELECT a.id, a.leave_destination_id, a.arrive_destination_id,
	       TIME_FORMAT(a.leave_time, '%H:%i:%s'), TIME_FORMAT(a.arrive_time, '%H:%i:%s'),
	       a.price, a.status, a.created_at,
	       ld.id, ld.name, ld.air, ld.coach, ld.train, ld.status, ld.created_at,
	       ad.id, ad.name, ad.air, ad.coach, ad.train, ad.status, ad.created_at
	FROM avenues a
	JOIN destinations ld ON ld.id = a.leave_destination_id
	JOIN destinations ad ON ad.id = a.arrive_destination_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAvenue(row rowScanner) (models.Avenue, error) {
	var a models.Avenue
	var leave, arrive models.Destination
	var aStatus, lStatus, arStatus string
	err := row.Scan(
		&a.ID, &a.LeaveDestinationID, &a.ArriveDestinationID,
		&a.LeaveTime, &a.ArriveTime,
		&a.Price, &aStatus, &a.CreatedAt,
		&leave.ID, &leave.Name, &leave.Air, &leave.Coach, &leave.Train, &lStatus, &leave.CreatedAt,
		&arrive.ID, &arrive.Name, &arrive.Air, &arrive.Coach, &arrive.Train, &arStatus, &arrive.CreatedAt,
	)
	if err != nil {
		return models.Avenue{}, err
	}
	a.Status = domain.GlobalStatus(aStatus)
	leave.Status = domain.GlobalStatus(lStatus)
	arrive.Status = domain.GlobalStatus(arStatus)
	a.LeaveDestination = &leave
	a.ArriveDestination = &arrive
	return a, nil
}

func (r AvenueRepository) GetByID(id int64) (models.Avenue, error) {
	a, err := scanAvenue(r.DB.QueryRow(avenueSelect+` WHERE a.id=? LIMIT 1`, id))
	if err != nil {
		return models.Avenue{}, mapReadErr(err, "avenue")
	}
	return a, nil
}

// ExistsSchedule reports whether an avenue with the exact schedule tuple
// already exists.
func (r AvenueRepository) ExistsSchedule(leaveID, arriveID int64, leaveTime, arriveTime string) (bool, error) {
	var id int64
	err := r.DB.QueryRow(`
		SELECT id FROM avenues
		WHERE leave_destination_id=? AND arrive_destination_id=? AND leave_time=? AND arrive_time=?
		LIMIT 1`,
		leaveID, arriveID, leaveTime, arriveTime,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

// List returns avenues ordered by departure time, optionally filtered by
// endpoint destinations.
func (r AvenueRepository) List(leaveID, arriveID *int64) ([]models.Avenue, error) {
	query := avenueSelect
	where := []string{}
	args := []any{}
	if leaveID != nil {
		where = append(where, "a.leave_destination_id=?")
		args = append(args, *leaveID)
	}
	if arriveID != nil {
		where = append(where, "a.arrive_destination_id=?")
		args = append(args, *arriveID)
	}
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY a.leave_time`
	return r.list(query, args...)
}

// ListActiveByRoute returns active avenues departing from the given
// destination, optionally constrained to an arrival destination. This is the
// candidate set for availability search.
func (r AvenueRepository) ListActiveByRoute(fromID int64, toID *int64) ([]models.Avenue, error) {
	query := avenueSelect + ` WHERE a.status=? AND a.leave_destination_id=?`
	args := []any{string(domain.StatusActive), fromID}
	if toID != nil {
		query += ` AND a.arrive_destination_id=?`
		args = append(args, *toID)
	}
	query += ` ORDER BY a.leave_time`
	return r.list(query, args...)
}

func (r AvenueRepository) list(query string, args ...any) ([]models.Avenue, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	var out []models.Avenue
	for rows.Next() {
		a, err := scanAvenue(rows)
		if err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r AvenueRepository) Update(id int64, upd models.AvenueUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.LeaveDestinationID != nil {
		sets = append(sets, "leave_destination_id=?")
		args = append(args, *upd.LeaveDestinationID)
	}
	if upd.ArriveDestinationID != nil {
		sets = append(sets, "arrive_destination_id=?")
		args = append(args, *upd.ArriveDestinationID)
	}
	if upd.LeaveTime != nil {
		sets = append(sets, "leave_time=?")
		args = append(args, *upd.LeaveTime)
	}
	if upd.ArriveTime != nil {
		sets = append(sets, "arrive_time=?")
		args = append(args, *upd.ArriveTime)
	}
	if upd.Price != nil {
		sets = append(sets, "price=?")
		args = append(args, *upd.Price)
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, string(*upd.Status))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.DB.Exec(`UPDATE avenues SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return mapWriteErr(err, "avenue")
}

func (r AvenueRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM avenues WHERE id=?`, id)
	return mapWriteErr(err, "avenue")
}

// CountByDestination counts avenues referencing a destination at either end.
// Destinations with a nonzero count must not be deleted.
func (r AvenueRepository) CountByDestination(destinationID int64) (int, error) {
	var n int
	err := r.DB.QueryRow(`
		SELECT COUNT(*) FROM avenues
		WHERE leave_destination_id=? OR arrive_destination_id=?`,
		destinationID, destinationID,
	).Scan(&n)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	return n, nil
}
