package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
)

type DestinationRepository struct {
	DB *sql.DB
}

const destinationColumns = `id, name, air, coach, train, status, created_at`

func (r DestinationRepository) Create(d *models.Destination) error {
	res, err := r.DB.Exec(`
		INSERT INTO destinations (name, air, coach, train, status)
		VALUES (?, ?, ?, ?, ?)`,
		d.Name, d.Air, d.Coach, d.Train, string(d.Status),
	)
	if err != nil {
		return mapWriteErr(err, "destination")
	}
	d.ID, _ = res.LastInsertId()
	return nil
}

func (r DestinationRepository) GetByID(id int64) (models.Destination, error) {
	var d models.Destination
	var status string
	err := r.DB.QueryRow(`SELECT `+destinationColumns+` FROM destinations WHERE id=? LIMIT 1`, id).
		Scan(&d.ID, &d.Name, &d.Air, &d.Coach, &d.Train, &status, &d.CreatedAt)
	if err != nil {
		return models.Destination{}, mapReadErr(err, "destination")
	}
	d.Status = domain.GlobalStatus(status)
	return d, nil
}

func (r DestinationRepository) ExistsByName(name string, excludeID int64) (bool, error) {
	var id int64
	err := r.DB.QueryRow(`SELECT id FROM destinations WHERE name=? AND id<>? LIMIT 1`, name, excludeID).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

// List returns destinations, newest first. When activeOnly is set only active
// rows are returned (the public listing default).
func (r DestinationRepository) List(activeOnly bool) ([]models.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations`
	args := []any{}
	if activeOnly {
		query += ` WHERE status=?`
		args = append(args, string(domain.StatusActive))
	}
	query += ` ORDER BY created_at DESC`
	return r.list(query, args...)
}

// ListByMode returns destinations supporting the given travel mode, by name.
func (r DestinationRepository) ListByMode(mode domain.TravelMode, activeOnly bool) ([]models.Destination, error) {
	var col string
	switch mode {
	case domain.ModeAir:
		col = "air"
	case domain.ModeCoach:
		col = "coach"
	case domain.ModeTrain:
		col = "train"
	default:
		return nil, domain.ValidationError{Field: "mode", Msg: "must be one of: air, coach, train"}
	}
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE ` + col + `=1`
	args := []any{}
	if activeOnly {
		query += ` AND status=?`
		args = append(args, string(domain.StatusActive))
	}
	query += ` ORDER BY name`
	return r.list(query, args...)
}

func (r DestinationRepository) list(query string, args ...any) ([]models.Destination, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	var out []models.Destination
	for rows.Next() {
		var d models.Destination
		var status string
		if err := rows.Scan(&d.ID, &d.Name, &d.Air, &d.Coach, &d.Train, &status, &d.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		d.Status = domain.GlobalStatus(status)
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r DestinationRepository) Update(id int64, upd models.DestinationUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, *upd.Name)
	}
	if upd.Air != nil {
		sets = append(sets, "air=?")
		args = append(args, *upd.Air)
	}
	if upd.Coach != nil {
		sets = append(sets, "coach=?")
		args = append(args, *upd.Coach)
	}
	if upd.Train != nil {
		sets = append(sets, "train=?")
		args = append(args, *upd.Train)
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, string(*upd.Status))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.DB.Exec(`UPDATE destinations SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return mapWriteErr(err, "destination")
}

func (r DestinationRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM destinations WHERE id=?`, id)
	return mapWriteErr(err, "destination")
}
