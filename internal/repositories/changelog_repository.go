package repositories

import (
	"database/sql"
	"strings"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
)

type ChangeLogRepository struct {
	DB *sql.DB
}

const changelogColumns = `id, name, content, version, status, created_at`

func (r ChangeLogRepository) Create(c *models.ChangeLog) error {
	res, err := r.DB.Exec(`INSERT INTO changelogs (name, content, version, status) VALUES (?, ?, ?, ?)`,
		c.Name, c.Content, c.Version, string(c.Status))
	if err != nil {
		return mapWriteErr(err, "changelog")
	}
	c.ID, _ = res.LastInsertId()
	return nil
}

func (r ChangeLogRepository) GetByID(id int64) (models.ChangeLog, error) {
	var c models.ChangeLog
	var status string
	err := r.DB.QueryRow(`SELECT `+changelogColumns+` FROM changelogs WHERE id=? LIMIT 1`, id).
		Scan(&c.ID, &c.Name, &c.Content, &c.Version, &status, &c.CreatedAt)
	if err != nil {
		return models.ChangeLog{}, mapReadErr(err, "changelog")
	}
	c.Status = domain.GlobalStatus(status)
	return c, nil
}

// List returns changelogs newest first.
func (r ChangeLogRepository) List(activeOnly bool) ([]models.ChangeLog, error) {
	query := `SELECT ` + changelogColumns + ` FROM changelogs`
	args := []any{}
	if activeOnly {
		query += ` WHERE status=?`
		args = append(args, string(domain.StatusActive))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	var out []models.ChangeLog
	for rows.Next() {
		var c models.ChangeLog
		var status string
		if err := rows.Scan(&c.ID, &c.Name, &c.Content, &c.Version, &status, &c.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		c.Status = domain.GlobalStatus(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ChangeLogRepository) Update(id int64, upd models.ChangeLogUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, *upd.Name)
	}
	if upd.Content != nil {
		sets = append(sets, "content=?")
		args = append(args, *upd.Content)
	}
	if upd.Version != nil {
		sets = append(sets, "version=?")
		args = append(args, *upd.Version)
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, string(*upd.Status))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.DB.Exec(`UPDATE changelogs SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return mapWriteErr(err, "changelog")
}

func (r ChangeLogRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM changelogs WHERE id=?`, id)
	return mapWriteErr(err, "changelog")
}
