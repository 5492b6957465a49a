package repositories

import (
	"database/sql"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
)

type ContactRepository struct {
	DB *sql.DB
}

const contactColumns = `id, name, email, subject, message, status, created_at`

func (r ContactRepository) Create(c *models.Contact) error {
	res, err := r.DB.Exec(`INSERT INTO contacts (name, email, subject, message, status) VALUES (?, ?, ?, ?, ?)`,
		c.Name, c.Email, c.Subject, c.Message, string(c.Status))
	if err != nil {
		return mapWriteErr(err, "contact")
	}
	c.ID, _ = res.LastInsertId()
	return nil
}

func (r ContactRepository) GetByID(id int64) (models.Contact, error) {
	var c models.Contact
	var status string
	err := r.DB.QueryRow(`SELECT `+contactColumns+` FROM contacts WHERE id=? LIMIT 1`, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &status, &c.CreatedAt)
	if err != nil {
		return models.Contact{}, mapReadErr(err, "contact")
	}
	c.Status = domain.ContactStatus(status)
	return c, nil
}

// List returns contact messages newest first, optionally only unread ones.
func (r ContactRepository) List(unreadOnly bool) ([]models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts`
	args := []any{}
	if unreadOnly {
		query += ` WHERE status=?`
		args = append(args, string(domain.ContactUnread))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	var out []models.Contact
	for rows.Next() {
		var c models.Contact
		var status string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &status, &c.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		c.Status = domain.ContactStatus(status)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ContactRepository) UpdateStatus(id int64, status domain.ContactStatus) error {
	res, err := r.DB.Exec(`UPDATE contacts SET status=? WHERE id=?`, string(status), id)
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

func (r ContactRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM contacts WHERE id=?`, id)
	return mapWriteErr(err, "contact")
}
