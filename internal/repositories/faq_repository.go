package repositories

import (
	"database/sql"
	"strings"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
)

type FAQRepository struct {
	DB *sql.DB
}

func (r FAQRepository) Create(f *models.FAQ) error {
	res, err := r.DB.Exec(`INSERT INTO faqs (question, answer, status) VALUES (?, ?, ?)`,
		f.Question, f.Answer, string(f.Status))
	if err != nil {
		return mapWriteErr(err, "faq")
	}
	f.ID, _ = res.LastInsertId()
	return nil
}

func (r FAQRepository) GetByID(id int64) (models.FAQ, error) {
	var f models.FAQ
	var status string
	err := r.DB.QueryRow(`SELECT id, question, answer, status, created_at FROM faqs WHERE id=? LIMIT 1`, id).
		Scan(&f.ID, &f.Question, &f.Answer, &status, &f.CreatedAt)
	if err != nil {
		return models.FAQ{}, mapReadErr(err, "faq")
	}
	f.Status = domain.GlobalStatus(status)
	return f, nil
}

// List returns FAQs oldest first, optionally active-only for public pages.
func (r FAQRepository) List(activeOnly bool) ([]models.FAQ, error) {
	query := `SELECT id, question, answer, status, created_at FROM faqs`
	args := []any{}
	if activeOnly {
		query += ` WHERE status=?`
		args = append(args, string(domain.StatusActive))
	}
	query += ` ORDER BY created_at ASC`

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	var out []models.FAQ
	for rows.Next() {
		var f models.FAQ
		var status string
		if err := rows.Scan(&f.ID, &f.Question, &f.Answer, &status, &f.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		f.Status = domain.GlobalStatus(status)
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r FAQRepository) Update(id int64, upd models.FAQUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.Question != nil {
		sets = append(sets, "question=?")
		args = append(args, *upd.Question)
	}
	if upd.Answer != nil {
		sets = append(sets, "answer=?")
		args = append(args, *upd.Answer)
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, string(*upd.Status))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.DB.Exec(`UPDATE faqs SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return mapWriteErr(err, "faq")
}

func (r FAQRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM faqs WHERE id=?`, id)
	return mapWriteErr(err, "faq")
}
