package repositories

import (
	"database/sql"
	"strings"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
)

type LegalRepository struct {
	DB *sql.DB
}

const legalColumns = `id, name, slug, content, status, created_at`

func (r LegalRepository) Create(p *models.LegalPage) error {
	res, err := r.DB.Exec(`INSERT INTO legal_pages (name, slug, content, status) VALUES (?, ?, ?, ?)`,
		p.Name, p.Slug, p.Content, string(p.Status))
	if err != nil {
		return mapWriteErr(err, "legal page")
	}
	p.ID, _ = res.LastInsertId()
	return nil
}

func (r LegalRepository) scan(row *sql.Row) (models.LegalPage, error) {
	var p models.LegalPage
	var status string
	if err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Content, &status, &p.CreatedAt); err != nil {
		return models.LegalPage{}, err
	}
	p.Status = domain.GlobalStatus(status)
	return p, nil
}

func (r LegalRepository) GetByID(id int64) (models.LegalPage, error) {
	p, err := r.scan(r.DB.QueryRow(`SELECT `+legalColumns+` FROM legal_pages WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.LegalPage{}, mapReadErr(err, "legal page")
	}
	return p, nil
}

// GetBySlug backs the public page lookup; only active pages are served.
func (r LegalRepository) GetBySlug(slug string, activeOnly bool) (models.LegalPage, error) {
	query := `SELECT ` + legalColumns + ` FROM legal_pages WHERE slug=?`
	args := []any{slug}
	if activeOnly {
		query += ` AND status=?`
		args = append(args, string(domain.StatusActive))
	}
	p, err := r.scan(r.DB.QueryRow(query+` LIMIT 1`, args...))
	if err != nil {
		return models.LegalPage{}, mapReadErr(err, "legal page")
	}
	return p, nil
}

func (r LegalRepository) List(activeOnly bool) ([]models.LegalPage, error) {
	query := `SELECT ` + legalColumns + ` FROM legal_pages`
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

	var out []models.LegalPage
	for rows.Next() {
		var p models.LegalPage
		var status string
		if err := rows.Scan(&p.ID, &p.Name, &p.Slug, &p.Content, &status, &p.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		p.Status = domain.GlobalStatus(status)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r LegalRepository) Update(id int64, upd models.LegalPageUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, *upd.Name)
	}
	if upd.Slug != nil {
		sets = append(sets, "slug=?")
		args = append(args, *upd.Slug)
	}
	if upd.Content != nil {
		sets = append(sets, "content=?")
		args = append(args, *upd.Content)
	}
	if upd.Status != nil {
		sets = append(sets, "status=?")
		args = append(args, string(*upd.Status))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.DB.Exec(`UPDATE legal_pages SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return mapWriteErr(err, "legal page")
}

func (r LegalRepository) Delete(id int64) error {
	_, err := r.DB.Exec(`DELETE FROM legal_pages WHERE id=?`, id)
	return mapWriteErr(err, "legal page")
}
