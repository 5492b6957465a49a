package repositories

import (
	"database/sql"
	"errors"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) Create(u *models.User) error {
	res, err := r.DB.Exec(`
		INSERT INTO users (username, email, role, password_hash)
		VALUES (?, ?, ?, ?)`,
		u.Username, u.Email, string(u.Role), u.PasswordHash,
	)
	if err != nil {
		return mapWriteErr(err, "user")
	}
	u.ID, _ = res.LastInsertId()
	return nil
}

const userColumns = `id, username, email, role, password_hash, created_at`

func (r UserRepository) scan(row *sql.Row) (models.User, error) {
	var u models.User
	var role string
	err := row.Scan(&u.ID, &u.Username, &u.Email, &role, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		return models.User{}, err
	}
	u.Role = domain.UserRole(role)
	return u, nil
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	u, err := r.scan(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id=? LIMIT 1`, id))
	if err != nil {
		return models.User{}, mapReadErr(err, "user")
	}
	return u, nil
}

func (r UserRepository) GetByUsername(username string) (models.User, error) {
	u, err := r.scan(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE username=? LIMIT 1`, username))
	if err != nil {
		return models.User{}, mapReadErr(err, "user")
	}
	return u, nil
}

// ExistsByUsername and ExistsByEmail back the pre-insert duplicate checks.
func (r UserRepository) ExistsByUsername(username string) (bool, error) {
	return r.exists(`SELECT id FROM users WHERE username=? LIMIT 1`, username)
}

func (r UserRepository) ExistsByEmail(email string) (bool, error) {
	return r.exists(`SELECT id FROM users WHERE email=? LIMIT 1`, email)
}

func (r UserRepository) exists(query string, args ...any) (bool, error) {
	var id int64
	err := r.DB.QueryRow(query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, domain.InternalError{Err: err}
	}
	return true, nil
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.DB.Query(`SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		var u models.User
		var role string
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &role, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		u.Role = domain.UserRole(role)
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UserRepository) UpdatePassword(id int64, hash string) error {
	res, err := r.DB.Exec(`UPDATE users SET password_hash=? WHERE id=?`, hash, id)
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
