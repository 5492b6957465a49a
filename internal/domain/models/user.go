package models

import (
	"time"

	"travelbackend/internal/domain"
)

type User struct {
	ID           int64
	Username     string
	Email        string
	Role         domain.UserRole
	PasswordHash string
	CreatedAt    time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == domain.RoleAdmin
}
