package services

import (
	"strings"
	"time"

	"travelbackend/internal/auth"
	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"
)

type AuthService struct {
	Users  repositories.UserRepository
	Tokens *auth.TokenManager
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

func (s AuthService) Register(in RegisterInput) (models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.TrimSpace(in.Email)

	if username == "" {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "username is required"}
	}
	if len(username) < 4 {
		return models.User{}, domain.ValidationError{Field: "username", Msg: "username must be at least 4 characters"}
	}
	if email == "" {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	if !utils.ValidEmail(email) {
		return models.User{}, domain.ValidationError{Field: "email", Msg: "invalid email format"}
	}
	if len(in.Password) < 8 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "password must be at least 8 characters"}
	}

	if taken, err := s.Users.ExistsByUsername(username); err != nil {
		return models.User{}, err
	} else if taken {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "username already exists"}
	}
	if taken, err := s.Users.ExistsByEmail(email); err != nil {
		return models.User{}, err
	} else if taken {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email already exists"}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}

	user := models.User{
		Username:     username,
		Email:        email,
		Role:         domain.RoleMember,
		PasswordHash: hash,
	}
	if err := s.Users.Create(&user); err != nil {
		return models.User{}, err
	}
	return s.Users.GetByID(user.ID)
}

// Login authenticates by username and password and issues an access token.
func (s AuthService) Login(username, password string) (models.User, string, time.Time, error) {
	user, err := s.Users.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, "", time.Time{}, domain.ValidationError{Msg: "invalid username or password"}
		}
		return models.User{}, "", time.Time{}, err
	}
	if auth.VerifyPassword(password, user.PasswordHash) != nil {
		return models.User{}, "", time.Time{}, domain.ValidationError{Msg: "invalid username or password"}
	}

	token, exp, err := s.Tokens.Generate(user.ID, user.Username, user.Role, user.Email)
	if err != nil {
		return models.User{}, "", time.Time{}, domain.InternalError{Err: err}
	}
	return user, token, exp, nil
}

// UpdatePassword changes the caller's own password after re-verifying the
// current one.
func (s AuthService) UpdatePassword(userID int64, currentPassword, newPassword string) (models.User, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if auth.VerifyPassword(currentPassword, user.PasswordHash) != nil {
		return models.User{}, domain.ValidationError{Field: "current_password", Msg: "current password is incorrect"}
	}
	if len(newPassword) < 8 {
		return models.User{}, domain.ValidationError{Field: "new_password", Msg: "new password must be at least 8 characters"}
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	if err := s.Users.UpdatePassword(userID, hash); err != nil {
		return models.User{}, err
	}
	return s.Users.GetByID(userID)
}

func (s AuthService) GetUser(userID int64) (models.User, error) {
	return s.Users.GetByID(userID)
}

// ListUsers backs the admin user directory.
func (s AuthService) ListUsers() ([]models.User, error) {
	return s.Users.List()
}

// AdminResetPassword lets an administrator set a user's password without
// knowing the old one.
func (s AuthService) AdminResetPassword(userID int64, newPassword string) (models.User, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if len(newPassword) < 8 {
		return models.User{}, domain.ValidationError{Field: "new_password", Msg: "new password must be at least 8 characters"}
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return models.User{}, domain.InternalError{Err: err}
	}
	if err := s.Users.UpdatePassword(user.ID, hash); err != nil {
		return models.User{}, err
	}
	return s.Users.GetByID(user.ID)
}
