package services

import (
	"testing"
	"time"

	"travelbackend/internal/auth"
	"travelbackend/internal/domain"
	"travelbackend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newAuthService(t *testing.T) (AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return AuthService{
		Users:  repositories.UserRepository{DB: db},
		Tokens: auth.NewTokenManager("test-secret", time.Hour),
	}, mock
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _ := newAuthService(t)

	cases := []struct {
		name string
		in   RegisterInput
	}{
		{"short username", RegisterInput{Username: "abc", Email: "a@b.co", Password: "longenough"}},
		{"bad email", RegisterInput{Username: "alice", Email: "not-an-email", Password: "longenough"}},
		{"short password", RegisterInput{Username: "alice", Email: "a@b.co", Password: "short"}},
	}
	for _, tc := range cases {
		if _, err := svc.Register(tc.in); !domain.IsValidation(err) {
			t.Fatalf("%s: got %v, want validation error", tc.name, err)
		}
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, mock := newAuthService(t)

	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM users WHERE username=").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(5, "alice", "alice@example.com", "member", hash, now))

	if _, _, _, err := svc.Login("alice", "wrong-password"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for wrong password, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoginIssuesParsableToken(t *testing.T) {
	svc, mock := newAuthService(t)

	hash, err := auth.HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM users WHERE username=").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userCols).AddRow(5, "alice", "alice@example.com", "member", hash, now))

	user, token, exp, err := svc.Login("alice", "correct-horse")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.ID != 5 || token == "" || exp.IsZero() {
		t.Fatalf("unexpected login result user=%d token=%q exp=%v", user.ID, token, exp)
	}

	claims, err := svc.Tokens.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.UserID != 5 || claims.Role != domain.RoleMember {
		t.Fatalf("unexpected claims %+v", claims)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoginHidesUnknownUser(t *testing.T) {
	svc, mock := newAuthService(t)

	mock.ExpectQuery("FROM users WHERE username=").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userCols))

	if _, _, _, err := svc.Login("ghost", "whatever"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown user, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
