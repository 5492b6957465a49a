package services

import (
	"testing"
	"time"

	"travelbackend/internal/domain"
	"travelbackend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func newContentService(t *testing.T) (ContentService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return ContentService{
		FAQs:       repositories.FAQRepository{DB: db},
		Legal:      repositories.LegalRepository{DB: db},
		ChangeLogs: repositories.ChangeLogRepository{DB: db},
		Contacts:   repositories.ContactRepository{DB: db},
	}, mock
}

func TestCreateLegalPageDerivesSlug(t *testing.T) {
	svc, mock := newContentService(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO legal_pages").
		WithArgs("Terms & Conditions", "terms-conditions", "body", "active").
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("FROM legal_pages WHERE id=").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "slug", "content", "status", "created_at"}).
			AddRow(3, "Terms & Conditions", "terms-conditions", "body", "active", now))

	page, err := svc.CreateLegalPage("Terms & Conditions", "", "body", "active")
	if err != nil {
		t.Fatalf("CreateLegalPage returned error: %v", err)
	}
	if page.Slug != "terms-conditions" {
		t.Fatalf("slug = %q, want terms-conditions", page.Slug)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateFAQRequiresQuestionAndAnswer(t *testing.T) {
	svc, _ := newContentService(t)

	if _, err := svc.CreateFAQ("", "answer", ""); !domain.IsValidation(err) {
		t.Fatalf("missing question: got %v, want validation error", err)
	}
	if _, err := svc.CreateFAQ("question?", "  ", ""); !domain.IsValidation(err) {
		t.Fatalf("missing answer: got %v, want validation error", err)
	}
}

func TestCreateContactStartsUnread(t *testing.T) {
	svc, mock := newContentService(t)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO contacts").
		WithArgs("Bob", "bob@example.com", "Hello", "A question", "unread").
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectQuery("FROM contacts WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "subject", "message", "status", "created_at"}).
			AddRow(9, "Bob", "bob@example.com", "Hello", "A question", "unread", now))

	contact, err := svc.CreateContact("Bob", "bob@example.com", "Hello", "A question")
	if err != nil {
		t.Fatalf("CreateContact returned error: %v", err)
	}
	if contact.Status != domain.ContactUnread {
		t.Fatalf("status = %s, want unread", contact.Status)
	}

	if _, err := svc.CreateContact("Bob", "nope", "Hello", "A question"); !domain.IsValidation(err) {
		t.Fatalf("bad email: got %v, want validation error", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
