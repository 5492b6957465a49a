package services

import (
	"strings"

	"travelbackend/internal/domain"
	"travelbackend/internal/domain/models"
	"travelbackend/internal/repositories"
	"travelbackend/internal/utils"
)

// ContentService covers the admin-managed site content: FAQs, legal pages,
// changelogs and inbound contact messages.
type ContentService struct {
	FAQs       repositories.FAQRepository
	Legal      repositories.LegalRepository
	ChangeLogs repositories.ChangeLogRepository
	Contacts   repositories.ContactRepository
}

func parseOptionalStatus(s string) (domain.GlobalStatus, error) {
	if s == "" {
		return domain.StatusInactive, nil
	}
	return domain.ParseGlobalStatus(s)
}

// FAQ operations.

func (s ContentService) CreateFAQ(question, answer, status string) (models.FAQ, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return models.FAQ{}, domain.ValidationError{Field: "question", Msg: "question is required"}
	}
	if strings.TrimSpace(answer) == "" {
		return models.FAQ{}, domain.ValidationError{Field: "answer", Msg: "answer is required"}
	}
	st, err := parseOptionalStatus(status)
	if err != nil {
		return models.FAQ{}, err
	}
	faq := models.FAQ{Question: question, Answer: answer, Status: st}
	if err := s.FAQs.Create(&faq); err != nil {
		return models.FAQ{}, err
	}
	return s.FAQs.GetByID(faq.ID)
}

func (s ContentService) GetFAQ(id int64) (models.FAQ, error) {
	return s.FAQs.GetByID(id)
}

func (s ContentService) ListFAQs(activeOnly bool) ([]models.FAQ, error) {
	return s.FAQs.List(activeOnly)
}

func (s ContentService) UpdateFAQ(id int64, question, answer, status *string) (models.FAQ, error) {
	if _, err := s.FAQs.GetByID(id); err != nil {
		return models.FAQ{}, err
	}
	upd := models.FAQUpdate{Question: question, Answer: answer}
	if status != nil {
		st, err := domain.ParseGlobalStatus(*status)
		if err != nil {
			return models.FAQ{}, err
		}
		upd.Status = &st
	}
	if err := s.FAQs.Update(id, upd); err != nil {
		return models.FAQ{}, err
	}
	return s.FAQs.GetByID(id)
}

func (s ContentService) DeleteFAQ(id int64) error {
	if _, err := s.FAQs.GetByID(id); err != nil {
		return err
	}
	return s.FAQs.Delete(id)
}

// Legal page operations. Slugs are derived from the name when absent and must
// stay unique.

func (s ContentService) CreateLegalPage(name, slug, content, status string) (models.LegalPage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.LegalPage{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if strings.TrimSpace(content) == "" {
		return models.LegalPage{}, domain.ValidationError{Field: "content", Msg: "content is required"}
	}
	slug = strings.TrimSpace(slug)
	if slug == "" {
		slug = utils.Slugify(name)
	}
	st, err := parseOptionalStatus(status)
	if err != nil {
		return models.LegalPage{}, err
	}
	page := models.LegalPage{Name: name, Slug: slug, Content: content, Status: st}
	if err := s.Legal.Create(&page); err != nil {
		if domain.IsConflict(err) {
			return models.LegalPage{}, domain.ConflictError{Resource: "legal page", Msg: "slug already in use", Err: err}
		}
		return models.LegalPage{}, err
	}
	return s.Legal.GetByID(page.ID)
}

func (s ContentService) GetLegalPage(id int64) (models.LegalPage, error) {
	return s.Legal.GetByID(id)
}

// GetLegalPageBySlug serves the public page; inactive pages are hidden.
func (s ContentService) GetLegalPageBySlug(slug string) (models.LegalPage, error) {
	return s.Legal.GetBySlug(strings.TrimSpace(slug), true)
}

func (s ContentService) ListLegalPages(activeOnly bool) ([]models.LegalPage, error) {
	return s.Legal.List(activeOnly)
}

func (s ContentService) UpdateLegalPage(id int64, name, slug, content, status *string) (models.LegalPage, error) {
	if _, err := s.Legal.GetByID(id); err != nil {
		return models.LegalPage{}, err
	}
	upd := models.LegalPageUpdate{Name: name, Slug: slug, Content: content}
	if status != nil {
		st, err := domain.ParseGlobalStatus(*status)
		if err != nil {
			return models.LegalPage{}, err
		}
		upd.Status = &st
	}
	if err := s.Legal.Update(id, upd); err != nil {
		if domain.IsConflict(err) {
			return models.LegalPage{}, domain.ConflictError{Resource: "legal page", Msg: "slug already in use", Err: err}
		}
		return models.LegalPage{}, err
	}
	return s.Legal.GetByID(id)
}

func (s ContentService) DeleteLegalPage(id int64) error {
	if _, err := s.Legal.GetByID(id); err != nil {
		return err
	}
	return s.Legal.Delete(id)
}

// Changelog operations.

func (s ContentService) CreateChangeLog(name, content, version, status string) (models.ChangeLog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ChangeLog{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if strings.TrimSpace(version) == "" {
		return models.ChangeLog{}, domain.ValidationError{Field: "version", Msg: "version is required"}
	}
	if strings.TrimSpace(content) == "" {
		return models.ChangeLog{}, domain.ValidationError{Field: "content", Msg: "content is required"}
	}
	st, err := parseOptionalStatus(status)
	if err != nil {
		return models.ChangeLog{}, err
	}
	cl := models.ChangeLog{Name: name, Content: content, Version: version, Status: st}
	if err := s.ChangeLogs.Create(&cl); err != nil {
		return models.ChangeLog{}, err
	}
	return s.ChangeLogs.GetByID(cl.ID)
}

func (s ContentService) GetChangeLog(id int64) (models.ChangeLog, error) {
	return s.ChangeLogs.GetByID(id)
}

func (s ContentService) ListChangeLogs(activeOnly bool) ([]models.ChangeLog, error) {
	return s.ChangeLogs.List(activeOnly)
}

func (s ContentService) UpdateChangeLog(id int64, name, content, version, status *string) (models.ChangeLog, error) {
	if _, err := s.ChangeLogs.GetByID(id); err != nil {
		return models.ChangeLog{}, err
	}
	upd := models.ChangeLogUpdate{Name: name, Content: content, Version: version}
	if status != nil {
		st, err := domain.ParseGlobalStatus(*status)
		if err != nil {
			return models.ChangeLog{}, err
		}
		upd.Status = &st
	}
	if err := s.ChangeLogs.Update(id, upd); err != nil {
		return models.ChangeLog{}, err
	}
	return s.ChangeLogs.GetByID(id)
}

func (s ContentService) DeleteChangeLog(id int64) error {
	if _, err := s.ChangeLogs.GetByID(id); err != nil {
		return err
	}
	return s.ChangeLogs.Delete(id)
}

// Contact message operations. Creation is public; the rest is admin-only.

func (s ContentService) CreateContact(name, email, subject, message string) (models.Contact, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return models.Contact{}, domain.ValidationError{Field: "name", Msg: "name is required"}
	}
	if !utils.ValidEmail(email) {
		return models.Contact{}, domain.ValidationError{Field: "email", Msg: "invalid email format"}
	}
	if strings.TrimSpace(subject) == "" {
		return models.Contact{}, domain.ValidationError{Field: "subject", Msg: "subject is required"}
	}
	if strings.TrimSpace(message) == "" {
		return models.Contact{}, domain.ValidationError{Field: "message", Msg: "message is required"}
	}
	c := models.Contact{Name: name, Email: email, Subject: subject, Message: message, Status: domain.ContactUnread}
	if err := s.Contacts.Create(&c); err != nil {
		return models.Contact{}, err
	}
	return s.Contacts.GetByID(c.ID)
}

func (s ContentService) GetContact(id int64) (models.Contact, error) {
	return s.Contacts.GetByID(id)
}

func (s ContentService) ListContacts(unreadOnly bool) ([]models.Contact, error) {
	return s.Contacts.List(unreadOnly)
}

func (s ContentService) MarkContactRead(id int64) (models.Contact, error) {
	if _, err := s.Contacts.GetByID(id); err != nil {
		return models.Contact{}, err
	}
	if err := s.Contacts.UpdateStatus(id, domain.ContactRead); err != nil {
		return models.Contact{}, err
	}
	return s.Contacts.GetByID(id)
}

func (s ContentService) DeleteContact(id int64) error {
	if _, err := s.Contacts.GetByID(id); err != nil {
		return err
	}
	return s.Contacts.Delete(id)
}
