package models

import (
	"time"

	"travelbackend/internal/domain"
)

type FAQ struct {
	ID        int64
	Question  string
	Answer    string
	Status    domain.GlobalStatus
	CreatedAt time.Time
}

type FAQUpdate struct {
	Question *string
	Answer   *string
	Status   *domain.GlobalStatus
}

type LegalPage struct {
	ID        int64
	Name      string
	Slug      string
	Content   string
	Status    domain.GlobalStatus
	CreatedAt time.Time
}

type LegalPageUpdate struct {
	Name    *string
	Slug    *string
	Content *string
	Status  *domain.GlobalStatus
}

type ChangeLog struct {
	ID        int64
	Name      string
	Content   string
	Version   string
	Status    domain.GlobalStatus
	CreatedAt time.Time
}

type ChangeLogUpdate struct {
	Name    *string
	Content *string
	Version *string
	Status  *domain.GlobalStatus
}

type Contact struct {
	ID        int64
	Name      string
	Email     string
	Subject   string
	Message   string
	Status    domain.ContactStatus
	CreatedAt time.Time
}
