package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists")
)

const (
	StatusSubmitted   = "submitted"
	StatusReviewed    = "reviewed"
	StatusShortlisted = "shortlisted"
	StatusRejected    = "rejected"
)

type Application struct {
	ID           uuid.UUID `json:"id"`
	JobID        uuid.UUID `json:"job_id"`
	ApplicantID  uuid.UUID `json:"applicant_id"`
	OwnerID      uuid.UUID `json:"owner_id"`
	ContactEmail string    `json:"contact_email"`
	ContactPhone string    `json:"contact_phone"`
	ResumeURL    string    `json:"resume_url"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
