package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Type           string    `json:"type"`
	Salary         string    `json:"salary,omitempty"`
	Logo           string    `json:"logo,omitempty"`
	PostedAt       string    `json:"posted_at"`
	RequiredSkills []string  `json:"required_skills"`
	Tags           []string  `json:"tags"`
	CreatedAt      time.Time `json:"created_at"`
	PostedBy       uuid.UUID `json:"posted_by,omitempty"`
}

type ApplicationStatus string

const (
	StatusApplied   ApplicationStatus = "applied"
	StatusReviewing ApplicationStatus = "reviewing"
	StatusInterview ApplicationStatus = "interview"
	StatusRejected  ApplicationStatus = "rejected"
	StatusOffer     ApplicationStatus = "offer"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusReviewing, StatusInterview, StatusRejected, StatusOffer:
		return true
	}
	return false
}

type Application struct {
	ID          uuid.UUID         `json:"id"`
	SessionID   uuid.UUID         `json:"-"`
	JobID       string            `json:"job_id"`
	JobTitle    string            `json:"job_title"`
	Company     string            `json:"company"`
	AppliedAt   time.Time         `json:"applied_at"`
	Status      ApplicationStatus `json:"status"`
	ResumeURL   string            `json:"resume_url,omitempty"`
	CoverLetter string            `json:"cover_letter,omitempty"`
	Notes       string            `json:"notes,omitempty"`
}
