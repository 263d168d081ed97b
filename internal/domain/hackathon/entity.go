package hackathon

import (
	"time"

	"github.com/google/uuid"
)

type Hackathon struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Organizer     string    `json:"organizer"`
	Date          string    `json:"date"`
	Prizes        string    `json:"prizes"`
	Description   string    `json:"description,omitempty"`
	Image         string    `json:"image"`
	Tags          []string  `json:"tags"`
	IsLive        bool      `json:"is_live"`
	CreatedAt     time.Time `json:"created_at,omitempty"`
	CreatedBy     uuid.UUID `json:"-"`
	Registrations int       `json:"registrations"`
}

type RegistrationStatus string

const (
	RegistrationRegistered RegistrationStatus = "registered"
	RegistrationCheckedIn  RegistrationStatus = "checkedin"
	RegistrationCompleted  RegistrationStatus = "completed"
)

type Registration struct {
	ID           uuid.UUID          `json:"id"`
	SessionID    uuid.UUID          `json:"-"`
	HackathonID  string             `json:"hackathon_id"`
	RegisteredAt time.Time          `json:"registered_at"`
	TeamName     string             `json:"team_name,omitempty"`
	TeamMembers  []string           `json:"team_members,omitempty"`
	Status       RegistrationStatus `json:"status"`
}
