package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleStudent   Role = "student"
	RoleRecruiter Role = "recruiter"
	RoleOrganizer Role = "organizer"
)

func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleStudent, RoleRecruiter, RoleOrganizer:
		return r, true
	}
	return "", false
}

// Session is a mock login. The role is whatever the caller claimed.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Candidate struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Role     string   `json:"role"`
	Skills   []string `json:"skills"`
	GitHub   string   `json:"github"`
	Bio      string   `json:"bio"`
	Projects int      `json:"projects"`
	Commits  int      `json:"commits"`
}
