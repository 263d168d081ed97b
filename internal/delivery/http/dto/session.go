package dto

import (
	"time"

	"codecraft/internal/domain/user"
)

type SessionRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"omitempty,email,max=254"`
	Role  string `json:"role" validate:"required,oneof=student recruiter organizer"`
}

type SessionResponse struct {
	Session   user.Session `json:"session"`
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
}
