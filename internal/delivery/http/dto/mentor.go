package dto

import "time"

type BookingRequest struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	Duration    int       `json:"duration" validate:"omitempty,oneof=30 60 90"`
	Topic       string    `json:"topic" validate:"required,max=200"`
}

type CompleteBookingRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant"`
	Content string `json:"content" validate:"required,max=4000"`
}

type ChatRequest struct {
	Messages []ChatMessage `json:"messages" validate:"required,min=1,max=50,dive"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
