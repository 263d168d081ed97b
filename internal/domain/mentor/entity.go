package mentor

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID       string  `json:"id"`
	Rating   float64 `json:"rating"`
	Comment  string  `json:"comment"`
	UserName string  `json:"user_name"`
	Date     string  `json:"date"`
}

type Mentor struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Avatar          string   `json:"avatar"`
	Expertise       []string `json:"expertise"`
	HourlyRate      int      `json:"hourly_rate"`
	Rating          float64  `json:"rating"`
	Reviews         int      `json:"reviews"`
	TotalSessions   int      `json:"total_sessions"`
	StudentSessions int      `json:"student_sessions"`
	Bio             string   `json:"bio"`
	IsAvailable     bool     `json:"is_available"`
	ResponseTime    string   `json:"response_time"`
	ReviewList      []Review `json:"reviews_list"`
}

type BookingStatus string

const (
	BookingScheduled BookingStatus = "scheduled"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID          uuid.UUID     `json:"id"`
	SessionID   uuid.UUID     `json:"-"`
	MentorID    string        `json:"mentor_id"`
	MentorName  string        `json:"mentor_name"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Duration    int           `json:"duration"`
	Topic       string        `json:"topic"`
	Status      BookingStatus `json:"status"`
	Notes       string        `json:"notes,omitempty"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
