package usecase

import (
	"context"
	"strings"
	"time"

	"codecraft/internal/catalog"
	"codecraft/internal/domain/mentor"
	"codecraft/internal/pkg/logger"
	"codecraft/internal/pkg/sanitize"
	"codecraft/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxChatMessages = 50

// MentorChat is the AI mentor backend; the Groq client satisfies it.
type MentorChat interface {
	Configured() bool
	Chat(ctx context.Context, messages []mentor.ChatMessage) (string, error)
}

type BookingInput struct {
	ScheduledAt time.Time
	Duration    int
	Topic       string
}

type MentorUsecase interface {
	ListMentors(ctx context.Context) []mentor.Mentor
	Book(ctx context.Context, sessionID uuid.UUID, mentorID string, in BookingInput) (mentor.Booking, error)
	ListBookings(ctx context.Context, sessionID uuid.UUID) ([]mentor.Booking, error)
	Complete(ctx context.Context, sessionID, id uuid.UUID, notes string) (mentor.Booking, error)
	Cancel(ctx context.Context, sessionID, id uuid.UUID) error
	Chat(ctx context.Context, messages []mentor.ChatMessage) (string, error)
}

type Mentor struct {
	bookings repository.BookingRepository
	chat     MentorChat
	log      logger.Logger
}

func NewMentorUsecase(bookings repository.BookingRepository, chat MentorChat, log logger.Logger) *Mentor {
	if log == nil {
		log = logger.NewNop()
	}
	return &Mentor{bookings: bookings, chat: chat, log: log}
}

func (u *Mentor) ListMentors(ctx context.Context) []mentor.Mentor {
	return catalog.Mentors()
}

func validDuration(minutes int) bool {
	switch minutes {
	case 30, 60, 90:
		return true
	}
	return false
}

func (u *Mentor) Book(ctx context.Context, sessionID uuid.UUID, mentorID string, in BookingInput) (mentor.Booking, error) {
	m, ok := catalog.Mentor(strings.TrimSpace(mentorID))
	if !ok {
		return mentor.Booking{}, ErrNotFound
	}

	topic := sanitize.Input(in.Topic)
	if topic == "" || in.ScheduledAt.IsZero() {
		return mentor.Booking{}, ErrInvalidInput
	}
	duration := in.Duration
	if duration == 0 {
		duration = 60
	}
	if !validDuration(duration) {
		return mentor.Booking{}, ErrInvalidInput
	}

	b, err := u.bookings.CreateBooking(ctx, sessionID, mentor.Booking{
		MentorID:    m.ID,
		MentorName:  m.Name,
		ScheduledAt: in.ScheduledAt.UTC(),
		Duration:    duration,
		Topic:       topic,
	})
	if err != nil {
		return mentor.Booking{}, mapStoreError(err)
	}
	return b, nil
}

func (u *Mentor) ListBookings(ctx context.Context, sessionID uuid.UUID) ([]mentor.Booking, error) {
	bs, err := u.bookings.ListBookings(ctx, sessionID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return bs, nil
}

func (u *Mentor) Complete(ctx context.Context, sessionID, id uuid.UUID, notes string) (mentor.Booking, error) {
	if id == uuid.Nil {
		return mentor.Booking{}, ErrInvalidInput
	}
	b, err := u.bookings.CompleteBooking(ctx, sessionID, id, sanitize.Input(notes))
	if err != nil {
		return mentor.Booking{}, mapStoreError(err)
	}
	return b, nil
}

func (u *Mentor) Cancel(ctx context.Context, sessionID, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	return mapStoreError(u.bookings.CancelBooking(ctx, sessionID, id))
}

func (u *Mentor) Chat(ctx context.Context, messages []mentor.ChatMessage) (string, error) {
	if u.chat == nil || !u.chat.Configured() {
		return "", ErrNotConfigured
	}

	clean := make([]mentor.ChatMessage, 0, len(messages))
	for _, m := range messages {
		role := strings.ToLower(strings.TrimSpace(m.Role))
		if role != "user" && role != "assistant" {
			return "", ErrInvalidInput
		}
		content := strings.TrimSpace(m.Content)
		if content == "" {
			continue
		}
		clean = append(clean, mentor.ChatMessage{Role: role, Content: content})
	}
	if len(clean) == 0 || clean[len(clean)-1].Role != "user" {
		return "", ErrInvalidInput
	}
	if len(clean) > maxChatMessages {
		clean = clean[len(clean)-maxChatMessages:]
	}

	reply, err := u.chat.Chat(ctx, clean)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		u.log.Warn("[Mentor] chat failed", zap.Error(err))
		return "", ErrUpstream
	}
	return reply, nil
}
