package repository

import (
	"context"

	"codecraft/internal/domain/mentor"

	"github.com/google/uuid"
)

type BookingRepository interface {
	CreateBooking(ctx context.Context, sessionID uuid.UUID, b mentor.Booking) (mentor.Booking, error)
	ListBookings(ctx context.Context, sessionID uuid.UUID) ([]mentor.Booking, error)
	CompleteBooking(ctx context.Context, sessionID, id uuid.UUID, notes string) (mentor.Booking, error)
	CancelBooking(ctx context.Context, sessionID, id uuid.UUID) error
}

func (s *SessionStore) CreateBooking(ctx context.Context, sessionID uuid.UUID, b mentor.Booking) (mentor.Booking, error) {
	if err := ctx.Err(); err != nil {
		return mentor.Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return mentor.Booking{}, err
	}

	b.ID = uuid.New()
	b.SessionID = sessionID
	b.Status = mentor.BookingScheduled
	st.bookings = append(st.bookings, b)
	return b, nil
}

func (s *SessionStore) ListBookings(ctx context.Context, sessionID uuid.UUID) ([]mentor.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return append([]mentor.Booking{}, st.bookings...), nil
}

func (s *SessionStore) CompleteBooking(ctx context.Context, sessionID, id uuid.UUID, notes string) (mentor.Booking, error) {
	if err := ctx.Err(); err != nil {
		return mentor.Booking{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return mentor.Booking{}, err
	}
	for i := range st.bookings {
		if st.bookings[i].ID != id {
			continue
		}
		st.bookings[i].Status = mentor.BookingCompleted
		if notes != "" {
			st.bookings[i].Notes = notes
		}
		return st.bookings[i], nil
	}
	return mentor.Booking{}, ErrBookingNotFound
}

// CancelBooking is a no-op for unknown ids.
func (s *SessionStore) CancelBooking(ctx context.Context, sessionID, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return err
	}
	for i := range st.bookings {
		if st.bookings[i].ID == id {
			st.bookings[i].Status = mentor.BookingCancelled
			break
		}
	}
	return nil
}
