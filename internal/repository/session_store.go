package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"codecraft/internal/domain/hackathon"
	"codecraft/internal/domain/job"
	"codecraft/internal/domain/mentor"
	"codecraft/internal/domain/project"
	"codecraft/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrApplicationNotFound = errors.New("application not found")
	ErrBookingNotFound     = errors.New("mentor session not found")
	ErrAlreadyRegistered   = errors.New("already registered for this hackathon")
)

type sessionState struct {
	session  user.Session
	lastSeen time.Time

	applications  []job.Application
	bookings      []mentor.Booking
	registrations []hackathon.Registration
	hackathons    []hackathon.Hackathon
	projects      []project.Project
}

// SessionStore holds everything a mock login accumulates. It is created once
// per process and shared by reference; all methods are safe for concurrent use.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*sessionState

	ttl time.Duration
	now func() time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*sessionState),
		ttl:      ttl,
		now:      time.Now,
	}
}

func (s *SessionStore) CreateSession(ctx context.Context, name, email string, role user.Role) (user.Session, error) {
	if err := ctx.Err(); err != nil {
		return user.Session{}, err
	}

	now := s.now().UTC()
	sess := user.Session{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Role:      role,
		CreatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = &sessionState{session: sess, lastSeen: now}
	s.mu.Unlock()

	return sess, nil
}

func (s *SessionStore) GetSession(ctx context.Context, id uuid.UUID) (user.Session, error) {
	if err := ctx.Err(); err != nil {
		return user.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(id)
	if err != nil {
		return user.Session{}, err
	}
	return st.session, nil
}

// Sweep evicts sessions idle for longer than the store TTL and returns how
// many were removed. A zero TTL disables eviction.
func (s *SessionStore) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, st := range s.sessions {
		if st.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// stateLocked must be called with s.mu held for writing; it refreshes the
// idle clock of the session it returns.
func (s *SessionStore) stateLocked(id uuid.UUID) (*sessionState, error) {
	st, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	st.lastSeen = s.now()
	return st, nil
}
