package repository

import (
	"context"
	"sort"

	"codecraft/internal/domain/hackathon"

	"github.com/google/uuid"
)

type HackathonRepository interface {
	CreateHackathon(ctx context.Context, sessionID uuid.UUID, h hackathon.Hackathon) (hackathon.Hackathon, error)
	ListCreatedHackathons(ctx context.Context) ([]hackathon.Hackathon, error)
	Register(ctx context.Context, sessionID uuid.UUID, r hackathon.Registration) (hackathon.Registration, error)
	ListRegistrations(ctx context.Context, sessionID uuid.UUID) ([]hackathon.Registration, error)
	IsRegistered(ctx context.Context, sessionID uuid.UUID, hackathonID string) (bool, error)
	CancelRegistration(ctx context.Context, sessionID uuid.UUID, hackathonID string) error
}

func (s *SessionStore) CreateHackathon(ctx context.Context, sessionID uuid.UUID, h hackathon.Hackathon) (hackathon.Hackathon, error) {
	if err := ctx.Err(); err != nil {
		return hackathon.Hackathon{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return hackathon.Hackathon{}, err
	}

	h.ID = uuid.NewString()
	h.CreatedBy = sessionID
	h.CreatedAt = s.now().UTC()
	h.IsLive = false
	h.Registrations = 0
	h.Tags = append([]string(nil), h.Tags...)

	st.hackathons = append(st.hackathons, h)
	return h, nil
}

// ListCreatedHackathons returns organizer-created events from every live
// session, oldest first, with their current registration counts.
func (s *SessionStore) ListCreatedHackathons(ctx context.Context) ([]hackathon.Hackathon, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int)
	out := make([]hackathon.Hackathon, 0)
	for _, st := range s.sessions {
		for _, r := range st.registrations {
			counts[r.HackathonID]++
		}
		out = append(out, st.hackathons...)
	}
	for i := range out {
		out[i].Registrations = counts[out[i].ID]
	}

	sortHackathonsByCreatedAt(out)
	return out, nil
}

func (s *SessionStore) Register(ctx context.Context, sessionID uuid.UUID, r hackathon.Registration) (hackathon.Registration, error) {
	if err := ctx.Err(); err != nil {
		return hackathon.Registration{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return hackathon.Registration{}, err
	}
	for _, existing := range st.registrations {
		if existing.HackathonID == r.HackathonID {
			return hackathon.Registration{}, ErrAlreadyRegistered
		}
	}

	r.ID = uuid.New()
	r.SessionID = sessionID
	r.RegisteredAt = s.now().UTC()
	r.Status = hackathon.RegistrationRegistered
	r.TeamMembers = append([]string(nil), r.TeamMembers...)

	st.registrations = append(st.registrations, r)
	return r, nil
}

func (s *SessionStore) ListRegistrations(ctx context.Context, sessionID uuid.UUID) ([]hackathon.Registration, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return append([]hackathon.Registration{}, st.registrations...), nil
}

func (s *SessionStore) IsRegistered(ctx context.Context, sessionID uuid.UUID, hackathonID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return false, err
	}
	for _, r := range st.registrations {
		if r.HackathonID == hackathonID {
			return true, nil
		}
	}
	return false, nil
}

func (s *SessionStore) CancelRegistration(ctx context.Context, sessionID uuid.UUID, hackathonID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return err
	}
	kept := st.registrations[:0]
	for _, r := range st.registrations {
		if r.HackathonID != hackathonID {
			kept = append(kept, r)
		}
	}
	st.registrations = kept
	return nil
}

// Sessions are held in a map, so equal timestamps are ordered by ID to keep
// listings stable across calls.
func sortHackathonsByCreatedAt(hs []hackathon.Hackathon) {
	sort.Slice(hs, func(i, j int) bool {
		if !hs[i].CreatedAt.Equal(hs[j].CreatedAt) {
			return hs[i].CreatedAt.Before(hs[j].CreatedAt)
		}
		return hs[i].ID < hs[j].ID
	})
}
