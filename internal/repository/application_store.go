package repository

import (
	"context"

	"codecraft/internal/domain/job"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	CreateApplication(ctx context.Context, sessionID uuid.UUID, app job.Application) (job.Application, error)
	ListApplications(ctx context.Context, sessionID uuid.UUID) ([]job.Application, error)
	FindApplicationByJob(ctx context.Context, sessionID uuid.UUID, jobID string) (job.Application, bool, error)
	UpdateApplicationStatus(ctx context.Context, sessionID, id uuid.UUID, status job.ApplicationStatus, notes string) (job.Application, error)
	DeleteApplication(ctx context.Context, sessionID, id uuid.UUID) error
}

func (s *SessionStore) CreateApplication(ctx context.Context, sessionID uuid.UUID, app job.Application) (job.Application, error) {
	if err := ctx.Err(); err != nil {
		return job.Application{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return job.Application{}, err
	}

	for _, a := range st.applications {
		if a.JobID == app.JobID {
			return job.Application{}, ErrAlreadyApplied
		}
	}

	app.ID = uuid.New()
	app.SessionID = sessionID
	app.AppliedAt = s.now().UTC()
	app.Status = job.StatusApplied

	st.applications = append(st.applications, app)
	return app, nil
}

func (s *SessionStore) ListApplications(ctx context.Context, sessionID uuid.UUID) ([]job.Application, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return append([]job.Application{}, st.applications...), nil
}

func (s *SessionStore) FindApplicationByJob(ctx context.Context, sessionID uuid.UUID, jobID string) (job.Application, bool, error) {
	if err := ctx.Err(); err != nil {
		return job.Application{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return job.Application{}, false, err
	}
	for _, a := range st.applications {
		if a.JobID == jobID {
			return a, true, nil
		}
	}
	return job.Application{}, false, nil
}

// UpdateApplicationStatus keeps the previous notes when notes is empty.
func (s *SessionStore) UpdateApplicationStatus(ctx context.Context, sessionID, id uuid.UUID, status job.ApplicationStatus, notes string) (job.Application, error) {
	if err := ctx.Err(); err != nil {
		return job.Application{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return job.Application{}, err
	}
	for i := range st.applications {
		if st.applications[i].ID != id {
			continue
		}
		st.applications[i].Status = status
		if notes != "" {
			st.applications[i].Notes = notes
		}
		return st.applications[i], nil
	}
	return job.Application{}, ErrApplicationNotFound
}

// DeleteApplication withdraws an application. Unknown ids are ignored.
func (s *SessionStore) DeleteApplication(ctx context.Context, sessionID, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return err
	}
	kept := st.applications[:0]
	for _, a := range st.applications {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	st.applications = kept
	return nil
}
