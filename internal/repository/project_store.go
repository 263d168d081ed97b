package repository

import (
	"context"

	"codecraft/internal/domain/project"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	CreateProject(ctx context.Context, sessionID uuid.UUID, p project.Project) (project.Project, error)
	ListProjects(ctx context.Context, sessionID uuid.UUID) ([]project.Project, error)
}

func (s *SessionStore) CreateProject(ctx context.Context, sessionID uuid.UUID, p project.Project) (project.Project, error) {
	if err := ctx.Err(); err != nil {
		return project.Project{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return project.Project{}, err
	}

	p.ID = uuid.New()
	p.SessionID = sessionID
	p.SubmittedAt = s.now().UTC()
	p.Commits = append([]project.Commit{}, p.Commits...)
	st.projects = append(st.projects, p)
	return p, nil
}

// ListProjects returns the session's projects, newest submission first.
func (s *SessionStore) ListProjects(ctx context.Context, sessionID uuid.UUID) ([]project.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	st, err := s.stateLocked(sessionID)
	if err != nil {
		return nil, err
	}
	out := make([]project.Project, 0, len(st.projects))
	for i := len(st.projects) - 1; i >= 0; i-- {
		out = append(out, st.projects[i])
	}
	return out, nil
}
