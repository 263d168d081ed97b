package usecase

import (
	"context"
	"strings"

	"codecraft/internal/domain/job"
	"codecraft/internal/pkg/sanitize"
	"codecraft/internal/repository"

	"github.com/google/uuid"
)

type ApplyInput struct {
	ResumeURL   string
	CoverLetter string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, sessionID uuid.UUID, jobID string, in ApplyInput) (job.Application, error)
	List(ctx context.Context, sessionID uuid.UUID) ([]job.Application, error)
	Status(ctx context.Context, sessionID uuid.UUID, jobID string) (*job.Application, error)
	UpdateStatus(ctx context.Context, sessionID, id uuid.UUID, status string, notes string) (job.Application, error)
	Withdraw(ctx context.Context, sessionID, id uuid.UUID) error
}

type Application struct {
	jobs repository.JobRepository
	apps repository.ApplicationRepository
}

func NewApplicationUsecase(jobs repository.JobRepository, apps repository.ApplicationRepository) *Application {
	return &Application{jobs: jobs, apps: apps}
}

func (u *Application) Apply(ctx context.Context, sessionID uuid.UUID, jobID string, in ApplyInput) (job.Application, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return job.Application{}, ErrInvalidInput
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		return job.Application{}, mapStoreError(err)
	}

	app, err := u.apps.CreateApplication(ctx, sessionID, job.Application{
		JobID:       j.ID,
		JobTitle:    j.Title,
		Company:     j.Company,
		ResumeURL:   strings.TrimSpace(in.ResumeURL),
		CoverLetter: sanitize.Input(in.CoverLetter),
	})
	if err != nil {
		return job.Application{}, mapStoreError(err)
	}
	return app, nil
}

func (u *Application) List(ctx context.Context, sessionID uuid.UUID) ([]job.Application, error) {
	apps, err := u.apps.ListApplications(ctx, sessionID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return apps, nil
}

// Status returns nil when the session has not applied to jobID.
func (u *Application) Status(ctx context.Context, sessionID uuid.UUID, jobID string) (*job.Application, error) {
	app, ok, err := u.apps.FindApplicationByJob(ctx, sessionID, strings.TrimSpace(jobID))
	if err != nil {
		return nil, mapStoreError(err)
	}
	if !ok {
		return nil, nil
	}
	return &app, nil
}

func (u *Application) UpdateStatus(ctx context.Context, sessionID, id uuid.UUID, status string, notes string) (job.Application, error) {
	st := job.ApplicationStatus(strings.ToLower(strings.TrimSpace(status)))
	if id == uuid.Nil || !st.Valid() {
		return job.Application{}, ErrInvalidInput
	}

	app, err := u.apps.UpdateApplicationStatus(ctx, sessionID, id, st, sanitize.Input(notes))
	if err != nil {
		return job.Application{}, mapStoreError(err)
	}
	return app, nil
}

func (u *Application) Withdraw(ctx context.Context, sessionID, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}
	return mapStoreError(u.apps.DeleteApplication(ctx, sessionID, id))
}
