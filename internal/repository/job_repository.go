package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"codecraft/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

type JobRepository interface {
	List(ctx context.Context) ([]job.Job, error)
	FindByID(ctx context.Context, id string) (job.Job, error)
	Create(ctx context.Context, j job.Job) (job.Job, error)
}

// MemoryJobRepository is the process-wide job board. Posted jobs are kept in
// insertion order after the seed jobs.
type MemoryJobRepository struct {
	mu   sync.RWMutex
	jobs []job.Job

	now func() time.Time
}

func NewMemoryJobRepository(seed []job.Job) *MemoryJobRepository {
	jobs := make([]job.Job, len(seed))
	copy(jobs, seed)
	return &MemoryJobRepository{jobs: jobs, now: time.Now}
}

func (r *MemoryJobRepository) List(ctx context.Context) ([]job.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]job.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		out = append(out, cloneJob(j))
	}
	return out, nil
}

func (r *MemoryJobRepository) FindByID(ctx context.Context, id string) (job.Job, error) {
	if err := ctx.Err(); err != nil {
		return job.Job{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, j := range r.jobs {
		if j.ID == id {
			return cloneJob(j), nil
		}
	}
	return job.Job{}, ErrJobNotFound
}

func (r *MemoryJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if err := ctx.Err(); err != nil {
		return job.Job{}, err
	}

	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = r.now().UTC()
	}
	if j.PostedAt == "" {
		j.PostedAt = "Just now"
	}
	j = cloneJob(j)

	r.mu.Lock()
	r.jobs = append(r.jobs, j)
	r.mu.Unlock()

	return cloneJob(j), nil
}

func cloneJob(j job.Job) job.Job {
	j.RequiredSkills = append([]string(nil), j.RequiredSkills...)
	j.Tags = append([]string(nil), j.Tags...)
	return j
}
