package usecase

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"codecraft/internal/catalog"
	"codecraft/internal/domain/job"
	"codecraft/internal/domain/matching"
	"codecraft/internal/domain/skill"
	"codecraft/internal/pkg/logger"
	"codecraft/internal/pkg/sanitize"
	"codecraft/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	FilterAll        = "all"
	FilterApplied    = "applied"
	FilterNotApplied = "not-applied"

	SortMatch  = "match"
	SortRecent = "recent"
	SortSalary = "salary"
)

type JobNotifier interface {
	NotifyJobPosted(j job.Job)
}

type JobListParams struct {
	Query  string
	Filter string
	Sort   string
	Skills []string
}

type JobListItem struct {
	JobMatch
	Application *job.Application `json:"application,omitempty"`
}

type PostJobInput struct {
	Title          string
	Company        string
	Location       string
	Type           string
	Salary         string
	RequiredSkills []string
	Tags           []string
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, sessionID uuid.UUID, params JobListParams) ([]JobListItem, error)
	PostJob(ctx context.Context, sessionID uuid.UUID, in PostJobInput) (job.Job, error)
	TrendingSkills(ctx context.Context) []skill.Trending
}

type JobList struct {
	jobs     repository.JobRepository
	apps     repository.ApplicationRepository
	cache    RankingCache
	notifier JobNotifier
	log      logger.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, apps repository.ApplicationRepository, cache RankingCache, notifier JobNotifier, log logger.Logger) *JobList {
	if log == nil {
		log = logger.NewNop()
	}
	return &JobList{jobs: jobs, apps: apps, cache: cache, notifier: notifier, log: log}
}

func (u *JobList) ListJobs(ctx context.Context, sessionID uuid.UUID, params JobListParams) ([]JobListItem, error) {
	filter := strings.ToLower(strings.TrimSpace(params.Filter))
	if filter == "" {
		filter = FilterAll
	}
	if filter != FilterAll && filter != FilterApplied && filter != FilterNotApplied {
		return nil, ErrInvalidInput
	}
	sortBy := strings.ToLower(strings.TrimSpace(params.Sort))
	if sortBy == "" {
		sortBy = SortMatch
	}
	if sortBy != SortMatch && sortBy != SortRecent && sortBy != SortSalary {
		return nil, ErrInvalidInput
	}

	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	apps, err := u.apps.ListApplications(ctx, sessionID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	byJob := make(map[string]job.Application, len(apps))
	for _, a := range apps {
		byJob[a.JobID] = a
	}

	skills := skillsOrDefault(params.Skills)
	ranked := matching.RankByMatch(jobs, func(j job.Job) []string { return j.RequiredSkills }, skills)
	query := strings.ToLower(sanitize.Input(params.Query))

	out := make([]JobListItem, 0, len(ranked))
	for _, r := range ranked {
		app, applied := byJob[r.Item.ID]
		if filter == FilterApplied && !applied {
			continue
		}
		if filter == FilterNotApplied && applied {
			continue
		}
		if query != "" && !jobMatchesQuery(r.Item, query) {
			continue
		}

		item := JobListItem{JobMatch: JobMatch{
			Job:           r.Item,
			Score:         r.Result.Score,
			MatchedSkills: r.Result.MatchedSkills,
			MissingSkills: r.Result.MissingSkills,
		}}
		if applied {
			a := app
			item.Application = &a
		}
		out = append(out, item)
	}

	switch sortBy {
	case SortRecent:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Job.CreatedAt.After(out[j].Job.CreatedAt)
		})
	case SortSalary:
		sort.SliceStable(out, func(i, j int) bool {
			return SalaryFloor(out[i].Job.Salary) > SalaryFloor(out[j].Job.Salary)
		})
	}

	return out, nil
}

func jobMatchesQuery(j job.Job, query string) bool {
	if strings.Contains(strings.ToLower(j.Title), query) ||
		strings.Contains(strings.ToLower(j.Company), query) ||
		strings.Contains(strings.ToLower(j.Location), query) {
		return true
	}
	for _, s := range j.RequiredSkills {
		if strings.Contains(strings.ToLower(s), query) {
			return true
		}
	}
	return false
}

var firstInt = regexp.MustCompile(`\d+`)

// SalaryFloor is the first integer in a free-form salary label, 0 if none.
// "$120k - $160k" gives 120 and "$80 - $120 / hr" gives 80; units are ignored.
func SalaryFloor(salary string) int {
	m := firstInt.FindString(salary)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

func (u *JobList) PostJob(ctx context.Context, sessionID uuid.UUID, in PostJobInput) (job.Job, error) {
	j := job.Job{
		Title:          sanitize.Input(in.Title),
		Company:        sanitize.Input(in.Company),
		Location:       sanitize.Input(in.Location),
		Type:           sanitize.Input(in.Type),
		Salary:         sanitize.Input(in.Salary),
		RequiredSkills: sanitize.Strings(in.RequiredSkills),
		Tags:           sanitize.Strings(in.Tags),
		PostedBy:       sessionID,
	}
	if j.Title == "" || j.Company == "" || len(j.RequiredSkills) == 0 {
		return job.Job{}, ErrInvalidInput
	}
	if j.Location == "" {
		j.Location = "Remote"
	}
	if j.Type == "" {
		j.Type = "Full-time"
	}
	if len(j.Tags) == 0 {
		j.Tags = append([]string(nil), j.RequiredSkills...)
	}

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		return job.Job{}, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.DeleteByPattern(ctx, jobsCachePattern); err != nil {
			u.log.Warn("[Jobs] cache invalidation failed", zap.Error(err))
		}
	}
	if u.notifier != nil {
		u.notifier.NotifyJobPosted(created)
	}

	u.log.Info("[Jobs] job posted", zap.String("job_id", created.ID), zap.String("title", created.Title))
	return created, nil
}

func (u *JobList) TrendingSkills(ctx context.Context) []skill.Trending {
	return catalog.TrendingSkills()
}
