package usecase

import (
	"context"
	"testing"
	"time"

	"codecraft/internal/catalog"
	"codecraft/internal/domain/job"
	"codecraft/internal/domain/user"
	"codecraft/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobListFixture(t *testing.T) (*JobList, *repository.SessionStore, *fakeCache, *fakeNotifier) {
	t.Helper()
	store := repository.NewSessionStore(time.Hour)
	jobs := repository.NewMemoryJobRepository(catalog.JobsAt(time.Now()))
	cache := newFakeCache()
	notifier := &fakeNotifier{}
	return NewJobListUsecase(jobs, store, cache, notifier, nil), store, cache, notifier
}

func jobIDs(items []JobListItem) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.Job.ID)
	}
	return ids
}

func TestJobListUsecase_ListJobs_DefaultSortByMatch(t *testing.T) {
	uc, store, _, _ := newJobListFixture(t)
	sid := newSession(t, store, user.RoleStudent)

	items, err := uc.ListJobs(context.Background(), sid, JobListParams{})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "4", "2", "5"}, jobIDs(items))
	assert.Equal(t, 100, items[0].Score)
}

func TestJobListUsecase_ListJobs_SortRecentAndSalary(t *testing.T) {
	uc, store, _, _ := newJobListFixture(t)
	sid := newSession(t, store, user.RoleStudent)

	recent, err := uc.ListJobs(context.Background(), sid, JobListParams{Sort: SortRecent})
	require.NoError(t, err)
	assert.Equal(t, []string{"4", "2", "5", "1", "3"}, jobIDs(recent))

	salary, err := uc.ListJobs(context.Background(), sid, JobListParams{Sort: "SALARY"})
	require.NoError(t, err)
	assert.Equal(t, []string{"5", "4", "1", "2", "3"}, jobIDs(salary))
}

func TestJobListUsecase_ListJobs_Query(t *testing.T) {
	uc, store, _, _ := newJobListFixture(t)
	sid := newSession(t, store, user.RoleStudent)

	items, err := uc.ListJobs(context.Background(), sid, JobListParams{Query: "figma"})
	require.NoError(t, err)
	assert.Equal(t, []string{"4"}, jobIDs(items))

	items, err = uc.ListJobs(context.Background(), sid, JobListParams{Query: "remote"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"1", "4", "5"}, jobIDs(items))
}

func TestJobListUsecase_ListJobs_AppliedFilter(t *testing.T) {
	uc, store, _, _ := newJobListFixture(t)
	sid := newSession(t, store, user.RoleStudent)

	_, err := store.CreateApplication(context.Background(), sid, job.Application{JobID: "2", JobTitle: "Full Stack Developer"})
	require.NoError(t, err)

	applied, err := uc.ListJobs(context.Background(), sid, JobListParams{Filter: FilterApplied})
	require.NoError(t, err)
	require.Len(t, applied, 1)
	assert.Equal(t, "2", applied[0].Job.ID)
	require.NotNil(t, applied[0].Application)
	assert.Equal(t, job.StatusApplied, applied[0].Application.Status)

	rest, err := uc.ListJobs(context.Background(), sid, JobListParams{Filter: FilterNotApplied})
	require.NoError(t, err)
	assert.Len(t, rest, 4)
	assert.NotContains(t, jobIDs(rest), "2")
}

func TestJobListUsecase_ListJobs_InvalidParams(t *testing.T) {
	uc, store, _, _ := newJobListFixture(t)
	sid := newSession(t, store, user.RoleStudent)

	_, err := uc.ListJobs(context.Background(), sid, JobListParams{Filter: "mine"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.ListJobs(context.Background(), sid, JobListParams{Sort: "alpha"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobListUsecase_ListJobs_UnknownSession(t *testing.T) {
	uc, _, _, _ := newJobListFixture(t)

	_, err := uc.ListJobs(context.Background(), uuid.New(), JobListParams{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestJobListUsecase_PostJob(t *testing.T) {
	uc, store, cache, notifier := newJobListFixture(t)
	sid := newSession(t, store, user.RoleRecruiter)

	created, err := uc.PostJob(context.Background(), sid, PostJobInput{
		Title:          "  Go Engineer <b>",
		Company:        "Gophers Inc",
		Salary:         "$200k",
		RequiredSkills: []string{"Go", " ", "Redis"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Go Engineer b", created.Title)
	assert.Equal(t, "Remote", created.Location)
	assert.Equal(t, "Full-time", created.Type)
	assert.Equal(t, []string{"Go", "Redis"}, created.RequiredSkills)
	assert.Equal(t, []string{"Go", "Redis"}, created.Tags)
	assert.Equal(t, sid, created.PostedBy)

	assert.Equal(t, []string{jobsCachePattern}, cache.patterns)
	require.Len(t, notifier.posted, 1)
	assert.Equal(t, created.ID, notifier.posted[0].ID)

	items, err := uc.ListJobs(context.Background(), sid, JobListParams{Sort: SortSalary})
	require.NoError(t, err)
	assert.Equal(t, created.ID, items[0].Job.ID)
}

func TestJobListUsecase_PostJob_Invalid(t *testing.T) {
	uc, store, cache, notifier := newJobListFixture(t)
	sid := newSession(t, store, user.RoleRecruiter)

	_, err := uc.PostJob(context.Background(), sid, PostJobInput{Title: "Go Engineer", Company: "X"})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Empty(t, cache.patterns)
	assert.Empty(t, notifier.posted)
}

func TestSalaryFloor(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"$120k - $160k", 120},
		{"$80 - $120 / hr", 80},
		{"£35k - £45k", 35},
		{"$150k+", 150},
		{"Competitive", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SalaryFloor(tt.in))
		})
	}
}

func TestJobListUsecase_TrendingSkills(t *testing.T) {
	uc, _, _, _ := newJobListFixture(t)
	assert.NotEmpty(t, uc.TrendingSkills(context.Background()))
}
