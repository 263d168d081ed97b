package usecase

import (
	"context"
	"testing"
	"time"

	"codecraft/internal/catalog"
	"codecraft/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func matchIDs(ms []JobMatch) []string {
	ids := make([]string, 0, len(ms))
	for _, m := range ms {
		ids = append(ids, m.Job.ID)
	}
	return ids
}

func newRecommendationFixture() (*JobRecommendation, *fakeCache) {
	cache := newFakeCache()
	jobs := repository.NewMemoryJobRepository(catalog.JobsAt(time.Now()))
	return NewJobRecommendationUsecase(jobs, cache, nil), cache
}

func TestJobRecommendation_MinScoreAndPaging(t *testing.T) {
	uc, _ := newRecommendationFixture()

	out, err := uc.GetRecommendations(context.Background(), nil, JobRecommendationParams{MinScore: 50})
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "1", "4"}, matchIDs(out))

	out, err = uc.GetRecommendations(context.Background(), nil, JobRecommendationParams{Limit: 2, Offset: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, matchIDs(out))
}

func TestJobRecommendation_OffsetPastEnd(t *testing.T) {
	uc, _ := newRecommendationFixture()

	out, err := uc.GetRecommendations(context.Background(), nil, JobRecommendationParams{Offset: 10})
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestJobRecommendation_InvalidMinScore(t *testing.T) {
	uc, _ := newRecommendationFixture()

	_, err := uc.GetRecommendations(context.Background(), nil, JobRecommendationParams{MinScore: 101})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.GetRecommendations(context.Background(), nil, JobRecommendationParams{MinScore: -1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJobRecommendation_UsesCache(t *testing.T) {
	uc, cache := newRecommendationFixture()
	skills := []string{"Node.js", "AWS"}

	first, err := uc.GetRecommendations(context.Background(), skills, JobRecommendationParams{})
	require.NoError(t, err)
	require.NotEmpty(t, first)
	assert.Equal(t, "2", first[0].Job.ID)

	second, err := uc.GetRecommendations(context.Background(), skills, JobRecommendationParams{})
	require.NoError(t, err)
	assert.Equal(t, matchIDs(first), matchIDs(second))
	assert.Equal(t, 1, cache.sets)
}

func TestJobRecommendation_CacheSetFailureIgnored(t *testing.T) {
	uc, cache := newRecommendationFixture()
	cache.setErr = errBoom

	out, err := uc.GetRecommendations(context.Background(), nil, JobRecommendationParams{})
	require.NoError(t, err)
	assert.Len(t, out, 5)
}

func TestJobRecommendation_RepositoryFailure(t *testing.T) {
	uc := NewJobRecommendationUsecase(failingJobRepo{}, nil, nil)

	_, err := uc.GetRecommendations(context.Background(), nil, JobRecommendationParams{})
	assert.ErrorIs(t, err, ErrInternal)
}
