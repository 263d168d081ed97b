package usecase

import (
	"context"

	"codecraft/internal/domain/job"
	"codecraft/internal/domain/matching"
	"codecraft/internal/pkg/logger"
	"codecraft/internal/repository"

	"go.uber.org/zap"
)

type JobRecommendationParams struct {
	Limit    int
	Offset   int
	MinScore int
}

type JobRecommendationUsecase interface {
	GetRecommendations(ctx context.Context, skills []string, params JobRecommendationParams) ([]JobMatch, error)
}

type JobRecommendation struct {
	jobs  repository.JobRepository
	cache RankingCache
	log   logger.Logger
}

func NewJobRecommendationUsecase(jobs repository.JobRepository, cache RankingCache, log logger.Logger) *JobRecommendation {
	if log == nil {
		log = logger.NewNop()
	}
	return &JobRecommendation{jobs: jobs, cache: cache, log: log}
}

// GetRecommendations ranks the whole job board against skills (the demo
// profile when none are given), drops jobs below MinScore and pages the rest.
func (u *JobRecommendation) GetRecommendations(ctx context.Context, skills []string, params JobRecommendationParams) ([]JobMatch, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	minScore := params.MinScore
	if minScore < 0 || minScore > 100 {
		return nil, ErrInvalidInput
	}
	params = JobRecommendationParams{Limit: limit, Offset: offset, MinScore: minScore}

	skills = skillsOrDefault(skills)
	key := JobRecommendationsCacheKey(skills, params)

	if u.cache != nil {
		var cached []JobMatch
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	ranked := matching.RankByMatch(jobs, func(j job.Job) []string { return j.RequiredSkills }, skills)

	filtered := make([]JobMatch, 0, len(ranked))
	for _, r := range ranked {
		if r.Result.Score < minScore {
			continue
		}
		filtered = append(filtered, JobMatch{
			Job:           r.Item,
			Score:         r.Result.Score,
			MatchedSkills: r.Result.MatchedSkills,
			MissingSkills: r.Result.MissingSkills,
		})
	}

	out := []JobMatch{}
	if offset < len(filtered) {
		end := offset + limit
		if end > len(filtered) {
			end = len(filtered)
		}
		out = filtered[offset:end]
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err != nil {
			u.log.Warn("[Recommendation] cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}
