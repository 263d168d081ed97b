package usecase

import (
	"context"
	"errors"
	"strings"

	"codecraft/internal/catalog"
	"codecraft/internal/domain/job"
	"codecraft/internal/domain/matching"
	"codecraft/internal/domain/skill"
	"codecraft/internal/domain/user"
	"codecraft/internal/pkg/logger"
	"codecraft/internal/repository"

	"go.uber.org/zap"
)

const gapResourceSkills = 3

type JobMatch struct {
	Job           job.Job  `json:"job"`
	Score         int      `json:"match_score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

type CompanyGap struct {
	matching.CompanyMatch
	Resources map[string][]skill.Resource `json:"resources"`
}

type CandidateMatch struct {
	Candidate     user.Candidate `json:"candidate"`
	Score         int            `json:"match_score"`
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
}

type MatchingUsecase interface {
	Score(ctx context.Context, required, skills []string) matching.Result
	ScoreJob(ctx context.Context, jobID string, skills []string) (JobMatch, error)
	CompaniesBySkills(ctx context.Context, skills []string) ([]matching.CompanyMatch, error)
	CompanyGap(ctx context.Context, company string, skills []string) (CompanyGap, error)
	RankCandidates(ctx context.Context, skills []string) ([]CandidateMatch, error)
}

type Matching struct {
	jobs  repository.JobRepository
	cache RankingCache
	log   logger.Logger
}

func NewMatchingUsecase(jobs repository.JobRepository, cache RankingCache, log logger.Logger) *Matching {
	if log == nil {
		log = logger.NewNop()
	}
	return &Matching{jobs: jobs, cache: cache, log: log}
}

func (u *Matching) Score(ctx context.Context, required, skills []string) matching.Result {
	return matching.Score(required, skills)
}

func (u *Matching) ScoreJob(ctx context.Context, jobID string, skills []string) (JobMatch, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return JobMatch{}, ErrInvalidInput
	}

	j, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobMatch{}, ErrNotFound
		}
		return JobMatch{}, ErrInternal
	}

	res := matching.Score(j.RequiredSkills, skillsOrDefault(skills))
	return JobMatch{Job: j, Score: res.Score, MatchedSkills: res.MatchedSkills, MissingSkills: res.MissingSkills}, nil
}

func (u *Matching) CompaniesBySkills(ctx context.Context, skills []string) ([]matching.CompanyMatch, error) {
	key := CompanyMatchesCacheKey(skills)

	var cached []matching.CompanyMatch
	if u.cache != nil {
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	out := matching.RankCompanies(catalog.Companies(), skills)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err != nil {
			u.log.Warn("[Matching] cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

// CompanyGap scores one company and attaches practice links for the first
// few missing skills.
func (u *Matching) CompanyGap(ctx context.Context, company string, skills []string) (CompanyGap, error) {
	p, ok := catalog.Company(strings.TrimSpace(company))
	if !ok {
		return CompanyGap{}, ErrNotFound
	}

	m := matching.ScoreCompany(p, skills)
	res := make(map[string][]skill.Resource)
	for i, s := range m.MissingSkills {
		if i == gapResourceSkills {
			break
		}
		res[s] = catalog.Resources(s)
	}
	return CompanyGap{CompanyMatch: m, Resources: res}, nil
}

func (u *Matching) RankCandidates(ctx context.Context, skills []string) ([]CandidateMatch, error) {
	if len(normalizedSkills(skills)) == 0 {
		return nil, ErrInvalidInput
	}

	ranked := matching.RankByMatch(catalog.Candidates(), func(c user.Candidate) []string {
		return c.Skills
	}, skills)

	out := make([]CandidateMatch, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, CandidateMatch{
			Candidate:     r.Item,
			Score:         r.Result.Score,
			MatchedSkills: r.Result.MatchedSkills,
			MissingSkills: r.Result.MissingSkills,
		})
	}
	return out, nil
}

func skillsOrDefault(skills []string) []string {
	if len(normalizedSkills(skills)) == 0 {
		return catalog.DefaultUserSkills()
	}
	return skills
}
