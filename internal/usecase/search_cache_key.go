package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"

	"codecraft/internal/domain/matching"
)

const jobsCachePattern = "jobs:*"

type rankingCacheKeyInput struct {
	Skills   []string `json:"skills"`
	MinScore int      `json:"min_score,omitempty"`
	Limit    int      `json:"limit,omitempty"`
	Offset   int      `json:"offset,omitempty"`
}

func normalizedSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = matching.Normalize(strings.Join(strings.Fields(s), " "))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func hashKey(prefix string, in rankingCacheKeyInput) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return prefix + hex.EncodeToString(sum[:])
}

func JobRecommendationsCacheKey(skills []string, params JobRecommendationParams) string {
	return hashKey("jobs:recommend:", rankingCacheKeyInput{
		Skills:   normalizedSkills(skills),
		MinScore: params.MinScore,
		Limit:    params.Limit,
		Offset:   params.Offset,
	})
}

// CompanyMatchesCacheKey keeps order and casing: a company match echoes the
// caller's selection back verbatim.
func CompanyMatchesCacheKey(skills []string) string {
	kept := make([]string, 0, len(skills))
	for _, s := range skills {
		if s = strings.TrimSpace(s); s != "" {
			kept = append(kept, s)
		}
	}
	return hashKey("companies:match:", rankingCacheKeyInput{Skills: kept})
}
