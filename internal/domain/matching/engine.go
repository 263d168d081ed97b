package matching

import "math"

type Result struct {
	Score         int      `json:"score"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// Score partitions required into matched and missing against the candidate
// skills. Both buckets keep the order and casing of required.
func Score(required []string, candidate []string) Result {
	if len(required) == 0 {
		return Result{Score: 0, MatchedSkills: []string{}, MissingSkills: []string{}}
	}

	have := NormalizeSet(candidate)

	matched := make([]string, 0, len(required))
	missing := make([]string, 0)
	for _, r := range required {
		if _, ok := have[Normalize(r)]; ok {
			matched = append(matched, r)
			continue
		}
		missing = append(missing, r)
	}

	return Result{
		Score:         percentage(len(matched), len(required)),
		MatchedSkills: matched,
		MissingSkills: missing,
	}
}

func percentage(n, total int) int {
	if total <= 0 {
		return 0
	}
	score := int(math.Round(100 * float64(n) / float64(total)))
	return clampInt(score, 0, 100)
}

func clampInt(v, minV, maxV int) int {
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
