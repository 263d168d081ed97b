package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testJob struct {
	ID       string
	Required []string
}

func jobRequired(j testJob) []string { return j.Required }

func TestRankByMatch_HigherScoreFirst(t *testing.T) {
	candidate := []string{"HTML", "CSS", "JavaScript", "Git", "React", "Tailwind"}
	jobs := []testJob{
		{ID: "frontend", Required: []string{"React", "TypeScript", "Tailwind", "Redux"}},
		{ID: "junior", Required: []string{"HTML", "CSS", "JavaScript", "Git"}},
	}

	ranked := RankByMatch(jobs, jobRequired, candidate)

	require.Len(t, ranked, 2)
	assert.Equal(t, "junior", ranked[0].Item.ID)
	assert.Equal(t, 100, ranked[0].Result.Score)
	assert.Equal(t, "frontend", ranked[1].Item.ID)
	assert.Equal(t, 50, ranked[1].Result.Score)
}

func TestRankByMatch_StableForEqualScores(t *testing.T) {
	jobs := []testJob{
		{ID: "a", Required: []string{"Go"}},
		{ID: "b", Required: []string{"Rust"}},
		{ID: "c", Required: []string{"Go", "SQL"}},
		{ID: "d", Required: []string{"Zig"}},
		{ID: "e", Required: []string{"go"}},
	}

	ranked := RankByMatch(jobs, jobRequired, []string{"GO"})

	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.Item.ID)
	}
	assert.Equal(t, []string{"a", "e", "c", "b", "d"}, ids)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Result.Score, ranked[i].Result.Score)
	}
}

func TestRankByMatch_NilInputs(t *testing.T) {
	ranked := RankByMatch[testJob](nil, jobRequired, nil)
	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)

	ranked = RankByMatch([]testJob{{ID: "x"}}, nil, nil)
	assert.Empty(t, ranked)
}
