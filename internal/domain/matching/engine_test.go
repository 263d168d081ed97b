package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "react", Normalize("  React "))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "node.js", Normalize("Node.JS"))
}

func TestScore_FrontendJobAgainstMockProfile(t *testing.T) {
	required := []string{"React", "TypeScript", "Tailwind", "Redux"}
	candidate := []string{"React", "JavaScript", "HTML", "CSS", "Tailwind", "Git", "Figma"}

	res := Score(required, candidate)

	assert.Equal(t, 50, res.Score)
	assert.Equal(t, []string{"React", "Tailwind"}, res.MatchedSkills)
	assert.Equal(t, []string{"TypeScript", "Redux"}, res.MissingSkills)
}

func TestScore_EmptyRequired(t *testing.T) {
	res := Score(nil, []string{"Go"})
	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.MatchedSkills)
	assert.NotNil(t, res.MissingSkills)
	assert.Empty(t, res.MissingSkills)
}

func TestScore_EmptyCandidate(t *testing.T) {
	res := Score([]string{"Go", "SQL"}, nil)
	assert.Equal(t, 0, res.Score)
	assert.Empty(t, res.MatchedSkills)
	assert.Equal(t, []string{"Go", "SQL"}, res.MissingSkills)
}

func TestScore_CaseInsensitive(t *testing.T) {
	a := Score([]string{"React"}, []string{"react"})
	b := Score([]string{"react"}, []string{"React"})
	assert.Equal(t, 100, a.Score)
	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, []string{"React"}, a.MatchedSkills)
	assert.Equal(t, []string{"react"}, b.MatchedSkills)
}

func TestScore_Rounding(t *testing.T) {
	// 1/3 -> 33, 2/3 -> 67
	assert.Equal(t, 33, Score([]string{"a", "b", "c"}, []string{"A"}).Score)
	assert.Equal(t, 67, Score([]string{"a", "b", "c"}, []string{"a", "B"}).Score)
	// 1/8 = 12.5 rounds half away from zero
	assert.Equal(t, 13, Score([]string{"a", "b", "c", "d", "e", "f", "g", "h"}, []string{"a"}).Score)
}

func TestScore_PartitionInvariant(t *testing.T) {
	cases := []struct {
		required  []string
		candidate []string
	}{
		{[]string{"Node.js", "PostgreSQL", "React", "AWS", "Docker"}, []string{"react", "docker"}},
		{[]string{"HTML", "CSS", "JavaScript", "Git"}, []string{"html", "css", "javascript", "git"}},
		{[]string{"Figma"}, []string{}},
		{[]string{" Go ", "Rust"}, []string{"go"}},
	}

	for _, tc := range cases {
		res := Score(tc.required, tc.candidate)
		require.Equal(t, len(tc.required), len(res.MatchedSkills)+len(res.MissingSkills))
		assert.GreaterOrEqual(t, res.Score, 0)
		assert.LessOrEqual(t, res.Score, 100)
		assert.Equal(t, percentage(len(res.MatchedSkills), len(tc.required)), res.Score)
	}
}

func TestScore_IgnoresBlankCandidateEntries(t *testing.T) {
	res := Score([]string{"Go"}, []string{"", "   "})
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, []string{"Go"}, res.MissingSkills)
}
