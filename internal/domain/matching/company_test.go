package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreCompany_MatchedFollowsSelectionOrder(t *testing.T) {
	google := CompanyProfile{
		Name:     "Google",
		Required: []string{"DSA", "React", "Node.js", "System Design", "SQL"},
		Roles:    []string{"Backend", "Frontend", "Full Stack"},
	}

	m := ScoreCompany(google, []string{"SQL", "JavaScript", "react"})

	assert.Equal(t, "Google", m.Company)
	assert.Equal(t, 40, m.MatchPercentage)
	assert.Equal(t, []string{"SQL", "react"}, m.MatchedSkills)
	assert.Equal(t, []string{"DSA", "Node.js", "System Design"}, m.MissingSkills)
	assert.Equal(t, []string{"Backend", "Frontend", "Full Stack"}, m.Roles)
}

func TestScoreCompany_DuplicateSelectionCountedOnce(t *testing.T) {
	p := CompanyProfile{Name: "Meta", Required: []string{"React", "GraphQL"}}
	m := ScoreCompany(p, []string{"React", "react", "REACT"})
	assert.Equal(t, 50, m.MatchPercentage)
	assert.Equal(t, []string{"React"}, m.MatchedSkills)
}

func TestScoreCompany_NoRequirements(t *testing.T) {
	m := ScoreCompany(CompanyProfile{Name: "Empty"}, []string{"Go"})
	assert.Equal(t, 0, m.MatchPercentage)
	assert.Empty(t, m.MatchedSkills)
	assert.Empty(t, m.MissingSkills)
}

func TestRankCompanies_SortedDescendingAndStable(t *testing.T) {
	profiles := []CompanyProfile{
		{Name: "A", Required: []string{"Swift", "iOS"}},
		{Name: "B", Required: []string{"React", "CSS"}},
		{Name: "C", Required: []string{"Java", "AWS"}},
		{Name: "D", Required: []string{"React", "GraphQL"}},
	}

	out := RankCompanies(profiles, []string{"React", "CSS"})

	require.Len(t, out, 4)
	names := []string{out[0].Company, out[1].Company, out[2].Company, out[3].Company}
	assert.Equal(t, []string{"B", "D", "A", "C"}, names)
}
