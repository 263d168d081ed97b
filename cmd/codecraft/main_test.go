package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"codecraft/internal/domain/roadmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestClassifyCommand(t *testing.T) {
	out, err := execute(t, "classify", "I", "want", "to", "learn", "React")
	require.NoError(t, err)
	assert.Equal(t, "frontend\n", out)

	_, err = execute(t, "classify")
	assert.Error(t, err)
}

func TestRoadmapCommand_JSON(t *testing.T) {
	out, err := execute(t, "roadmap", "--json", "become a devops engineer")
	require.NoError(t, err)

	var rm roadmap.Roadmap
	require.NoError(t, json.Unmarshal([]byte(out), &rm))
	assert.Equal(t, roadmap.CategoryDevOps, rm.Category)
	assert.Equal(t, "become a devops engineer", rm.Goal)
	assert.NotEmpty(t, rm.Modules)
}

func TestRoadmapCommand_Text(t *testing.T) {
	out, err := execute(t, "roadmap", "backend")
	require.NoError(t, err)
	assert.Contains(t, out, "backend")
	assert.Contains(t, out, "1. ")
}

func TestRoadmapCommand_RejectsBlankGoal(t *testing.T) {
	_, err := execute(t, "roadmap", "<>")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goal is required")
}

func TestMatchCommand(t *testing.T) {
	out, err := execute(t, "match", "--required", "React,Node.js,SQL", "--skills", "react,sql")
	require.NoError(t, err)
	assert.Contains(t, out, "score: 67%")
	assert.Contains(t, out, "matched: React, SQL")
	assert.Contains(t, out, "missing: Node.js")

	_, err = execute(t, "match", "--skills", "react")
	assert.Error(t, err)
}

func TestCompaniesCommand(t *testing.T) {
	out, err := execute(t, "companies", "--skills", "React,SQL")
	require.NoError(t, err)
	assert.Contains(t, out, "Google")
	assert.Contains(t, out, "40%")

	_, err = execute(t, "companies")
	assert.Error(t, err)
}
