package usecase

import (
	"context"
	"strings"
	"testing"

	"codecraft/internal/domain/roadmap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoadmapUsecase_Generate(t *testing.T) {
	uc := NewRoadmapUsecase(nil, nil)

	rm, err := uc.Generate(context.Background(), "I want to learn the MERN stack")
	require.NoError(t, err)
	assert.Equal(t, roadmap.CategoryMERN, rm.Category)
	assert.NotEmpty(t, rm.Modules)
}

func TestRoadmapUsecase_GenerateRejectsEmptyGoal(t *testing.T) {
	uc := NewRoadmapUsecase(nil, nil)

	_, err := uc.Generate(context.Background(), "  <> ")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Generate(context.Background(), strings.Repeat("a", maxGoalLength+1))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRoadmapUsecase_Stream(t *testing.T) {
	uc := NewRoadmapUsecase(roadmap.NewGenerator(0), nil)

	var steps []roadmap.Progress
	rm, err := uc.Stream(context.Background(), "become a devops engineer", func(p roadmap.Progress) {
		steps = append(steps, p)
	})
	require.NoError(t, err)
	assert.Len(t, steps, len(roadmap.GenerationSteps))
	assert.Equal(t, roadmap.CategoryDevOps, rm.Category)
}

func TestRoadmapUsecase_StreamCancelled(t *testing.T) {
	uc := NewRoadmapUsecase(roadmap.NewGenerator(0), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Stream(ctx, "frontend", nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRoadmapUsecase_Classify(t *testing.T) {
	uc := NewRoadmapUsecase(nil, nil)

	c, err := uc.Classify(context.Background(), "knitting")
	require.NoError(t, err)
	assert.Equal(t, roadmap.CategoryGeneric, c.Category)
	assert.Equal(t, "knitting", c.Goal)
}
