package roadmap

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_ReportsEveryStep(t *testing.T) {
	var got []Progress
	r, err := NewGenerator(0).Generate(context.Background(), "react developer", func(p Progress) {
		got = append(got, p)
	})

	require.NoError(t, err)
	assert.Equal(t, CategoryFrontend, r.Category)
	require.Len(t, got, len(GenerationSteps))
	for i, p := range got {
		assert.Equal(t, i+1, p.Step)
		assert.Equal(t, len(GenerationSteps), p.Total)
		assert.Equal(t, GenerationSteps[i], p.Message)
	}
}

func TestGenerator_NilProgress(t *testing.T) {
	r, err := NewGenerator(0).Generate(context.Background(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, CategoryGeneric, r.Category)
}

func TestGenerator_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	_, err := NewGenerator(0).Generate(ctx, "mern", func(Progress) { calls++ })
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls)
}

func TestGenerator_CancelDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	g := NewGenerator(time.Hour)
	_, err := g.Generate(ctx, "mern", func(p Progress) {
		if p.Step == 1 {
			cancel()
		}
	})
	assert.ErrorIs(t, err, context.Canceled)
}
