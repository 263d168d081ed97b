package roadmap

import (
	"context"
	"time"
)

var GenerationSteps = []string{
	"Analyzing your current level...",
	"Identifying key skill gaps...",
	"Structuring learning modules...",
	"Curating project ideas...",
	"Finalizing your personalized path...",
}

type Progress struct {
	Step    int    `json:"step"`
	Total   int    `json:"total"`
	Message string `json:"message"`
}

type ProgressFunc func(Progress)

type Generator struct {
	StepDelay time.Duration
}

func NewGenerator(stepDelay time.Duration) *Generator {
	return &Generator{StepDelay: stepDelay}
}

// Generate walks through the fixed generation steps, reporting each one to
// progress, then returns the assembled roadmap. The context is checked before
// every step so a cancelled caller gets ctx.Err() and no roadmap.
func (g *Generator) Generate(ctx context.Context, goal string, progress ProgressFunc) (Roadmap, error) {
	total := len(GenerationSteps)

	for i, msg := range GenerationSteps {
		if err := ctx.Err(); err != nil {
			return Roadmap{}, err
		}

		if progress != nil {
			progress(Progress{Step: i + 1, Total: total, Message: msg})
		}

		if g.StepDelay > 0 {
			t := time.NewTimer(g.StepDelay)
			select {
			case <-ctx.Done():
				t.Stop()
				return Roadmap{}, ctx.Err()
			case <-t.C:
			}
		}
	}

	return Build(goal), nil
}
