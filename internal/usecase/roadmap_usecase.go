package usecase

import (
	"context"

	"codecraft/internal/domain/roadmap"
	"codecraft/internal/pkg/logger"
	"codecraft/internal/pkg/sanitize"

	"go.uber.org/zap"
)

const maxGoalLength = 500

type Classification struct {
	Goal     string           `json:"goal"`
	Category roadmap.Category `json:"category"`
}

type RoadmapUsecase interface {
	Generate(ctx context.Context, goal string) (roadmap.Roadmap, error)
	Stream(ctx context.Context, goal string, progress roadmap.ProgressFunc) (roadmap.Roadmap, error)
	Classify(ctx context.Context, goal string) (Classification, error)
}

type Roadmap struct {
	generator *roadmap.Generator
	log       logger.Logger
}

func NewRoadmapUsecase(generator *roadmap.Generator, log logger.Logger) *Roadmap {
	if generator == nil {
		generator = roadmap.NewGenerator(0)
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &Roadmap{generator: generator, log: log}
}

func cleanGoal(goal string) (string, error) {
	g := sanitize.Input(goal)
	if g == "" || len(g) > maxGoalLength {
		return "", ErrInvalidInput
	}
	return g, nil
}

// Generate builds the roadmap immediately, without progress steps.
func (u *Roadmap) Generate(ctx context.Context, goal string) (roadmap.Roadmap, error) {
	g, err := cleanGoal(goal)
	if err != nil {
		return roadmap.Roadmap{}, err
	}
	rm := roadmap.Build(g)
	u.log.Info("[Roadmap] generated", zap.String("category", rm.Category.String()))
	return rm, nil
}

// Stream runs the paced generator and reports every step to progress.
func (u *Roadmap) Stream(ctx context.Context, goal string, progress roadmap.ProgressFunc) (roadmap.Roadmap, error) {
	g, err := cleanGoal(goal)
	if err != nil {
		return roadmap.Roadmap{}, err
	}
	rm, err := u.generator.Generate(ctx, g, progress)
	if err != nil {
		return roadmap.Roadmap{}, err
	}
	u.log.Info("[Roadmap] streamed", zap.String("category", rm.Category.String()))
	return rm, nil
}

func (u *Roadmap) Classify(ctx context.Context, goal string) (Classification, error) {
	g, err := cleanGoal(goal)
	if err != nil {
		return Classification{}, err
	}
	return Classification{Goal: g, Category: roadmap.Classify(g)}, nil
}
