package usecase

import (
	"context"
	"strings"

	"codecraft/internal/catalog"
	"codecraft/internal/domain/skill"
	"codecraft/internal/infrastructure/practice"
	"codecraft/internal/pkg/logger"

	"go.uber.org/zap"
)

type PracticeUsecase interface {
	Resources(ctx context.Context, skillName string) ([]skill.Resource, error)
	Skills(ctx context.Context) []string
	Progress(ctx context.Context, platform, username string) (*practice.Progress, error)
}

type Practice struct {
	client practice.Client
	log    logger.Logger
}

func NewPracticeUsecase(client practice.Client, log logger.Logger) *Practice {
	if log == nil {
		log = logger.NewNop()
	}
	return &Practice{client: client, log: log}
}

func (u *Practice) Resources(ctx context.Context, skillName string) ([]skill.Resource, error) {
	if strings.TrimSpace(skillName) == "" {
		return nil, ErrInvalidInput
	}
	return catalog.Resources(skillName), nil
}

func (u *Practice) Skills(ctx context.Context) []string {
	return catalog.PracticeSkills()
}

// Progress returns nil progress when the platform is unreachable or the user
// does not exist; only a bad platform or username is an error.
func (u *Practice) Progress(ctx context.Context, platform, username string) (*practice.Progress, error) {
	p, ok := practice.ParsePlatform(platform)
	username = strings.TrimSpace(username)
	if !ok || username == "" {
		return nil, ErrInvalidInput
	}
	if u.client == nil {
		return nil, nil
	}

	var (
		progress *practice.Progress
		err      error
	)
	switch p {
	case practice.PlatformLeetCode:
		progress, err = u.client.LeetCode(ctx, username)
	case practice.PlatformGeeksForGeeks:
		progress, err = u.client.GFG(ctx, username)
	case practice.PlatformCodeforces:
		progress, err = u.client.Codeforces(ctx, username)
	}
	if err != nil {
		u.log.Warn("[Practice] progress fetch failed",
			zap.String("platform", string(p)),
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, nil
	}
	return progress, nil
}
