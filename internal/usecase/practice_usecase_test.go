package usecase

import (
	"context"
	"testing"

	"codecraft/internal/infrastructure/practice"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPracticeUsecase_Progress(t *testing.T) {
	client := &fakePracticeClient{progress: &practice.Progress{Platform: practice.PlatformCodeforces, TotalSolved: 42}}
	uc := NewPracticeUsecase(client, nil)

	p, err := uc.Progress(context.Background(), "Codeforces", "tourist")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 42, p.TotalSolved)

	_, err = uc.Progress(context.Background(), "gfg", "someone")
	require.NoError(t, err)
	assert.Equal(t, []practice.Platform{practice.PlatformCodeforces, practice.PlatformGeeksForGeeks}, client.calls)
}

func TestPracticeUsecase_ProgressFailureIsNil(t *testing.T) {
	uc := NewPracticeUsecase(&fakePracticeClient{err: errBoom}, nil)

	p, err := uc.Progress(context.Background(), "leetcode", "nobody")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestPracticeUsecase_ProgressInvalid(t *testing.T) {
	uc := NewPracticeUsecase(&fakePracticeClient{}, nil)

	_, err := uc.Progress(context.Background(), "hackerrank", "x")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Progress(context.Background(), "leetcode", " ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPracticeUsecase_Resources(t *testing.T) {
	uc := NewPracticeUsecase(nil, nil)

	res, err := uc.Resources(context.Background(), "dsa")
	require.NoError(t, err)
	assert.NotEmpty(t, res)

	res, err = uc.Resources(context.Background(), "Cobol")
	require.NoError(t, err)
	assert.NotNil(t, res)
	assert.Empty(t, res)

	_, err = uc.Resources(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Len(t, uc.Skills(context.Background()), 12)
}
