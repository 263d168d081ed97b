package usecase

import (
	"context"
	"testing"
	"time"

	"codecraft/internal/domain/user"
	"codecraft/internal/pkg/jwt"
	"codecraft/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthUsecase_StartAndResolve(t *testing.T) {
	store := repository.NewSessionStore(time.Hour)
	uc := NewAuthUsecase(store, jwt.NewHMACService("secret", time.Hour))

	res, err := uc.StartSession(context.Background(), SessionInput{Name: " Ada ", Email: "ada@example.com", Role: "Recruiter"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, user.RoleRecruiter, res.Session.Role)
	assert.Equal(t, "Ada", res.Session.Name)

	sess, err := uc.Resolve(context.Background(), res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.Session.ID, sess.ID)
}

func TestAuthUsecase_StartSessionValidation(t *testing.T) {
	uc := NewAuthUsecase(repository.NewSessionStore(time.Hour), jwt.NewHMACService("secret", time.Hour))

	_, err := uc.StartSession(context.Background(), SessionInput{Name: "", Role: "student"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.StartSession(context.Background(), SessionInput{Name: "Ada", Role: "admin"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAuthUsecase_ResolveRejects(t *testing.T) {
	svc := jwt.NewHMACService("secret", time.Hour)
	uc := NewAuthUsecase(repository.NewSessionStore(time.Hour), svc)

	_, err := uc.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrUnauthorized)

	// Well-formed token for a session the store never saw.
	token, _, err := svc.GenerateSessionToken(uuid.New(), "Ghost", "", "student")
	require.NoError(t, err)
	_, err = uc.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
