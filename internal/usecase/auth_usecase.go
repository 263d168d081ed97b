package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"codecraft/internal/domain/user"
	"codecraft/internal/pkg/jwt"
	"codecraft/internal/pkg/sanitize"

	"github.com/google/uuid"
)

type SessionStarter interface {
	CreateSession(ctx context.Context, name, email string, role user.Role) (user.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (user.Session, error)
}

type SessionInput struct {
	Name  string
	Email string
	Role  string
}

type SessionResult struct {
	Session   user.Session
	Token     string
	ExpiresAt time.Time
}

// AuthUsecase issues mock sessions. There is no credential check: whoever
// asks for a role gets it.
type AuthUsecase interface {
	StartSession(ctx context.Context, in SessionInput) (SessionResult, error)
	Resolve(ctx context.Context, token string) (user.Session, error)
}

type Auth struct {
	store SessionStarter
	jwt   jwt.Service
}

func NewAuthUsecase(store SessionStarter, jwtSvc jwt.Service) *Auth {
	return &Auth{store: store, jwt: jwtSvc}
}

func (u *Auth) StartSession(ctx context.Context, in SessionInput) (SessionResult, error) {
	name := sanitize.Input(in.Name)
	if name == "" {
		return SessionResult{}, ErrInvalidInput
	}
	role, ok := user.ParseRole(in.Role)
	if !ok {
		return SessionResult{}, ErrInvalidInput
	}
	email := strings.TrimSpace(in.Email)

	sess, err := u.store.CreateSession(ctx, name, email, role)
	if err != nil {
		return SessionResult{}, mapStoreError(err)
	}

	token, exp, err := u.jwt.GenerateSessionToken(sess.ID, sess.Name, sess.Email, string(sess.Role))
	if err != nil {
		return SessionResult{}, ErrInternal
	}

	return SessionResult{Session: sess, Token: token, ExpiresAt: exp}, nil
}

// Resolve validates the token and returns the live session it names. A
// valid token whose session was swept is unauthorized.
func (u *Auth) Resolve(ctx context.Context, token string) (user.Session, error) {
	claims, err := u.jwt.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrTokenInvalid) {
			return user.Session{}, ErrUnauthorized
		}
		return user.Session{}, ErrInternal
	}

	sess, err := u.store.GetSession(ctx, claims.SessionID)
	if err != nil {
		return user.Session{}, mapStoreError(err)
	}
	return sess, nil
}
