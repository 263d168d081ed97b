package middleware

import (
	"errors"
	"strings"

	"codecraft/internal/domain/user"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxSessionIDKey = "session_id"
	CtxRoleKey      = "role"
	CtxSessionKey   = "session"
)

type SessionMiddleware struct {
	auth usecase.AuthUsecase
}

func NewSessionMiddleware(auth usecase.AuthUsecase) *SessionMiddleware {
	return &SessionMiddleware{auth: auth}
}

func (m *SessionMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := bearerTokenFromHeader(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}

		sess, err := m.auth.Resolve(c.Context(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthorized) {
				return NewAppError(fiber.StatusUnauthorized, "Invalid or expired session", nil, err)
			}
			return NewAppError(fiber.StatusInternalServerError, "", nil, err)
		}

		c.Locals(CtxSessionIDKey, sess.ID)
		c.Locals(CtxRoleKey, sess.Role)
		c.Locals(CtxSessionKey, sess)

		return c.Next()
	}
}

// RequireRole lets the request through only when the session role is one of
// roles. It must run after SessionMiddleware.
func RequireRole(roles ...user.Role) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := c.Locals(CtxRoleKey).(user.Role)
		if !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return NewAppError(fiber.StatusForbidden, "This action requires a different role", nil, nil)
	}
}

// SessionID reads the id stored by SessionMiddleware.
func SessionID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxSessionIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

func bearerTokenFromHeader(authHeader string) (string, bool) {
	authHeader = strings.TrimSpace(authHeader)
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
