package handler

import (
	"context"
	"time"

	"codecraft/internal/domain"
	"codecraft/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type SessionCounter interface {
	Len() int
}

type HealthHandler struct {
	startedAt time.Time
	redis     Pinger
	sessions  SessionCounter
	now       func() time.Time
}

func NewHealthHandler(redis Pinger, sessions SessionCounter) *HealthHandler {
	return &HealthHandler{startedAt: time.Now(), redis: redis, sessions: sessions, now: time.Now}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/health", h.Health)
	app.Get("/api/health", h.Health)
}

// Health always answers 200; a missing Redis only degrades caching.
func (h *HealthHandler) Health(c fiber.Ctx) error {
	now := h.now()
	st := domain.HealthStatus{
		Status:    "ok",
		Timestamp: now.UTC(),
		Uptime:    now.Sub(h.startedAt).Seconds(),
	}

	if h.redis != nil {
		ctx, cancel := context.WithTimeout(c.Context(), time.Second)
		st.RedisHealthy = h.redis.Ping(ctx) == nil
		cancel()
	}
	if h.sessions != nil {
		st.Sessions = h.sessions.Len()
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
