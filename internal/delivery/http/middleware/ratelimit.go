package middleware

import (
	"strconv"
	"time"

	"codecraft/internal/pkg/logger"
	"codecraft/internal/pkg/ratelimit"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const rejectLogInterval = 10 * time.Second

type RateLimitMiddleware struct {
	limiter *ratelimit.Limiter
	scope   string
	logger  logger.Logger

	// at most one rejection line per rejectLogInterval
	rejectLog *rate.Sometimes
}

// NewRateLimitMiddleware limits requests per client IP. scope namespaces the
// keys so one limiter can guard several routes independently.
func NewRateLimitMiddleware(limiter *ratelimit.Limiter, scope string, log logger.Logger) *RateLimitMiddleware {
	if log == nil {
		log = logger.NewNop()
	}
	return &RateLimitMiddleware{
		limiter:   limiter,
		scope:     scope,
		logger:    log,
		rejectLog: &rate.Sometimes{Interval: rejectLogInterval},
	}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if m == nil || m.limiter == nil {
			return c.Next()
		}

		info := m.limiter.Allow(m.scope + ":" + c.IP())
		if info.Allowed {
			return c.Next()
		}

		retry := info.RetryAfterSeconds()
		c.Set(fiber.HeaderRetryAfter, strconv.Itoa(retry))
		ip := c.IP()
		m.rejectLog.Do(func() {
			m.logger.Warn("rate limited",
				zap.String("scope", m.scope),
				zap.String("ip", ip),
				zap.Int("retry_after", retry),
			)
		})
		return NewAppError(fiber.StatusTooManyRequests, "Too many attempts, try again later", map[string]int{"retry_after": retry}, nil)
	}
}
