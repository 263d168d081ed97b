package app

import (
	"context"
	"time"

	"codecraft/internal/catalog"
	"codecraft/internal/config"
	"codecraft/internal/infrastructure/cache"
	"codecraft/internal/infrastructure/github"
	"codecraft/internal/infrastructure/llm"
	"codecraft/internal/infrastructure/practice"
	"codecraft/internal/pkg/jwt"
	"codecraft/internal/pkg/logger"
	"codecraft/internal/pkg/ratelimit"
	"codecraft/internal/repository"
	"codecraft/internal/ws"

	"go.uber.org/zap"
)

const sweepInterval = time.Minute

// Container owns the process-wide state: the session store, the job board,
// the outbound clients and the websocket hub.
type Container struct {
	Config   config.Config
	Logger   logger.Logger
	Cache    *cache.Redis
	Sessions *repository.SessionStore
	Jobs     *repository.MemoryJobRepository
	Limiter  *ratelimit.Limiter
	JWT      jwt.Service
	Groq     *llm.GroqClient
	Practice practice.Client
	GitHub   github.Client
	Hub      *ws.Hub
}

func NewContainer(cfg config.Config, log logger.Logger) *Container {
	if log == nil {
		log = logger.NewNop()
	}

	return &Container{
		Config:   cfg,
		Logger:   log,
		Cache:    cache.NewRedis(cfg.Redis, log),
		Sessions: repository.NewSessionStore(cfg.Session.TTL),
		Jobs:     repository.NewMemoryJobRepository(catalog.JobsAt(time.Now())),
		Limiter:  ratelimit.NewLimiter(cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window),
		JWT:      jwt.NewHMACService(cfg.Session.Secret, cfg.Session.TTL),
		Groq:     llm.NewGroqClient(cfg.Groq, log),
		Practice: practice.NewClient(practice.DefaultEndpoints(), cfg.Practice.Timeout, log),
		GitHub:   github.NewClient(cfg.GitHub, log),
		Hub:      ws.NewHub(log),
	}
}

// Start launches the hub and the idle-state sweeper. Both stop with ctx.
func (c *Container) Start(ctx context.Context) {
	go c.Hub.Run(ctx)
	go c.sweep(ctx)
}

func (c *Container) sweep(ctx context.Context) {
	t := time.NewTicker(sweepInterval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			sessions := c.Sessions.Sweep()
			limits := c.Limiter.Sweep()
			if sessions > 0 || limits > 0 {
				c.Logger.Debug("[Sweep] evicted idle state",
					zap.Int("sessions", sessions),
					zap.Int("rate_limit_keys", limits),
				)
			}
		}
	}
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
