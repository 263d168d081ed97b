package routes

import (
	"codecraft/internal/delivery/http/handler"
	"codecraft/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Handlers struct {
	Health            *handler.HealthHandler
	Session           *handler.SessionHandler
	Match             *handler.MatchHandler
	Roadmap           *handler.RoadmapHandler
	Jobs              *handler.JobsHandler
	JobRecommendation *handler.JobRecommendationHandler
	Applications      *handler.ApplicationHandler
	Practice          *handler.PracticeHandler
	Mentors           *handler.MentorHandler
	Hackathons        *handler.HackathonHandler
	Recruiter         *handler.RecruiterHandler
	Portfolio         *handler.PortfolioHandler
	WS                *ws.Handler
}

type Middlewares struct {
	// Session resolves the bearer token; every protected route runs it.
	Session fiber.Handler
	// SessionLimit guards session creation. Optional.
	SessionLimit fiber.Handler
}

type Registry struct {
	handlers    Handlers
	middlewares Middlewares
}

func NewRegistry(h Handlers, mw Middlewares) *Registry {
	return &Registry{handlers: h, middlewares: mw}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerWS(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.handlers.Health != nil {
		r.handlers.Health.RegisterRoutes(app)
	}
}

func (r *Registry) registerWS(app *fiber.App) {
	if r.handlers.WS != nil {
		r.handlers.WS.RegisterRoutes(app)
	}
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), r.handlers, r.middlewares)
}
