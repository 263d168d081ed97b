package app

import (
	"context"
	"fmt"
	"strings"

	"codecraft/internal/delivery/http/handler"
	"codecraft/internal/delivery/http/middleware"
	"codecraft/internal/delivery/http/routes"
	"codecraft/internal/domain/roadmap"
	"codecraft/internal/usecase"
	"codecraft/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})

	registerGlobalMiddleware(f, c)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}
}

// Bootstrap wires the container into a Fiber app and starts its background
// loops. The returned cleanup releases the cache connection.
func Bootstrap(ctx context.Context, c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}
	app := New(c)
	c.Start(ctx)
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware(c.Logger)
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())

	if origin := strings.TrimSpace(c.Config.App.FrontendURL); origin != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: []string{origin},
			AllowHeaders: []string{fiber.HeaderAuthorization, fiber.HeaderContentType, middleware.HeaderRequestID},
		}))
	}
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	log := c.Logger

	authUC := usecase.NewAuthUsecase(c.Sessions, c.JWT)
	matchUC := usecase.NewMatchingUsecase(c.Jobs, c.Cache, log)
	recommendUC := usecase.NewJobRecommendationUsecase(c.Jobs, c.Cache, log)
	jobListUC := usecase.NewJobListUsecase(c.Jobs, c.Sessions, c.Cache, ws.NewNotifier(c.Hub, log), log)
	appsUC := usecase.NewApplicationUsecase(c.Jobs, c.Sessions)
	mentorUC := usecase.NewMentorUsecase(c.Sessions, c.Groq, log)
	hackathonUC := usecase.NewHackathonUsecase(c.Sessions)
	roadmapUC := usecase.NewRoadmapUsecase(roadmap.NewGenerator(c.Config.Roadmap.StepDelay), log)
	practiceUC := usecase.NewPracticeUsecase(c.Practice, log)
	portfolioUC := usecase.NewPortfolioUsecase(c.GitHub, c.Sessions, log)

	h := routes.Handlers{
		Health:            handler.NewHealthHandler(c.Cache, c.Sessions),
		Session:           handler.NewSessionHandler(authUC),
		Match:             handler.NewMatchHandler(matchUC),
		Roadmap:           handler.NewRoadmapHandler(roadmapUC),
		Jobs:              handler.NewJobsHandler(jobListUC, matchUC, appsUC),
		JobRecommendation: handler.NewJobRecommendationHandler(recommendUC),
		Applications:      handler.NewApplicationHandler(appsUC),
		Practice:          handler.NewPracticeHandler(practiceUC, matchUC),
		Mentors:           handler.NewMentorHandler(mentorUC),
		Hackathons:        handler.NewHackathonHandler(hackathonUC),
		Recruiter:         handler.NewRecruiterHandler(matchUC),
		Portfolio:         handler.NewPortfolioHandler(portfolioUC),
		WS:                ws.NewHandler(c.Hub, roadmapUC, log),
	}
	mw := routes.Middlewares{
		Session:      middleware.NewSessionMiddleware(authUC).Middleware(),
		SessionLimit: middleware.NewRateLimitMiddleware(c.Limiter, "session", log).Middleware(),
	}

	routes.NewRegistry(h, mw).Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
