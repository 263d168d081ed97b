package routes

import (
	"github.com/gofiber/fiber/v3"
)

// RegisterV1 mounts the public routes first; everything registered after the
// session middleware requires a valid session token.
func RegisterV1(r fiber.Router, h Handlers, mw Middlewares) {
	if r == nil {
		return
	}

	if h.Session != nil {
		h.Session.RegisterRoutes(r, mw.SessionLimit)
	}
	if h.Match != nil {
		h.Match.RegisterRoutes(r)
	}
	if h.Roadmap != nil {
		h.Roadmap.RegisterRoutes(r)
	}

	protected := r
	if mw.Session != nil {
		protected = r.Group("", mw.Session)
	}

	if h.JobRecommendation != nil {
		h.JobRecommendation.RegisterRoutes(protected)
	}
	if h.Jobs != nil {
		h.Jobs.RegisterRoutes(protected)
	}
	if h.Applications != nil {
		h.Applications.RegisterRoutes(protected)
	}
	if h.Practice != nil {
		h.Practice.RegisterRoutes(protected)
	}
	if h.Mentors != nil {
		h.Mentors.RegisterRoutes(protected)
	}
	if h.Hackathons != nil {
		h.Hackathons.RegisterRoutes(protected)
	}
	if h.Recruiter != nil {
		h.Recruiter.RegisterRoutes(protected)
	}
	if h.Portfolio != nil {
		h.Portfolio.RegisterRoutes(protected)
	}
}
