package handler

import (
	"errors"

	"codecraft/internal/delivery/http/dto"
	"codecraft/internal/delivery/http/middleware"
	"codecraft/internal/domain/user"
	"codecraft/internal/pkg/response"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	list  usecase.JobListUsecase
	match usecase.MatchingUsecase
	apps  usecase.ApplicationUsecase
}

func NewJobsHandler(list usecase.JobListUsecase, match usecase.MatchingUsecase, apps usecase.ApplicationUsecase) *JobsHandler {
	return &JobsHandler{list: list, match: match, apps: apps}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("", h.ListJobs)
	grp.Post("", middleware.RequireRole(user.RoleRecruiter), h.PostJob)
	grp.Get("/trending-skills", h.TrendingSkills)
	grp.Get("/:job_id/match", h.MatchJob)
	grp.Get("/:job_id/application", h.ApplicationStatus)
	grp.Post("/:job_id/applications", h.Apply)
}

func (h *JobsHandler) ListJobs(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	items, err := h.list.ListJobs(c.Context(), sid, usecase.JobListParams{
		Query:  c.Query("q"),
		Filter: c.Query("filter"),
		Sort:   c.Query("sort"),
		Skills: parseSkills(c),
	})
	if err != nil {
		return mapJobsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func (h *JobsHandler) PostJob(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	var req dto.PostJobRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.list.PostJob(c.Context(), sid, usecase.PostJobInput{
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Type:           req.Type,
		Salary:         req.Salary,
		RequiredSkills: req.RequiredSkills,
		Tags:           req.Tags,
	})
	if err != nil {
		return mapJobsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *JobsHandler) TrendingSkills(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.list.TrendingSkills(c.Context()))
}

func (h *JobsHandler) MatchJob(c fiber.Ctx) error {
	m, err := h.match.ScoreJob(c.Context(), c.Params("job_id"), parseSkills(c))
	if err != nil {
		return mapJobsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, m)
}

func (h *JobsHandler) ApplicationStatus(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	app, err := h.apps.Status(c.Context(), sid, c.Params("job_id"))
	if err != nil {
		return mapJobsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"applied":     app != nil,
		"application": app,
	})
}

func (h *JobsHandler) Apply(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	var req dto.ApplyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.apps.Apply(c.Context(), sid, c.Params("job_id"), usecase.ApplyInput{
		ResumeURL:   req.ResumeURL,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		return mapJobsUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, app)
}

func mapJobsUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job query", nil, err)
	default:
		return mapUsecaseError(err)
	}
}
