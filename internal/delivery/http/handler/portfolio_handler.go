package handler

import (
	"errors"

	"codecraft/internal/delivery/http/dto"
	"codecraft/internal/delivery/http/middleware"
	"codecraft/internal/pkg/response"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PortfolioHandler struct {
	uc usecase.PortfolioUsecase
}

func NewPortfolioHandler(uc usecase.PortfolioUsecase) *PortfolioHandler {
	return &PortfolioHandler{uc: uc}
}

func (h *PortfolioHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/portfolio/github/:username", h.GitHub)

	grp := r.Group("/projects")
	grp.Get("", h.ListProjects)
	grp.Post("", h.SubmitProject)
}

// GitHub answers 200 with a null user when GitHub has no such account or
// could not be reached.
func (h *PortfolioHandler) GitHub(c fiber.Ctx) error {
	out, err := h.uc.GitHub(c.Context(), c.Params("username"))
	if err != nil {
		return mapPortfolioUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *PortfolioHandler) SubmitProject(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	var req dto.ProjectRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.uc.SubmitProject(c.Context(), sid, usecase.ProjectInput{
		RepoURL:     req.RepoURL,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return mapPortfolioUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, p)
}

func (h *PortfolioHandler) ListProjects(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	ps, err := h.uc.ListProjects(c.Context(), sid)
	if err != nil {
		return mapPortfolioUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, ps)
}

func mapPortfolioUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid GitHub username or repository URL", nil, err)
	}
	return mapUsecaseError(err)
}
