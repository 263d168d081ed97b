package handler

import (
	"errors"

	"codecraft/internal/delivery/http/middleware"
	"codecraft/internal/pkg/response"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobRecommendationHandler struct {
	uc usecase.JobRecommendationUsecase
}

func NewJobRecommendationHandler(uc usecase.JobRecommendationUsecase) *JobRecommendationHandler {
	return &JobRecommendationHandler{uc: uc}
}

func (h *JobRecommendationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/jobs")
	grp.Get("/recommendations", h.GetRecommendations)
}

func (h *JobRecommendationHandler) GetRecommendations(c fiber.Ctx) error {
	if _, err := requireSession(c); err != nil {
		return err
	}

	items, err := h.uc.GetRecommendations(c.Context(), parseSkills(c), usecase.JobRecommendationParams{
		Limit:    parseQueryInt(c, "limit", 20),
		Offset:   parseQueryInt(c, "offset", 0),
		MinScore: parseQueryInt(c, "min_score", 0),
	})
	if err != nil {
		return mapJobRecommendationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, items)
}

func mapJobRecommendationUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "min_score must be between 0 and 100", nil, err)
	}
	return mapUsecaseError(err)
}
