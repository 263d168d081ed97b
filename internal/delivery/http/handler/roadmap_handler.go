package handler

import (
	"errors"

	"codecraft/internal/delivery/http/dto"
	"codecraft/internal/delivery/http/middleware"
	"codecraft/internal/pkg/response"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RoadmapHandler struct {
	uc usecase.RoadmapUsecase
}

func NewRoadmapHandler(uc usecase.RoadmapUsecase) *RoadmapHandler {
	return &RoadmapHandler{uc: uc}
}

func (h *RoadmapHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/roadmaps")
	grp.Post("", h.Generate)
	grp.Get("/classify", h.Classify)
}

func (h *RoadmapHandler) Generate(c fiber.Ctx) error {
	var req dto.RoadmapRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rm, err := h.uc.Generate(c.Context(), req.Goal)
	if err != nil {
		return mapRoadmapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rm)
}

func (h *RoadmapHandler) Classify(c fiber.Ctx) error {
	res, err := h.uc.Classify(c.Context(), c.Query("goal"))
	if err != nil {
		return mapRoadmapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func mapRoadmapUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Goal is required", nil, err)
	}
	return mapUsecaseError(err)
}
