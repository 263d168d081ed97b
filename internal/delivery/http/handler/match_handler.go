package handler

import (
	"codecraft/internal/delivery/http/dto"
	"codecraft/internal/pkg/response"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MatchHandler struct {
	uc usecase.MatchingUsecase
}

func NewMatchHandler(uc usecase.MatchingUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/match/score", h.Score)
}

func (h *MatchHandler) Score(c fiber.Ctx) error {
	var req dto.MatchScoreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	res := h.uc.Score(c.Context(), req.Required, req.Skills)
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}
