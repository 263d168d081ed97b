package handler

import (
	"errors"

	"codecraft/internal/delivery/http/middleware"
	"codecraft/internal/domain/user"
	"codecraft/internal/pkg/response"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RecruiterHandler struct {
	uc usecase.MatchingUsecase
}

func NewRecruiterHandler(uc usecase.MatchingUsecase) *RecruiterHandler {
	return &RecruiterHandler{uc: uc}
}

func (h *RecruiterHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/recruiter", middleware.RequireRole(user.RoleRecruiter))
	grp.Get("/candidates", h.Candidates)
}

func (h *RecruiterHandler) Candidates(c fiber.Ctx) error {
	out, err := h.uc.RankCandidates(c.Context(), parseSkills(c))
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "At least one skill is required", nil, err)
		}
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
