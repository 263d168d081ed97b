package handler

import (
	"errors"

	"codecraft/internal/delivery/http/middleware"
	"codecraft/internal/pkg/response"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type PracticeHandler struct {
	practice usecase.PracticeUsecase
	match    usecase.MatchingUsecase
}

func NewPracticeHandler(practice usecase.PracticeUsecase, match usecase.MatchingUsecase) *PracticeHandler {
	return &PracticeHandler{practice: practice, match: match}
}

func (h *PracticeHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/practice")
	grp.Get("/skills", h.Skills)
	grp.Get("/companies", h.Companies)
	grp.Get("/companies/:company", h.CompanyGap)
	grp.Get("/resources/:skill", h.Resources)
	grp.Get("/progress/:platform/:username", h.Progress)
}

func (h *PracticeHandler) Skills(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.practice.Skills(c.Context()))
}

func (h *PracticeHandler) Companies(c fiber.Ctx) error {
	out, err := h.match.CompaniesBySkills(c.Context(), parseSkills(c))
	if err != nil {
		return mapPracticeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *PracticeHandler) CompanyGap(c fiber.Ctx) error {
	gap, err := h.match.CompanyGap(c.Context(), c.Params("company"), parseSkills(c))
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
		}
		return mapPracticeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, gap)
}

func (h *PracticeHandler) Resources(c fiber.Ctx) error {
	res, err := h.practice.Resources(c.Context(), c.Params("skill"))
	if err != nil {
		return mapPracticeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

// Progress answers 200 with null data when the platform has nothing for the
// user or could not be reached.
func (h *PracticeHandler) Progress(c fiber.Ctx) error {
	p, err := h.practice.Progress(c.Context(), c.Params("platform"), c.Params("username"))
	if err != nil {
		return mapPracticeUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

func mapPracticeUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Unknown platform or empty username", nil, err)
	}
	return mapUsecaseError(err)
}
