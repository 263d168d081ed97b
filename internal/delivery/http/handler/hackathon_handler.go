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

type HackathonHandler struct {
	uc usecase.HackathonUsecase
}

func NewHackathonHandler(uc usecase.HackathonUsecase) *HackathonHandler {
	return &HackathonHandler{uc: uc}
}

func (h *HackathonHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/hackathons")
	grp.Get("", h.List)
	grp.Post("", middleware.RequireRole(user.RoleOrganizer), h.Create)
	grp.Get("/registrations", h.Registrations)
	grp.Post("/:id/registrations", h.Register)
	grp.Delete("/:id/registrations", h.Cancel)
}

func (h *HackathonHandler) List(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	out, err := h.uc.List(c.Context(), sid)
	if err != nil {
		return mapHackathonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *HackathonHandler) Create(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	var req dto.CreateHackathonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	created, err := h.uc.Create(c.Context(), sid, usecase.HackathonInput{
		Title:       req.Title,
		Organizer:   req.Organizer,
		Date:        req.Date,
		Prizes:      req.Prizes,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		return mapHackathonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *HackathonHandler) Registrations(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	regs, err := h.uc.Registrations(c.Context(), sid)
	if err != nil {
		return mapHackathonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, regs)
}

func (h *HackathonHandler) Register(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	var req dto.RegisterHackathonRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reg, err := h.uc.Register(c.Context(), sid, c.Params("id"), usecase.RegistrationInput{
		TeamName:    req.TeamName,
		TeamMembers: req.TeamMembers,
	})
	if err != nil {
		return mapHackathonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, reg)
}

func (h *HackathonHandler) Cancel(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	if err := h.uc.Cancel(c.Context(), sid, c.Params("id")); err != nil {
		return mapHackathonUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapHackathonUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Hackathon not found", nil, err)
	}
	return mapUsecaseError(err)
}
