package handler

import (
	"errors"

	"codecraft/internal/delivery/http/dto"
	"codecraft/internal/delivery/http/middleware"
	"codecraft/internal/pkg/response"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/applications")
	grp.Get("", h.List)
	grp.Patch("/:id", h.UpdateStatus)
	grp.Delete("/:id", h.Withdraw)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	apps, err := h.uc.List(c.Context(), sid)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, apps)
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateApplicationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	app, err := h.uc.UpdateStatus(c.Context(), sid, id, req.Status, req.Notes)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, app)
}

func (h *ApplicationHandler) Withdraw(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Withdraw(c.Context(), sid, id); err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapApplicationUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrNotFound) {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	}
	return mapUsecaseError(err)
}
