package handler

import (
	"errors"

	"codecraft/internal/delivery/http/dto"
	"codecraft/internal/delivery/http/middleware"
	"codecraft/internal/pkg/response"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type SessionHandler struct {
	uc usecase.AuthUsecase
}

func NewSessionHandler(uc usecase.AuthUsecase) *SessionHandler {
	return &SessionHandler{uc: uc}
}

// RegisterRoutes mounts POST /session, behind limit when it is non-nil.
func (h *SessionHandler) RegisterRoutes(r fiber.Router, limit fiber.Handler) {
	if r == nil {
		return
	}
	if limit != nil {
		r.Post("/session", limit, h.StartSession)
		return
	}
	r.Post("/session", h.StartSession)
}

func (h *SessionHandler) StartSession(c fiber.Ctx) error {
	var req dto.SessionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	res, err := h.uc.StartSession(c.Context(), usecase.SessionInput{Name: req.Name, Email: req.Email, Role: req.Role})
	if err != nil {
		return mapSessionUsecaseError(err)
	}

	return response.Success(c, fiber.StatusCreated, response.MessageCreated, dto.SessionResponse{
		Session:   res.Session,
		Token:     res.Token,
		ExpiresAt: res.ExpiresAt,
	})
}

func mapSessionUsecaseError(err error) error {
	if errors.Is(err, usecase.ErrInvalidInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Name and a valid role are required", nil, err)
	}
	return mapUsecaseError(err)
}
