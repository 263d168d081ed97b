package handler

import (
	"errors"

	"codecraft/internal/delivery/http/dto"
	"codecraft/internal/delivery/http/middleware"
	"codecraft/internal/domain/mentor"
	"codecraft/internal/pkg/response"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type MentorHandler struct {
	uc usecase.MentorUsecase
}

func NewMentorHandler(uc usecase.MentorUsecase) *MentorHandler {
	return &MentorHandler{uc: uc}
}

func (h *MentorHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/mentors")
	grp.Get("", h.List)
	grp.Get("/bookings", h.ListBookings)
	grp.Post("/chat", h.Chat)
	grp.Post("/bookings/:id/complete", h.Complete)
	grp.Post("/bookings/:id/cancel", h.Cancel)
	grp.Post("/:id/bookings", h.Book)
}

func (h *MentorHandler) List(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.uc.ListMentors(c.Context()))
}

func (h *MentorHandler) Book(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	var req dto.BookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	b, err := h.uc.Book(c.Context(), sid, c.Params("id"), usecase.BookingInput{
		ScheduledAt: req.ScheduledAt,
		Duration:    req.Duration,
		Topic:       req.Topic,
	})
	if err != nil {
		return mapMentorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, b)
}

func (h *MentorHandler) ListBookings(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}

	bs, err := h.uc.ListBookings(c.Context(), sid)
	if err != nil {
		return mapMentorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, bs)
}

func (h *MentorHandler) Complete(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CompleteBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	b, err := h.uc.Complete(c.Context(), sid, id, req.Notes)
	if err != nil {
		return mapMentorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, b)
}

func (h *MentorHandler) Cancel(c fiber.Ctx) error {
	sid, err := requireSession(c)
	if err != nil {
		return err
	}
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Cancel(c.Context(), sid, id); err != nil {
		return mapMentorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *MentorHandler) Chat(c fiber.Ctx) error {
	var req dto.ChatRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	msgs := make([]mentor.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		msgs = append(msgs, mentor.ChatMessage{Role: m.Role, Content: m.Content})
	}

	reply, err := h.uc.Chat(c.Context(), msgs)
	if err != nil {
		return mapMentorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.ChatResponse{Reply: reply})
}

func mapMentorUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Mentor or session not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Topic, time and a 30, 60 or 90 minute duration are required", nil, err)
	default:
		return mapUsecaseError(err)
	}
}
