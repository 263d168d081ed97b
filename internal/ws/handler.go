package ws

import (
	"context"
	"errors"
	"net/http"
	"time"

	"codecraft/internal/domain/roadmap"
	"codecraft/internal/pkg/logger"
	"codecraft/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	EventProgress = "progress"
	EventRoadmap  = "roadmap"
	EventError    = "error"
)

// RoadmapStreamer runs a paced roadmap generation.
type RoadmapStreamer interface {
	Stream(ctx context.Context, goal string, progress roadmap.ProgressFunc) (roadmap.Roadmap, error)
}

type RoadmapRequest struct {
	Goal string `json:"goal"`
}

type RoadmapEvent struct {
	Type     string            `json:"type"`
	Progress *roadmap.Progress `json:"progress,omitempty"`
	Roadmap  *roadmap.Roadmap  `json:"roadmap,omitempty"`
	Message  string            `json:"message,omitempty"`
}

type Handler struct {
	hub     *Hub
	roadmap RoadmapStreamer
	logger  logger.Logger
}

func NewHandler(hub *Hub, rm RoadmapStreamer, log logger.Logger) *Handler {
	if log == nil {
		log = logger.NewNop()
	}
	return &Handler{hub: hub, roadmap: rm, logger: log}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func (h *Handler) RegisterRoutes(app *fiber.App) {
	if app == nil || h == nil {
		return
	}
	app.Get("/ws/jobs", h.HandleJobsWS)
	app.Get("/ws/roadmap", h.HandleRoadmapWS)
}

func (h *Handler) HandleJobsWS(c fiber.Ctx) error {
	if h == nil || h.hub == nil {
		return fiber.ErrServiceUnavailable
	}
	return adaptor.HTTPHandlerFunc(h.ServeJobs)(c)
}

func (h *Handler) HandleRoadmapWS(c fiber.Ctx) error {
	if h == nil || h.roadmap == nil {
		return fiber.ErrServiceUnavailable
	}
	return adaptor.HTTPHandlerFunc(h.ServeRoadmap)(c)
}

// ServeJobs subscribes the connection to the job feed.
func (h *Handler) ServeJobs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("[WS] upgrade failed", zap.String("path", r.URL.Path), zap.Error(err))
		return
	}

	client := NewClient(h.hub, conn)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}

// ServeRoadmap answers each {"goal": ...} frame with progress events followed
// by a single roadmap event. Requests on one connection are handled in order.
func (h *Handler) ServeRoadmap(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("[WS] upgrade failed", zap.String("path", r.URL.Path), zap.Error(err))
		return
	}
	defer func() { _ = conn.Close() }()

	conn.SetReadLimit(maxMessageSize)

	for {
		var req RoadmapRequest
		if err := conn.ReadJSON(&req); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				h.writeEvent(conn, RoadmapEvent{Type: EventError, Message: "invalid request"})
			}
			return
		}

		if !h.streamRoadmap(r.Context(), conn, req.Goal) {
			return
		}
	}
}

// streamRoadmap reports false once the connection is no longer writable.
func (h *Handler) streamRoadmap(parent context.Context, conn *websocket.Conn, goal string) bool {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	alive := true
	rm, err := h.roadmap.Stream(ctx, goal, func(p roadmap.Progress) {
		if !h.writeEvent(conn, RoadmapEvent{Type: EventProgress, Progress: &p}) {
			alive = false
			cancel()
		}
	})
	if !alive {
		return false
	}
	if err != nil {
		msg := "roadmap generation failed"
		if errors.Is(err, usecase.ErrInvalidInput) {
			msg = "goal is required"
		}
		return h.writeEvent(conn, RoadmapEvent{Type: EventError, Message: msg})
	}
	return h.writeEvent(conn, RoadmapEvent{Type: EventRoadmap, Roadmap: &rm})
}

func (h *Handler) writeEvent(conn *websocket.Conn, evt RoadmapEvent) bool {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(evt); err != nil {
		h.logger.Debug("[WS] write failed", zap.String("event", evt.Type), zap.Error(err))
		return false
	}
	return true
}
