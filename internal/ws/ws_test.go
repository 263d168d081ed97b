package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"codecraft/internal/domain/job"
	"codecraft/internal/domain/roadmap"
	"codecraft/internal/usecase"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func TestJobFeed_BroadcastsJobPosted(t *testing.T) {
	hub, _ := startHub(t)
	h := NewHandler(hub, nil, nil)
	srv := httptest.NewServer(http.HandlerFunc(h.ServeJobs))
	defer srv.Close()

	a := dial(t, srv)
	b := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 2 }, 2*time.Second, 10*time.Millisecond)

	NewNotifier(hub, nil).NotifyJobPosted(job.Job{ID: "42", Title: "Go Engineer"})

	for _, conn := range []*websocket.Conn{a, b} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, msg, err := conn.ReadMessage()
		require.NoError(t, err)

		var evt JobPostedEvent
		require.NoError(t, json.Unmarshal(msg, &evt))
		assert.Equal(t, EventJobPosted, evt.Type)
		assert.Equal(t, "42", evt.Job.ID)
		assert.NotEmpty(t, evt.Timestamp)
	}
}

func TestJobFeed_ClientDisconnectUnregisters(t *testing.T) {
	hub, _ := startHub(t)
	h := NewHandler(hub, nil, nil)
	srv := httptest.NewServer(http.HandlerFunc(h.ServeJobs))
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	hub, cancel := startHub(t)
	h := NewHandler(hub, nil, nil)
	srv := httptest.NewServer(http.HandlerFunc(h.ServeJobs))
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return hub.ClientCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	cancel()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNoStatusReceived, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure))
	assert.Equal(t, 0, hub.ClientCount())
}

func TestNotifier_NilHub(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNotifier(nil, nil).NotifyJobPosted(job.Job{ID: "1"})
	})
}

func readEvent(t *testing.T, conn *websocket.Conn) RoadmapEvent {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var evt RoadmapEvent
	require.NoError(t, conn.ReadJSON(&evt))
	return evt
}

func TestRoadmapStream(t *testing.T) {
	h := NewHandler(nil, usecase.NewRoadmapUsecase(roadmap.NewGenerator(0), nil), nil)
	srv := httptest.NewServer(http.HandlerFunc(h.ServeRoadmap))
	defer srv.Close()

	conn := dial(t, srv)
	require.NoError(t, conn.WriteJSON(RoadmapRequest{Goal: "I want to become a frontend developer"}))

	for i := range roadmap.GenerationSteps {
		evt := readEvent(t, conn)
		require.Equal(t, EventProgress, evt.Type)
		require.NotNil(t, evt.Progress)
		assert.Equal(t, i+1, evt.Progress.Step)
		assert.Equal(t, roadmap.GenerationSteps[i], evt.Progress.Message)
	}

	done := readEvent(t, conn)
	require.Equal(t, EventRoadmap, done.Type)
	require.NotNil(t, done.Roadmap)
	assert.Equal(t, roadmap.CategoryFrontend, done.Roadmap.Category)

	require.NoError(t, conn.WriteJSON(RoadmapRequest{Goal: "   "}))
	errEvt := readEvent(t, conn)
	assert.Equal(t, EventError, errEvt.Type)
	assert.Equal(t, "goal is required", errEvt.Message)
}
