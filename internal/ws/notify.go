package ws

import (
	"encoding/json"
	"time"

	"codecraft/internal/domain/job"
	"codecraft/internal/pkg/logger"
)

const EventJobPosted = "job_posted"

type JobPostedEvent struct {
	Type      string  `json:"type"`
	Job       job.Job `json:"job"`
	Timestamp string  `json:"timestamp"`
}

// Notifier turns job board changes into hub broadcasts.
type Notifier struct {
	hub *Hub
	log logger.Logger
	now func() time.Time
}

func NewNotifier(hub *Hub, log logger.Logger) *Notifier {
	if log == nil {
		log = logger.NewNop()
	}
	return &Notifier{hub: hub, log: log, now: time.Now}
}

func (n *Notifier) NotifyJobPosted(j job.Job) {
	if n == nil || n.hub == nil {
		return
	}

	b, err := json.Marshal(JobPostedEvent{
		Type:      EventJobPosted,
		Job:       j,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		n.log.Error("[WS] encode job_posted failed", err)
		return
	}
	n.hub.Broadcast(b)
}
