package ws

import (
	"encoding/json"
	"time"

	"connectus/internal/domain/application"
	"connectus/internal/domain/job"

	"github.com/google/uuid"
)

type JobPostedEvent struct {
	Type      string    `json:"type"`
	JobID     uuid.UUID `json:"job_id"`
	Title     string    `json:"title"`
	Skills    []string  `json:"skills"`
	Timestamp string    `json:"timestamp"`
}

type ApplicationReceivedEvent struct {
	Type          string    `json:"type"`
	ApplicationID uuid.UUID `json:"application_id"`
	JobID         uuid.UUID `json:"job_id"`
	JobTitle      string    `json:"job_title"`
	Timestamp     string    `json:"timestamp"`
}

// Notifier turns domain events into hub messages. It satisfies the usecase
// notifier interfaces so the usecases never see websocket types.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) JobPosted(j job.Job) {
	if n == nil || n.hub == nil {
		return
	}
	evt := JobPostedEvent{
		Type:      "job_posted",
		JobID:     j.ID,
		Title:     j.Title,
		Skills:    j.Skills,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}

func (n *Notifier) ApplicationReceived(ownerID uuid.UUID, a application.Application, jobTitle string) {
	if n == nil || n.hub == nil {
		return
	}
	evt := ApplicationReceivedEvent{
		Type:          "application_received",
		ApplicationID: a.ID,
		JobID:         a.JobID,
		JobTitle:      jobTitle,
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.SendToUser(ownerID, b)
}
