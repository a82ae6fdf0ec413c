package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type RankingCompletedEvent struct {
	Type      string    `json:"type"`
	JobID     uuid.UUID `json:"job_id"`
	Scored    int       `json:"scored"`
	Failed    int       `json:"failed"`
	Unscored  int       `json:"unscored"`
	Timestamp string    `json:"timestamp"`
}

// Notifier pushes ranking-run completions to connected dashboards.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) NotifyRanked(jobID uuid.UUID, scored, failed, unscored int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := RankingCompletedEvent{
		Type:      "ranking_completed",
		JobID:     jobID,
		Scored:    scored,
		Failed:    failed,
		Unscored:  unscored,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Broadcast(b)
}
