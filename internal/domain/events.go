package domain

import "time"

// EventType represents the type of leaderboard event
type EventType string

const (
	EventScoreAdded EventType = "SCORE_ADDED"
)

// ScoreEvent is published to leaderboard subscribers after a submission
type ScoreEvent struct {
	Type      EventType    `json:"type"`
	Entry     ScoreEntry   `json:"entry"`
	Rank      int          `json:"rank"`
	Ranked    bool         `json:"ranked"`
	Top       []ScoreEntry `json:"top"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewScoreEvent creates a new score event
func NewScoreEvent(entry ScoreEntry, rank int, top []ScoreEntry) *ScoreEvent {
	return &ScoreEvent{
		Type:      EventScoreAdded,
		Entry:     entry,
		Rank:      rank,
		Ranked:    rank > 0,
		Top:       top,
		Timestamp: time.Now(),
	}
}
