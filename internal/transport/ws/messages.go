package ws

import (
	"encoding/json"
	"time"

	"brainhub/internal/domain"
)

// MessageType represents the type of WebSocket message
type MessageType string

// Client → Server message types
const (
	MsgGetLeaderboard MessageType = "get_leaderboard"
	MsgPing           MessageType = "ping"
)

// Server → Client message types
const (
	MsgConnected   MessageType = "connected"
	MsgError       MessageType = "error"
	MsgLeaderboard MessageType = "leaderboard"
	MsgScoreAdded  MessageType = "score_added"
	MsgPong        MessageType = "pong"
)

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ServerMessage represents a message from server to client
type ServerMessage struct {
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload,omitempty"`
	Timestamp string      `json:"timestamp"`
}

// NewServerMessage creates a new server message with current timestamp
func NewServerMessage(msgType MessageType, payload interface{}) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// Client message payloads

// GetLeaderboardPayload is the payload for get_leaderboard message
type GetLeaderboardPayload struct {
	Board string `json:"board"`
	Limit int    `json:"limit"`
	Game  string `json:"game,omitempty"`
}

// Server message payloads

// ConnectedPayload is the payload for connected message
type ConnectedPayload struct {
	ClientID string `json:"clientId"`
}

// LeaderboardPayload is the payload for leaderboard message
type LeaderboardPayload struct {
	Board   domain.Board        `json:"board"`
	Game    string              `json:"game,omitempty"`
	Entries []domain.ScoreEntry `json:"entries"`
}

// ScoreAddedPayload is the payload for score_added message
type ScoreAddedPayload struct {
	Entry  domain.ScoreEntry   `json:"entry"`
	Rank   int                 `json:"rank"`
	Ranked bool                `json:"ranked"`
	Board  domain.Board        `json:"board"`
	Top    []domain.ScoreEntry `json:"top"`
}

// ErrorPayload is the payload for error message
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	ErrCodeInvalidMessage = "INVALID_MESSAGE"
	ErrCodeUnknownBoard   = "UNKNOWN_BOARD"
)

// defaultLimit is used when get_leaderboard omits a limit
const defaultLimit = 5
