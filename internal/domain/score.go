package domain

import (
	"strings"
	"time"
)

// AnonymousPlayer is used when a submission has no player name
const AnonymousPlayer = "Anonymous"

// DateLayout is the layout of ScoreEntry.Date
const DateLayout = "2006-01-02"

// ScoreEntry is a single submitted score. Entries are never modified after creation.
type ScoreEntry struct {
	Game       string `json:"game"`
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
	Difficulty string `json:"difficulty,omitempty"`
	Timestamp  int64  `json:"timestamp"`
	Date       string `json:"date"`
}

// NewScoreEntry creates an entry stamped with the given time. The date is
// derived from the time in loc.
func NewScoreEntry(game, playerName string, score int, difficulty string, at time.Time, loc *time.Location) ScoreEntry {
	if loc == nil {
		loc = time.Local
	}
	return ScoreEntry{
		Game:       game,
		PlayerName: NormalizePlayerName(playerName),
		Score:      score,
		Difficulty: strings.TrimSpace(difficulty),
		Timestamp:  at.UnixMilli(),
		Date:       at.In(loc).Format(DateLayout),
	}
}

// NormalizePlayerName trims the name and substitutes AnonymousPlayer for blanks
func NormalizePlayerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return AnonymousPlayer
	}
	return name
}

// Time returns the entry timestamp as a time.Time
func (e ScoreEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// DateIn returns the calendar date of the entry timestamp in loc
func (e ScoreEntry) DateIn(loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return e.Time().In(loc).Format(DateLayout)
}

// Matches reports whether other identifies the same submission.
// Identity is (playerName, game, score, timestamp).
func (e ScoreEntry) Matches(other ScoreEntry) bool {
	return e.PlayerName == other.PlayerName &&
		e.Game == other.Game &&
		e.Score == other.Score &&
		e.Timestamp == other.Timestamp
}

// ScoreSubmission is the input for a score submission
type ScoreSubmission struct {
	Game       string `json:"game"`
	PlayerName string `json:"playerName"`
	Score      int    `json:"score"`
	Difficulty string `json:"difficulty,omitempty"`
}

// Validate checks the submission and returns the reason it is rejected, if any
func (s ScoreSubmission) Validate() error {
	if strings.TrimSpace(s.Game) == "" {
		return ErrGameRequired
	}
	if s.Score < 0 {
		return ErrNegativeScore
	}
	return nil
}
