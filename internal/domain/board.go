package domain

import (
	"fmt"
	"strings"
)

// Board names one of the three time-windowed leaderboards
type Board string

const (
	BoardDaily   Board = "daily"
	BoardWeekly  Board = "weekly"
	BoardAllTime Board = "allTime"
)

// Board capacities
const (
	DailyCap   = 50
	WeeklyCap  = 50
	AllTimeCap = 100
)

// Boards lists every board in display order
var Boards = []Board{BoardDaily, BoardWeekly, BoardAllTime}

// ParseBoard resolves a board name. Matching is case insensitive and accepts
// "all-time" and "all_time" for the all-time board.
func ParseBoard(name string) (Board, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "daily":
		return BoardDaily, nil
	case "weekly":
		return BoardWeekly, nil
	case "alltime", "all-time", "all_time":
		return BoardAllTime, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBoard, name)
}

// Cap returns the maximum number of entries kept on the board
func (b Board) Cap() int {
	switch b {
	case BoardDaily:
		return DailyCap
	case BoardWeekly:
		return WeeklyCap
	case BoardAllTime:
		return AllTimeCap
	}
	return 0
}

// BoardSet holds the three ranked boards. Each is sorted by score descending.
type BoardSet struct {
	Daily   []ScoreEntry `json:"daily"`
	Weekly  []ScoreEntry `json:"weekly"`
	AllTime []ScoreEntry `json:"allTime"`
}

// NewBoardSet returns a board set with all boards empty
func NewBoardSet() BoardSet {
	return BoardSet{
		Daily:   []ScoreEntry{},
		Weekly:  []ScoreEntry{},
		AllTime: []ScoreEntry{},
	}
}

// Entries returns the entries of the named board, or nil for an unknown board
func (s *BoardSet) Entries(b Board) []ScoreEntry {
	switch b {
	case BoardDaily:
		return s.Daily
	case BoardWeekly:
		return s.Weekly
	case BoardAllTime:
		return s.AllTime
	}
	return nil
}

// SetEntries replaces the entries of the named board
func (s *BoardSet) SetEntries(b Board, entries []ScoreEntry) {
	switch b {
	case BoardDaily:
		s.Daily = entries
	case BoardWeekly:
		s.Weekly = entries
	case BoardAllTime:
		s.AllTime = entries
	}
}

// Clone returns a deep copy of the board set
func (s BoardSet) Clone() BoardSet {
	return BoardSet{
		Daily:   append([]ScoreEntry{}, s.Daily...),
		Weekly:  append([]ScoreEntry{}, s.Weekly...),
		AllTime: append([]ScoreEntry{}, s.AllTime...),
	}
}
