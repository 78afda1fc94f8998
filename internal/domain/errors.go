package domain

import "errors"

// Domain errors
var (
	ErrUnknownBoard  = errors.New("unknown leaderboard")
	ErrGameRequired  = errors.New("game is required")
	ErrNegativeScore = errors.New("score cannot be negative")
	ErrNotRanked     = errors.New("score did not place on the daily board")
	ErrRankInvariant = errors.New("submitted entry missing from daily board")
	ErrEmptyCorpus   = errors.New("vocabulary corpus is empty")
)
