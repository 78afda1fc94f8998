package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"brainhub/internal/domain"
	"brainhub/internal/storage"
)

const (
	// DefaultStorageKey is the store key holding the serialized board set
	DefaultStorageKey = "leaderboards"

	// WeeklyWindow is how far back the weekly board reaches
	WeeklyWindow = 7 * 24 * time.Hour

	// eventTopSize is the number of daily entries attached to score events
	eventTopSize = 5
)

// LeaderboardOption configures a Leaderboard
type LeaderboardOption func(*Leaderboard)

// WithClock sets the time source
func WithClock(now func() time.Time) LeaderboardOption {
	return func(l *Leaderboard) {
		if now != nil {
			l.now = now
		}
	}
}

// WithLocation sets the location used to derive calendar dates
func WithLocation(loc *time.Location) LeaderboardOption {
	return func(l *Leaderboard) {
		if loc != nil {
			l.loc = loc
		}
	}
}

// WithStorageKey sets the key the board set is persisted under
func WithStorageKey(key string) LeaderboardOption {
	return func(l *Leaderboard) {
		if key != "" {
			l.storageKey = key
		}
	}
}

// WithStrictInvariants makes invariant violations panic instead of returning an error
func WithStrictInvariants(strict bool) LeaderboardOption {
	return func(l *Leaderboard) {
		l.strict = strict
	}
}

// Leaderboard ranks scores on the daily, weekly and all-time boards and
// persists them to a Store. It lives for the whole process and is safe for
// concurrent use.
type Leaderboard struct {
	boards     domain.BoardSet
	mu         sync.RWMutex
	store      storage.Store
	storageKey string
	now        func() time.Time
	loc        *time.Location
	strict     bool
	logger     *slog.Logger

	subscribers map[int]func(*domain.ScoreEvent)
	nextSubID   int
	subMu       sync.RWMutex
}

// NewLeaderboard loads the persisted boards and prunes stale entries.
// Storage problems never fail construction: the boards start empty instead.
func NewLeaderboard(ctx context.Context, store storage.Store, logger *slog.Logger, opts ...LeaderboardOption) *Leaderboard {
	l := &Leaderboard{
		boards:      domain.NewBoardSet(),
		store:       store,
		storageKey:  DefaultStorageKey,
		now:         time.Now,
		loc:         time.Local,
		logger:      logger,
		subscribers: make(map[int]func(*domain.ScoreEvent)),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.load(ctx)
	l.CleanupOldEntries(ctx)

	return l
}

// AddScore records a score on all three boards and returns its 1-based rank
// on the daily board.
func (l *Leaderboard) AddScore(ctx context.Context, game, playerName string, score int, difficulty string) (int, error) {
	l.mu.Lock()

	entry := domain.NewScoreEntry(game, playerName, score, difficulty, l.now(), l.loc)
	for _, board := range domain.Boards {
		entries := append(l.boards.Entries(board), entry)
		sortByScore(entries)
		if len(entries) > board.Cap() {
			entries = entries[:board.Cap()]
		}
		l.boards.SetEntries(board, entries)
	}

	l.save(ctx)

	rank := indexOf(l.boards.Daily, entry) + 1
	top := topEntries(l.boards.Daily, eventTopSize, "")
	var err error
	if rank == 0 {
		err = l.rankError(entry)
	}

	l.mu.Unlock()

	if err != nil && !errors.Is(err, domain.ErrNotRanked) {
		l.logger.Error("leaderboard invariant violated",
			"game", entry.Game,
			"player", entry.PlayerName,
			"score", entry.Score,
			"error", err,
		)
		if l.strict {
			panic(err)
		}
		return 0, err
	}

	l.logger.Info("score added",
		"game", entry.Game,
		"player", entry.PlayerName,
		"score", entry.Score,
		"rank", rank,
	)
	l.publish(domain.NewScoreEvent(entry, rank, top))

	return rank, err
}

// rankError explains why entry is missing from the daily board. Being cut by
// the board cap is expected; anything else means the insert pipeline is broken.
func (l *Leaderboard) rankError(entry domain.ScoreEntry) error {
	daily := l.boards.Daily
	if len(daily) >= domain.DailyCap && entry.Score <= daily[len(daily)-1].Score {
		return fmt.Errorf("%w: %d scores of at least %d today", domain.ErrNotRanked, len(daily), entry.Score)
	}
	return fmt.Errorf("%w: %s/%s/%d", domain.ErrRankInvariant, entry.PlayerName, entry.Game, entry.Timestamp)
}

// GetRank returns the 1-based position of entry on board, or 0 if it is absent
func (l *Leaderboard) GetRank(entry domain.ScoreEntry, board domain.Board) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return indexOf(l.boards.Entries(board), entry) + 1
}

// GetTopPlayers returns up to limit leading entries of board. A non-empty game
// restricts the result to that game.
func (l *Leaderboard) GetTopPlayers(board domain.Board, limit int, game string) []domain.ScoreEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return topEntries(l.boards.Entries(board), limit, game)
}

// GetAllGames returns the distinct games on the all-time board, sorted
func (l *Leaderboard) GetAllGames() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool)
	games := make([]string, 0)
	for _, e := range l.boards.AllTime {
		if !seen[e.Game] {
			seen[e.Game] = true
			games = append(games, e.Game)
		}
	}
	sort.Strings(games)
	return games
}

// Snapshot returns a copy of all three boards
func (l *Leaderboard) Snapshot() domain.BoardSet {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.boards.Clone()
}

// CleanupOldEntries drops daily entries not dated today and weekly entries
// older than the weekly window, then persists. The all-time board is kept.
func (l *Leaderboard) CleanupOldEntries(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	today := now.In(l.loc).Format(domain.DateLayout)
	weekAgo := now.Add(-WeeklyWindow).UnixMilli()

	daily := make([]domain.ScoreEntry, 0, len(l.boards.Daily))
	for _, e := range l.boards.Daily {
		if e.DateIn(l.loc) == today {
			daily = append(daily, e)
		}
	}

	weekly := make([]domain.ScoreEntry, 0, len(l.boards.Weekly))
	for _, e := range l.boards.Weekly {
		if e.Timestamp > weekAgo {
			weekly = append(weekly, e)
		}
	}

	if pruned := len(l.boards.Daily) - len(daily) + len(l.boards.Weekly) - len(weekly); pruned > 0 {
		l.logger.Info("pruned stale leaderboard entries", "count", pruned)
	}

	l.boards.Daily = daily
	l.boards.Weekly = weekly
	l.save(ctx)
}

// RunCleanup calls CleanupOldEntries every interval until ctx is done.
// Construction already prunes once; long-running hosts use this so the daily
// board rolls over at midnight without a restart.
func (l *Leaderboard) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.CleanupOldEntries(ctx)
		}
	}
}

// Subscribe registers fn to receive an event after every submission.
// The returned function removes the subscription.
func (l *Leaderboard) Subscribe(fn func(*domain.ScoreEvent)) func() {
	l.subMu.Lock()
	defer l.subMu.Unlock()

	id := l.nextSubID
	l.nextSubID++
	l.subscribers[id] = fn

	return func() {
		l.subMu.Lock()
		defer l.subMu.Unlock()
		delete(l.subscribers, id)
	}
}

func (l *Leaderboard) publish(event *domain.ScoreEvent) {
	l.subMu.RLock()
	defer l.subMu.RUnlock()
	for _, fn := range l.subscribers {
		fn(event)
	}
}

// load reads the persisted boards. Must be called before the leaderboard is shared.
func (l *Leaderboard) load(ctx context.Context) {
	data, ok, err := l.store.Get(ctx, l.storageKey)
	if err != nil {
		l.logger.Warn("failed to load leaderboards, starting empty", "error", err)
		return
	}
	if !ok {
		return
	}

	boards, err := decodeBoards(data)
	if err != nil {
		l.logger.Warn("discarding stored leaderboards", "error", err)
		return
	}
	for _, board := range domain.Boards {
		entries := boards.Entries(board)
		sortByScore(entries)
		if len(entries) > board.Cap() {
			entries = entries[:board.Cap()]
		}
		l.boards.SetEntries(board, entries)
	}
}

// save persists the boards. Caller must hold the write lock. Failures are logged only.
// save persists the boards. The write outlives ctx cancellation so an accepted
// score is never held only in memory.
func (l *Leaderboard) save(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	data, err := encodeBoards(l.boards)
	if err != nil {
		l.logger.Error("failed to encode leaderboards", "error", err)
		return
	}
	if err := l.store.Set(ctx, l.storageKey, data); err != nil {
		l.logger.Error("failed to save leaderboards", "error", err)
	}
}

// sortByScore orders entries by score descending, keeping insertion order among ties
func sortByScore(entries []domain.ScoreEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
}

func indexOf(entries []domain.ScoreEntry, entry domain.ScoreEntry) int {
	for i, e := range entries {
		if e.Matches(entry) {
			return i
		}
	}
	return -1
}

func topEntries(entries []domain.ScoreEntry, limit int, game string) []domain.ScoreEntry {
	top := make([]domain.ScoreEntry, 0)
	if limit <= 0 {
		return top
	}
	for _, e := range entries {
		if game != "" && e.Game != game {
			continue
		}
		top = append(top, e)
		if len(top) == limit {
			break
		}
	}
	return top
}
