package app

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"brainhub/internal/domain"
)

// DefaultFetchTimeout bounds the initial corpus fetch
const DefaultFetchTimeout = 10 * time.Second

// Corpus origins reported by VocabularyLoader.Origin
const (
	OriginPending  = "pending"
	OriginSource   = "source"
	OriginFallback = "fallback"
)

// CorpusSource fetches a vocabulary corpus
type CorpusSource interface {
	Fetch(ctx context.Context) (domain.Corpus, error)
	Name() string
}

// VocabularyOption configures a VocabularyLoader
type VocabularyOption func(*VocabularyLoader)

// WithRand sets the random source used for sampling
func WithRand(rng *rand.Rand) VocabularyOption {
	return func(v *VocabularyLoader) {
		if rng != nil {
			v.rng = rng
		}
	}
}

// WithFetchTimeout bounds how long the corpus fetch may take
func WithFetchTimeout(d time.Duration) VocabularyOption {
	return func(v *VocabularyLoader) {
		if d > 0 {
			v.fetchTimeout = d
		}
	}
}

// VocabularyLoader serves words grouped by difficulty tier. The corpus is
// fetched once in the background; until then the loader reports no words.
type VocabularyLoader struct {
	corpus       domain.Corpus
	origin       string
	mu           sync.RWMutex
	loaded       chan struct{}
	fetchTimeout time.Duration
	logger       *slog.Logger

	rng   *rand.Rand
	rngMu sync.Mutex
}

// NewVocabularyLoader starts loading the corpus from source. Any fetch
// failure installs FallbackVocabulary, so the loader always ends up loaded.
func NewVocabularyLoader(ctx context.Context, source CorpusSource, logger *slog.Logger, opts ...VocabularyOption) *VocabularyLoader {
	v := &VocabularyLoader{
		origin:       OriginPending,
		loaded:       make(chan struct{}),
		fetchTimeout: DefaultFetchTimeout,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(v)
	}
	if v.rng == nil {
		v.rng = newRand()
	}

	go v.load(ctx, source)

	return v
}

func (v *VocabularyLoader) load(ctx context.Context, source CorpusSource) {
	corpus, err := v.fetch(ctx, source)
	origin := OriginSource
	if err != nil {
		v.logger.Warn("vocabulary unavailable, using sample words", "error", err)
		corpus = FallbackVocabulary()
		origin = OriginFallback
	} else {
		v.logger.Info("vocabulary loaded",
			"source", source.Name(),
			"tiers", len(corpus.Tiers),
			"words", corpus.Len(),
		)
	}

	v.mu.Lock()
	v.corpus = corpus
	v.origin = origin
	v.mu.Unlock()

	close(v.loaded)
}

func (v *VocabularyLoader) fetch(ctx context.Context, source CorpusSource) (domain.Corpus, error) {
	if source == nil {
		return domain.Corpus{}, fmt.Errorf("no vocabulary source configured")
	}

	ctx, cancel := context.WithTimeout(ctx, v.fetchTimeout)
	defer cancel()

	corpus, err := source.Fetch(ctx)
	if err != nil {
		return domain.Corpus{}, fmt.Errorf("fetch %s: %w", source.Name(), err)
	}
	if corpus.IsEmpty() {
		return domain.Corpus{}, fmt.Errorf("fetch %s: %w", source.Name(), domain.ErrEmptyCorpus)
	}
	return corpus, nil
}

// WaitForLoad blocks until the corpus is loaded or ctx is done. It returns
// immediately if the corpus is already loaded.
func (v *VocabularyLoader) WaitForLoad(ctx context.Context) error {
	select {
	case <-v.loaded:
		return nil
	default:
	}

	select {
	case <-v.loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Loaded reports whether the corpus has been loaded
func (v *VocabularyLoader) Loaded() bool {
	select {
	case <-v.loaded:
		return true
	default:
		return false
	}
}

// Origin reports where the corpus came from: pending, source or fallback
func (v *VocabularyLoader) Origin() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.origin
}

// GetWords returns up to count words of the difficulty tier in random order.
// The result is empty if the corpus is not loaded or the tier does not exist.
func (v *VocabularyLoader) GetWords(difficulty string, count int) []domain.WordEntry {
	v.mu.RLock()
	tier, ok := v.corpus.Tier(difficulty)
	v.mu.RUnlock()

	if !ok || count <= 0 {
		return []domain.WordEntry{}
	}

	words := append([]domain.WordEntry{}, tier...)
	v.shuffle(words)
	if len(words) > count {
		words = words[:count]
	}
	return words
}

// GetAllWords returns every word in the corpus, tiers in corpus order
func (v *VocabularyLoader) GetAllWords() []domain.WordEntry {
	v.mu.RLock()
	defer v.mu.RUnlock()

	all := v.corpus.All()
	if all == nil {
		return []domain.WordEntry{}
	}
	return all
}

// GetRandomWord picks a word from the difficulty tier. When difficulty is
// empty or names a tier that does not exist, the pick is made from the whole
// corpus. The bool is false when there are no words to pick from.
func (v *VocabularyLoader) GetRandomWord(difficulty string) (domain.WordEntry, bool) {
	v.mu.RLock()
	words, ok := v.corpus.Tier(difficulty)
	if difficulty == "" || !ok {
		words = v.corpus.All()
	}
	v.mu.RUnlock()

	if len(words) == 0 {
		return domain.WordEntry{}, false
	}
	return words[v.intN(len(words))], true
}

// GetDifficulties returns the tier names, empty until the corpus is loaded
func (v *VocabularyLoader) GetDifficulties() []string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.corpus.Names()
}

func (v *VocabularyLoader) shuffle(words []domain.WordEntry) {
	v.rngMu.Lock()
	defer v.rngMu.Unlock()
	v.rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
}

func (v *VocabularyLoader) intN(n int) int {
	v.rngMu.Lock()
	defer v.rngMu.Unlock()
	return v.rng.IntN(n)
}

// newRand seeds a generator from crypto/rand, falling back to the clock
func newRand() *rand.Rand {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		now := uint64(time.Now().UnixNano())
		return rand.New(rand.NewPCG(now, now>>1))
	}
	return rand.New(rand.NewPCG(
		binary.LittleEndian.Uint64(b[:8]),
		binary.LittleEndian.Uint64(b[8:]),
	))
}
