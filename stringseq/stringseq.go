// Package stringseq adapts suffixtree.SuffixTree to the common case of
// indexing Go strings: every suffix tree requires each inserted word to
// end in a sentinel character unique to that insertion, so every suffix
// terminates at an explicit leaf (spec.md §4.2's termination-character
// rule). For []rune words that sentinel is tedious for a caller to mint
// and guarantee-unique by hand; SuffixTree here does it automatically,
// drawing from the Unicode Private Use Area so it can never collide
// with ordinary caller text.
package stringseq

import (
	"github.com/hashicorp/go-uuid"

	"github.com/Zubayear/radixforge/internal/logging"
	"github.com/Zubayear/radixforge/internal/options"
	"github.com/Zubayear/radixforge/radixtree"
	"github.com/Zubayear/radixforge/suffixtree"
)

// puaStart and puaEnd bound the Unicode Private Use Area (U+E000 to
// U+F8FF): code points the Unicode standard guarantees will never be
// assigned a character, so a sentinel drawn from this range can never
// collide with caller-supplied text.
const (
	puaStart = 0xE000
	puaEnd   = 0xF8FF
	puaSpan  = puaEnd - puaStart + 1
)

type config[D any, N any] struct {
	logger    logging.Logger
	processor radixtree.WordItemProcessor[rune, D, N]
}

// Option configures a SuffixTree at construction time.
type Option[D any, N any] = options.Option[config[D, N]]

// WithProcessor sets the WordItemProcessor invoked for every branch an
// AddWord call touches. Defaults to radixtree.NullProcessor.
func WithProcessor[D any, N any](p radixtree.WordItemProcessor[rune, D, N]) Option[D, N] {
	return func(c *config[D, N]) { c.processor = p }
}

// WithLogger sets the Logger used for diagnostic messages.
func WithLogger[D any, N any](l logging.Logger) Option[D, N] {
	return func(c *config[D, N]) { c.logger = l }
}

// SuffixTree wraps a suffixtree.SuffixTree[rune, D, N], relieving the
// caller of minting a per-word termination sentinel by hand.
type SuffixTree[D any, N any] struct {
	inner  *suffixtree.SuffixTree[rune, D, N]
	used   map[rune]struct{}
	logger logging.Logger
}

// NewSuffixTree creates an empty SuffixTree. newNode constructs a fresh
// node payload for every branch the tree creates.
func NewSuffixTree[D any, N any](newNode func() N, opts ...Option[D, N]) *SuffixTree[D, N] {
	cfg := &config[D, N]{logger: logging.Noop, processor: radixtree.NullProcessor[rune, D, N]{}}
	options.Apply(cfg, opts...)
	inner := suffixtree.New[rune, D, N](newNode,
		suffixtree.WithProcessor[rune, D, N](cfg.processor),
		suffixtree.WithLogger[rune, D, N](cfg.logger),
	)
	return &SuffixTree[D, N]{
		inner:  inner,
		used:   make(map[rune]struct{}),
		logger: cfg.logger,
	}
}

// Tree exposes the underlying RadixTree for read-only operations.
func (s *SuffixTree[D, N]) Tree() *radixtree.RadixTree[rune, N] { return s.inner.Tree() }

// Clear drops every indexed suffix and forgets every sentinel minted so far.
func (s *SuffixTree[D, N]) Clear() {
	s.inner.Clear()
	s.used = make(map[rune]struct{})
}

// AddWord mints a sentinel rune unique within the tree's lifetime,
// appends it to word, and indexes every suffix of the result via the
// underlying SuffixTree.AddWord. It returns the minted sentinel so
// callers can recognize it later (e.g. when trimming a SearchResult's
// matched text).
func (s *SuffixTree[D, N]) AddWord(word string, item D) (sentinel rune, err error) {
	sentinel, err = s.nextSentinel()
	if err != nil {
		return 0, err
	}
	runes := append([]rune(word), sentinel)
	s.inner.AddWord(runes, item)
	s.used[sentinel] = struct{}{}
	return sentinel, nil
}

// GetMatchingStatistics delegates to the underlying SuffixTree.
func (s *SuffixTree[D, N]) GetMatchingStatistics(q string) []suffixtree.MatchEntry[rune, N] {
	return s.inner.GetMatchingStatistics([]rune(q))
}

// nextSentinel draws a fresh UUIDv4 per attempt, offsets its first hex
// digit into the Private Use Area, and retries on a (rare, at this
// range's size) collision against an already-minted sentinel, up to
// puaSpan attempts — the point at which the whole Private Use Area
// would be exhausted.
func (s *SuffixTree[D, N]) nextSentinel() (rune, error) {
	for attempt := 0; attempt < puaSpan; attempt++ {
		id, err := uuid.GenerateUUID()
		if err != nil {
			return 0, err
		}
		offset := hexDigitValue(id[0])
		candidate := rune(puaStart + (offset+attempt)%puaSpan)
		if _, taken := s.used[candidate]; !taken {
			if attempt > 0 {
				s.logger.Debugf("stringseq: nextSentinel: resolved after %d collision(s)", attempt)
			}
			return candidate, nil
		}
	}
	s.logger.Warnf("stringseq: nextSentinel: Private Use Area exhausted after %d attempts", puaSpan)
	return 0, &radixtree.InvalidArgumentError{Op: "AddWord", Reason: "Private Use Area sentinel space exhausted"}
}

func hexDigitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return 0
	}
}
