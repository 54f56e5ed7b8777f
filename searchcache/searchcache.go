// Package searchcache memoizes an expensive, idempotent lookup — the
// module's two such operations are RadixTree.ApproximateSearch and
// KernelSuffixTree.ComputeKernel — keyed by a hash of the query word,
// bounded by an LRU eviction policy.
//
// A Cache never observes tree mutation: per the module's "no operation
// suspends" design, AddWord and Clear do not notify any cache built in
// front of them. A caller that mutates a tree behind a Cache must call
// Invalidate itself, or read stale results.
package searchcache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Zubayear/radixforge/internal/logging"
	"github.com/Zubayear/radixforge/internal/maphashkey"
	"github.com/Zubayear/radixforge/internal/options"
)

// HashWord folds a word into a single cache key, O(1) per element.
type HashWord[C comparable] func(word []C) uint64

type config struct {
	logger logging.Logger
}

// Option configures a Cache at construction time.
type Option = options.Option[config]

// WithLogger sets the Logger used for diagnostic messages. Defaults to
// a no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Cache memoizes compute(word) results for up to size distinct words,
// evicting least-recently-used entries beyond that bound.
type Cache[C comparable, V any] struct {
	hash   HashWord[C]
	inner  *lru.Cache[uint64, V]
	logger logging.Logger
}

// New creates a Cache holding at most size entries. A nil hash falls
// back to maphashkey's default hasher for any comparable C.
func New[C comparable, V any](size int, hash HashWord[C], opts ...Option) *Cache[C, V] {
	if hash == nil {
		hash = maphashkey.WordHasher[C]()
	}
	cfg := &config{logger: logging.Noop}
	options.Apply(cfg, opts...)
	inner, err := lru.New[uint64, V](size)
	if err != nil {
		// golang-lru only errors on a non-positive size; a library
		// constructor cannot recover a sane value for the caller, so
		// the same programmer-error-panics rule the rest of the
		// module applies to malformed constructor arguments applies
		// here too.
		panic(err)
	}
	return &Cache[C, V]{hash: hash, inner: inner, logger: cfg.logger}
}

// GetOrCompute returns the cached result for word, computing and
// storing it via compute on a miss.
func (c *Cache[C, V]) GetOrCompute(word []C, compute func() V) V {
	key := c.hash(word)
	if v, ok := c.inner.Get(key); ok {
		c.logger.Debugf("searchcache: hit for key %d", key)
		return v
	}
	c.logger.Debugf("searchcache: miss for key %d, computing", key)
	v := compute()
	c.inner.Add(key, v)
	return v
}

// Invalidate drops every cached entry. Call this after any call that
// mutates the tree this cache fronts.
func (c *Cache[C, V]) Invalidate() {
	c.logger.Debugf("searchcache: invalidating %d entries", c.inner.Len())
	c.inner.Purge()
}
