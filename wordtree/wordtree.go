// Package wordtree implements the whole-word insertion policy over
// radixtree: each AddWord call indexes one complete sequence, O(|w|),
// splitting an existing branch at the point of divergence exactly as
// the module's teacher trie grows a new node per character — except a
// WordTree shares the unmatched suffix of an existing label instead of
// walking it character by character.
package wordtree

import (
	"github.com/Zubayear/radixforge/editdistance"
	"github.com/Zubayear/radixforge/internal/logging"
	"github.com/Zubayear/radixforge/internal/options"
	"github.com/Zubayear/radixforge/radixtree"
)

type config[C comparable, D any, N any] struct {
	logger    logging.Logger
	processor radixtree.WordItemProcessor[C, D, N]
}

// Option configures a WordTree at construction time.
type Option[C comparable, D any, N any] = options.Option[config[C, D, N]]

// WithProcessor sets the WordItemProcessor invoked on every AddWord.
// Defaults to NullProcessor.
func WithProcessor[C comparable, D any, N any](p radixtree.WordItemProcessor[C, D, N]) Option[C, D, N] {
	return func(c *config[C, D, N]) { c.processor = p }
}

// WithLogger sets the Logger used for diagnostic messages.
func WithLogger[C comparable, D any, N any](l logging.Logger) Option[C, D, N] {
	return func(c *config[C, D, N]) { c.logger = l }
}

// WordTree indexes whole sequences over a radix tree: AddWord inserts
// (or, for a duplicate, re-notifies the processor about) one complete
// word in O(|w|).
type WordTree[C comparable, D any, N any] struct {
	tree    *radixtree.RadixTree[C, N]
	newNode func() N
	cfg     *config[C, D, N]
}

// New creates an empty WordTree. newNode constructs a fresh node
// payload for every branch the tree creates.
func New[C comparable, D any, N any](newNode func() N, opts ...Option[C, D, N]) *WordTree[C, D, N] {
	cfg := &config[C, D, N]{logger: logging.Noop, processor: radixtree.NullProcessor[C, D, N]{}}
	options.Apply(cfg, opts...)
	return &WordTree[C, D, N]{
		tree:    radixtree.New[C, N](newNode),
		newNode: newNode,
		cfg:     cfg,
	}
}

// Clear drops every indexed word.
func (wt *WordTree[C, D, N]) Clear() { wt.tree.Clear() }

// Tree exposes the underlying RadixTree for read-only operations
// (ExactSearch, ExactPrefixSearch, ApproximateSearch, traversals).
func (wt *WordTree[C, D, N]) Tree() *radixtree.RadixTree[C, N] { return wt.tree }

// descend walks from root matching word character by character,
// sharing whole branch labels where possible. It returns the branch
// reached, how far into that branch's label the match extends, and
// how many characters of word were consumed in total.
func descend[C comparable, N any](root *radixtree.Branch[C, N], word []C) (branch *radixtree.Branch[C, N], offset, consumed int) {
	current := root
	idx := 0
	for idx < len(word) {
		child := current.Child(word[idx])
		if child == nil {
			return current, current.Length(), idx
		}
		j := 0
		for j < child.Length() && idx < len(word) && child.CharAt(j) == word[idx] {
			j++
			idx++
		}
		if j < child.Length() {
			return child, j, idx
		}
		current = child
	}
	return current, current.Length(), idx
}

// AddWord indexes word as a whole sequence, associating it with item.
// A duplicate insertion does not grow the tree; it only re-invokes the
// processor against the branch the word already resolves to, so a
// StorageProcessor-backed tree accumulates every item ever associated
// with that word.
func (wt *WordTree[C, D, N]) AddWord(word []C, item D) {
	branch, offset, consumed := descend(wt.tree.Root(), word)
	if consumed == len(word) {
		wt.cfg.logger.Debugf("wordtree: AddWord: word already indexed, re-notifying processor")
		wt.cfg.processor.OnWordAdd(word, item, branch)
		return
	}
	parent := branch
	if offset < branch.Length() {
		parent = branch.Split(offset, wt.newNode())
	}
	leaf := radixtree.NewLeaf[C, N](word, consumed, len(word)-consumed, 0, wt.newNode())
	if err := parent.AddChild(leaf); err != nil {
		panic(err)
	}
	wt.cfg.processor.OnWordAdd(word, item, leaf)
}

// ExactSearch returns a result only if word was fully consumed.
func (wt *WordTree[C, D, N]) ExactSearch(word []C) (radixtree.SearchResult[C, N], bool) {
	return wt.tree.ExactSearch(word)
}

// ExactPrefixSearch returns one result per leaf reachable from the
// branch where word ends.
func (wt *WordTree[C, D, N]) ExactPrefixSearch(word []C) []radixtree.SearchResult[C, N] {
	return wt.tree.ExactPrefixSearch(word)
}

// ApproximateSearch returns every indexed leaf within maxDistance of
// word under distanceFn, sorted by ascending edit distance.
func (wt *WordTree[C, D, N]) ApproximateSearch(word []C, maxDistance float64, distanceFn editdistance.DistanceFunc[C, float64]) []radixtree.SearchResult[C, N] {
	return wt.tree.ApproximateSearch(word, maxDistance, distanceFn)
}
