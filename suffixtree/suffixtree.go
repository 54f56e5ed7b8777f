// Package suffixtree implements Ukkonen's online suffix-tree
// construction as an insertion policy over radixtree: AddWord indexes
// every suffix of one word in amortized O(len(word)), using the Node
// abstraction's try-advance/follow-link/add-branch primitives to avoid
// re-walking from the root on each extension.
package suffixtree

import (
	"github.com/Zubayear/radixforge/internal/logging"
	"github.com/Zubayear/radixforge/internal/options"
	"github.com/Zubayear/radixforge/radixtree"
)

type config[C comparable, D any, N any] struct {
	logger    logging.Logger
	processor radixtree.WordItemProcessor[C, D, N]
}

// Option configures a SuffixTree at construction time.
type Option[C comparable, D any, N any] = options.Option[config[C, D, N]]

// WithProcessor sets the WordItemProcessor invoked for every branch the
// insertion touches. Defaults to NullProcessor.
func WithProcessor[C comparable, D any, N any](p radixtree.WordItemProcessor[C, D, N]) Option[C, D, N] {
	return func(c *config[C, D, N]) { c.processor = p }
}

// WithLogger sets the Logger used for diagnostic messages.
func WithLogger[C comparable, D any, N any](l logging.Logger) Option[C, D, N] {
	return func(c *config[C, D, N]) { c.logger = l }
}

// SuffixTree indexes every suffix of every inserted word over a radix
// tree via Ukkonen's algorithm. Each inserted word must end in a
// sentinel unique to that insertion so every suffix terminates at an
// explicit leaf; see the stringseq package for a helper that generates
// one automatically for string/rune trees.
type SuffixTree[C comparable, D any, N any] struct {
	tree    *radixtree.RadixTree[C, N]
	newNode func() N
	cfg     *config[C, D, N]
}

// New creates an empty SuffixTree. newNode constructs a fresh node
// payload for every branch the tree creates.
func New[C comparable, D any, N any](newNode func() N, opts ...Option[C, D, N]) *SuffixTree[C, D, N] {
	cfg := &config[C, D, N]{logger: logging.Noop, processor: radixtree.NullProcessor[C, D, N]{}}
	options.Apply(cfg, opts...)
	return &SuffixTree[C, D, N]{
		tree:    radixtree.New[C, N](newNode),
		newNode: newNode,
		cfg:     cfg,
	}
}

// Clear drops every indexed suffix.
func (st *SuffixTree[C, D, N]) Clear() { st.tree.Clear() }

// Tree exposes the underlying RadixTree for read-only operations
// (LongestCommonPrefix, ExactSearch, ApproximateSearch, traversals).
func (st *SuffixTree[C, D, N]) Tree() *radixtree.RadixTree[C, N] { return st.tree }

// AddWord indexes every suffix of word, associating each with item via
// the configured processor, in amortized O(len(word)).
//
// Every internal node materialized by a split needs its own suffix
// link resolved to the position exactly one character shorter. That
// position is not generally known at the moment of the split: it only
// becomes explicit once either another split lands on it later in the
// same phase, or the active point's own fast-scan (Node.FollowLink)
// reaches it directly. pendingSplit tracks the most recently
// materialized node still awaiting that resolution; resolve sets it
// the instant the answer becomes available, mirroring the classical
// "last_new_node" bookkeeping of Ukkonen's algorithm.
func (st *SuffixTree[C, D, N]) AddWord(word []C, item D) {
	root := st.tree.Root()
	pos := Node[C, N]{Branch: root, Offset: 0}
	height := 0

	for i := 0; i < len(word); i++ {
		c := word[i]
		var prevLeaf, pendingSplit *radixtree.Branch[C, N]

		resolve := func(target *radixtree.Branch[C, N]) {
			if pendingSplit != nil {
				pendingSplit.SetSuffixLink(target)
				pendingSplit = nil
			}
		}

		for {
			floor := pos.GetFloor().Branch
			next, ok := pos.TryAdvance(c)
			if ok {
				resolve(floor)
				pos = next
				height++
				if i == len(word)-1 {
					st.markSuffixes(pos, word, item)
				}
				break
			}

			atRoot := pos.Branch.IsRoot() && pos.Offset == 0
			// Computed against pos (the active point as it stood
			// before AddBranch below may split pos.Branch in place,
			// which would shift its start/length and invalidate this
			// fast-scan's starting frame).
			linked, hasLink := pos.FollowLink()

			leaf := radixtree.NewLeaf[C, N](word, i, len(word)-i, i-height, st.newNode())
			materialized, split, err := pos.AddBranch(leaf, st.newNode())
			if err != nil {
				panic(err)
			}
			st.cfg.processor.OnWordAdd(word, item, leaf)
			leaf.SetSuffixLink(root)
			if prevLeaf != nil {
				prevLeaf.SetSuffixLink(leaf)
			}
			prevLeaf = leaf

			resolve(materialized)
			if split {
				pendingSplit = materialized
			}

			if atRoot {
				pos = linked
				break
			}
			if !hasLink {
				st.cfg.logger.Warnf("suffixtree: AddWord: active point at depth %d has no suffix link; restarting from root", height)
				pos = Node[C, N]{Branch: root, Offset: 0}
				height = 0
				resolve(root)
				break
			}
			pos = linked
			height--
		}
	}
}

// markSuffixes walks the suffix-link chain from pos's nearest explicit
// floor toward the root, invoking the processor for each visited
// branch. Reached only while processing a word's final character, so
// every suffix of the word (not just the longest) is notified once.
func (st *SuffixTree[C, D, N]) markSuffixes(pos Node[C, N], word []C, item D) {
	node := pos.GetFloor().Branch
	for {
		st.cfg.processor.OnWordAdd(word, item, node)
		if node.IsRoot() {
			return
		}
		link := node.SuffixLink()
		if link == nil || link == node {
			return
		}
		node = link
	}
}

// MatchEntry is one record of GetMatchingStatistics: the longest
// prefix of q[Index:] present anywhere in the tree, the node reached,
// and the nearest explicit nodes bounding that position.
type MatchEntry[C comparable, N any] struct {
	Index       int
	MatchLength int
	Position    Node[C, N]
	Floor       Node[C, N]
	Ceil        Node[C, N]
}

// GetMatchingStatistics computes, for every suffix q[i:] of the query,
// the length of its longest prefix present anywhere in the tree, in
// total O(len(q)) by reusing each step's ending position via
// FollowLink instead of re-walking from the root.
func (st *SuffixTree[C, D, N]) GetMatchingStatistics(q []C) []MatchEntry[C, N] {
	root := st.tree.Root()
	entries := make([]MatchEntry[C, N], len(q))
	pos := Node[C, N]{Branch: root, Offset: 0}
	matchLen := 0

	for i := 0; i < len(q); i++ {
		for matchLen < len(q)-i {
			next, ok := pos.TryAdvance(q[i+matchLen])
			if !ok {
				break
			}
			pos = next
			matchLen++
		}
		entries[i] = MatchEntry[C, N]{
			Index:       i,
			MatchLength: matchLen,
			Position:    pos,
			Floor:       pos.GetFloor(),
			Ceil:        pos.GetCeil(),
		}

		if pos.Branch.IsRoot() && pos.Offset == 0 {
			matchLen = 0
			continue
		}
		linked, ok := pos.FollowLink()
		if !ok {
			pos = Node[C, N]{Branch: root, Offset: 0}
			matchLen = 0
			continue
		}
		pos = linked
		matchLen--
		if matchLen < 0 {
			matchLen = 0
		}
	}
	return entries
}
