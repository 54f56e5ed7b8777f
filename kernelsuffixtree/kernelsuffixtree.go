// Package kernelsuffixtree evaluates the all-substrings string kernel
// (Vishwanathan & Smola 2004) over a union of inserted sequences:
//
//	K(q, T) = Σ_{s ∈ T} weight(s) · Σ_{u substring of q} Σ_{u occurs in s} w(|u|)
//
// in O(|q|) once the tree has been preprocessed, by building on
// suffixtree's Ukkonen construction and matching statistics.
package kernelsuffixtree

import (
	"sync"

	"github.com/samber/lo"

	"github.com/Zubayear/radixforge/internal/logging"
	"github.com/Zubayear/radixforge/internal/options"
	"github.com/Zubayear/radixforge/radixtree"
	"github.com/Zubayear/radixforge/suffixtree"
)

// WeightedNode is the node-payload capability KernelSuffixTree requires:
// AddWeight accumulates a leaf's weight into its descendant_leaves_sum
// at insertion time (see radixtree.KernelProcessor); the remaining
// accessors are read/written by Preprocess.
type WeightedNode interface {
	radixtree.WeightAccumulator
	DescendantLeavesSum() float64
	SetDescendantLeavesSum(v float64)
	Weight() float64
	SetWeight(v float64)
}

type config[C comparable, D radixtree.Weighted, N WeightedNode] struct {
	logger    logging.Logger
	processor radixtree.WordItemProcessor[C, D, N]
}

// Option configures a KernelSuffixTree at construction time.
type Option[C comparable, D radixtree.Weighted, N WeightedNode] = options.Option[config[C, D, N]]

// WithProcessor overrides the default KernelProcessor. Rarely needed:
// ComputeKernel's formula assumes descendant_leaves_sum is accumulated
// exactly as KernelProcessor does.
func WithProcessor[C comparable, D radixtree.Weighted, N WeightedNode](p radixtree.WordItemProcessor[C, D, N]) Option[C, D, N] {
	return func(c *config[C, D, N]) { c.processor = p }
}

// WithLogger sets the Logger used for diagnostic messages.
func WithLogger[C comparable, D radixtree.Weighted, N WeightedNode](l logging.Logger) Option[C, D, N] {
	return func(c *config[C, D, N]) { c.logger = l }
}

// KernelSuffixTree indexes a union of sequences for all-substrings
// kernel evaluation. Preprocessing is idempotent and guarded by a
// mutex; AddWord and Clear invalidate it.
type KernelSuffixTree[C comparable, D radixtree.Weighted, N WeightedNode] struct {
	inner    *suffixtree.SuffixTree[C, D, N]
	weightFn WeightFunction
	logger   logging.Logger

	mu           sync.Mutex
	preprocessed bool
}

// New creates an empty KernelSuffixTree weighted by weightFn. newNode
// constructs a fresh node payload for every branch the tree creates.
func New[C comparable, D radixtree.Weighted, N WeightedNode](weightFn WeightFunction, newNode func() N, opts ...Option[C, D, N]) *KernelSuffixTree[C, D, N] {
	cfg := &config[C, D, N]{logger: logging.Noop, processor: radixtree.KernelProcessor[C, D, N]{}}
	options.Apply(cfg, opts...)
	inner := suffixtree.New[C, D, N](newNode,
		suffixtree.WithProcessor[C, D, N](cfg.processor),
		suffixtree.WithLogger[C, D, N](cfg.logger),
	)
	return &KernelSuffixTree[C, D, N]{inner: inner, weightFn: weightFn, logger: cfg.logger}
}

// Tree exposes the underlying RadixTree for read-only operations.
func (k *KernelSuffixTree[C, D, N]) Tree() *radixtree.RadixTree[C, N] { return k.inner.Tree() }

// AddWord indexes every suffix of word, invalidating any prior
// preprocessing.
func (k *KernelSuffixTree[C, D, N]) AddWord(word []C, item D) {
	k.mu.Lock()
	k.preprocessed = false
	k.mu.Unlock()
	k.inner.AddWord(word, item)
}

// Clear drops every indexed suffix and invalidates preprocessing.
func (k *KernelSuffixTree[C, D, N]) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.inner.Clear()
	k.preprocessed = false
}

// Preprocess computes every branch's descendant_leaves_sum and weight.
// Idempotent: a second call observes the already-preprocessed tree and
// returns immediately. Concurrent callers are serialized by a mutex;
// this is the library's one mutual-exclusion region.
func (k *KernelSuffixTree[C, D, N]) Preprocess() {
	k.mu.Lock()
	defer k.mu.Unlock()
	if k.preprocessed {
		k.logger.Debugf("kernelsuffixtree: Preprocess: already preprocessed, skipping")
		return
	}
	root := k.Tree().Root()

	radixtree.PostOrderProcess[C, N, float64](root,
		func(b *radixtree.Branch[C, N]) float64 {
			return k.setWeight(b, b.NodeData().DescendantLeavesSum())
		},
		func(b *radixtree.Branch[C, N], childVals []float64) float64 {
			sum := lo.SumBy(childVals, func(v float64) float64 { return v })
			b.NodeData().SetDescendantLeavesSum(sum)
			return k.setWeight(b, sum)
		},
	)

	radixtree.PreOrderProcess[C, N, float64](root, 0,
		func(_, child *radixtree.Branch[C, N], parentAcc float64) float64 {
			total := parentAcc + child.NodeData().Weight()
			child.NodeData().SetWeight(total)
			return total
		},
		func(*radixtree.Branch[C, N], float64) {},
	)

	k.preprocessed = true
}

// setWeight sets b's own weight from its (already-determined)
// descendant_leaves_sum and returns sum unchanged, so it can double as
// the accumulator PostOrderProcess propagates to the parent.
func (k *KernelSuffixTree[C, D, N]) setWeight(b *radixtree.Branch[C, N], sum float64) float64 {
	startLen := b.Start() - b.WordStart() + 1
	endLen := startLen + b.Length()
	b.NodeData().SetWeight(sum * k.weightFn.ComputeWeight(startLen, endLen))
	return sum
}

// ComputeKernel evaluates K(q, T) in O(len(q)), preprocessing first if
// needed.
func (k *KernelSuffixTree[C, D, N]) ComputeKernel(q []C) float64 {
	k.Preprocess()
	entries := k.inner.GetMatchingStatistics(q)

	var total float64
	for _, e := range entries {
		if e.MatchLength <= 0 {
			continue
		}
		endLen := e.MatchLength + 1
		startLen := endLen - e.Position.Offset
		// The partial term covers the last Offset characters of
		// Position.Branch, so the accumulated weight must come from the
		// explicit node strictly above them: e.Floor, unless the position
		// is explicit (then e.Floor is Position.Branch itself).
		floor := e.Floor.Branch
		if e.Position.IsExplicit() {
			floor = floor.Parent()
		}
		total += floor.NodeData().Weight() +
			e.Ceil.Branch.NodeData().DescendantLeavesSum()*k.weightFn.ComputeWeight(startLen, endLen)
	}
	return total
}
