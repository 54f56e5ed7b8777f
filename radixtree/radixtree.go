package radixtree

import (
	"github.com/samber/lo"

	"github.com/Zubayear/radixforge/editdistance"
	"github.com/Zubayear/radixforge/internal/heap"
	"github.com/Zubayear/radixforge/internal/options"
	"github.com/Zubayear/radixforge/internal/set"
	"github.com/Zubayear/radixforge/internal/stack"
)

// NoDiagonalMargin disables ApproximateSearch's band restriction.
const NoDiagonalMargin = editdistance.NoMargin

// RadixTree is the generic compressed-trie substrate: branches,
// splitting, the three traversal shapes, and the three search
// operations. It carries no insertion policy of its own — WordTree and
// SuffixTree (which KernelSuffixTree builds on) each implement their
// own insertion policy directly against Branch.AddChild/Split.
type RadixTree[C comparable, N any] struct {
	root    *Branch[C, N]
	newNode func() N
	cfg     *config
}

// New creates an empty RadixTree. newNode constructs a fresh, zeroed
// node payload for every branch the tree creates (including the root);
// when N is a pointer type this is typically `func() N { return &T{} }`.
func New[C comparable, N any](newNode func() N, opts ...Option) *RadixTree[C, N] {
	cfg := defaultConfig()
	options.Apply(cfg, opts...)
	t := &RadixTree[C, N]{newNode: newNode, cfg: cfg}
	t.Clear()
	return t
}

// Root returns the tree's root branch.
func (t *RadixTree[C, N]) Root() *Branch[C, N] { return t.root }

// Clear installs a fresh root whose suffix link is itself, dropping
// every other branch.
func (t *RadixTree[C, N]) Clear() {
	root := newBranch[C, N](nil, 0, 0, 0, nil, t.newNode())
	root.suffixLink = root
	t.root = root
}

// LongestCommonPrefix walks downward from fromBranch (root if nil)
// matching word[fromIndex:] character by character, and returns the
// deepest match position reached.
func (t *RadixTree[C, N]) LongestCommonPrefix(word []C, fromIndex int, fromBranch *Branch[C, N]) SearchResult[C, N] {
	res, _ := t.longestCommonPrefixConsumed(word, fromIndex, fromBranch)
	return res
}

func (t *RadixTree[C, N]) longestCommonPrefixConsumed(word []C, fromIndex int, fromBranch *Branch[C, N]) (SearchResult[C, N], int) {
	current := fromBranch
	if current == nil {
		current = t.root
	}
	idx := fromIndex
	for idx < len(word) {
		child, ok := current.children[word[idx]]
		if !ok {
			return newExactResult(current, current.length), idx
		}
		j := 0
		for j < child.length && idx < len(word) && child.source[child.start+j] == word[idx] {
			j++
			idx++
		}
		if j < child.length {
			return newExactResult(child, j), idx
		}
		current = child
	}
	return newExactResult(current, current.length), idx
}

// ExactSearch returns a result only if the entire word was consumed,
// whether it lands on an explicit branch boundary or an implicit
// position strictly inside one.
func (t *RadixTree[C, N]) ExactSearch(word []C) (SearchResult[C, N], bool) {
	res, consumed := t.longestCommonPrefixConsumed(word, 0, nil)
	if consumed != len(word) {
		return SearchResult[C, N]{}, false
	}
	return res, true
}

// ExactPrefixSearch finds the branch where word ends, then returns one
// result per leaf (childless branch) in its DFS-reachable subtree,
// including the found branch itself if it is both non-root and
// already a leaf. Empty if word diverges before being fully consumed.
func (t *RadixTree[C, N]) ExactPrefixSearch(word []C) []SearchResult[C, N] {
	res, consumed := t.longestCommonPrefixConsumed(word, 0, nil)
	if consumed != len(word) {
		return nil
	}
	var leaves []*Branch[C, N]
	t.DfsVisit(res.Branch, func(b *Branch[C, N]) {
		if b.IsLeaf() && !b.IsRoot() {
			leaves = append(leaves, b)
		}
	})
	return lo.Map(leaves, func(b *Branch[C, N], _ int) SearchResult[C, N] {
		return newExactResult(b, b.length)
	})
}

// DfsVisit walks the subtree rooted at start (inclusive) depth-first,
// using an explicit stack rather than Go call-stack recursion so that
// indexing a long inserted sequence cannot grow the traversal's native
// stack depth with it.
func (t *RadixTree[C, N]) DfsVisit(start *Branch[C, N], visit func(*Branch[C, N])) {
	if start == nil {
		start = t.root
	}
	st := stack.New[*Branch[C, N]]()
	st.Push(start)
	for !st.IsEmpty() {
		b, _ := st.Pop()
		visit(b)
		for _, key := range b.ChildKeys() {
			st.Push(b.children[key])
		}
	}
}

// Alphabet returns the distinct first characters labeling every branch
// in the tree, in unspecified order.
func (t *RadixTree[C, N]) Alphabet() []C {
	seen := set.New[C]()
	t.DfsVisit(t.root, func(b *Branch[C, N]) {
		if !b.IsRoot() {
			seen.Insert(b.FirstChar())
		}
	})
	return seen.Items()
}

// PostOrderProcess accumulates a value bottom-up: leafValue computes a
// leaf's contribution, combine folds a branch's own data together with
// its already-computed children's values. Implemented over an explicit
// stack per the Recursion-depth design note.
func PostOrderProcess[C comparable, N any, T any](start *Branch[C, N], leafValue func(*Branch[C, N]) T, combine func(*Branch[C, N], []T) T) T {
	type frame struct {
		branch *Branch[C, N]
		keys   []C
		idx    int
		vals   []T
	}
	st := stack.New[*frame]()
	st.Push(&frame{branch: start, keys: start.ChildKeys()})
	var result T
	for !st.IsEmpty() {
		top, _ := st.Peek()
		if top.idx < len(top.keys) {
			child := top.branch.children[top.keys[top.idx]]
			top.idx++
			st.Push(&frame{branch: child, keys: child.ChildKeys()})
			continue
		}
		st.Pop()
		var val T
		if len(top.keys) == 0 {
			val = leafValue(top.branch)
		} else {
			val = combine(top.branch, top.vals)
		}
		if st.IsEmpty() {
			result = val
			break
		}
		parent, _ := st.Peek()
		parent.vals = append(parent.vals, val)
	}
	return result
}

// PreOrderProcess accumulates a value top-down: combine derives a
// child's accumulator from its parent's branch, parent accumulator,
// and itself; visit is invoked once per branch (including start) with
// its accumulator. Implemented over an explicit stack per the
// Recursion-depth design note.
func PreOrderProcess[C comparable, N any, T any](
	start *Branch[C, N],
	initial T,
	combine func(parent, child *Branch[C, N], parentAcc T) T,
	visit func(branch *Branch[C, N], acc T),
) {
	type frame struct {
		branch *Branch[C, N]
		acc    T
	}
	st := stack.New[frame]()
	st.Push(frame{branch: start, acc: initial})
	for !st.IsEmpty() {
		fr, _ := st.Pop()
		visit(fr.branch, fr.acc)
		for _, key := range fr.branch.ChildKeys() {
			child := fr.branch.children[key]
			st.Push(frame{branch: child, acc: combine(fr.branch, child, fr.acc)})
		}
	}
}

// approximateSearchFrame is one unit of DFS work: branch still needs
// all of its characters compared, given the DP column valid just
// before its first character and the path depth reached so far (used
// as CreateNextColumn's column_index).
type approximateSearchFrame[C comparable, N any] struct {
	branch *Branch[C, N]
	col    *editdistance.EditColumn[float64]
	depth  int
}

// ApproximateSearch walks the tree depth-first from the root, carrying
// an EditColumn representing the DP column just before the next
// character to compare. A subtree is pruned entirely the moment its
// column would have no cell within maxDistance. A match is recorded
// for a branch iff it is a leaf and the DP cell at the query's last
// row, after consuming the branch's final character, is ≤ maxDistance.
// Results are returned sorted by ascending edit distance, ties in the
// order the DFS found them.
func (t *RadixTree[C, N]) ApproximateSearch(word []C, maxDistance float64, distanceFn editdistance.DistanceFunc[C, float64]) []SearchResult[C, N] {
	t.cfg.logger.Debugf("radixtree: ApproximateSearch: len(word)=%d maxDistance=%v margin=%d", len(word), maxDistance, t.cfg.diagonalMargin)
	type ranked struct {
		res SearchResult[C, N]
		seq int
	}
	results := heap.NewWithComparator(func(a, b ranked) bool {
		if a.res.EditDistance != b.res.EditDistance {
			return a.res.EditDistance < b.res.EditDistance
		}
		return a.seq < b.seq
	})
	margin := t.cfg.diagonalMargin
	init := editdistance.CreateInitialColumn(len(word), maxDistance, margin)

	st := stack.New[approximateSearchFrame[C, N]]()
	for _, key := range t.root.ChildKeys() {
		st.Push(approximateSearchFrame[C, N]{branch: t.root.children[key], col: init, depth: 0})
	}
	for !st.IsEmpty() {
		fr, _ := st.Pop()
		branch, col, depth := fr.branch, fr.col, fr.depth
		pruned := false
		for offset := 0; offset < branch.length; offset++ {
			next := editdistance.CreateNextColumn(word, maxDistance, depth, margin, distanceFn, col, branch.CharAt(offset), nil)
			if next == nil {
				pruned = true
				break
			}
			col = next
			depth++
			if offset == branch.length-1 && branch.IsLeaf() {
				if e := col.Get(len(word) - 1); e <= maxDistance {
					results.Add(ranked{res: SearchResult[C, N]{Branch: branch, MatchEndOffset: branch.length, EditDistance: e}, seq: results.Size()})
				}
			}
		}
		if pruned {
			continue
		}
		for _, key := range branch.ChildKeys() {
			st.Push(approximateSearchFrame[C, N]{branch: branch.children[key], col: col, depth: depth})
		}
	}
	sorted := results.Sorted()
	out := make([]SearchResult[C, N], len(sorted))
	for i, r := range sorted {
		out[i] = r.res
	}
	return out
}
