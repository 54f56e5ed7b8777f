package radixtree

import (
	"reflect"
	"sort"
	"testing"

	"github.com/Zubayear/radixforge/editdistance"
)

type noPayload struct{}

func newNoPayload() *noPayload { return &noPayload{} }

// insertWord is a minimal whole-word insertion policy used only to
// exercise RadixTree's own primitives in isolation; WordTree implements
// the real policy the same way, on top of the same
// Split/AddChild calls.
func insertWord[C comparable](t *RadixTree[C, *noPayload], word []C) {
	res, consumed := t.longestCommonPrefixConsumed(word, 0, nil)
	if consumed == len(word) {
		return
	}
	parent := res.Branch
	if res.MatchEndOffset < parent.Length() {
		parent = parent.Split(res.MatchEndOffset, newNoPayload())
	}
	leaf := newBranch[C, *noPayload](word, consumed, len(word)-consumed, 0, nil, newNoPayload())
	if err := parent.AddChild(leaf); err != nil {
		panic(err)
	}
}

func newTestTree() *RadixTree[rune, *noPayload] {
	return New[rune, *noPayload](newNoPayload)
}

func runes(s string) []rune { return []rune(s) }

func TestExactSearchAndPrefix(t *testing.T) {
	tree := newTestTree()
	for _, w := range []string{"cat$", "car$", "cart$"} {
		insertWord(tree, runes(w))
	}

	for _, w := range []string{"cat$", "car$", "cart$"} {
		res, ok := tree.ExactSearch(runes(w))
		if !ok {
			t.Fatalf("ExactSearch(%q) = not found", w)
		}
		if string(res.Matched()) != w {
			t.Errorf("ExactSearch(%q).Matched() = %q, want %q", w, string(res.Matched()), w)
		}
	}

	if _, ok := tree.ExactSearch(runes("dog$")); ok {
		t.Errorf("ExactSearch(%q) unexpectedly found", "dog$")
	}
}

func TestExactPrefixSearchScenario(t *testing.T) {
	tree := newTestTree()
	for _, w := range []string{"cat$", "car$", "cart$"} {
		insertWord(tree, runes(w))
	}

	results := tree.ExactPrefixSearch(runes("ca"))
	got := make([]string, 0, len(results))
	for _, r := range results {
		got = append(got, string(r.Matched()))
	}
	sort.Strings(got)
	want := []string{"car$", "cart$", "cat$"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExactPrefixSearch(%q) = %v, want %v", "ca", got, want)
	}
}

func TestExactPrefixSearchDivergesAtRoot(t *testing.T) {
	tree := newTestTree()
	insertWord(tree, runes("cat$"))
	if got := tree.ExactPrefixSearch(runes("zz")); got != nil {
		t.Errorf("ExactPrefixSearch on a diverging prefix = %v, want nil", got)
	}
}

func TestNoTwoSiblingsShareFirstChar(t *testing.T) {
	tree := newTestTree()
	for _, w := range []string{"cat$", "car$", "cart$", "dog$", "dodge$"} {
		insertWord(tree, runes(w))
	}
	tree.DfsVisit(tree.Root(), func(b *Branch[rune, *noPayload]) {
		seen := map[rune]bool{}
		for _, k := range b.ChildKeys() {
			if seen[k] {
				t.Errorf("branch %v has two children keyed %q", b, k)
			}
			seen[k] = true
		}
	})
}

func TestParentChildInvariant(t *testing.T) {
	tree := newTestTree()
	for _, w := range []string{"cat$", "car$", "cart$", "dog$"} {
		insertWord(tree, runes(w))
	}
	tree.DfsVisit(tree.Root(), func(b *Branch[rune, *noPayload]) {
		if b.IsRoot() {
			return
		}
		if b.Parent().Child(b.FirstChar()) != b {
			t.Errorf("parent.Child(firstChar(%v)) did not round-trip", b)
		}
	})
}

func TestApproximateSearchScenario(t *testing.T) {
	tree := newTestTree()
	insertWord(tree, runes("kitten$"))
	insertWord(tree, runes("sitting$"))

	results := tree.ApproximateSearch(runes("kittin$"), 1, editdistance.StandardDistance[rune, float64])
	if len(results) != 1 {
		t.Fatalf("ApproximateSearch(max=1) returned %d results, want 1: %+v", len(results), results)
	}
	if string(results[0].Matched()) != "kitten$" {
		t.Errorf("ApproximateSearch(max=1) matched %q, want %q", string(results[0].Matched()), "kitten$")
	}
	if results[0].EditDistance != 1 {
		t.Errorf("ApproximateSearch(max=1) edit distance = %v, want 1", results[0].EditDistance)
	}

	if empty := tree.ApproximateSearch(runes("kittin$"), 0, editdistance.StandardDistance[rune, float64]); len(empty) != 0 {
		t.Errorf("ApproximateSearch(max=0) = %v, want empty", empty)
	}
}

func TestApproximateSearchOrderedByDistance(t *testing.T) {
	tree := newTestTree()
	for _, w := range []string{"aaa$", "aab$", "abb$", "bbb$"} {
		insertWord(tree, runes(w))
	}
	results := tree.ApproximateSearch(runes("aaa$"), 3, editdistance.StandardDistance[rune, float64])
	for i := 1; i < len(results); i++ {
		if results[i-1].EditDistance > results[i].EditDistance {
			t.Fatalf("ApproximateSearch results not sorted ascending: %+v", results)
		}
	}
}

func TestApproximateSearchInfiniteDistanceYieldsEveryLeaf(t *testing.T) {
	tree := newTestTree()
	words := []string{"cat$", "car$", "dog$"}
	for _, w := range words {
		insertWord(tree, runes(w))
	}
	results := tree.ApproximateSearch(runes("zzzzzzz"), 1e9, editdistance.StandardDistance[rune, float64])
	if len(results) != len(words) {
		t.Errorf("ApproximateSearch(max=huge) returned %d results, want %d", len(results), len(words))
	}
}

func TestAlphabet(t *testing.T) {
	tree := newTestTree()
	insertWord(tree, runes("ab$"))
	insertWord(tree, runes("ac$"))
	got := tree.Alphabet()
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	want := []rune{'a', 'b', 'c'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Alphabet() = %v, want %v", got, want)
	}
}

func TestSplitRejectsBoundaryOffset(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Split at a non-interior offset should panic")
		}
	}()
	b := newBranch[rune, *noPayload](runes("abcdef"), 0, 6, 0, nil, newNoPayload())
	b.Split(0, newNoPayload())
}

func TestAddChildRejectsDuplicateKey(t *testing.T) {
	parent := newBranch[rune, *noPayload](runes("x"), 0, 0, 0, nil, newNoPayload())
	c1 := newBranch[rune, *noPayload](runes("ab"), 0, 2, 0, nil, newNoPayload())
	c2 := newBranch[rune, *noPayload](runes("ac"), 0, 2, 0, nil, newNoPayload())
	if err := parent.AddChild(c1); err != nil {
		t.Fatalf("AddChild(c1) = %v, want nil", err)
	}
	if err := parent.AddChild(c2); err == nil {
		t.Fatal("AddChild(c2) with clashing first char should fail")
	}
}

func TestRemoveChildIdempotentOnMiss(t *testing.T) {
	parent := newBranch[rune, *noPayload](runes("x"), 0, 0, 0, nil, newNoPayload())
	parent.RemoveChild('z')
	parent.RemoveChild('z')
}

func TestPostOrderProcessSumsSubtreeSize(t *testing.T) {
	tree := newTestTree()
	for _, w := range []string{"cat$", "car$", "cart$", "dog$"} {
		insertWord(tree, runes(w))
	}
	total := PostOrderProcess[rune, *noPayload, int](
		tree.Root(),
		func(*Branch[rune, *noPayload]) int { return 1 },
		func(_ *Branch[rune, *noPayload], vals []int) int {
			sum := 1
			for _, v := range vals {
				sum += v
			}
			return sum
		},
	)
	var count int
	tree.DfsVisit(tree.Root(), func(*Branch[rune, *noPayload]) { count++ })
	if total != count {
		t.Errorf("PostOrderProcess branch count = %d, want %d", total, count)
	}
}

func TestPreOrderProcessTracksDepth(t *testing.T) {
	tree := newTestTree()
	insertWord(tree, runes("cat$"))
	insertWord(tree, runes("car$"))

	depths := map[*Branch[rune, *noPayload]]int{}
	PreOrderProcess[rune, *noPayload, int](
		tree.Root(),
		0,
		func(_, _ *Branch[rune, *noPayload], parentAcc int) int { return parentAcc + 1 },
		func(b *Branch[rune, *noPayload], acc int) { depths[b] = acc },
	)
	if depths[tree.Root()] != 0 {
		t.Errorf("root depth = %d, want 0", depths[tree.Root()])
	}
	for _, d := range depths {
		if d < 0 {
			t.Errorf("unexpected negative depth %d", d)
		}
	}
}
