package suffixtree

import "github.com/Zubayear/radixforge/radixtree"

// Node denotes a position in the tree: explicit when Offset equals the
// current branch's label length (the position coincides with the
// branch's own node), implicit when strictly between 0 and that
// length (the position sits partway along the branch's edge).
type Node[C comparable, N any] struct {
	Branch *radixtree.Branch[C, N]
	Offset int
}

func explicitAt[C comparable, N any](b *radixtree.Branch[C, N]) Node[C, N] {
	return Node[C, N]{Branch: b, Offset: b.Length()}
}

// IsExplicit reports whether the position coincides with Branch's own node.
func (n Node[C, N]) IsExplicit() bool { return n.Offset == n.Branch.Length() }

// TryAdvance moves one character deeper following c: at an explicit
// position it looks up a child keyed by c, at an implicit position it
// compares c against the next character of the current branch's label.
func (n Node[C, N]) TryAdvance(c C) (Node[C, N], bool) {
	if n.IsExplicit() {
		child := n.Branch.Child(c)
		if child == nil {
			return Node[C, N]{}, false
		}
		return Node[C, N]{Branch: child, Offset: 1}, true
	}
	if n.Branch.CharAt(n.Offset) != c {
		return Node[C, N]{}, false
	}
	return Node[C, N]{Branch: n.Branch, Offset: n.Offset + 1}, true
}

// GetFloor returns the nearest explicit node at or above this position.
func (n Node[C, N]) GetFloor() Node[C, N] {
	if n.IsExplicit() {
		return n
	}
	return explicitAt[C, N](n.Branch.Parent())
}

// GetCeil returns the nearest explicit node at or below this position.
func (n Node[C, N]) GetCeil() Node[C, N] {
	if n.IsExplicit() {
		return n
	}
	return explicitAt[C, N](n.Branch)
}

// FollowLink computes the suffix-linked position: for an explicit node
// it is the branch's own suffix link; for an implicit position it rises
// to the nearest explicit parent. When that parent is itself non-root,
// its own suffix link has already absorbed the stripped leading
// character, so the fast-scan back down reuses this branch's matched
// characters unchanged. When the parent IS the root, root's self-link
// absorbs nothing — the leading character of the matched portion must
// be dropped explicitly before re-descending from root. Either way the
// fast-scan proceeds by whole-edge skips until the right number of
// characters have been consumed again; it never mismatches, since the
// characters it consumes came from the tree's own content, not from an
// externally supplied query.
func (n Node[C, N]) FollowLink() (Node[C, N], bool) {
	if n.IsExplicit() {
		if n.Branch.IsRoot() {
			return n, true
		}
		link := n.Branch.SuffixLink()
		if link == nil {
			return Node[C, N]{}, false
		}
		return explicitAt[C, N](link), true
	}

	parent := n.Branch.Parent()
	var cur *radixtree.Branch[C, N]
	var idx, remaining int
	if parent.IsRoot() {
		cur = parent
		idx = 1
		remaining = n.Offset - 1
	} else {
		link := parent.SuffixLink()
		if link == nil {
			return Node[C, N]{}, false
		}
		cur = link
		idx = 0
		remaining = n.Offset
	}
	for remaining > 0 {
		c := n.Branch.CharAt(idx)
		child := cur.Child(c)
		if child == nil {
			return Node[C, N]{}, false
		}
		if child.Length() <= remaining {
			remaining -= child.Length()
			idx += child.Length()
			cur = child
			continue
		}
		return Node[C, N]{Branch: child, Offset: remaining}, true
	}
	return explicitAt[C, N](cur), true
}

// AddBranch attaches newBranch at this position, splitting the current
// branch first if the position is implicit. newNodeData is used as the
// materialized node's payload when a split occurs; ignored otherwise.
// It returns the explicit node the attachment happened under (newly
// materialized by a split, or the position's own branch when already
// explicit) and whether a split occurred — the caller needs the former
// to resolve that node's own suffix link when a split took place.
func (n Node[C, N]) AddBranch(newBranch *radixtree.Branch[C, N], newNodeData N) (materialized *radixtree.Branch[C, N], split bool, err error) {
	if !n.IsExplicit() {
		upper := n.Branch.Split(n.Offset, newNodeData)
		if err := upper.AddChild(newBranch); err != nil {
			return nil, true, err
		}
		return upper, true, nil
	}
	if err := n.Branch.AddChild(newBranch); err != nil {
		return nil, false, err
	}
	return n.Branch, false, nil
}
