// Package treemap provides a generic ordered map backed by a red-black
// tree, adapted from the module's teacher package of the same name.
// The algorithms (rotations, insert fixup, CLRS-style delete fixup)
// are carried unchanged; the floor/ceiling and min/max accessors are
// not carried. It backs the named registries in kernelsuffixtree and
// radixtree (WeightFunctionRegistry, ProcessorRegistry), whose keys are
// configuration names (strings) — an ordered key type, unlike the
// radix tree's own Branch.children map, whose key type C the spec
// requires only to be comparable, not ordered.
package treemap

import "golang.org/x/exp/constraints"

type color bool

const (
	red   color = true
	black color = false
)

type node[K constraints.Ordered, V any] struct {
	key    K
	value  V
	color  color
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// TreeMap is a generic ordered map keyed by any constraints.Ordered type.
type TreeMap[K constraints.Ordered, V any] struct {
	root *node[K, V]
	size int
}

// New returns a new, empty TreeMap.
func New[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return &TreeMap[K, V]{}
}

func (t *TreeMap[K, V]) isRed(n *node[K, V]) bool {
	if n == nil {
		return false
	}
	return n.color == red
}

func (t *TreeMap[K, V]) getGrandParent(n *node[K, V]) *node[K, V] {
	if n == nil || n.parent == nil {
		return nil
	}
	return n.parent.parent
}

// Put inserts or updates the value stored at key.
func (t *TreeMap[K, V]) Put(key K, value V) {
	newNode := &node[K, V]{key: key, value: value, color: red}
	t.root = t.insertBST(t.root, newNode)
	t.fixInsert(newNode)
	t.size++
}

func (t *TreeMap[K, V]) rotateLeft(x *node[K, V]) *node[K, V] {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.left = x
	x.parent = y
	return y
}

func (t *TreeMap[K, V]) rotateRight(x *node[K, V]) *node[K, V] {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	y.parent = x.parent
	if x.parent == nil {
		t.root = y
	} else if x == x.parent.left {
		x.parent.left = y
	} else {
		x.parent.right = y
	}
	y.right = x
	x.parent = y
	return y
}

func (t *TreeMap[K, V]) fixInsert(n *node[K, V]) {
	for n != t.root && t.isRed(n.parent) {
		g := t.getGrandParent(n)
		if g == nil {
			break
		}
		if n.parent == g.left {
			u := g.right
			if t.isRed(u) {
				n.parent.color = black
				u.color = black
				g.color = red
				n = g
			} else {
				if n == n.parent.right {
					n = n.parent
					t.rotateLeft(n)
				}
				n.parent.color = black
				g.color = red
				t.rotateRight(g)
			}
		} else {
			u := g.left
			if t.isRed(u) {
				n.parent.color = black
				u.color = black
				g.color = red
				n = g
			} else {
				if n == n.parent.left {
					n = n.parent
					t.rotateRight(n)
				}
				n.parent.color = black
				g.color = red
				t.rotateLeft(g)
			}
		}
	}
	if t.root != nil {
		t.root.color = black
	}
}

func (t *TreeMap[K, V]) insertBST(root, n *node[K, V]) *node[K, V] {
	if root == nil {
		return n
	}
	if n.key < root.key {
		root.left = t.insertBST(root.left, n)
		root.left.parent = root
	} else if n.key > root.key {
		root.right = t.insertBST(root.right, n)
		root.right.parent = root
	} else {
		root.value = n.value
		t.size--
	}
	return root
}

// Get returns the value stored at key and true, or the zero value and
// false if key is absent.
func (t *TreeMap[K, V]) Get(key K) (V, bool) {
	current := t.root
	for current != nil {
		if key == current.key {
			return current.value, true
		} else if key < current.key {
			current = current.left
		} else {
			current = current.right
		}
	}
	var zero V
	return zero, false
}

func (t *TreeMap[K, V]) transplant(u, v *node[K, V]) {
	if u.parent == nil {
		t.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

func (t *TreeMap[K, V]) minimum(n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	cur := n
	for cur.left != nil {
		cur = cur.left
	}
	return cur
}

func (t *TreeMap[K, V]) findNode(key K) *node[K, V] {
	cur := t.root
	for cur != nil {
		if key == cur.key {
			return cur
		} else if key < cur.key {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}
	return nil
}

// Remove deletes key from the map, returning the removed value and
// true if it existed.
func (t *TreeMap[K, V]) Remove(key K) (V, bool) {
	z := t.findNode(key)
	var zero V
	if z == nil {
		return zero, false
	}

	removedValue := z.value

	y := z
	originalColor := y.color
	var x *node[K, V]
	var xParent *node[K, V]

	if z.left == nil {
		x = z.right
		xParent = z.parent
		t.transplant(z, z.right)
	} else if z.right == nil {
		x = z.left
		xParent = z.parent
		t.transplant(z, z.left)
	} else {
		y = t.minimum(z.right)
		originalColor = y.color
		x = y.right
		if y.parent == z {
			if x != nil {
				x.parent = y
			}
			xParent = y
		} else {
			xParent = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			if y.right != nil {
				y.right.parent = y
			}
		}
		t.transplant(z, y)
		y.left = z.left
		if y.left != nil {
			y.left.parent = y
		}
		y.color = z.color
	}

	if originalColor == black {
		t.fixDelete(x, xParent)
	}

	t.size--
	return removedValue, true
}

func (t *TreeMap[K, V]) fixDelete(x *node[K, V], parent *node[K, V]) {
	for (x != t.root) && (x == nil || !t.isRed(x)) {
		var sib *node[K, V]
		if parent == nil {
			break
		}
		if x == parent.left {
			sib = parent.right
			if t.isRed(sib) {
				sib.color = black
				parent.color = red
				t.rotateLeft(parent)
				sib = parent.right
			}
			if sib == nil || (!t.isRed(sib.left) && !t.isRed(sib.right)) {
				if sib != nil {
					sib.color = red
				}
				x = parent
				parent = x.parent
			} else {
				if !t.isRed(sib.right) {
					if sib.left != nil {
						sib.left.color = black
					}
					sib.color = red
					t.rotateRight(sib)
					sib = parent.right
				}
				if sib != nil {
					sib.color = parent.color
					if sib.right != nil {
						sib.right.color = black
					}
				}
				parent.color = black
				t.rotateLeft(parent)
				x = t.root
				parent = nil
			}
		} else {
			sib = parent.left
			if t.isRed(sib) {
				sib.color = black
				parent.color = red
				t.rotateRight(parent)
				sib = parent.left
			}
			if sib == nil || (!t.isRed(sib.left) && !t.isRed(sib.right)) {
				if sib != nil {
					sib.color = red
				}
				x = parent
				parent = x.parent
			} else {
				if !t.isRed(sib.left) {
					if sib.right != nil {
						sib.right.color = black
					}
					sib.color = red
					t.rotateLeft(sib)
					sib = parent.left
				}
				if sib != nil {
					sib.color = parent.color
					if sib.left != nil {
						sib.left.color = black
					}
				}
				parent.color = black
				t.rotateRight(parent)
				x = t.root
				parent = nil
			}
		}
	}
	if x != nil {
		x.color = black
	}
}

// ContainsKey reports whether key is present in the map.
func (t *TreeMap[K, V]) ContainsKey(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// Size returns the number of entries in the map.
func (t *TreeMap[K, V]) Size() int {
	return t.size
}

// Keys returns every key in ascending order.
func (t *TreeMap[K, V]) Keys() []K {
	var result []K
	t.inorder(t.root, &result)
	return result
}

func (t *TreeMap[K, V]) inorder(n *node[K, V], result *[]K) {
	if n != nil {
		t.inorder(n.left, result)
		*result = append(*result, n.key)
		t.inorder(n.right, result)
	}
}
