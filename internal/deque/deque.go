// Package deque provides a generic double-ended queue, adapted from the
// module's teacher package of the same name. It is backed by
// internal/linkedlist exactly as the teacher's deque is backed by its
// linkedlist package; the sync.RWMutex guard is dropped for the same
// single-threaded-cooperative reason given in internal/linkedlist.
//
// editdistance.GetEditCommands uses a Deque to assemble an edit script
// while tracing the DP matrix backward: each command is offered to the
// front as it is produced, so the script reads left-to-right without a
// separate reverse step once the traceback finishes.
package deque

import "github.com/Zubayear/radixforge/internal/linkedlist"

// Deque is a generic double-ended queue backed by a doubly linked list.
type Deque[T comparable] struct {
	data *linkedlist.List[T]
}

// New returns a new, empty Deque.
func New[T comparable]() *Deque[T] {
	return &Deque[T]{data: linkedlist.New[T]()}
}

// OfferFirst inserts elem at the front of the deque.
func (d *Deque[T]) OfferFirst(elem T) {
	d.data.AddFirst(elem)
}

// OfferLast inserts elem at the rear of the deque.
func (d *Deque[T]) OfferLast(elem T) {
	d.data.AddLast(elem)
}

// PollFirst removes and returns the front element of the deque.
func (d *Deque[T]) PollFirst() (T, error) {
	return d.data.RemoveFirst()
}

// PollLast removes and returns the rear element of the deque.
func (d *Deque[T]) PollLast() (T, error) {
	return d.data.RemoveLast()
}

// Size returns the number of elements in the deque.
func (d *Deque[T]) Size() int {
	return d.data.Size()
}

// IsEmpty reports whether the deque has no elements.
func (d *Deque[T]) IsEmpty() bool {
	return d.data.IsEmpty()
}

// ToSlice returns the deque's elements front-to-rear.
func (d *Deque[T]) ToSlice() []T {
	return d.data.ToSlice()
}
