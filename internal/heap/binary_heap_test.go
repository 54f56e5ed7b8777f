package heap

import "testing"

func minHeap() *BinaryHeap[int] {
	return NewWithComparator(func(a, b int) bool { return a < b })
}

func TestPollReturnsAscendingOrder(t *testing.T) {
	h := minHeap()
	for _, v := range []int{5, 1, 4, 2, 8, 0, 9} {
		h.Add(v)
	}

	var got []int
	for !h.IsEmpty() {
		v, ok := h.Poll()
		if !ok {
			t.Fatal("Poll reported empty while IsEmpty said otherwise")
		}
		got = append(got, v)
	}

	want := []int{0, 1, 2, 4, 5, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestPollOnEmptyReportsFalse(t *testing.T) {
	h := minHeap()
	if _, ok := h.Poll(); ok {
		t.Error("Poll on empty heap reported ok=true")
	}
}

func TestSortedLeavesReceiverUnmodified(t *testing.T) {
	h := minHeap()
	h.Add(3)
	h.Add(1)
	h.Add(2)

	sorted := h.Sorted()
	if len(sorted) != 3 || sorted[0] != 1 || sorted[1] != 2 || sorted[2] != 3 {
		t.Errorf("Sorted() = %v, want [1 2 3]", sorted)
	}
	if h.Size() != 3 {
		t.Errorf("Size after Sorted() = %d, want 3 (receiver must be unmodified)", h.Size())
	}
}
