package searchcache

import "testing"

func runes(s string) []rune { return []rune(s) }

func TestGetOrComputeCachesOnHit(t *testing.T) {
	c := New[rune, int](4, nil)
	calls := 0
	compute := func() int {
		calls++
		return 42
	}

	first := c.GetOrCompute(runes("hello"), compute)
	second := c.GetOrCompute(runes("hello"), compute)

	if first != 42 || second != 42 {
		t.Fatalf("GetOrCompute = %d, %d, want 42, 42", first, second)
	}
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
}

func TestGetOrComputeDistinguishesDistinctWords(t *testing.T) {
	c := New[rune, string](4, nil)
	c.GetOrCompute(runes("cat"), func() string { return "cat-result" })
	c.GetOrCompute(runes("car"), func() string { return "car-result" })

	calls := 0
	got := c.GetOrCompute(runes("cat"), func() string {
		calls++
		return "recomputed"
	})
	if got != "cat-result" {
		t.Errorf(`GetOrCompute("cat") = %q, want "cat-result"`, got)
	}
	if calls != 0 {
		t.Errorf("compute called for a cached key, want 0 calls")
	}
}

func TestInvalidateForcesRecompute(t *testing.T) {
	c := New[rune, int](4, nil)
	calls := 0
	compute := func() int {
		calls++
		return calls
	}

	first := c.GetOrCompute(runes("x"), compute)
	c.Invalidate()
	second := c.GetOrCompute(runes("x"), compute)

	if first != 1 || second != 2 {
		t.Errorf("GetOrCompute before/after Invalidate = %d, %d, want 1, 2", first, second)
	}
}

func TestEvictsLeastRecentlyUsedBeyondSize(t *testing.T) {
	c := New[rune, int](2, nil)
	c.GetOrCompute(runes("a"), func() int { return 1 })
	c.GetOrCompute(runes("b"), func() int { return 2 })
	c.GetOrCompute(runes("c"), func() int { return 3 }) // evicts "a"

	calls := 0
	c.GetOrCompute(runes("a"), func() int {
		calls++
		return 99
	})
	if calls != 1 {
		t.Errorf("expected recompute for evicted key \"a\", compute called %d times", calls)
	}
}

type fakeLogger struct {
	debugs []string
}

func (f *fakeLogger) Debugf(format string, args ...any) { f.debugs = append(f.debugs, format) }
func (f *fakeLogger) Warnf(format string, args ...any)  {}

func TestWithLoggerObservesHitsAndMisses(t *testing.T) {
	log := &fakeLogger{}
	c := New[rune, int](4, nil, WithLogger(log))
	c.GetOrCompute(runes("miss"), func() int { return 1 })
	c.GetOrCompute(runes("miss"), func() int { return 1 })
	if len(log.debugs) != 2 {
		t.Fatalf("expected 2 Debugf calls (miss then hit), got %d: %v", len(log.debugs), log.debugs)
	}
}

func TestNewWithCustomHasher(t *testing.T) {
	var hashCalls int
	hash := func(word []rune) uint64 {
		hashCalls++
		return uint64(len(word))
	}
	c := New[rune, int](4, hash)
	c.GetOrCompute(runes("ab"), func() int { return 1 })
	if hashCalls == 0 {
		t.Error("custom hash function was never invoked")
	}
}
