package editdistance

import (
	"math"
	"reflect"
	"testing"
)

func distanceOf(a, b string) float64 {
	m := FromEditDistance([]rune(a), []rune(b), float64(math.Inf(1)), NoMargin, StandardDistance[rune, float64])
	return float64(m.Distance())
}

func TestDistanceKittenSitting(t *testing.T) {
	if got := distanceOf("kitten", "sitting"); got != 3 {
		t.Fatalf("distance(kitten, sitting) = %v, want 3", got)
	}
}

func TestDistanceSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"", "abc"},
		{"abc", "abc"},
		{"intention", "execution"},
	}
	for _, p := range pairs {
		d1 := distanceOf(p[0], p[1])
		d2 := distanceOf(p[1], p[0])
		if d1 != d2 {
			t.Errorf("distance(%q,%q)=%v != distance(%q,%q)=%v", p[0], p[1], d1, p[1], p[0], d2)
		}
	}
}

func TestDistanceTriangleInequality(t *testing.T) {
	triples := [][3]string{
		{"kitten", "sitting", "sittin"},
		{"abc", "abd", "xyz"},
		{"", "a", "ab"},
	}
	for _, tr := range triples {
		ac := distanceOf(tr[0], tr[2])
		abbc := distanceOf(tr[0], tr[1]) + distanceOf(tr[1], tr[2])
		if ac > abbc+1e-9 {
			t.Errorf("triangle inequality violated for %v: d(a,c)=%v > d(a,b)+d(b,c)=%v", tr, ac, abbc)
		}
	}
}

func TestDistanceIdenticalIsZero(t *testing.T) {
	if got := distanceOf("abcdef", "abcdef"); got != 0 {
		t.Fatalf("distance of identical strings = %v, want 0", got)
	}
}

func TestGetEditCommandsReplaysToTarget(t *testing.T) {
	cases := [][2]string{
		{"kitten", "sitting"},
		{"flaw", "lawn"},
		{"", "abc"},
		{"abc", ""},
		{"abc", "abc"},
		{"saturday", "sunday"},
	}
	for _, c := range cases {
		source := []rune(c[0])
		target := []rune(c[1])
		cmds := GetEditCommands(source, target, StandardDistance[rune, float64])
		replayed := Apply(source, cmds)
		if string(replayed) != c[1] {
			t.Errorf("Apply(%q, GetEditCommands(%q,%q)) = %q, want %q", c[0], c[0], c[1], string(replayed), c[1])
		}
		if total := TotalCost(cmds); total != distanceOf(c[0], c[1]) {
			t.Errorf("TotalCost(GetEditCommands(%q,%q)) = %v, want %v", c[0], c[1], total, distanceOf(c[0], c[1]))
		}
	}
}

func TestGetEditCommandsTieBreak(t *testing.T) {
	cmds := GetEditCommands([]rune("kitten"), []rune("sitting"), StandardDistance[rune, float64])
	if len(cmds) != 3 {
		t.Fatalf("expected a 3-command script, got %d: %+v", len(cmds), cmds)
	}
	for _, cmd := range cmds {
		if cmd.Cost != 1 {
			t.Errorf("expected unit cost under StandardDistance, got %v for %+v", cmd.Cost, cmd)
		}
	}
}

func TestCreateNextColumnPrunesOutsideMaxDistance(t *testing.T) {
	pattern := []rune("aaaaaaaaaa")
	initial := CreateInitialColumn(len(pattern), float64(1), NoMargin)
	next := CreateNextColumn(pattern, float64(1), 0, NoMargin, StandardDistance[rune, float64], initial, 'z', nil)
	if next == nil {
		t.Fatal("expected a partial column within max distance 1, got nil")
	}
	if next.Len() > 3 {
		t.Errorf("expected column pruned to a narrow band near the diagonal, got length %d", next.Len())
	}
}

func TestCreateNextColumnBanded(t *testing.T) {
	pattern := []rune("abcdefghij")
	initial := CreateInitialColumn(len(pattern), math.Inf(1), 1)
	if initial.Len() != 2 {
		t.Fatalf("banded initial column length = %d, want 2", initial.Len())
	}
	next := CreateNextColumn(pattern, math.Inf(1), 0, 1, StandardDistance[rune, float64], initial, 'a', nil)
	if next == nil {
		t.Fatal("expected a banded column for a matching prefix character")
	}
	if got := next.Get(0); got != 0 {
		t.Errorf("matching first character should cost 0, got %v", got)
	}
}

func TestApplyRoundTripsThroughReflect(t *testing.T) {
	source := []byte("ryushin")
	target := []byte("radixforge")
	cmds := GetEditCommands(source, target, StandardDistance[byte, float64])
	got := Apply(source, cmds)
	if !reflect.DeepEqual(got, target) {
		t.Fatalf("Apply result = %q, want %q", got, target)
	}
}
