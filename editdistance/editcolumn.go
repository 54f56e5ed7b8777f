// Package editdistance implements the banded dynamic-programming
// edit-distance engine: a sparse EditColumn representing one column of
// the Levenshtein matrix, an EditMatrix stacking columns into a full
// matrix, and edit-script recovery via traceback.
//
// This package has no direct analogue in the module's teacher repo —
// it implements the primary, single-source-of-truth recurrence
// described in the project's design notes directly — but its generic
// shape (a type parameterized over the numeric domain, guarded by
// golang.org/x/exp/constraints) follows the same pattern the teacher
// uses in its treemap and priorityqueue packages.
package editdistance

import (
	"math"

	"golang.org/x/exp/constraints"
)

// NoMargin disables the diagonal-band restriction: every row the
// pattern length allows is considered, matching the unbanded edit
// distance recurrence.
const NoMargin = math.MaxInt

// DistanceFunc returns the substitution cost between two elements of
// the compared sequences. StandardDistance is the textbook 0/1 cost.
type DistanceFunc[C comparable, W constraints.Float] func(a, b C) W

// StandardDistance returns 0 when a equals b, 1 otherwise.
func StandardDistance[C comparable, W constraints.Float](a, b C) W {
	if a == b {
		return 0
	}
	return 1
}

// EditColumn is a sparse column of the edit-distance matrix: every row
// outside [startRow, startRow+length) is implicitly +Inf.
//
// Row -1 is the synthetic "before the first element" row, so a column
// with startRow == -1 and one value models the base case of comparing
// an empty prefix against an empty prefix.
type EditColumn[W constraints.Float] struct {
	startRow int
	values   []W
}

// CreateInitialColumn produces the column at columnIndex -1: the cost
// of transforming the first n characters of the pattern into the empty
// target prefix, for every n the band admits.
//
//	values[0] (row -1) = 0
//	values[k] (row k-1) = k, for k = 1 .. min(maxDistance, patternLen, diagonalMargin)
func CreateInitialColumn[W constraints.Float](patternLen int, maxDistance W, diagonalMargin int) *EditColumn[W] {
	bound := patternLen
	if md := float64(maxDistance); !math.IsInf(md, 1) {
		if fd := int(math.Floor(md)); fd < bound {
			bound = fd
		}
	}
	if diagonalMargin != NoMargin && diagonalMargin < bound {
		bound = diagonalMargin
	}
	if bound < 0 {
		bound = 0
	}
	values := make([]W, bound+1)
	for i := range values {
		values[i] = W(i)
	}
	return &EditColumn[W]{startRow: -1, values: values}
}

// Get returns the value stored at row, or +Inf if row falls outside the
// materialized run.
func (c *EditColumn[W]) Get(row int) W {
	if c == nil {
		return W(math.Inf(1))
	}
	idx := row - c.startRow
	if idx < 0 || idx >= len(c.values) {
		return W(math.Inf(1))
	}
	return c.values[idx]
}

// StartRow reports the row the materialized run begins at.
func (c *EditColumn[W]) StartRow() int {
	if c == nil {
		return -1
	}
	return c.startRow
}

// Len reports how many rows are materialized.
func (c *EditColumn[W]) Len() int {
	if c == nil {
		return 0
	}
	return len(c.values)
}

// IsEmpty reports whether the column has no materialized rows.
func (c *EditColumn[W]) IsEmpty() bool {
	return c == nil || len(c.values) == 0
}

func (c *EditColumn[W]) push(row int, val W) {
	if len(c.values) == 0 {
		c.startRow = row
	}
	c.values = append(c.values, val)
}

// MatchCallback is invoked once per cell materialized by CreateNextColumn,
// e.g. so an approximate-search traversal can test its leaf-termination
// condition without a second pass over the column.
type MatchCallback func(row int, dist float64)

// CreateNextColumn computes the column immediately to the right of
// current (i.e. column_index), comparing rowWord against nextColChar.
// It returns nil when no cell of the new column would be within
// maxDistance — the signal to prune the surrounding search entirely.
//
// columnIndex and diagonalMargin bound the row range considered to
// [max(current.startRow, columnIndex-diagonalMargin),
//
//	min(current.startRow+current.Len()+1, patternLen, columnIndex+diagonalMargin+1) ).
//
// The row just past current's materialized run is included, since a
// replace from current's last row or a deletion within next can reach it.
//
// Pass diagonalMargin = NoMargin to disable the band.
func CreateNextColumn[C comparable, W constraints.Float](
	rowWord []C,
	maxDistance W,
	columnIndex int,
	diagonalMargin int,
	distanceFn DistanceFunc[C, W],
	current *EditColumn[W],
	nextColChar C,
	matchCB MatchCallback,
) *EditColumn[W] {
	patternLen := len(rowWord)

	lower := current.StartRow()
	upper := current.StartRow() + current.Len() + 1
	if patternLen < upper {
		upper = patternLen
	}
	if diagonalMargin != NoMargin {
		if bandLower := columnIndex - diagonalMargin; bandLower > lower {
			lower = bandLower
		}
		if bandUpper := columnIndex + diagonalMargin + 1; bandUpper < upper {
			upper = bandUpper
		}
	}

	next := &EditColumn[W]{startRow: -1}
	for row := lower; row < upper; row++ {
		e := current.Get(row) + 1 // insertion
		if row >= 0 {
			replace := current.Get(row-1) + distanceFn(rowWord[row], nextColChar)
			if replace < e {
				e = replace
			}
		}
		if !next.IsEmpty() {
			if del := next.Get(row-1) + 1; del < e {
				e = del
			}
		}
		if e <= maxDistance {
			next.push(row, e)
			if matchCB != nil {
				matchCB(row, float64(e))
			}
		} else if !next.IsEmpty() {
			break
		}
	}
	if next.IsEmpty() {
		return nil
	}
	return next
}
