package editdistance

import (
	"math"

	"golang.org/x/exp/constraints"

	"github.com/Zubayear/radixforge/internal/deque"
)

// EditMatrix is the full banded Levenshtein matrix for one (source,
// target) pair: a stack of EditColumn, indexed so columns[0] holds
// column_index -1 and columns[i+1] holds column_index i.
type EditMatrix[C comparable, W constraints.Float] struct {
	source, target []C
	distanceFn      DistanceFunc[C, W]
	columns         []*EditColumn[W]
}

// FromEditDistance builds the matrix comparing source against target,
// pruning any cell farther than maxDistance from the nearest diagonal
// entry within diagonalMargin. Pass editdistance.NoMargin to build the
// full, unbanded matrix.
//
// Once a column fails to materialize (every cell exceeds maxDistance),
// every remaining column is recorded empty and traceback/Distance
// report +Inf: the pair is farther apart than maxDistance allows.
func FromEditDistance[C comparable, W constraints.Float](
	source, target []C,
	maxDistance W,
	diagonalMargin int,
	distanceFn DistanceFunc[C, W],
) *EditMatrix[C, W] {
	m := &EditMatrix[C, W]{
		source:     source,
		target:     target,
		distanceFn: distanceFn,
		columns:    make([]*EditColumn[W], len(target)+1),
	}
	m.columns[0] = CreateInitialColumn(len(source), maxDistance, diagonalMargin)
	pruned := false
	for j, ch := range target {
		if pruned || m.columns[j].IsEmpty() {
			pruned = true
			m.columns[j+1] = &EditColumn[W]{startRow: -1}
			continue
		}
		next := CreateNextColumn(source, maxDistance, j, diagonalMargin, distanceFn, m.columns[j], ch, nil)
		if next == nil {
			pruned = true
			m.columns[j+1] = &EditColumn[W]{startRow: -1}
			continue
		}
		m.columns[j+1] = next
	}
	return m
}

// Distance reports the edit distance recorded in the matrix's final
// cell, or +Inf if the pair was pruned beyond maxDistance.
func (m *EditMatrix[C, W]) Distance() W {
	last := m.columns[len(m.columns)-1]
	return last.Get(len(m.source) - 1)
}

func (m *EditMatrix[C, W]) cell(row, col int) W {
	return m.columns[col+1].Get(row)
}

// GetEditCommands computes the full unbanded matrix between source and
// target and traces it back into an edit script: the ordered sequence
// of replace/delete/insert commands that transforms source into
// target, preferring replace over delete over insert on ties.
func GetEditCommands[C comparable, W constraints.Float](source, target []C, distanceFn DistanceFunc[C, W]) []EditCommand[C, W] {
	m := FromEditDistance(source, target, W(math.Inf(1)), NoMargin, distanceFn)
	return m.traceback()
}

func (m *EditMatrix[C, W]) traceback() []EditCommand[C, W] {
	out := deque.New[EditCommand[C, W]]()
	i, j := len(m.source)-1, len(m.target)-1
	for i >= 0 || j >= 0 {
		diag, del, ins := W(math.Inf(1)), W(math.Inf(1)), W(math.Inf(1))
		if i >= 0 && j >= 0 {
			diag = m.cell(i-1, j-1)
		}
		if i >= 0 {
			del = m.cell(i-1, j)
		}
		if j >= 0 {
			ins = m.cell(i, j-1)
		}
		switch {
		case i >= 0 && j >= 0 && diag <= del && diag <= ins:
			cur := m.cell(i, j)
			if diag != cur {
				out.OfferFirst(EditCommand[C, W]{
					Kind:        KindReplace,
					SourceIndex: i,
					Char:        m.target[j],
					Cost:        cur - diag,
				})
			}
			i--
			j--
		case i >= 0 && del <= ins:
			cur := m.cell(i, j)
			out.OfferFirst(EditCommand[C, W]{
				Kind:        KindDelete,
				SourceIndex: i,
				Cost:        cur - del,
			})
			i--
		default:
			cur := m.cell(i, j)
			out.OfferFirst(EditCommand[C, W]{
				Kind:        KindInsert,
				SourceIndex: i,
				Char:        m.target[j],
				Cost:        cur - ins,
			})
			j--
		}
	}
	return out.ToSlice()
}
