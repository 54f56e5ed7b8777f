package editdistance

import "golang.org/x/exp/constraints"

// CommandKind identifies the edit operation a command performs.
type CommandKind int

const (
	// KindReplace substitutes the source character at SourceIndex with Char.
	KindReplace CommandKind = iota
	// KindDelete removes the source character at SourceIndex.
	KindDelete
	// KindInsert adds Char immediately after source position SourceIndex
	// (SourceIndex == -1 means "insert before the first character").
	KindInsert
)

func (k CommandKind) String() string {
	switch k {
	case KindReplace:
		return "replace"
	case KindDelete:
		return "delete"
	case KindInsert:
		return "insert"
	default:
		return "unknown"
	}
}

// EditCommand is one step of an edit script: the single-character
// operation that transforms source into target at SourceIndex.
type EditCommand[C comparable, W constraints.Float] struct {
	Kind        CommandKind
	SourceIndex int
	Char        C
	Cost        W
}

// Apply replays cmds, in left-to-right order, against source and
// returns the resulting sequence. cmds must be ordered by ascending
// SourceIndex, as GetEditCommands produces them.
func Apply[C comparable, W constraints.Float](source []C, cmds []EditCommand[C, W]) []C {
	result := make([]C, 0, len(source)+len(cmds))
	pos := 0
	for _, cmd := range cmds {
		switch cmd.Kind {
		case KindReplace:
			for pos < cmd.SourceIndex {
				result = append(result, source[pos])
				pos++
			}
			result = append(result, cmd.Char)
			pos++
		case KindDelete:
			for pos < cmd.SourceIndex {
				result = append(result, source[pos])
				pos++
			}
			pos++
		case KindInsert:
			for pos <= cmd.SourceIndex {
				result = append(result, source[pos])
				pos++
			}
			result = append(result, cmd.Char)
		}
	}
	for pos < len(source) {
		result = append(result, source[pos])
		pos++
	}
	return result
}

// TotalCost sums the cost of every command in the script.
func TotalCost[C comparable, W constraints.Float](cmds []EditCommand[C, W]) W {
	var total W
	for _, cmd := range cmds {
		total += cmd.Cost
	}
	return total
}
