package cube

import "fmt"

// htmFaceOrder maps a sticker-level Face to its index in quarterTurns/
// FaceLabel order (U, R, F, L, D, B), which differs from Face's own
// declaration order (Front, Back, Left, Right, Up, Down).
var htmFaceOrder = map[Face]int{
	Up:    0,
	Right: 1,
	Front: 2,
	Left:  3,
	Down:  4,
	Back:  5,
}

// MoveToHTMIndex converts a basic single-layer sticker-level Move into its
// HTM generator index (0-17). Wide turns, slice turns, whole-cube rotations,
// and numbered layer turns have no cubie-level equivalent and are rejected;
// the solver only reasons about the outermost layer of a 3x3 cube.
func MoveToHTMIndex(m Move) (int, error) {
	if m.Slice != NoSlice {
		return 0, fmt.Errorf("cube: slice move %s has no cubie-level generator", m.String())
	}
	if m.Rotation != NoRotation {
		return 0, fmt.Errorf("cube: whole-cube rotation %s has no cubie-level generator", m.String())
	}
	if m.Wide {
		return 0, fmt.Errorf("cube: wide move %s has no cubie-level generator", m.String())
	}
	if m.Layer != 0 && m.Layer != 1 {
		return 0, fmt.Errorf("cube: layer move %s has no cubie-level generator", m.String())
	}

	f, ok := htmFaceOrder[m.Face]
	if !ok {
		return 0, fmt.Errorf("cube: unrecognized face in move %s", m.String())
	}

	switch {
	case m.Double:
		return 3*f + 1, nil
	case m.Clockwise:
		return 3 * f, nil
	default:
		return 3*f + 2, nil
	}
}

// MovesToHTMIndices converts a parsed move sequence to HTM generator
// indices, for handing to Solve/SolveScramble.
func MovesToHTMIndices(moves []Move) ([]int, error) {
	out := make([]int, len(moves))
	for i, m := range moves {
		idx, err := MoveToHTMIndex(m)
		if err != nil {
			return nil, err
		}
		out[i] = idx
	}
	return out, nil
}

// htmFaceFromOrder is the inverse of htmFaceOrder.
var htmFaceFromOrder = [6]Face{Up, Right, Front, Left, Down, Back}

// HTMIndexToMove converts an HTM generator index (0-17) back into a
// sticker-level Move, for rendering a solution with the existing move
// formatting and application machinery.
func HTMIndexToMove(idx int) Move {
	f := idx / 3
	switch idx % 3 {
	case 0:
		return Move{Face: htmFaceFromOrder[f], Clockwise: true}
	case 1:
		return Move{Face: htmFaceFromOrder[f], Double: true, Clockwise: true}
	default:
		return Move{Face: htmFaceFromOrder[f], Clockwise: false}
	}
}

// HTMIndicesToMoves converts a solution's HTM generator indices back to
// sticker-level Moves.
func HTMIndicesToMoves(indices []int) []Move {
	out := make([]Move, len(indices))
	for i, idx := range indices {
		out[i] = HTMIndexToMove(idx)
	}
	return out
}
