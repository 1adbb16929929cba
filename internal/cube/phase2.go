package cube

import "github.com/ehrlich-b/cube/internal/search"

// Phase 2 searches within G1 = <U,D,L2,R2,F2,B2> for a sequence solving the
// cube outright. Corners and edges are already correctly oriented on entry
// (that is what Phase 1 guaranteed), and none of the 10 G1 generators ever
// flips or re-orients a piece or moves a UD-slice edge out of the slice, so
// only three permutation coordinates need tracking: the 8 corners, the 8
// non-slice edges (UR, UF, UL, UB, DR, DF, DL, DB), and the 4 slice edges
// (FR, FL, BL, BR) among themselves.

const (
	Phase2CornerSize = 40320 // 8!
	Phase2EdgeSize   = 40320 // 8!
	Phase2SliceSize  = 24    // 4!
)

// projectSub extracts the sub-permutation occupying positions
// [offset, offset+len(out)) of a full Perm array, rebased to 0..len(out)-1.
func projectSub(perm []int, offset, size int) []int {
	out := make([]int, size)
	for i := 0; i < size; i++ {
		out[i] = perm[offset+i] - offset
	}
	return out
}

// applySub projects how a G1 generator's full edge Perm transforms a
// sub-permutation confined to [offset, offset+len(sub)): a generator that
// respects the G1 subgroup never moves a piece across the offset boundary,
// so the rebased index stays valid.
func applySub(sub []int, g CubieArray, offset int) []int {
	next := make([]int, len(sub))
	for i := range sub {
		next[i] = sub[g.Perm[offset+i]-offset]
	}
	return next
}

var (
	phase2CornerTransition *TransitionTable
	phase2EdgeTransition   *TransitionTable
	phase2SliceTransition  *TransitionTable

	phase2CornerPruning *PruningTable
	phase2EdgePruning   *PruningTable
	phase2SlicePruning  *PruningTable
)

func init() {
	phase2CornerTransition = NewTransitionTable(Phase2CornerSize, NumPhase2Moves, func(coord, idx int) int {
		perm, err := PermFromCoordinate(coord, NumCorners)
		if err != nil {
			panic(err)
		}
		g := CornerGenerators[Phase2Generators[idx]]
		return PermCoordinate(applySub(perm, g, 0))
	})
	phase2EdgeTransition = NewTransitionTable(Phase2EdgeSize, NumPhase2Moves, func(coord, idx int) int {
		perm, err := PermFromCoordinate(coord, 8)
		if err != nil {
			panic(err)
		}
		g := EdgeGenerators[Phase2Generators[idx]]
		return PermCoordinate(applySub(perm, g, 0))
	})
	phase2SliceTransition = NewTransitionTable(Phase2SliceSize, NumPhase2Moves, func(coord, idx int) int {
		perm, err := PermFromCoordinate(coord, 4)
		if err != nil {
			panic(err)
		}
		g := EdgeGenerators[Phase2Generators[idx]]
		return PermCoordinate(applySub(perm, g, FR))
	})

	phase2CornerPruning = NewPruningTable(Phase2CornerSize, NumPhase2Moves, 0, phase2CornerTransition.Lookup)
	phase2EdgePruning = NewPruningTable(Phase2EdgeSize, NumPhase2Moves, 0, phase2EdgeTransition.Lookup)
	phase2SlicePruning = NewPruningTable(Phase2SliceSize, NumPhase2Moves, 0, phase2SliceTransition.Lookup)
}

// Phase2State is the coordinate triple IDA* searches over for Phase 2.
type Phase2State struct {
	Corner, Edge, Slice int
}

// Phase2StateFromCube projects a (already-in-G1) cubie-level state onto its
// Phase-2 coordinates.
func Phase2StateFromCube(c Cube3x3) Phase2State {
	return Phase2State{
		Corner: PermCoordinate(c.Corners.Perm),
		Edge:   PermCoordinate(projectSub(c.Edges.Perm, 0, 8)),
		Slice:  PermCoordinate(projectSub(c.Edges.Perm, FR, 4)),
	}
}

// IsSolved reports whether the state is the identity.
func (s Phase2State) IsSolved() bool {
	return s.Corner == 0 && s.Edge == 0 && s.Slice == 0
}

func phase2Heuristic(s Phase2State) int {
	h := phase2CornerPruning.Distance(s.Corner)
	if d := phase2EdgePruning.Distance(s.Edge); d > h {
		h = d
	}
	if d := phase2SlicePruning.Distance(s.Slice); d > h {
		h = d
	}
	return h
}

func phase2Neighbors(s Phase2State) []search.Step[Phase2State] {
	steps := make([]search.Step[Phase2State], NumPhase2Moves)
	for idx := 0; idx < NumPhase2Moves; idx++ {
		m := Phase2Generators[idx]
		steps[idx] = search.Step[Phase2State]{
			Move: m,
			State: Phase2State{
				Corner: phase2CornerTransition.Lookup(s.Corner, idx),
				Edge:   phase2EdgeTransition.Lookup(s.Edge, idx),
				Slice:  phase2SliceTransition.Lookup(s.Slice, idx),
			},
		}
	}
	return steps
}

// Phase2Problem builds the IDA* search problem solving a G1 state outright.
func Phase2Problem(c Cube3x3) search.Problem[Phase2State] {
	return search.Problem[Phase2State]{
		Start:     Phase2StateFromCube(c),
		Heuristic: phase2Heuristic,
		Neighbors: phase2Neighbors,
		IsGoal:    Phase2State.IsSolved,
	}
}
