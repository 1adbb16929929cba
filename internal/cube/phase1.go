package cube

import "github.com/ehrlich-b/cube/internal/search"

// Phase 1 of the two-phase algorithm searches G0 (the full cube group) for a
// sequence of HTM moves reaching G1 = <U,D,L2,R2,F2,B2> — the subgroup in
// which corners and edges are correctly oriented and the four UD-slice
// edges (FR, FL, BL, BR) occupy the middle slice, in any order. It is
// tracked with three independent coordinates: corner orientation (base 3,
// 2187 values), edge orientation (base 2, 2048 values), and UD-slice
// combination (495 values, per CombCoordinate's "identity is the maximum
// value" convention documented in coordinate.go).

const (
	Phase1COSize    = 2187 // 3^7
	Phase1EOSize    = 2048 // 2^11
	Phase1SliceSize = 495  // C(12,4)

	Phase1SliceGoal = Phase1SliceSize - 1
)

// applyOri projects how a move's corner/edge orientation array transforms a
// position-indexed orientation array: the piece now at position i is
// whichever piece previously sat at g.Perm[i], carrying its orientation
// forward plus whatever twist g itself applies at i.
func applyOri(ori []int, g CubieArray) []int {
	next := make([]int, len(ori))
	for i := range ori {
		next[i] = (ori[g.Perm[i]] + g.Ori[i]) % g.M
	}
	return next
}

// applyMember projects how a move permutes a position-indexed membership
// array (e.g. "is the piece at this position one of the four slice edges").
func applyMember(member []bool, g CubieArray) []bool {
	next := make([]bool, len(member))
	for i := range member {
		next[i] = member[g.Perm[i]]
	}
	return next
}

var (
	phase1COTransition    *TransitionTable
	phase1EOTransition    *TransitionTable
	phase1SliceTransition *TransitionTable

	phase1COPruning    *PruningTable
	phase1EOPruning    *PruningTable
	phase1SlicePruning *PruningTable
)

func init() {
	phase1COTransition = NewTransitionTable(Phase1COSize, NumHTM, func(coord, moveIdx int) int {
		ori, err := OriFromCoordinate(coord, NumCorners, CornerMod)
		if err != nil {
			panic(err)
		}
		return OriCoordinate(applyOri(ori, CornerGenerators[moveIdx]), CornerMod)
	})
	phase1EOTransition = NewTransitionTable(Phase1EOSize, NumHTM, func(coord, moveIdx int) int {
		ori, err := OriFromCoordinate(coord, NumEdges, EdgeMod)
		if err != nil {
			panic(err)
		}
		return OriCoordinate(applyOri(ori, EdgeGenerators[moveIdx]), EdgeMod)
	})
	phase1SliceTransition = NewTransitionTable(Phase1SliceSize, NumHTM, func(coord, moveIdx int) int {
		member, err := CombFromCoordinate(coord, NumEdges, 4)
		if err != nil {
			panic(err)
		}
		return CombCoordinate(applyMember(member, EdgeGenerators[moveIdx]), 4)
	})

	phase1COPruning = NewPruningTable(Phase1COSize, NumHTM, 0, phase1COTransition.Lookup)
	phase1EOPruning = NewPruningTable(Phase1EOSize, NumHTM, 0, phase1EOTransition.Lookup)
	phase1SlicePruning = NewPruningTable(Phase1SliceSize, NumHTM, Phase1SliceGoal, phase1SliceTransition.Lookup)
}

// Phase1State is the coordinate triple IDA* searches over for Phase 1.
type Phase1State struct {
	CO, EO, Slice int
}

// Phase1StateFromCube projects a full cubie-level state onto its Phase-1 coordinates.
func Phase1StateFromCube(c Cube3x3) Phase1State {
	member := make([]bool, NumEdges)
	for i, p := range c.Edges.Perm {
		member[i] = p >= FR
	}
	return Phase1State{
		CO:    OriCoordinate(c.Corners.Ori, CornerMod),
		EO:    OriCoordinate(c.Edges.Ori, EdgeMod),
		Slice: CombCoordinate(member, 4),
	}
}

// IsG1 reports whether the state already lies in the Phase-1 goal subgroup.
func (s Phase1State) IsG1() bool {
	return s.CO == 0 && s.EO == 0 && s.Slice == Phase1SliceGoal
}

func phase1Heuristic(s Phase1State) int {
	h := phase1COPruning.Distance(s.CO)
	if d := phase1EOPruning.Distance(s.EO); d > h {
		h = d
	}
	if d := phase1SlicePruning.Distance(s.Slice); d > h {
		h = d
	}
	return h
}

func phase1Neighbors(s Phase1State) []search.Step[Phase1State] {
	steps := make([]search.Step[Phase1State], NumHTM)
	for m := 0; m < NumHTM; m++ {
		steps[m] = search.Step[Phase1State]{
			Move: m,
			State: Phase1State{
				CO:    phase1COTransition.Lookup(s.CO, m),
				EO:    phase1EOTransition.Lookup(s.EO, m),
				Slice: phase1SliceTransition.Lookup(s.Slice, m),
			},
		}
	}
	return steps
}

// Phase1Problem builds the IDA* search problem reaching G1 from a scrambled state.
func Phase1Problem(c Cube3x3) search.Problem[Phase1State] {
	return search.Problem[Phase1State]{
		Start:     Phase1StateFromCube(c),
		Heuristic: phase1Heuristic,
		Neighbors: phase1Neighbors,
		IsGoal:    Phase1State.IsG1,
	}
}
