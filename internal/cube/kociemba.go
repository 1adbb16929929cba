package cube

import "github.com/ehrlich-b/cube/internal/search"

// Solve runs the two-phase algorithm against c, returning a move sequence
// (as HTM generator indices) that solves it within maxMoves half turns, or
// false if none is found at that length.
//
// Phase 1's Enumerator is pulled one solution at a time, shortest first; for
// each candidate this re-projects the resulting G1 state and hands Phase 2
// whatever budget remains under maxMoves. The first candidate pair whose
// concatenation fits the bound is returned immediately — this is the lazy
// pull-one-at-a-time driver, not an exhaustive search over every Phase-1
// candidate, so it never computes Phase-1 solutions it doesn't need.
func Solve(c Cube3x3, maxMoves int) ([]int, bool) {
	if c.IsSolved() {
		return []int{}, true
	}

	enum := search.NewEnumerator(Phase1Problem(c), maxMoves)

	for {
		phase1Moves, ok := enum.Next()
		if !ok {
			return nil, false
		}

		remaining := maxMoves - len(phase1Moves)
		if remaining < 0 {
			return nil, false
		}

		g1State := c.ApplySeq(phase1Moves)
		phase2Moves, ok := search.Solve(Phase2Problem(g1State), remaining)
		if !ok {
			continue
		}

		return append(append([]int{}, phase1Moves...), phase2Moves...), true
	}
}

// BuildTables touches each package-level pruning table. The transition and
// pruning tables are built by this package's init functions when the package
// is loaded, so they already exist when BuildTables runs and it does no
// construction work of its own.
func BuildTables() {
	_ = phase1COPruning.Distance(0)
	_ = phase1EOPruning.Distance(0)
	_ = phase1SlicePruning.Distance(Phase1SliceGoal)
	_ = phase2CornerPruning.Distance(0)
	_ = phase2EdgePruning.Distance(0)
	_ = phase2SlicePruning.Distance(0)
}

// SolveScramble is a convenience wrapper: apply scramble (HTM generator
// indices) to the solved cube and solve the result.
func SolveScramble(scramble []int, maxMoves int) ([]int, bool) {
	return Solve(SolvedCube3x3().ApplySeq(scramble), maxMoves)
}
