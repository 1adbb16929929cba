package cube

import (
	"testing"

	"github.com/ehrlich-b/cube/internal/search"
)

func TestSolveAlreadySolved(t *testing.T) {
	solution, ok := Solve(SolvedCube3x3(), 20)
	if !ok {
		t.Fatal("Solve(solved) should always succeed")
	}
	if len(solution) != 0 {
		t.Errorf("Solve(solved) = %v, want empty solution", solution)
	}
}

func TestSolveScrambles(t *testing.T) {
	tests := []struct {
		name     string
		scramble string
		maxMoves int
	}{
		{"single quarter turn", "R", 20},
		{"single double turn", "U2", 20},
		{"four move sequence", "R U R' U'", 20},
		{"sexy move times two", "R U R' U' R U R' U'", 20},
		{"mixed faces", "R U2 F' L D' B R2", 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			moves, err := ParseScramble(tt.scramble)
			if err != nil {
				t.Fatalf("ParseScramble(%q) error = %v", tt.scramble, err)
			}
			indices, err := MovesToHTMIndices(moves)
			if err != nil {
				t.Fatalf("MovesToHTMIndices error = %v", err)
			}

			scrambled := SolvedCube3x3().ApplySeq(indices)
			solution, ok := Solve(scrambled, tt.maxMoves)
			if !ok {
				t.Fatalf("Solve(%q) found no solution within %d moves", tt.scramble, tt.maxMoves)
			}

			result := scrambled.ApplySeq(solution)
			if !result.IsSolved() {
				t.Errorf("Solve(%q) produced %v, which does not solve the cube", tt.scramble, MoveLabels(solution))
			}
		})
	}
}

// TestSolveSuperflip is spec scenario 1: the superflip scramble
// "U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2" solves within a
// max_length of 22, and the optimal solution for this position is known to
// require between 20 and 22 half turns.
func TestSolveSuperflip(t *testing.T) {
	const scramble = "U R2 F B R B2 R U2 L B2 R U' D' R2 F R' L B2 U2 F2"
	const maxMoves = 22

	moves, err := ParseScramble(scramble)
	if err != nil {
		t.Fatalf("ParseScramble(%q) error = %v", scramble, err)
	}
	indices, err := MovesToHTMIndices(moves)
	if err != nil {
		t.Fatalf("MovesToHTMIndices error = %v", err)
	}

	scrambled := SolvedCube3x3().ApplySeq(indices)
	solution, ok := Solve(scrambled, maxMoves)
	if !ok {
		t.Fatalf("Solve(superflip) found no solution within %d moves", maxMoves)
	}

	if len(solution) < 20 || len(solution) > 22 {
		t.Errorf("Solve(superflip) returned length %d, want in [20, 22]", len(solution))
	}
	if len(solution) > 0 {
		if first := solution[0]; first < 0 || first >= NumHTM {
			t.Errorf("Solve(superflip) first move index = %d, want in [0, %d)", first, NumHTM)
		}
	}

	result := scrambled.ApplySeq(solution)
	if !result.IsSolved() {
		t.Errorf("Solve(superflip) produced %v, which does not solve the cube", MoveLabels(solution))
	}
}

func TestSolveScrambleConvenienceWrapper(t *testing.T) {
	indices := []int{3, 0, 5} // R U R', in HTM index form
	solution, ok := SolveScramble(indices, 20)
	if !ok {
		t.Fatal("SolveScramble should find a solution")
	}

	result := SolvedCube3x3().ApplySeq(indices).ApplySeq(solution)
	if !result.IsSolved() {
		t.Error("SolveScramble's solution does not solve the cube")
	}
}

func TestSolveRejectsTooShortBudget(t *testing.T) {
	// R U R' U' is not solved, so a zero move budget cannot reach the goal.
	c := SolvedCube3x3().ApplySeq([]int{3, 0, 5, 2})
	if c.IsSolved() {
		t.Fatal("test scramble should not already be solved")
	}
	if _, ok := Solve(c, 0); ok {
		t.Error("Solve with a zero move budget on an unsolved cube should fail")
	}
}

func TestPhase1ReachesG1(t *testing.T) {
	moves, _ := ParseScramble("R U R' U' F2 D L'")
	indices, err := MovesToHTMIndices(moves)
	if err != nil {
		t.Fatalf("MovesToHTMIndices error = %v", err)
	}
	c := SolvedCube3x3().ApplySeq(indices)

	problem := Phase1Problem(c)
	if problem.IsGoal(problem.Start) {
		t.Skip("scramble already lies in G1, nothing to check")
	}

	solution, ok := search.Solve(problem, 12)
	if !ok {
		t.Fatal("expected a Phase-1 solution within 12 moves")
	}

	g1 := c.ApplySeq(solution)
	if !Phase1StateFromCube(g1).IsG1() {
		t.Error("Phase-1 solution did not reach G1")
	}
}
