package search

import "testing"

// A tiny synthetic search space, independent of the cube domain: states are
// positions on a ring of ringSize nodes, moves step +1 or -1 around it, and
// the goal is node 0. This exercises Solve/Enumerator against a problem a
// human can hand-verify, separately from anything cube-shaped.
const ringSize = 8

func ringHeuristic(s int) int {
	d := s % ringSize
	if d < 0 {
		d += ringSize
	}
	if other := ringSize - d; other < d {
		d = other
	}
	return d
}

func ringNeighbors(s int) []Step[int] {
	next := (s + 1) % ringSize
	prev := (s - 1 + ringSize) % ringSize
	return []Step[int]{
		{State: next, Move: 1},
		{State: prev, Move: -1},
	}
}

func ringProblem(start int) Problem[int] {
	return Problem[int]{
		Start:     start,
		Heuristic: ringHeuristic,
		Neighbors: ringNeighbors,
		IsGoal:    func(s int) bool { return s == 0 },
	}
}

// bruteForceDistance computes the true shortest distance from start to 0 by
// BFS, as a reference to check IDA*'s optimality against.
func bruteForceDistance(start int) int {
	if start == 0 {
		return 0
	}
	visited := map[int]bool{start: true}
	frontier := []int{start}
	depth := 0
	for len(frontier) > 0 {
		depth++
		var next []int
		for _, s := range frontier {
			for _, step := range ringNeighbors(s) {
				if step.State == 0 {
					return depth
				}
				if !visited[step.State] {
					visited[step.State] = true
					next = append(next, step.State)
				}
			}
		}
		frontier = next
	}
	panic("unreachable: ring graph is fully connected")
}

func TestSolveAlreadyAtGoal(t *testing.T) {
	solution, ok := Solve(ringProblem(0), 5)
	if !ok {
		t.Fatal("Solve(goal) should always succeed")
	}
	if len(solution) != 0 {
		t.Errorf("Solve(goal) = %v, want empty solution", solution)
	}
}

func TestSolveMatchesBruteForceDistance(t *testing.T) {
	for start := 1; start < ringSize; start++ {
		want := bruteForceDistance(start)
		solution, ok := Solve(ringProblem(start), ringSize)
		if !ok {
			t.Fatalf("Solve(%d) found no solution", start)
		}
		if len(solution) != want {
			t.Errorf("Solve(%d) returned length %d, want optimal length %d", start, len(solution), want)
		}
	}
}

func TestSolveRejectsBudgetBelowOptimal(t *testing.T) {
	start := ringSize / 2
	optimal := bruteForceDistance(start)
	if _, ok := Solve(ringProblem(start), optimal-1); ok {
		t.Errorf("Solve(%d, maxLength=%d) should fail one below the optimal length %d", start, optimal-1, optimal)
	}
}

func TestEnumeratorYieldsNonDecreasingLengths(t *testing.T) {
	enum := NewEnumerator(ringProblem(3), ringSize)
	prev := -1
	count := 0
	for {
		sol, ok := enum.Next()
		if !ok {
			break
		}
		if len(sol) < prev {
			t.Fatalf("Enumerator yielded length %d after length %d, expected non-decreasing", len(sol), prev)
		}
		prev = len(sol)
		count++
		if count > 64 {
			t.Fatal("Enumerator did not exhaust within a reasonable number of solutions")
		}
	}
	if count == 0 {
		t.Fatal("Enumerator yielded no solutions at all")
	}
}

func TestEnumeratorExhausts(t *testing.T) {
	enum := NewEnumerator(ringProblem(1), 1)
	sol, ok := enum.Next()
	if !ok || len(sol) != 1 {
		t.Fatalf("Enumerator.Next() = %v, %v; want the single-move solution", sol, ok)
	}
	if _, ok := enum.Next(); ok {
		t.Error("Enumerator should exhaust after its one solution within maxLength=1")
	}
}
