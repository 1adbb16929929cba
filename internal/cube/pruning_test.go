package cube

import "testing"

func TestPruningTableDistanceToGoalIsZero(t *testing.T) {
	tbl := NewTransitionTable(4, 2, cyclicTransition)
	pruning := NewPruningTable(4, 2, 0, tbl.Lookup)

	if d := pruning.Distance(0); d != 0 {
		t.Errorf("Distance(goal) = %d, want 0", d)
	}
	// "advance" cycles 0->1->2->3->0; the BFS explores forward from goal, so
	// reaching coordinate c costs exactly c advance steps.
	for coord, want := range map[int]int{1: 1, 2: 2, 3: 3} {
		if d := pruning.Distance(coord); d != want {
			t.Errorf("Distance(%d) = %d, want %d", coord, d, want)
		}
	}
}

func TestPruningTablePanicsOnUnreachableCoordinate(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPruningTable should panic when a coordinate is unreachable from goal")
		}
	}()
	// Every move sends 0 to 1 and leaves every other coordinate in place, so
	// coordinates 2 and 3 are never produced by any transition out of goal 0
	// and stay unvisited.
	unreachable := func(coord, moveIdx int) int {
		if coord == 0 {
			return 1
		}
		return coord
	}
	NewPruningTable(4, 1, 0, unreachable)
}

// TestPhase1CornerOrientationPruningBound is spec scenario 3: the Phase-1
// corner-orientation pruning table has distance 0 at coordinate 0 and a
// maximum entry of at most 11, the known Phase-1 diameter bound.
func TestPhase1CornerOrientationPruningBound(t *testing.T) {
	BuildTables()

	if d := phase1COPruning.Distance(0); d != 0 {
		t.Errorf("phase1COPruning.Distance(0) = %d, want 0", d)
	}

	max := 0
	for coord := 0; coord < Phase1COSize; coord++ {
		if d := phase1COPruning.Distance(coord); d > max {
			max = d
		}
	}
	if max > 11 {
		t.Errorf("phase1COPruning max distance = %d, want <= 11", max)
	}
}
