package cube

import (
	"errors"
	"testing"
)

func TestPermCoordinateRoundTrip(t *testing.T) {
	perms := [][]int{
		{0, 1, 2, 3},
		{3, 2, 1, 0},
		{1, 0, 3, 2},
		{0, 1, 2, 3, 4, 5, 6, 7},
		{7, 6, 5, 4, 3, 2, 1, 0},
	}
	for _, perm := range perms {
		coord := PermCoordinate(perm)
		got, err := PermFromCoordinate(coord, len(perm))
		if err != nil {
			t.Fatalf("PermFromCoordinate(%d, %d) error: %v", coord, len(perm), err)
		}
		for i := range perm {
			if got[i] != perm[i] {
				t.Errorf("round trip of %v gave %v at coord %d", perm, got, coord)
				break
			}
		}
	}
}

func TestPermCoordinateIdentityIsZero(t *testing.T) {
	identity := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if coord := PermCoordinate(identity); coord != 0 {
		t.Errorf("PermCoordinate(identity) = %d, want 0", coord)
	}
}

func TestPermFromCoordinateRejectsOutOfRange(t *testing.T) {
	if _, err := PermFromCoordinate(-1, 4); !errors.Is(err, ErrCoordinateRange) {
		t.Errorf("PermFromCoordinate(-1, 4) error = %v, want ErrCoordinateRange", err)
	}
	if _, err := PermFromCoordinate(Factorial(4), 4); !errors.Is(err, ErrCoordinateRange) {
		t.Errorf("PermFromCoordinate(4!, 4) error = %v, want ErrCoordinateRange", err)
	}
}

// TestCornerOrientationCoordinate is spec scenario 4: the cubie array with
// corners 0-6 twisted clockwise (orientation 2) and corner 7 twisted
// counter-clockwise (orientation 1) has o_coordinate 2186, and decodes back
// to the same orientation array.
func TestCornerOrientationCoordinate(t *testing.T) {
	ori := []int{2, 2, 2, 2, 2, 2, 2, 1}
	if coord := OriCoordinate(ori, CornerMod); coord != 2186 {
		t.Errorf("OriCoordinate(%v, 3) = %d, want 2186", ori, coord)
	}

	got, err := OriFromCoordinate(2186, NumCorners, CornerMod)
	if err != nil {
		t.Fatalf("OriFromCoordinate(2186, 8, 3) error: %v", err)
	}
	for i := range ori {
		if got[i] != ori[i] {
			t.Errorf("OriFromCoordinate(2186, 8, 3) = %v, want %v", got, ori)
			break
		}
	}
}

// TestEdgeOrientationCoordinate is spec scenario 5: twelve edges all flipped
// (orientation 1) has o_coordinate 2047.
func TestEdgeOrientationCoordinate(t *testing.T) {
	ori := make([]int, NumEdges)
	for i := range ori {
		ori[i] = 1
	}
	if coord := OriCoordinate(ori, EdgeMod); coord != 2047 {
		t.Errorf("OriCoordinate(%v, 2) = %d, want 2047", ori, coord)
	}
}

func TestOriFromCoordinateRejectsOutOfRange(t *testing.T) {
	if _, err := OriFromCoordinate(-1, NumCorners, CornerMod); !errors.Is(err, ErrCoordinateRange) {
		t.Errorf("OriFromCoordinate(-1, ...) error = %v, want ErrCoordinateRange", err)
	}
	if _, err := OriFromCoordinate(Phase1COSize, NumCorners, CornerMod); !errors.Is(err, ErrCoordinateRange) {
		t.Errorf("OriFromCoordinate(2187, ...) error = %v, want ErrCoordinateRange", err)
	}
}

// TestSliceCombinationIdentityIsMaxValue is spec scenario 6: the identity
// combination (the four distinguished pieces already in the last four
// positions) maps to C(12,4)-1 = 494, the "identity is the maximum value"
// quirk documented in coordinate.go.
func TestSliceCombinationIdentityIsMaxValue(t *testing.T) {
	member := make([]bool, NumEdges)
	for i := NumEdges - 4; i < NumEdges; i++ {
		member[i] = true
	}
	if coord := CombCoordinate(member, 4); coord != 494 {
		t.Errorf("CombCoordinate(identity, 4) = %d, want 494", coord)
	}

	got, err := CombFromCoordinate(494, NumEdges, 4)
	if err != nil {
		t.Fatalf("CombFromCoordinate(494, 12, 4) error: %v", err)
	}
	for i := range member {
		if got[i] != member[i] {
			t.Errorf("CombFromCoordinate(494, 12, 4) = %v, want %v", got, member)
			break
		}
	}
}

func TestCombFromCoordinateRejectsOutOfRange(t *testing.T) {
	if _, err := CombFromCoordinate(-1, NumEdges, 4); !errors.Is(err, ErrCoordinateRange) {
		t.Errorf("CombFromCoordinate(-1, ...) error = %v, want ErrCoordinateRange", err)
	}
	if _, err := CombFromCoordinate(495, NumEdges, 4); !errors.Is(err, ErrCoordinateRange) {
		t.Errorf("CombFromCoordinate(495, ...) error = %v, want ErrCoordinateRange", err)
	}
}

func TestRankUnrankSequenceRoundTrip(t *testing.T) {
	values := []int{3, 1, 0, 2}
	coord := RankSequence(values)
	got, err := UnrankSequence(coord, len(values))
	if err != nil {
		t.Fatalf("UnrankSequence(%d, %d) error: %v", coord, len(values), err)
	}
	// UnrankSequence reconstructs the relative order over 0..n-1, not the
	// original absolute values; re-ranking the result must reproduce coord.
	if recoord := RankSequence(got); recoord != coord {
		t.Errorf("RankSequence(UnrankSequence(%d)) = %d, want %d", coord, recoord, coord)
	}
}
