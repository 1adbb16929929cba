package cube

// This file defines the eighteen half-turn-metric (HTM) generators — the
// concrete corner and edge CubieArrays for U, U2, U', R, R2, R', F, F2, F',
// L, L2, L', D, D2, D', B, B2, B' — in that fixed index order (0-17).
//
// Corner positions are numbered URF=0, UFL=1, ULB=2, UBR=3, DFR=4, DLF=5,
// DBL=6, DRB=7. Edge positions are numbered UR=0, UF=1, UL=2, UB=3, DR=4,
// DF=5, DL=6, DB=7, FR=8, FL=9, BL=10, BR=11 — chosen so that the four
// UD-slice edges (FR, FL, BL, BR) are exactly the last four, which is what
// the Phase-1 combination coordinate relies on (§ phase1.go).
//
// Rather than transcribing all eighteen moves by hand, only the six
// quarter-turn generators are specified directly below; the double and
// inverse moves are derived by composing a quarter turn with itself two or
// three times. This is exact (group composition guarantees F2 = F·F and
// F' = F·F·F), and it is also why edge flipping "just works" from a single
// per-quarter-turn fact: a quarter turn of F or B flips its four touched
// edges, every other quarter turn flips none, so composing a flip with
// itself twice cancels it out (F2 flips nothing) while composing it three
// times leaves it flipped (F' flips, same as F).

const (
	NumCorners = 8
	NumEdges   = 12
	CornerMod  = 3
	EdgeMod    = 2
	NumHTM     = 18
)

// Corner position indices.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge position indices. FR, FL, BL, BR (8-11) are the UD-slice edges.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// quarterTurn bundles the corner and edge CubieArrays for one clockwise
// quarter turn of a face.
type quarterTurn struct {
	corners CubieArray
	edges   CubieArray
}

var quarterTurns = [6]quarterTurn{
	// U
	{
		corners: MustCubieArray(NumCorners, CornerMod,
			[]int{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
			[]int{0, 0, 0, 0, 0, 0, 0, 0}),
		edges: MustCubieArray(NumEdges, EdgeMod,
			[]int{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
			[]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
	},
	// R
	{
		corners: MustCubieArray(NumCorners, CornerMod,
			[]int{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
			[]int{2, 0, 0, 1, 1, 0, 0, 2}),
		edges: MustCubieArray(NumEdges, EdgeMod,
			[]int{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
			[]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
	},
	// F
	{
		corners: MustCubieArray(NumCorners, CornerMod,
			[]int{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
			[]int{1, 2, 0, 0, 2, 1, 0, 0}),
		edges: MustCubieArray(NumEdges, EdgeMod,
			[]int{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
			[]int{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0}),
	},
	// L
	{
		corners: MustCubieArray(NumCorners, CornerMod,
			[]int{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
			[]int{0, 1, 2, 0, 0, 2, 1, 0}),
		edges: MustCubieArray(NumEdges, EdgeMod,
			[]int{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
			[]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
	},
	// D
	{
		corners: MustCubieArray(NumCorners, CornerMod,
			[]int{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
			[]int{0, 0, 0, 0, 0, 0, 0, 0}),
		edges: MustCubieArray(NumEdges, EdgeMod,
			[]int{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
			[]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}),
	},
	// B
	{
		corners: MustCubieArray(NumCorners, CornerMod,
			[]int{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
			[]int{0, 0, 1, 2, 0, 0, 2, 1}),
		edges: MustCubieArray(NumEdges, EdgeMod,
			[]int{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
			[]int{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1}),
	},
}

// FaceLabel names the six quarter-turn generators, in quarterTurns order.
var FaceLabel = [6]string{"U", "R", "F", "L", "D", "B"}

// MoveLabel gives the conventional HTM notation for generator index 0-17.
var MoveLabel [NumHTM]string

// CornerGenerators and EdgeGenerators hold all 18 HTM generators, derived
// from the six quarter turns by repeated composition: index 3*f+0 is the
// quarter turn, 3*f+1 its double, 3*f+2 its inverse (three quarter turns).
var (
	CornerGenerators [NumHTM]CubieArray
	EdgeGenerators   [NumHTM]CubieArray
)

func init() {
	for f := 0; f < 6; f++ {
		qc := quarterTurns[f].corners
		qe := quarterTurns[f].edges

		CornerGenerators[3*f+0] = qc
		EdgeGenerators[3*f+0] = qe

		CornerGenerators[3*f+1] = qc.Compose(qc)
		EdgeGenerators[3*f+1] = qe.Compose(qe)

		CornerGenerators[3*f+2] = qc.Compose(qc).Compose(qc)
		EdgeGenerators[3*f+2] = qe.Compose(qe).Compose(qe)

		MoveLabel[3*f+0] = FaceLabel[f]
		MoveLabel[3*f+1] = FaceLabel[f] + "2"
		MoveLabel[3*f+2] = FaceLabel[f] + "'"
	}
}

// Phase2Generators lists, for each of the 10 G1 generators (U, U2, U', D,
// D2, D', R2, F2, L2, B2, in that order) its index into the 18-element HTM
// arrays above.
var Phase2Generators = [10]int{0, 1, 2, 12, 13, 14, 4, 7, 10, 16}

// NumPhase2Moves is the size of the restricted G1 generator set.
const NumPhase2Moves = 10

// Phase2MoveLabel gives the HTM notation for a Phase-2 generator index 0-9.
func Phase2MoveLabel(idx int) string {
	return MoveLabel[Phase2Generators[idx]]
}
