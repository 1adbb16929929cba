package cube

// Cube3x3 is a full cubie-level 3x3 state: the corner and edge permutation
// and orientation arrays together. This is the representation the two-phase
// solver reasons about directly; internal/cube's sticker-level Cube is only
// bridged in via facelets.go for CLI and CFEN interop.
type Cube3x3 struct {
	Corners CubieArray
	Edges   CubieArray
}

// SolvedCube3x3 returns the identity cubie-level state.
func SolvedCube3x3() Cube3x3 {
	return Cube3x3{
		Corners: NewCubieArray(NumCorners, CornerMod),
		Edges:   NewCubieArray(NumEdges, EdgeMod),
	}
}

// IsSolved reports whether both arrays are the identity.
func (c Cube3x3) IsSolved() bool {
	return c.Corners.IsIdentity() && c.Edges.IsIdentity()
}

// Apply returns the state reached by applying HTM generator moveIdx (0-17).
func (c Cube3x3) Apply(moveIdx int) Cube3x3 {
	return Cube3x3{
		Corners: c.Corners.Compose(CornerGenerators[moveIdx]),
		Edges:   c.Edges.Compose(EdgeGenerators[moveIdx]),
	}
}

// ApplySeq applies a sequence of HTM generator indices in order.
func (c Cube3x3) ApplySeq(moves []int) Cube3x3 {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// MoveLabels renders a sequence of HTM generator indices as notation, e.g.
// []int{0, 4, 17} -> "U R2 B'".
func MoveLabels(moves []int) []string {
	labels := make([]string, len(moves))
	for i, m := range moves {
		labels[i] = MoveLabel[m]
	}
	return labels
}
