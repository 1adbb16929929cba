package cube

// facelet names one sticker position on a sticker-level Cube: a face plus a
// row/column within it.
type facelet struct {
	face     Face
	row, col int
}

func (f facelet) read(c *Cube) Color {
	return c.Faces[f.face][f.row][f.col]
}

func (f facelet) write(c *Cube, col Color) {
	c.Faces[f.face][f.row][f.col] = col
}

// cornerFacelets lists, for each corner position (URF..DRB), its three
// stickers in a fixed (U/D-face, F/B-face, L/R-face) role order. This order
// is what lets orientation be read and written as a simple cyclic shift,
// matching the corner-twist convention generators.go uses: a move with raw
// shift r=1 moves the U/D-role sticker into the F/B-role slot, r=2 moves it
// into the L/R-role slot.
var cornerFacelets = [NumCorners][3]facelet{
	URF: {{Up, 2, 2}, {Front, 0, 2}, {Right, 0, 0}},
	UFL: {{Up, 2, 0}, {Front, 0, 0}, {Left, 0, 2}},
	ULB: {{Up, 0, 0}, {Back, 0, 2}, {Left, 0, 0}},
	UBR: {{Up, 0, 2}, {Back, 0, 0}, {Right, 0, 2}},
	DFR: {{Down, 0, 2}, {Front, 2, 2}, {Right, 2, 0}},
	DLF: {{Down, 0, 0}, {Front, 2, 0}, {Left, 2, 2}},
	DBL: {{Down, 2, 0}, {Back, 2, 2}, {Left, 2, 0}},
	DRB: {{Down, 2, 2}, {Back, 2, 0}, {Right, 2, 2}},
}

// cornerClass is the sign of x*y*z for each corner's position in the
// coordinate frame generators.go derives its move tables from. It is the
// same chirality split that makes a single face rotation twist alternating
// corners in opposite directions (see generators.go); reading and writing
// stickers has to apply the same split to land on the same Ori values the
// move generators produce.
var cornerClass = [NumCorners]int{1, -1, 1, -1, -1, 1, -1, 1}

// edgeFacelets lists, for each edge position, its two stickers in (primary,
// secondary) role order: primary is the Up/Down-facing sticker if the edge
// touches Up or Down, otherwise the Front/Back-facing one. This is the
// standard edge-orientation reference axis, chosen so that only F and B
// quarter turns ever swap primary and secondary — matching the only moves
// that flip edge orientation in generators.go.
var edgeFacelets = [NumEdges][2]facelet{
	UR: {{Up, 1, 2}, {Right, 0, 1}},
	UF: {{Up, 2, 1}, {Front, 0, 1}},
	UL: {{Up, 1, 0}, {Left, 0, 1}},
	UB: {{Up, 0, 1}, {Back, 0, 1}},
	DR: {{Down, 1, 2}, {Right, 2, 1}},
	DF: {{Down, 0, 1}, {Front, 2, 1}},
	DL: {{Down, 1, 0}, {Left, 2, 1}},
	DB: {{Down, 2, 1}, {Back, 2, 1}},
	FR: {{Front, 1, 2}, {Right, 1, 0}},
	FL: {{Front, 1, 0}, {Left, 1, 2}},
	BL: {{Back, 1, 2}, {Left, 1, 0}},
	BR: {{Back, 1, 0}, {Right, 1, 2}},
}

var (
	cornerHome [NumCorners][3]Color
	edgeHome   [NumEdges][2]Color
)

func init() {
	solved := NewCube(3)
	for i := 0; i < NumCorners; i++ {
		for k := 0; k < 3; k++ {
			cornerHome[i][k] = cornerFacelets[i][k].read(solved)
		}
	}
	for i := 0; i < NumEdges; i++ {
		for k := 0; k < 2; k++ {
			edgeHome[i][k] = edgeFacelets[i][k].read(solved)
		}
	}
}

// StickerFromCube3x3 renders a cubie-level state as a 3x3 sticker cube.
func StickerFromCube3x3(c Cube3x3) *Cube {
	out := NewCube(3)
	for i := 0; i < NumCorners; i++ {
		p := c.Corners.Perm[i]
		raw := c.Corners.Ori[i]
		if cornerClass[i] == 1 {
			raw = (3 - raw) % 3
		}
		for k := 0; k < 3; k++ {
			cornerFacelets[i][k].write(out, cornerHome[p][(k-raw+3)%3])
		}
	}
	for i := 0; i < NumEdges; i++ {
		p := c.Edges.Perm[i]
		ori := c.Edges.Ori[i]
		for k := 0; k < 2; k++ {
			src := k
			if ori == 1 {
				src = 1 - k
			}
			edgeFacelets[i][k].write(out, edgeHome[p][src])
		}
	}
	return out
}

// Cube3x3FromSticker reads a solved-geometry 3x3 sticker cube (a real scan
// or a CFEN-derived grid) into cubie-level form. It identifies each corner
// and edge position's occupant by matching its observed sticker colors
// against the known per-piece home colors; a position whose colors don't
// match any piece under any rotation means the input isn't a legally
// assembled cube, which is a caller error (malformed CFEN, bad scan), not a
// recoverable state, so this panics rather than returning a bogus solve.
func Cube3x3FromSticker(c *Cube) Cube3x3 {
	if c.Size != 3 {
		panic("cube: Cube3x3FromSticker requires a 3x3 cube")
	}

	corners := NewCubieArray(NumCorners, CornerMod)
	for i := 0; i < NumCorners; i++ {
		var observed [3]Color
		for k := 0; k < 3; k++ {
			observed[k] = cornerFacelets[i][k].read(c)
		}
		p, raw := matchCorner(observed)
		ori := raw
		if cornerClass[i] == 1 {
			ori = (3 - raw) % 3
		}
		corners.Perm[i] = p
		corners.Ori[i] = ori
	}

	edges := NewCubieArray(NumEdges, EdgeMod)
	for i := 0; i < NumEdges; i++ {
		var observed [2]Color
		for k := 0; k < 2; k++ {
			observed[k] = edgeFacelets[i][k].read(c)
		}
		p, ori := matchEdge(observed)
		edges.Perm[i] = p
		edges.Ori[i] = ori
	}

	return Cube3x3{Corners: corners, Edges: edges}
}

func matchCorner(observed [3]Color) (piece, raw int) {
	for p := 0; p < NumCorners; p++ {
		for raw = 0; raw < 3; raw++ {
			if observed[0] == cornerHome[p][(0-raw+3)%3] &&
				observed[1] == cornerHome[p][(1-raw+3)%3] &&
				observed[2] == cornerHome[p][(2-raw+3)%3] {
				return p, raw
			}
		}
	}
	panic("cube: corner sticker colors do not match any legal piece")
}

func matchEdge(observed [2]Color) (piece, ori int) {
	for p := 0; p < NumEdges; p++ {
		if observed[0] == edgeHome[p][0] && observed[1] == edgeHome[p][1] {
			return p, 0
		}
		if observed[0] == edgeHome[p][1] && observed[1] == edgeHome[p][0] {
			return p, 1
		}
	}
	panic("cube: edge sticker colors do not match any legal piece")
}
