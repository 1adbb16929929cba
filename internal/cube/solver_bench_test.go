package cube

import "testing"

// BenchmarkSolve benchmarks the two-phase solver across scrambles of
// increasing move count. BuildTables is called once outside the timed loop
// so the benchmark measures search time, not one-time table construction.
func BenchmarkSolve(b *testing.B) {
	BuildTables()

	benchmarks := []struct {
		name     string
		scramble string
		maxMoves int
	}{
		{"1move", "R", 20},
		{"2moves", "R U", 20},
		{"4moves", "R U R' U'", 20},
		{"7moves", "R U2 F' L D' B R2", 22},
	}

	for _, bm := range benchmarks {
		moves, err := ParseScramble(bm.scramble)
		if err != nil {
			b.Fatalf("ParseScramble(%q) error = %v", bm.scramble, err)
		}
		indices, err := MovesToHTMIndices(moves)
		if err != nil {
			b.Fatalf("MovesToHTMIndices error = %v", err)
		}
		scrambled := SolvedCube3x3().ApplySeq(indices)

		b.Run(bm.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, ok := Solve(scrambled, bm.maxMoves); !ok {
					b.Fatalf("Solve(%q) found no solution", bm.scramble)
				}
			}
		})
	}
}

// BenchmarkCubeOperations benchmarks core cubie-level state operations.
func BenchmarkCubeOperations(b *testing.B) {
	b.Run("SolvedCube3x3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = SolvedCube3x3()
		}
	})

	b.Run("IsSolved", func(b *testing.B) {
		c := SolvedCube3x3().Apply(3) // R
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = c.IsSolved()
		}
	})

	b.Run("Apply", func(b *testing.B) {
		c := SolvedCube3x3()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			c = c.Apply(3)
		}
	})
}

// BenchmarkMoveOperations benchmarks sticker-level move parsing and
// cubie-level move application together, since a real solve crosses both.
func BenchmarkMoveOperations(b *testing.B) {
	b.Run("ParseScramble", func(b *testing.B) {
		scramble := "R U R' U' F R U R' U' F'"
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = ParseScramble(scramble)
		}
	})

	b.Run("ApplySeq", func(b *testing.B) {
		moves, _ := ParseScramble("R U R' U' F R U R' U' F'")
		indices, _ := MovesToHTMIndices(moves)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = SolvedCube3x3().ApplySeq(indices)
		}
	})
}

// BenchmarkFaceletsRoundTrip benchmarks the sticker/cubie conversion bridge
// used by the CLI and CFEN layers.
func BenchmarkFaceletsRoundTrip(b *testing.B) {
	c := SolvedCube3x3().Apply(3).Apply(0) // R U

	b.Run("StickerFromCube3x3", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			_ = StickerFromCube3x3(c)
		}
	})

	b.Run("Cube3x3FromSticker", func(b *testing.B) {
		sticker := StickerFromCube3x3(c)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = Cube3x3FromSticker(sticker)
		}
	})
}
