package skewb

import (
	"testing"
)

func TestOptimizeScramble(t *testing.T) {
	tests := []struct {
		scramble string
		want     string
	}{
		{"", ""},
		{"U", "U"},
		{"U U", "U'"},
		{"U' U'", "U"},
		{"U U'", ""},
		{"U' U", ""},
		{"U U U", ""},
		{"L' L' L'", ""},
		{"U L", "U L"},
		{"U U L D L U R'", "U' L D L U R'"},
		{"U L L' U", "U'"}, // cancellation exposes a new pair
		{"R R D D' R R", "R"}, // R R (R R) after the middle pair cancels
	}

	for _, tt := range tests {
		t.Run(tt.scramble, func(t *testing.T) {
			got, err := OptimizeScramble(tt.scramble)
			if err != nil {
				t.Fatalf("OptimizeScramble(%q): %v", tt.scramble, err)
			}
			if got != tt.want {
				t.Errorf("OptimizeScramble(%q) = %q, want %q", tt.scramble, got, tt.want)
			}
		})
	}
}

func TestOptimizeScrambleInvalid(t *testing.T) {
	if _, err := OptimizeScramble("U F"); err == nil {
		t.Error("OptimizeScramble should reject invalid moves")
	}
}

// Simplification must never change what the sequence does to the puzzle.
func TestOptimizePreservesEffect(t *testing.T) {
	scrambles := []string{
		"U U",
		"U U U L",
		"U L L' U",
		"R R D D' R R",
		"U' U' L D D' L' R R R U",
	}

	for _, scramble := range scrambles {
		t.Run(scramble, func(t *testing.T) {
			moves, err := ParseScramble(scramble)
			if err != nil {
				t.Fatal(err)
			}

			original := NewSkewb()
			original.ApplyMoves(moves)

			optimized := NewSkewb()
			optimized.ApplyMoves(OptimizeMoves(moves))

			if *original != *optimized {
				t.Errorf("optimized sequence diverges: %v vs %v", optimized, original)
			}
		})
	}
}

func TestOptimizeDropsIdentity(t *testing.T) {
	moves := []Move{{}, {Axis: Up, Clockwise: true}, {}}
	optimized := OptimizeMoves(moves)
	if len(optimized) != 1 || optimized[0] != (Move{Axis: Up, Clockwise: true}) {
		t.Errorf("OptimizeMoves should drop identity sentinels, got %v", optimized)
	}
}

func TestGetMoveCount(t *testing.T) {
	moves, err := ParseScramble("U U L D L U R'")
	if err != nil {
		t.Fatal(err)
	}
	if got := GetMoveCount(moves); got != 6 {
		t.Errorf("GetMoveCount() = %d, want 6", got)
	}
}

func TestIsCancellingSequence(t *testing.T) {
	tests := []struct {
		scramble string
		want     bool
	}{
		{"U U'", true},
		{"U U U", true},
		{"U L", false},
		{"U L' L U'", true},
	}

	for _, tt := range tests {
		moves, err := ParseScramble(tt.scramble)
		if err != nil {
			t.Fatal(err)
		}
		if got := IsCancellingSequence(moves); got != tt.want {
			t.Errorf("IsCancellingSequence(%q) = %v, want %v", tt.scramble, got, tt.want)
		}
	}
}
