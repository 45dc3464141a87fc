package skewb

import (
	"strings"
)

// OptimizeMoves simplifies a move sequence by combining consecutive moves
// on the same axis in mod-3 twist arithmetic:
//   - U U   -> U'
//   - U U'  -> (nothing)
//   - U' U' -> U
//
// Identity sentinels are dropped. Collapsing one pair can expose another,
// so combination re-checks against the new tail each time.
func OptimizeMoves(moves []Move) []Move {
	optimized := make([]Move, 0, len(moves))

	for _, move := range moves {
		if move.Identity() {
			continue
		}

		if len(optimized) > 0 {
			last := optimized[len(optimized)-1]
			if last.Axis == move.Axis {
				combined := combineSameAxisMoves(last, move)
				if combined == nil {
					optimized = optimized[:len(optimized)-1]
				} else {
					optimized[len(optimized)-1] = *combined
				}
				continue
			}
		}

		optimized = append(optimized, move)
	}

	return optimized
}

// combineSameAxisMoves combines two moves on the same axis.
// Returns nil if the moves cancel out completely.
func combineSameAxisMoves(first, second Move) *Move {
	total := (moveToTwists(first) + moveToTwists(second)) % 3

	switch total {
	case 1:
		return &Move{Axis: first.Axis, Clockwise: true}
	case 2:
		return &Move{Axis: first.Axis, Clockwise: false}
	default:
		return nil
	}
}

// moveToTwists converts a move to its number of clockwise 120-degree
// twists (1 or 2).
func moveToTwists(move Move) int {
	if move.Clockwise {
		return 1
	}
	return 2
}

// OptimizeScramble takes a scramble string and returns a simplified
// version.
func OptimizeScramble(scramble string) (string, error) {
	moves, err := ParseScramble(scramble)
	if err != nil {
		return "", err
	}

	optimized := OptimizeMoves(moves)

	var result []string
	for _, move := range optimized {
		result = append(result, move.String())
	}

	return strings.Join(result, " "), nil
}

// GetMoveCount returns the length of a sequence after simplification.
func GetMoveCount(moves []Move) int {
	return len(OptimizeMoves(moves))
}

// IsCancellingSequence reports whether OptimizeMoves reduces the sequence
// to nothing. Only adjacent same-axis moves are combined, so this detects
// textual cancellation only: a sequence such as U L U' L', whose twists
// sum to zero on each axis, is not reported as cancelling.
func IsCancellingSequence(moves []Move) bool {
	return len(OptimizeMoves(moves)) == 0
}
