package skewb

import (
	"fmt"
	"strings"
)

// ParseMove parses a move from standard notation.
// Supports: U, U', D, D', L, L', R, R', plus I for the identity.
func ParseMove(notation string) (Move, error) {
	notation = strings.TrimSpace(notation)
	if len(notation) == 0 {
		return Move{}, fmt.Errorf("empty move notation")
	}

	if notation == "I" {
		return Move{}, nil
	}

	move := Move{Clockwise: true}

	if strings.HasSuffix(notation, "'") {
		move.Clockwise = false
		notation = notation[:len(notation)-1]
	}

	switch notation {
	case "U":
		move.Axis = Up
	case "D":
		move.Axis = Down
	case "L":
		move.Axis = Left
	case "R":
		move.Axis = Right
	default:
		return Move{}, fmt.Errorf("unknown move notation: %s", notation)
	}

	return move, nil
}

// ParseMoves parses a space-separated sequence of moves.
func ParseMoves(sequence string) ([]Move, error) {
	sequence = strings.TrimSpace(sequence)
	if len(sequence) == 0 {
		return []Move{}, nil
	}

	parts := strings.Fields(sequence)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("error parsing move '%s': %v", part, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// ParseScramble is an alias for ParseMoves.
func ParseScramble(sequence string) ([]Move, error) {
	return ParseMoves(sequence)
}

// FormatMoves renders a move sequence as space-separated notation.
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, move := range moves {
		parts[i] = move.String()
	}
	return strings.Join(parts, " ")
}
