package engine

import "github.com/lgbarn/chess2d-go/internal/chess"

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

// Contains reports whether sq appears in squares.
func Contains(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}

// Unique returns squares with duplicates removed, preserving first occurrence.
func Unique(squares []chess.Square) []chess.Square {
	seen := make(map[chess.Square]bool, len(squares))
	out := make([]chess.Square, 0, len(squares))
	for _, s := range squares {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
