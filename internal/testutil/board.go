// Package testutil provides shared test utilities for the chess2d-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/engine"
)

// MustBoard builds a board from a FEN placement field.
// It calls t.Fatal if the placement is invalid.
func MustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, _, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to build board from %q: %v", fen, err)
	}
	return b
}

// MustPiece returns the piece standing on the named square.
func MustPiece(t *testing.T, b *chess.Board, name string) *chess.Piece {
	t.Helper()
	p := b.Get(MustSquare(t, name))
	if p == nil {
		t.Fatalf("no piece on %s", name)
	}
	return p
}

// MustSquare parses an algebraic square name.
func MustSquare(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("bad square %q: %v", name, err)
	}
	return sq
}

// Squares parses a whitespace separated list of square names. It panics on
// a bad name, so use it only with literals.
func Squares(names string) []chess.Square {
	fields := strings.Fields(names)
	out := make([]chess.Square, 0, len(fields))
	for _, f := range fields {
		out = append(out, chess.MustParseSquare(f))
	}
	return out
}

// AssertSquares compares two square sets ignoring order.
func AssertSquares(t *testing.T, got, want []chess.Square, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b chess.Square) bool {
		if a.Rank != b.Rank {
			return a.Rank < b.Rank
		}
		return a.File < b.File
	}
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		msg := formatMessage(msgAndArgs...)
		if msg != "" {
			t.Errorf("%s: squares mismatch (-want +got):\n%s", msg, diff)
		} else {
			t.Errorf("squares mismatch (-want +got):\n%s", diff)
		}
	}
}
