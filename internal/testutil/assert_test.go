package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess2d-go/internal/chess"
	chesserrors "github.com/lgbarn/chess2d-go/internal/errors"
)

// Success paths only; a failing assertion cannot be observed without a fake *testing.T.

func TestAssertions_Success(t *testing.T) {
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, chess.Sq(1, 2), chess.Sq(1, 2), "square %s", "b3")
	AssertNoError(t, nil)
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", chesserrors.ErrOutOfBounds), chesserrors.ErrOutOfBounds)
	AssertTrue(t, true)
	AssertFalse(t, false)
	AssertContains(t, "White Pawn e2-e4", "e2-e4")
	AssertNotContains(t, "White Pawn e2-e4", "d2-d4", "history %d", 1)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format", []interface{}{"value %d", 42}, "value 42"},
		{"non-string", []interface{}{123}, "123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestBoardHelpers(t *testing.T) {
	b := MustBoard(t, "8/8/8/8/8/8/8/R3K3")
	rook := MustPiece(t, b, "a1")
	if rook.Kind != chess.Rook || rook.Side != chess.White {
		t.Errorf("a1 = %v; want White Rook", rook)
	}
	AssertSquares(t, Squares("e1 a1"), Squares("a1 e1"))
	AssertEqual(t, MustSquare(t, "h8"), chess.Sq(7, 7))
}
