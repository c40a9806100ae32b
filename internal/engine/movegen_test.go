package engine_test

import (
	"testing"

	notation "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/engine"
	chesserrors "github.com/lgbarn/chess2d-go/internal/errors"
	"github.com/lgbarn/chess2d-go/internal/testutil"
)

func TestDestinations(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		piece string
		opts  []engine.Option
		want  string
	}{
		{
			name:  "rook in corner on empty board",
			fen:   "8/8/8/8/8/8/8/R7",
			piece: "a1",
			want:  "a2 a3 a4 a5 a6 a7 a8 b1 c1 d1 e1 f1 g1 h1",
		},
		{
			name:  "rook stops before friend and on enemy",
			fen:   "8/8/8/8/8/P7/8/R1n5",
			piece: "a1",
			want:  "a2 b1 c1",
		},
		{
			name:  "black rook sees the same squares",
			fen:   "r7/8/8/8/8/8/8/8",
			piece: "a8",
			want:  "a1 a2 a3 a4 a5 a6 a7 b8 c8 d8 e8 f8 g8 h8",
		},
		{
			name:  "knight in centre",
			fen:   "8/8/8/4N3/8/8/8/8",
			piece: "e5",
			want:  "d7 f7 c6 g6 c4 g4 d3 f3",
		},
		{
			name:  "knight in corner",
			fen:   "8/8/8/8/8/8/8/N7",
			piece: "a1",
			want:  "b3 c2",
		},
		{
			name:  "knight skips friend squares",
			fen:   engine.InitialPlacement,
			piece: "b1",
			want:  "a3 c3",
		},
		{
			name:  "knight keeps friend squares when raw",
			fen:   engine.InitialPlacement,
			piece: "b1",
			opts:  []engine.Option{engine.WithRawKnightSquares(true)},
			want:  "a3 c3 d2",
		},
		{
			name:  "bishop captures and stops",
			fen:   "8/8/8/8/8/2p5/8/B7",
			piece: "a1",
			want:  "b2 c3",
		},
		{
			name:  "queen from d1 hemmed by own pieces",
			fen:   engine.InitialPlacement,
			piece: "d1",
			want:  "",
		},
		{
			name:  "king on open board edge",
			fen:   "8/8/8/8/8/8/8/4K3",
			piece: "e1",
			want:  "d1 f1 d2 e2 f2",
		},
		{
			name:  "king captures adjacent enemy",
			fen:   "8/8/8/8/8/8/3pP3/4K3",
			piece: "e1",
			want:  "d1 f1 d2 f2",
		},
		{
			name:  "white pawn first move",
			fen:   "8/8/8/8/8/8/P7/8",
			piece: "a2",
			want:  "a3 a4",
		},
		{
			name:  "black pawn first move faces south",
			fen:   "8/3p4/8/8/8/8/8/8",
			piece: "d7",
			want:  "d6 d5",
		},
		{
			name:  "pawn blocked immediately",
			fen:   "8/8/8/8/8/n7/P7/8",
			piece: "a2",
			want:  "",
		},
		{
			name:  "pawn double step blocked on second square",
			fen:   "8/8/8/8/N7/8/P7/8",
			piece: "a2",
			want:  "a3",
		},
		{
			name:  "pawn captures only enemy diagonals",
			fen:   "8/8/2P1p3/3P4/8/8/8/8",
			piece: "d5",
			want:  "d6 e6",
		},
		{
			name:  "pawn on last rank has nothing",
			fen:   "P7/8/8/8/8/8/8/8",
			piece: "a8",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.fen)
			p := testutil.MustPiece(t, b, tt.piece)
			got, err := engine.Destinations(b, p, tt.opts...)
			testutil.AssertNoError(t, err)
			testutil.AssertSquares(t, got, testutil.Squares(tt.want))
			for _, sq := range got {
				testutil.AssertTrue(t, sq.InBounds(), "destination %v out of bounds", sq)
			}
		})
	}
}

func TestDestinations_RuleOrder(t *testing.T) {
	b := testutil.MustBoard(t, "8/8/8/8/3R4/8/8/8")
	rook := testutil.MustPiece(t, b, "d4")

	got, err := engine.Destinations(b, rook)
	testutil.AssertNoError(t, err)
	want := testutil.Squares("c4 b4 a4 e4 f4 g4 h4 d5 d6 d7 d8 d3 d2 d1")
	testutil.AssertEqual(t, got, want, "horizontal rays come before vertical ones")
}

func TestDestinations_FacingFlipsRayOrder(t *testing.T) {
	b := testutil.MustBoard(t, "8/8/8/8/3r4/8/8/8")
	rook := testutil.MustPiece(t, b, "d4")

	got, err := engine.Destinations(b, rook)
	testutil.AssertNoError(t, err)
	want := testutil.Squares("c4 b4 a4 e4 f4 g4 h4 d3 d2 d1 d5 d6 d7 d8")
	testutil.AssertEqual(t, got, want, "black's forward ray points south")
}

func TestDestinations_PawnAfterFirstMove(t *testing.T) {
	b := testutil.MustBoard(t, "8/8/8/8/8/8/P7/8")
	pawn := testutil.MustPiece(t, b, "a2")
	pawn.ClearFirstMove()

	got, err := engine.Destinations(b, pawn)
	testutil.AssertNoError(t, err)
	testutil.AssertSquares(t, got, testutil.Squares("a3"))
}

func TestDestinations_NoCurrentSquare(t *testing.T) {
	b := chess.NewBoard()
	p := chess.NewPiece(chess.Queen, chess.White)

	_, err := engine.Destinations(b, p)
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoCurrentSquare)
}

func TestSideDestinations_StartPosition(t *testing.T) {
	b := testutil.MustBoard(t, engine.InitialPlacement)

	// An independent implementation agrees on the opening move count.
	oracle := len(notation.NewGame().ValidMoves())

	for _, side := range []chess.Side{chess.White, chess.Black} {
		t.Run(side.String(), func(t *testing.T) {
			all, err := engine.SideDestinations(b, side)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(all), 16, "pieces of %s", side)

			total := 0
			for _, dests := range all {
				total += len(dests)
			}
			testutil.AssertEqual(t, total, 20)
			testutil.AssertEqual(t, total, oracle)
		})
	}
}
