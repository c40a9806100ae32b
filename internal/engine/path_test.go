package engine_test

import (
	"testing"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/engine"
	"github.com/lgbarn/chess2d-go/internal/testutil"
)

func TestGeneralDirection(t *testing.T) {
	origin := chess.Sq(3, 3)
	tests := []struct {
		to   string
		want chess.Direction
	}{
		{"d4", chess.None},
		{"d8", chess.N},
		{"f6", chess.NE},
		{"g7", chess.NE},
		{"h4", chess.E},
		{"e3", chess.SE},
		{"d1", chess.S},
		{"a1", chess.SW},
		{"a4", chess.W},
		{"c5", chess.NW},
		{"b8", chess.NW},
	}

	for _, tt := range tests {
		t.Run(tt.to, func(t *testing.T) {
			got := engine.GeneralDirection(origin, chess.MustParseSquare(tt.to))
			if got != tt.want {
				t.Errorf("GeneralDirection(d4, %s) = %v; want %v", tt.to, got, tt.want)
			}
		})
	}
}

func TestPath(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     string
	}{
		{"same square", "a1", "a1", "a1"},
		{"main diagonal", "a1", "h8", "a1 b2 c3 d4 e5 f6 g7 h8"},
		{"file north", "a2", "a4", "a2 a3 a4"},
		{"file south", "h8", "h5", "h8 h7 h6 h5"},
		{"rank west", "e1", "b1", "e1 d1 c1 b1"},
		{"anti diagonal", "h1", "e4", "h1 g2 f3 e4"},
		{"diagonal south west", "f6", "d4", "f6 e5 d4"},
		{"knight jump", "b1", "c3", "b1 c3"},
		{"uneven line", "a1", "c2", "a1 c2"},
		{"adjacent", "e4", "e5", "e4 e5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Path(chess.MustParseSquare(tt.from), chess.MustParseSquare(tt.to))
			testutil.AssertEqual(t, got, testutil.Squares(tt.want))
		})
	}
}

func TestIsLine(t *testing.T) {
	testutil.AssertTrue(t, engine.IsLine(chess.Sq(0, 0), chess.Sq(7, 7)))
	testutil.AssertTrue(t, engine.IsLine(chess.Sq(0, 0), chess.Sq(0, 5)))
	testutil.AssertFalse(t, engine.IsLine(chess.Sq(1, 0), chess.Sq(2, 2)))
	testutil.AssertFalse(t, engine.IsLine(chess.Sq(4, 4), chess.Sq(4, 4)))
}
