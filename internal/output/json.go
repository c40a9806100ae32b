package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/game"
)

// JSONGame is a snapshot of a game in JSON format.
type JSONGame struct {
	ID       string      `json:"id,omitempty"`
	FEN      string      `json:"fen"`
	ToMove   string      `json:"toMove"`
	State    string      `json:"state"`
	Winner   string      `json:"winner,omitempty"`
	PlyCount int         `json:"plyCount"`
	Pieces   []JSONPiece `json:"pieces"`
	Captured []JSONPiece `json:"captured,omitempty"`
	Moves    []JSONMove  `json:"moves,omitempty"`
}

// JSONPiece is one piece and where it stands.
type JSONPiece struct {
	Side   string `json:"side"` // "white" or "black"
	Kind   string `json:"kind"`
	Square string `json:"square,omitempty"`
}

// JSONMove is one history entry.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Side     string `json:"side"`
	Piece    string `json:"piece"`
	From     string `json:"from"`
	To       string `json:"to"`
	Captured string `json:"captured,omitempty"`
	Check    bool   `json:"check,omitempty"`
}

// JSONResult reports a move attempt.
type JSONResult struct {
	Outcome     string    `json:"outcome"`
	Reason      string    `json:"reason,omitempty"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Captured    string    `json:"captured,omitempty"`
	Path        []string  `json:"path,omitempty"`
	Check       bool      `json:"check,omitempty"`
	CheckedKing string    `json:"checkedKing,omitempty"`
	Game        *JSONGame `json:"game,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game to its JSON snapshot.
func GameToJSON(c *game.Controller) *JSONGame {
	jg := &JSONGame{
		FEN:      c.FEN(),
		ToMove:   sideName(c.CurrentSide()),
		State:    c.State().String(),
		PlyCount: c.Ply(),
		Pieces:   make([]JSONPiece, 0, 32),
	}
	if winner, ok := c.Winner(); ok {
		jg.Winner = sideName(winner)
	}
	for _, p := range c.Board().Pieces() {
		sq, _ := p.Square()
		jg.Pieces = append(jg.Pieces, JSONPiece{Side: sideName(p.Side), Kind: p.Kind.String(), Square: sq.String()})
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range c.Captured(side) {
			jg.Captured = append(jg.Captured, JSONPiece{Side: sideName(p.Side), Kind: p.Kind.String()})
		}
	}
	for _, rec := range c.History() {
		jm := JSONMove{
			Ply:   rec.Ply,
			Side:  sideName(rec.Side),
			Piece: rec.Kind.String(),
			From:  rec.From.String(),
			To:    rec.To.String(),
			Check: rec.Check,
		}
		if rec.Captured != nil {
			jm.Captured = rec.Captured.String()
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg
}

// ResultToJSON converts a move result. The game snapshot is attached when c
// is non-nil.
func ResultToJSON(res game.MoveResult, c *game.Controller) *JSONResult {
	jr := &JSONResult{
		Outcome: res.Outcome.String(),
		From:    res.From.String(),
		To:      res.To.String(),
		Check:   res.Check,
	}
	if res.Outcome == game.Rejected {
		jr.Reason = res.Reason.String()
	}
	if res.Captured != nil {
		jr.Captured = res.Captured.Kind.String()
	}
	for _, sq := range res.Path {
		jr.Path = append(jr.Path, sq.String())
	}
	if res.Check {
		jr.CheckedKing = res.CheckedKing.String()
	}
	if c != nil {
		jr.Game = GameToJSON(c)
	}
	return jr
}

// SquareNames converts squares to algebraic names.
func SquareNames(squares []chess.Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	return out
}

// EncodeJSON writes v as indented JSON.
func EncodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func sideName(s chess.Side) string {
	if s == chess.White {
		return "white"
	}
	return "black"
}
