package chess

import "fmt"

// Piece is one chess unit. Pieces are created once per game and reused
// across resets; they are deactivated rather than destroyed on capture.
type Piece struct {
	Kind   Kind
	Side   Side
	Facing Facing

	rules     []Rule
	cell      *Cell // weak reference; the board owns the cell
	active    bool
	firstMove bool
}

// NewPiece builds a piece of the given kind with its capability table.
func NewPiece(kind Kind, side Side) *Piece {
	return &Piece{
		Kind:      kind,
		Side:      side,
		Facing:    side.Facing(),
		rules:     Rules(kind),
		active:    true,
		firstMove: kind == Pawn,
	}
}

// Rules returns the movement rules of the piece in declaration order.
func (p *Piece) Rules() []Rule {
	return p.rules
}

// Square returns the square the piece sits on. The second value is false
// when the piece is not on the board.
func (p *Piece) Square() (Square, bool) {
	if p.cell == nil {
		return Square{}, false
	}
	return p.cell.square, true
}

// Cell returns the cell the piece sits on, or nil.
func (p *Piece) Cell() *Cell {
	return p.cell
}

// IsActive reports whether the piece is still in play.
func (p *Piece) IsActive() bool {
	return p.active
}

// Deactivate takes the piece out of play. The board link must already be cleared.
func (p *Piece) Deactivate() {
	p.active = false
}

// IsFirstMove reports whether a pawn has not yet been relocated.
// Always false for other kinds.
func (p *Piece) IsFirstMove() bool {
	return p.Kind == Pawn && p.firstMove
}

// ClearFirstMove permanently clears the pawn first-move flag until ResetState.
func (p *Piece) ClearFirstMove() {
	p.firstMove = false
}

// ResetState reactivates the piece and restores the pawn first-move flag.
// It does not touch the board link.
func (p *Piece) ResetState() {
	p.active = true
	p.firstMove = p.Kind == Pawn
}

// String returns e.g. "White Knight@g1".
func (p *Piece) String() string {
	if sq, ok := p.Square(); ok {
		return fmt.Sprintf("%s %s@%s", p.Side, p.Kind, sq)
	}
	return fmt.Sprintf("%s %s", p.Side, p.Kind)
}
