package chess

import "github.com/lgbarn/chess2d-go/internal/errors"

// Cell is a single board location holding at most one piece.
type Cell struct {
	square   Square
	occupant *Piece
}

// Square returns the fixed coordinate of the cell.
func (c *Cell) Square() Square {
	return c.square
}

// Occupant returns the piece on the cell, or nil.
func (c *Cell) Occupant() *Piece {
	return c.occupant
}

// IsEmpty reports whether the cell has no occupant.
func (c *Cell) IsEmpty() bool {
	return c.occupant == nil
}

// RelationshipTo classifies the cell's occupant relative to inquirer.
func (c *Cell) RelationshipTo(inquirer *Piece) Relationship {
	if c.occupant == nil {
		return Empty
	}
	if c.occupant.Side == inquirer.Side {
		return Friend
	}
	return Enemy
}

// Board is a fixed 8x8 grid of cells, indexed cells[file][rank].
// Cells are created once by NewBoard and never reallocated, so pieces may
// keep pointers to them.
type Board struct {
	cells [BoardSize][BoardSize]Cell
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	b := &Board{}
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			b.cells[file][rank].square = Square{File: file, Rank: rank}
		}
	}
	return b
}

// CellAt returns the cell at sq. Callers are expected to bounds-check first.
func (b *Board) CellAt(sq Square) (*Cell, error) {
	if !sq.InBounds() {
		return nil, errors.Wrapf(errors.ErrOutOfBounds, "square %s", sq)
	}
	return &b.cells[sq.File][sq.Rank], nil
}

// cell is the unchecked accessor used after InBounds has been verified.
func (b *Board) cell(sq Square) *Cell {
	return &b.cells[sq.File][sq.Rank]
}

// Get returns the piece at sq, or nil when empty or off the board.
func (b *Board) Get(sq Square) *Piece {
	if !sq.InBounds() {
		return nil
	}
	return b.cell(sq).occupant
}

// IsEmpty reports whether sq has no occupant. Off-board squares are not empty.
func (b *Board) IsEmpty(sq Square) bool {
	if !sq.InBounds() {
		return false
	}
	return b.cell(sq).IsEmpty()
}

// Relationship classifies sq relative to inquirer. Off-board squares report Empty;
// bounds are the caller's concern.
func (b *Board) Relationship(inquirer *Piece, sq Square) Relationship {
	if !sq.InBounds() {
		return Empty
	}
	return b.cell(sq).RelationshipTo(inquirer)
}

// IsReachable reports whether inquirer may land on sq, ignoring path blocking.
func (b *Board) IsReachable(inquirer *Piece, sq Square) bool {
	if !sq.InBounds() {
		return false
	}
	rel := b.cell(sq).RelationshipTo(inquirer)
	return rel == Empty || rel == Enemy
}

// IsEnemyInCell reports whether sq holds a piece of the opposing side.
func (b *Board) IsEnemyInCell(inquirer *Piece, sq Square) bool {
	return sq.InBounds() && b.cell(sq).RelationshipTo(inquirer) == Enemy
}

// IsEnemyKingInCell reports whether sq holds the opposing king.
func (b *Board) IsEnemyKingInCell(inquirer *Piece, sq Square) bool {
	return b.IsEnemyInCell(inquirer, sq) && b.cell(sq).occupant.Kind == King
}

// Place seats p on sq. Any previous link of p is cleared first and sq must
// not hold another piece. Both sides of the link are updated together.
func (b *Board) Place(p *Piece, sq Square) error {
	target, err := b.CellAt(sq)
	if err != nil {
		return err
	}
	if target.occupant != nil && target.occupant != p {
		return errors.Wrapf(errors.ErrOccupied, "%s on %s", target.occupant, sq)
	}
	b.Lift(p)
	target.occupant = p
	p.cell = target
	return nil
}

// Lift removes p from the board, clearing both sides of the link.
func (b *Board) Lift(p *Piece) {
	if p.cell != nil {
		if p.cell.occupant == p {
			p.cell.occupant = nil
		}
		p.cell = nil
	}
}

// Pieces returns all pieces on the board in rank-major order from a1 to h8.
func (b *Board) Pieces() []*Piece {
	var out []*Piece
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.cells[file][rank].occupant; p != nil {
				out = append(out, p)
			}
		}
	}
	return out
}

// FindKing returns the square of the given side's king.
func (b *Board) FindKing(side Side) (Square, bool) {
	for _, p := range b.Pieces() {
		if p.Kind == King && p.Side == side {
			return p.Square()
		}
	}
	return Square{}, false
}
