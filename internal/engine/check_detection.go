package engine

import "github.com/lgbarn/chess2d-go/internal/chess"

// IsChecking returns true if p, from where it now stands, reaches the square
// of the opposing king. The destination set is recomputed from scratch.
func IsChecking(b *chess.Board, p *chess.Piece, opts ...Option) (bool, error) {
	_, ok, err := ThreatenedKing(b, p, opts...)
	return ok, err
}

// ThreatenedKing returns the square of the opposing king when p reaches it.
func ThreatenedKing(b *chess.Board, p *chess.Piece, opts ...Option) (chess.Square, bool, error) {
	dests, err := Destinations(b, p, opts...)
	if err != nil {
		return chess.Square{}, false, err
	}
	for _, sq := range dests {
		if b.IsEnemyKingInCell(p, sq) {
			return sq, true, nil
		}
	}
	return chess.Square{}, false, nil
}

// IsInCheck returns true if any piece of the opposing side reaches side's king.
// Informational only: nothing in the rules forbids leaving a king attacked.
func IsInCheck(b *chess.Board, side chess.Side, opts ...Option) (bool, error) {
	if _, ok := b.FindKing(side); !ok {
		return false, nil
	}
	for _, p := range b.Pieces() {
		if p.Side == side {
			continue
		}
		checking, err := IsChecking(b, p, opts...)
		if err != nil {
			return false, err
		}
		if checking {
			return true, nil
		}
	}
	return false, nil
}
