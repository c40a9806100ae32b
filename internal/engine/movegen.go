// Package engine provides move generation, path reconstruction and check
// detection over a chess2d board.
package engine

import (
	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/errors"
)

// Direction pairs for each directional move type, in stepping order.
var (
	verticalDirs   = []chess.Direction{chess.N, chess.S}
	horizontalDirs = []chess.Direction{chess.W, chess.E}
	diagonalDirs   = []chess.Direction{chess.NW, chess.NE, chess.SE, chess.SW}
)

// Knight offsets: both magnitude orderings applied to each quadrant.
var (
	knightQuadrants = []chess.Square{{File: 1, Rank: 1}, {File: -1, Rank: 1}, {File: -1, Rank: -1}, {File: 1, Rank: -1}}
	knightLong      = chess.Square{File: 1, Rank: 2}
	knightWide      = chess.Square{File: 2, Rank: 1}
)

// Option configures move generation.
type Option func(*options)

type options struct {
	rawKnightSquares bool
}

// WithRawKnightSquares keeps friend-occupied knight squares in the result,
// matching boards that highlight every in-bounds L square.
func WithRawKnightSquares(enabled bool) Option {
	return func(o *options) {
		o.rawKnightSquares = enabled
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Destinations returns every square p can reach under its movement rules,
// in rule order. Squares reachable by more than one rule may repeat.
func Destinations(b *chess.Board, p *chess.Piece, opts ...Option) ([]chess.Square, error) {
	from, ok := p.Square()
	if !ok {
		return nil, errors.Wrapf(errors.ErrNoCurrentSquare, "%s", p)
	}
	o := applyOptions(opts)

	var result []chess.Square
	for _, rule := range p.Rules() {
		result = append(result, ruleDestinations(b, p, from, rule, o)...)
	}
	return result, nil
}

// ruleDestinations expands a single movement rule.
func ruleDestinations(b *chess.Board, p *chess.Piece, from chess.Square, rule chess.Rule, o options) []chess.Square {
	switch rule.Move {
	case chess.Vertical:
		return rays(b, p, from, verticalDirs, rule.Step)
	case chess.Horizontal:
		return rays(b, p, from, horizontalDirs, rule.Step)
	case chess.Diagonal:
		return rays(b, p, from, diagonalDirs, rule.Step)
	case chess.LShaped:
		return knightSquares(b, p, from, o.rawKnightSquares)
	case chess.PawnForward:
		return pawnSquares(b, p, from)
	}
	return nil
}

func rays(b *chess.Board, p *chess.Piece, from chess.Square, dirs []chess.Direction, step chess.StepPolicy) []chess.Square {
	var result []chess.Square
	for _, dir := range dirs {
		result = append(result, ray(b, p, from, dir, step)...)
	}
	return result
}

// ray steps from the origin along dir until the step budget runs out, the
// board edge is reached, or a piece blocks. An enemy square is included and
// ends the ray; a friend square ends it without being included.
func ray(b *chess.Board, p *chess.Piece, from chess.Square, dir chess.Direction, step chess.StepPolicy) []chess.Square {
	offset := p.Facing.Orient(dir.Offset())
	remaining := step.Steps()

	var result []chess.Square
	current := from
	for remaining != 0 {
		next := current.Add(offset)
		if !next.InBounds() || !b.IsReachable(p, next) {
			break
		}
		result = append(result, next)
		if !b.IsEmpty(next) {
			break
		}
		current = next
		remaining--
	}
	return result
}

// knightSquares returns the in-bounds L squares. Friend-occupied squares are
// dropped unless raw is set.
func knightSquares(b *chess.Board, p *chess.Piece, from chess.Square, raw bool) []chess.Square {
	result := make([]chess.Square, 0, 8)
	for _, quad := range knightQuadrants {
		for _, offset := range []chess.Square{knightLong, knightWide} {
			to := from.Add(quad.Scale(offset))
			if !to.InBounds() {
				continue
			}
			if !raw && b.Relationship(p, to) == chess.Friend {
				continue
			}
			result = append(result, to)
		}
	}
	return result
}

// pawnSquares generates forward pushes and diagonal captures independently.
func pawnSquares(b *chess.Board, p *chess.Piece, from chess.Square) []chess.Square {
	var result []chess.Square

	forward := p.Facing.Orient(chess.N.Offset())
	current := from
	for steps := 0; steps < 2; steps++ {
		current = current.Add(forward)
		if !current.InBounds() || !b.IsEmpty(current) {
			break
		}
		result = append(result, current)
		if !p.IsFirstMove() {
			break
		}
	}

	for _, dir := range []chess.Direction{chess.NW, chess.NE} {
		to := from.Add(p.Facing.Orient(dir.Offset()))
		if b.IsEnemyInCell(p, to) {
			result = append(result, to)
		}
	}
	return result
}

// SideDestinations returns the destinations of every active piece of side
// that is on the board, keyed by piece.
func SideDestinations(b *chess.Board, side chess.Side, opts ...Option) (map[*chess.Piece][]chess.Square, error) {
	result := make(map[*chess.Piece][]chess.Square)
	for _, p := range b.Pieces() {
		if p.Side != side {
			continue
		}
		dests, err := Destinations(b, p, opts...)
		if err != nil {
			return nil, err
		}
		result[p] = dests
	}
	return result, nil
}
