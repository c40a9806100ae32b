// Package game owns turn order and move execution for a chess2d game.
package game

import (
	"fmt"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/config"
	"github.com/lgbarn/chess2d-go/internal/engine"
	"github.com/lgbarn/chess2d-go/internal/errors"
)

// Controller holds the board, both piece collections and the turn state.
// It is not safe for concurrent use; callers serialise access.
type Controller struct {
	cfg *config.Config

	board  *chess.Board
	pieces [2][]*chess.Piece // indexed by Side, in setup order

	initialSide chess.Side
	current     chess.Side
	gameOver    bool
	winner      chess.Side
	history     []MoveRecord
}

// New creates a controller with a fully seated board, using the configured
// initial side.
func New(cfg *config.Config) *Controller {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	c := &Controller{cfg: cfg}
	c.Setup(cfg.Game.InitialSide)
	return c
}

// Setup builds a fresh board and 32 pieces and seats them at their start
// squares. initial is the side to move first.
func (c *Controller) Setup(initial chess.Side) {
	c.board = chess.NewBoard()
	for _, side := range []chess.Side{chess.White, chess.Black} {
		c.pieces[side] = createPieces(side)
		c.placePieces(side)
	}
	c.initialSide = initial
	c.resetTurn()
	c.cfg.Logf(1, "setup: %s to move", initial)
}

// createPieces returns a side's pieces: eight pawns, then the back rank a-h.
func createPieces(side chess.Side) []*chess.Piece {
	pieces := make([]*chess.Piece, 0, 2*chess.BoardSize)
	for i := 0; i < chess.BoardSize; i++ {
		pieces = append(pieces, chess.NewPiece(chess.Pawn, side))
	}
	for _, kind := range chess.BackRank {
		pieces = append(pieces, chess.NewPiece(kind, side))
	}
	return pieces
}

// placePieces seats a side's pieces on its pawn and home ranks.
func (c *Controller) placePieces(side chess.Side) {
	pawnRank, homeRank := engine.PawnRank(side), engine.HomeRank(side)
	for i, p := range c.pieces[side] {
		sq := chess.Sq(i%chess.BoardSize, pawnRank)
		if i >= chess.BoardSize {
			sq.Rank = homeRank
		}
		if err := c.board.Place(p, sq); err != nil {
			// Every piece was lifted first, so the start squares are free.
			panic(fmt.Sprintf("game: seating %s: %v", p, err))
		}
	}
}

// Reset returns every piece to its start square without reallocating the
// board or pieces, and restores the initial turn state.
func (c *Controller) Reset() {
	for _, side := range []chess.Side{chess.White, chess.Black} {
		for _, p := range c.pieces[side] {
			c.board.Lift(p)
			p.ResetState()
		}
	}
	for _, side := range []chess.Side{chess.White, chess.Black} {
		c.placePieces(side)
	}
	c.resetTurn()
	c.cfg.Logf(1, "reset: %s to move", c.initialSide)
}

func (c *Controller) resetTurn() {
	c.current = c.initialSide
	c.gameOver = false
	c.winner = chess.White
	c.history = c.history[:0]
}

// moveOptions maps configuration onto move generation options.
func (c *Controller) moveOptions() []engine.Option {
	return []engine.Option{engine.WithRawKnightSquares(c.cfg.Game.RawKnightSquares)}
}

// LegalDestinations returns the squares p may be dragged to.
func (c *Controller) LegalDestinations(p *chess.Piece) ([]chess.Square, error) {
	if p == nil {
		return nil, errors.ErrNoPiece
	}
	if !c.owns(p) {
		return nil, errors.Wrapf(errors.ErrForeignPiece, "%s", p)
	}
	return engine.Destinations(c.board, p, c.moveOptions()...)
}

// owns reports whether p is one of this game's pieces and, when seated, sits
// on this game's board. Pieces off the board are left to the caller.
func (c *Controller) owns(p *chess.Piece) bool {
	sq, ok := p.Square()
	if !ok {
		return true
	}
	cell, err := c.board.CellAt(sq)
	if err != nil || cell != p.Cell() {
		return false
	}
	for _, own := range c.pieces[p.Side] {
		if own == p {
			return true
		}
	}
	return false
}

// AttemptMove validates and executes a move. Rejections are reported through
// MoveResult.Outcome; an error means the call itself broke a contract, such
// as moving a piece that belongs to another game.
func (c *Controller) AttemptMove(p *chess.Piece, dest chess.Square) (MoveResult, error) {
	if p == nil {
		return MoveResult{}, &errors.MoveError{Err: errors.ErrNoPiece, To: dest.String()}
	}
	from, ok := p.Square()
	if !ok {
		return MoveResult{}, &errors.MoveError{Err: errors.ErrNoCurrentSquare, Piece: p.String(), To: dest.String()}
	}
	if !c.owns(p) {
		return MoveResult{}, &errors.MoveError{Err: errors.ErrForeignPiece, Piece: p.String(), From: from.String(), To: dest.String()}
	}
	if !dest.InBounds() {
		return MoveResult{}, &errors.MoveError{Err: errors.ErrOutOfBounds, Piece: p.String(), From: from.String(), To: dest.String()}
	}

	result := MoveResult{Piece: p, From: from, To: dest}
	reject := func(reason RejectReason) (MoveResult, error) {
		result.Outcome = Rejected
		result.Reason = reason
		c.cfg.Logf(2, "rejected %s-%s for %s: %s", from, dest, p, reason)
		return result, nil
	}

	if c.gameOver {
		return reject(GameIsOver)
	}
	if p.Side != c.current {
		return reject(WrongSide)
	}
	rel := c.board.Relationship(p, dest)
	if rel == chess.Friend {
		return reject(FriendlySquare)
	}
	dests, err := c.LegalDestinations(p)
	if err != nil {
		return MoveResult{}, err
	}
	if !engine.Contains(dests, dest) {
		return reject(Unreachable)
	}

	result.Path = engine.Path(from, dest)
	result.Outcome = Moved
	if rel == chess.Enemy {
		victim := c.board.Get(dest)
		c.capture(victim)
		result.Captured = victim
		result.Outcome = MovedAndCaptured
		if victim.Kind == chess.King {
			c.gameOver = true
			c.winner = p.Side
			result.Outcome = MovedAndGameOver
		}
	}

	c.relocate(p, dest)

	kingSq, checking, err := engine.ThreatenedKing(c.board, p, c.moveOptions()...)
	if err != nil {
		return MoveResult{}, err
	}
	result.Check = checking
	result.CheckedKing = kingSq

	c.record(result)
	c.current = c.current.Opposite()
	return result, nil
}

// capture unlinks and deactivates a piece.
func (c *Controller) capture(victim *chess.Piece) {
	c.board.Lift(victim)
	victim.Deactivate()
}

// relocate moves p to dest and retires the pawn first-move flag.
func (c *Controller) relocate(p *chess.Piece, dest chess.Square) {
	if err := c.board.Place(p, dest); err != nil {
		// dest was verified empty or cleared by capture.
		panic(fmt.Sprintf("game: relocating %s: %v", p, err))
	}
	if p.Kind == chess.Pawn {
		p.ClearFirstMove()
	}
}

func (c *Controller) record(r MoveResult) {
	rec := MoveRecord{
		Ply:   len(c.history) + 1,
		Side:  r.Piece.Side,
		Kind:  r.Piece.Kind,
		From:  r.From,
		To:    r.To,
		Check: r.Check,
	}
	if r.Captured != nil {
		kind := r.Captured.Kind
		rec.Captured = &kind
	}
	c.history = append(c.history, rec)
	c.cfg.Logf(2, "%s (%s)", rec, r.Outcome)
	if r.Outcome == MovedAndGameOver {
		c.cfg.Logf(1, "game over: %s captured the king", r.Piece.Side)
	}
}

// Path returns the squares from origin to destination for display.
func (c *Controller) Path(from, to chess.Square) ([]chess.Square, error) {
	if !from.InBounds() || !to.InBounds() {
		return nil, &errors.MoveError{Err: errors.ErrOutOfBounds, From: from.String(), To: to.String()}
	}
	return engine.Path(from, to), nil
}

// PieceAt returns the piece on sq.
func (c *Controller) PieceAt(sq chess.Square) (*chess.Piece, error) {
	cell, err := c.board.CellAt(sq)
	if err != nil {
		return nil, err
	}
	if cell.IsEmpty() {
		return nil, errors.Wrapf(errors.ErrNoPiece, "%s", sq)
	}
	return cell.Occupant(), nil
}

// Pieces returns a copy of a side's piece collection, captured pieces included.
func (c *Controller) Pieces(side chess.Side) []*chess.Piece {
	out := make([]*chess.Piece, len(c.pieces[side]))
	copy(out, c.pieces[side])
	return out
}

// Captured returns the inactive pieces of a side.
func (c *Controller) Captured(side chess.Side) []*chess.Piece {
	var out []*chess.Piece
	for _, p := range c.pieces[side] {
		if !p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}

// Board exposes the board for read-only queries.
func (c *Controller) Board() *chess.Board { return c.board }

// CurrentSide returns the side to move.
func (c *Controller) CurrentSide() chess.Side { return c.current }

// InitialSide returns the side that moves first after setup or reset.
func (c *Controller) InitialSide() chess.Side { return c.initialSide }

// IsGameOver reports whether a king has been captured.
func (c *Controller) IsGameOver() bool { return c.gameOver }

// State returns the controller state.
func (c *Controller) State() State {
	if c.gameOver {
		return GameOver
	}
	return AwaitingMove
}

// Winner returns the side that captured the king. ok is false while the game runs.
func (c *Controller) Winner() (chess.Side, bool) {
	return c.winner, c.gameOver
}

// History returns the completed moves in order.
func (c *Controller) History() []MoveRecord {
	out := make([]MoveRecord, len(c.history))
	copy(out, c.history)
	return out
}

// Ply returns the number of completed moves.
func (c *Controller) Ply() int { return len(c.history) }

// FEN renders the position as a FEN record.
func (c *Controller) FEN() string {
	// The fullmove number advances after Black's move.
	plies := len(c.history)
	if c.initialSide == chess.Black {
		plies++
	}
	return engine.ToFEN(c.board, c.current, plies/2+1)
}

// ThreatenedKing reports the opposing king square reached by the last mover,
// recomputed from the current position.
func (c *Controller) ThreatenedKing() (chess.Square, bool) {
	if len(c.history) == 0 {
		return chess.Square{}, false
	}
	last := c.history[len(c.history)-1]
	p := c.board.Get(last.To)
	if p == nil {
		return chess.Square{}, false
	}
	sq, ok, err := engine.ThreatenedKing(c.board, p, c.moveOptions()...)
	if err != nil {
		return chess.Square{}, false
	}
	return sq, ok
}
