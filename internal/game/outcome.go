package game

import (
	"fmt"

	"github.com/lgbarn/chess2d-go/internal/chess"
)

// Outcome is the result class of a move attempt.
type Outcome int

const (
	Rejected Outcome = iota
	Moved
	MovedAndCaptured
	MovedAndGameOver
)

// String returns the string representation of an outcome.
func (o Outcome) String() string {
	names := []string{"Rejected", "Moved", "MovedAndCaptured", "MovedAndGameOver"}
	if int(o) < len(names) {
		return names[o]
	}
	return "Unknown"
}

// RejectReason explains a Rejected outcome.
type RejectReason int

const (
	NotRejected RejectReason = iota
	GameIsOver
	WrongSide
	FriendlySquare
	Unreachable
)

// String returns the string representation of a reject reason.
func (r RejectReason) String() string {
	names := []string{"", "game is over", "not this side's turn", "square held by a friendly piece", "destination not reachable"}
	if int(r) < len(names) {
		return names[r]
	}
	return "unknown"
}

// State is the controller's position in the move state machine.
type State int

const (
	AwaitingMove State = iota
	GameOver
)

// String returns the string representation of a state.
func (s State) String() string {
	if s == GameOver {
		return "GameOver"
	}
	return "AwaitingMove"
}

// MoveResult reports what an attempted move did. A rejected move leaves all
// state untouched and only From, To, Piece and Reason are set.
type MoveResult struct {
	Outcome Outcome
	Reason  RejectReason

	Piece    *chess.Piece
	From, To chess.Square
	Captured *chess.Piece
	Path     []chess.Square

	// Check is set when the mover now reaches the opposing king.
	Check       bool
	CheckedKing chess.Square
}

// MoveRecord is one completed move in the game history.
type MoveRecord struct {
	Ply      int
	Side     chess.Side
	Kind     chess.Kind
	From, To chess.Square
	Captured *chess.Kind
	Check    bool
}

// String renders the record as e.g. "3. White Knight b1-c3+".
func (r MoveRecord) String() string {
	sep := "-"
	if r.Captured != nil {
		sep = "x"
	}
	suffix := ""
	if r.Check {
		suffix = "+"
	}
	return fmt.Sprintf("%d. %s %s %s%s%s%s", r.Ply, r.Side, r.Kind, r.From, sep, r.To, suffix)
}
