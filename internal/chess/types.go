// Package chess provides the board, square and piece model for chess2d.
package chess

// Side represents one of the two opposing players.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Black {
		return "Black"
	}
	return "White"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Facing returns the forward direction assigned to a side.
func (s Side) Facing() Facing {
	if s == Black {
		return South
	}
	return North
}

// ParseSide parses "white"/"w" or "black"/"b".
func ParseSide(name string) (Side, bool) {
	switch name {
	case "white", "White", "w", "W":
		return White, true
	case "black", "Black", "b", "B":
		return Black, true
	}
	return White, false
}

// Kind is the closed set of chess piece kinds.
type Kind int

const (
	Pawn Kind = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NumKinds
)

// MoveType is a shape template governing candidate offsets.
type MoveType int

const (
	Vertical MoveType = iota
	Horizontal
	Diagonal
	LShaped
	PawnForward
)

// String returns the string representation of a move type.
func (m MoveType) String() string {
	names := []string{"Vertical", "Horizontal", "Diagonal", "L-shaped", "Pawn-forward"}
	if int(m) < len(names) {
		return names[m]
	}
	return "Unknown"
}

// StepPolicy controls how many steps along a move type are attempted.
type StepPolicy int

const (
	Single   StepPolicy = iota // 1 step
	Double                     // exactly 2 steps
	Multiple                   // until blocked or off the board
	Flexible                   // type-specific, only meaningful for PawnForward
)

// String returns the string representation of a step policy.
func (p StepPolicy) String() string {
	names := []string{"Single", "Double", "Multiple", "Flexible"}
	if int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Steps returns the number of steps for a directional ray, or -1 for
// unbounded. Flexible yields 0 because it has no directional meaning.
func (p StepPolicy) Steps() int {
	switch p {
	case Single:
		return 1
	case Double:
		return 2
	case Multiple:
		return -1
	}
	return 0
}

// Rule pairs a move type with a step policy.
type Rule struct {
	Move MoveType
	Step StepPolicy
}

// Relationship classifies a square relative to an inquiring piece.
type Relationship int

const (
	Empty Relationship = iota
	Friend
	Enemy
)

// String returns the string representation of a relationship.
func (r Relationship) String() string {
	switch r {
	case Friend:
		return "Friend"
	case Enemy:
		return "Enemy"
	}
	return "Empty"
}
