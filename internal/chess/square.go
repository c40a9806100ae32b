package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess2d-go/internal/errors"
)

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Constants for board coordinates.
const (
	FirstFile = 0
	LastFile  = BoardSize - 1
	FirstRank = 0
	LastRank  = BoardSize - 1

	FileBase = 'a'
	RankBase = '1'
)

// Square is a board coordinate: File 0-7 maps to 'a'-'h', Rank 0-7 maps to '1'-'8'.
// A Square may hold out-of-range values while stepping; use InBounds before
// dereferencing it on a Board.
type Square struct {
	File int
	Rank int
}

// Sq is shorthand for constructing a Square.
func Sq(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// InBounds returns true if both coordinates lie in [0, 7].
func (s Square) InBounds() bool {
	return s.File >= FirstFile && s.File <= LastFile &&
		s.Rank >= FirstRank && s.Rank <= LastRank
}

// Add returns the square offset by o.
func (s Square) Add(o Square) Square {
	return Square{File: s.File + o.File, Rank: s.Rank + o.Rank}
}

// Scale multiplies both components component-wise by o.
func (s Square) Scale(o Square) Square {
	return Square{File: s.File * o.File, Rank: s.Rank * o.Rank}
}

// String returns the algebraic name ("e4") or a coordinate pair when the
// square is off the board.
func (s Square) String() string {
	if !s.InBounds() {
		return fmt.Sprintf("(%d,%d)", s.File, s.Rank)
	}
	return string([]byte{byte(FileBase + s.File), byte(RankBase + s.Rank)})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(name string) (Square, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if len(name) != 2 {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	sq := Square{File: int(name[0]) - FileBase, Rank: int(name[1]) - RankBase}
	if !sq.InBounds() {
		return Square{}, errors.Wrapf(errors.ErrInvalidSquare, "%q", name)
	}
	return sq, nil
}

// MustParseSquare is like ParseSquare but panics on error.
// Intended for constants and tests.
func MustParseSquare(name string) Square {
	sq, err := ParseSquare(name)
	if err != nil {
		panic(err)
	}
	return sq
}

// Direction is one of the eight compass directions, or None.
type Direction int

const (
	None Direction = iota
	NW
	N
	NE
	E
	SE
	S
	SW
	W
)

// String returns the compass name of a direction.
func (d Direction) String() string {
	names := []string{"None", "NW", "N", "NE", "E", "SE", "S", "SW", "W"}
	if int(d) < len(names) {
		return names[d]
	}
	return "Unknown"
}

// Offset returns the unit step for the direction. North increases rank.
func (d Direction) Offset() Square {
	switch d {
	case NW:
		return Square{-1, 1}
	case N:
		return Square{0, 1}
	case NE:
		return Square{1, 1}
	case E:
		return Square{1, 0}
	case SE:
		return Square{1, -1}
	case S:
		return Square{0, -1}
	case SW:
		return Square{-1, -1}
	case W:
		return Square{-1, 0}
	}
	return Square{}
}

// Facing is the board direction a side's "forward" maps to.
type Facing int

const (
	North Facing = iota
	South
)

// String returns the string representation of a facing.
func (f Facing) String() string {
	if f == South {
		return "South"
	}
	return "North"
}

// Orient maps a forward-relative offset onto the board. A South-facing side
// sees the board flipped along the rank axis.
func (f Facing) Orient(offset Square) Square {
	if f == South {
		return offset.Scale(Square{1, -1})
	}
	return offset
}
