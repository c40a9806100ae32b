package engine

import "github.com/lgbarn/chess2d-go/internal/chess"

// GeneralDirection classifies where to lies relative to from, by comparing
// the signs of the file and rank deltas. Equal squares give None.
func GeneralDirection(from, to chess.Square) chess.Direction {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	switch {
	case fileDir < 0 && rankDir > 0:
		return chess.NW
	case fileDir == 0 && rankDir > 0:
		return chess.N
	case fileDir > 0 && rankDir > 0:
		return chess.NE
	case fileDir > 0 && rankDir == 0:
		return chess.E
	case fileDir > 0 && rankDir < 0:
		return chess.SE
	case fileDir == 0 && rankDir < 0:
		return chess.S
	case fileDir < 0 && rankDir < 0:
		return chess.SW
	case fileDir < 0 && rankDir == 0:
		return chess.W
	}
	return chess.None
}

// Path returns the squares from origin to destination inclusive. Straight and
// exact diagonal lines are walked one square at a time; anything else (a
// knight jump) degenerates to the two endpoints. Legality is not checked.
func Path(from, to chess.Square) []chess.Square {
	offset := lineOffset(from, to)

	path := []chess.Square{from}
	if from == to {
		return path
	}
	if offset == (chess.Square{}) {
		return append(path, to)
	}
	for current := from; current != to; {
		current = current.Add(offset)
		path = append(path, current)
	}
	return path
}

// lineOffset returns the unit step along the line from->to, or the zero
// offset when the squares are not on a common line.
func lineOffset(from, to chess.Square) chess.Square {
	dir := GeneralDirection(from, to)
	switch dir {
	case chess.N, chess.E, chess.S, chess.W:
		return dir.Offset()
	case chess.NE, chess.SE, chess.SW, chess.NW:
		if abs(to.File-from.File) == abs(to.Rank-from.Rank) {
			return dir.Offset()
		}
	}
	return chess.Square{}
}

// IsLine reports whether the two squares share a rank, file or diagonal.
func IsLine(from, to chess.Square) bool {
	return from != to && lineOffset(from, to) != (chess.Square{})
}
