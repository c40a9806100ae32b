package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	notation "github.com/corentings/chess/v2"

	"github.com/lgbarn/chess2d-go/internal/chess"
	"github.com/lgbarn/chess2d-go/internal/errors"
)

// InitialPlacement is the piece placement field of the standard start position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// PieceLetter returns the FEN letter for a piece: uppercase for White.
func PieceLetter(p *chess.Piece) byte {
	letter := p.Kind.Letter()
	if p.Side == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// Placement returns the piece placement field for the board, rank 8 first.
func Placement(b *chess.Board) string {
	var sb strings.Builder
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		empty := 0
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			p := b.Get(chess.Sq(file, rank))
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(PieceLetter(p))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// ToFEN renders a full FEN record. Castling and en passant fields are always
// "-" because neither rule exists here, and the halfmove clock is not tracked.
func ToFEN(b *chess.Board, toMove chess.Side, fullmove int) string {
	side := "w"
	if toMove == chess.Black {
		side = "b"
	}
	if fullmove < 1 {
		fullmove = 1
	}
	return fmt.Sprintf("%s %s - - 0 %d", Placement(b), side, fullmove)
}

// ValidateFEN checks a FEN record with an independent decoder.
func ValidateFEN(fen string) error {
	if _, err := notation.FEN(fen); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	return nil
}

// NewBoardFromFEN builds a board and fresh pieces from a FEN placement field
// (extra FEN fields are ignored). Pawns keep their first-move flag only when
// they stand on their home rank.
func NewBoardFromFEN(fen string) (*chess.Board, []*chess.Piece, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	var pieces []*chess.Piece

	rank := chess.LastRank
	file := chess.FirstFile
	for _, c := range parts[0] {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return nil, nil, fmt.Errorf("rank %d has %d files: %w", rank+1, file, errors.ErrInvalidFEN)
			}
			rank--
			file = chess.FirstFile
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			kind, ok := chess.KindFromLetter(byte(c))
			if !ok {
				return nil, nil, fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			sq := chess.Sq(file, rank)
			if !sq.InBounds() {
				return nil, nil, fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}
			side := chess.White
			if unicode.IsLower(c) {
				side = chess.Black
			}
			p := chess.NewPiece(kind, side)
			if kind == chess.Pawn && rank != PawnRank(side) {
				p.ClearFirstMove()
			}
			if err := board.Place(p, sq); err != nil {
				return nil, nil, err
			}
			pieces = append(pieces, p)
			file++
		}
	}
	if rank != chess.FirstRank || file != chess.BoardSize {
		return nil, nil, fmt.Errorf("incomplete placement %q: %w", parts[0], errors.ErrInvalidFEN)
	}
	return board, pieces, nil
}

// PawnRank returns the starting rank of a side's pawns.
func PawnRank(side chess.Side) int {
	if side == chess.Black {
		return chess.LastRank - 1
	}
	return chess.FirstRank + 1
}

// HomeRank returns the starting rank of a side's back-rank pieces.
func HomeRank(side chess.Side) int {
	if side == chess.Black {
		return chess.LastRank
	}
	return chess.FirstRank
}
