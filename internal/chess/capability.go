package chess

// kindInfo is the static metadata for one piece kind.
type kindInfo struct {
	name   string
	letter byte
	glyphs [2]string // indexed by Side
	rules  []Rule
}

// kinds is never mutated after initialisation; Rules hands out copies.
var kinds = [NumKinds]kindInfo{
	Pawn: {
		name: "Pawn", letter: 'P', glyphs: [2]string{"♙", "♟"},
		rules: []Rule{{PawnForward, Flexible}},
	},
	Rook: {
		name: "Rook", letter: 'R', glyphs: [2]string{"♖", "♜"},
		rules: []Rule{{Horizontal, Multiple}, {Vertical, Multiple}},
	},
	Knight: {
		name: "Knight", letter: 'N', glyphs: [2]string{"♘", "♞"},
		rules: []Rule{{LShaped, Single}},
	},
	Bishop: {
		name: "Bishop", letter: 'B', glyphs: [2]string{"♗", "♝"},
		rules: []Rule{{Diagonal, Multiple}},
	},
	Queen: {
		name: "Queen", letter: 'Q', glyphs: [2]string{"♕", "♛"},
		rules: []Rule{{Diagonal, Multiple}, {Horizontal, Multiple}, {Vertical, Multiple}},
	},
	King: {
		name: "King", letter: 'K', glyphs: [2]string{"♔", "♚"},
		rules: []Rule{{Diagonal, Single}, {Horizontal, Single}, {Vertical, Single}},
	},
}

// BackRank is the fixed order of pieces on a side's home rank, file a to h.
var BackRank = [BoardSize]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// Rules returns a copy of the movement capability for a kind.
func Rules(k Kind) []Rule {
	if k < 0 || k >= NumKinds {
		return nil
	}
	out := make([]Rule, len(kinds[k].rules))
	copy(out, kinds[k].rules)
	return out
}

// String returns the string representation of a kind.
func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return "Unknown"
	}
	return kinds[k].name
}

// Letter returns the single uppercase letter for a kind.
func (k Kind) Letter() byte {
	if k < 0 || k >= NumKinds {
		return '?'
	}
	return kinds[k].letter
}

// Glyph returns the unicode chess symbol for a kind on the given side.
func (k Kind) Glyph(side Side) string {
	if k < 0 || k >= NumKinds {
		return "?"
	}
	return kinds[k].glyphs[side]
}

// KindFromLetter maps a letter (either case) back to a kind.
func KindFromLetter(letter byte) (Kind, bool) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	for k := Pawn; k < NumKinds; k++ {
		if kinds[k].letter == letter {
			return k, true
		}
	}
	return Pawn, false
}
