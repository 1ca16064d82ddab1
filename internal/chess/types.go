// Package chess provides the board, pieces and movement rules of standard chess.
//
// Squares are addressed by (row, column) with row 0 being rank 8 and column 0
// being file a, so White pawns advance toward decreasing rows.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// Colours lists both colours, Black first to match their index order.
var Colours = [2]Colour{Black, White}

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the row delta of a single pawn step for this colour.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// BackRow returns the row holding this colour's king and rooks at the start.
func (c Colour) BackRow() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRow returns the row this colour's pawns start on.
func (c Colour) PawnRow() int {
	return c.BackRow() + c.Forward()
}

// PromotionRow returns the row on which this colour's pawns promote.
func (c Colour) PromotionRow() int {
	return c.Opposite().BackRow()
}

// PieceKind represents a chess piece type.
type PieceKind int

const (
	NoKind PieceKind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter in either case to a piece kind.
// It returns NoKind for anything else.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// IsPromotionChoice reports whether a pawn may promote to this kind.
func (k PieceKind) IsPromotionChoice() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// Board dimensions and the fixed columns used by castling.
const (
	BoardSize = 8

	KingColumn          = 4
	KingsideRookColumn  = BoardSize - 1
	QueensideRookColumn = 0
	KingsideKingTarget  = 6
	QueensideKingTarget = 2
)

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
