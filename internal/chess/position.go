package chess

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Position is a square on the board. The zero value is a8.
// Positions are values: compare them with == and use them as map keys.
type Position struct {
	row, col int8
}

// NewPosition returns the square at (row, col), or ErrOutOfBounds if either
// index is outside [0, 7].
func NewPosition(row, col int) (Position, error) {
	if !IsValid(row, col) {
		return Position{}, fmt.Errorf("(%d, %d): %w", row, col, errors.ErrOutOfBounds)
	}
	return Position{row: int8(row), col: int8(col)}, nil
}

// MustPosition is like NewPosition but panics on out-of-range indices.
// It is meant for constants and tests.
func MustPosition(row, col int) Position {
	p, err := NewPosition(row, col)
	if err != nil {
		panic(err)
	}
	return p
}

// IsValid reports whether (row, col) lies on the board.
func IsValid(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Row returns the row index, 0 being rank 8.
func (p Position) Row() int { return int(p.row) }

// Col returns the column index, 0 being file a.
func (p Position) Col() int { return int(p.col) }

// Offset returns the square dr rows and dc columns away, and false if that
// square is off the board.
func (p Position) Offset(dr, dc int) (Position, bool) {
	r, c := int(p.row)+dr, int(p.col)+dc
	if !IsValid(r, c) {
		return Position{}, false
	}
	return Position{row: int8(r), col: int8(c)}, true
}

// ParsePosition converts a two-character square such as "e4" to a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    s,
			Expected: "two characters",
			Got:      fmt.Sprintf("%d", len(s)),
		}
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    s,
			Column:   1,
			Expected: "file a-h",
			Got:      fmt.Sprintf("%q", file),
		}
	}
	if rank < '1' || rank > '8' {
		return Position{}, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    s,
			Column:   2,
			Expected: "rank 1-8",
			Got:      fmt.Sprintf("%q", rank),
		}
	}
	return Position{row: int8('8' - rank), col: int8(file - 'a')}, nil
}

// MustParsePosition is like ParsePosition but panics on malformed input.
func MustParsePosition(s string) Position {
	p, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return p
}

// File returns the file letter of the square.
func (p Position) File() byte { return byte('a' + p.col) }

// Rank returns the rank digit of the square.
func (p Position) Rank() byte { return byte('8' - p.row) }

// String returns the algebraic name of the square, e.g. "e4".
func (p Position) String() string {
	return string([]byte{p.File(), p.Rank()})
}

// SortPositions orders positions top row first, then by column.
func SortPositions(ps []Position) {
	sort.Slice(ps, func(i, j int) bool {
		if ps[i].row != ps[j].row {
			return ps[i].row < ps[j].row
		}
		return ps[i].col < ps[j].col
	})
}
