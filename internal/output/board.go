// Package output renders games as text boards and JSON summaries.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// glyphs indexed by colour then kind.
var glyphs = [2][7]rune{
	chess.Black: {0, '♟', '♞', '♝', '♜', '♛', '♚'},
	chess.White: {0, '♙', '♘', '♗', '♖', '♕', '♔'},
}

// Header describes whose turn it is, or how the game ended.
func Header(g *engine.Game) string {
	if g.State() != engine.Ongoing {
		return fmt.Sprintf("--- %s %s by %s ---", g.State().Result(), g.State(), strings.ToLower(g.Method().String()))
	}
	check := ""
	if g.IsCurrentPlayerInCheck() {
		check = " (check)"
	}
	return fmt.Sprintf("--- %s's turn: %d%s ---", g.ToMove(), g.TurnCount(), check)
}

// SquareToken returns the two-character cell for a square.
func SquareToken(sq chess.Square, unicode bool) string {
	if sq.Empty() {
		return " ."
	}
	if unicode {
		return " " + string(glyphs[sq.Colour][sq.Kind])
	}
	c := "B"
	if sq.Colour == chess.White {
		c = "W"
	}
	return c + string(sq.Kind.Letter())
}

// FormatBoard renders a snapshot with rank 8 at the top.
func FormatBoard(s *chess.Snapshot, opts *config.OutputConfig) string {
	var sb strings.Builder
	for row := 0; row < chess.BoardSize; row++ {
		if opts.ShowCoordinates {
			sb.WriteByte(byte('8' - row))
			sb.WriteByte(' ')
		}
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(SquareToken(s[row][col], opts.Unicode))
		}
		sb.WriteByte('\n')
	}
	if opts.ShowCoordinates {
		sb.WriteString("  ")
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(' ')
			sb.WriteByte(byte('a' + col))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteBoard writes the header and the current board of g.
func WriteBoard(w io.Writer, g *engine.Game, opts *config.OutputConfig) error {
	s := g.Snapshot()
	_, err := fmt.Fprintf(w, "%s\n%s", Header(g), FormatBoard(&s, opts))
	return err
}
