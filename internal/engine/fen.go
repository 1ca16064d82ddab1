package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// NewGameFromFEN creates a game from a FEN string. Castling availability
// becomes the HasMoved flags of the kings and rooks, the en passant square
// becomes the DoubleStepTurn of the pawn that just moved, and the full-move
// number becomes the turn counter. The halfmove clock is not tracked.
// A position that is already checkmate or stalemate starts finished.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}
	turn := parseFullmove(parts)

	if err := parseCastlingRights(board, parts); err != nil {
		return nil, err
	}
	parseEnPassant(board, parts, toMove, turn)

	g, err := newGame(board, toMove, turn)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, errors.ErrInvalidFEN)
	}
	if g.king(toMove.Opposite()).InCheck(g.context()) {
		return nil, fmt.Errorf("side not to move is in check: %w", errors.ErrInvalidFEN)
	}
	g.evaluate()
	return g, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for row, rank := range ranks {
		col := 0
		for _, c := range rank {
			switch {
			case c >= '1' && c <= '8':
				col += int(c - '0')
			default:
				kind := chess.KindFromLetter(byte(c))
				if kind == chess.NoKind || c > unicode.MaxASCII {
					return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
				}
				pos, err := chess.NewPosition(row, col)
				if err != nil {
					return fmt.Errorf("rank %d overflows: %w", chess.BoardSize-row, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if unicode.IsLower(c) {
					colour = chess.Black
				}
				if kind == chess.Pawn && (row == 0 || row == chess.BoardSize-1) {
					return fmt.Errorf("pawn on %s: %w", pos, errors.ErrInvalidFEN)
				}
				board.Place(kind, colour, pos)
				col++
			}
		}
		if col != chess.BoardSize {
			return fmt.Errorf("rank %d has %d squares: %w", chess.BoardSize-row, col, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
}

// parseFullmove parses the full-move number, defaulting to 1.
func parseFullmove(parts []string) int {
	turn := 1
	if len(parts) >= 6 {
		fmt.Sscanf(parts[5], "%d", &turn) //nolint:errcheck // malformed counters keep the default
	}
	if turn < 1 {
		turn = 1
	}
	return turn
}

// parseCastlingRights marks every king and rook as moved unless the castling
// field grants it a right.
func parseCastlingRights(board *chess.Board, parts []string) error {
	for _, colour := range chess.Colours {
		for _, p := range board.Pieces(colour) {
			p.HasMoved = p.Kind == chess.King || p.Kind == chess.Rook
		}
	}
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		rookCol := chess.KingsideRookColumn
		switch c {
		case 'K', 'k':
		case 'Q', 'q':
			rookCol = chess.QueensideRookColumn
		default:
			return fmt.Errorf("invalid castling right: %c: %w", c, errors.ErrInvalidFEN)
		}

		king := board.At(colour.HomeSquare())
		rook := board.At(chess.MustPosition(colour.BackRow(), rookCol))
		if king == nil || king.Kind != chess.King || king.Colour != colour ||
			rook == nil || rook.Kind != chess.Rook || rook.Colour != colour {
			continue // Right without the pieces to use it
		}
		king.HasMoved = false
		rook.HasMoved = false
	}
	return nil
}

// parseEnPassant marks the pawn that just double-stepped past the en passant
// square, so the side to move may capture it this turn.
func parseEnPassant(board *chess.Board, parts []string, toMove chess.Colour, turn int) {
	if len(parts) < 4 || parts[3] == "-" {
		return
	}
	ep, err := chess.ParsePosition(parts[3])
	if err != nil {
		return
	}
	mover := toMove.Opposite()
	pos, ok := ep.Offset(mover.Forward(), 0)
	if !ok {
		return
	}
	pawn := board.At(pos)
	if pawn == nil || pawn.Kind != chess.Pawn || pawn.Colour != mover {
		return
	}
	// White's double step shares Black's turn number; Black's was the
	// turn before White's reply.
	stepTurn := turn
	if mover == chess.Black {
		stepTurn--
	}
	if stepTurn >= 1 {
		pawn.DoubleStepTurn = stepTurn
	}
}

// FEN returns the FEN string of the current position. The halfmove clock is
// always 0.
func (g *Game) FEN() string {
	var sb strings.Builder
	board := g.board()

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
	sb.WriteByte(' ')
	writeCastlingRights(&sb, board)
	sb.WriteByte(' ')
	sb.WriteString(g.enPassantSquare())
	fmt.Fprintf(&sb, " 0 %d", g.turn)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	snap := board.Snapshot()
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			sq := snap[row][col]
			if sq.Empty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(sq.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeCastlingRights writes the castling availability implied by the
// HasMoved flags.
func writeCastlingRights(sb *strings.Builder, board *chess.Board) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := board.At(colour.HomeSquare())
		if king == nil || king.Kind != chess.King || king.Colour != colour || king.HasMoved {
			continue
		}
		for _, side := range []struct {
			col    int
			letter byte
		}{{chess.KingsideRookColumn, 'K'}, {chess.QueensideRookColumn, 'Q'}} {
			rook := board.At(chess.MustPosition(colour.BackRow(), side.col))
			if rook == nil || rook.Kind != chess.Rook || rook.Colour != colour || rook.HasMoved {
				continue
			}
			letter := side.letter
			if colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// enPassantSquare returns the square behind a pawn the side to move could
// capture en passant this turn, or "-".
func (g *Game) enPassantSquare() string {
	board := g.board()
	mover := g.toMove.Opposite()
	want := g.turn
	if mover == chess.Black {
		want--
	}
	for _, p := range board.Pieces(mover) {
		if p.Kind == chess.Pawn && p.DoubleStepTurn > 0 && p.DoubleStepTurn == want &&
			p.Pos.Row() == g.toMove.EnPassantRow() {
			if behind, ok := p.Pos.Offset(-mover.Forward(), 0); ok {
				return behind.String()
			}
		}
	}
	return "-"
}
