package engine

import (
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/errors"
)

// Castling notations accepted by AttemptCastle.
const (
	KingsideCastle  = "O-O"
	QueensideCastle = "O-O-O"
)

// AttemptMove plays the piece on from to to, promoting to a queen if a pawn
// reaches the last rank. It returns false, leaving the game untouched, if
// the game is over, from holds no piece of the side to move, or the move is
// illegal.
func (g *Game) AttemptMove(from, to chess.Position) bool {
	return g.AttemptMovePromote(from, to, chess.Queen)
}

// AttemptMovePromote is AttemptMove with the promotion piece chosen by the
// caller. The kind is only consulted when a pawn reaches the last rank and
// must then be a knight, bishop, rook or queen.
func (g *Game) AttemptMovePromote(from, to chess.Position, promotion chess.PieceKind) bool {
	if g.state != Ongoing {
		return false
	}
	piece := g.board().At(from)
	if piece == nil || piece.Colour != g.toMove {
		return false
	}
	if !ValidateMove(piece, to, g.context()) {
		return false
	}
	if isPromotion(piece, to) && !promotion.IsPromotionChoice() {
		return false
	}
	g.commit(from, to, promotion)
	return true
}

// AttemptCastle castles the side to move: "O-O" kingside, "O-O-O" queenside.
// Zeros are accepted in place of the letter O.
func (g *Game) AttemptCastle(notation string) bool {
	if g.state != Ongoing {
		return false
	}
	col, ok := castleColumn(notation)
	if !ok {
		return false
	}
	king := g.king(g.toMove)
	target := chess.MustPosition(g.toMove.BackRow(), col)
	if !king.CanCastle(target, g.context()) {
		return false
	}
	g.commit(king.Pos, target, chess.NoKind)
	return true
}

// castleColumn maps castling notation to the king's landing column.
func castleColumn(notation string) (int, bool) {
	switch strings.ToUpper(strings.ReplaceAll(notation, "0", "O")) {
	case KingsideCastle:
		return chess.KingsideKingTarget, true
	case QueensideCastle:
		return chess.QueensideKingTarget, true
	}
	return 0, false
}

// isPromotion reports whether moving piece to target promotes it.
func isPromotion(piece *chess.Piece, target chess.Position) bool {
	return piece.Kind == chess.Pawn && target.Row() == piece.Colour.PromotionRow()
}

// commit plays an already validated move: the new board is built on a copy
// of the current one, registries and king references follow it, the snapshot
// is pushed, the turn passes and the end of the game is checked.
func (g *Game) commit(from, to chess.Position, promotion chess.PieceKind) {
	ctx := g.context()
	next := ctx.Board.Clone()
	mover := next.At(from)
	notation := moveNotation(mover, from, to, promotion)
	promoting := isPromotion(mover, to)

	eff := applyMove(next, from, to)
	if eff.captured != nil {
		delete(g.registry[eff.captured.Colour], eff.captured.ID)
	}

	moveCtx := ctx.WithBoard(next)
	next.At(to).AfterMove(from, moveCtx)
	if eff.rook != nil {
		eff.rook.AfterMove(eff.rookFrom, moveCtx)
	}
	if promoting {
		g.promote(next, to, promotion)
	}

	g.history = append(g.history, next)
	g.refreshKings(next)
	g.moves = append(g.moves, notation)

	if g.toMove == chess.Black {
		g.turn++
	}
	g.toMove = g.toMove.Opposite()
	g.evaluate()
}

// promote replaces the pawn on pos with a new piece of the given kind. The
// pawn leaves its side's registry and the new piece joins it.
func (g *Game) promote(board *chess.Board, pos chess.Position, kind chess.PieceKind) {
	pawn := board.Remove(pos)
	colour := pawn.Colour
	delete(g.registry[colour], pawn.ID)

	id := board.Place(kind, colour, pos)
	board.Piece(id).HasMoved = true
	g.registry[colour][id] = struct{}{}
}

// evaluate ends the game if the side to move has no legal move: checkmate
// when its king is attacked, stalemate otherwise.
func (g *Game) evaluate() {
	ctx := g.context()
	if HasLegalMoves(g.sidePieces(g.toMove, ctx.Board), ctx) {
		return
	}
	if g.king(g.toMove).InCheck(ctx) {
		g.state = wonBy(g.toMove.Opposite())
		g.method = Checkmate
		return
	}
	g.state = Draw
	g.method = Stalemate
}

// moveNotation returns the long algebraic form of a move: "e2e4", "e7e8q",
// or castling notation when the king travels two squares.
func moveNotation(mover *chess.Piece, from, to chess.Position, promotion chess.PieceKind) string {
	if mover.IsCastle(to) {
		if to.Col() == chess.KingsideKingTarget {
			return KingsideCastle
		}
		return QueensideCastle
	}
	s := from.String() + to.String()
	if isPromotion(mover, to) {
		s += strings.ToLower(string(promotion.Letter()))
	}
	return s
}

// Play parses and plays a move in long algebraic notation ("e2e4", "e2-e4",
// "e7e8n") or castling notation. Unlike AttemptMove it reports why a move
// was refused.
func (g *Game) Play(notation string) error {
	ply := len(g.moves) + 1
	if g.state != Ongoing {
		return &errors.MoveError{Err: errors.ErrGameOver, Ply: ply, MoveText: notation}
	}

	if _, ok := castleColumn(notation); ok {
		if !g.AttemptCastle(notation) {
			return &errors.MoveError{Err: errors.ErrIllegalMove, Ply: ply, MoveText: notation}
		}
		return nil
	}

	from, to, promotion, err := ParseMove(notation)
	if err != nil {
		return &errors.MoveError{Err: err, Ply: ply, MoveText: notation}
	}
	if !g.AttemptMovePromote(from, to, promotion) {
		return &errors.MoveError{Err: errors.ErrIllegalMove, Ply: ply, MoveText: notation}
	}
	return nil
}

// ParseMove splits a long algebraic move into its squares and promotion
// kind. The promotion defaults to a queen when no letter is given.
func ParseMove(s string) (from, to chess.Position, promotion chess.PieceKind, err error) {
	move := s
	if len(move) >= 5 && move[2] == '-' {
		move = move[:2] + move[3:]
	}
	if len(move) != 4 && len(move) != 5 {
		return from, to, chess.NoKind, &errors.ParseError{
			Err:      errors.ErrInvalidNotation,
			Input:    s,
			Expected: "move like e2e4",
		}
	}

	if from, err = chess.ParsePosition(move[0:2]); err != nil {
		return from, to, chess.NoKind, err
	}
	if to, err = chess.ParsePosition(move[2:4]); err != nil {
		return from, to, chess.NoKind, err
	}

	promotion = chess.Queen
	if len(move) == 5 {
		promotion = chess.KindFromLetter(move[4])
		if !promotion.IsPromotionChoice() {
			return from, to, chess.NoKind, &errors.ParseError{
				Err:      errors.ErrInvalidNotation,
				Input:    s,
				Column:   len(s),
				Expected: "promotion piece q, r, b or n",
				Got:      string(move[4]),
			}
		}
	}
	return from, to, promotion, nil
}
