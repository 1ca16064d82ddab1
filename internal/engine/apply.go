package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// moveEffect records what applyMove did beyond relocating the mover.
type moveEffect struct {
	captured *chess.Piece // Piece taken off the board, if any
	rook     *chess.Piece // Castling rook, already relocated
	rookFrom chess.Position
}

// applyMove relocates the piece on from to to on board, removing whatever it
// captures (including the pawn taken en passant) and moving the rook when the
// king castles. It does not touch kind-specific state; the caller decides
// whether the move is committed.
func applyMove(board *chess.Board, from, to chess.Position) moveEffect {
	var eff moveEffect
	mover := board.At(from)
	if mover == nil {
		return eff
	}

	switch {
	case mover.IsEnPassant(to, board):
		if victim, ok := chess.EnPassantVictim(from, to); ok {
			eff.captured = board.Remove(victim)
		}
	case mover.IsCastle(to):
		rookFrom, rookTo := chess.CastleRookSquares(to)
		board.Relocate(rookFrom, rookTo)
		eff.rook = board.At(rookTo)
		eff.rookFrom = rookFrom
	}

	if captured := board.Relocate(from, to); captured != nil {
		eff.captured = captured
	}
	return eff
}
