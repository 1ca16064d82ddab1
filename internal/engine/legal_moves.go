package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// ValidateMove reports whether piece may legally move to target. The move
// must be pseudo-legal; for anything but the king it is then played on a
// copy of the board and rejected if it leaves the mover's king attacked.
// King moves already exclude attacked squares, so pseudo-legal suffices.
func ValidateMove(piece *chess.Piece, target chess.Position, ctx chess.MoveContext) bool {
	if !piece.IsPseudoLegal(target, ctx) {
		return false
	}
	if piece.Kind == chess.King {
		return true
	}

	sim := SimulateMove(ctx.Board, piece.Pos, target)
	king := sim.King(piece.Colour)
	if king == nil {
		return true // Nothing to protect on setup boards without a king
	}
	return !king.InCheck(ctx.WithBoard(sim))
}

// SimulateMove returns a copy of board with the move from -> to played on it.
// The original board is left untouched.
func SimulateMove(board *chess.Board, from, to chess.Position) *chess.Board {
	sim := board.Clone()
	applyMove(sim, from, to)
	return sim
}

// LegalMoves returns the pseudo-legal targets of piece that survive
// ValidateMove.
func LegalMoves(piece *chess.Piece, ctx chess.MoveContext) []chess.Position {
	var moves []chess.Position
	for _, target := range piece.PseudoLegalMoves(ctx) {
		if ValidateMove(piece, target, ctx) {
			moves = append(moves, target)
		}
	}
	return moves
}

// HasLegalMoves returns true if any of pieces has at least one legal move.
func HasLegalMoves(pieces []*chess.Piece, ctx chess.MoveContext) bool {
	for _, p := range pieces {
		for _, target := range p.PseudoLegalMoves(ctx) {
			if ValidateMove(p, target, ctx) {
				return true
			}
		}
	}
	return false
}
