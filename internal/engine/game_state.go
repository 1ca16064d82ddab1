package engine

import "github.com/lgbarn/chessboard-go/internal/chess"

// GameState is the result state of a game.
type GameState int

const (
	Ongoing GameState = iota
	WhiteWon
	BlackWon
	Draw
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case Ongoing:
		return "Ongoing"
	case WhiteWon:
		return "WhiteWon"
	case BlackWon:
		return "BlackWon"
	case Draw:
		return "Draw"
	}
	return "Unknown"
}

// Result returns the PGN result token for the state.
func (s GameState) Result() string {
	switch s {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// wonBy returns the state in which colour has won.
func wonBy(colour chess.Colour) GameState {
	if colour == chess.White {
		return WhiteWon
	}
	return BlackWon
}

// Method is how a finished game ended.
type Method int

const (
	NoMethod Method = iota
	Checkmate
	Stalemate
	Resignation
)

// String returns the string representation of a method.
func (m Method) String() string {
	names := []string{"None", "Checkmate", "Stalemate", "Resignation"}
	if m >= 0 && int(m) < len(names) {
		return names[m]
	}
	return "Unknown"
}

// IsCheckmate returns true if colour's king is in check and none of
// colour's pieces has a legal move.
func IsCheckmate(ctx chess.MoveContext, colour chess.Colour) bool {
	king := ctx.Board.King(colour)
	return king != nil && king.InCheck(ctx) && !HasLegalMoves(ctx.Board.Pieces(colour), ctx)
}

// IsStalemate returns true if colour is not in check but has no legal move.
func IsStalemate(ctx chess.MoveContext, colour chess.Colour) bool {
	king := ctx.Board.King(colour)
	if king != nil && king.InCheck(ctx) {
		return false
	}
	return !HasLegalMoves(ctx.Board.Pieces(colour), ctx)
}
