package engine

import (
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// promotionChoices lists the kinds a pawn may become, strongest first.
var promotionChoices = []chess.PieceKind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight}

// Move is one legal move of the side to move. Promotion is NoKind unless a
// pawn reaches the last rank.
type Move struct {
	From      chess.Position
	To        chess.Position
	Promotion chess.PieceKind
}

// String returns the move in long algebraic notation, e.g. "e2e4" or "e7e8n".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != chess.NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// AllLegalMoves returns every legal move of the side to move. A pawn reaching
// the last rank contributes one move per promotion choice. Castling appears
// as the king's two-square move. The list is empty once the game is over.
func (g *Game) AllLegalMoves() []Move {
	if g.state != Ongoing {
		return nil
	}
	ctx := g.context()
	var moves []Move
	for _, p := range g.sidePieces(g.toMove, ctx.Board) {
		targets := LegalMoves(p, ctx)
		chess.SortPositions(targets)
		for _, to := range targets {
			if !isPromotion(p, to) {
				moves = append(moves, Move{From: p.Pos, To: to})
				continue
			}
			for _, kind := range promotionChoices {
				moves = append(moves, Move{From: p.Pos, To: to, Promotion: kind})
			}
		}
	}
	return moves
}

// Apply plays m and reports whether it was legal.
func (g *Game) Apply(m Move) bool {
	promotion := m.Promotion
	if promotion == chess.NoKind {
		promotion = chess.Queen
	}
	return g.AttemptMovePromote(m.From, m.To, promotion)
}

// Clone returns an independent copy of the game. Past snapshots are shared
// since they are never modified.
func (g *Game) Clone() *Game {
	c := *g
	c.history = g.history[:len(g.history):len(g.history)]
	c.moves = g.moves[:len(g.moves):len(g.moves)]
	for _, colour := range chess.Colours {
		c.registry[colour] = make(map[int]struct{}, len(g.registry[colour]))
		for id := range g.registry[colour] {
			c.registry[colour][id] = struct{}{}
		}
	}
	return &c
}
