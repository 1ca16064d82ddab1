package main

import (
	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// Selector turns square clicks into moves: the first click picks a piece of
// the side to move, the second tries to move it there. Clicking another
// piece of the same side switches the selection.
type Selector struct {
	game     *engine.Game
	selected chess.Position
	active   bool
}

// NewSelector creates a selector for g with nothing selected.
func NewSelector(g *engine.Game) *Selector {
	return &Selector{game: g}
}

// Click handles a click on pos and reports whether it completed a move.
func (s *Selector) Click(pos chess.Position) bool {
	snap := s.game.Snapshot()
	sq := snap.At(pos)
	own := !sq.Empty() && sq.Colour == s.game.ToMove()

	if !s.active || (own && pos != s.selected) {
		if own && s.game.State() == engine.Ongoing {
			s.selected, s.active = pos, true
		} else {
			s.active = false
		}
		return false
	}

	from := s.selected
	s.active = false
	return s.game.AttemptMove(from, pos)
}

// Selected returns the selected square, if any.
func (s *Selector) Selected() (chess.Position, bool) {
	return s.selected, s.active
}

// Highlights returns the legal targets of the selected piece.
func (s *Selector) Highlights() []chess.Position {
	if !s.active {
		return nil
	}
	return s.game.LegalTargets(s.selected)
}

// Clear drops the selection.
func (s *Selector) Clear() {
	s.active = false
}
