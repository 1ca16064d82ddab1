package testutil

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/engine"
)

// Pos parses an algebraic square and calls t.Fatal if it is invalid.
func Pos(t *testing.T, s string) chess.Position {
	t.Helper()
	p, err := chess.ParsePosition(s)
	if err != nil {
		t.Fatalf("Pos(%q): %v", s, err)
	}
	return p
}

// MustGameFromFEN builds a game from fen and calls t.Fatal on error.
func MustGameFromFEN(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

// MustPlay plays each move in order and calls t.Fatal on the first failure.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := g.Play(m); err != nil {
			t.Fatalf("Play(%q): %v", m, err)
		}
	}
}

// Squares renders positions in algebraic notation, keeping their order.
func Squares(ps []chess.Position) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.String()
	}
	return out
}

// Targets returns the legal targets of the piece on from as algebraic squares.
func Targets(t *testing.T, g *engine.Game, from string) []string {
	t.Helper()
	return Squares(g.LegalTargets(Pos(t, from)))
}
