package engine

import (
	"testing"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewGameFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewGameFromFEN(fen) //nolint:errcheck // benchmark
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		g, err := NewGameFromFEN(fen)
		if err != nil {
			b.Fatal(err)
		}
		pieces := g.sidePieces(g.ToMove(), g.board())
		ctx := g.context()
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				for _, p := range pieces {
					LegalMoves(p, ctx)
				}
			}
		})
	}
}

func BenchmarkAttemptMove(b *testing.B) {
	moves := [][2]string{{"e2", "e4"}, {"e7", "e5"}, {"g1", "f3"}, {"b8", "c6"}, {"f1", "b5"}, {"a7", "a6"}}
	for i := 0; i < b.N; i++ {
		g := NewGame()
		for _, m := range moves {
			g.AttemptMove(chess.MustParsePosition(m[0]), chess.MustParsePosition(m[1]))
		}
	}
}

func BenchmarkSimulateMove(b *testing.B) {
	g := NewGame()
	from, to := chess.MustParsePosition("e2"), chess.MustParsePosition("e4")
	for i := 0; i < b.N; i++ {
		SimulateMove(g.board(), from, to)
	}
}
