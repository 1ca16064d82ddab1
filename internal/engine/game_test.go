package engine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessboard-go/internal/chess"
	chesserrors "github.com/lgbarn/chessboard-go/internal/errors"
)

func pos(s string) chess.Position { return chess.MustParsePosition(s) }

func mustFEN(t *testing.T, fen string) *Game {
	t.Helper()
	g, err := NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if err := g.Play(m); err != nil {
			t.Fatalf("Play(%q): %v", m, err)
		}
		if err := g.checkRegistries(); err != nil {
			t.Fatalf("after %s: %v", m, err)
		}
	}
}

func targets(g *Game, from string) []string {
	out := []string{}
	for _, p := range g.LegalTargets(pos(from)) {
		out = append(out, p.String())
	}
	return out
}

// allTargets counts the legal moves of the side to move.
func allTargets(g *Game) int {
	n := 0
	for _, p := range g.sidePieces(g.ToMove(), g.board()) {
		n += len(g.LegalTargets(p.Pos))
	}
	return n
}

func TestNewGame(t *testing.T) {
	g := NewGame()

	if g.State() != Ongoing || g.Method() != NoMethod {
		t.Errorf("state = %s/%s, want Ongoing/None", g.State(), g.Method())
	}
	if g.ToMove() != chess.White {
		t.Errorf("ToMove() = %s, want White", g.ToMove())
	}
	if g.TurnCount() != 1 {
		t.Errorf("TurnCount() = %d, want 1", g.TurnCount())
	}
	if g.HistoryLen() != 1 {
		t.Errorf("HistoryLen() = %d, want 1", g.HistoryLen())
	}
	if len(g.Moves()) != 0 {
		t.Errorf("Moves() = %v, want none", g.Moves())
	}
	if g.IsCurrentPlayerInCheck() {
		t.Error("White should not start in check")
	}
	if n := allTargets(g); n != 20 {
		t.Errorf("legal moves = %d, want 20", n)
	}
	if err := g.checkRegistries(); err != nil {
		t.Error(err)
	}
	if len(g.registry[chess.White]) != 16 || len(g.registry[chess.Black]) != 16 {
		t.Errorf("registry sizes = %d/%d, want 16/16", len(g.registry[chess.White]), len(g.registry[chess.Black]))
	}
}

func TestAttemptMove_KingsPawn(t *testing.T) {
	g := NewGame()

	if !g.AttemptMove(pos("e2"), pos("e4")) {
		t.Fatal("e2e4 rejected")
	}
	if g.ToMove() != chess.Black {
		t.Errorf("ToMove() = %s, want Black", g.ToMove())
	}
	if g.TurnCount() != 1 {
		t.Errorf("TurnCount() = %d, want 1", g.TurnCount())
	}
	if g.HistoryLen() != 2 {
		t.Errorf("HistoryLen() = %d, want 2", g.HistoryLen())
	}

	snap := g.Snapshot()
	if got := snap.At(pos("e4")); got != (chess.Square{Kind: chess.Pawn, Colour: chess.White}) {
		t.Errorf("e4 = %+v, want white pawn", got)
	}
	if !snap.At(pos("e2")).Empty() {
		t.Error("e2 should be empty")
	}

	start, ok := g.SnapshotAt(0)
	if !ok {
		t.Fatal("SnapshotAt(0) missing")
	}
	if start.At(pos("e2")).Kind != chess.Pawn || !start.At(pos("e4")).Empty() {
		t.Error("initial snapshot was modified by the move")
	}
	if _, ok := g.SnapshotAt(2); ok {
		t.Error("SnapshotAt(2) should not exist after one move")
	}

	if diff := cmp.Diff([]string{"e2e4"}, g.Moves()); diff != "" {
		t.Errorf("Moves() mismatch (-want +got):\n%s", diff)
	}
}

func TestAttemptMove_TurnCounter(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5")
	if g.TurnCount() != 2 {
		t.Errorf("TurnCount() = %d after a full move, want 2", g.TurnCount())
	}
	if g.ToMove() != chess.White {
		t.Errorf("ToMove() = %s, want White", g.ToMove())
	}
}

func TestAttemptMove_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
	}{
		{"empty square", InitialFEN, "e4", "e5"},
		{"opponent piece", InitialFEN, "e7", "e5"},
		{"pawn triple step", InitialFEN, "e2", "e5"},
		{"pawn sideways", InitialFEN, "e2", "d3"},
		{"knight geometry", InitialFEN, "g1", "g3"},
		{"bishop blocked", InitialFEN, "f1", "c4"},
		{"capture own piece", InitialFEN, "d1", "d2"},
		{"rook diagonal", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "b2"},
		{"stay in place", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1", "a1"},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2", "d3"},
		{"ignore check", "4k3/4r3/8/8/8/8/R7/4K3 w - - 0 1", "a2", "a3"},
		{"king into attack", "4k3/8/8/8/8/8/3r4/7K w - - 0 1", "h1", "h2"},
		{"king next to king", "8/8/8/3k4/8/3K4/8/8 w - - 0 1", "d3", "d4"},
		{"king along checking ray", "4k3/4r3/8/8/8/8/8/4K3 w - - 0 1", "e1", "e2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			before := g.FEN()

			if g.AttemptMove(pos(tt.from), pos(tt.to)) {
				t.Fatalf("%s%s accepted", tt.from, tt.to)
			}
			if g.FEN() != before || g.HistoryLen() != 1 || len(g.Moves()) != 0 {
				t.Errorf("rejected move changed the game: %s", g.FEN())
			}
			// Rejection is repeatable.
			if g.AttemptMove(pos(tt.from), pos(tt.to)) {
				t.Errorf("%s%s accepted on retry", tt.from, tt.to)
			}
		})
	}
}

func TestLegalTargets(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		from string
		want []string
	}{
		{"knight at start", InitialFEN, "g1", []string{"f3", "h3"}},
		{"pawn at start", InitialFEN, "e2", []string{"e4", "e3"}},
		{"blocked rook", InitialFEN, "a1", []string{}},
		{"not to move", InitialFEN, "e7", []string{}},
		{"empty square", InitialFEN, "e4", []string{}},
		{"pinned bishop", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e2", []string{}},
		{"pinned rook slides along pin", "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1", "e2", []string{"e7", "e6", "e5", "e4", "e3"}},
		{"king beside pinned piece", "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1", "e1", []string{"d2", "f2", "d1", "f1"}},
		{"king escapes check", "4k3/4r3/8/8/8/8/8/4K3 w - - 0 1", "e1", []string{"d2", "f2", "d1", "f1"}},
		{"only block answers check", "4k3/4r3/8/8/8/8/R7/4K3 w - - 0 1", "a2", []string{"e2"}},
		{"no block against adjacent check", "4k3/8/8/8/8/8/4r3/R3K3 w - - 0 1", "a1", []string{}},
		{"king takes the checker", "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", "e1", []string{"e2", "d1", "f1"}},
		{"king with castling", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", []string{"d2", "e2", "f2", "c1", "d1", "f1", "g1"}},
		{"black knight", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1", "b8", []string{"a6", "c6"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			if diff := cmp.Diff(tt.want, targets(g, tt.from)); diff != "" {
				t.Errorf("LegalTargets(%s) mismatch (-want +got):\n%s", tt.from, diff)
			}
		})
	}
}

func TestFoolsMate(t *testing.T) {
	g := NewGame()
	play(t, g, "f2f3", "e7e5", "g2g4", "d8h4")

	if g.State() != BlackWon {
		t.Fatalf("State() = %s, want BlackWon", g.State())
	}
	if g.Method() != Checkmate {
		t.Errorf("Method() = %s, want Checkmate", g.Method())
	}
	if g.ToMove() != chess.White {
		t.Errorf("ToMove() = %s, want the mated side White", g.ToMove())
	}
	if !g.IsCurrentPlayerInCheck() {
		t.Error("mated side should be in check")
	}
	if g.TurnCount() != 3 {
		t.Errorf("TurnCount() = %d, want 3", g.TurnCount())
	}
	if n := allTargets(g); n != 0 {
		t.Errorf("legal targets after mate = %d, want 0", n)
	}
	if g.AttemptMove(pos("a2"), pos("a3")) {
		t.Error("move accepted after checkmate")
	}
	if !IsCheckmate(g.context(), chess.White) {
		t.Error("IsCheckmate(White) = false")
	}
	if IsStalemate(g.context(), chess.White) {
		t.Error("IsStalemate(White) = true for a mate")
	}

	err := g.Play("a2a3")
	if !errors.Is(err, chesserrors.ErrGameOver) {
		t.Errorf("Play after mate = %v, want ErrGameOver", err)
	}
}

func TestScholarsMate(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4", "e7e5", "f1c4", "b8c6", "d1h5", "g8f6", "h5f7")

	if g.State() != WhiteWon || g.Method() != Checkmate {
		t.Errorf("state = %s/%s, want WhiteWon/Checkmate", g.State(), g.Method())
	}
	if g.ToMove() != chess.Black || !g.IsCurrentPlayerInCheck() {
		t.Error("Black should be to move and in check")
	}
}

func TestStalemate(t *testing.T) {
	g := mustFEN(t, "7k/8/6K1/8/8/8/8/5Q2 w - - 0 1")
	play(t, g, "f1f7")

	if g.State() != Draw || g.Method() != Stalemate {
		t.Errorf("state = %s/%s, want Draw/Stalemate", g.State(), g.Method())
	}
	if g.IsCurrentPlayerInCheck() {
		t.Error("stalemated side should not be in check")
	}
	if !IsStalemate(g.context(), chess.Black) {
		t.Error("IsStalemate(Black) = false")
	}
	if g.State().Result() != "1/2-1/2" {
		t.Errorf("Result() = %q", g.State().Result())
	}
}

func TestEnPassant(t *testing.T) {
	t.Run("white captures next move", func(t *testing.T) {
		g := NewGame()
		play(t, g, "e2e4", "a7a6", "e4e5", "d7d5")

		if diff := cmp.Diff([]string{"d6", "e6"}, targets(g, "e5")); diff != "" {
			t.Errorf("LegalTargets(e5) mismatch (-want +got):\n%s", diff)
		}
		play(t, g, "e5d6")
		snap := g.Snapshot()
		if !snap.At(pos("d5")).Empty() {
			t.Error("captured pawn still on d5")
		}
		if snap.At(pos("d6")) != (chess.Square{Kind: chess.Pawn, Colour: chess.White}) {
			t.Errorf("d6 = %+v, want white pawn", snap.At(pos("d6")))
		}
		if len(g.registry[chess.Black]) != 15 {
			t.Errorf("black registry = %d pieces, want 15", len(g.registry[chess.Black]))
		}
	})

	t.Run("window closes after one move", func(t *testing.T) {
		g := NewGame()
		play(t, g, "e2e4", "a7a6", "e4e5", "d7d5", "h2h3", "h7h6")

		if g.AttemptMove(pos("e5"), pos("d6")) {
			t.Error("en passant accepted a move late")
		}
	})

	t.Run("black captures", func(t *testing.T) {
		g := NewGame()
		play(t, g, "h2h3", "d7d5", "h3h4", "d5d4", "e2e4")

		if !g.AttemptMove(pos("d4"), pos("e3")) {
			t.Fatal("d4xe3 en passant rejected")
		}
		if !g.Snapshot().At(pos("e4")).Empty() {
			t.Error("captured pawn still on e4")
		}
	})

	t.Run("single steps do not qualify", func(t *testing.T) {
		g := NewGame()
		play(t, g, "e2e4", "d7d6", "e4e5", "d6d5")

		if g.AttemptMove(pos("e5"), pos("d6")) {
			t.Error("en passant accepted against a pawn that stepped twice singly")
		}
	})

	t.Run("from FEN", func(t *testing.T) {
		g := mustFEN(t, "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3")

		if diff := cmp.Diff([]string{"e6", "f6"}, targets(g, "e5")); diff != "" {
			t.Errorf("LegalTargets(e5) mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("capture exposing king", func(t *testing.T) {
		// Removing both pawns from the fifth rank opens the rook's line.
		g := mustFEN(t, "8/8/8/K2pP2r/8/8/8/7k w - d6 0 2")

		if g.AttemptMove(pos("e5"), pos("d6")) {
			t.Error("en passant left the king attacked")
		}
	})
}

func TestCastling(t *testing.T) {
	const open = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

	t.Run("both sides", func(t *testing.T) {
		g := mustFEN(t, open)
		if !g.AttemptCastle(KingsideCastle) {
			t.Fatal("O-O rejected")
		}
		if !g.AttemptCastle("0-0-0") {
			t.Fatal("0-0-0 rejected")
		}
		if err := g.checkRegistries(); err != nil {
			t.Fatal(err)
		}
		if got, want := g.FEN(), "2kr3r/8/8/8/8/8/8/R4RK1 w - - 0 2"; got != want {
			t.Errorf("FEN() = %q, want %q", got, want)
		}
		if diff := cmp.Diff([]string{"O-O", "O-O-O"}, g.Moves()); diff != "" {
			t.Errorf("Moves() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("king move castles", func(t *testing.T) {
		g := mustFEN(t, open)
		if !g.AttemptMove(pos("e1"), pos("c1")) {
			t.Fatal("e1c1 rejected")
		}
		snap := g.Snapshot()
		if snap.At(pos("d1")).Kind != chess.Rook || !snap.At(pos("a1")).Empty() {
			t.Error("rook did not jump to d1")
		}
		if diff := cmp.Diff([]string{"O-O-O"}, g.Moves()); diff != "" {
			t.Errorf("Moves() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("rook move loses the right", func(t *testing.T) {
		g := mustFEN(t, open)
		play(t, g, "h1h2", "a8a7", "h2h1", "a7a8")

		if g.AttemptCastle(KingsideCastle) {
			t.Error("O-O accepted after the rook moved")
		}
		if !g.AttemptCastle(QueensideCastle) {
			t.Error("O-O-O rejected with the queenside rook unmoved")
		}
		if g.AttemptCastle(QueensideCastle) {
			t.Error("Black O-O-O accepted after the a8 rook moved")
		}
	})

	t.Run("king move loses both rights", func(t *testing.T) {
		g := mustFEN(t, open)
		play(t, g, "e1e2", "e8e7", "e2e1", "e7e8")

		if g.AttemptCastle(KingsideCastle) || g.AttemptCastle(QueensideCastle) {
			t.Error("castling accepted after the king moved")
		}
		if got := g.FEN(); got != "r3k2r/8/8/8/8/8/8/R3K2R w - - 0 3" {
			t.Errorf("FEN() = %q", got)
		}
	})

	t.Run("captured rook loses the right", func(t *testing.T) {
		g := mustFEN(t, "r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 0 1")
		play(t, g, "g2a8")
		if g.AttemptCastle(QueensideCastle) {
			t.Error("Black O-O-O accepted without the a8 rook")
		}
		if !g.AttemptCastle(KingsideCastle) {
			t.Error("Black O-O rejected")
		}
	})

	tests := []struct {
		name     string
		fen      string
		notation string
	}{
		{"pieces in the way", InitialFEN, KingsideCastle},
		{"knight on b1", "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", QueensideCastle},
		{"in check", "4k3/8/8/8/8/8/8/r3K2R w K - 0 1", KingsideCastle},
		{"through attacked square", "4k3/8/8/8/8/8/5r2/4K2R w K - 0 1", KingsideCastle},
		{"onto attacked square", "4k3/8/8/8/8/8/6r1/4K2R w K - 0 1", KingsideCastle},
		{"no right in FEN", "4k3/8/8/8/8/8/8/4K2R w - - 0 1", KingsideCastle},
		{"garbage notation", open, "O-O-O-O"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			if g.AttemptCastle(tt.notation) {
				t.Errorf("AttemptCastle(%q) accepted", tt.notation)
			}
			if g.HistoryLen() != 1 {
				t.Error("rejected castle changed the history")
			}
		})
	}

	t.Run("b1 attacked does not matter", func(t *testing.T) {
		g := mustFEN(t, "1r2k3/8/8/8/8/8/8/R3K3 w Q - 0 1")
		if !g.AttemptCastle(QueensideCastle) {
			t.Error("O-O-O rejected with only b1 attacked")
		}
	})
}

func TestPromotion(t *testing.T) {
	const fen = "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1"

	tests := []struct {
		name string
		move string
		sq   string
		want chess.PieceKind
	}{
		{"default queen", "e7e8", "e8", chess.Queen},
		{"knight", "e7e8n", "e8", chess.Knight},
		{"rook", "e7e8r", "e8", chess.Rook},
		{"bishop", "e7e8b", "e8", chess.Bishop},
		{"capture and promote", "e7d8q", "d8", chess.Queen},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, fen)
			play(t, g, tt.move)

			got := g.Snapshot().At(pos(tt.sq))
			if got != (chess.Square{Kind: tt.want, Colour: chess.White}) {
				t.Errorf("%s = %+v, want white %s", tt.sq, got, tt.want)
			}
			if len(g.registry[chess.White]) != 2 {
				t.Errorf("white registry = %d pieces, want 2", len(g.registry[chess.White]))
			}
		})
	}

	t.Run("AttemptMove defaults to queen", func(t *testing.T) {
		g := mustFEN(t, fen)
		if !g.AttemptMove(pos("e7"), pos("e8")) {
			t.Fatal("e7e8 rejected")
		}
		if g.Snapshot().At(pos("e8")).Kind != chess.Queen {
			t.Error("pawn did not become a queen")
		}
		if diff := cmp.Diff([]string{"e7e8q"}, g.Moves()); diff != "" {
			t.Errorf("Moves() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("invalid kinds", func(t *testing.T) {
		g := mustFEN(t, fen)
		for _, kind := range []chess.PieceKind{chess.King, chess.Pawn, chess.NoKind} {
			if g.AttemptMovePromote(pos("e7"), pos("e8"), kind) {
				t.Errorf("promotion to %s accepted", kind)
			}
		}
	})

	t.Run("promoted piece moves next turn", func(t *testing.T) {
		g := mustFEN(t, fen)
		play(t, g, "e7e8q", "a2b2", "e8e2")
		if g.Snapshot().At(pos("e2")).Kind != chess.Queen {
			t.Error("queen did not move to e2")
		}
	})

	t.Run("black promotes", func(t *testing.T) {
		g := mustFEN(t, "4k3/8/8/8/8/8/p7/4K3 b - - 0 1")
		play(t, g, "a2a1r")
		if got := g.Snapshot().At(pos("a1")); got != (chess.Square{Kind: chess.Rook, Colour: chess.Black}) {
			t.Errorf("a1 = %+v, want black rook", got)
		}
		if !g.IsCurrentPlayerInCheck() {
			t.Error("new rook should check the king on e1")
		}
	})

	t.Run("promotion that mates", func(t *testing.T) {
		g := mustFEN(t, "6k1/4P3/6K1/8/8/8/8/8 w - - 0 1")
		play(t, g, "e7e8q")
		if g.State() != WhiteWon || g.Method() != Checkmate {
			t.Errorf("state = %s/%s, want WhiteWon/Checkmate", g.State(), g.Method())
		}
	})
}

func TestPlay_Errors(t *testing.T) {
	tests := []struct {
		name    string
		move    string
		wantErr error
	}{
		{"illegal", "e2e5", chesserrors.ErrIllegalMove},
		{"bad square", "e2e9", chesserrors.ErrInvalidNotation},
		{"too short", "e2", chesserrors.ErrInvalidNotation},
		{"bad promotion letter", "e7e8k", chesserrors.ErrInvalidNotation},
		{"castle blocked", "O-O", chesserrors.ErrIllegalMove},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			err := g.Play(tt.move)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Play(%q) = %v, want %v", tt.move, err, tt.wantErr)
			}
			var me *chesserrors.MoveError
			if !errors.As(err, &me) {
				t.Fatalf("Play(%q) error is %T, want *MoveError", tt.move, err)
			}
			if me.Ply != 1 || me.MoveText != tt.move {
				t.Errorf("MoveError = %+v, want ply 1 and move %q", me, tt.move)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in        string
		from, to  string
		promotion chess.PieceKind
		wantErr   bool
	}{
		{in: "e2e4", from: "e2", to: "e4", promotion: chess.Queen},
		{in: "e2-e4", from: "e2", to: "e4", promotion: chess.Queen},
		{in: "e7e8n", from: "e7", to: "e8", promotion: chess.Knight},
		{in: "a2a1R", from: "a2", to: "a1", promotion: chess.Rook},
		{in: "e7-e8b", from: "e7", to: "e8", promotion: chess.Bishop},
		{in: "", wantErr: true},
		{in: "e2e4e5", wantErr: true},
		{in: "i2e4", wantErr: true},
		{in: "e2e0", wantErr: true},
		{in: "e7e8p", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			from, to, promotion, err := ParseMove(tt.in)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidNotation) {
					t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMove(%q): %v", tt.in, err)
			}
			if from.String() != tt.from || to.String() != tt.to || promotion != tt.promotion {
				t.Errorf("ParseMove(%q) = %s %s %s, want %s %s %s", tt.in, from, to, promotion, tt.from, tt.to, tt.promotion)
			}
		})
	}
}

func TestResign(t *testing.T) {
	g := NewGame()
	play(t, g, "e2e4")

	if !g.Resign(chess.Black) {
		t.Fatal("Resign(Black) = false")
	}
	if g.State() != WhiteWon || g.Method() != Resignation {
		t.Errorf("state = %s/%s, want WhiteWon/Resignation", g.State(), g.Method())
	}
	if g.Resign(chess.White) {
		t.Error("second resignation accepted")
	}
	if g.AttemptMove(pos("e7"), pos("e5")) {
		t.Error("move accepted after resignation")
	}
	if len(targets(g, "e7")) != 0 {
		t.Error("LegalTargets not empty after resignation")
	}
}

func TestRegistriesFollowCaptures(t *testing.T) {
	g := NewGame()
	// Captures, a castle, an en passant capture and a promotion.
	play(t, g,
		"e2e4", "d7d5", "e4d5", "d8d5", "g1f3", "c8g4", "f1e2", "b8c6",
		"O-O", "e8c8", "b2b4", "d5d2", "c1d2", "g4f3", "e2f3", "c6b4",
		"a2a4", "b4c2", "d1c2", "h7h5", "a4a5", "b7b5", "a5b6", "h5h4",
		"b6a7", "h4h3", "a7a8q",
	)

	if got := len(g.registry[chess.White]) + len(g.registry[chess.Black]); got != 21 {
		t.Errorf("registered pieces = %d, want 21", got)
	}
	if g.Snapshot().At(pos("a8")).Kind != chess.Queen {
		t.Error("a8 should hold the promoted queen")
	}
	if g.HistoryLen() != len(g.Moves())+1 {
		t.Errorf("HistoryLen() = %d, want %d", g.HistoryLen(), len(g.Moves())+1)
	}
}

func TestRefreshKings_BrokenReference(t *testing.T) {
	g := NewGame()
	g.kings[chess.White] = g.board().At(pos("d1")).ID

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a king reference naming a queen")
		}
	}()
	g.refreshKings(g.board())
}

func TestGameState_String(t *testing.T) {
	tests := []struct {
		state  GameState
		name   string
		result string
	}{
		{Ongoing, "Ongoing", "*"},
		{WhiteWon, "WhiteWon", "1-0"},
		{BlackWon, "BlackWon", "0-1"},
		{Draw, "Draw", "1/2-1/2"},
	}
	for _, tt := range tests {
		if tt.state.String() != tt.name || tt.state.Result() != tt.result {
			t.Errorf("%d: got %s %s, want %s %s", tt.state, tt.state, tt.state.Result(), tt.name, tt.result)
		}
	}
}
