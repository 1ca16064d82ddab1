// Package engine runs a game of chess: it validates moves against the rules in
// package chess, keeps the history of board snapshots, and decides when the
// game has ended.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
)

// Game is a single game in progress. It is not safe for concurrent use;
// separate games share no state.
type Game struct {
	// Board snapshots, the initial position first. The last entry is the
	// current board; older entries are never modified.
	history []*chess.Board

	// Piece IDs of the two kings, indexed by colour.
	kings [2]int

	// IDs of the pieces each side has on the current board, indexed by colour.
	registry [2]map[int]struct{}

	toMove chess.Colour
	turn   int
	state  GameState
	method Method

	// Long algebraic notation of every committed move.
	moves []string
}

// NewGame creates a game in the standard starting position, White to move.
func NewGame() *Game {
	g, err := NewGameFromFEN(InitialFEN)
	if err != nil {
		panic(fmt.Sprintf("engine: initial position rejected: %v", err))
	}
	return g
}

// newGame wraps board as the first snapshot of a game and builds the side
// registries from it.
func newGame(board *chess.Board, toMove chess.Colour, turn int) (*Game, error) {
	g := &Game{
		history: []*chess.Board{board},
		toMove:  toMove,
		turn:    turn,
		state:   Ongoing,
	}
	for _, colour := range chess.Colours {
		g.registry[colour] = make(map[int]struct{}, 16)
		for _, p := range board.Pieces(colour) {
			g.registry[colour][p.ID] = struct{}{}
		}
		king := board.King(colour)
		if king == nil {
			return nil, fmt.Errorf("no %s king", strings.ToLower(colour.String()))
		}
		g.kings[colour] = king.ID
	}
	return g, nil
}

// State returns the current game state.
func (g *Game) State() GameState { return g.state }

// Method returns how the game ended, or NoMethod while it is ongoing.
func (g *Game) Method() Method { return g.method }

// ToMove returns the colour whose turn it is.
func (g *Game) ToMove() chess.Colour { return g.toMove }

// TurnCount returns the turn number, starting at 1 and increasing after each
// Black move.
func (g *Game) TurnCount() int { return g.turn }

// Moves returns the notation of every move played so far.
func (g *Game) Moves() []string {
	out := make([]string, len(g.moves))
	copy(out, g.moves)
	return out
}

// HistoryLen returns the number of board snapshots, the initial one included.
func (g *Game) HistoryLen() int { return len(g.history) }

// board returns the current board.
func (g *Game) board() *chess.Board { return g.history[len(g.history)-1] }

// context returns the rule context for the current board and turn.
func (g *Game) context() chess.MoveContext {
	return chess.NewMoveContext(g.turn, g.board())
}

// Snapshot returns a read-only view of the current board.
func (g *Game) Snapshot() chess.Snapshot { return g.board().Snapshot() }

// SnapshotAt returns the board after ply half-moves, 0 being the start.
func (g *Game) SnapshotAt(ply int) (chess.Snapshot, bool) {
	if ply < 0 || ply >= len(g.history) {
		return chess.Snapshot{}, false
	}
	return g.history[ply].Snapshot(), true
}

// king returns the king of colour on the current board.
func (g *Game) king(colour chess.Colour) *chess.Piece {
	return g.board().Piece(g.kings[colour])
}

// sidePieces returns the registered pieces of colour on board, in ID order.
func (g *Game) sidePieces(colour chess.Colour, board *chess.Board) []*chess.Piece {
	ids := make([]int, 0, len(g.registry[colour]))
	for id := range g.registry[colour] {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	pieces := make([]*chess.Piece, 0, len(ids))
	for _, id := range ids {
		if p := board.Piece(id); p != nil {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// IsCurrentPlayerInCheck reports whether the side to move is in check.
func (g *Game) IsCurrentPlayerInCheck() bool {
	return g.king(g.toMove).InCheck(g.context())
}

// LegalTargets returns the squares the piece on from may legally move to,
// sorted. It is empty when from is empty, holds a piece of the side not to
// move, or the game is over.
func (g *Game) LegalTargets(from chess.Position) []chess.Position {
	if g.state != Ongoing {
		return nil
	}
	piece := g.board().At(from)
	if piece == nil || piece.Colour != g.toMove {
		return nil
	}
	moves := LegalMoves(piece, g.context())
	chess.SortPositions(moves)
	return moves
}

// Resign ends the game in favour of colour's opponent. It returns false if
// the game is already over.
func (g *Game) Resign(colour chess.Colour) bool {
	if g.state != Ongoing {
		return false
	}
	g.state = wonBy(colour.Opposite())
	g.method = Resignation
	return true
}

// refreshKings rebinds the king references against board. A reference that
// no longer names a king is an engine bug, not a user error.
func (g *Game) refreshKings(board *chess.Board) {
	for _, colour := range chess.Colours {
		p := board.Piece(g.kings[colour])
		if p == nil || p.Kind != chess.King || p.Colour != colour {
			panic(fmt.Sprintf("engine: %s king reference %d does not hold a king", colour, g.kings[colour]))
		}
	}
}

// checkRegistries verifies that the registries and the current board agree:
// every registered piece is on the board at its stored square, and every
// occupied square is registered to exactly its own side.
func (g *Game) checkRegistries() error {
	board := g.board()
	for _, colour := range chess.Colours {
		for id := range g.registry[colour] {
			p := board.Piece(id)
			if p == nil {
				return fmt.Errorf("%s piece %d registered but not on the board", colour, id)
			}
			if p.Colour != colour {
				return fmt.Errorf("piece %d registered to %s but is %s", id, colour, p.Colour)
			}
			if board.At(p.Pos) != p {
				return fmt.Errorf("piece %d stored at %s but not found there", id, p.Pos)
			}
		}
	}
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			pos := chess.MustPosition(row, col)
			p := board.At(pos)
			if p == nil {
				continue
			}
			if p.Pos != pos {
				return fmt.Errorf("piece %d on %s claims to be on %s", p.ID, pos, p.Pos)
			}
			_, own := g.registry[p.Colour][p.ID]
			_, other := g.registry[p.Colour.Opposite()][p.ID]
			if !own || other {
				return fmt.Errorf("piece %d on %s is not registered to exactly its side", p.ID, pos)
			}
		}
	}
	return nil
}
