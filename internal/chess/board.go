package chess

// Board is an 8x8 grid backed by a piece arena. Cells hold arena indices, so
// Clone is two flat copies and a piece keeps its ID across every snapshot
// cloned from the board it was placed on.
type Board struct {
	// Every piece ever placed on this board, indexed by ID. Captured and
	// promoted-away pieces stay here but no cell refers to them.
	pieces []Piece

	// cells[row][col] is the ID of the occupant plus one, 0 when empty.
	cells [BoardSize][BoardSize]int
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{pieces: make([]Piece, 0, 32)}
}

// Place puts a new piece on pos and returns its ID. Any occupant is dropped
// from the grid. Pointers previously returned by At or Piece may be
// invalidated by Place.
func (b *Board) Place(kind PieceKind, colour Colour, pos Position) int {
	id := len(b.pieces)
	b.pieces = append(b.pieces, Piece{
		ID:     id,
		Kind:   kind,
		Colour: colour,
		Pos:    pos,
	})
	b.cells[pos.row][pos.col] = id + 1
	return id
}

// At returns the piece on pos, or nil if the square is empty.
func (b *Board) At(pos Position) *Piece {
	idx := b.cells[pos.row][pos.col]
	if idx == 0 {
		return nil
	}
	return &b.pieces[idx-1]
}

// IsEmpty reports whether pos holds no piece.
func (b *Board) IsEmpty(pos Position) bool {
	return b.cells[pos.row][pos.col] == 0
}

// Piece returns the piece with the given ID if it is still on the board.
func (b *Board) Piece(id int) *Piece {
	if id < 0 || id >= len(b.pieces) {
		return nil
	}
	p := &b.pieces[id]
	if b.cells[p.Pos.row][p.Pos.col] != id+1 {
		return nil
	}
	return p
}

// Remove clears pos and returns the piece that was there, if any.
func (b *Board) Remove(pos Position) *Piece {
	p := b.At(pos)
	b.cells[pos.row][pos.col] = 0
	return p
}

// Relocate moves the occupant of from to to, updating its stored position,
// and returns whatever stood on to before. It applies no chess rules.
func (b *Board) Relocate(from, to Position) *Piece {
	idx := b.cells[from.row][from.col]
	if idx == 0 {
		return nil
	}
	captured := b.At(to)
	b.cells[from.row][from.col] = 0
	b.cells[to.row][to.col] = idx
	b.pieces[idx-1].Pos = to
	return captured
}

// Clone returns a deep copy of the board. Pieces are values in the arena,
// so kind-specific state is copied along with them.
func (b *Board) Clone() *Board {
	nb := &Board{cells: b.cells}
	nb.pieces = make([]Piece, len(b.pieces), cap(b.pieces))
	copy(nb.pieces, b.pieces)
	return nb
}

// Pieces returns the pieces of the given colour in square order.
func (b *Board) Pieces(colour Colour) []*Piece {
	var out []*Piece
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			idx := b.cells[row][col]
			if idx != 0 && b.pieces[idx-1].Colour == colour {
				out = append(out, &b.pieces[idx-1])
			}
		}
	}
	return out
}

// King returns the king of the given colour, or nil if there is none.
func (b *Board) King(colour Colour) *Piece {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			idx := b.cells[row][col]
			if idx == 0 {
				continue
			}
			if p := &b.pieces[idx-1]; p.Kind == King && p.Colour == colour {
				return p
			}
		}
	}
	return nil
}

// Square is the read-only content of one cell.
type Square struct {
	Kind   PieceKind
	Colour Colour
}

// Empty reports whether the square holds no piece.
func (s Square) Empty() bool { return s.Kind == NoKind }

// Letter returns the FEN letter for the square's piece: uppercase for White,
// lowercase for Black, '.' when empty.
func (s Square) Letter() byte {
	if s.Empty() {
		return '.'
	}
	l := s.Kind.Letter()
	if s.Colour == Black {
		l += 'a' - 'A'
	}
	return l
}

// Snapshot is a value copy of the grid for rendering.
type Snapshot [BoardSize][BoardSize]Square

// At returns the square at pos.
func (s Snapshot) At(pos Position) Square {
	return s[pos.row][pos.col]
}

// Snapshot returns a read-only view of the board.
func (b *Board) Snapshot() Snapshot {
	var s Snapshot
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if idx := b.cells[row][col]; idx != 0 {
				p := &b.pieces[idx-1]
				s[row][col] = Square{Kind: p.Kind, Colour: p.Colour}
			}
		}
	}
	return s
}

// MoveContext bundles what every rule query needs: the turn counter and the
// board to evaluate against. It is a value; WithBoard rebinds a copy.
type MoveContext struct {
	Turn  int
	Board *Board
}

// NewMoveContext returns a context for the given turn and board.
func NewMoveContext(turn int, board *Board) MoveContext {
	return MoveContext{Turn: turn, Board: board}
}

// WithBoard returns a copy of the context evaluating against board.
func (c MoveContext) WithBoard(board *Board) MoveContext {
	c.Board = board
	return c
}
