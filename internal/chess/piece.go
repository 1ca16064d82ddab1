package chess

// Piece is one chess piece. The movement rules dispatch on Kind; HasMoved
// matters for kings and rooks (castling), DoubleStepTurn for pawns
// (en passant, 0 meaning never).
type Piece struct {
	ID     int
	Kind   PieceKind
	Colour Colour
	Pos    Position

	HasMoved       bool
	DoubleStepTurn int
}

// String returns the colour initial followed by the kind letter, e.g. "WN".
func (p *Piece) String() string {
	c := byte('B')
	if p.Colour == White {
		c = 'W'
	}
	return string([]byte{c, p.Kind.Letter()})
}

// direction is a (row, column) step.
type direction struct{ dr, dc int }

var (
	orthogonals   = []direction{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonals     = []direction{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allDirections = append(append([]direction{}, orthogonals...), diagonals...)
	knightOffsets = []direction{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// slideDirections returns the rays a sliding piece walks, nil for other kinds.
func (p *Piece) slideDirections() []direction {
	switch p.Kind {
	case Bishop:
		return diagonals
	case Rook:
		return orthogonals
	case Queen:
		return allDirections
	}
	return nil
}

// IsPseudoLegal reports whether moving to target obeys this piece's geometry
// and does not land on a piece of its own colour. It ignores whether the
// move leaves the mover's king in check, except for the king itself, which
// never steps onto an attacked square.
func (p *Piece) IsPseudoLegal(target Position, ctx MoveContext) bool {
	if target == p.Pos {
		return false
	}
	switch p.Kind {
	case Pawn:
		return p.pawnPseudoLegal(target, ctx)
	case Knight:
		return p.knightPseudoLegal(target, ctx)
	case Bishop, Rook, Queen:
		return p.slidePseudoLegal(target, ctx)
	case King:
		return p.kingPseudoLegal(target, ctx)
	}
	return false
}

// PseudoLegalMoves enumerates every target for which IsPseudoLegal holds.
func (p *Piece) PseudoLegalMoves(ctx MoveContext) []Position {
	switch p.Kind {
	case Pawn:
		return p.pawnMoves(ctx)
	case Knight:
		return p.offsetMoves(knightOffsets, ctx)
	case Bishop, Rook, Queen:
		return p.slideMoves(ctx)
	case King:
		return p.kingMoves(ctx)
	}
	return nil
}

// AfterMove updates kind-specific state once the piece has been relocated
// from its previous square as part of a committed move.
func (p *Piece) AfterMove(from Position, ctx MoveContext) {
	p.HasMoved = true
	if p.Kind == Pawn && abs(p.Pos.Row()-from.Row()) == 2 {
		p.DoubleStepTurn = ctx.Turn
	}
}

// ownPieceAt reports whether target holds a piece of p's colour.
func (p *Piece) ownPieceAt(target Position, b *Board) bool {
	occ := b.At(target)
	return occ != nil && occ.Colour == p.Colour
}

func (p *Piece) knightPseudoLegal(target Position, ctx MoveContext) bool {
	dr, dc := abs(target.Row()-p.Pos.Row()), abs(target.Col()-p.Pos.Col())
	if !(dr == 1 && dc == 2) && !(dr == 2 && dc == 1) {
		return false
	}
	return !p.ownPieceAt(target, ctx.Board)
}

// offsetMoves collects the single-step targets in offsets that pass
// IsPseudoLegal.
func (p *Piece) offsetMoves(offsets []direction, ctx MoveContext) []Position {
	var moves []Position
	for _, d := range offsets {
		target, ok := p.Pos.Offset(d.dr, d.dc)
		if ok && p.IsPseudoLegal(target, ctx) {
			moves = append(moves, target)
		}
	}
	return moves
}

// slidePseudoLegal checks that target lies on one of the piece's rays with
// every square in between empty.
func (p *Piece) slidePseudoLegal(target Position, ctx MoveContext) bool {
	dr, dc := target.Row()-p.Pos.Row(), target.Col()-p.Pos.Col()
	if dr != 0 && dc != 0 && abs(dr) != abs(dc) {
		return false
	}
	step := direction{sign(dr), sign(dc)}
	onRay := false
	for _, d := range p.slideDirections() {
		if d == step {
			onRay = true
			break
		}
	}
	if !onRay {
		return false
	}

	sq, _ := p.Pos.Offset(step.dr, step.dc)
	for sq != target {
		if !ctx.Board.IsEmpty(sq) {
			return false // Blocked
		}
		sq, _ = sq.Offset(step.dr, step.dc)
	}
	return !p.ownPieceAt(target, ctx.Board)
}

// slideMoves walks each ray until the edge or the first occupied square,
// which is included only when it holds an opposing piece.
func (p *Piece) slideMoves(ctx MoveContext) []Position {
	var moves []Position
	for _, d := range p.slideDirections() {
		sq, ok := p.Pos.Offset(d.dr, d.dc)
		for ok {
			if occ := ctx.Board.At(sq); occ != nil {
				if occ.Colour != p.Colour {
					moves = append(moves, sq)
				}
				break
			}
			moves = append(moves, sq)
			sq, ok = sq.Offset(d.dr, d.dc)
		}
	}
	return moves
}
