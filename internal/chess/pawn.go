package chess

func (p *Piece) pawnPseudoLegal(target Position, ctx MoveContext) bool {
	fwd := p.Colour.Forward()
	dr, dc := target.Row()-p.Pos.Row(), target.Col()-p.Pos.Col()
	b := ctx.Board

	switch {
	case dc == 0 && dr == fwd:
		return b.IsEmpty(target)

	case dc == 0 && dr == 2*fwd:
		if p.Pos.Row() != p.Colour.PawnRow() {
			return false
		}
		between, _ := p.Pos.Offset(fwd, 0)
		return b.IsEmpty(between) && b.IsEmpty(target)

	case abs(dc) == 1 && dr == fwd:
		if occ := b.At(target); occ != nil {
			return occ.Colour != p.Colour
		}
		return p.canCaptureEnPassant(target, ctx)
	}
	return false
}

// EnPassantRow returns the row a pawn of this colour must stand on to capture
// en passant: the row an opposing pawn lands on after its double step.
func (c Colour) EnPassantRow() int {
	opp := c.Opposite()
	return opp.PawnRow() + 2*opp.Forward()
}

// canCaptureEnPassant checks the diagonal step to the empty square target
// against an opposing pawn beside p that double-stepped on the enemy's
// immediately preceding move. The turn counter advances after Black moves,
// so a Black double step is one turn behind White's reply while a White
// double step shares its turn number with Black's reply.
func (p *Piece) canCaptureEnPassant(target Position, ctx MoveContext) bool {
	if p.Pos.Row() != p.Colour.EnPassantRow() || !ctx.Board.IsEmpty(target) {
		return false
	}
	beside, ok := EnPassantVictim(p.Pos, target)
	if !ok {
		return false
	}
	victim := ctx.Board.At(beside)
	if victim == nil || victim.Kind != Pawn || victim.Colour == p.Colour {
		return false
	}
	if victim.DoubleStepTurn == 0 {
		return false
	}
	want := ctx.Turn
	if p.Colour == White {
		want--
	}
	return victim.DoubleStepTurn == want
}

// EnPassantVictim returns the square of the pawn removed when a pawn on from
// captures en passant onto to.
func EnPassantVictim(from, to Position) (Position, bool) {
	return from.Offset(0, to.Col()-from.Col())
}

// IsEnPassant reports whether moving p to target is an en passant capture
// on the given board: a diagonal pawn step onto an empty square.
func (p *Piece) IsEnPassant(target Position, b *Board) bool {
	return p.Kind == Pawn &&
		target.Col() != p.Pos.Col() &&
		b.IsEmpty(target)
}

func (p *Piece) pawnMoves(ctx MoveContext) []Position {
	fwd := p.Colour.Forward()
	candidates := []direction{{fwd, 0}, {2 * fwd, 0}, {fwd, -1}, {fwd, 1}}
	return p.offsetMoves(candidates, ctx)
}
