package chess

// HomeSquare returns the square a king of this colour starts on.
func (c Colour) HomeSquare() Position {
	return MustPosition(c.BackRow(), KingColumn)
}

// InCheck reports whether the square p stands on is attacked by the
// opposing side. It is meaningful for kings.
func (p *Piece) InCheck(ctx MoveContext) bool {
	return IsAttacked(ctx.Board, p.Pos, p.Colour)
}

// isCastleTarget reports whether target is one of the two castling landing
// squares for a king standing on its home square.
func (p *Piece) isCastleTarget(target Position) bool {
	if p.Pos != p.Colour.HomeSquare() || target.Row() != p.Pos.Row() {
		return false
	}
	return target.Col() == KingsideKingTarget || target.Col() == QueensideKingTarget
}

func (p *Piece) kingPseudoLegal(target Position, ctx MoveContext) bool {
	if p.isCastleTarget(target) {
		return p.CanCastle(target, ctx)
	}
	dr, dc := abs(target.Row()-p.Pos.Row()), abs(target.Col()-p.Pos.Col())
	if dr > 1 || dc > 1 || p.ownPieceAt(target, ctx.Board) {
		return false
	}
	// Kings may never stand next to each other.
	if adjacentKing(ctx.Board, target, p.Colour.Opposite()) {
		return false
	}
	return !p.attackedWithoutSelf(target, ctx)
}

// attackedWithoutSelf reports whether sq would be attacked once the king has
// left its current square, so a king cannot retreat along the line of a
// slider that is checking it.
func (p *Piece) attackedWithoutSelf(sq Position, ctx MoveContext) bool {
	b := ctx.Board.Clone()
	b.Remove(p.Pos)
	return IsAttacked(b, sq, p.Colour)
}

// CanCastle reports whether the king may castle to target this turn: neither
// king nor rook has moved, the king is not in check, the squares between them
// are empty, and no square the king crosses, start and landing included, is
// attacked.
func (p *Piece) CanCastle(target Position, ctx MoveContext) bool {
	if p.Kind != King || p.HasMoved || !p.isCastleTarget(target) {
		return false
	}
	if p.InCheck(ctx) {
		return false
	}

	row := p.Pos.Row()
	rookCol, dir := KingsideRookColumn, 1
	if target.Col() == QueensideKingTarget {
		rookCol, dir = QueensideRookColumn, -1
	}

	b := ctx.Board
	rook := b.At(MustPosition(row, rookCol))
	if rook == nil || rook.Kind != Rook || rook.Colour != p.Colour || rook.HasMoved {
		return false
	}

	for c := p.Pos.Col() + dir; c != rookCol; c += dir {
		if !b.IsEmpty(MustPosition(row, c)) {
			return false
		}
	}

	for c := p.Pos.Col(); c != target.Col()+dir; c += dir {
		if p.attackedWithoutSelf(MustPosition(row, c), ctx) {
			return false
		}
	}
	return true
}

// CastleRookSquares returns where the rook starts and lands when a king
// castles to target.
func CastleRookSquares(target Position) (from, to Position) {
	row := target.Row()
	if target.Col() == KingsideKingTarget {
		return MustPosition(row, KingsideRookColumn), MustPosition(row, KingsideKingTarget-1)
	}
	return MustPosition(row, QueensideRookColumn), MustPosition(row, QueensideKingTarget+1)
}

// IsCastle reports whether moving p to target is a castling move: a king
// travelling two columns from its home square.
func (p *Piece) IsCastle(target Position) bool {
	return p.Kind == King && p.isCastleTarget(target) &&
		abs(target.Col()-p.Pos.Col()) == 2
}

func (p *Piece) kingMoves(ctx MoveContext) []Position {
	moves := p.offsetMoves(allDirections, ctx)
	if p.Pos != p.Colour.HomeSquare() {
		return moves
	}
	for _, col := range []int{KingsideKingTarget, QueensideKingTarget} {
		target := MustPosition(p.Pos.Row(), col)
		if p.CanCastle(target, ctx) {
			moves = append(moves, target)
		}
	}
	return moves
}
