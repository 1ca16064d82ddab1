package chess

// IsAttacked reports whether sq is attacked by any piece of the colour
// opposing defender. Attacks are found by direct enumeration from sq rather
// than by generating the opponent's moves, so the answer never depends on
// castling or king-safety logic.
func IsAttacked(b *Board, sq Position, defender Colour) bool {
	attacker := defender.Opposite()
	is := func(pos Position, kinds ...PieceKind) bool {
		p := b.At(pos)
		if p == nil || p.Colour != attacker {
			return false
		}
		for _, k := range kinds {
			if p.Kind == k {
				return true
			}
		}
		return false
	}

	// Pawns attack diagonally forward, so an attacking pawn sits one step
	// ahead of sq from the defender's point of view.
	for _, dc := range []int{-1, 1} {
		if pos, ok := sq.Offset(defender.Forward(), dc); ok && is(pos, Pawn) {
			return true
		}
	}

	for _, d := range knightOffsets {
		if pos, ok := sq.Offset(d.dr, d.dc); ok && is(pos, Knight) {
			return true
		}
	}

	for _, d := range allDirections {
		line := Bishop
		if d.dr == 0 || d.dc == 0 {
			line = Rook
		}
		pos, ok := sq.Offset(d.dr, d.dc)
		for ok {
			if !b.IsEmpty(pos) {
				if is(pos, Queen, line) {
					return true
				}
				break // Blocked
			}
			pos, ok = pos.Offset(d.dr, d.dc)
		}
	}

	return adjacentKing(b, sq, attacker)
}

// adjacentKing reports whether a king of colour stands next to sq.
func adjacentKing(b *Board, sq Position, colour Colour) bool {
	for _, d := range allDirections {
		pos, ok := sq.Offset(d.dr, d.dc)
		if !ok {
			continue
		}
		if p := b.At(pos); p != nil && p.Kind == King && p.Colour == colour {
			return true
		}
	}
	return false
}
