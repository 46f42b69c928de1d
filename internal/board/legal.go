package board

import (
	"chess/internal/core"
)

// IsAttacked reports whether any piece of the given color attacks pos.
// Attack detection is unconditional: it ignores whether the attacking
// piece's own king would be exposed, because it only ever answers
// "does the opponent threaten this square".
func (b *Board) IsAttacked(pos core.Position, by core.Color) bool {
	for _, p := range b.PiecesOfColor(by) {
		if p.Attacks(pos, b) {
			return true
		}
	}
	return false
}

// IsKingInCheck reports whether the king of the given color is attacked.
func (b *Board) IsKingInCheck(color core.Color) bool {
	kingPos, ok := b.FindKing(color)
	if !ok {
		return false
	}
	return b.IsAttacked(kingPos, core.OppositeColor(color))
}

// PseudoLegalMoves collects every candidate of every piece of the given
// color, without own-king-safety filtering.
func (b *Board) PseudoLegalMoves(color core.Color) []core.Move {
	var moves []core.Move
	for _, p := range b.PiecesOfColor(color) {
		moves = append(moves, p.PseudoLegalMoves(b)...)
	}
	return moves
}

// LegalMoves filters the pseudo-legal candidates down to fully legal
// moves: each candidate is applied on an independent copy of the board
// and discarded if it leaves the mover's own king in check. Deliberately
// brute force; simple and provably correct.
func (b *Board) LegalMoves(color core.Color) []core.Move {
	var moves []core.Move
	for _, m := range b.PseudoLegalMoves(color) {
		if !b.temporaryMove(m).IsKingInCheck(color) {
			moves = append(moves, m)
		}
	}
	return moves
}

// HasLegalMove reports whether the given color has at least one legal
// move. Cheaper than LegalMoves for checkmate/stalemate detection since
// it stops at the first survivor.
func (b *Board) HasLegalMove(color core.Color) bool {
	for _, m := range b.PseudoLegalMoves(color) {
		if !b.temporaryMove(m).IsKingInCheck(color) {
			return true
		}
	}
	return false
}

// IsMoveLegal reports whether m is legal for the piece at m.From. The
// board is never mutated; the hypothetical position is evaluated on a
// copy.
func (b *Board) IsMoveLegal(m core.Move) bool {
	p := b.PieceAt(m.From)
	if p == nil || !m.Valid() {
		return false
	}
	if !p.CanMoveTo(m.To, b) {
		return false
	}
	return !b.temporaryMove(m).IsKingInCheck(p.Color())
}

// temporaryMove returns a hypothetical post-move board, leaving the
// receiver untouched.
func (b *Board) temporaryMove(m core.Move) *Board {
	probe := b.Clone()
	probe.MovePiece(m)
	return probe
}
