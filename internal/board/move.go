package board

import (
	"chess/internal/core"
	"chess/internal/piece"
)

// Outcome reports what MovePiece did: the derived move kind and the
// captured piece, if any. The kind is computed from board contents at
// apply time; the Move value itself carries no such tags.
type Outcome struct {
	Kind     core.MoveKind
	Captured piece.Piece
}

// MovePiece applies m: relocates the mover, discards any captured piece,
// removes the bypassed pawn on en passant, relocates the rook on castling,
// applies promotion, revokes castling rights, and records m as the last
// move. Callers must only pass moves that have been validated; MovePiece
// does not re-check legality.
func (b *Board) MovePiece(m core.Move) Outcome {
	mover := b.PieceAt(m.From)
	if mover == nil {
		return Outcome{}
	}

	out := Outcome{Kind: core.KindQuiet, Captured: b.PieceAt(m.To)}
	if out.Captured != nil {
		out.Kind = core.KindCapture
	}

	switch mover.Type() {
	case core.Pawn:
		// A pawn changing file onto an empty square is an en-passant
		// capture; the victim sits beside the pawn, not on the target.
		if m.To.Col != m.From.Col && out.Captured == nil {
			victim := core.Position{Row: m.From.Row, Col: m.To.Col}
			out.Captured = b.RemovePieceAt(victim)
			out.Kind = core.KindEnPassant
		} else if m.To.Col == m.From.Col && abs(m.To.Row-m.From.Row) == 2 {
			out.Kind = core.KindDoubleStep
		}
	case core.King:
		switch m.To.Col - m.From.Col {
		case 2:
			b.relocateRook(m.From.Row, 7, 5)
			out.Kind = core.KindCastleKingside
		case -2:
			b.relocateRook(m.From.Row, 0, 3)
			out.Kind = core.KindCastleQueenside
		}
	}

	b.updateRights(m.From, m.To)

	b.RemovePieceAt(m.From)
	b.SetPieceAt(mover, m.To)
	mover.MarkMoved()

	if mover.Type() == core.Pawn && (m.To.Row == 0 || m.To.Row == 7) {
		promo := m.Promotion
		if promo == core.NoPieceType {
			promo = core.Queen
		}
		replacement := piece.New(promo, mover.Color(), m.To)
		replacement.MarkMoved()
		b.SetPieceAt(replacement, m.To)
		out.Kind = core.KindPromotion
	}

	b.SetLastMove(m)
	return out
}

func (b *Board) relocateRook(row, fromCol, toCol int) {
	rook := b.RemovePieceAt(core.Position{Row: row, Col: fromCol})
	if rook != nil {
		b.SetPieceAt(rook, core.Position{Row: row, Col: toCol})
		rook.MarkMoved()
	}
}

// Home squares whose vacation or capture revokes a castling right.
var (
	whiteKingHome      = core.Position{Row: 0, Col: 4}
	whiteKingsideRook  = core.Position{Row: 0, Col: 7}
	whiteQueensideRook = core.Position{Row: 0, Col: 0}
	blackKingHome      = core.Position{Row: 7, Col: 4}
	blackKingsideRook  = core.Position{Row: 7, Col: 7}
	blackQueensideRook = core.Position{Row: 7, Col: 0}
)

// updateRights revokes castling rights when a king or rook leaves its home
// square, or when a rook's home square is captured on. Flags only ever
// flip true to false.
func (b *Board) updateRights(from, to core.Position) {
	for _, sq := range [2]core.Position{from, to} {
		switch sq {
		case whiteKingHome:
			b.rights.WhiteKingside = false
			b.rights.WhiteQueenside = false
		case whiteKingsideRook:
			b.rights.WhiteKingside = false
		case whiteQueensideRook:
			b.rights.WhiteQueenside = false
		case blackKingHome:
			b.rights.BlackKingside = false
			b.rights.BlackQueenside = false
		case blackKingsideRook:
			b.rights.BlackKingside = false
		case blackQueensideRook:
			b.rights.BlackQueenside = false
		}
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
