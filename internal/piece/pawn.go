package piece

import "chess/internal/core"

// Pawn moves forward one square into an empty square, two from its
// starting rank, and captures one square diagonally forward. En passant
// is validated against the board's last-move record, never a stored
// per-pawn flag. Reaching the terminal rank produces one candidate per
// promotion target.
type Pawn struct {
	base
}

func NewPawn(color core.Color, pos core.Position) *Pawn {
	return &Pawn{base{color: color, pos: pos}}
}

func (p *Pawn) Type() core.PieceType { return core.Pawn }
func (p *Pawn) Symbol() byte         { return p.symbol('P') }

// forward is +1 for White (toward rank 8) and -1 for Black.
func (p *Pawn) forward() int {
	if p.color == core.ColorBlack {
		return -1
	}
	return 1
}

func (p *Pawn) startRow() int {
	if p.color == core.ColorBlack {
		return 6
	}
	return 1
}

func (p *Pawn) promotionRow() int {
	if p.color == core.ColorBlack {
		return 0
	}
	return 7
}

var promotionTargets = [4]core.PieceType{core.Knight, core.Bishop, core.Rook, core.Queen}

// appendMove expands a destination on the terminal rank into the four
// promotion candidates.
func (p *Pawn) appendMove(moves []core.Move, to core.Position) []core.Move {
	if to.Row != p.promotionRow() {
		return append(moves, core.Move{From: p.pos, To: to})
	}
	for _, t := range promotionTargets {
		moves = append(moves, core.Move{From: p.pos, To: to, Promotion: t})
	}
	return moves
}

func (p *Pawn) PseudoLegalMoves(b Board) []core.Move {
	var moves []core.Move
	dir := p.forward()

	one := offset(p.pos, dir, 0)
	if one.Valid() && b.IsEmpty(one) {
		moves = p.appendMove(moves, one)
		two := offset(p.pos, 2*dir, 0)
		if p.pos.Row == p.startRow() && !p.moved && two.Valid() && b.IsEmpty(two) {
			moves = append(moves, core.Move{From: p.pos, To: two})
		}
	}

	for _, dc := range [2]int{-1, 1} {
		diag := offset(p.pos, dir, dc)
		if !diag.Valid() {
			continue
		}
		if b.HasPieceOfColor(diag, core.OppositeColor(p.color)) {
			moves = p.appendMove(moves, diag)
		} else if p.enPassantTarget(b) == diag {
			moves = append(moves, core.Move{From: p.pos, To: diag})
		}
	}
	return moves
}

// enPassantTarget returns the square this pawn may capture onto en
// passant, or an invalid position. Only the very next ply after an
// adjacent enemy double-step qualifies.
func (p *Pawn) enPassantTarget(b Board) core.Position {
	last, ok := b.LastMove()
	if !ok {
		return core.Position{Row: -1, Col: -1}
	}
	moved := b.PieceAt(last.To)
	if moved == nil || moved.Type() != core.Pawn || moved.Color() == p.color {
		return core.Position{Row: -1, Col: -1}
	}
	if abs(last.To.Row-last.From.Row) != 2 {
		return core.Position{Row: -1, Col: -1}
	}
	if last.To.Row != p.pos.Row || abs(last.To.Col-p.pos.Col) != 1 {
		return core.Position{Row: -1, Col: -1}
	}
	return core.Position{Row: p.pos.Row + p.forward(), Col: last.To.Col}
}

func (p *Pawn) CanMoveTo(target core.Position, b Board) bool {
	for _, m := range p.PseudoLegalMoves(b) {
		if m.To == target {
			return true
		}
	}
	return false
}

// Attacks covers the two diagonal-forward squares only; a pawn never
// attacks the square it pushes to.
func (p *Pawn) Attacks(target core.Position, b Board) bool {
	return target.Row == p.pos.Row+p.forward() && abs(target.Col-p.pos.Col) == 1
}

func (p *Pawn) Clone() Piece {
	cp := *p
	return &cp
}
