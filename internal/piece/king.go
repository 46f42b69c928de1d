package piece

import "chess/internal/core"

// King moves to the eight adjacent squares, plus castling. Castling
// requires the rights flag, an unmoved king and rook, a clear path, and
// that neither the king's square nor any square it traverses is attacked.
type King struct {
	base
}

func NewKing(color core.Color, pos core.Position) *King {
	return &King{base{color: color, pos: pos}}
}

func (k *King) Type() core.PieceType { return core.King }
func (k *King) Symbol() byte         { return k.symbol('K') }

var kingOffsets = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

func (k *King) PseudoLegalMoves(b Board) []core.Move {
	var moves []core.Move
	for _, o := range kingOffsets {
		to := offset(k.pos, o[0], o[1])
		if landable(b, k.color, to) {
			moves = append(moves, core.Move{From: k.pos, To: to})
		}
	}
	if k.canCastle(b, core.Kingside) {
		moves = append(moves, core.Move{From: k.pos, To: core.Position{Row: k.pos.Row, Col: 6}})
	}
	if k.canCastle(b, core.Queenside) {
		moves = append(moves, core.Move{From: k.pos, To: core.Position{Row: k.pos.Row, Col: 2}})
	}
	return moves
}

// canCastle checks the full precondition set for one wing. The attack
// queries cannot recurse back into castling generation because Attacks is
// pure capture geometry.
func (k *King) canCastle(b Board, side core.Side) bool {
	if k.moved || !b.CanCastle(k.color, side) {
		return false
	}
	row := k.pos.Row
	if k.pos.Col != 4 {
		return false
	}

	rookCol := 7
	betweenCols := []int{5, 6}
	kingPathCols := []int{4, 5, 6} // current square, traversed, destination
	if side == core.Queenside {
		rookCol = 0
		betweenCols = []int{1, 2, 3}
		kingPathCols = []int{4, 3, 2}
	}

	rook := b.PieceAt(core.Position{Row: row, Col: rookCol})
	if rook == nil || rook.Type() != core.Rook || rook.Color() != k.color || rook.HasMoved() {
		return false
	}
	for _, col := range betweenCols {
		if !b.IsEmpty(core.Position{Row: row, Col: col}) {
			return false
		}
	}
	enemy := core.OppositeColor(k.color)
	for _, col := range kingPathCols {
		if b.IsAttacked(core.Position{Row: row, Col: col}, enemy) {
			return false
		}
	}
	return true
}

func (k *King) CanMoveTo(target core.Position, b Board) bool {
	if k.Attacks(target, b) {
		return landable(b, k.color, target)
	}
	// Castling destinations are two columns away on the home row.
	if target.Row == k.pos.Row && target.Col == 6 && k.canCastle(b, core.Kingside) {
		return true
	}
	if target.Row == k.pos.Row && target.Col == 2 && k.canCastle(b, core.Queenside) {
		return true
	}
	return false
}

// Attacks covers adjacency only; a castling king threatens nothing along
// the way.
func (k *King) Attacks(target core.Position, b Board) bool {
	dr, dc := abs(target.Row-k.pos.Row), abs(target.Col-k.pos.Col)
	return dr <= 1 && dc <= 1 && (dr != 0 || dc != 0)
}

func (k *King) Clone() Piece {
	cp := *k
	return &cp
}
