package piece

import "chess/internal/core"

// Knight jumps to the eight (±1,±2)/(±2,±1) offsets. It is the only piece
// exempt from path clearance.
type Knight struct {
	base
}

func NewKnight(color core.Color, pos core.Position) *Knight {
	return &Knight{base{color: color, pos: pos}}
}

func (n *Knight) Type() core.PieceType { return core.Knight }
func (n *Knight) Symbol() byte         { return n.symbol('N') }

var knightOffsets = [8][2]int{
	{1, 2}, {1, -2}, {-1, 2}, {-1, -2},
	{2, 1}, {2, -1}, {-2, 1}, {-2, -1},
}

func (n *Knight) PseudoLegalMoves(b Board) []core.Move {
	var moves []core.Move
	for _, o := range knightOffsets {
		to := offset(n.pos, o[0], o[1])
		if landable(b, n.color, to) {
			moves = append(moves, core.Move{From: n.pos, To: to})
		}
	}
	return moves
}

func (n *Knight) CanMoveTo(target core.Position, b Board) bool {
	return n.Attacks(target, b) && landable(b, n.color, target)
}

func (n *Knight) Attacks(target core.Position, b Board) bool {
	dr, dc := abs(target.Row-n.pos.Row), abs(target.Col-n.pos.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

func (n *Knight) Clone() Piece {
	cp := *n
	return &cp
}
