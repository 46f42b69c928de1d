package piece

import "chess/internal/core"

// Queen combines the rook and bishop rays: all eight directions.
type Queen struct {
	base
}

func NewQueen(color core.Color, pos core.Position) *Queen {
	return &Queen{base{color: color, pos: pos}}
}

func (q *Queen) Type() core.PieceType { return core.Queen }
func (q *Queen) Symbol() byte         { return q.symbol('Q') }

func queenDirs() [][2]int {
	dirs := make([][2]int, 0, 8)
	dirs = append(dirs, orthogonalDirs[:]...)
	dirs = append(dirs, diagonalDirs[:]...)
	return dirs
}

func (q *Queen) PseudoLegalMoves(b Board) []core.Move {
	return slideMoves(b, q.color, q.pos, queenDirs())
}

func (q *Queen) CanMoveTo(target core.Position, b Board) bool {
	return q.Attacks(target, b) && landable(b, q.color, target)
}

func (q *Queen) Attacks(target core.Position, b Board) bool {
	return slideReaches(b, q.pos, target, queenDirs())
}

func (q *Queen) Clone() Piece {
	cp := *q
	return &cp
}
