package piece

import "chess/internal/core"

// Bishop ray-casts along the four diagonals.
type Bishop struct {
	base
}

func NewBishop(color core.Color, pos core.Position) *Bishop {
	return &Bishop{base{color: color, pos: pos}}
}

func (bi *Bishop) Type() core.PieceType { return core.Bishop }
func (bi *Bishop) Symbol() byte         { return bi.symbol('B') }

func (bi *Bishop) PseudoLegalMoves(b Board) []core.Move {
	return slideMoves(b, bi.color, bi.pos, diagonalDirs[:])
}

func (bi *Bishop) CanMoveTo(target core.Position, b Board) bool {
	return bi.Attacks(target, b) && landable(b, bi.color, target)
}

func (bi *Bishop) Attacks(target core.Position, b Board) bool {
	return slideReaches(b, bi.pos, target, diagonalDirs[:])
}

func (bi *Bishop) Clone() Piece {
	cp := *bi
	return &cp
}
