package piece

import "chess/internal/core"

// Rook ray-casts along the four orthogonals.
type Rook struct {
	base
}

func NewRook(color core.Color, pos core.Position) *Rook {
	return &Rook{base{color: color, pos: pos}}
}

func (r *Rook) Type() core.PieceType { return core.Rook }
func (r *Rook) Symbol() byte         { return r.symbol('R') }

func (r *Rook) PseudoLegalMoves(b Board) []core.Move {
	return slideMoves(b, r.color, r.pos, orthogonalDirs[:])
}

func (r *Rook) CanMoveTo(target core.Position, b Board) bool {
	return r.Attacks(target, b) && landable(b, r.color, target)
}

func (r *Rook) Attacks(target core.Position, b Board) bool {
	return slideReaches(b, r.pos, target, orthogonalDirs[:])
}

func (r *Rook) Clone() Piece {
	cp := *r
	return &cp
}
