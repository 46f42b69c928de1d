// Package piece implements the six chess piece variants. Each variant
// encodes its own movement geometry and produces pseudo-legal candidates:
// moves that respect geometry, occupancy and capture rules but may still
// leave the mover's own king in check. Filtering to fully legal moves is
// the board's job.
//
// Pieces never hold a reference to the board; every query receives the
// board through the narrow Board interface, which keeps ownership strictly
// one-way (board owns pieces, pieces borrow the board per call).
package piece

import "chess/internal/core"

// Board is the view of the board a piece needs to generate candidates.
// Implemented by board.Board.
type Board interface {
	PieceAt(pos core.Position) Piece
	IsEmpty(pos core.Position) bool
	HasPieceOfColor(pos core.Position, color core.Color) bool

	// LastMove reports the most recently applied move, used only for
	// en-passant validation. ok is false before the first move.
	LastMove() (m core.Move, ok bool)

	// CanCastle reports whether the castling-rights flag for the given
	// color and wing is still set.
	CanCastle(color core.Color, side core.Side) bool

	// IsAttacked reports whether any piece of the given color attacks pos.
	// Used by the king to validate its castling path.
	IsAttacked(pos core.Position, by core.Color) bool
}

// Piece is one chess piece. Implementations are Pawn, Knight, Bishop,
// Rook, Queen and King.
type Piece interface {
	Color() core.Color
	Type() core.PieceType
	Position() core.Position
	SetPosition(pos core.Position)
	HasMoved() bool
	MarkMoved()

	// Symbol identifies type and color for rendering and notation:
	// uppercase for White, lowercase for Black ('P', 'n', ...).
	Symbol() byte

	// PseudoLegalMoves returns every candidate move for this piece on the
	// given board, without own-king-safety filtering.
	PseudoLegalMoves(b Board) []core.Move

	// CanMoveTo reports whether target is among this piece's pseudo-legal
	// destinations. Fast path for callers that already hold a candidate.
	CanMoveTo(target core.Position, b Board) bool

	// Attacks reports whether this piece attacks target: capture geometry
	// only. Pawn forward pushes and castling are movement, not attacks,
	// and are excluded. This is what keeps attack detection free of
	// recursion through castling generation.
	Attacks(target core.Position, b Board) bool

	// Clone returns an independent copy, required for board deep copies.
	Clone() Piece
}

// New constructs a piece of the given type.
func New(t core.PieceType, color core.Color, pos core.Position) Piece {
	switch t {
	case core.Pawn:
		return NewPawn(color, pos)
	case core.Knight:
		return NewKnight(color, pos)
	case core.Bishop:
		return NewBishop(color, pos)
	case core.Rook:
		return NewRook(color, pos)
	case core.Queen:
		return NewQueen(color, pos)
	case core.King:
		return NewKing(color, pos)
	default:
		return nil
	}
}

// base carries the state shared by all variants.
type base struct {
	color core.Color
	pos   core.Position
	moved bool
}

func (b *base) Color() core.Color { return b.color }

func (b *base) Position() core.Position { return b.pos }

func (b *base) SetPosition(p core.Position) { b.pos = p }

func (b *base) HasMoved() bool { return b.moved }

func (b *base) MarkMoved() { b.moved = true }

// symbol maps the uppercase (White) letter to the piece's cased symbol.
func (b *base) symbol(upper byte) byte {
	if b.color == core.ColorBlack {
		return upper + ('a' - 'A')
	}
	return upper
}

func offset(p core.Position, dr, dc int) core.Position {
	return core.Position{Row: p.Row + dr, Col: p.Col + dc}
}

// landable reports whether a piece of the given color may land on pos:
// on the board and not occupied by a friendly piece.
func landable(b Board, color core.Color, pos core.Position) bool {
	return pos.Valid() && !b.HasPieceOfColor(pos, color)
}

var (
	orthogonalDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagonalDirs   = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
)

// slideMoves walks each ray square by square: through empty squares,
// stopping at the board edge, before a friendly piece, or on an enemy
// piece (included as a capture).
func slideMoves(b Board, color core.Color, from core.Position, dirs [][2]int) []core.Move {
	var moves []core.Move
	for _, d := range dirs {
		for cur := offset(from, d[0], d[1]); cur.Valid(); cur = offset(cur, d[0], d[1]) {
			if b.IsEmpty(cur) {
				moves = append(moves, core.Move{From: from, To: cur})
				continue
			}
			if !b.HasPieceOfColor(cur, color) {
				moves = append(moves, core.Move{From: from, To: cur})
			}
			break
		}
	}
	return moves
}

// slideReaches reports whether target is reachable from from along one of
// the rays with a clear path. Occupancy of the target itself is not
// checked; callers decide whether landing there is permitted.
func slideReaches(b Board, from, target core.Position, dirs [][2]int) bool {
	dr := sign(target.Row - from.Row)
	dc := sign(target.Col - from.Col)
	aligned := false
	for _, d := range dirs {
		if d[0] == dr && d[1] == dc {
			aligned = true
			break
		}
	}
	if !aligned || (dr == 0 && dc == 0) {
		return false
	}
	// Diagonal rays require equal row and column distance.
	if dr != 0 && dc != 0 && abs(target.Row-from.Row) != abs(target.Col-from.Col) {
		return false
	}
	// Orthogonal rays require a single varying axis.
	if (dr == 0 || dc == 0) && from.Row != target.Row && from.Col != target.Col {
		return false
	}
	for cur := offset(from, dr, dc); cur != target; cur = offset(cur, dr, dc) {
		if !cur.Valid() {
			return false
		}
		if !b.IsEmpty(cur) {
			return false
		}
	}
	return true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
