// Package board owns piece placement and answers the engine's occupancy,
// attack, legality and mutation queries for one 8x8 chess position.
package board

import (
	"fmt"
	"strings"

	"chess/internal/core"
	"chess/internal/piece"
)

// Rights are the four independent castling permissions. Each flag only
// ever transitions true to false, never back.
type Rights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// Board is a mutable 8x8 grid of exclusively-owned pieces plus the
// castling-rights flags and the last applied move (en-passant context).
// It is not safe for concurrent use; a game session owns its board.
type Board struct {
	grid        [8][8]piece.Piece
	rights      Rights
	lastMove    core.Move
	hasLastMove bool
}

// New returns an empty board with all castling rights set.
func New() *Board {
	return &Board{
		rights: Rights{
			WhiteKingside:  true,
			WhiteQueenside: true,
			BlackKingside:  true,
			BlackQueenside: true,
		},
	}
}

var backRank = [8]core.PieceType{
	core.Rook, core.Knight, core.Bishop, core.Queen,
	core.King, core.Bishop, core.Knight, core.Rook,
}

// StartingPosition returns a board set up for a standard game.
func StartingPosition() *Board {
	b := New()
	for col := 0; col < 8; col++ {
		b.SetPieceAt(piece.New(backRank[col], core.ColorWhite, core.Position{Row: 0, Col: col}), core.Position{Row: 0, Col: col})
		b.SetPieceAt(piece.New(core.Pawn, core.ColorWhite, core.Position{Row: 1, Col: col}), core.Position{Row: 1, Col: col})
		b.SetPieceAt(piece.New(core.Pawn, core.ColorBlack, core.Position{Row: 6, Col: col}), core.Position{Row: 6, Col: col})
		b.SetPieceAt(piece.New(backRank[col], core.ColorBlack, core.Position{Row: 7, Col: col}), core.Position{Row: 7, Col: col})
	}
	return b
}

// PieceAt returns the piece at pos, or nil for empty or off-board squares.
func (b *Board) PieceAt(pos core.Position) piece.Piece {
	if !pos.Valid() {
		return nil
	}
	return b.grid[pos.Row][pos.Col]
}

// IsEmpty reports whether pos is on the board and unoccupied.
func (b *Board) IsEmpty(pos core.Position) bool {
	return pos.Valid() && b.grid[pos.Row][pos.Col] == nil
}

// HasPieceOfColor reports whether pos holds a piece of the given color.
func (b *Board) HasPieceOfColor(pos core.Position, color core.Color) bool {
	p := b.PieceAt(pos)
	return p != nil && p.Color() == color
}

// SetPieceAt places p at pos, discarding any previous occupant.
func (b *Board) SetPieceAt(p piece.Piece, pos core.Position) {
	if !pos.Valid() {
		return
	}
	if p != nil {
		p.SetPosition(pos)
	}
	b.grid[pos.Row][pos.Col] = p
}

// RemovePieceAt clears pos and returns the removed piece, if any.
func (b *Board) RemovePieceAt(pos core.Position) piece.Piece {
	if !pos.Valid() {
		return nil
	}
	p := b.grid[pos.Row][pos.Col]
	b.grid[pos.Row][pos.Col] = nil
	return p
}

// FindKing returns the position of the king of the given color.
func (b *Board) FindKing(color core.Color) (core.Position, bool) {
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p != nil && p.Type() == core.King && p.Color() == color {
				return core.Position{Row: row, Col: col}, true
			}
		}
	}
	return core.Position{}, false
}

// PiecesOfColor returns every piece of the given color, scanning from a1
// toward h8.
func (b *Board) PiecesOfColor(color core.Color) []piece.Piece {
	var pieces []piece.Piece
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p != nil && p.Color() == color {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// LastMove reports the most recently applied move for en-passant checks.
func (b *Board) LastMove() (core.Move, bool) {
	return b.lastMove, b.hasLastMove
}

// SetLastMove records m as the most recent move. Only the very next ply
// may treat it as en-passant-enabling.
func (b *Board) SetLastMove(m core.Move) {
	b.lastMove = m
	b.hasLastMove = true
}

// CanCastle reports the castling-rights flag for one color and wing.
func (b *Board) CanCastle(color core.Color, side core.Side) bool {
	switch {
	case color == core.ColorWhite && side == core.Kingside:
		return b.rights.WhiteKingside
	case color == core.ColorWhite && side == core.Queenside:
		return b.rights.WhiteQueenside
	case color == core.ColorBlack && side == core.Kingside:
		return b.rights.BlackKingside
	default:
		return b.rights.BlackQueenside
	}
}

// Rights returns a copy of the castling-rights flags.
func (b *Board) Rights() Rights {
	return b.rights
}

// SetRights replaces the castling-rights flags. Used by FEN import only;
// during play the flags are revoked by MovePiece.
func (b *Board) SetRights(r Rights) {
	b.rights = r
}

// EnPassantTarget returns the square a pawn could capture onto en passant
// after the last move, i.e. the square behind a pawn that just
// double-stepped. ok is false when no such square exists.
func (b *Board) EnPassantTarget() (core.Position, bool) {
	if !b.hasLastMove {
		return core.Position{}, false
	}
	p := b.PieceAt(b.lastMove.To)
	if p == nil || p.Type() != core.Pawn {
		return core.Position{}, false
	}
	switch b.lastMove.To.Row - b.lastMove.From.Row {
	case 2:
		return core.Position{Row: b.lastMove.To.Row - 1, Col: b.lastMove.To.Col}, true
	case -2:
		return core.Position{Row: b.lastMove.To.Row + 1, Col: b.lastMove.To.Col}, true
	}
	return core.Position{}, false
}

// Clone returns a fully independent deep copy. Snapshots and legality
// probes must never share piece ownership with the live board.
func (b *Board) Clone() *Board {
	cp := &Board{
		rights:      b.rights,
		lastMove:    b.lastMove,
		hasLastMove: b.hasLastMove,
	}
	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p != nil {
				cp.grid[row][col] = p.Clone()
			}
		}
	}
	return cp
}

// ASCII renders the board for debugging and the API's board endpoint.
func (b *Board) ASCII() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for row := 7; row >= 0; row-- {
		sb.WriteString(fmt.Sprintf("%d ", row+1))
		for col := 0; col < 8; col++ {
			if p := b.grid[row][col]; p != nil {
				sb.WriteString(fmt.Sprintf("%c ", p.Symbol()))
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", row+1))
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}

// Placement returns the piece-placement field of FEN (ranks 8 down to 1).
func (b *Board) Placement() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			p := b.grid[row][col]
			if p == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Symbol())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// CastlingFEN returns the castling field of FEN ("KQkq", subsets, or "-").
func (b *Board) CastlingFEN() string {
	var sb strings.Builder
	if b.rights.WhiteKingside {
		sb.WriteByte('K')
	}
	if b.rights.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if b.rights.BlackKingside {
		sb.WriteByte('k')
	}
	if b.rights.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
