package core

import "fmt"

// Position is a board coordinate. Row 0 is rank 1 (White's back rank),
// Col 0 is the a-file. Positions are plain values and copied freely.
type Position struct {
	Row int
	Col int
}

// Valid reports whether the position lies on the 8x8 board.
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < 8 && p.Col >= 0 && p.Col < 8
}

// String returns the two-character square label, e.g. "e4".
// Invalid positions render as "-".
func (p Position) String() string {
	if !p.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+p.Col, '1'+p.Row)
}

// ParsePosition converts a two-character square label back to a Position.
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return Position{}, fmt.Errorf("%w: invalid square %q", ErrInvalidInput, s)
	}
	return Position{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}, nil
}

// Move is an ordered (from, to) pair. Promotion is set only for pawn moves
// onto the terminal rank; the zero value means no promotion. Capture,
// castling and en-passant context is derived from board contents at apply
// time, not stored here.
type Move struct {
	From      Position
	To        Position
	Promotion PieceType
}

// Valid reports whether both endpoints are on the board and distinct.
func (m Move) Valid() bool {
	return m.From.Valid() && m.To.Valid() && m.From != m.To
}

// String returns the coordinate form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	switch m.Promotion {
	case Knight:
		s += "n"
	case Bishop:
		s += "b"
	case Rook:
		s += "r"
	case Queen:
		s += "q"
	}
	return s
}

// ParseMove converts coordinate notation ("e2e4", "e2-e4", "e7e8q") to a
// Move. SAN parsing needs a position and lives with the game.
func ParseMove(s string) (Move, error) {
	raw := s
	if len(s) == 5 && s[2] == '-' {
		s = s[:2] + s[3:]
	}
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: invalid move %q", ErrInvalidInput, raw)
	}
	from, err := ParsePosition(s[:2])
	if err != nil {
		return Move{}, fmt.Errorf("%w: invalid move %q", ErrInvalidInput, raw)
	}
	to, err := ParsePosition(s[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("%w: invalid move %q", ErrInvalidInput, raw)
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		switch s[4] {
		case 'n', 'N':
			m.Promotion = Knight
		case 'b', 'B':
			m.Promotion = Bishop
		case 'r', 'R':
			m.Promotion = Rook
		case 'q', 'Q':
			m.Promotion = Queen
		default:
			return Move{}, fmt.Errorf("%w: invalid promotion %q", ErrInvalidInput, raw)
		}
	}
	return m, nil
}

// MoveKind classifies a committed move. The kind is derived from board
// contents when the move is applied, never stored on the Move value.
type MoveKind int8

const (
	KindQuiet MoveKind = iota
	KindCapture
	KindDoubleStep
	KindEnPassant
	KindCastleKingside
	KindCastleQueenside
	KindPromotion
)

func (k MoveKind) String() string {
	switch k {
	case KindCapture:
		return "capture"
	case KindDoubleStep:
		return "double-step"
	case KindEnPassant:
		return "en passant"
	case KindCastleKingside:
		return "castle kingside"
	case KindCastleQueenside:
		return "castle queenside"
	case KindPromotion:
		return "promotion"
	default:
		return "quiet"
	}
}
