package game

import (
	"fmt"
	"strconv"
	"strings"

	"chess/internal/board"
	"chess/internal/core"
	"chess/internal/piece"
)

// StartingFEN is the standard initial position.
const StartingFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN exports the current position as a six-field FEN record.
func (g *Game) FEN() string {
	ep := "-"
	if target, ok := g.board.EnPassantTarget(); ok {
		ep = target.String()
	}
	return fmt.Sprintf("%s %s %s %s %d %d",
		g.board.Placement(), g.turn, g.board.CastlingFEN(), ep,
		g.halfMoveClock, g.moveNumber)
}

var fenSymbols = map[byte]struct {
	t     core.PieceType
	color core.Color
}{
	'P': {core.Pawn, core.ColorWhite}, 'p': {core.Pawn, core.ColorBlack},
	'N': {core.Knight, core.ColorWhite}, 'n': {core.Knight, core.ColorBlack},
	'B': {core.Bishop, core.ColorWhite}, 'b': {core.Bishop, core.ColorBlack},
	'R': {core.Rook, core.ColorWhite}, 'r': {core.Rook, core.ColorBlack},
	'Q': {core.Queen, core.ColorWhite}, 'q': {core.Queen, core.ColorBlack},
	'K': {core.King, core.ColorWhite}, 'k': {core.King, core.ColorBlack},
}

// LoadFEN replaces the position with the one described by fen. History,
// the undo stack and the repetition table restart from the imported
// position. Valid only before the game starts; players default to
// "White" and "Black" if Initialize has not run.
func (g *Game) LoadFEN(fen string) error {
	if g.started {
		return fmt.Errorf("%w: cannot load a position into a started game", core.ErrInvalidStateTransition)
	}

	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) != 6 {
		return fmt.Errorf("%w: FEN must have 6 fields, got %d", core.ErrInvalidInput, len(fields))
	}

	b, err := parsePlacement(fields[0])
	if err != nil {
		return err
	}

	var turn core.Color
	switch fields[1] {
	case "w":
		turn = core.ColorWhite
	case "b":
		turn = core.ColorBlack
	default:
		return fmt.Errorf("%w: invalid side to move %q", core.ErrInvalidInput, fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return err
	}
	b.SetRights(rights)
	markMovedFlags(b, rights)

	if fields[3] != "-" {
		if err := applyEnPassantField(b, fields[3], turn); err != nil {
			return err
		}
	}

	halfMove, err := strconv.Atoi(fields[4])
	if err != nil || halfMove < 0 {
		return fmt.Errorf("%w: invalid half-move clock %q", core.ErrInvalidInput, fields[4])
	}
	fullMove, err := strconv.Atoi(fields[5])
	if err != nil || fullMove < 1 {
		return fmt.Errorf("%w: invalid move number %q", core.ErrInvalidInput, fields[5])
	}

	if g.white == nil || g.black == nil {
		g.white = core.NewPlayer("White", core.ColorWhite, true, 0)
		g.black = core.NewPlayer("Black", core.ColorBlack, true, 0)
	}
	g.reset(b, turn, fullMove, halfMove)
	return nil
}

func parsePlacement(placement string) (*board.Board, error) {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: placement must have 8 ranks", core.ErrInvalidInput)
	}
	b := board.New()
	kings := map[core.Color]int{}
	for i, rank := range ranks {
		row := 7 - i
		col := 0
		for j := 0; j < len(rank); j++ {
			c := rank[j]
			if c >= '1' && c <= '8' {
				col += int(c - '0')
				continue
			}
			sym, ok := fenSymbols[c]
			if !ok || col > 7 {
				return nil, fmt.Errorf("%w: invalid placement rank %q", core.ErrInvalidInput, rank)
			}
			pos := core.Position{Row: row, Col: col}
			b.SetPieceAt(piece.New(sym.t, sym.color, pos), pos)
			if sym.t == core.King {
				kings[sym.color]++
			}
			col++
		}
		if col != 8 {
			return nil, fmt.Errorf("%w: rank %q does not span 8 files", core.ErrInvalidInput, rank)
		}
	}
	if kings[core.ColorWhite] != 1 || kings[core.ColorBlack] != 1 {
		return nil, fmt.Errorf("%w: each side must have exactly one king", core.ErrInvalidInput)
	}
	return b, nil
}

func parseCastling(field string) (board.Rights, error) {
	var r board.Rights
	if field == "-" {
		return r, nil
	}
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case 'K':
			r.WhiteKingside = true
		case 'Q':
			r.WhiteQueenside = true
		case 'k':
			r.BlackKingside = true
		case 'q':
			r.BlackQueenside = true
		default:
			return r, fmt.Errorf("%w: invalid castling field %q", core.ErrInvalidInput, field)
		}
	}
	return r, nil
}

// markMovedFlags reconstructs the per-piece moved flags a FEN record does
// not carry. Pawns off their start rank have moved; kings and rooks are
// unmoved only where a surviving castling right says so.
func markMovedFlags(b *board.Board, rights board.Rights) {
	for _, color := range [2]core.Color{core.ColorWhite, core.ColorBlack} {
		startRow, homeRow := 1, 0
		kingside, queenside := rights.WhiteKingside, rights.WhiteQueenside
		if color == core.ColorBlack {
			startRow, homeRow = 6, 7
			kingside, queenside = rights.BlackKingside, rights.BlackQueenside
		}
		for _, p := range b.PiecesOfColor(color) {
			switch p.Type() {
			case core.Pawn:
				if p.Position().Row != startRow {
					p.MarkMoved()
				}
			case core.King:
				home := core.Position{Row: homeRow, Col: 4}
				if p.Position() != home || (!kingside && !queenside) {
					p.MarkMoved()
				}
			case core.Rook:
				kingsideHome := core.Position{Row: homeRow, Col: 7}
				queensideHome := core.Position{Row: homeRow, Col: 0}
				switch p.Position() {
				case kingsideHome:
					if !kingside {
						p.MarkMoved()
					}
				case queensideHome:
					if !queenside {
						p.MarkMoved()
					}
				default:
					p.MarkMoved()
				}
			}
		}
	}
}

// applyEnPassantField synthesizes the double-step last move implied by a
// FEN en-passant target so captures against it work after import.
func applyEnPassantField(b *board.Board, field string, turn core.Color) error {
	target, err := core.ParsePosition(field)
	if err != nil {
		return fmt.Errorf("%w: invalid en-passant square %q", core.ErrInvalidInput, field)
	}
	var from, to core.Position
	switch {
	case turn == core.ColorWhite && target.Row == 5:
		from = core.Position{Row: 6, Col: target.Col}
		to = core.Position{Row: 4, Col: target.Col}
	case turn == core.ColorBlack && target.Row == 2:
		from = core.Position{Row: 1, Col: target.Col}
		to = core.Position{Row: 3, Col: target.Col}
	default:
		return fmt.Errorf("%w: en-passant square %q inconsistent with side to move", core.ErrInvalidInput, field)
	}
	p := b.PieceAt(to)
	if p == nil || p.Type() != core.Pawn || p.Color() == turn {
		return fmt.Errorf("%w: no pawn matches en-passant square %q", core.ErrInvalidInput, field)
	}
	b.SetLastMove(core.Move{From: from, To: to})
	return nil
}
