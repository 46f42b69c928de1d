package game

import (
	"fmt"
	"strings"

	"chess/internal/core"
)

// sanBase encodes m in standard algebraic notation against the current
// (pre-move) board, without the check or mate suffix. legal must be the
// full legal move list for the side to move; disambiguation depends on it.
func (g *Game) sanBase(m core.Move, legal []core.Move) string {
	mover := g.board.PieceAt(m.From)
	if mover == nil {
		return m.String()
	}

	if mover.Type() == core.King {
		switch m.To.Col - m.From.Col {
		case 2:
			return "O-O"
		case -2:
			return "O-O-O"
		}
	}

	capture := g.board.PieceAt(m.To) != nil
	if mover.Type() == core.Pawn && m.To.Col != m.From.Col {
		capture = true // includes en passant onto an empty square
	}

	var sb strings.Builder
	if mover.Type() == core.Pawn {
		if capture {
			sb.WriteByte(byte('a' + m.From.Col))
		}
	} else {
		sb.WriteString(mover.Type().Letter())
		sb.WriteString(g.disambiguation(m, mover.Type(), legal))
	}
	if capture {
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())
	if m.Promotion != core.NoPieceType {
		sb.WriteByte('=')
		sb.WriteString(m.Promotion.Letter())
	}
	return sb.String()
}

// disambiguation returns the origin hint needed when two pieces of the
// same type can reach the same square: file if files differ, rank if
// files clash, the full square when neither alone is unique.
func (g *Game) disambiguation(m core.Move, t core.PieceType, legal []core.Move) string {
	sameFile, sameRank, rivals := false, false, false
	for _, c := range legal {
		if c.To != m.To || c.From == m.From {
			continue
		}
		p := g.board.PieceAt(c.From)
		if p == nil || p.Type() != t {
			continue
		}
		rivals = true
		if c.From.Col == m.From.Col {
			sameFile = true
		}
		if c.From.Row == m.From.Row {
			sameRank = true
		}
	}
	switch {
	case !rivals:
		return ""
	case !sameFile:
		return string(byte('a' + m.From.Col))
	case !sameRank:
		return string(byte('1' + m.From.Row))
	default:
		return m.From.String()
	}
}

// parseSAN resolves algebraic notation against the current position by
// encoding every legal move and matching. Check/mate suffixes and
// annotation glyphs are ignored; zeros are accepted for castling.
func (g *Game) parseSAN(s string) (core.Move, error) {
	normalized := strings.TrimSpace(s)
	normalized = strings.TrimSuffix(normalized, "e.p.")
	normalized = strings.TrimRight(normalized, "+#!?")
	normalized = strings.ReplaceAll(normalized, "0-0-0", "O-O-O")
	if normalized == "0-0" {
		normalized = "O-O"
	}
	if normalized == "" {
		return core.Move{}, fmt.Errorf("%w: empty move notation", core.ErrInvalidInput)
	}

	legal := g.board.LegalMoves(g.turn)
	for _, c := range legal {
		if g.sanBase(c, legal) == normalized {
			return c, nil
		}
	}
	return core.Move{}, fmt.Errorf("%w: %q does not match a legal move", core.ErrIllegalMove, s)
}
