package piece_test

import (
	"testing"

	"chess/internal/board"
	"chess/internal/core"
	"chess/internal/piece"
)

func place(b *board.Board, t core.PieceType, color core.Color, square string) piece.Piece {
	pos, err := core.ParsePosition(square)
	if err != nil {
		panic(err)
	}
	p := piece.New(t, color, pos)
	b.SetPieceAt(p, pos)
	return p
}

func moveTargets(moves []core.Move) map[string]bool {
	targets := make(map[string]bool)
	for _, m := range moves {
		targets[m.To.String()] = true
	}
	return targets
}

func TestKnightMovesFromCenter(t *testing.T) {
	b := board.New()
	place(b, core.King, core.ColorWhite, "a1")
	place(b, core.King, core.ColorBlack, "h8")
	n := place(b, core.Knight, core.ColorWhite, "d4")

	moves := n.PseudoLegalMoves(b)
	if len(moves) != 8 {
		t.Fatalf("expected 8 knight moves from d4, got %d", len(moves))
	}

	targets := moveTargets(moves)
	for _, sq := range []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"} {
		if !targets[sq] {
			t.Errorf("expected knight move to %s", sq)
		}
	}
}

func TestKnightJumpsOverPieces(t *testing.T) {
	b := board.StartingPosition()
	n := b.PieceAt(core.Position{Row: 0, Col: 6})

	moves := n.PseudoLegalMoves(b)
	if len(moves) != 2 {
		t.Fatalf("expected 2 knight moves from g1 at start, got %d", len(moves))
	}
}

func TestBishopBlockedByOwnPiece(t *testing.T) {
	b := board.New()
	place(b, core.King, core.ColorWhite, "a1")
	place(b, core.King, core.ColorBlack, "h8")
	bishop := place(b, core.Bishop, core.ColorWhite, "c1")
	place(b, core.Pawn, core.ColorWhite, "d2")

	targets := moveTargets(bishop.PseudoLegalMoves(b))
	if targets["d2"] || targets["e3"] {
		t.Error("bishop must not pass through or land on its own pawn")
	}
	if !targets["b2"] || !targets["a3"] {
		t.Error("bishop should reach the open diagonal")
	}
}

func TestRookStopsAtEnemyPiece(t *testing.T) {
	b := board.New()
	place(b, core.King, core.ColorWhite, "h1")
	place(b, core.King, core.ColorBlack, "h8")
	rook := place(b, core.Rook, core.ColorWhite, "a1")
	place(b, core.Pawn, core.ColorBlack, "a5")

	targets := moveTargets(rook.PseudoLegalMoves(b))
	if !targets["a5"] {
		t.Error("rook should capture the enemy pawn on a5")
	}
	if targets["a6"] {
		t.Error("rook must not move past the enemy pawn")
	}
}

func TestQueenCombinesRookAndBishop(t *testing.T) {
	b := board.New()
	place(b, core.King, core.ColorWhite, "a1")
	place(b, core.King, core.ColorBlack, "h8")
	q := place(b, core.Queen, core.ColorWhite, "d4")

	moves := q.PseudoLegalMoves(b)
	if len(moves) != 27 {
		t.Fatalf("expected 27 queen moves from d4 on an open board, got %d", len(moves))
	}
}

func TestPawnDoubleStepOnlyFromStartRow(t *testing.T) {
	b := board.New()
	place(b, core.King, core.ColorWhite, "a1")
	place(b, core.King, core.ColorBlack, "h8")
	start := place(b, core.Pawn, core.ColorWhite, "e2")
	advanced := place(b, core.Pawn, core.ColorWhite, "c3")

	if targets := moveTargets(start.PseudoLegalMoves(b)); !targets["e3"] || !targets["e4"] {
		t.Error("pawn on its start row should have single and double steps")
	}
	if targets := moveTargets(advanced.PseudoLegalMoves(b)); targets["c5"] {
		t.Error("pawn off its start row must not double-step")
	}
}

func TestPawnDoubleStepBlocked(t *testing.T) {
	b := board.New()
	place(b, core.King, core.ColorWhite, "a1")
	place(b, core.King, core.ColorBlack, "h8")
	pawn := place(b, core.Pawn, core.ColorWhite, "e2")
	place(b, core.Knight, core.ColorBlack, "e4")

	targets := moveTargets(pawn.PseudoLegalMoves(b))
	if !targets["e3"] {
		t.Error("single step should be available")
	}
	if targets["e4"] {
		t.Error("double step must be blocked by the occupied target")
	}
}

func TestPawnCapturesDiagonallyOnly(t *testing.T) {
	b := board.New()
	place(b, core.King, core.ColorWhite, "a1")
	place(b, core.King, core.ColorBlack, "h8")
	pawn := place(b, core.Pawn, core.ColorWhite, "d4")
	place(b, core.Pawn, core.ColorBlack, "d5")
	place(b, core.Pawn, core.ColorBlack, "e5")

	targets := moveTargets(pawn.PseudoLegalMoves(b))
	if targets["d5"] {
		t.Error("pawn must not capture straight ahead")
	}
	if !targets["e5"] {
		t.Error("pawn should capture diagonally")
	}
	if targets["c5"] {
		t.Error("pawn must not capture an empty diagonal square")
	}
}

func TestPawnAttacksExcludePushes(t *testing.T) {
	b := board.New()
	place(b, core.King, core.ColorWhite, "a1")
	place(b, core.King, core.ColorBlack, "h8")
	pawn := place(b, core.Pawn, core.ColorWhite, "d4")

	if pawn.Attacks(core.Position{Row: 4, Col: 3}, b) {
		t.Error("forward square is not attacked by a pawn")
	}
	if !pawn.Attacks(core.Position{Row: 4, Col: 2}, b) || !pawn.Attacks(core.Position{Row: 4, Col: 4}, b) {
		t.Error("diagonal forward squares are attacked by a pawn")
	}
}

func TestPawnPromotionCandidates(t *testing.T) {
	b := board.New()
	place(b, core.King, core.ColorWhite, "a1")
	place(b, core.King, core.ColorBlack, "h8")
	pawn := place(b, core.Pawn, core.ColorWhite, "e7")

	moves := pawn.PseudoLegalMoves(b)
	if len(moves) != 4 {
		t.Fatalf("expected 4 promotion candidates, got %d", len(moves))
	}
	seen := make(map[core.PieceType]bool)
	for _, m := range moves {
		seen[m.Promotion] = true
	}
	for _, pt := range []core.PieceType{core.Knight, core.Bishop, core.Rook, core.Queen} {
		if !seen[pt] {
			t.Errorf("missing promotion to %s", pt)
		}
	}
}

func TestKingAttacksAdjacencyOnly(t *testing.T) {
	b := board.New()
	k := place(b, core.King, core.ColorWhite, "e1")
	place(b, core.King, core.ColorBlack, "h8")

	if !k.Attacks(core.Position{Row: 1, Col: 4}, b) {
		t.Error("king attacks adjacent squares")
	}
	if k.Attacks(core.Position{Row: 2, Col: 4}, b) {
		t.Error("king does not attack at distance two")
	}
	if k.Attacks(core.Position{Row: 0, Col: 4}, b) {
		t.Error("king does not attack its own square")
	}
}
