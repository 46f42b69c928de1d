package board

import (
	"testing"

	"chess/internal/core"
	"chess/internal/piece"
)

func pos(t *testing.T, square string) core.Position {
	t.Helper()
	p, err := core.ParsePosition(square)
	if err != nil {
		t.Fatalf("bad square %q: %v", square, err)
	}
	return p
}

func mv(t *testing.T, notation string) core.Move {
	t.Helper()
	m, err := core.ParseMove(notation)
	if err != nil {
		t.Fatalf("bad move %q: %v", notation, err)
	}
	return m
}

func TestStartingPositionHasTwentyLegalMoves(t *testing.T) {
	b := StartingPosition()
	for _, color := range []core.Color{core.ColorWhite, core.ColorBlack} {
		if got := len(b.LegalMoves(color)); got != 20 {
			t.Errorf("%s: expected 20 legal moves, got %d", color.Name(), got)
		}
	}
}

func TestAttackDetection(t *testing.T) {
	b := StartingPosition()
	// f3 and h3 are covered by the g1 knight.
	if !b.IsAttacked(pos(t, "f3"), core.ColorWhite) {
		t.Error("f3 should be attacked by the g1 knight")
	}
	// e4 is not reachable by any white capture at the start.
	if b.IsAttacked(pos(t, "e4"), core.ColorWhite) {
		t.Error("e4 is not attacked in the starting position")
	}
	// d3 is covered by pawn capture geometry from c2 and e2.
	if !b.IsAttacked(pos(t, "d3"), core.ColorWhite) {
		t.Error("d3 should be attacked by pawn capture geometry")
	}
}

func TestMovePieceReportsCapture(t *testing.T) {
	b := StartingPosition()
	b.MovePiece(mv(t, "e2e4"))
	b.MovePiece(mv(t, "d7d5"))
	out := b.MovePiece(mv(t, "e4d5"))

	if out.Kind != core.KindCapture {
		t.Fatalf("expected capture kind, got %s", out.Kind)
	}
	if out.Captured == nil || out.Captured.Type() != core.Pawn {
		t.Fatal("expected the d5 pawn to be captured")
	}
}

func TestEnPassantCaptureRemovesBypassedPawn(t *testing.T) {
	b := StartingPosition()
	b.MovePiece(mv(t, "e2e4"))
	b.MovePiece(mv(t, "a7a6"))
	b.MovePiece(mv(t, "e4e5"))
	out := b.MovePiece(mv(t, "d7d5"))
	if out.Kind != core.KindDoubleStep {
		t.Fatalf("expected double-step kind, got %s", out.Kind)
	}

	target, ok := b.EnPassantTarget()
	if !ok || target.String() != "d6" {
		t.Fatalf("expected en-passant target d6, got %v %v", target, ok)
	}

	if !b.IsMoveLegal(mv(t, "e5d6")) {
		t.Fatal("en-passant capture e5xd6 should be legal")
	}
	out = b.MovePiece(mv(t, "e5d6"))
	if out.Kind != core.KindEnPassant {
		t.Fatalf("expected en-passant kind, got %s", out.Kind)
	}
	if out.Captured == nil || out.Captured.Type() != core.Pawn {
		t.Fatal("expected the bypassed pawn to be captured")
	}
	if !b.IsEmpty(pos(t, "d5")) {
		t.Error("the bypassed pawn square should be empty after en passant")
	}
}

func TestEnPassantWindowClosesAfterOnePly(t *testing.T) {
	b := StartingPosition()
	b.MovePiece(mv(t, "e2e4"))
	b.MovePiece(mv(t, "a7a6"))
	b.MovePiece(mv(t, "e4e5"))
	b.MovePiece(mv(t, "d7d5"))
	// An unrelated move closes the window.
	b.MovePiece(mv(t, "b1c3"))
	b.MovePiece(mv(t, "a6a5"))

	if b.IsMoveLegal(mv(t, "e5d6")) {
		t.Fatal("en-passant capture must only be available immediately")
	}
}

func TestCastlingKingsideRelocatesRook(t *testing.T) {
	b := StartingPosition()
	for _, m := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6"} {
		b.MovePiece(mv(t, m))
	}

	if !b.IsMoveLegal(mv(t, "e1g1")) {
		t.Fatal("white kingside castling should be legal")
	}
	out := b.MovePiece(mv(t, "e1g1"))
	if out.Kind != core.KindCastleKingside {
		t.Fatalf("expected castle kingside kind, got %s", out.Kind)
	}

	king := b.PieceAt(pos(t, "g1"))
	rook := b.PieceAt(pos(t, "f1"))
	if king == nil || king.Type() != core.King {
		t.Error("king should stand on g1 after castling")
	}
	if rook == nil || rook.Type() != core.Rook {
		t.Error("rook should stand on f1 after castling")
	}
	if !b.IsEmpty(pos(t, "h1")) {
		t.Error("h1 should be empty after castling")
	}

	rights := b.Rights()
	if rights.WhiteKingside || rights.WhiteQueenside {
		t.Error("white castling rights must be revoked after castling")
	}
	if !rights.BlackKingside || !rights.BlackQueenside {
		t.Error("black castling rights must be unaffected")
	}
}

func TestCastlingBlockedWhileKingPathAttacked(t *testing.T) {
	b := New()
	b.SetPieceAt(piece.New(core.King, core.ColorWhite, pos(t, "e1")), pos(t, "e1"))
	b.SetPieceAt(piece.New(core.Rook, core.ColorWhite, pos(t, "h1")), pos(t, "h1"))
	b.SetPieceAt(piece.New(core.King, core.ColorBlack, pos(t, "e8")), pos(t, "e8"))
	b.SetPieceAt(piece.New(core.Rook, core.ColorBlack, pos(t, "f5")), pos(t, "f5"))

	if b.IsMoveLegal(mv(t, "e1g1")) {
		t.Fatal("castling through an attacked square must be illegal")
	}

	// Remove the attacker; castling becomes legal.
	b.RemovePieceAt(pos(t, "f5"))
	if !b.IsMoveLegal(mv(t, "e1g1")) {
		t.Fatal("castling should be legal once the path is safe")
	}
}

func TestRightsRevokedWhenRookMoves(t *testing.T) {
	b := StartingPosition()
	b.MovePiece(mv(t, "h2h4"))
	b.MovePiece(mv(t, "a7a6"))
	b.MovePiece(mv(t, "h1h2"))
	b.MovePiece(mv(t, "a6a5"))
	b.MovePiece(mv(t, "h2h1"))

	rights := b.Rights()
	if rights.WhiteKingside {
		t.Error("kingside right must stay revoked after the rook returns home")
	}
	if !rights.WhiteQueenside {
		t.Error("queenside right must be unaffected")
	}
}

func TestPromotionDefaultsToQueen(t *testing.T) {
	b := New()
	b.SetPieceAt(piece.New(core.King, core.ColorWhite, pos(t, "e1")), pos(t, "e1"))
	b.SetPieceAt(piece.New(core.King, core.ColorBlack, pos(t, "h8")), pos(t, "h8"))
	b.SetPieceAt(piece.New(core.Pawn, core.ColorWhite, pos(t, "a7")), pos(t, "a7"))

	out := b.MovePiece(mv(t, "a7a8"))
	if out.Kind != core.KindPromotion {
		t.Fatalf("expected promotion kind, got %s", out.Kind)
	}
	promoted := b.PieceAt(pos(t, "a8"))
	if promoted == nil || promoted.Type() != core.Queen {
		t.Fatal("promotion without an explicit target should produce a queen")
	}
}

func TestPromotionToKnight(t *testing.T) {
	b := New()
	b.SetPieceAt(piece.New(core.King, core.ColorWhite, pos(t, "e1")), pos(t, "e1"))
	b.SetPieceAt(piece.New(core.King, core.ColorBlack, pos(t, "h8")), pos(t, "h8"))
	b.SetPieceAt(piece.New(core.Pawn, core.ColorWhite, pos(t, "a7")), pos(t, "a7"))

	b.MovePiece(mv(t, "a7a8n"))
	promoted := b.PieceAt(pos(t, "a8"))
	if promoted == nil || promoted.Type() != core.Knight {
		t.Fatal("explicit underpromotion should produce a knight")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := StartingPosition()
	cp := b.Clone()

	cp.MovePiece(mv(t, "e2e4"))
	if !b.IsEmpty(pos(t, "e4")) {
		t.Fatal("mutating a clone must not affect the original")
	}
	if b.PieceAt(pos(t, "e2")) == nil {
		t.Fatal("original board lost a piece after clone mutation")
	}
}

func TestLegalMovesExcludeSelfCheck(t *testing.T) {
	b := New()
	b.SetPieceAt(piece.New(core.King, core.ColorWhite, pos(t, "e1")), pos(t, "e1"))
	b.SetPieceAt(piece.New(core.Rook, core.ColorWhite, pos(t, "e2")), pos(t, "e2"))
	b.SetPieceAt(piece.New(core.King, core.ColorBlack, pos(t, "h8")), pos(t, "h8"))
	b.SetPieceAt(piece.New(core.Rook, core.ColorBlack, pos(t, "e7")), pos(t, "e7"))

	// The e2 rook is pinned to the king; it may slide along the e-file
	// but never leave it.
	if b.IsMoveLegal(mv(t, "e2a2")) {
		t.Error("pinned rook must not leave the file")
	}
	if !b.IsMoveLegal(mv(t, "e2e5")) {
		t.Error("pinned rook may slide along the pin line")
	}
}

func TestIsKingInCheck(t *testing.T) {
	b := New()
	b.SetPieceAt(piece.New(core.King, core.ColorWhite, pos(t, "e1")), pos(t, "e1"))
	b.SetPieceAt(piece.New(core.King, core.ColorBlack, pos(t, "h8")), pos(t, "h8"))
	b.SetPieceAt(piece.New(core.Queen, core.ColorBlack, pos(t, "e5")), pos(t, "e5"))

	if !b.IsKingInCheck(core.ColorWhite) {
		t.Error("white king on an open file with an enemy queen is in check")
	}
	if b.IsKingInCheck(core.ColorBlack) {
		t.Error("black king is not in check")
	}
}
