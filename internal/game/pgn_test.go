package game

import (
	"strings"
	"testing"

	"chess/internal/core"
)

func TestPGNExport(t *testing.T) {
	g := startGame(t)
	play(t, g, "f3", "e5", "g4", "Qh4")

	pgn := g.ToPGN()
	for _, tag := range []string{`[White "Alice"]`, `[Black "Bob"]`, `[Result "0-1"]`} {
		if !strings.Contains(pgn, tag) {
			t.Errorf("PGN missing tag %s", tag)
		}
	}
	if !strings.Contains(pgn, "1. f3 e5 2. g4 Qh4# 0-1") {
		t.Fatalf("unexpected movetext:\n%s", pgn)
	}
	if strings.Contains(pgn, "[FEN ") {
		t.Error("a game from the standard start must not carry a FEN tag")
	}
}

func TestPGNExportCustomPosition(t *testing.T) {
	fen := "k1K5/8/8/8/8/8/8/1Q6 w - - 0 1"
	g := startFromFEN(t, fen)
	play(t, g, "Qb6")

	pgn := g.ToPGN()
	if !strings.Contains(pgn, `[SetUp "1"]`) || !strings.Contains(pgn, `[FEN "`+fen+`"]`) {
		t.Fatalf("custom start must carry SetUp and FEN tags:\n%s", pgn)
	}
	if !strings.Contains(pgn, "1/2-1/2") {
		t.Error("stalemate should export the draw token")
	}
}

func TestPGNImportReplaysMovetext(t *testing.T) {
	pgn := `[Event "Test"]
[White "Carol"]
[Black "Dan"]
[Result "*"]

1. e4 {best by test} e5 2. Nf3 (2. f4 exf4) Nc6 3. Bb5 $1 a6 *
`
	g := New()
	if err := g.LoadPGN(pgn); err != nil {
		t.Fatal(err)
	}

	if g.White().Name != "Carol" || g.Black().Name != "Dan" {
		t.Error("player names should come from the tag pairs")
	}
	if len(g.History()) != 6 {
		t.Fatalf("expected 6 plies, got %d", len(g.History()))
	}
	want := "r1bqkbnr/1ppp1ppp/p1n5/1B2p3/4P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 4"
	if got := g.FEN(); got != want {
		t.Fatalf("FEN mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestPGNImportAppliesResultTag(t *testing.T) {
	pgn := `[White "Carol"]
[Black "Dan"]
[Result "1-0"]

1. e4 e5 2. Nf3 1-0
`
	g := New()
	if err := g.LoadPGN(pgn); err != nil {
		t.Fatal(err)
	}
	// The moves alone do not end the game; the tag records a resignation.
	if g.Result() != core.ResultWhiteWins {
		t.Fatalf("expected white wins from the result tag, got %s", g.Result())
	}
}

func TestPGNImportRejectsIllegalMove(t *testing.T) {
	pgn := "1. e4 e5 2. Ke2 Nf6 3. O-O\n"
	g := New()
	err := g.LoadPGN(pgn)
	if err == nil {
		t.Fatal("expected replay failure")
	}
	if !strings.Contains(err.Error(), "O-O") {
		t.Fatalf("error should name the failing move, got %v", err)
	}
}

func TestPGNRoundTrip(t *testing.T) {
	g := startGame(t)
	play(t, g, "e4", "c5", "Nf3", "d6", "d4", "cxd4", "Nxd4")

	reloaded := New()
	if err := reloaded.LoadPGN(g.ToPGN()); err != nil {
		t.Fatal(err)
	}
	if reloaded.FEN() != g.FEN() {
		t.Fatalf("round trip mismatch:\n got %q\nwant %q", reloaded.FEN(), g.FEN())
	}
}
