package cli

import (
	"bytes"
	"strings"
	"testing"

	"chess/internal/board"
)

func TestParseCommand(t *testing.T) {
	cases := []struct {
		input string
		want  CommandType
	}{
		{"new", CmdNew},
		{"new 5", CmdNew},
		{"load 8/8/8/8/8/8/8/8 w - - 0 1", CmdLoad},
		{"resume fen", CmdLoad},
		{"e2e4", CmdMove},
		{"Nf3", CmdMove},
		{"O-O", CmdMove},
		{"undo", CmdUndo},
		{"undo 3", CmdUndo},
		{"resign", CmdResign},
		{"draw", CmdDraw},
		{"history", CmdHistory},
		{"legal", CmdLegal},
		{"moves", CmdLegal},
		{"fen", CmdFEN},
		{"pgn", CmdPGN},
		{"board", CmdBoard},
		{"stats", CmdStats},
		{"color green", CmdColor},
		{"verbose", CmdVerbose},
		{"help", CmdHelp},
		{"?", CmdHelp},
		{"quit", CmdQuit},
		{"exit", CmdQuit},
		{"", CmdNone},
		{"   ", CmdNone},
	}
	for _, tc := range cases {
		if got := ParseCommand(tc.input).Type; got != tc.want {
			t.Errorf("ParseCommand(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestSetThemeRejectsUnknown(t *testing.T) {
	c := New(&bytes.Buffer{})
	if err := c.SetTheme("neon"); err == nil {
		t.Fatal("unknown theme must be rejected")
	}
	if err := c.SetTheme(ThemeGray); err != nil {
		t.Fatalf("gray is a valid theme: %v", err)
	}
}

func TestDisplayBoardPlain(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf)
	c.DisplayBoard(board.StartingPosition())

	out := buf.String()
	if !strings.Contains(out, "a b c d e f g h") {
		t.Error("missing file labels")
	}
	// Rank 8 holds black's back rank in lowercase.
	if !strings.Contains(out, "8 r n b q k b n r  8") {
		t.Errorf("missing black back rank:\n%s", out)
	}
	if !strings.Contains(out, "1 R N B Q K B N R  1") {
		t.Errorf("missing white back rank:\n%s", out)
	}
	if strings.Contains(out, "\033[") {
		t.Error("plain theme must not emit ANSI escapes")
	}
}
