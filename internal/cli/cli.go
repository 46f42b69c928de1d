// Package cli is the terminal presentation layer: command parsing, board
// rendering with optional ANSI themes, and game status output.
package cli

import (
	"fmt"
	"io"
	"strings"

	"chess/internal/board"
	"chess/internal/core"
	"chess/internal/game"
)

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdLoad
	CmdMove
	CmdUndo
	CmdResign
	CmdDraw
	CmdHistory
	CmdLegal
	CmdFEN
	CmdPGN
	CmdBoard
	CmdStats
	CmdColor
	CmdVerbose
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		reset:   "\033[0m",
	},
}

type CLI struct {
	output  io.Writer
	theme   ColorTheme
	verbose bool
}

func New(output io.Writer) *CLI {
	return &CLI{
		output: output,
		theme:  ThemeOff,
	}
}

// ParseCommand interprets one input line. Anything that is not a known
// command word is treated as a move.
func ParseCommand(input string) *Command {
	parts := strings.Fields(strings.TrimSpace(input))
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "load", "resume":
		return &Command{Type: CmdLoad, Args: args, Raw: input}
	case "undo":
		return &Command{Type: CmdUndo, Args: args}
	case "resign":
		return &Command{Type: CmdResign}
	case "draw":
		return &Command{Type: CmdDraw}
	case "history":
		return &Command{Type: CmdHistory}
	case "legal", "moves":
		return &Command{Type: CmdLegal}
	case "fen":
		return &Command{Type: CmdFEN}
	case "pgn":
		return &Command{Type: CmdPGN}
	case "board":
		return &Command{Type: CmdBoard}
	case "stats":
		return &Command{Type: CmdStats}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "verbose":
		return &Command{Type: CmdVerbose}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Assume it's a move
		return &Command{Type: CmdMove, Args: []string{cmd}}
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ToggleVerbose() bool {
	c.verbose = !c.verbose
	return c.verbose
}

func (c *CLI) IsVerbose() bool {
	return c.verbose
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Error: %v", err))
}

// DisplayBoard renders the position with rank 8 at the top, applying the
// active color theme.
func (c *CLI) DisplayBoard(b *board.Board) {
	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n  a b c d e f g h\n")

	for row := 7; row >= 0; row-- {
		sb.WriteString(fmt.Sprintf("%d ", row+1))
		for col := 0; col < 8; col++ {
			p := b.PieceAt(core.Position{Row: row, Col: col})

			if c.theme == ThemeOff {
				if p == nil {
					sb.WriteString(". ")
				} else {
					sb.WriteString(fmt.Sprintf("%c ", p.Symbol()))
				}
			} else {
				bg := theme.darkBg
				if (row+col)%2 == 1 {
					bg = theme.lightBg
				}

				if p == nil {
					sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
				} else {
					color := theme.black
					if p.Color() == core.ColorWhite {
						color = theme.white
					}
					sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, color, p.Symbol(), theme.reset))
				}
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", row+1))
	}
	sb.WriteString("  a b c d e f g h\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  new [minutes]    - Start a new game, optionally with a per-player clock
  load <FEN>       - Start a game from a specific board position
  <move>           - Make a move in coordinate (e2e4) or algebraic (Nf3) form
  undo [count]     - Undo last half-move(s), default 1
  resign           - Resign the game for the side to move
  draw             - Agree to a draw
  history          - Show the move history
  legal            - List the legal moves for the side to move
  fen              - Print the current position as FEN
  pgn              - Print the game as PGN
  board            - Redraw the board
  stats            - Show player statistics and clocks
  color <theme>    - Set board color theme (off|brown|green|gray)
  verbose          - Toggle detailed move information
  quit/exit        - Exit the program
  help/?           - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Welcome to Chess!")
	c.ShowMessage("Commands: new, load <FEN>, <move>, undo, resign, draw, history, help/?")
	c.ShowMessage("Example: 'load 4k3/8/8/8/8/8/8/4K2R w K - 0 1' to start from a puzzle.")
	c.ShowMessage("")
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("Starting FEN: %s", g.InitialFEN()))

	history := g.History()
	for i := 0; i < len(history); i += 2 {
		moveNum := i/2 + 1
		white := history[i].SAN
		if i+1 < len(history) {
			c.ShowMessage(fmt.Sprintf("%d. %s | %s", moveNum, white, history[i+1].SAN))
		} else {
			c.ShowMessage(fmt.Sprintf("%d. %s | ...", moveNum, white))
		}
	}
	c.ShowMessage(fmt.Sprintf("Current FEN: %s", g.FEN()))
	c.ShowMessage(fmt.Sprintf("Game state: %s", g.Result()))
}

// ShowMove echoes a committed move. Verbose mode adds the derived kind
// and the SAN rendering.
func (c *CLI) ShowMove(r game.Record) {
	if c.verbose {
		c.ShowMessage(fmt.Sprintf("%s played %s (%s, %s)", r.Color.Name(), r.SAN, r.Move, r.Kind))
	} else {
		c.ShowMessage(fmt.Sprintf("%s played %s", r.Color.Name(), r.SAN))
	}
}

func (c *CLI) ShowStatistics(g *game.Game) {
	c.ShowMessage(g.White().Statistics())
	c.ShowMessage(g.Black().Statistics())
}

func (c *CLI) ShowGameOver(result core.Result) {
	c.ShowMessage(fmt.Sprintf("\nGame Over: %s", result))
	c.ShowMessage("Start a new game with 'new' or 'load'.")
}
