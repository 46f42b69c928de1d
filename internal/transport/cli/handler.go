// Package cli drives a local game session from parsed terminal commands,
// bridging the view and the service.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"chess/internal/cli"
	"chess/internal/core"
	"chess/internal/service"
)

type CLIHandler struct {
	svc    *service.Service
	view   *cli.CLI
	gameID string

	// Wall-clock accounting for the side to move; the engine itself never
	// drives clocks.
	timed       bool
	turnStarted time.Time
}

func New(svc *service.Service, view *cli.CLI) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Prompt returns the input prompt for the current state.
func (h *CLIHandler) Prompt() string {
	if h.gameID == "" {
		return "> "
	}
	g, err := h.svc.GetGame(h.gameID)
	if err != nil || g.IsGameOver() {
		return "> "
	}
	if g.IsCheck() {
		return fmt.Sprintf("[%s +]> ", g.Turn())
	}
	return fmt.Sprintf("[%s]> ", g.Turn())
}

// ProcessLine handles one input line. Returns false to exit.
func (h *CLIHandler) ProcessLine(line string) bool {
	cmd := cli.ParseCommand(line)

	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		return true

	case cli.CmdNew:
		h.handleNewGame(cmd.Args, "")

	case cli.CmdLoad:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: load <FEN string>")
			return true
		}
		h.handleNewGame(nil, strings.Join(cmd.Args, " "))

	case cli.CmdMove:
		h.handleMove(cmd.Args[0])

	case cli.CmdUndo:
		h.handleUndo(cmd.Args)

	case cli.CmdResign:
		if !h.requireGame() {
			return true
		}
		g, err := h.svc.Resign(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowGameOver(g.Result())
		h.gameID = ""

	case cli.CmdDraw:
		if !h.requireGame() {
			return true
		}
		g, err := h.svc.OfferDraw(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowGameOver(g.Result())
		h.gameID = ""

	case cli.CmdHistory:
		if !h.requireGame() {
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowGameHistory(g)

	case cli.CmdLegal:
		if !h.requireGame() {
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		legal := g.LegalMoves()
		moves := make([]string, len(legal))
		for i, m := range legal {
			moves[i] = m.String()
		}
		h.view.ShowMessage(fmt.Sprintf("%d legal moves: %s", len(moves), strings.Join(moves, " ")))

	case cli.CmdFEN:
		if !h.requireGame() {
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowMessage(g.FEN())

	case cli.CmdPGN:
		if !h.requireGame() {
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowMessage(g.ToPGN())

	case cli.CmdBoard:
		if !h.requireGame() {
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.DisplayBoard(g.Board())

	case cli.CmdStats:
		if !h.requireGame() {
			return true
		}
		g, _ := h.svc.GetGame(h.gameID)
		h.view.ShowStatistics(g)

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		theme := cli.ColorTheme(cmd.Args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", theme))
			if h.gameID != "" {
				g, _ := h.svc.GetGame(h.gameID)
				h.view.DisplayBoard(g.Board())
			}
		}

	case cli.CmdVerbose:
		verbose := h.view.ToggleVerbose()
		h.view.ShowMessage(fmt.Sprintf("Verbose mode: %t", verbose))

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) requireGame() bool {
	if h.gameID == "" {
		h.view.ShowMessage("No active game. Use 'new' or 'load <FEN>'.")
		return false
	}
	return true
}

func (h *CLIHandler) handleNewGame(args []string, fen string) {
	timeLimit := 0
	if len(args) > 0 {
		minutes, err := strconv.Atoi(args[0])
		if err != nil || minutes < 1 {
			h.view.ShowMessage("Usage: new [minutes]")
			return
		}
		timeLimit = minutes * 60
	}

	req := core.CreateGameRequest{
		White:            core.PlayerSpec{Name: "White"},
		Black:            core.PlayerSpec{Name: "Black"},
		TimeLimitSeconds: timeLimit,
		FEN:              fen,
	}

	id, g, err := h.svc.CreateGame(req)
	if err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %v", err))
		return
	}

	h.gameID = id
	h.timed = timeLimit > 0
	h.turnStarted = time.Now()
	h.view.ShowMessage("Game started.")
	h.view.DisplayBoard(g.Board())
}

func (h *CLIHandler) handleMove(notation string) {
	if !h.requireGame() {
		return
	}

	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		return
	}
	mover := g.Turn()

	// Debit the mover's clock before validating; a flag fall ends the
	// game regardless of the attempted move.
	if h.timed {
		player := g.Player(mover)
		player.SubtractTime(time.Since(h.turnStarted))
		if !player.HasTimeLeft() {
			if g, err := h.svc.ReportTimeout(h.gameID, mover); err == nil {
				h.view.ShowGameOver(g.Result())
				h.gameID = ""
				return
			}
		}
	}

	g, err = h.svc.Move(h.gameID, notation)
	if err != nil {
		h.view.ShowError(fmt.Errorf("invalid move: %v", err))
		return
	}
	h.turnStarted = time.Now()

	history := g.History()
	if len(history) > 0 {
		h.view.ShowMove(history[len(history)-1])
	}
	h.view.DisplayBoard(g.Board())

	if g.IsGameOver() {
		h.view.ShowGameOver(g.Result())
		h.gameID = ""
	} else if g.IsCheck() {
		h.view.ShowMessage(fmt.Sprintf("%s is in check.", g.Turn().Name()))
	}
}

func (h *CLIHandler) handleUndo(args []string) {
	if !h.requireGame() {
		return
	}

	count := 1
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			count = n
		} else {
			h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
			return
		}
	}

	g, err := h.svc.Undo(h.gameID, count)
	if err != nil {
		h.view.ShowError(err)
		return
	}

	if count == 1 {
		h.view.ShowMessage("Move undone")
	} else {
		h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
	}
	h.view.DisplayBoard(g.Board())
}
