// Package main implements the interactive terminal chess application.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"chess/internal/cli"
	"chess/internal/service"
	clitransport "chess/internal/transport/cli"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	svc, err := service.New(nil)
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer svc.Close()

	view := cli.New(os.Stdout)

	// Default to a colored board when stdout is a real terminal.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		view.SetTheme(cli.ThemeBrown)
	}

	handler := clitransport.New(svc, view)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     ".chess_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Printf("Failed to initialize input: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	view.ShowWelcome()

	for {
		rl.SetPrompt(handler.Prompt())

		line, err := rl.Readline()
		if err == io.EOF || err == readline.ErrInterrupt {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !handler.ProcessLine(line) {
			break
		}
	}
}
