package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/output"
)

const helpText = `Moves:    e2e4, e2-e4, e7e8n (promote to knight; queen by default), O-O, O-O-O
Commands: board, moves, fen, resign, help, exit (or end)
`

// errStop ends the line loop without an error.
var errStop = errors.New("stop")

// playLines reads one move or command per line from r until the game ends,
// the input runs out, or the player types exit or end.
func playLines(r io.Reader, cfg *config.Config, g *engine.Game) error {
	out := cfg.OutputFile
	if cfg.Output.ShowBoardEachMove {
		if err := output.WriteBoard(out, g, cfg.Output); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(r)
	for g.State() == engine.Ongoing && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		err := handleLine(line, cfg, g)
		if errors.Is(err, errStop) {
			cfg.Logf(config.Results, "Game stopped after %d moves\n", len(g.Moves()))
			return nil
		}
		if err != nil {
			return err
		}
	}
	return scanner.Err()
}

// handleLine runs a single command or move. Rejected moves are reported and
// are not errors.
func handleLine(line string, cfg *config.Config, g *engine.Game) error {
	out := cfg.OutputFile
	switch strings.ToLower(line) {
	case "exit", "end", "quit":
		return errStop
	case "help", "?":
		_, err := io.WriteString(out, helpText)
		return err
	case "board":
		return output.WriteBoard(out, g, cfg.Output)
	case "moves":
		_, err := fmt.Fprintln(out, output.FormatMoves(g.Moves(), g.State().Result()))
		return err
	case "fen":
		_, err := fmt.Fprintln(out, g.FEN())
		return err
	case "resign":
		loser := g.ToMove()
		g.Resign(loser)
		cfg.Logf(config.Results, "%s resigns: %s\n", loser, g.State().Result())
		_, err := fmt.Fprintf(out, "%s resigns\n", loser)
		return err
	}

	mover := g.ToMove()
	if err := g.Play(line); err != nil {
		cfg.Logf(config.Results, "Rejected %v\n", err)
		_, werr := fmt.Fprintf(out, "Invalid move: %s\n", line)
		return werr
	}
	cfg.Logf(config.Commentary, "%d. %s: %s\n", len(g.Moves()), mover, line)

	if cfg.Output.ShowBoardEachMove {
		if err := output.WriteBoard(out, g, cfg.Output); err != nil {
			return err
		}
	}
	reportEnd(cfg, g)
	return nil
}

// reportEnd logs the result once the game is over.
func reportEnd(cfg *config.Config, g *engine.Game) {
	if g.State() == engine.Ongoing {
		if g.IsCurrentPlayerInCheck() {
			cfg.Logf(config.Commentary, "%s is in check\n", g.ToMove())
		}
		return
	}
	cfg.Logf(config.Results, "Game over: %s by %s\n", g.State().Result(), strings.ToLower(g.Method().String()))
}
