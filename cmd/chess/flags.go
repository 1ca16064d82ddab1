// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessboard-go/internal/config"
)

var (
	// Game setup
	startFEN = flag.String("fen", "", "Start from this FEN position (default: standard start)")

	// Interface
	interactive = flag.Bool("i", false, "Play on an interactive terminal board (mouse selection)")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("J", false, "Write a JSON summary when the game ends")
	unicodeOut  = flag.Bool("u", false, "Draw pieces with chess glyphs")
	noCoords    = flag.Bool("nocoords", false, "Don't print rank and file labels")
	noBoardEach = flag.Bool("noboard", false, "Don't print the board after every move")

	// Move generator check
	perftDepth = flag.Int("perft", 0, "Count the move tree to this depth from the start position and exit")
	workers    = flag.Int("workers", 0, "Number of worker goroutines for -perft (0 = auto-detect based on CPU cores)")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	verbosity = flag.Int("v", config.Results, "Verbosity: 0 silent, 1 results and rejected moves, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags onto cfg.
func applyFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.Interactive = *interactive
	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = config.Silent
	}
	applyOutputFlags(cfg.Output)
}

// applyOutputFlags copies the rendering flags onto the output settings.
func applyOutputFlags(out *config.OutputConfig) {
	out.JSONSummary = *jsonOutput
	out.Unicode = *unicodeOut
	out.ShowCoordinates = !*noCoords
	out.ShowBoardEachMove = !*noBoardEach
}
