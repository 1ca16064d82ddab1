// chess plays a two-player game of chess from the command line, either by
// reading moves such as "e2e4" and "O-O" line by line or on an interactive
// terminal board.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	game, err := cfg.NewGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *perftDepth > 0 {
		numWorkers := *workers
		if numWorkers <= 0 {
			numWorkers = runtime.NumCPU()
		}
		if err := runPerft(cfg, game, *perftDepth, numWorkers); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if cfg.Interactive {
		err = runTerminal(cfg, game)
	} else {
		err = playLines(os.Stdin, cfg, game)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := output.NewGameWriter(cfg).WriteGame(game); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing game: %v\n", err)
		os.Exit(1)
	}
}

// runTerminal opens the real terminal and runs the interactive board on it.
func runTerminal(cfg *config.Config, game *engine.Game) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := s.Init(); err != nil {
		return err
	}
	defer s.Fini()
	s.EnableMouse()

	return runInteractive(s, cfg, game)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess [options]\n\n")
	fmt.Fprintf(os.Stderr, "Reads moves from standard input: e2e4, e7e8n, O-O, O-O-O.\n")
	fmt.Fprintf(os.Stderr, "Commands: board, moves, fen, resign, help, exit (or end).\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
