package main

import (
	"fmt"
	"time"

	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/perft"
)

// runPerft prints the node count below each root move and the total.
func runPerft(cfg *config.Config, g *engine.Game, depth, workers int) error {
	start := time.Now()
	splits, err := perft.Divide(g, depth, workers)
	if err != nil {
		return err
	}
	for _, s := range splits {
		if _, err := fmt.Fprintf(cfg.OutputFile, "%s: %d\n", s.Move, s.Nodes); err != nil {
			return err
		}
	}
	total := perft.Total(splits)
	if _, err := fmt.Fprintf(cfg.OutputFile, "\nNodes searched: %d\n", total); err != nil {
		return err
	}
	cfg.Logf(config.Results, "perft %d: %d nodes in %v using %d workers\n", depth, total, time.Since(start).Round(time.Millisecond), workers)
	return nil
}
