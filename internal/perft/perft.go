// Package perft counts the leaf nodes of the legal move tree, the standard
// check of a move generator against published totals.
package perft

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chessboard-go/internal/engine"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/worker"
)

// Split is the node count below one root move.
type Split struct {
	Move  string
	Nodes uint64
}

// Count returns the number of move sequences of exactly depth plies from g.
// g is not modified.
func Count(g *engine.Game, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := g.AllLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		child := g.Clone()
		if !child.Apply(m) {
			panic(fmt.Sprintf("perft: generated move %s rejected", m))
		}
		nodes += Count(child, depth-1)
	}
	return nodes
}

// Divide counts the nodes below each root move, expanding the root moves on
// workers goroutines. The splits are sorted by move.
func Divide(g *engine.Game, depth, workers int) ([]Split, error) {
	if depth < 1 {
		return nil, fmt.Errorf("depth %d: %w", depth, errors.ErrInvalidConfig)
	}
	moves := g.AllLegalMoves()

	pool := worker.NewPool(expand, worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()
	for i, m := range moves {
		child := g.Clone()
		if !child.Apply(m) {
			pool.Stop()
			pool.Close()
			return nil, &errors.MoveError{Err: errors.ErrIllegalMove, Ply: g.HistoryLen(), MoveText: m.String()}
		}
		pool.Submit(worker.WorkItem{Game: child, Move: m, Depth: depth - 1, Index: i})
	}
	go pool.Close()

	splits := make([]Split, 0, len(moves))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil && firstErr == nil {
			firstErr = r.Error
		}
		splits = append(splits, Split{Move: r.Move.String(), Nodes: r.Nodes})
	}
	if firstErr != nil {
		return nil, firstErr
	}
	sort.Slice(splits, func(i, j int) bool { return splits[i].Move < splits[j].Move })
	return splits, nil
}

// Total sums the node counts of splits.
func Total(splits []Split) uint64 {
	var n uint64
	for _, s := range splits {
		n += s.Nodes
	}
	return n
}

// expand counts one root move, turning a generator panic into an error.
func expand(item worker.WorkItem) (res worker.ProcessResult) {
	res = worker.ProcessResult{Move: item.Move, Index: item.Index}
	defer func() {
		if r := recover(); r != nil {
			res.Error = fmt.Errorf("perft below %s: %v", item.Move, r)
		}
	}()
	res.Nodes = Count(item.Game, item.Depth)
	return res
}
