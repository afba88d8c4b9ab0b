package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/examples"
	"github.com/cameron-martin/tsumego-solver/internal/ranker"
	"github.com/cameron-martin/tsumego-solver/internal/sgf"
	"github.com/cameron-martin/tsumego-solver/internal/solver"
	"github.com/cameron-martin/tsumego-solver/internal/validator"
)

// runSolve re-solves every SGF file in a directory from both sides,
// appending training examples for each winning line.
func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	dir := fs.String("dir", "generated_puzzles", "directory the puzzle SGF files are in")
	timeout := fs.Duration("timeout", 0, "per-solve budget (0 means unlimited)")
	sample := fs.Uint("sample", 1, "keep one example record in every n offered")
	if err := fs.Parse(args); err != nil {
		return err
	}

	entries, err := os.ReadDir(*dir)
	if err != nil {
		return err
	}

	examplesFile, err := os.OpenFile(filepath.Join(*dir, "examples.bin"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer examplesFile.Close()
	sink := examples.NewFileSink(examplesFile, uint32(*sample))

	session := solver.NewSession(ranker.LinearRanker{})
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sgf" {
			continue
		}
		path := filepath.Join(*dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		for _, player := range [...]board.Color{board.White, board.Black} {
			g, err := sgf.Load(string(data), player)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			puzzle := validator.NewPuzzle(g)

			budget := solver.StartBudget(*timeout)
			session.Reset()
			sol := session.Solve(&puzzle.Game, puzzle.Attacker, budget)
			if sol == nil {
				log.Printf("%s (%v to move): aborted after %v", entry.Name(), player, budget.Elapsed())
				continue
			}

			stats := session.Stats()
			log.Printf("%s (%v to move): won=%v depth=%d nodes=%d (%d nps)",
				entry.Name(), player, sol.Won, stats.MaxDepthReached, stats.Nodes,
				budget.NodesPerSecond(stats.Nodes))

			if err := collectLine(sink, puzzle.Game, sol); err != nil {
				return err
			}
		}
	}
	return nil
}
