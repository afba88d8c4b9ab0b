package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/examples"
	"github.com/cameron-martin/tsumego-solver/internal/game"
	"github.com/cameron-martin/tsumego-solver/internal/generator"
	"github.com/cameron-martin/tsumego-solver/internal/ranker"
	"github.com/cameron-martin/tsumego-solver/internal/solver"
	"github.com/cameron-martin/tsumego-solver/internal/store"
	"github.com/cameron-martin/tsumego-solver/internal/validator"
)

// accepted carries one validated puzzle from a worker to the writer.
type accepted struct {
	candidate board.Board
	white     *solver.Solution
	black     *solver.Solution
}

// runGenerate spawns worker goroutines that each generate and validate
// candidates with their own RNG and ranker, funneling accepted puzzles to
// a single writer so every sink write is serialized.
func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	out := fs.String("out", "generated_puzzles", "directory to write the generated puzzles to")
	threads := fs.Int("threads", 8, "number of generation workers")
	timeout := fs.Duration("timeout", time.Second, "solve budget per candidate and side")
	seed := fs.Int64("seed", time.Now().UnixNano(), "base RNG seed; each worker derives its own")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := os.MkdirAll(*out, 0755); err != nil {
		return err
	}
	st, err := store.Open(filepath.Join(*out, "db"), *out)
	if err != nil {
		return err
	}
	defer st.Close()

	examplesFile, err := os.OpenFile(filepath.Join(*out, "examples.bin"),
		os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer examplesFile.Close()
	exampleSink := examples.NewFileSink(examplesFile, 1)

	stop := make(chan struct{})
	puzzles := make(chan accepted)
	var rejected atomic.Int64

	var wg sync.WaitGroup
	for i := 0; i < *threads; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(*seed + int64(id)))
			rk := ranker.NewRandomRanker(*seed ^ int64(id+1)<<32)
			for {
				select {
				case <-stop:
					return
				default:
				}

				candidate := generator.GenerateCandidate(rng)
				white, black, ok := validator.Validate(candidate, *timeout, rk)
				if !ok {
					rejected.Add(1)
					continue
				}
				select {
				case puzzles <- accepted{candidate: candidate, white: white, black: black}:
				case <-stop:
					return
				}
			}
		}(i)
	}

	writerDone := make(chan error, 1)
	go func() {
		writerDone <- writePuzzles(puzzles, st, exampleSink, &rejected)
	}()

	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	select {
	case <-interrupts:
		log.Printf("interrupted, stopping %d workers", *threads)
	case err := <-writerDone:
		close(stop)
		wg.Wait()
		return err
	}

	close(stop)
	wg.Wait()
	close(puzzles)
	return <-writerDone
}

// writePuzzles is the single writer: it persists each accepted puzzle,
// folds the workers' rejection counts into the stored stats, and emits
// training examples along both winning lines.
func writePuzzles(puzzles <-chan accepted, st *store.Store, sink examples.Sink, rejected *atomic.Int64) error {
	for p := range puzzles {
		if err := st.Accept(p.candidate, p.white, p.black); err != nil {
			return err
		}
		if err := st.RecordRejections(int(rejected.Swap(0))); err != nil {
			return err
		}
		if err := collectLine(sink, game.New(p.candidate, board.White), p.white); err != nil {
			return err
		}
		if err := collectLine(sink, game.New(p.candidate, board.Black), p.black); err != nil {
			return err
		}

		stats, err := st.LoadStats()
		if err != nil {
			return err
		}
		log.Printf("accepted %016x (%d accepted, %d duplicates, %d rejected)",
			p.candidate.StableHash(), stats.Accepted, stats.Duplicates, stats.Rejected)
	}
	return nil
}

// collectLine emits one example per position along a solved line. Under
// perfect play every position on the line is won by the color that wins
// at its root, so the winner is fixed once per line.
func collectLine(sink examples.Sink, root game.Game, sol *solver.Solution) error {
	winner := root.ToMove
	if !sol.Won {
		winner = winner.Opposite()
	}

	g := root
	if err := sink.Collect(g, winner); err != nil {
		return err
	}
	for _, mv := range sol.PV {
		next, err := g.PlayMove(mv)
		if err != nil {
			return err
		}
		g = next
		if err := sink.Collect(g, winner); err != nil {
			return err
		}
	}
	return nil
}
