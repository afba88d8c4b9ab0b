// Package validator solves a candidate board from both sides to keep
// only puzzles with a determinate, non-trivial outcome regardless of who
// moves first.
package validator

import (
	"context"
	"math/rand"
	"time"

	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/game"
	"github.com/cameron-martin/tsumego-solver/internal/generator"
	"github.com/cameron-martin/tsumego-solver/internal/ranker"
	"github.com/cameron-martin/tsumego-solver/internal/solver"
)

// Puzzle is (game, player, attacker): player is whoever is to move when
// the puzzle is created, attacker is whichever color encloses the other
// from the out-of-bounds boundary.
type Puzzle struct {
	Game     game.Game
	Player   board.Color
	Attacker board.Color
}

// NewPuzzle builds a Puzzle from a Game, deriving its attacker.
func NewPuzzle(g game.Game) Puzzle {
	return Puzzle{Game: g, Player: g.ToMove, Attacker: computeAttacker(g.Board)}
}

// computeAttacker returns White if white stones touch the out-of-bounds
// boundary, else Black.
func computeAttacker(b board.Board) board.Color {
	oobNeighborhood := b.OutOfBounds().ExpandOne()
	if !b.Stones(board.White).And(oobNeighborhood).IsEmpty() {
		return board.White
	}
	return board.Black
}

// Validate solves candidate from both White-to-move and Black-to-move,
// accepting only when both sides to move win -- guaranteeing a non-trivial
// tactical answer regardless of who starts.
func Validate(candidate board.Board, timeout time.Duration, rk ranker.MoveRanker) (white, black *solver.Solution, ok bool) {
	if candidate.HasDeadGroups() {
		return nil, nil, false
	}
	attacker := computeAttacker(candidate)
	session := solver.NewSession(rk)

	whiteGame := game.New(candidate, board.White)
	whiteSol := solveWithTimeout(session, &whiteGame, attacker, timeout)
	if whiteSol == nil || !whiteSol.Won {
		return nil, nil, false
	}

	session.Reset()
	blackGame := game.New(candidate, board.Black)
	blackSol := solveWithTimeout(session, &blackGame, attacker, timeout)
	if blackSol == nil || !blackSol.Won {
		return nil, nil, false
	}

	return whiteSol, blackSol, true
}

func solveWithTimeout(session *solver.Session, g *game.Game, attacker board.Color, timeout time.Duration) *solver.Solution {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return session.Solve(g, attacker, solver.NewDeadlineController(ctx))
}

// PuzzleSink receives a validated candidate and the solutions that
// justified its acceptance. Implementations (e.g. internal/store) decide
// how and where to persist it; the core never touches disk.
type PuzzleSink interface {
	Accept(candidate board.Board, white, black *solver.Solution) error
}

// GeneratePuzzles repeatedly generates and validates candidates, emitting
// accepted ones to sink, until stop is closed. There is no success
// guarantee in bounded time; the caller coordinates termination.
func GeneratePuzzles(rng *rand.Rand, timeout time.Duration, rk ranker.MoveRanker, sink PuzzleSink, stop <-chan struct{}) error {
	for {
		select {
		case <-stop:
			return nil
		default:
		}

		candidate := generator.GenerateCandidate(rng)
		white, black, ok := Validate(candidate, timeout, rk)
		if !ok {
			continue
		}
		if err := sink.Accept(candidate, white, black); err != nil {
			return err
		}
	}
}
