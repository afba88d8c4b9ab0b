// Package game implements the Go position state machine: legal move
// application, capture, suicide and single-point ko, and successor
// generation, over the board package's rules primitives.
package game

import (
	"errors"

	"github.com/cameron-martin/tsumego-solver/internal/board"
)

// MoveError kinds, compared with errors.Is.
var (
	ErrOccupied    = errors.New("game: target cell is occupied")
	ErrOutOfBounds = errors.New("game: target cell is out of bounds")
	ErrOutOfTurn   = errors.New("game: move made by the wrong color")
	ErrSuicidal    = errors.New("game: move leaves its own group with no liberties")
	ErrKo          = errors.New("game: move retakes a ko point")

	// ErrGameOver is returned by PlayMove once the game has already
	// ended on two passes.
	ErrGameOver = errors.New("game: no moves are legal, the game has ended")
)

// Game is (board, current_player, ko_violations, pass_state). All fields
// are immutable; every transition returns a new Game.
type Game struct {
	Board        board.Board
	ToMove       board.Color
	KoViolations board.BitBoard
	PassState    PassState
}

// New starts a game from a board with toMove to play first.
func New(b board.Board, toMove board.Color) Game {
	return Game{Board: b, ToMove: toMove, KoViolations: board.EmptyBB, PassState: NotPassed}
}

// Finished reports whether the game has ended (two consecutive passes).
func (g Game) Finished() bool {
	return g.PassState == PassedTwice
}

// Child is one successor of GenerateMoves: the move played and the
// resulting Game.
type Child struct {
	Game Game
	Move Move
}

// PlayMove applies m for the current player.
func (g Game) PlayMove(m Move) (Game, error) {
	if g.Finished() {
		return Game{}, ErrGameOver
	}
	if m.Kind == Pass {
		return g.playPass(), nil
	}
	return g.playPlace(m.Pos)
}

// PlayMoveForPlayer applies m only if who matches the side to move.
func (g Game) PlayMoveForPlayer(m Move, who board.Color) (Game, error) {
	if who != g.ToMove {
		return Game{}, ErrOutOfTurn
	}
	return g.PlayMove(m)
}

func (g Game) playPass() Game {
	next := PassedTwice
	if g.PassState == NotPassed {
		next = PassedOnce
	}
	return Game{
		Board:        g.Board,
		ToMove:       g.ToMove.Opposite(),
		KoViolations: board.EmptyBB,
		PassState:    next,
	}
}

// playPlace checks out-of-bounds before occupied: an out-of-bounds cell's
// get_cell is never Empty, so checking occupied first would misreport an
// out-of-bounds play as Occupied.
func (g Game) playPlace(pos board.Pos) (Game, error) {
	if g.Board.OutOfBounds().IsSet(pos) {
		return Game{}, ErrOutOfBounds
	}
	if g.Board.GetCell(pos) != board.Empty {
		return Game{}, ErrOccupied
	}

	opp := g.ToMove.Opposite()
	touchesFriendly := !board.Singleton(pos).ImmediateExterior().
		And(g.Board.Stones(g.ToMove)).IsEmpty()
	oppBefore := g.Board.Stones(opp)

	placed := g.Board.SetCell(pos, board.ColorCell(g.ToMove))
	cleaned := placed.RemoveDeadGroupsForPlayer(opp)

	if !cleaned.GroupHasLiberties(pos) {
		return Game{}, ErrSuicidal
	}
	if g.KoViolations.IsSet(pos) {
		return Game{}, ErrKo
	}

	var koViolations board.BitBoard
	if !touchesFriendly {
		oppAfter := cleaned.Stones(opp)
		koViolations = oppBefore.AndNot(oppAfter).Singletons()
	}

	return Game{
		Board:        cleaned,
		ToMove:       opp,
		KoViolations: koViolations,
		PassState:    NotPassed,
	}, nil
}

// GenerateMoves yields every legal successor: one Place per empty in-bounds
// cell that survives legality checks, plus an unconditional Pass. Returns
// nil once the game has finished.
func (g Game) GenerateMoves() []Child {
	if g.Finished() {
		return nil
	}

	playable := g.Board.EmptyCells().AndNot(g.Board.OutOfBounds())
	children := make([]Child, 0, playable.Count()+1)
	for _, pos := range playable.Positions() {
		mv := PlaceMove(pos)
		next, err := g.PlayMove(mv)
		if err != nil {
			continue
		}
		children = append(children, Child{Game: next, Move: mv})
	}

	passMove := PassMove()
	passGame, _ := g.PlayMove(passMove)
	children = append(children, Child{Game: passGame, Move: passMove})
	return children
}

// ReplayMoves applies moves in sequence, stopping at the first error.
func (g Game) ReplayMoves(moves []Move) (Game, error) {
	cur := g
	for _, m := range moves {
		next, err := cur.PlayMove(m)
		if err != nil {
			return Game{}, err
		}
		cur = next
	}
	return cur, nil
}
