// Package terminal implements the solver's terminal predicate: the
// combination of the double-pass rule, Benson unconditional life, and a
// dead-shape test that together bound an otherwise unbounded search tree.
package terminal

import (
	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/game"
	"github.com/cameron-martin/tsumego-solver/internal/life"
)

// IsTerminal reports, from the perspective of g.ToMove, whether the
// position is decided. ok is false when the position is non-terminal.
func IsTerminal(g *game.Game, attacker board.Color) (won bool, ok bool) {
	defender := attacker.Opposite()
	player := g.ToMove

	if g.PassState == game.PassedTwice {
		defenderHasStones := !g.Board.Stones(defender).IsEmpty()
		return defenderHasStones == (player == defender), true
	}
	if !life.UnconditionallyAlive(g.Board, defender).IsEmpty() {
		return player == defender, true
	}
	if !canDefenderLive(g.Board, attacker) {
		return player == attacker, true
	}
	return false, false
}

// canDefenderLive is the dead-shape predicate: the
// defender needs a living shape containing two non-adjacent interior
// empties, clear of any attacker stone that cannot itself be killed.
func canDefenderLive(b board.Board, attacker board.Color) bool {
	oob := b.OutOfBounds()
	stonesAttacker := b.Stones(attacker)
	safeAttacker := oob.ExpandOne().And(stonesAttacker).FloodFill(stonesAttacker)
	maxLivingShape := safeAttacker.Not().And(oob.Not())

	interior := maxLivingShape.Interior()
	switch interior.Count() {
	case 0, 1:
		return false
	case 2:
		return !interior.Singletons().IsEmpty()
	default:
		return true
	}
}
