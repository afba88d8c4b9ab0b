// Package solver implements iterative-deepening negamax with alpha-beta
// pruning over the ternary {-1,0,+1} value set, bounded by the terminal
// oracle and path-local ancestor-set cycle detection.
package solver

import (
	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/game"
	"github.com/cameron-martin/tsumego-solver/internal/ranker"
)

// maxPly generously bounds the recursion depth the PV triangular buffer
// must hold; the ancestor set guarantees the search never actually
// revisits a (board, toMove, passState) triple, so in practice a solve
// terminates long before reaching this.
const maxPly = 200

// Stats accumulates search instrumentation. Nothing in the search
// depends on these values; they are purely additive.
type Stats struct {
	Nodes               int64
	MaxDepthReached     int
	TerminalDoublePass  int64
	TerminalBensonAlive int64
	TerminalDeadShape   int64
	AncestorHits        int64
}

// Solution is the outcome of a solve: whether the root's side to move
// wins, and the principal variation witnessing it.
type Solution struct {
	Won bool
	PV  []game.Move
}

// ancestorKey is the path-dedup key: board position, side to move, and
// pass state. Ko-violations are deliberately excluded -- they are
// side-channel state that can differ between otherwise-equivalent
// subproblems.
type ancestorKey struct {
	hash   uint64
	toMove board.Color
	pass   game.PassState
}

func keyOf(g game.Game) ancestorKey {
	return ancestorKey{hash: g.Board.StableHash(), toMove: g.ToMove, pass: g.PassState}
}

// pvTable is a triangular buffer, sized maxPly*(maxPly+1)/2 in spirit but
// allocated as a square array for simplicity: the valid moves at ply are
// moves[ply][ply:length[ply]], so length[0] is the root PV's length.
type pvTable struct {
	length [maxPly]int
	moves  [maxPly][maxPly]game.Move
}

// Session owns the reusable state across one or more solves: the
// ancestor set, the profiler, and the move ranker. Reusing a Session
// across the two solves a puzzle validation needs avoids reallocating the
// ancestor set for each.
type Session struct {
	ranker    ranker.MoveRanker
	ancestors map[ancestorKey]bool
	stats     Stats
	pv        pvTable
}

// NewSession builds a Session around rk.
func NewSession(rk ranker.MoveRanker) *Session {
	return &Session{ranker: rk, ancestors: make(map[ancestorKey]bool)}
}

// Reset clears the ancestor set and profiler, keeping the ranker, so the
// Session can be reused for an unrelated solve.
func (s *Session) Reset() {
	for k := range s.ancestors {
		delete(s.ancestors, k)
	}
	s.stats = Stats{}
}

// Stats returns a snapshot of the accumulated instrumentation.
func (s *Session) Stats() Stats {
	return s.stats
}
