package solver

import (
	"github.com/cameron-martin/tsumego-solver/internal/board"
	"github.com/cameron-martin/tsumego-solver/internal/game"
	"github.com/cameron-martin/tsumego-solver/internal/life"
	"github.com/cameron-martin/tsumego-solver/internal/terminal"
)

// Solve runs iterative deepening from root, stopping as soon as an
// iteration's root value is decisive (±1), or when abort fires. Returns
// nil if the search is aborted before a decisive depth is reached.
func (s *Session) Solve(root *game.Game, attacker board.Color, abort AbortController) *Solution {
	rootKey := keyOf(*root)
	s.ancestors[rootKey] = true
	defer delete(s.ancestors, rootKey)

	for depth := 1; depth < maxPly; depth++ {
		s.pv.length[0] = 0
		value, aborted := s.negamax(*root, -1, 1, depth, attacker, abort, 0)
		if aborted {
			return nil
		}
		if value != 0 {
			length := s.pv.length[0]
			pv := make([]game.Move, length)
			copy(pv, s.pv.moves[0][:length])
			if depth > s.stats.MaxDepthReached {
				s.stats.MaxDepthReached = depth
			}
			return &Solution{Won: value == 1, PV: pv}
		}
		if depth > s.stats.MaxDepthReached {
			s.stats.MaxDepthReached = depth
		}
	}
	return nil
}

// negamax evaluates node from its side-to-move's perspective to a
// depth-limited horizon. ply is both the recursion depth and the PV
// triangular-buffer index. It returns (value, aborted).
func (s *Session) negamax(node game.Game, alpha, beta, maxDepth int, attacker board.Color, abort AbortController, ply int) (int, bool) {
	s.stats.Nodes++
	if abort.ShouldAbort() {
		return 0, true
	}
	s.pv.length[ply] = ply

	if won, ok := terminal.IsTerminal(&node, attacker); ok {
		s.countTerminal(node, attacker)
		if won {
			return 1, false
		}
		return -1, false
	}
	if ply == maxDepth {
		return 0, false
	}

	// best starts below every real value so the first child searched always
	// seeds this ply's PV: a losing node still records the line it loses on.
	best := -2
	for _, child := range s.ranker.Successors(&node) {
		ck := keyOf(child.Game)
		if s.ancestors[ck] {
			s.stats.AncestorHits++
			continue
		}
		s.ancestors[ck] = true
		t, aborted := s.negamax(child.Game, -beta, -alpha, maxDepth, attacker, abort, ply+1)
		delete(s.ancestors, ck)
		if aborted {
			return 0, true
		}
		t = -t

		if t > best {
			best = t
			s.pv.moves[ply][ply] = child.Move
			for j := ply + 1; j < s.pv.length[ply+1]; j++ {
				s.pv.moves[ply][j] = s.pv.moves[ply+1][j]
			}
			s.pv.length[ply] = s.pv.length[ply+1]
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	if best < -1 {
		return -1, false
	}
	return best, false
}

// countTerminal classifies a terminal node for Stats, re-deriving which
// branch of IsTerminal fired. The breakdown by kind is instrumentation
// only, so the terminal package keeps its two-value contract.
func (s *Session) countTerminal(node game.Game, attacker board.Color) {
	if node.PassState == game.PassedTwice {
		s.stats.TerminalDoublePass++
		return
	}
	if !life.UnconditionallyAlive(node.Board, attacker.Opposite()).IsEmpty() {
		s.stats.TerminalBensonAlive++
		return
	}
	s.stats.TerminalDeadShape++
}
