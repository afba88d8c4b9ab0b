// Package ranker provides the pluggable move-ordering port the solver
// consults at every node. The solver's correctness does not depend on
// which implementation is wired in.
package ranker

import (
	"math/rand"

	"github.com/cameron-martin/tsumego-solver/internal/game"
)

// MoveRanker orders a Game's legal successors. Successors must return the
// same multiset game.GenerateMoves does, only reordered.
type MoveRanker interface {
	Successors(g *game.Game) []game.Child
}

// LinearRanker returns GenerateMoves' own order, unchanged.
type LinearRanker struct{}

func (LinearRanker) Successors(g *game.Game) []game.Child {
	return g.GenerateMoves()
}

// RandomRanker returns a uniformly shuffled order, using a per-instance
// *rand.Rand so two rankers never share mutable RNG state.
type RandomRanker struct {
	Rand *rand.Rand
}

// NewRandomRanker builds a RandomRanker seeded with seed.
func NewRandomRanker(seed int64) *RandomRanker {
	return &RandomRanker{Rand: rand.New(rand.NewSource(seed))}
}

func (r *RandomRanker) Successors(g *game.Game) []game.Child {
	children := g.GenerateMoves()
	r.Rand.Shuffle(len(children), func(i, j int) {
		children[i], children[j] = children[j], children[i]
	})
	return children
}
