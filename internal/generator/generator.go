// Package generator sculpts random candidate boards for the puzzle
// validator: a random-walk playable region, an attacker-owned boundary,
// and randomly placed stones.
package generator

import (
	"math/rand"

	"github.com/cameron-martin/tsumego-solver/internal/board"
)

type direction int

const (
	dirUp direction = iota
	dirDown
	dirLeft
	dirRight
)

// shiftTowards extends x by one cell in dir, as a whole bitboard shift.
func shiftTowards(x board.BitBoard, dir direction) board.BitBoard {
	switch dir {
	case dirUp:
		return x.ShiftUp()
	case dirDown:
		return x.ShiftDown()
	case dirLeft:
		return x.ShiftLeft()
	default:
		return x.ShiftRight()
	}
}

// oppositeEdge returns the edge a region must not already touch for dir
// to remain allowed: growing towards dir while already touching the edge
// behind it risks spanning the whole board.
func oppositeEdge(dir direction) board.BitBoard {
	switch dir {
	case dirUp:
		return board.BottomEdge
	case dirDown:
		return board.TopEdge
	case dirLeft:
		return board.RightEdge
	default:
		return board.LeftEdge
	}
}

// diagonalExpand returns x's four diagonal neighbors, unioned in; C1 only
// defines orthogonal expand_one, so the generator's boundary (which must
// include diagonals) builds this itself.
func diagonalExpand(x board.BitBoard) board.BitBoard {
	return x.ShiftUp().ShiftLeft().
		Or(x.ShiftUp().ShiftRight()).
		Or(x.ShiftDown().ShiftLeft()).
		Or(x.ShiftDown().ShiftRight())
}

// sculptRegion grows a connected playable region by a weighted random
// walk, then fills any fully enclosed holes.
func sculptRegion(rng *rand.Rand, seed board.Pos) board.BitBoard {
	region := board.Singleton(seed)
	steps := 10 + rng.Intn(21) // uniform in [10, 30]

	for i := 0; i < steps; i++ {
		type candidate struct {
			dir    direction
			cells  board.BitBoard
			weight int
		}
		var candidates []candidate
		total := 0
		for _, dir := range []direction{dirUp, dirDown, dirLeft, dirRight} {
			if !region.And(oppositeEdge(dir)).IsEmpty() {
				continue
			}
			cells := shiftTowards(region, dir).AndNot(region)
			w := cells.Count()
			if w == 0 {
				continue
			}
			candidates = append(candidates, candidate{dir: dir, cells: cells, weight: w})
			total += w
		}
		if total == 0 {
			break
		}

		pick := rng.Intn(total)
		var chosen board.BitBoard
		for _, c := range candidates {
			if pick < c.weight {
				chosen = c.cells
				break
			}
			pick -= c.weight
		}
		region = region.Or(chosen)
	}

	return fillHoles(region)
}

// fillHoles replaces region with the complement of the largest component
// of its complement: whichever component is the true exterior survives,
// and every smaller, fully enclosed hole gets absorbed into the region.
func fillHoles(region board.BitBoard) board.BitBoard {
	groups := region.Not().Groups()
	var exterior board.BitBoard
	best := -1
	for _, g := range groups {
		if c := g.Count(); c > best {
			best = c
			exterior = g
		}
	}
	return exterior.Not()
}

// GenerateCandidate builds one random candidate board: a sculpted
// playable region, an attacker-owned boundary, and coin-flip stones.
func GenerateCandidate(rng *rand.Rand) board.Board {
	seed := board.NewPos(rng.Intn(board.Width), rng.Intn(board.Height))
	region := sculptRegion(rng, seed)
	boundary := region.ExpandOne().Or(diagonalExpand(region)).AndNot(region)
	oob := region.Or(boundary).Not()

	var black, white board.BitBoard
	for _, pos := range region.Positions() {
		if rng.Intn(2) != 0 {
			continue
		}
		if rng.Intn(2) == 0 {
			black = black.Set(pos)
		} else {
			white = white.Set(pos)
		}
	}

	if rng.Intn(2) == 0 {
		black = black.Or(boundary)
	} else {
		white = white.Or(boundary)
	}

	return board.New(black, white, oob)
}
