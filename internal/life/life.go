// Package life implements Benson's unconditional-life test: the set of a
// color's stones that cannot be captured by any sequence of opponent
// moves, used by the terminal oracle as an early, exact win predicate.
package life

import "github.com/cameron-martin/tsumego-solver/internal/board"

// UnconditionallyAlive returns the subset of color's stones that are
// Benson-unconditionally-alive on b.
//
// The algorithm (Benson 1976): a region enclosed only by color and with no
// interior empty cell is "small". A block (maximal group of color) is
// healthy for a small region if every empty cell of that region is
// adjacent to the block. A block survives only if it has at least two
// distinct healthy regions; regions that no longer touch any surviving
// block are dropped. Iterate to a fixed point.
func UnconditionallyAlive(b board.Board, color board.Color) board.BitBoard {
	stones := b.Stones(color)
	if stones.IsEmpty() {
		return board.EmptyBB
	}

	emptyCells := b.EmptyCells()
	regionsAll := stones.Not()

	// A region is "small" (X-enclosed) if it has no interior empty cell:
	// flood-filling from every interior-empty seed, within the regions
	// mask, reaches an entire component exactly when that component has
	// such a cell, because components of regionsAll never touch.
	regionsWithEmptyInteriors := regionsAll.Interior().And(emptyCells).FloodFill(regionsAll)
	smallEnclosed := regionsAll.AndNot(regionsWithEmptyInteriors)

	blocks := stones.Groups()
	blocksAlive := make([]bool, len(blocks))
	for i := range blocksAlive {
		blocksAlive[i] = true
	}

	regions := smallEnclosed.Groups()
	regionsAlive := make([]bool, len(regions))
	for i := range regionsAlive {
		regionsAlive[i] = true
	}

	for {
		changed := false
		for i, blk := range blocks {
			if !blocksAlive[i] {
				continue
			}
			ext := blk.ImmediateExterior()
			healthy := 0
			for j, r := range regions {
				if !regionsAlive[j] {
					continue
				}
				unreachableEmpties := r.And(emptyCells).AndNot(ext)
				if unreachableEmpties.IsEmpty() {
					healthy++
				}
			}
			if healthy < 2 {
				blocksAlive[i] = false
				changed = true
			}
		}
		if !changed {
			break
		}
		for j, r := range regions {
			if !regionsAlive[j] {
				continue
			}
			touchesSurvivor := false
			for i, blk := range blocks {
				if !blocksAlive[i] {
					continue
				}
				if !blk.ImmediateExterior().And(r).IsEmpty() {
					touchesSurvivor = true
					break
				}
			}
			if !touchesSurvivor {
				regionsAlive[j] = false
			}
		}
	}

	result := board.EmptyBB
	for i, blk := range blocks {
		if blocksAlive[i] {
			result = result.Or(blk)
		}
	}
	return result
}
