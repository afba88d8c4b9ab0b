package board

// Board holds two BitBoards, black and white. Their intersection is
// reserved and means out-of-bounds: a cell that is neither color's stone
// and is never playable. Board is a value type; every mutating-looking
// operation returns a new Board.
type Board struct {
	black, white BitBoard
}

// New builds a Board from three pairwise-disjoint sets: the black stones,
// the white stones, and the out-of-bounds cells.
func New(black, white, oob BitBoard) Board {
	return Board{
		black: black.Or(oob),
		white: white.Or(oob),
	}
}

// EmptyBoard returns a Board with no stones and no out-of-bounds cells.
func EmptyBoard() Board {
	return Board{}
}

// GetCell reports the occupant of pos.
func (b Board) GetCell(pos Pos) Cell {
	inBlack := b.black.IsSet(pos)
	inWhite := b.white.IsSet(pos)
	switch {
	case inBlack && inWhite:
		return OutOfBounds
	case inBlack:
		return CellBlack
	case inWhite:
		return CellWhite
	default:
		return Empty
	}
}

// SetCell assigns the occupant of pos, preserving every other cell.
func (b Board) SetCell(pos Pos, cell Cell) Board {
	single := Singleton(pos)
	black := b.black.AndNot(single)
	white := b.white.AndNot(single)
	switch cell {
	case CellBlack:
		black = black.Or(single)
	case CellWhite:
		white = white.Or(single)
	case OutOfBounds:
		black = black.Or(single)
		white = white.Or(single)
	}
	return Board{black: black, white: white}
}

// Stones returns the stones of the given color (excluding out-of-bounds).
func (b Board) Stones(c Color) BitBoard {
	if c == Black {
		return b.black.AndNot(b.white)
	}
	return b.white.AndNot(b.black)
}

// EmptyCells returns ¬(black △ white): every cell that is neither a
// single-colored stone nor out-of-bounds is empty. Out-of-bounds cells are
// members of black △ white's complement too, since black and white both
// contain them (their XOR there is 0) -- callers that need strictly
// playable empties should intersect with ¬OutOfBounds().
func (b Board) EmptyCells() BitBoard {
	return b.black.Xor(b.white).Not()
}

// OutOfBounds returns black ∩ white.
func (b Board) OutOfBounds() BitBoard {
	return b.black.And(b.white)
}

// SetOutOfBounds rewrites the out-of-bounds overlap, preserving each
// color's single-colored stones.
func (b Board) SetOutOfBounds(oob BitBoard) Board {
	blackStones := b.Stones(Black)
	whiteStones := b.Stones(White)
	return Board{
		black: blackStones.Or(oob),
		white: whiteStones.Or(oob),
	}
}

// InvertColors swaps the two colors' stones. Out-of-bounds cells live in
// both bitboards, so the swap leaves them where they are.
func (b Board) InvertColors() Board {
	return Board{black: b.white, white: b.black}
}

// colorAt returns the color of the stone at pos. Callers must ensure pos
// holds a stone.
func (b Board) colorAt(pos Pos) Color {
	if b.black.IsSet(pos) && !b.white.IsSet(pos) {
		return Black
	}
	return White
}

// GroupHasLiberties reports whether the maximal group of stones containing
// pos has at least one in-bounds empty cell adjacent to it.
func (b Board) GroupHasLiberties(pos Pos) bool {
	color := b.colorAt(pos)
	group := Singleton(pos).FloodFill(b.Stones(color))
	liberties := group.ExpandOne().And(b.EmptyCells()).AndNot(b.OutOfBounds())
	return !liberties.IsEmpty()
}

// aliveStones computes the stones of color reachable by flood fill from
// the frontier adjacent to any cell of EmptyCells. Because EmptyCells
// includes out-of-bounds cells, a group survives if it touches an in-bounds
// empty cell or an out-of-bounds cell.
func (b Board) aliveStones(color Color) BitBoard {
	stones := b.Stones(color)
	frontier := b.EmptyCells().ExpandOne().And(stones)
	return frontier.FloodFill(stones)
}

// RemoveDeadGroupsForPlayer erases every maximal group of color that has no
// liberty and does not touch an out-of-bounds cell, replacing that color's
// stones with only the surviving groups.
func (b Board) RemoveDeadGroupsForPlayer(color Color) Board {
	alive := b.aliveStones(color)
	oob := b.OutOfBounds()
	if color == Black {
		return Board{black: alive.Or(oob), white: b.white}
	}
	return Board{black: b.black, white: alive.Or(oob)}
}

// HasDeadGroups reports whether either color has a group still on the
// board that RemoveDeadGroupsForPlayer would erase.
func (b Board) HasDeadGroups() bool {
	for _, c := range [...]Color{Black, White} {
		if !b.aliveStones(c).Equal(b.Stones(c)) {
			return true
		}
	}
	return false
}

// StableHash returns a deterministic 64-bit hash of the board, used to
// name generated SGF files and to dedup generated candidates. It is the
// Zobrist sum of every non-empty cell (stones and out-of-bounds).
func (b Board) StableHash() uint64 {
	var h uint64
	for _, pos := range b.black.Or(b.white).Positions() {
		h ^= zobristCell(b.GetCell(pos), pos)
	}
	return h
}
