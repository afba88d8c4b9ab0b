package board

import "testing"

func TestShiftDropsAtEdges(t *testing.T) {
	topLeft := Singleton(NewPos(0, 0))
	if !topLeft.ShiftUp().IsEmpty() {
		t.Errorf("ShiftUp from row 0 should drop off the board")
	}
	if !topLeft.ShiftLeft().IsEmpty() {
		t.Errorf("ShiftLeft from col 0 should drop off the board")
	}

	bottomRight := Singleton(NewPos(Width-1, Height-1))
	if !bottomRight.ShiftDown().IsEmpty() {
		t.Errorf("ShiftDown from last row should drop off the board")
	}
	if !bottomRight.ShiftRight().IsEmpty() {
		t.Errorf("ShiftRight from last col should drop off the board")
	}
}

func TestShiftMovesOneCell(t *testing.T) {
	p := NewPos(5, 3)
	b := Singleton(p)

	if got := b.ShiftRight().FirstCellPosition(); got != NewPos(6, 3) {
		t.Errorf("ShiftRight = %v, want %v", got, NewPos(6, 3))
	}
	if got := b.ShiftLeft().FirstCellPosition(); got != NewPos(4, 3) {
		t.Errorf("ShiftLeft = %v, want %v", got, NewPos(4, 3))
	}
	if got := b.ShiftUp().FirstCellPosition(); got != NewPos(5, 2) {
		t.Errorf("ShiftUp = %v, want %v", got, NewPos(5, 2))
	}
	if got := b.ShiftDown().FirstCellPosition(); got != NewPos(5, 4) {
		t.Errorf("ShiftDown = %v, want %v", got, NewPos(5, 4))
	}
}

func TestShiftNoRowWraparound(t *testing.T) {
	// A stone at the right edge of one row must not reappear at the left
	// edge of the next row after ShiftRight (the classic "file H wraps to
	// file A" bug).
	p := NewPos(Width-1, 2)
	b := Singleton(p)
	if !b.ShiftRight().IsEmpty() {
		t.Errorf("ShiftRight from the last column must drop, not wrap")
	}

	left := Singleton(NewPos(0, 2))
	if !left.ShiftLeft().IsEmpty() {
		t.Errorf("ShiftLeft from the first column must drop, not wrap")
	}
}

func TestExpandOneIsSuperset(t *testing.T) {
	x := Singleton(NewPos(4, 4)).Or(Singleton(NewPos(10, 1)))
	ex := x.ExpandOne()
	if !ex.And(x).Equal(x) {
		t.Errorf("expand_one(x) must be a superset of x")
	}
}

func TestInteriorIsSubset(t *testing.T) {
	x := Universe.AndNot(Singleton(NewPos(3, 3)))
	interior := x.Interior()
	if !x.And(interior).Equal(interior) {
		t.Errorf("interior(x) must be a subset of x")
	}
}

func TestInteriorTreatsEdgeAsIn(t *testing.T) {
	corner := NewPos(0, 0)
	x := Universe
	if !x.Interior().IsSet(corner) {
		t.Errorf("a corner of the full universe should be interior: off-grid neighbors count as in")
	}
}

func TestFloodFillIdempotent(t *testing.T) {
	seed := Singleton(NewPos(0, 0))
	mask := Universe
	once := seed.FloodFill(mask)
	twice := once.FloodFill(mask)
	if !once.Equal(twice) {
		t.Errorf("flood_fill should be idempotent")
	}
}

func TestFloodFillStaysWithinMask(t *testing.T) {
	mask := BitBoard{}
	for col := 0; col < 3; col++ {
		mask = mask.Set(NewPos(col, 0))
	}
	seed := Singleton(NewPos(0, 0))
	filled := seed.FloodFill(mask)
	if !filled.Equal(mask) {
		t.Errorf("flood_fill should reach every cell of a connected mask")
	}
	if filled.IsSet(NewPos(3, 0)) {
		t.Errorf("flood_fill must not escape the mask")
	}
}

func TestGroupsPartition(t *testing.T) {
	x := Singleton(NewPos(0, 0)).
		Or(Singleton(NewPos(1, 0))).
		Or(Singleton(NewPos(10, 5)))

	groups := x.Groups()
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	union := EmptyBB
	for _, g := range groups {
		union = union.Or(g)
	}
	if !union.Equal(x) {
		t.Errorf("groups must union back to the original set")
	}

	// Disjointness.
	for i := range groups {
		for j := range groups {
			if i == j {
				continue
			}
			if !groups[i].And(groups[j]).IsEmpty() {
				t.Errorf("groups %d and %d overlap", i, j)
			}
		}
	}
}

func TestSingletonsIsSubsetAndCorrect(t *testing.T) {
	pair := Singleton(NewPos(2, 2)).Or(Singleton(NewPos(3, 2)))
	lone := Singleton(NewPos(10, 5))
	x := pair.Or(lone)

	singles := x.Singletons()
	if !x.And(singles).Equal(singles) {
		t.Errorf("singletons(x) must be a subset of x")
	}
	if !singles.Equal(lone) {
		t.Errorf("singletons = %v, want only the isolated stone", singles)
	}
}

func TestCountIsAdditive(t *testing.T) {
	x := Singleton(NewPos(0, 0)).Or(Singleton(NewPos(1, 1)))
	y := Singleton(NewPos(1, 1)).Or(Singleton(NewPos(2, 2)))

	got := x.Or(y).Count() + x.And(y).Count()
	want := x.Count() + y.Count()
	if got != want {
		t.Errorf("count(x|y)+count(x&y) = %d, want %d", got, want)
	}
}

func TestFirstCellPositionIsRowMajor(t *testing.T) {
	x := Singleton(NewPos(5, 2)).Or(Singleton(NewPos(1, 2))).Or(Singleton(NewPos(9, 0)))
	if got := x.FirstCellPosition(); got != NewPos(9, 0) {
		t.Errorf("FirstCellPosition = %v, want the smallest row first", got)
	}
}

func TestBorderPlusInteriorIsWhole(t *testing.T) {
	x := EmptyBB
	for c := 2; c < 7; c++ {
		for r := 1; r < 5; r++ {
			x = x.Set(NewPos(c, r))
		}
	}
	if !x.Border().Or(x.Interior()).Equal(x) {
		t.Errorf("border and interior must partition the set")
	}
	if !x.Border().And(x.Interior()).IsEmpty() {
		t.Errorf("border and interior must not overlap")
	}
}
