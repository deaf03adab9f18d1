package world

import "testing"

func TestDisplayName_Corners(t *testing.T) {
	cases := []struct {
		cell Cell
		want string
	}{
		{Cell{0, 0}, "A1"},
		{Cell{3, 0}, "D1"},
		{Cell{0, 3}, "A4"},
		{Cell{3, 3}, "D4"},
		{Cell{1, 2}, "B3"},
	}
	for _, c := range cases {
		if got := DisplayName(c.cell); got != c.want {
			t.Errorf("DisplayName(%v) = %q, want %q", c.cell, got, c.want)
		}
	}
}

func TestParseDisplayName_RoundTrip(t *testing.T) {
	grid := NewGrid(4)
	grid.ForEachCell(func(c Cell) {
		got, err := ParseDisplayName(DisplayName(c))
		if err != nil {
			t.Fatalf("ParseDisplayName(%q) error: %v", DisplayName(c), err)
		}
		if got != c {
			t.Errorf("ParseDisplayName(DisplayName(%v)) = %v", c, got)
		}
	})
}

func TestParseDisplayName_Invalid(t *testing.T) {
	for _, s := range []string{"", "A", "11", "A0", "Ax", "?3"} {
		if _, err := ParseDisplayName(s); err == nil {
			t.Errorf("ParseDisplayName(%q) = nil error, want error", s)
		}
	}
}

func TestDirection_DeltaOrder(t *testing.T) {
	want := [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	dirs := AllDirections()
	if len(dirs) != len(want) {
		t.Fatalf("len(AllDirections()) = %d, want %d", len(dirs), len(want))
	}
	for i, d := range dirs {
		dx, dy := d.Delta()
		if dx != want[i][0] || dy != want[i][1] {
			t.Errorf("AllDirections()[%d] = %v (%d,%d), want (%d,%d)", i, d, dx, dy, want[i][0], want[i][1])
		}
		if back, ok := DirectionFromDelta(dx, dy); !ok || back != d {
			t.Errorf("DirectionFromDelta(%d,%d) = %v,%v want %v", dx, dy, back, ok, d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() != %v", d, d)
		}
	}
}

func TestGrid_StartAndExit(t *testing.T) {
	g := NewGrid(4)
	if g.StartCell() != (Cell{0, 0}) {
		t.Errorf("StartCell() = %v, want (0,0)", g.StartCell())
	}
	if g.ExitCell() != (Cell{3, 3}) {
		t.Errorf("ExitCell() = %v, want (3,3)", g.ExitCell())
	}
}

func TestGrid_NeighborsClipToBounds(t *testing.T) {
	g := NewGrid(4)
	if n := g.Neighbors(Cell{0, 0}); len(n) != 2 {
		t.Errorf("corner Neighbors = %v, want 2 cells", n)
	}
	if n := g.Neighbors(Cell{1, 0}); len(n) != 3 {
		t.Errorf("edge Neighbors = %v, want 3 cells", n)
	}
	if n := g.Neighbors(Cell{1, 1}); len(n) != 4 {
		t.Errorf("inner Neighbors = %v, want 4 cells", n)
	}
}

func TestGrid_IsNearStartOrExit(t *testing.T) {
	g := NewGrid(4)
	near := []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}, {3, 3}, {2, 2}, {3, 2}, {2, 3}}
	for _, c := range near {
		if !g.IsNearStartOrExit(c) {
			t.Errorf("IsNearStartOrExit(%v) = false, want true", c)
		}
	}
	far := []Cell{{0, 2}, {0, 3}, {1, 3}, {2, 0}, {3, 0}, {3, 1}}
	for _, c := range far {
		if g.IsNearStartOrExit(c) {
			t.Errorf("IsNearStartOrExit(%v) = true, want false", c)
		}
	}
}

func TestNewGrid_PanicsOnZeroSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0) did not panic")
		}
	}()
	NewGrid(0)
}

func TestSortedCells_RowMajor(t *testing.T) {
	set := NewCellSet(Cell{2, 1}, Cell{0, 1}, Cell{3, 0})
	got := SortedCells(set)
	want := []Cell{{3, 0}, {0, 1}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("SortedCells = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("SortedCells = %v, want %v", got, want)
			break
		}
	}
}

func TestChebyshevDistance(t *testing.T) {
	if d := ChebyshevDistance(Cell{0, 0}, Cell{1, 1}); d != 1 {
		t.Errorf("ChebyshevDistance diagonal = %d, want 1", d)
	}
	if d := ChebyshevDistance(Cell{0, 0}, Cell{2, 1}); d != 2 {
		t.Errorf("ChebyshevDistance = %d, want 2", d)
	}
	if d := ManhattanDistance(Cell{0, 0}, Cell{2, 1}); d != 3 {
		t.Errorf("ManhattanDistance = %d, want 3", d)
	}
}
