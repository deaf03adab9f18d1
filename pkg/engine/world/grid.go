package world

// Grid is a square board of Size×Size cells with a start cell in one corner
// and an exit cell in the opposite corner.
type Grid struct {
	size int

	startCell Cell
	exitCell  Cell
}

// NewGrid creates a new grid with the given dimension.
// The start cell is (0,0) and the exit cell is (size-1,size-1).
func NewGrid(size int) *Grid {
	g := &Grid{}
	g.Build(size)
	return g
}

// Build initializes the grid with the given dimension
func (g *Grid) Build(size int) {
	if size <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.size = size
	g.startCell = Cell{X: 0, Y: 0}
	g.exitCell = Cell{X: size - 1, Y: size - 1}
}

// Size returns the grid dimension
func (g *Grid) Size() int {
	return g.size
}

// StartCell returns the starting cell
func (g *Grid) StartCell() Cell {
	return g.startCell
}

// ExitCell returns the exit cell
func (g *Grid) ExitCell() Cell {
	return g.exitCell
}

// IsValidPosition checks if a cell is within grid bounds
func (g *Grid) IsValidPosition(c Cell) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// GetCellRelative returns the cell adjacent to c in the given direction,
// and false if that cell is out of bounds
func (g *Grid) GetCellRelative(c Cell, dir Direction) (Cell, bool) {
	if !dir.IsValid() {
		return Cell{}, false
	}
	next := c.Add(dir)
	return next, g.IsValidPosition(next)
}

// Neighbors returns the in-bounds 4-neighbours of c in AllDirections order
func (g *Grid) Neighbors(c Cell) []Cell {
	var neighbors []Cell
	for _, dir := range AllDirections() {
		if n, ok := g.GetCellRelative(c, dir); ok {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// IsNearStartOrExit reports whether c lies within Chebyshev distance 1 of
// the start or the exit cell
func (g *Grid) IsNearStartOrExit(c Cell) bool {
	return ChebyshevDistance(c, g.startCell) <= 1 || ChebyshevDistance(c, g.exitCell) <= 1
}

// ForEachCell iterates over all cells row by row
func (g *Grid) ForEachCell(fn func(c Cell)) {
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			fn(Cell{X: x, Y: y})
		}
	}
}
