// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is a position on the grid. X is the column, Y is the row.
// Cells are plain values, so they can be compared with == and used as map keys.
type Cell struct {
	X int
	Y int
}

// NewCell creates a cell at the given column and row
func NewCell(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// Add returns the cell reached by applying the direction's move vector
func (c Cell) Add(dir Direction) Cell {
	dx, dy := dir.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Neighbors returns the four adjacent cells in AllDirections order.
// The result may contain cells outside any particular grid.
func (c Cell) Neighbors() []Cell {
	dirs := AllDirections()
	neighbors := make([]Cell, 0, len(dirs))
	for _, dir := range dirs {
		neighbors = append(neighbors, c.Add(dir))
	}
	return neighbors
}

// String returns the raw coordinates, e.g. "(1,2)"
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ColumnLabel returns the letter shown for a column: 0 -> "A", 1 -> "B", ...
func ColumnLabel(x int) string {
	return string(rune('A' + x))
}

// RowLabel returns the 1-based number shown for a row
func RowLabel(y int) string {
	return strconv.Itoa(y + 1)
}

// DisplayName returns the player-facing name of a cell, e.g. (0,0) -> "A1"
func DisplayName(c Cell) string {
	return ColumnLabel(c.X) + RowLabel(c.Y)
}

// ParseDisplayName is the inverse of DisplayName
func ParseDisplayName(s string) (Cell, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if len(s) < 2 {
		return Cell{}, fmt.Errorf("invalid cell name %q", s)
	}
	col := s[0]
	if col < 'A' || col > 'Z' {
		return Cell{}, fmt.Errorf("invalid column in cell name %q", s)
	}
	row, err := strconv.Atoi(s[1:])
	if err != nil || row < 1 {
		return Cell{}, fmt.Errorf("invalid row in cell name %q", s)
	}
	return Cell{X: int(col - 'A'), Y: row - 1}, nil
}
