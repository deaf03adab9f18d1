package world

import (
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// CellSet is a set of cells
type CellSet = mapset.Set[Cell]

// NewCellSet creates a set holding the given cells
func NewCellSet(cells ...Cell) CellSet {
	set := mapset.New[Cell]()
	for _, c := range cells {
		set.Put(c)
	}
	return set
}

// SortedCells returns the members of set ordered row by row, then by column
func SortedCells(set CellSet) []Cell {
	cells := make([]Cell, 0, set.Size())
	set.Each(func(c Cell) {
		cells = append(cells, c)
	})
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
