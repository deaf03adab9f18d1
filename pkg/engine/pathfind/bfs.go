// Package pathfind finds shortest routes across a square grid.
package pathfind

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"

	"wumpusworld/pkg/engine/world"
)

// step records how a cell was first reached during the search
type step struct {
	from world.Cell
	dir  world.Direction
}

// FindPath returns the moves of a shortest 4-connected path from start to
// goal on a size×size grid, or nil if goal cannot be reached.
//
// Cells in obstacles are impassable, except goal which is always enterable.
// Neighbours are expanded in world.AllDirections order, so equal-length
// paths are chosen deterministically.
func FindPath(start, goal world.Cell, size int, obstacles world.CellSet) []world.Direction {
	if size <= 0 {
		return nil
	}
	grid := world.NewGrid(size)
	if !grid.IsValidPosition(start) || !grid.IsValidPosition(goal) || start == goal {
		return nil
	}

	visited := mapset.New[world.Cell]()
	parents := make(map[world.Cell]step)
	frontier := queue.New[world.Cell]()

	visited.Put(start)
	frontier.Enqueue(start)

	for !frontier.Empty() {
		current := frontier.Dequeue()
		if current == goal {
			return reconstructPath(parents, start, goal)
		}

		for _, dir := range world.AllDirections() {
			next, ok := grid.GetCellRelative(current, dir)
			if !ok || visited.Has(next) {
				continue
			}
			if next != goal && obstacles.Has(next) {
				continue
			}
			visited.Put(next)
			parents[next] = step{from: current, dir: dir}
			frontier.Enqueue(next)
		}
	}

	return nil
}

// reconstructPath walks the parent links back from goal and returns the
// moves in the order they must be applied
func reconstructPath(parents map[world.Cell]step, start, goal world.Cell) []world.Direction {
	var reversed []world.Direction
	for at := goal; at != start; {
		s := parents[at]
		reversed = append(reversed, s.dir)
		at = s.from
	}

	path := make([]world.Direction, len(reversed))
	for i, dir := range reversed {
		path[len(reversed)-1-i] = dir
	}
	return path
}

// Walk applies moves from start and returns every cell visited after
// start, in order. It does not check bounds.
func Walk(start world.Cell, moves []world.Direction) []world.Cell {
	cells := make([]world.Cell, 0, len(moves))
	at := start
	for _, dir := range moves {
		at = at.Add(dir)
		cells = append(cells, at)
	}
	return cells
}
