package pathfind

import (
	"testing"

	"golang.org/x/exp/rand"

	"wumpusworld/pkg/engine/world"
)

// bruteForceDistance returns the length of the shortest simple path from
// start to goal found by exhaustive depth-first search, or -1.
func bruteForceDistance(start, goal world.Cell, size int, obstacles world.CellSet) int {
	grid := world.NewGrid(size)
	best := -1
	onPath := map[world.Cell]bool{start: true}

	var dfs func(at world.Cell, depth int)
	dfs = func(at world.Cell, depth int) {
		if best >= 0 && depth >= best {
			return
		}
		if at == goal {
			best = depth
			return
		}
		for _, n := range grid.Neighbors(at) {
			if onPath[n] || (n != goal && obstacles.Has(n)) {
				continue
			}
			onPath[n] = true
			dfs(n, depth+1)
			onPath[n] = false
		}
	}
	dfs(start, 0)
	return best
}

func randomObstacles(r *rand.Rand, size int, density float64, keep ...world.Cell) world.CellSet {
	obstacles := world.NewCellSet()
	world.NewGrid(size).ForEachCell(func(c world.Cell) {
		for _, k := range keep {
			if c == k {
				return
			}
		}
		if r.Float64() < density {
			obstacles.Put(c)
		}
	})
	return obstacles
}

func TestFindPath_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, size := range []int{2, 3, 4} {
		for i := 0; i < 200; i++ {
			start := world.NewCell(r.Intn(size), r.Intn(size))
			goal := world.NewCell(r.Intn(size), r.Intn(size))
			obstacles := randomObstacles(r, size, 0.35, start)

			path := FindPath(start, goal, size, obstacles)
			want := bruteForceDistance(start, goal, size, obstacles)

			switch {
			case start == goal:
				if len(path) != 0 {
					t.Errorf("size %d: start == goal %v, got path %v, want empty", size, start, path)
				}
			case want < 0:
				if len(path) != 0 {
					t.Errorf("size %d: %v -> %v unreachable, got path %v", size, start, goal, path)
				}
			default:
				if len(path) != want {
					t.Errorf("size %d: %v -> %v: len(path) = %d, want %d (obstacles %v)",
						size, start, goal, len(path), want, world.SortedCells(obstacles))
				}
			}
		}
	}
}

func TestFindPath_PathIsValid(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const size = 5
	grid := world.NewGrid(size)
	for i := 0; i < 300; i++ {
		start := world.NewCell(0, 0)
		goal := world.NewCell(size-1, size-1)
		obstacles := randomObstacles(r, size, 0.3, start)

		path := FindPath(start, goal, size, obstacles)
		cells := Walk(start, path)
		for j, c := range cells {
			if !grid.IsValidPosition(c) {
				t.Fatalf("path %v leaves the grid at step %d (%v)", path, j, c)
			}
			last := j == len(cells)-1
			if !last && obstacles.Has(c) {
				t.Fatalf("path %v steps on obstacle %v at step %d", path, c, j)
			}
			if last && c != goal {
				t.Fatalf("path %v ends at %v, want %v", path, c, goal)
			}
		}
	}
}

func TestFindPath_GoalIsAlwaysEnterable(t *testing.T) {
	goal := world.NewCell(1, 0)
	path := FindPath(world.NewCell(0, 0), goal, 2, world.NewCellSet(goal))
	if len(path) != 1 || path[0] != world.East {
		t.Errorf("FindPath onto obstacle goal = %v, want [East]", path)
	}
}

func TestFindPath_Unreachable(t *testing.T) {
	// Wall across column 1 of a 3x3 board
	obstacles := world.NewCellSet(world.NewCell(1, 0), world.NewCell(1, 1), world.NewCell(1, 2))
	path := FindPath(world.NewCell(0, 0), world.NewCell(2, 2), 3, obstacles)
	if path != nil {
		t.Errorf("FindPath across wall = %v, want nil", path)
	}
}

func TestFindPath_TieBreakFollowsDirectionOrder(t *testing.T) {
	// On an open board East is tried before South, so the route goes along
	// the top row first.
	path := FindPath(world.NewCell(0, 0), world.NewCell(1, 1), 2, world.NewCellSet())
	want := []world.Direction{world.East, world.South}
	if len(path) != len(want) || path[0] != want[0] || path[1] != want[1] {
		t.Errorf("FindPath = %v, want %v", path, want)
	}
}

func TestFindPath_OutOfBoundsEndpoints(t *testing.T) {
	if p := FindPath(world.NewCell(-1, 0), world.NewCell(1, 1), 2, world.NewCellSet()); p != nil {
		t.Errorf("FindPath from out-of-bounds start = %v, want nil", p)
	}
	if p := FindPath(world.NewCell(0, 0), world.NewCell(5, 5), 2, world.NewCellSet()); p != nil {
		t.Errorf("FindPath to out-of-bounds goal = %v, want nil", p)
	}
	if p := FindPath(world.NewCell(0, 0), world.NewCell(0, 0), 0, world.NewCellSet()); p != nil {
		t.Errorf("FindPath with size 0 = %v, want nil", p)
	}
}
