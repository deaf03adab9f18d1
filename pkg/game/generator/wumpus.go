package generator

import (
	"wumpusworld/pkg/engine/world"
	"wumpusworld/pkg/game/state"
)

// DefaultMaxAttempts bounds the random draws spent on each feature
const DefaultMaxAttempts = 1000

// WumpusGenerator places a monster, a treasure and two pits by rejection
// sampling. A feature never lands on the entry, the exit, a cell next to
// either of them, or a cell already holding another feature.
type WumpusGenerator struct {
	// MaxAttempts overrides DefaultMaxAttempts when positive
	MaxAttempts int
}

// Name returns the name of this generator
func (g *WumpusGenerator) Name() string {
	return "Wumpus"
}

// Generate creates a new board. It fails with a *GenerationError when a
// feature has no legal cell or when every draw was rejected.
func (g *WumpusGenerator) Generate(size int, rng RandomSource) (*state.Board, error) {
	if size <= 0 {
		return nil, &GenerationError{Size: size, Feature: "board"}
	}

	grid := world.NewGrid(size)
	occupied := world.NewCellSet(grid.StartCell(), grid.ExitCell())

	monster, err := g.place(grid, rng, occupied, "monster")
	if err != nil {
		return nil, err
	}
	occupied.Put(monster)

	treasure, err := g.place(grid, rng, occupied, "treasure")
	if err != nil {
		return nil, err
	}
	occupied.Put(treasure)

	// Pits also avoid each other so a board always has two distinct pits
	pits := make([]world.Cell, 0, state.PitCount)
	for i := 0; i < state.PitCount; i++ {
		pit, err := g.place(grid, rng, occupied, "pit")
		if err != nil {
			return nil, err
		}
		occupied.Put(pit)
		pits = append(pits, pit)
	}

	return state.NewBoard(size, monster, treasure, pits...), nil
}

func (g *WumpusGenerator) maxAttempts() int {
	if g.MaxAttempts > 0 {
		return g.MaxAttempts
	}
	return DefaultMaxAttempts
}

// place draws random cells until one is free and away from the entry and exit
func (g *WumpusGenerator) place(grid *world.Grid, rng RandomSource, occupied world.CellSet, feature string) (world.Cell, error) {
	if countCandidates(grid, occupied) == 0 {
		return world.Cell{}, &GenerationError{Size: grid.Size(), Feature: feature}
	}

	limit := g.maxAttempts()
	for attempt := 0; attempt < limit; attempt++ {
		c := world.NewCell(rng.Intn(grid.Size()), rng.Intn(grid.Size()))
		if isCandidate(grid, occupied, c) {
			return c, nil
		}
	}
	return world.Cell{}, &GenerationError{Size: grid.Size(), Feature: feature, Attempts: limit}
}

func isCandidate(grid *world.Grid, occupied world.CellSet, c world.Cell) bool {
	return !occupied.Has(c) && !grid.IsNearStartOrExit(c)
}

// countCandidates returns how many cells could still take a feature
func countCandidates(grid *world.Grid, occupied world.CellSet) int {
	n := 0
	grid.ForEachCell(func(c world.Cell) {
		if isCandidate(grid, occupied, c) {
			n++
		}
	})
	return n
}
