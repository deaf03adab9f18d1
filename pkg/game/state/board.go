package state

import (
	"fmt"

	"wumpusworld/pkg/engine/world"
	"wumpusworld/pkg/game/entities"
)

// PitCount is the number of pits on every board
const PitCount = 2

// Board is the fixed layout of one game: grid, hazards, treasure and the
// cue cells derived from them. Only the treasure changes after creation.
type Board struct {
	Grid    *world.Grid
	Monster world.Cell
	Pits    world.CellSet
	Wind    world.CellSet
	Odor    world.CellSet

	treasure        world.Cell
	treasurePresent bool
}

// NewBoard creates a board of the given size with the features at the given
// cells, and derives the wind and odor cells from them.
func NewBoard(size int, monster, treasure world.Cell, pits ...world.Cell) *Board {
	b := &Board{
		Grid:            world.NewGrid(size),
		Monster:         monster,
		Pits:            world.NewCellSet(pits...),
		treasure:        treasure,
		treasurePresent: true,
	}
	b.Wind = b.deriveWind()
	b.Odor = b.deriveOdor()
	return b
}

// deriveWind returns the in-bounds neighbours of every pit, minus the monster
// and treasure cells
func (b *Board) deriveWind() world.CellSet {
	wind := world.NewCellSet()
	b.Pits.Each(func(pit world.Cell) {
		for _, n := range b.Grid.Neighbors(pit) {
			if n != b.Monster && n != b.treasure {
				wind.Put(n)
			}
		}
	})
	return wind
}

// deriveOdor returns the in-bounds neighbours of the monster, minus the
// entry and exit cells
func (b *Board) deriveOdor() world.CellSet {
	odor := world.NewCellSet()
	for _, n := range b.Grid.Neighbors(b.Monster) {
		if n != b.Entry() && n != b.Exit() {
			odor.Put(n)
		}
	}
	return odor
}

// Size returns the board dimension
func (b *Board) Size() int {
	return b.Grid.Size()
}

// Entry returns the cell the agent starts and respawns on
func (b *Board) Entry() world.Cell {
	return b.Grid.StartCell()
}

// Exit returns the goal cell
func (b *Board) Exit() world.Cell {
	return b.Grid.ExitCell()
}

// Treasure returns the treasure cell, and false once it has been collected
func (b *Board) Treasure() (world.Cell, bool) {
	return b.treasure, b.treasurePresent
}

// TakeTreasure removes the treasure from the board
func (b *Board) TakeTreasure() {
	b.treasurePresent = false
}

// IsPit returns true if c holds a pit
func (b *Board) IsPit(c world.Cell) bool {
	return b.Pits.Has(c)
}

// HasTreasureAt returns true if the treasure is still on c
func (b *Board) HasTreasureAt(c world.Cell) bool {
	return b.treasurePresent && b.treasure == c
}

// FeaturesAt lists every feature on c, most dangerous first
func (b *Board) FeaturesAt(c world.Cell) []entities.FeatureType {
	var features []entities.FeatureType
	if c == b.Monster {
		features = append(features, entities.FeatureMonster)
	}
	if b.IsPit(c) {
		features = append(features, entities.FeaturePit)
	}
	if b.HasTreasureAt(c) {
		features = append(features, entities.FeatureTreasure)
	}
	if b.Wind.Has(c) {
		features = append(features, entities.FeatureWind)
	}
	if b.Odor.Has(c) {
		features = append(features, entities.FeatureOdor)
	}
	return features
}

// Obstacles returns the cells a planned route must avoid: hazards, the
// treasure cell and every cue cell
func (b *Board) Obstacles() world.CellSet {
	obstacles := world.NewCellSet(b.Monster, b.treasure)
	for _, set := range []world.CellSet{b.Pits, b.Wind, b.Odor} {
		set.Each(func(c world.Cell) {
			obstacles.Put(c)
		})
	}
	return obstacles
}

// Validate checks the placement rules every generated board must satisfy
func (b *Board) Validate() error {
	if b.Grid == nil || b.Grid.Size() <= 0 {
		return fmt.Errorf("board has invalid dimensions")
	}
	if b.Pits.Size() != PitCount {
		return fmt.Errorf("board has %d pits, want %d", b.Pits.Size(), PitCount)
	}

	placed := []struct {
		name string
		cell world.Cell
	}{
		{"monster", b.Monster},
		{"treasure", b.treasure},
	}
	for _, pit := range world.SortedCells(b.Pits) {
		placed = append(placed, struct {
			name string
			cell world.Cell
		}{"pit", pit})
	}

	seen := make(map[world.Cell]string)
	for _, p := range placed {
		if !b.Grid.IsValidPosition(p.cell) {
			return fmt.Errorf("%s at %v is outside the board", p.name, p.cell)
		}
		if b.Grid.IsNearStartOrExit(p.cell) {
			return fmt.Errorf("%s at %v is next to the entry or exit", p.name, p.cell)
		}
		if other, dup := seen[p.cell]; dup {
			return fmt.Errorf("%s and %s share cell %v", other, p.name, p.cell)
		}
		seen[p.cell] = p.name
	}

	var err error
	b.Wind.Each(func(c world.Cell) {
		if err == nil && (c == b.Monster || c == b.treasure) {
			err = fmt.Errorf("wind cell %v overlaps the monster or treasure", c)
		}
	})
	b.Odor.Each(func(c world.Cell) {
		if err == nil && (c == b.Entry() || c == b.Exit()) {
			err = fmt.Errorf("odor cell %v overlaps the entry or exit", c)
		}
	})
	return err
}
