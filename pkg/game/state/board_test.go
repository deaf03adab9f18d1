package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wumpusworld/pkg/engine/world"
	"wumpusworld/pkg/game/entities"
)

func cell(x, y int) world.Cell {
	return world.NewCell(x, y)
}

func TestNewBoard_EntryAndExit(t *testing.T) {
	b := NewBoard(4, cell(2, 0), cell(0, 3), cell(3, 0), cell(0, 2))
	assert.Equal(t, cell(0, 0), b.Entry())
	assert.Equal(t, cell(3, 3), b.Exit())
	assert.Equal(t, 4, b.Size())
	require.NoError(t, b.Validate())
}

func TestNewBoard_WindExcludesMonsterAndTreasure(t *testing.T) {
	// Pit at (3,0) has neighbours (2,0) and (3,1); (2,0) is the monster.
	// Pit at (0,2) has neighbours (1,2), (0,1) and (0,3); (0,3) is the treasure.
	b := NewBoard(4, cell(2, 0), cell(0, 3), cell(3, 0), cell(0, 2))

	assert.ElementsMatch(t,
		[]world.Cell{cell(3, 1), cell(1, 2), cell(0, 1)},
		world.SortedCells(b.Wind))
	assert.False(t, b.Wind.Has(b.Monster))
	assert.False(t, b.Wind.Has(cell(0, 3)))
}

func TestNewBoard_OdorExcludesEntryAndExit(t *testing.T) {
	// Monster at (1,0) touches the entry; at (3,2) it touches the exit.
	b := NewBoard(4, cell(1, 0), cell(3, 0), cell(0, 3), cell(1, 3))
	assert.False(t, b.Odor.Has(b.Entry()))
	assert.ElementsMatch(t, []world.Cell{cell(2, 0), cell(1, 1)}, world.SortedCells(b.Odor))

	b = NewBoard(4, cell(3, 2), cell(3, 0), cell(0, 3), cell(1, 3))
	assert.False(t, b.Odor.Has(b.Exit()))
	assert.ElementsMatch(t, []world.Cell{cell(2, 2), cell(3, 1)}, world.SortedCells(b.Odor))
}

func TestBoard_CellCanBeWindAndOdor(t *testing.T) {
	// (2,1) is next to both the monster at (2,0) and the pit at (3,1)
	b := NewBoard(6, cell(2, 0), cell(0, 5), cell(3, 1), cell(0, 3))
	assert.True(t, b.Wind.Has(cell(2, 1)))
	assert.True(t, b.Odor.Has(cell(2, 1)))
	assert.Equal(t,
		[]entities.FeatureType{entities.FeatureWind, entities.FeatureOdor},
		b.FeaturesAt(cell(2, 1)))
}

func TestBoard_TakeTreasure(t *testing.T) {
	b := NewBoard(4, cell(2, 0), cell(0, 3), cell(3, 0), cell(0, 2))
	c, ok := b.Treasure()
	require.True(t, ok)
	assert.True(t, b.HasTreasureAt(c))

	b.TakeTreasure()
	_, ok = b.Treasure()
	assert.False(t, ok)
	assert.False(t, b.HasTreasureAt(c))
	assert.Empty(t, b.FeaturesAt(c))
}

func TestBoard_ObstaclesCoverHazardsAndCues(t *testing.T) {
	b := NewBoard(4, cell(2, 0), cell(0, 3), cell(3, 0), cell(0, 2))
	obstacles := b.Obstacles()
	for _, c := range []world.Cell{b.Monster, cell(0, 3), cell(3, 0), cell(0, 2)} {
		assert.True(t, obstacles.Has(c), "obstacles missing feature cell %v", c)
	}
	b.Wind.Each(func(c world.Cell) { assert.True(t, obstacles.Has(c)) })
	b.Odor.Each(func(c world.Cell) { assert.True(t, obstacles.Has(c)) })
	assert.False(t, obstacles.Has(b.Entry()))
	assert.False(t, obstacles.Has(b.Exit()))
}

func TestBoard_ValidateRejectsBadLayouts(t *testing.T) {
	cases := map[string]*Board{
		"monster next to entry":  NewBoard(4, cell(1, 1), cell(0, 3), cell(3, 0), cell(0, 2)),
		"treasure next to exit":  NewBoard(4, cell(2, 0), cell(2, 2), cell(3, 0), cell(0, 2)),
		"pit on monster":         NewBoard(4, cell(2, 0), cell(0, 3), cell(2, 0), cell(0, 2)),
		"single pit":             NewBoard(4, cell(2, 0), cell(0, 3), cell(3, 0)),
		"treasure outside board": NewBoard(4, cell(2, 0), cell(9, 9), cell(3, 0), cell(0, 2)),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, b.Validate())
		})
	}
}

func TestEvent_Classification(t *testing.T) {
	assert.True(t, EventMonsterDeath.IsDeath())
	assert.True(t, EventPitDeath.IsDeath())
	assert.False(t, EventTreasureFound.IsDeath())
	assert.True(t, EventEscapedWithTreasure.IsTerminal())
	assert.True(t, EventEscapedWithoutTreasure.IsTerminal())
	assert.False(t, EventWindSensed.IsTerminal())
	assert.Equal(t, "monster-death", EventMonsterDeath.String())
	assert.Equal(t, "unknown", Event(99).String())
}

func TestGame_MessagesKeepLastFive(t *testing.T) {
	g := NewGame(NewBoard(4, cell(2, 0), cell(0, 3), cell(3, 0), cell(0, 2)), nil)
	for _, m := range []string{"1", "2", "3", "4", "5", "6", "7"} {
		g.AddMessage(m)
	}
	assert.Equal(t, []string{"3", "4", "5", "6", "7"}, g.Messages)
	g.ClearMessages()
	assert.Empty(t, g.Messages)
}

func TestGame_UnsolvableWithoutRoute(t *testing.T) {
	b := NewBoard(4, cell(2, 0), cell(0, 3), cell(3, 0), cell(0, 2))
	g := NewGame(b, nil)
	assert.True(t, g.Unsolvable())
	assert.True(t, g.RouteExhausted())
	assert.Equal(t, 0, g.RouteRemaining())

	g = NewGame(b, []world.Direction{world.East})
	assert.False(t, g.Unsolvable())
	assert.Equal(t, 1, g.RouteRemaining())
	assert.NotEqual(t, g.ID, NewGame(b, nil).ID)
}
