package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wumpusworld/pkg/engine/world"
	"wumpusworld/pkg/game/entities"
	"wumpusworld/pkg/game/i18n"
	"wumpusworld/pkg/game/state"
)

func testGame() *state.Game {
	b := state.NewBoard(4, world.NewCell(2, 0), world.NewCell(0, 3), world.NewCell(3, 0), world.NewCell(0, 2))
	return state.NewGame(b, []world.Direction{world.East})
}

func TestBoardView_OnlyAgentDuringPlay(t *testing.T) {
	view := BoardView(testGame())
	require.Len(t, view, 4)
	for _, row := range view {
		for _, tile := range row {
			assert.Empty(t, tile.Features, "tile %v", tile.Cell)
		}
	}
	assert.True(t, view[0][0].Agent)
	assert.Equal(t, "@", view[0][0].Glyph())
	assert.Equal(t, StyleExit, view[3][3].Style())
}

func TestBoardView_RevealedOnGameOver(t *testing.T) {
	g := testGame()
	g.GameOver = true
	view := BoardView(g)

	assert.Equal(t, []entities.FeatureType{entities.FeatureMonster}, view[0][2].Features)
	assert.Equal(t, StyleMonster, view[0][2].Style())
	assert.Equal(t, StyleTreasure, view[3][0].Style())
	assert.Equal(t, StylePit, view[0][3].Style())
	assert.Equal(t, StyleWind, view[1][3].Style())
}

func TestColumnLabels(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, ColumnLabels(3))
}

func TestStatusAndDeathLines(t *testing.T) {
	g := testGame()
	assert.Equal(t, "Position A1 | Treasure: no | Moves left: 1", StatusLine(g))
	assert.Empty(t, DeathLine(g))

	g.LastDeath = &state.Death{Position: world.NewCell(2, 0), Cause: state.EventMonsterDeath}
	assert.Equal(t, "Last death: C1", DeathLine(g))
}

func TestKeyHelp_ListsKeyboardBindings(t *testing.T) {
	require.NoError(t, i18n.Load(i18n.DefaultLanguage))
	lines := KeyHelp()
	require.Len(t, lines, 2)
	assert.Equal(t, "↑/k Move North | ↓/j Move South | ←/h Move West | →/l Move East", lines[0])
	assert.Contains(t, lines[1], "p/space Pause")
	assert.Contains(t, lines[1], "d Dump Board")
	assert.Contains(t, lines[1], "ctrl+c/esc/q Quit")
	assert.NotContains(t, lines[1], "mouse")
}

func TestKeyHelp_Translated(t *testing.T) {
	require.NoError(t, i18n.Load("es"))
	t.Cleanup(func() { _ = i18n.Load(i18n.DefaultLanguage) })
	assert.Contains(t, KeyHelp()[1], "n Paso")
}
