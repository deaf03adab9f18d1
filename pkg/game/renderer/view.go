package renderer

import (
	"strings"

	"wumpusworld/pkg/engine/input"
	"wumpusworld/pkg/engine/world"
	"wumpusworld/pkg/game/entities"
	"wumpusworld/pkg/game/i18n"
	"wumpusworld/pkg/game/state"
)

// Tile is what a renderer should draw for one cell
type Tile struct {
	Cell     world.Cell
	Agent    bool
	Entry    bool
	Exit     bool
	Features []entities.FeatureType // empty while the board is hidden
}

// Style returns the style for the most important thing on the tile
func (t Tile) Style() TextStyle {
	switch {
	case t.Agent:
		return StyleAgent
	case t.Exit:
		return StyleExit
	case t.Entry:
		return StyleEntry
	case len(t.Features) > 0:
		return featureStyles[t.Features[0]]
	default:
		return StyleSubtle
	}
}

// Glyph returns the text drawn for the tile
func (t Tile) Glyph() string {
	switch {
	case t.Agent:
		return "@"
	case t.Exit:
		return "E"
	case t.Entry:
		return "S"
	case len(t.Features) > 0:
		return t.Features[0].Icon()
	default:
		return "·"
	}
}

var featureStyles = map[entities.FeatureType]TextStyle{
	entities.FeatureMonster:  StyleMonster,
	entities.FeaturePit:      StylePit,
	entities.FeatureTreasure: StyleTreasure,
	entities.FeatureWind:     StyleWind,
	entities.FeatureOdor:     StyleOdor,
}

// Revealed reports whether the hidden features of g may be shown. During
// play only the agent is visible.
func Revealed(g *state.Game) bool {
	return g.GameOver
}

// BoardView returns the tiles of g row by row
func BoardView(g *state.Game) [][]Tile {
	b := g.Board
	size := b.Size()
	revealed := Revealed(g)

	rows := make([][]Tile, size)
	for y := 0; y < size; y++ {
		rows[y] = make([]Tile, size)
		for x := 0; x < size; x++ {
			c := world.NewCell(x, y)
			t := Tile{
				Cell:  c,
				Agent: c == g.CurrentCell,
				Entry: c == b.Entry(),
				Exit:  c == b.Exit(),
			}
			if revealed {
				t.Features = b.FeaturesAt(c)
			}
			rows[y][x] = t
		}
	}
	return rows
}

// ColumnLabels returns the letters shown above the board
func ColumnLabels(size int) []string {
	labels := make([]string, size)
	for x := range labels {
		labels[x] = world.ColumnLabel(x)
	}
	return labels
}

// StatusLine returns the translated one-line summary of g
func StatusLine(g *state.Game) string {
	treasure := i18n.Get("NO")
	if g.TreasureCollected {
		treasure = i18n.Get("YES")
	}
	return i18n.Get("STATUS", world.DisplayName(g.CurrentCell), treasure, g.RouteRemaining())
}

// DeathLine returns the translated last-death line, or "" if the agent
// never died
func DeathLine(g *state.Game) string {
	if g.LastDeath == nil {
		return ""
	}
	return i18n.Get("LAST_DEATH", world.DisplayName(g.LastDeath.Position))
}

// keyHelpGroups lists the in-game actions, one help line per group
var keyHelpGroups = [][]input.Action{
	{input.ActionMoveNorth, input.ActionMoveSouth, input.ActionMoveWest, input.ActionMoveEast},
	{input.ActionPause, input.ActionStep, input.ActionDumpBoard, input.ActionMainMenu, input.ActionQuit},
}

var keyLabels = map[string]string{
	"arrow_up":    "↑",
	"arrow_down":  "↓",
	"arrow_left":  "←",
	"arrow_right": "→",
	"ctrl_c":      "ctrl+c",
	"escape":      "esc",
}

// KeyHelp returns the keyboard bindings for play, with translated action
// names. Mouse bindings are left out.
func KeyHelp() []string {
	bindings := input.GetBindingsByAction()
	lines := make([]string, 0, len(keyHelpGroups))
	for _, group := range keyHelpGroups {
		parts := make([]string, 0, len(group))
		for _, a := range group {
			var keys []string
			for _, code := range bindings[a] {
				if strings.HasPrefix(code, "mouse_") {
					continue
				}
				if label, ok := keyLabels[code]; ok {
					code = label
				}
				keys = append(keys, code)
			}
			parts = append(parts, strings.Join(keys, "/")+" "+i18n.Get(input.ActionName(a)))
		}
		lines = append(lines, strings.Join(parts, " | "))
	}
	return lines
}
