// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"wumpusworld/pkg/engine/world"
	"wumpusworld/pkg/game/entities"
	"wumpusworld/pkg/game/state"
)

const boardDumpFilename = "board.txt"

// cellSymbol returns the single-character symbol for a cell (no agent or
// entry/exit overlay). Hidden cells show '.' until revealed.
func cellSymbol(b *state.Board, c world.Cell, revealed bool) rune {
	if !revealed {
		return '.'
	}
	features := b.FeaturesAt(c)
	switch {
	case len(features) == 0:
		return '.'
	case len(features) > 1 && features[0].IsCue():
		// wind and odor together
		return '*'
	default:
		return features[0].Symbol()
	}
}

// writeBoardGrid writes the board with column letters across the top and
// row numbers down the side.
func writeBoardGrid(w io.Writer, g *state.Game, revealed bool) {
	b := g.Board
	size := b.Size()

	fmt.Fprint(w, "   ")
	for x := 0; x < size; x++ {
		fmt.Fprintf(w, " %s", world.ColumnLabel(x))
	}
	fmt.Fprintln(w)

	for y := 0; y < size; y++ {
		fmt.Fprintf(w, "%3s", world.RowLabel(y))
		for x := 0; x < size; x++ {
			c := world.NewCell(x, y)
			var sym rune
			switch {
			case c == g.CurrentCell:
				sym = '@'
			case c == b.Exit():
				sym = 'E'
			case c == b.Entry():
				sym = 'S'
			default:
				sym = cellSymbol(b, c, revealed)
			}
			fmt.Fprintf(w, " %c", sym)
		}
		fmt.Fprintln(w)
	}
}

func displayNames(cells []world.Cell) string {
	if len(cells) == 0 {
		return "-"
	}
	names := make([]string, len(cells))
	for i, c := range cells {
		names[i] = world.DisplayName(c)
	}
	return strings.Join(names, " ")
}

func routeString(route []world.Direction) string {
	if len(route) == 0 {
		return "-"
	}
	parts := make([]string, len(route))
	for i, d := range route {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ")
}

// DumpBoard writes a debug dump of g to w: metadata, legend, the board and,
// once revealed, the feature positions. Hidden features are shown only when
// revealAll is set or the game is over.
func DumpBoard(w io.Writer, g *state.Game, revealAll bool) error {
	if g == nil || g.Board == nil {
		return fmt.Errorf("no board")
	}

	bw := bufio.NewWriter(w)
	b := g.Board
	revealed := revealAll || g.GameOver

	// --- Metadata ---
	fmt.Fprintln(bw, "=== BOARD DUMP ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "game_id: %s\n", g.ID)
	fmt.Fprintf(bw, "seed: %d\n", g.Seed)
	fmt.Fprintf(bw, "size: %d\n", b.Size())
	fmt.Fprintln(bw, "coordinate_system: column letter + row number (A1 = top left)")
	fmt.Fprintf(bw, "agent: %s\n", world.DisplayName(g.CurrentCell))
	fmt.Fprintf(bw, "entry: %s\n", world.DisplayName(b.Entry()))
	fmt.Fprintf(bw, "exit: %s\n", world.DisplayName(b.Exit()))
	fmt.Fprintf(bw, "treasure_collected: %v\n", g.TreasureCollected)
	fmt.Fprintf(bw, "game_over: %v\n", g.GameOver)
	fmt.Fprintf(bw, "last_event: %s\n", g.LastEvent)
	if g.LastDeath != nil {
		fmt.Fprintf(bw, "last_death: %s at %s\n", g.LastDeath.Cause, world.DisplayName(g.LastDeath.Position))
	}
	fmt.Fprintf(bw, "route: %s\n", routeString(g.Route))
	fmt.Fprintf(bw, "route_index: %d\n", g.RouteIndex)
	fmt.Fprintf(bw, "unsolvable: %v\n", g.Unsolvable())
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	fmt.Fprintf(bw, ". = empty or hidden  @ = agent  S = entry  E = exit  %c = monster  %c = pit  %c = treasure  %c = wind  %c = odor  * = wind and odor\n",
		entities.FeatureMonster.Symbol(), entities.FeaturePit.Symbol(), entities.FeatureTreasure.Symbol(),
		entities.FeatureWind.Symbol(), entities.FeatureOdor.Symbol())
	fmt.Fprintln(bw, "")

	// --- Board ---
	if revealed {
		fmt.Fprintln(bw, "--- Board (fully revealed) ---")
	} else {
		fmt.Fprintln(bw, "--- Board (features hidden) ---")
	}
	writeBoardGrid(bw, g, revealed)
	fmt.Fprintln(bw, "")

	// --- Features ---
	if revealed {
		fmt.Fprintln(bw, "--- Features ---")
		fmt.Fprintf(bw, "monster: %s\n", world.DisplayName(b.Monster))
		if t, ok := b.Treasure(); ok {
			fmt.Fprintf(bw, "treasure: %s\n", world.DisplayName(t))
		} else {
			fmt.Fprintln(bw, "treasure: taken")
		}
		fmt.Fprintf(bw, "pits: %s\n", displayNames(world.SortedCells(b.Pits)))
		fmt.Fprintf(bw, "wind: %s\n", displayNames(world.SortedCells(b.Wind)))
		fmt.Fprintf(bw, "odor: %s\n", displayNames(world.SortedCells(b.Odor)))
		fmt.Fprintln(bw, "")
	}

	// --- Messages ---
	fmt.Fprintln(bw, "--- Messages ---")
	for _, msg := range g.Messages {
		fmt.Fprintf(bw, "  %s\n", msg)
	}

	return bw.Flush()
}

// DumpBoardToFile writes a fully revealed dump to board.txt in dir and
// returns the absolute path.
func DumpBoardToFile(g *state.Game, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, boardDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := DumpBoard(f, g, true); err != nil {
		return "", fmt.Errorf("dump board to %s: %w", absPath, err)
	}
	return absPath, nil
}
