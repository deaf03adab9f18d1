package gameplay

import (
	"fmt"
	"log/slog"

	"golang.org/x/exp/rand"

	"wumpusworld/pkg/engine/pathfind"
	"wumpusworld/pkg/engine/world"
	"wumpusworld/pkg/game/generator"
	"wumpusworld/pkg/game/state"
)

// BuildGame generates a board from seed, plans the route from entry to exit
// and returns a game with the agent at the entry. A board with no route is
// still returned; the game reports itself as unsolvable.
func BuildGame(gen generator.BoardGenerator, size int, seed uint64) (*state.Game, error) {
	board, err := gen.Generate(size, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, fmt.Errorf("generate %dx%d board: %w", size, size, err)
	}

	route := pathfind.FindPath(board.Entry(), board.Exit(), board.Size(), board.Obstacles())
	g := state.NewGame(board, route)
	g.Seed = seed

	logMessage(g, "WELCOME", world.DisplayName(board.Entry()), world.DisplayName(board.Exit()))
	if g.Unsolvable() {
		logMessage(g, "UNSOLVABLE")
	}

	slog.Info("board generated",
		"game_id", g.ID,
		"generator", gen.Name(),
		"seed", seed,
		"size", size,
		"route_length", len(route),
		"unsolvable", g.Unsolvable())

	return g, nil
}
