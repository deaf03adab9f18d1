// Package state holds the board and agent state of a single game.
package state

import (
	"github.com/google/uuid"

	"wumpusworld/pkg/engine/world"
)

// maxMessages is how many log lines a game keeps
const maxMessages = 5

// Game represents one game instance. A restart replaces the whole value.
type Game struct {
	ID   uuid.UUID
	Seed uint64

	Board *Board

	CurrentCell       world.Cell
	TreasureCollected bool
	GameOver          bool
	LastEvent         Event
	LastDeath         *Death

	// Route is the planned move sequence from entry to exit; RouteIndex is
	// the next move to apply.
	Route      []world.Direction
	RouteIndex int

	// ArrivalReported is set once the exhausted route has been announced
	ArrivalReported bool

	Messages []string
}

// NewGame creates a new game on the given board with the agent at the entry
func NewGame(board *Board, route []world.Direction) *Game {
	return &Game{
		ID:          uuid.New(),
		Board:       board,
		CurrentCell: board.Entry(),
		LastEvent:   EventNone,
		Route:       route,
		Messages:    make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// RouteExhausted returns true when every planned move has been consumed
func (g *Game) RouteExhausted() bool {
	return g.RouteIndex >= len(g.Route)
}

// RouteRemaining returns the number of planned moves not yet applied
func (g *Game) RouteRemaining() int {
	if g.RouteExhausted() {
		return 0
	}
	return len(g.Route) - g.RouteIndex
}

// Unsolvable returns true if no route to the exit was found, leaving the
// agent with nothing to do
func (g *Game) Unsolvable() bool {
	return len(g.Route) == 0 && g.CurrentCell != g.Board.Exit()
}

// Won returns true if the agent escaped carrying the treasure
func (g *Game) Won() bool {
	return g.GameOver && g.LastEvent == EventEscapedWithTreasure
}
