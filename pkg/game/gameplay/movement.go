// Package gameplay provides core game logic for agent movement and outcomes.
package gameplay

import (
	"wumpusworld/pkg/engine/world"
	"wumpusworld/pkg/game/i18n"
	"wumpusworld/pkg/game/state"
)

// StepOutcome describes what a single step did
type StepOutcome int

const (
	// StepIgnored means the game was already over and nothing changed
	StepIgnored StepOutcome = iota
	// StepMoved means the agent entered a new cell, which was then evaluated
	StepMoved
	// StepDropped means the move would have left the board and was skipped
	StepDropped
	// StepArrived means the planned route has no moves left
	StepArrived
)

// StepResult is returned by Advance and Move
type StepResult struct {
	Outcome  StepOutcome
	Event    state.Event
	Position world.Cell
}

// eventMessage is the message key logged for an event
type eventMessage struct {
	key      string
	withCell bool // message takes the cell's display name
}

var eventMessages = map[state.Event]eventMessage{
	state.EventMonsterDeath:           {"MONSTER_DEATH", true},
	state.EventPitDeath:               {"PIT_DEATH", true},
	state.EventTreasureFound:          {"TREASURE_FOUND", true},
	state.EventWindSensed:             {"WIND_SENSED", true},
	state.EventOdorSensed:             {"ODOR_SENSED", true},
	state.EventEscapedWithTreasure:    {"ESCAPED_WITH_TREASURE", false},
	state.EventEscapedWithoutTreasure: {"ESCAPED_WITHOUT_TREASURE", false},
}

// Advance applies the next move of the planned route. The route cursor
// moves on even if the move is dropped for leaving the board.
func Advance(g *state.Game) StepResult {
	if g.GameOver {
		return StepResult{Outcome: StepIgnored, Event: state.EventNone, Position: g.CurrentCell}
	}

	if g.RouteExhausted() {
		if !g.ArrivalReported && len(g.Route) > 0 {
			logMessage(g, "ARRIVED")
		}
		g.ArrivalReported = true
		return StepResult{Outcome: StepArrived, Event: state.EventNone, Position: g.CurrentCell}
	}

	dir := g.Route[g.RouteIndex]
	g.RouteIndex++
	return Move(g, dir)
}

// Move moves the agent one cell in dir without touching the planned route.
// Moves off the board are ignored.
func Move(g *state.Game, dir world.Direction) StepResult {
	if g.GameOver {
		return StepResult{Outcome: StepIgnored, Event: state.EventNone, Position: g.CurrentCell}
	}

	next, ok := g.Board.Grid.GetCellRelative(g.CurrentCell, dir)
	if !ok {
		return StepResult{Outcome: StepDropped, Event: state.EventNone, Position: g.CurrentCell}
	}

	g.CurrentCell = next
	event := EvaluatePosition(g)
	return StepResult{Outcome: StepMoved, Event: event, Position: g.CurrentCell}
}

// EvaluatePosition applies the effect of the agent's current cell and
// records the resulting event. The first matching rule wins: monster, pit,
// treasure, exit, wind, odor.
func EvaluatePosition(g *state.Game) state.Event {
	b := g.Board
	at := g.CurrentCell

	var event state.Event
	switch {
	case at == b.Monster:
		event = state.EventMonsterDeath
	case b.IsPit(at):
		event = state.EventPitDeath
	case b.HasTreasureAt(at) && !g.TreasureCollected:
		event = state.EventTreasureFound
		g.TreasureCollected = true
		b.TakeTreasure()
	case at == b.Exit():
		if g.TreasureCollected {
			event = state.EventEscapedWithTreasure
		} else {
			event = state.EventEscapedWithoutTreasure
		}
		g.GameOver = true
	case b.Wind.Has(at):
		event = state.EventWindSensed
	case b.Odor.Has(at):
		event = state.EventOdorSensed
	default:
		event = state.EventNone
	}

	if event.IsDeath() {
		g.LastDeath = &state.Death{Position: at, Cause: event}
		g.CurrentCell = b.Entry()
	}

	g.LastEvent = event
	if msg, ok := eventMessages[event]; ok {
		if msg.withCell {
			logMessage(g, msg.key, world.DisplayName(at))
		} else {
			logMessage(g, msg.key)
		}
	}
	return event
}

// logMessage adds a translated message to the game's message log
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(i18n.Get(key, a...))
}
