package state

import "wumpusworld/pkg/engine/world"

// Event is the outcome of the most recent position evaluation
type Event int

// Events, in no particular priority order
const (
	EventNone Event = iota
	EventMonsterDeath
	EventPitDeath
	EventTreasureFound
	EventWindSensed
	EventOdorSensed
	EventEscapedWithTreasure
	EventEscapedWithoutTreasure
)

var eventNames = map[Event]string{
	EventNone:                   "none",
	EventMonsterDeath:           "monster-death",
	EventPitDeath:               "pit-death",
	EventTreasureFound:          "treasure-found",
	EventWindSensed:             "wind-sensed",
	EventOdorSensed:             "odor-sensed",
	EventEscapedWithTreasure:    "escaped-with-treasure",
	EventEscapedWithoutTreasure: "escaped-without-treasure",
}

// String returns the kebab-case event name
func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "unknown"
}

// IsDeath returns true for events that send the agent back to the entry
func (e Event) IsDeath() bool {
	return e == EventMonsterDeath || e == EventPitDeath
}

// IsTerminal returns true for events that end the game
func (e Event) IsTerminal() bool {
	return e == EventEscapedWithTreasure || e == EventEscapedWithoutTreasure
}

// Death records where and how the agent last died
type Death struct {
	Position world.Cell
	Cause    Event
}
