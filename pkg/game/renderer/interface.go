// Package renderer defines the presentation backends and the view model
// they share.
package renderer

import (
	"context"
	"time"

	"wumpusworld/pkg/game/gameplay"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleSubtle
	StyleLabel
	StyleAgent
	StyleEntry
	StyleExit
	StyleMonster
	StylePit
	StyleTreasure
	StyleWind
	StyleOdor
	StyleSelected
	StyleDenied
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, window, etc.)
	Init()

	// Run drives s until the player quits or ctx is cancelled, advancing
	// the game every tick.
	Run(ctx context.Context, s *gameplay.Session, tick time.Duration) error
}
