// Package generator places hazards and treasure on new boards.
package generator

import (
	"errors"
	"fmt"

	"wumpusworld/pkg/game/state"
)

// RandomSource is the randomness a generator draws cells from.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// BoardGenerator is an interface for board generation algorithms
type BoardGenerator interface {
	Generate(size int, rng RandomSource) (*state.Board, error)
	Name() string
}

// Available generators
var (
	Wumpus = &WumpusGenerator{}
)

// DefaultGenerator is the default board generator
var DefaultGenerator BoardGenerator = Wumpus

// ErrInfeasible is wrapped by every GenerationError
var ErrInfeasible = errors.New("board layout is infeasible")

// GenerationError reports a feature that could not be placed. Callers
// should retry with a fresh seed or a larger board.
type GenerationError struct {
	Size     int
	Feature  string
	Attempts int
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("cannot place %s on a %dx%d board after %d attempts", e.Feature, e.Size, e.Size, e.Attempts)
}

func (e *GenerationError) Unwrap() error {
	return ErrInfeasible
}
