package gameplay

import (
	"errors"
	"log/slog"
	"time"

	"golang.org/x/exp/rand"

	engineinput "wumpusworld/pkg/engine/input"
	"wumpusworld/pkg/engine/world"
	"wumpusworld/pkg/game/devtools"
	"wumpusworld/pkg/game/generator"
	"wumpusworld/pkg/game/menu"
	"wumpusworld/pkg/game/state"
)

// Phase is the screen a session is on
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	// PhaseGameOver follows an escape through the exit
	PhaseGameOver
	// PhaseStalled means the board has no route and the agent cannot move
	PhaseStalled
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	case PhaseStalled:
		return "stalled"
	case PhaseQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// maxGenerationTries is how many seeds Start tries when sampling runs out of draws
const maxGenerationTries = 5

// Session runs games one after another. Renderers call Tick at a fixed
// rate and feed player intents through HandleIntent.
type Session struct {
	// DumpDir is where the dump-board action writes board.txt
	DumpDir string

	gen    generator.BoardGenerator
	size   int
	seeds  *rand.Rand
	logger *slog.Logger

	phase  Phase
	game   *state.Game
	menu   *menu.Menu
	paused bool
	err    error
}

// NewSession creates a session showing the main menu. A zero seed picks one
// from the clock; any other seed makes the sequence of boards repeatable.
func NewSession(gen generator.BoardGenerator, size int, seed uint64, logger *slog.Logger) *Session {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		DumpDir: ".",
		gen:     gen,
		size:    size,
		seeds:   rand.New(rand.NewSource(seed)),
		logger:  logger,
		phase:   PhaseMenu,
		menu:    menu.NewMainMenu(),
	}
}

// Phase returns the current phase
func (s *Session) Phase() Phase { return s.phase }

// Game returns the current game, or nil on the main menu
func (s *Session) Game() *state.Game { return s.game }

// Menu returns the menu on screen, or nil during play
func (s *Session) Menu() *menu.Menu { return s.menu }

// Paused reports whether automatic route playback is suspended
func (s *Session) Paused() bool { return s.paused }

// Err returns the error from the last failed Start
func (s *Session) Err() error { return s.err }

// Start builds a new game and begins playing it. A board whose route is
// empty puts the session straight into PhaseStalled.
func (s *Session) Start() error {
	var err error
	for try := 0; try < maxGenerationTries; try++ {
		seed := s.seeds.Uint64()

		var g *state.Game
		g, err = BuildGame(s.gen, s.size, seed)
		if err == nil {
			s.game = g
			s.menu = nil
			s.paused = false
			s.err = nil
			s.phase = PhasePlaying
			if g.Unsolvable() {
				s.logger.Warn("board has no route to the exit", "game_id", g.ID, "seed", seed)
				s.finish(PhaseStalled)
			}
			return nil
		}

		// A board too small to hold every feature fails the same way for any seed
		var genErr *generator.GenerationError
		if !errors.As(err, &genErr) || genErr.Attempts == 0 {
			break
		}
		s.logger.Warn("board generation failed, retrying", "seed", seed, "error", err)
	}

	s.err = err
	s.logger.Error("cannot start game", "size", s.size, "error", err)
	return err
}

// Tick applies one step of the planned route while playing
func (s *Session) Tick() StepResult {
	if s.phase != PhasePlaying || s.paused {
		return StepResult{Outcome: StepIgnored}
	}
	return s.afterStep(Advance(s.game))
}

// ReturnToMenu discards the current game and shows the main menu
func (s *Session) ReturnToMenu() {
	s.game = nil
	s.paused = false
	s.menu = menu.NewMainMenu()
	s.phase = PhaseMenu
}

// Quit ends the session
func (s *Session) Quit() {
	s.phase = PhaseQuit
}

// HandleIntent applies a player intent to the current phase
func (s *Session) HandleIntent(intent engineinput.Intent) {
	if intent.Action == engineinput.ActionQuit {
		s.Quit()
		return
	}

	if intent.Action == engineinput.ActionDumpBoard {
		s.dumpBoard()
		return
	}

	if s.menu != nil {
		s.handleMenuIntent(intent)
		return
	}

	if s.phase != PhasePlaying {
		return
	}

	switch intent.Action {
	case engineinput.ActionPause:
		s.paused = !s.paused
	case engineinput.ActionStep:
		if s.paused {
			s.afterStep(Advance(s.game))
		}
	case engineinput.ActionMainMenu:
		s.ReturnToMenu()
	default:
		if dir, ok := directionFor(intent.Action); ok {
			s.afterStep(Move(s.game, dir))
		}
	}
}

func (s *Session) handleMenuIntent(intent engineinput.Intent) {
	switch intent.Action {
	case engineinput.ActionMoveNorth, engineinput.ActionMoveWest:
		s.menu.MoveUp()
	case engineinput.ActionMoveSouth, engineinput.ActionMoveEast:
		s.menu.MoveDown()
	case engineinput.ActionMainMenu:
		if s.phase != PhaseMenu {
			s.ReturnToMenu()
		}
	case engineinput.ActionConfirm:
		s.Activate()
	}
}

// Activate runs the action of the selected menu item
func (s *Session) Activate() {
	if s.menu == nil {
		return
	}
	action, ok := s.menu.SelectedAction()
	if !ok {
		return
	}
	switch action {
	case menu.ActionStart:
		// A failed start stays on the main menu with Err set
		_ = s.Start()
	case menu.ActionMainMenu:
		s.ReturnToMenu()
	case menu.ActionQuit:
		s.Quit()
	}
}

func (s *Session) dumpBoard() {
	if s.game == nil {
		return
	}
	path, err := devtools.DumpBoardToFile(s.game, s.DumpDir)
	if err != nil {
		s.logger.Warn("board dump failed", "game_id", s.game.ID, "error", err)
		logMessage(s.game, "DUMP_FAILED", err.Error())
		return
	}
	logMessage(s.game, "DUMP_SAVED", path)
}

// afterStep moves to the game-over menu once the game has ended
func (s *Session) afterStep(res StepResult) StepResult {
	if s.game.GameOver {
		s.finish(PhaseGameOver)
	}
	return res
}

func (s *Session) finish(phase Phase) {
	s.phase = phase
	s.menu = menu.NewGameOverMenu()
	s.logger.Info("game over",
		"game_id", s.game.ID,
		"phase", phase.String(),
		"outcome", s.game.LastEvent.String(),
		"treasure", s.game.TreasureCollected)
}

func directionFor(a engineinput.Action) (world.Direction, bool) {
	switch a {
	case engineinput.ActionMoveWest:
		return world.West, true
	case engineinput.ActionMoveEast:
		return world.East, true
	case engineinput.ActionMoveNorth:
		return world.North, true
	case engineinput.ActionMoveSouth:
		return world.South, true
	}
	return 0, false
}
