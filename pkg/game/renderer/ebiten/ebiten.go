package ebiten

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"

	"wumpusworld/pkg/engine/input"
	"wumpusworld/pkg/game/gameplay"
	"wumpusworld/pkg/game/i18n"
)

// EbitenRenderer draws the session in a window. It implements ebiten.Game.
type EbitenRenderer struct {
	session  *gameplay.Session
	ctx      context.Context
	tick     time.Duration
	lastStep time.Time

	windowWidth  int
	windowHeight int

	monoFontSource *text.GoTextFaceSource
	monoFace       *text.GoTextFace

	// Screen areas of the menu items drawn last frame, for mouse hits
	menuItemRects []rect

	windowOpenedLogged bool
}

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:  defaultWindowWidth,
		windowHeight: defaultWindowHeight,
	}
}

// Init loads the font. Without it, text falls back to Ebiten's debug font.
func (e *EbitenRenderer) Init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		slog.Warn("cannot load font, using debug text", "error", err)
		return
	}
	e.monoFontSource = src
	e.monoFace = &text.GoTextFace{Source: src, Size: uiFontSize}
}

// Run opens the window and blocks until the player quits or ctx is done
func (e *EbitenRenderer) Run(ctx context.Context, s *gameplay.Session, tick time.Duration) error {
	e.session = s
	e.ctx = ctx
	e.tick = tick
	e.lastStep = time.Now()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(i18n.Get("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(e)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update handles input and advances the game (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		slog.Debug("window opened", "width", w, "height", h)
	}

	if e.ctx.Err() != nil || e.session.Phase() == gameplay.PhaseQuit {
		return ebiten.Termination
	}

	for _, raw := range e.pollInput() {
		e.session.HandleIntent(input.Resolve(raw))
	}

	if time.Since(e.lastStep) >= e.tick {
		e.lastStep = time.Now()
		e.session.Tick()
	}
	return nil
}

// Layout uses the window size as the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
