package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"wumpusworld/pkg/engine/input"
)

// keyCodes maps Ebiten keys to the codes the input bindings use
var keyCodes = map[ebiten.Key]string{
	ebiten.KeyArrowUp:     "arrow_up",
	ebiten.KeyArrowDown:   "arrow_down",
	ebiten.KeyArrowLeft:   "arrow_left",
	ebiten.KeyArrowRight:  "arrow_right",
	ebiten.KeyH:           "h",
	ebiten.KeyJ:           "j",
	ebiten.KeyK:           "k",
	ebiten.KeyL:           "l",
	ebiten.KeyEnter:       "enter",
	ebiten.KeyNumpadEnter: "enter",
	ebiten.KeySpace:       "space",
	ebiten.KeyP:           "p",
	ebiten.KeyN:           "n",
	ebiten.KeyM:           "m",
	ebiten.KeyD:           "d",
	ebiten.KeyQ:           "q",
	ebiten.KeyEscape:      "escape",
}

// rect is a screen area in pixels
type rect struct {
	x, y, w, h int
}

func (r rect) contains(px, py int) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// pollInput returns the key and mouse presses of this frame (raw layer).
// A left click on a menu item selects it before the click confirms.
func (e *EbitenRenderer) pollInput() []input.RawInput {
	now := time.Now()
	var events []input.RawInput

	for key, code := range keyCodes {
		if inpututil.IsKeyJustPressed(key) {
			events = append(events, input.RawInput{Device: input.DeviceKeyboard, Code: code, Timestamp: now})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if m := e.session.Menu(); m != nil {
			x, y := ebiten.CursorPosition()
			for i, r := range e.menuItemRects {
				if r.contains(x, y) && m.Select(i) {
					events = append(events, input.RawInput{Device: input.DeviceMouse, Code: "mouse_left", Timestamp: now})
					break
				}
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		events = append(events, input.RawInput{Device: input.DeviceMouse, Code: "mouse_right", Timestamp: now})
	}

	return events
}
