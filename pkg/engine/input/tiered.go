package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceMouse
	DeviceTerminal
)

// Action represents a high-level intent.
type Action int

const (
	ActionNone Action = iota

	// Manual movement, also used to move menu selections
	ActionMoveNorth
	ActionMoveSouth
	ActionMoveWest
	ActionMoveEast

	ActionConfirm  // Activate the selected menu item
	ActionPause    // Toggle automatic route playback
	ActionStep     // Apply one route step while paused
	ActionMainMenu // Abandon the current game
	ActionDumpBoard
	ActionQuit
)

// Intent is the 4th-layer, high-level description of what the player wants to do.
type Intent struct {
	Action Action
}

// RawInput is the 1st-layer event emitted directly from an input device.
// Code is a device-specific identifier (e.g. "arrow_up", "enter", "q").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd-layer representation after debouncing.
// Ebiten's inpututil and terminal raw mode already deliver one event per
// key press, so this is a thin copy.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, Vim)
	"arrow_up":    ActionMoveNorth,
	"k":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"j":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"h":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"l":           ActionMoveEast,

	"enter":       ActionConfirm,
	"mouse_left":  ActionConfirm,
	"space":       ActionPause,
	"p":           ActionPause,
	"n":           ActionStep,
	"m":           ActionMainMenu,
	"d":           ActionDumpBoard,
	"q":           ActionQuit,
	"escape":      ActionQuit,
	"ctrl_c":      ActionQuit,
	"mouse_right": ActionMainMenu,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings to a debounced
// input and returns a high-level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	if act, ok := bindings[ev.Code]; ok {
		return Intent{Action: act}
	}
	return Intent{Action: ActionNone}
}

// Resolve runs a raw event through every layer.
func Resolve(raw RawInput) Intent {
	return MapToIntent(NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveEast:
		return "Move East"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionStep:
		return "Step"
	case ActionMainMenu:
		return "Main Menu"
	case ActionDumpBoard:
		return "Dump Board"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
