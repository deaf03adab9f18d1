// Package terminal wraps the few terminal controls the text renderer needs.
package terminal

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// ANSI control sequences
const (
	clearScreen = "\x1b[2J"
	cursorHome  = "\x1b[H"
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	clearLine   = "\x1b[K"
	clearBelow  = "\x1b[J"
)

// GetSize returns the width and height of f.
// Falls back to defaults if f is not a terminal.
func GetSize(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Clear clears the screen and moves the cursor to the top left.
func Clear(w io.Writer) error {
	_, err := io.WriteString(w, clearScreen+cursorHome)
	return err
}

// Home moves the cursor to the top left without clearing, so a full frame
// can be redrawn over the previous one.
func Home(w io.Writer) error {
	_, err := io.WriteString(w, cursorHome)
	return err
}

// HideCursor hides the cursor.
func HideCursor(w io.Writer) error {
	_, err := io.WriteString(w, hideCursor)
	return err
}

// ShowCursor shows the cursor again.
func ShowCursor(w io.Writer) error {
	_, err := io.WriteString(w, showCursor)
	return err
}

// WriteFrame redraws the screen with frame. Lines end in CRLF so the frame
// renders correctly while the terminal is in raw mode, and leftovers from a
// longer previous frame are erased.
func WriteFrame(w io.Writer, frame string) error {
	frame = strings.TrimSuffix(frame, "\n")
	var b strings.Builder
	b.WriteString(cursorHome)
	b.WriteString(strings.ReplaceAll(frame, "\n", clearLine+"\r\n"))
	b.WriteString(clearLine + "\r\n" + clearBelow)
	_, err := io.WriteString(w, b.String())
	return err
}
