// Package input turns device events into high-level intents.
package input

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// ReadKey reads one key press from r and returns its code. Unknown escape
// sequences and control bytes yield an empty code.
func ReadKey(r *bufio.Reader) (string, error) {
	b, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 0x1b:
		return readEscape(r)
	case b == 3:
		return "ctrl_c", nil
	case b == '\r' || b == '\n':
		return "enter", nil
	case b == ' ':
		return "space", nil
	case b >= 'A' && b <= 'Z':
		return string(b + ('a' - 'A')), nil
	case b > ' ' && b < 127:
		return string(b), nil
	}
	return "", nil
}

// readEscape decodes what follows an ESC byte. A lone ESC with nothing
// buffered behind it is the escape key.
func readEscape(r *bufio.Reader) (string, error) {
	if r.Buffered() == 0 {
		return "escape", nil
	}

	b2, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	// CSI (ESC [) and SS3 (ESC O) sequences
	if b2 != '[' && b2 != 'O' {
		if err := r.UnreadByte(); err != nil {
			return "", err
		}
		return "escape", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	return "", nil
}

// Keyboard reads key presses from a terminal in raw mode.
type Keyboard struct {
	fd       int
	oldState *term.State
	reader   *bufio.Reader
}

// OpenKeyboard puts f into raw mode. Close restores the previous mode.
func OpenKeyboard(f *os.File) (*Keyboard, error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set terminal raw mode: %w", err)
	}
	return &Keyboard{fd: fd, oldState: oldState, reader: bufio.NewReader(f)}, nil
}

// Close restores the terminal.
func (k *Keyboard) Close() error {
	return term.Restore(k.fd, k.oldState)
}

// Listen sends key presses to out until ctx is cancelled or the terminal
// stops delivering input.
func (k *Keyboard) Listen(ctx context.Context, out chan<- RawInput) error {
	for {
		code, err := ReadKey(k.reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		if code == "" {
			continue
		}

		select {
		case out <- RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
