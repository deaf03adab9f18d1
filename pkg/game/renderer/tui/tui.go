// Package tui renders the game in a terminal.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gookit/color"

	"wumpusworld/pkg/engine/input"
	"wumpusworld/pkg/engine/terminal"
	"wumpusworld/pkg/game/gameplay"
	"wumpusworld/pkg/game/i18n"
	"wumpusworld/pkg/game/menu"
	"wumpusworld/pkg/game/renderer"
	"wumpusworld/pkg/game/state"
)

// maxPaneWidth caps the width of the message pane rule
const maxPaneWidth = 72

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	in     *os.File
	out    io.Writer
	width  int
	styles map[renderer.TextStyle]color.Style
}

// New creates a new TUI renderer on stdin and stdout
func New() *TUIRenderer {
	return &TUIRenderer{in: os.Stdin, out: os.Stdout}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.styles = map[renderer.TextStyle]color.Style{
		renderer.StyleSubtle:   {color.FgGray, color.OpBold},
		renderer.StyleLabel:    {color.FgBlue},
		renderer.StyleAgent:    {color.FgGreen, color.BgBlack, color.OpBold},
		renderer.StyleEntry:    {color.FgCyan},
		renderer.StyleExit:     {color.FgGreen},
		renderer.StyleMonster:  {color.FgRed, color.OpBold},
		renderer.StylePit:      {color.FgMagenta, color.OpBold},
		renderer.StyleTreasure: {color.FgYellow, color.OpBold},
		renderer.StyleWind:     {color.FgCyan},
		renderer.StyleOdor:     {color.FgYellow},
		renderer.StyleSelected: {color.FgMagenta, color.OpBold},
		renderer.StyleDenied:   {color.FgRed, color.OpBold},
	}

	t.width = maxPaneWidth
	if w, _ := terminal.GetSize(os.Stdout); w < t.width {
		t.width = w
	}
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	s, ok := t.styles[style]
	if !ok {
		return text
	}
	return s.Sprint(text)
}

// Run reads keys in raw mode and advances the session every tick until the
// player quits.
func (t *TUIRenderer) Run(ctx context.Context, s *gameplay.Session, tick time.Duration) error {
	kb, err := input.OpenKeyboard(t.in)
	if err != nil {
		return err
	}
	defer kb.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan input.RawInput, 8)
	go func() {
		if err := kb.Listen(ctx, keys); err != nil && !errors.Is(err, context.Canceled) {
			slog.Error("keyboard stopped", "error", err)
		}
	}()

	terminal.HideCursor(t.out)
	defer terminal.ShowCursor(t.out)
	terminal.Clear(t.out)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for s.Phase() != gameplay.PhaseQuit {
		if err := terminal.WriteFrame(t.out, t.Frame(s)); err != nil {
			return fmt.Errorf("draw frame: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case raw := <-keys:
			s.HandleIntent(input.Resolve(raw))
		case <-ticker.C:
			s.Tick()
		}
	}

	terminal.Clear(t.out)
	return nil
}

// Frame returns the full screen for the session's current phase
func (t *TUIRenderer) Frame(s *gameplay.Session) string {
	var b strings.Builder

	if g := s.Game(); g != nil {
		t.writeGame(&b, g, s.Paused())
	}
	if m := s.Menu(); m != nil {
		t.writeMenu(&b, m)
	}
	if err := s.Err(); err != nil && s.Phase() == gameplay.PhaseMenu {
		b.WriteString(t.StyleText(i18n.Get("START_FAILED", err.Error()), renderer.StyleDenied))
		b.WriteString("\n")
	}
	return b.String()
}

func (t *TUIRenderer) writeGame(b *strings.Builder, g *state.Game, paused bool) {
	b.WriteString(t.StyleText(i18n.Get("TITLE"), renderer.StyleSelected))
	if paused {
		b.WriteString("  " + t.StyleText(i18n.Get("PAUSED"), renderer.StyleDenied))
	}
	b.WriteString("\n\n")

	t.writeBoard(b, g)
	b.WriteString("\n")

	b.WriteString(renderer.StatusLine(g))
	b.WriteString("\n")
	if line := renderer.DeathLine(g); line != "" {
		b.WriteString(t.StyleText(line, renderer.StyleDenied))
		b.WriteString("\n")
	}

	t.writeMessagesPane(b, g)

	if !g.GameOver && !g.Unsolvable() {
		for _, line := range renderer.KeyHelp() {
			b.WriteString(t.StyleText(line, renderer.StyleSubtle))
			b.WriteString("\n")
		}
	}
}

// writeBoard draws the board with column letters on top and row numbers
// on the left
func (t *TUIRenderer) writeBoard(b *strings.Builder, g *state.Game) {
	b.WriteString("    ")
	for _, label := range renderer.ColumnLabels(g.Board.Size()) {
		b.WriteString(t.StyleText(label, renderer.StyleLabel) + " ")
	}
	b.WriteString("\n")

	for y, row := range renderer.BoardView(g) {
		b.WriteString(t.StyleText(fmt.Sprintf("%3d ", y+1), renderer.StyleLabel))
		for _, tile := range row {
			b.WriteString(t.StyleText(tile.Glyph(), tile.Style()) + " ")
		}
		b.WriteString("\n")
	}
}

// writeMessagesPane renders the messages log pane
func (t *TUIRenderer) writeMessagesPane(b *strings.Builder, g *state.Game) {
	label := " " + i18n.Get("MESSAGES") + " "
	sideLen := (t.width - len([]rune(label))) / 2
	if sideLen < 1 {
		sideLen = 1
	}
	b.WriteString("\n")
	b.WriteString(t.StyleText(strings.Repeat("─", sideLen)+label+strings.Repeat("─", sideLen), renderer.StyleSubtle))
	b.WriteString("\n")
	for _, msg := range g.Messages {
		b.WriteString("  " + msg + "\n")
	}
	b.WriteString(t.StyleText(strings.Repeat("─", 2*sideLen+len([]rune(label))), renderer.StyleSubtle))
	b.WriteString("\n")
}

func (t *TUIRenderer) writeMenu(b *strings.Builder, m *menu.Menu) {
	b.WriteString("\n")
	b.WriteString(t.StyleText(m.Title(), renderer.StyleSelected))
	b.WriteString("\n\n")

	for i, item := range m.Items {
		switch {
		case i == m.Selected():
			b.WriteString(t.StyleText("> "+item.GetLabel(), renderer.StyleSelected))
		case item.IsSelectable():
			b.WriteString("  " + item.GetLabel())
		default:
			b.WriteString(t.StyleText("  "+item.GetLabel(), renderer.StyleSubtle))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if selected := m.SelectedItem(); selected != nil && selected.GetHelpText() != "" {
		b.WriteString(selected.GetHelpText())
		b.WriteString("\n")
	}
	b.WriteString(t.StyleText(m.Instructions(), renderer.StyleSubtle))
	b.WriteString("\n")
}
