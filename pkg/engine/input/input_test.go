package input

import (
	"bufio"
	"strings"
	"testing"
)

func readAll(t *testing.T, s string) []string {
	t.Helper()
	r := bufio.NewReader(strings.NewReader(s))
	var codes []string
	for {
		code, err := ReadKey(r)
		if err != nil {
			return codes
		}
		codes = append(codes, code)
	}
}

func TestReadKey_Arrows(t *testing.T) {
	got := readAll(t, "\x1b[A\x1b[B\x1bOC\x1b[D")
	want := []string{"arrow_up", "arrow_down", "arrow_right", "arrow_left"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ReadKey arrows = %v, want %v", got, want)
	}
}

func TestReadKey_PlainKeys(t *testing.T) {
	got := readAll(t, "Q \r\x03m")
	want := []string{"q", "space", "enter", "ctrl_c", "m"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("ReadKey = %v, want %v", got, want)
	}
}

func TestReadKey_LoneEscape(t *testing.T) {
	if got := readAll(t, "\x1b"); len(got) != 1 || got[0] != "escape" {
		t.Errorf("ReadKey lone ESC = %v, want [escape]", got)
	}
	// ESC followed by an ordinary key leaves the key for the next read
	if got := readAll(t, "\x1bq"); strings.Join(got, ",") != "escape,q" {
		t.Errorf("ReadKey ESC q = %v, want [escape q]", got)
	}
}

func TestResolve_Bindings(t *testing.T) {
	cases := map[string]Action{
		"arrow_up":   ActionMoveNorth,
		"l":          ActionMoveEast,
		"enter":      ActionConfirm,
		"space":      ActionPause,
		"q":          ActionQuit,
		"ctrl_c":     ActionQuit,
		"m":          ActionMainMenu,
		"d":          ActionDumpBoard,
		"unbound":    ActionNone,
		"mouse_left": ActionConfirm,
	}
	for code, want := range cases {
		got := Resolve(RawInput{Device: DeviceTerminal, Code: code})
		if got.Action != want {
			t.Errorf("Resolve(%q) = %v, want %v", code, ActionName(got.Action), ActionName(want))
		}
	}
}

func TestGetBindingsByAction_Sorted(t *testing.T) {
	codes := GetBindingsByAction()[ActionQuit]
	want := []string{"ctrl_c", "escape", "q"}
	if strings.Join(codes, ",") != strings.Join(want, ",") {
		t.Errorf("quit bindings = %v, want %v", codes, want)
	}
}
