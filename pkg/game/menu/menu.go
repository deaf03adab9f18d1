// Package menu provides the menus shown before and after a game.
package menu

import "wumpusworld/pkg/game/i18n"

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// Action represents what activating a menu item does.
type Action int

const (
	ActionStart Action = iota
	ActionQuit
	ActionMainMenu
)

// ActionItem is a selectable item bound to an Action. Labels are message keys.
type ActionItem struct {
	LabelKey string
	HelpKey  string
	Action   Action
}

// GetLabel returns the translated label.
func (m *ActionItem) GetLabel() string {
	return i18n.Get(m.LabelKey)
}

// IsSelectable returns whether this item can be selected.
func (m *ActionItem) IsSelectable() bool {
	return true
}

// GetHelpText returns the translated help text.
func (m *ActionItem) GetHelpText() string {
	if m.HelpKey == "" {
		return ""
	}
	return i18n.Get(m.HelpKey)
}

// Menu is a list of items with one selected entry.
type Menu struct {
	TitleKey string
	Items    []MenuItem
	selected int
}

// New creates a menu with the first selectable item selected.
func New(titleKey string, items ...MenuItem) *Menu {
	m := &Menu{TitleKey: titleKey, Items: items}
	for i, item := range items {
		if item.IsSelectable() {
			m.selected = i
			break
		}
	}
	return m
}

// NewMainMenu creates the menu shown before a game starts.
func NewMainMenu() *Menu {
	return New("TITLE",
		&ActionItem{LabelKey: "MENU_START", HelpKey: "MENU_START_HELP", Action: ActionStart},
		&ActionItem{LabelKey: "MENU_QUIT", HelpKey: "MENU_QUIT_HELP", Action: ActionQuit},
	)
}

// NewGameOverMenu creates the menu shown once a game has ended.
func NewGameOverMenu() *Menu {
	return New("GAME_OVER",
		&ActionItem{LabelKey: "MENU_MAIN", HelpKey: "MENU_MAIN_HELP", Action: ActionMainMenu},
		&ActionItem{LabelKey: "MENU_QUIT", HelpKey: "MENU_QUIT_HELP", Action: ActionQuit},
	)
}

// Title returns the translated menu title.
func (m *Menu) Title() string {
	return i18n.Get(m.TitleKey)
}

// Instructions returns the translated key help.
func (m *Menu) Instructions() string {
	return i18n.Get("MENU_INSTRUCTIONS")
}

// Selected returns the index of the selected item.
func (m *Menu) Selected() int {
	return m.selected
}

// SelectedItem returns the selected item, or nil for an empty menu.
func (m *Menu) SelectedItem() MenuItem {
	if m.selected < 0 || m.selected >= len(m.Items) {
		return nil
	}
	return m.Items[m.selected]
}

// SelectedAction returns the action of the selected item, and false if the
// selection is not an ActionItem.
func (m *Menu) SelectedAction() (Action, bool) {
	item, ok := m.SelectedItem().(*ActionItem)
	if !ok {
		return 0, false
	}
	return item.Action, true
}

// Select selects the item at index if it is selectable.
func (m *Menu) Select(index int) bool {
	if index < 0 || index >= len(m.Items) || !m.Items[index].IsSelectable() {
		return false
	}
	m.selected = index
	return true
}

// MoveUp moves the selection to the previous selectable item, wrapping around.
func (m *Menu) MoveUp() {
	n := len(m.Items)
	for step := 1; step < n; step++ {
		i := (m.selected - step + n) % n
		if m.Items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
}

// MoveDown moves the selection to the next selectable item, wrapping around.
func (m *Menu) MoveDown() {
	n := len(m.Items)
	for step := 1; step < n; step++ {
		i := (m.selected + step) % n
		if m.Items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
}
