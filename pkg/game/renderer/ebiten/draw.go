package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"wumpusworld/pkg/engine/world"
	"wumpusworld/pkg/game/i18n"
	"wumpusworld/pkg/game/menu"
	"wumpusworld/pkg/game/renderer"
	"wumpusworld/pkg/game/state"
)

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	e.menuItemRects = e.menuItemRects[:0]

	y := margin
	e.drawText(screen, i18n.Get("TITLE"), margin, y, styleColor(renderer.StyleSelected))
	if e.session.Paused() {
		e.drawText(screen, i18n.Get("PAUSED"), margin+menuItemWidth, y, styleColor(renderer.StyleDenied))
	}
	y += headerHeight

	if g := e.session.Game(); g != nil {
		y = e.drawBoard(screen, g, y)
		y = e.drawFooter(screen, g, y)
	}
	if m := e.session.Menu(); m != nil {
		e.drawMenu(screen, m, y)
	}
	if err := e.session.Err(); err != nil && e.session.Game() == nil {
		e.drawText(screen, i18n.Get("START_FAILED", err.Error()), margin, e.windowHeight-margin-lineHeight, styleColor(renderer.StyleDenied))
	}
}

// tileSize fits the board into the window, leaving room for the footer
func (e *EbitenRenderer) tileSize(boardSize int) int {
	availW := e.windowWidth - 2*margin - lineHeight
	availH := e.windowHeight - headerHeight - 2*margin - lineHeight - footerLines*lineHeight
	avail := min(availW, availH)

	size := avail / boardSize
	return max(minTileSize, min(size, maxTileSize))
}

// drawBoard draws the labelled board starting at y and returns the next free y
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, g *state.Game, y int) int {
	size := g.Board.Size()
	ts := e.tileSize(size)
	left := margin + lineHeight
	labelColor := styleColor(renderer.StyleLabel)

	for x, label := range renderer.ColumnLabels(size) {
		e.drawText(screen, label, left+x*ts+ts/2-4, y, labelColor)
	}
	y += lineHeight

	vector.DrawFilledRect(screen, float32(left-2), float32(y-2), float32(size*ts+4), float32(size*ts+4), colorMapBackground, false)

	for row, tiles := range renderer.BoardView(g) {
		e.drawText(screen, world.RowLabel(row), margin, y+row*ts+ts/2-lineHeight/2, labelColor)
		for col, tile := range tiles {
			tx := left + col*ts
			ty := y + row*ts
			vector.DrawFilledRect(screen, float32(tx+1), float32(ty+1), float32(ts-2), float32(ts-2), colorTile, false)
			e.drawText(screen, tile.Glyph(), tx+ts/2-4, ty+ts/2-lineHeight/2, styleColor(tile.Style()))
		}
	}

	return y + size*ts + lineHeight
}

// drawFooter draws the status, last death and message log
func (e *EbitenRenderer) drawFooter(screen *ebiten.Image, g *state.Game, y int) int {
	e.drawText(screen, renderer.StatusLine(g), margin, y, colorText)
	y += lineHeight
	if line := renderer.DeathLine(g); line != "" {
		e.drawText(screen, line, margin, y, styleColor(renderer.StyleDenied))
		y += lineHeight
	}

	y += lineHeight / 2
	e.drawText(screen, i18n.Get("MESSAGES"), margin, y, styleColor(renderer.StyleSubtle))
	y += lineHeight
	for _, msg := range g.Messages {
		e.drawText(screen, msg, margin, y, colorText)
		y += lineHeight
	}

	if !g.GameOver && !g.Unsolvable() {
		y += lineHeight / 2
		for _, line := range renderer.KeyHelp() {
			e.drawText(screen, line, margin, y, styleColor(renderer.StyleSubtle))
			y += lineHeight
		}
	}
	return y
}

// drawMenu draws m as a panel and records the item areas for mouse hits
func (e *EbitenRenderer) drawMenu(screen *ebiten.Image, m *menu.Menu, y int) {
	height := (len(m.Items)+4)*lineHeight + margin
	vector.DrawFilledRect(screen, float32(margin), float32(y), float32(menuItemWidth+2*margin), float32(height), colorPanelBackground, false)

	y += margin / 2
	e.drawText(screen, m.Title(), 2*margin, y, styleColor(renderer.StyleSelected))
	y += lineHeight * 3 / 2

	for i, item := range m.Items {
		r := rect{x: margin + margin/2, y: y, w: menuItemWidth + margin, h: lineHeight}
		e.menuItemRects = append(e.menuItemRects, r)

		clr := colorText
		if i == m.Selected() {
			vector.DrawFilledRect(screen, float32(r.x), float32(r.y), float32(r.w), float32(r.h), colorFocusBackground, false)
			clr = styleColor(renderer.StyleSelected)
		} else if !item.IsSelectable() {
			clr = styleColor(renderer.StyleSubtle)
		}
		e.drawText(screen, item.GetLabel(), 2*margin, y+2, clr)
		y += lineHeight
	}

	y += lineHeight / 2
	if selected := m.SelectedItem(); selected != nil {
		e.drawText(screen, selected.GetHelpText(), 2*margin, y, styleColor(renderer.StyleSubtle))
	}
	y += lineHeight
	e.drawText(screen, m.Instructions(), 2*margin, y, styleColor(renderer.StyleSubtle))
}

// drawText draws s with its top left corner at (x, y)
func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	if s == "" {
		return
	}
	if e.monoFace == nil {
		ebitenutil.DebugPrintAt(screen, s, x, y)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, e.monoFace, op)
}
