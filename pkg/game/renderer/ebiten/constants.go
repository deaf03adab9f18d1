// Package ebiten provides an Ebiten-based 2D graphical renderer.
package ebiten

import (
	"image/color"

	"wumpusworld/pkg/game/renderer"
)

// Color palette
var (
	colorBackground      = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground   = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorTile            = color.RGBA{40, 40, 60, 255}    // Hidden or empty cell
	colorText            = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorPanelBackground = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorFocusBackground = color.RGBA{60, 80, 100, 200}   // Selected menu item
)

// styleColors gives the glyph color for each text style
var styleColors = map[renderer.TextStyle]color.RGBA{
	renderer.StyleNormal:   colorText,
	renderer.StyleSubtle:   {120, 130, 180, 255},
	renderer.StyleLabel:    {100, 150, 255, 255},
	renderer.StyleAgent:    {0, 255, 0, 255},
	renderer.StyleEntry:    {100, 220, 220, 255},
	renderer.StyleExit:     {100, 255, 100, 255},
	renderer.StyleMonster:  {255, 80, 80, 255},
	renderer.StylePit:      {220, 170, 255, 255},
	renderer.StyleTreasure: {255, 220, 100, 255},
	renderer.StyleWind:     {150, 200, 255, 255},
	renderer.StyleOdor:     {200, 180, 100, 255},
	renderer.StyleSelected: {180, 150, 250, 255},
	renderer.StyleDenied:   {255, 100, 100, 255},
}

func styleColor(style renderer.TextStyle) color.RGBA {
	if c, ok := styleColors[style]; ok {
		return c
	}
	return colorText
}

// Tile size constraints, in pixels
const (
	minTileSize = 24
	maxTileSize = 96
)

// Window and text layout, in pixels
const (
	defaultWindowWidth  = 800
	defaultWindowHeight = 720
	margin              = 20
	lineHeight          = 22
	uiFontSize          = 16.0
	headerHeight        = 2 * lineHeight
	footerLines         = 11 // status, death, messages header, 5 messages, two key help lines
	menuItemWidth       = 320
)
