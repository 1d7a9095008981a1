package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Each cell shows two stacked pixels: the glyph's upper half takes the
// foreground color and the lower half the background.
const upperHalf = '▀'

// Virtual pixel size of a cell, used for the surface resolution the game sees.
const (
	CellPixelW = 8
	CellPixelH = 16
)

// pixelCenter maps pixel row py of rows (top to bottom) to normalized height.
func pixelCenter(p, n int) float64 {
	return (float64(p) + 0.5) / float64(n)
}

// CellToNormalized maps a terminal cell to normalized coordinates of its center, origin bottom-left.
func CellToNormalized(cx, cy, w, h int) (float64, float64) {
	if w <= 0 || h <= 0 {
		return -1, -1
	}
	return pixelCenter(cx, w), 1 - pixelCenter(cy, h)
}

func rgb(c Color) tcell.Color {
	to8 := func(v float64) int32 { return int32(clamp01(v)*255 + 0.5) }
	return tcell.NewRGBColor(to8(c.R), to8(c.G), to8(c.B))
}

// DrawScene shades every cell of the screen.
func DrawScene(screen tcell.Screen, sh *Shader) {
	w, h := screen.Size()
	rows := h * 2
	for cy := 0; cy < h; cy++ {
		top := 1 - pixelCenter(cy*2, rows)
		bottom := 1 - pixelCenter(cy*2+1, rows)
		for cx := 0; cx < w; cx++ {
			x := pixelCenter(cx, w)
			style := tcell.StyleDefault.
				Foreground(rgb(sh.At(x, top))).
				Background(rgb(sh.At(x, bottom)))
			screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
}

var (
	textStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(16, 32, 64)).Bold(true)
	panelStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(135, 206, 235)).Background(tcell.NewRGBColor(16, 32, 64))
)

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

// DrawHUD writes the score on the top row. pop highlights a fresh catch.
func DrawHUD(screen tcell.Screen, score int, pop bool) {
	style := textStyle
	if pop {
		style = style.Foreground(tcell.NewRGBColor(255, 240, 120))
	}
	drawText(screen, 1, 0, fmt.Sprintf(" Score: %d ", score), style)
}

// DrawGameOver draws a centered result box.
func DrawGameOver(screen tcell.Screen, score int) {
	lines := []string{
		"GAME OVER",
		"",
		fmt.Sprintf("Final score: %d", score),
		"",
		"r: play again   q: quit",
	}
	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	width += 4
	height := len(lines) + 2

	w, h := screen.Size()
	x0 := (w - width) / 2
	y0 := (h - height) / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			screen.SetContent(x0+x, y0+y, ' ', nil, panelStyle)
		}
	}
	for i, l := range lines {
		style := panelStyle
		if i == 0 {
			style = style.Bold(true)
		}
		drawText(screen, x0+(width-len(l))/2, y0+1+i, l, style)
	}
}
