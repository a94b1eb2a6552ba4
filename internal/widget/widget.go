// Package widget holds the small controls drawn around the text area.
package widget

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Rect is a screen area in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r has no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Fill paints every cell of r with a blank in style.
func Fill(screen tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText draws text from (x, y) without exceeding maxWidth cells and
// returns the number of cells used.
func DrawText(screen tcell.Screen, x, y, maxWidth int, text string, style tcell.Style) int {
	used := 0
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		width := gr.Width()
		if used+width > maxWidth {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x+used, y, runes[0], runes[1:], style)
		for cw := 1; cw < width; cw++ {
			screen.SetContent(x+used+cw, y, ' ', nil, style)
		}
		used += width
	}
	return used
}

// TextWidth is the cell width of text.
func TextWidth(text string) int {
	return uniseg.StringWidth(text)
}
