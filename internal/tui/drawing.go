// internal/tui/drawing.go
package tui

import (
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/surface"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/bethropolis/jot/internal/types"
	"github.com/bethropolis/jot/internal/utils"
	"github.com/bethropolis/jot/internal/widget"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// DrawSurface draws the visible part of the text surface into area.
func DrawSurface(screen tcell.Screen, area widget.Rect, s *surface.Surface, th *theme.Theme) {
	if area.Empty() {
		return
	}
	textStyle := th.GetStyle(theme.StyleTextArea)
	selectionStyle := th.GetStyle(theme.StyleSelection)
	widget.Fill(screen, area, textStyle)

	viewY, viewX := s.Viewport()
	sel, selectionActive := s.Selection()
	tabWidth := s.TabWidth()
	lines := s.Buffer().Lines()

	for row := 0; row < area.H; row++ {
		lineIdx := viewY + row
		if lineIdx >= len(lines) {
			break
		}
		screenY := area.Y + row

		gr := uniseg.NewGraphemes(string(lines[lineIdx]))
		visualX := 0
		runeIndex := 0
		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()
			if clusterRunes[0] == '\t' {
				clusterWidth = utils.TabCells(visualX, tabWidth)
			}

			style := textStyle
			if selectionActive && sel.Contains(types.Position{Line: lineIdx, Col: runeIndex}) {
				style = selectionStyle
			}

			startX := visualX - viewX
			if clusterRunes[0] == '\t' || startX < 0 {
				// Tabs and clusters cut by the left edge are drawn as blanks.
				for cell := 0; cell < clusterWidth; cell++ {
					if x := startX + cell; x >= 0 && x < area.W {
						screen.SetContent(area.X+x, screenY, ' ', nil, style)
					}
				}
			} else if startX < area.W {
				screen.SetContent(area.X+startX, screenY, clusterRunes[0], clusterRunes[1:], style)
				for cell := 1; cell < clusterWidth && startX+cell < area.W; cell++ {
					screen.SetContent(area.X+startX+cell, screenY, ' ', nil, style)
				}
			}

			visualX += clusterWidth
			runeIndex += len(clusterRunes)
			if visualX-viewX >= area.W {
				break
			}
		}

		// A selected line break shows as one highlighted cell past the end.
		if selectionActive && lineIdx < len(lines)-1 &&
			sel.Contains(types.Position{Line: lineIdx, Col: runeIndex}) &&
			visualX-viewX >= 0 && visualX-viewX < area.W {
			screen.SetContent(area.X+visualX-viewX, screenY, ' ', nil, selectionStyle)
		}
	}
}

// DrawCursor shows the terminal cursor at the surface cursor, or hides it
// when the cursor is scrolled out of area.
func DrawCursor(screen tcell.Screen, area widget.Rect, s *surface.Surface) {
	cursor := s.Cursor()
	viewY, viewX := s.Viewport()

	line, err := s.Buffer().Line(cursor.Line)
	if err != nil {
		logger.DebugTagf("draw", "DrawCursor: line %d: %v", cursor.Line, err)
		screen.HideCursor()
		return
	}
	col := utils.VisualColumn(line, cursor.Col, s.TabWidth())

	x := col - viewX
	y := cursor.Line - viewY
	if x < 0 || x >= area.W || y < 0 || y >= area.H {
		screen.HideCursor()
		return
	}
	screen.ShowCursor(area.X+x, area.Y+y)
}
