package app

import (
	"github.com/bethropolis/jot/internal/types"
	"github.com/bethropolis/jot/internal/utils"
	"github.com/gdamore/tcell/v2"
)

// handleMouse focuses and operates the widget under a left click; the
// wheel scrolls the text area.
func (a *App) handleMouse(ev *tcell.EventMouse) error {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && a.lastButtons&tcell.Button1 == 0
	a.lastButtons = buttons
	x, y := ev.Position()

	switch {
	case buttons&tcell.WheelUp != 0:
		a.surface.MoveCursor(-3, 0, false)
		return nil
	case buttons&tcell.WheelDown != 0:
		a.surface.MoveCursor(3, 0, false)
		return nil
	case !pressed:
		return nil
	}

	// An open list lies over other widgets, so it is hit first.
	switch {
	case a.fontCombo.Contains(x, y):
		a.setFocus(focusFont)
		a.fontCombo.HandleClick(x, y)
		return nil
	case a.sizeCombo.Contains(x, y):
		a.setFocus(focusSize)
		a.sizeCombo.HandleClick(x, y)
		return nil
	}

	for i, b := range a.buttonsInOrder() {
		if b.Rect.Contains(x, y) {
			target := focusSave + focusTarget(i)
			a.setFocus(target)
			return a.press(target)
		}
	}

	if a.layout.text.Contains(x, y) {
		a.setFocus(focusText)
		a.surface.SetCursor(a.positionAt(x, y))
		return nil
	}
	a.fontCombo.Close()
	a.sizeCombo.Close()
	return nil
}

// positionAt converts a screen cell inside the text area to a text position.
func (a *App) positionAt(x, y int) types.Position {
	viewY, viewX := a.surface.Viewport()
	line := viewY + (y - a.layout.text.Y)
	buf := a.surface.Buffer()
	if line >= buf.LineCount() {
		line = buf.LineCount() - 1
	}
	content, err := buf.Line(line)
	if err != nil {
		return a.surface.Cursor()
	}
	col := utils.RuneIndexAtVisual(content, viewX+(x-a.layout.text.X), a.surface.TabWidth())
	return types.Position{Line: line, Col: col}
}
