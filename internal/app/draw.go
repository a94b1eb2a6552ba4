package app

import (
	"github.com/bethropolis/jot/internal/theme"
	"github.com/bethropolis/jot/internal/tui"
	"github.com/bethropolis/jot/internal/widget"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	a.updateStatusBarContent()

	screen := a.ui.GetScreen()
	l := a.layout
	th := a.theme

	a.ui.Clear()

	titleStyle := th.GetStyle(theme.StyleTitleBar)
	widget.Fill(screen, l.title, titleStyle)
	titleX := (l.title.W - widget.TextWidth(a.title)) / 2
	if titleX < 0 {
		titleX = 0
	}
	widget.DrawText(screen, titleX, l.title.Y, l.title.W-titleX, a.title, titleStyle)

	tui.DrawSurface(screen, l.text, a.surface, th)

	panelStyle := th.GetStyle(theme.StylePanel)
	labelStyle := th.GetStyle(theme.StyleLabel)
	widget.Fill(screen, l.panel, panelStyle)
	widget.DrawText(screen, l.panel.X+1, l.fontLabelY, l.panel.W-2, a.fontCombo.Label, labelStyle)
	widget.DrawText(screen, l.panel.X+1, l.sizeLabelY, l.panel.W-2, a.sizeCombo.Label, labelStyle)

	widget.Fill(screen, l.buttons, panelStyle)
	a.saveButton.Draw(screen, th, a.focus == focusSave)
	a.openButton.Draw(screen, th, a.focus == focusOpen)
	a.undoButton.Draw(screen, th, a.focus == focusUndo)
	a.redoButton.Draw(screen, th, a.focus == focusRedo)

	a.statusBar.Draw(screen, l.statusY, l.width, th)

	// Combos last so an open list covers what lies below it.
	a.sizeCombo.Draw(screen, th, a.focus == focusSize)
	a.fontCombo.Draw(screen, th, a.focus == focusFont)

	if a.focus == focusText {
		tui.DrawCursor(screen, l.text, a.surface)
	} else {
		screen.HideCursor()
	}
	a.ui.Show()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.docPath, a.surface.IsModified())
	a.statusBar.SetCursorInfo(a.surface.Cursor())
}
