package app

import (
	"github.com/bethropolis/jot/internal/config"
	"github.com/bethropolis/jot/internal/widget"
)

// layout holds the screen areas computed for the current terminal size.
type layout struct {
	width, height int
	title         widget.Rect
	text          widget.Rect
	panel         widget.Rect
	buttons       widget.Rect
	statusY       int
	fontLabelY    int
	sizeLabelY    int
}

// applyLayout places every widget for a w x h screen:
//
//	row 0          title bar
//	rows 1..h-3    text area | side panel (font, size)
//	row h-2        Save Open Undo Redo
//	row h-1        status line
func (a *App) applyLayout(w, h int) {
	l := layout{width: w, height: h}
	l.title = widget.Rect{X: 0, Y: 0, W: w, H: config.TitleBarHeight}
	l.statusY = h - config.StatusBarHeight
	l.buttons = widget.Rect{X: 0, Y: l.statusY - config.ButtonBarHeight, W: w, H: config.ButtonBarHeight}

	bodyY := config.TitleBarHeight
	bodyH := l.buttons.Y - bodyY
	if bodyH < 0 {
		bodyH = 0
	}
	panelW := config.SidePanelWidth
	if panelW > w/2 {
		panelW = w / 2
	}
	l.text = widget.Rect{X: 0, Y: bodyY, W: w - panelW, H: bodyH}
	l.panel = widget.Rect{X: w - panelW, Y: bodyY, W: panelW, H: bodyH}

	comboW := panelW - 2
	l.fontLabelY = bodyY + 1
	a.fontCombo.Rect = widget.Rect{X: l.panel.X + 1, Y: l.fontLabelY + 1, W: comboW, H: 1}
	l.sizeLabelY = l.fontLabelY + 3
	a.sizeCombo.Rect = widget.Rect{X: l.panel.X + 1, Y: l.sizeLabelY + 1, W: comboW, H: 1}

	// Open lists may run down to the button row.
	a.fontCombo.ListHeight = max(1, l.buttons.Y-a.fontCombo.Rect.Y-1)
	a.sizeCombo.ListHeight = max(1, l.buttons.Y-a.sizeCombo.Rect.Y-1)

	x := 1
	for _, b := range a.buttonsInOrder() {
		b.Rect = widget.Rect{X: x, Y: l.buttons.Y, W: b.Width(), H: 1}
		x += b.Width() + 1
	}

	a.layout = l
	a.surface.SetViewSize(l.text.W, l.text.H)
}

func (a *App) buttonsInOrder() []*widget.Button {
	return []*widget.Button{a.saveButton, a.openButton, a.undoButton, a.redoButton}
}
