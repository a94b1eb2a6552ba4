package app

import (
	"strconv"

	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/fonts"
	"github.com/bethropolis/jot/internal/logger"
)

// focusTarget is a position in the focus ring.
type focusTarget int

const (
	focusText focusTarget = iota
	focusFont
	focusSize
	focusSave
	focusOpen
	focusUndo
	focusRedo
	focusCount
)

var focusNames = [...]string{
	focusText: "text",
	focusFont: "font",
	focusSize: "size",
	focusSave: "save",
	focusOpen: "open",
	focusUndo: "undo",
	focusRedo: "redo",
}

func (f focusTarget) String() string {
	if f >= 0 && f < focusCount {
		return focusNames[f]
	}
	return "unknown"
}

// Focus names the widget holding keyboard focus.
func (a *App) Focus() string {
	return a.focus.String()
}

// setFocus moves keyboard focus and announces it on the event bus, which
// is where the selectors apply their value.
func (a *App) setFocus(to focusTarget) {
	if to == a.focus {
		return
	}
	from := a.focus
	a.fontCombo.Close()
	a.sizeCombo.Close()
	a.focus = to
	logger.DebugTagf("focus", "Focus %s -> %s", from, to)
	a.events.Dispatch(event.TypeFocusChanged, event.FocusChangedData{From: from.String(), To: to.String()})
}

func (a *App) cycleFocus(delta int) {
	next := (int(a.focus) + delta + int(focusCount)) % int(focusCount)
	a.setFocus(focusTarget(next))
}

// handleFocusOut applies a selector's value when it loses focus.
func (a *App) handleFocusOut(e event.Event) bool {
	data, ok := e.Data.(event.FocusChangedData)
	if !ok {
		return false
	}
	switch data.From {
	case focusFont.String():
		a.changeFont(a.fontCombo.Value(), a.selectedSize())
	case focusSize.String():
		a.changeFontSize(a.selectedSize())
	}
	return false
}

// selectedSize reads the size selector, falling back to the current size.
func (a *App) selectedSize() int {
	size, err := strconv.Atoi(a.sizeCombo.Value())
	if err != nil {
		return a.surface.Font().Size
	}
	return size
}

// changeFont applies family and size to the text surface.
func (a *App) changeFont(family string, size int) {
	f := fonts.Font{Family: family, Size: size}
	if err := a.catalog.Validate(f); err != nil {
		logger.Warnf("App: rejecting font %s: %v", f, err)
		a.setMessage("Cannot use font %s: %v", f, err)
		return
	}
	if f == a.surface.Font() {
		return
	}
	a.surface.SetFont(f)
	a.events.Dispatch(event.TypeFontChanged, event.FontChangedData{Font: f})
}

// changeFontSize applies a new size, keeping the family.
func (a *App) changeFontSize(size int) {
	a.changeFont(a.surface.Font().Family, size)
}
