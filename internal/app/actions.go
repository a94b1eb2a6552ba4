package app

import (
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/input"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// actionHandler performs one action. Only file operations return errors.
type actionHandler func(ae input.ActionEvent) error

// actionTable maps every bound action to its handler. Window shortcuts run
// wherever focus is; the rest act on the text surface.
func (a *App) actionTable() map[input.Action]actionHandler {
	s := a.surface
	noErr := func(fn func()) actionHandler {
		return func(input.ActionEvent) error {
			fn()
			return nil
		}
	}
	clip := func(fn func() error) actionHandler {
		return func(input.ActionEvent) error {
			if err := fn(); err != nil {
				logger.Warnf("App: clipboard: %v", err)
				a.setMessage("Clipboard error: %v", err)
			}
			return nil
		}
	}

	return map[input.Action]actionHandler{
		input.ActionQuit:      noErr(func() { a.quit = true }),
		input.ActionSave:      func(input.ActionEvent) error { return a.saveFile() },
		input.ActionOpen:      func(input.ActionEvent) error { return a.openFile() },
		input.ActionUndo:      noErr(a.undo),
		input.ActionRedo:      noErr(a.redo),
		input.ActionFocusNext: noErr(func() { a.cycleFocus(1) }),
		input.ActionFocusPrev: noErr(func() { a.cycleFocus(-1) }),

		input.ActionMoveUp:       func(ae input.ActionEvent) error { s.MoveCursor(-1, 0, ae.Extend); return nil },
		input.ActionMoveDown:     func(ae input.ActionEvent) error { s.MoveCursor(1, 0, ae.Extend); return nil },
		input.ActionMoveLeft:     func(ae input.ActionEvent) error { s.MoveCursor(0, -1, ae.Extend); return nil },
		input.ActionMoveRight:    func(ae input.ActionEvent) error { s.MoveCursor(0, 1, ae.Extend); return nil },
		input.ActionMovePageUp:   func(ae input.ActionEvent) error { s.MovePage(-1, ae.Extend); return nil },
		input.ActionMovePageDown: func(ae input.ActionEvent) error { s.MovePage(1, ae.Extend); return nil },
		input.ActionMoveHome:     func(ae input.ActionEvent) error { s.MoveLineStart(ae.Extend); return nil },
		input.ActionMoveEnd:      func(ae input.ActionEvent) error { s.MoveLineEnd(ae.Extend); return nil },

		input.ActionInsertRune:         func(ae input.ActionEvent) error { s.InsertText(string(ae.Rune)); return nil },
		input.ActionInsertNewLine:      noErr(s.InsertNewline),
		input.ActionInsertTab:          noErr(s.InsertTab),
		input.ActionDeleteCharBackward: noErr(s.DeleteBackward),
		input.ActionDeleteCharForward:  noErr(s.DeleteForward),
		input.ActionCopy:               clip(s.Copy),
		input.ActionCut:                clip(s.Cut),
		input.ActionPaste:              clip(s.Paste),
		input.ActionSelectAll:          noErr(s.SelectAll),
		input.ActionCancel:             noErr(s.ClearSelection),
	}
}

// handleKey routes a key: window shortcuts first, then the focused widget.
func (a *App) handleKey(ev *tcell.EventKey) error {
	ae := a.input.ProcessEvent(ev)
	if ae.Action.IsGlobal() {
		return a.run(ae)
	}

	switch a.focus {
	case focusText:
		a.history.Record(ev)
		a.events.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})
		a.historyChanged()
		if ae.Action == input.ActionUnknown {
			return nil
		}
		return a.run(ae)
	case focusFont:
		if !a.fontCombo.HandleKey(ev) && ae.Action == input.ActionInsertTab {
			a.cycleFocus(1)
		}
	case focusSize:
		if !a.sizeCombo.HandleKey(ev) && ae.Action == input.ActionInsertTab {
			a.cycleFocus(1)
		}
	default:
		if a.focusedButton().Activates(ev) {
			return a.press(a.focus)
		}
		if ae.Action == input.ActionInsertTab {
			a.cycleFocus(1)
		}
	}
	return nil
}

func (a *App) run(ae input.ActionEvent) error {
	handler, ok := a.dispatch[ae.Action]
	if !ok {
		logger.DebugTagf("input", "No handler for action %v", ae.Action)
		return nil
	}
	return handler(ae)
}

func (a *App) focusedButton() interface{ Activates(*tcell.EventKey) bool } {
	switch a.focus {
	case focusSave:
		return a.saveButton
	case focusOpen:
		return a.openButton
	case focusUndo:
		return a.undoButton
	default:
		return a.redoButton
	}
}

// press activates the button at target.
func (a *App) press(target focusTarget) error {
	switch target {
	case focusSave:
		return a.saveFile()
	case focusOpen:
		return a.openFile()
	case focusUndo:
		a.undo()
	case focusRedo:
		a.redo()
	}
	return nil
}

func (a *App) undo() {
	a.history.Undo()
	a.historyChanged()
}

func (a *App) redo() {
	a.history.Redo()
	a.historyChanged()
}
