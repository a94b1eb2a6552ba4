// internal/input/action.go
package input

// Action represents an operation requested by a key press.
type Action int

const (
	ActionUnknown Action = iota

	// --- Window shortcuts ---
	ActionQuit
	ActionSave
	ActionOpen
	ActionUndo
	ActionRedo
	ActionFocusNext
	ActionFocusPrev

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Text Manipulation ---
	ActionInsertRune // Requires Rune argument
	ActionInsertNewLine
	ActionInsertTab
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key
	ActionCopy
	ActionCut
	ActionPaste
	ActionSelectAll
	ActionCancel // Esc drops the selection
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionSave:               "Save",
	ActionOpen:               "Open",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionFocusNext:          "FocusNext",
	ActionFocusPrev:          "FocusPrev",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "MovePageUp",
	ActionMovePageDown:       "MovePageDown",
	ActionMoveHome:           "MoveHome",
	ActionMoveEnd:            "MoveEnd",
	ActionInsertRune:         "InsertRune",
	ActionInsertNewLine:      "InsertNewLine",
	ActionInsertTab:          "InsertTab",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionCopy:               "Copy",
	ActionCut:                "Cut",
	ActionPaste:              "Paste",
	ActionSelectAll:          "SelectAll",
	ActionCancel:             "Cancel",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsGlobal reports whether the action is a window shortcut rather than a
// keystroke meant for the focused widget. Global actions are handled
// wherever focus is and are never logged as edits.
func (a Action) IsGlobal() bool {
	switch a {
	case ActionQuit, ActionSave, ActionOpen, ActionUndo, ActionRedo, ActionFocusNext, ActionFocusPrev:
		return true
	}
	return false
}

// ActionEvent is a decoded key press.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
	Extend bool // Shift held on a movement key: extend the selection
}
