// Package undo is the text surface's native undo/redo stack. Changes are
// grouped into steps separated automatically or on request.
package undo

import "github.com/bethropolis/jot/internal/types"

// ActionType indicates whether text was inserted or deleted.
type ActionType int

const (
	InsertAction ActionType = iota
	DeleteAction
)

func (a ActionType) String() string {
	if a == InsertAction {
		return "insert"
	}
	return "delete"
}

// Change represents a single, reversible text operation.
type Change struct {
	Type         ActionType
	Text         []byte         // Text inserted or text deleted
	Start        types.Position // Where the change began
	End          types.Position // Position after inserted text, or end of deleted text
	CursorBefore types.Position // Cursor position before this change was applied
}

// continues reports whether next extends c without an automatic separator:
// same action type, and touching the same spot (typing forward, backspacing,
// or deleting forward in place).
func (c Change) continues(next Change) bool {
	if c.Type != next.Type {
		return false
	}
	switch c.Type {
	case InsertAction:
		return next.Start == c.End
	default:
		return next.End == c.Start || next.Start == c.Start
	}
}

// step is one undoable unit.
type step []Change
