package history

import (
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Surface is what the tracker needs from the text surface.
type Surface interface {
	Cursor() types.Position
	EditSeparator()
	EditUndo() (bool, error)
	EditRedo() (bool, error)
}

// Tracker holds the History Log and the Redo Log. It shadows the surface's
// native undo stack on a best-effort basis: one logged keystroke does not
// necessarily correspond to one native undo step.
type Tracker struct {
	surface Surface
	history []EditRecord
	redo    []EditRecord
}

// NewTracker creates a tracker with both logs empty.
func NewTracker(surface Surface) *Tracker {
	return &Tracker{surface: surface}
}

// Record logs a keystroke at the current cursor position and discards the Redo Log.
func (t *Tracker) Record(ev *tcell.EventKey) {
	rec := NewEditRecord(ev, t.surface.Cursor())
	t.history = append(t.history, rec)
	t.redo = nil
	logger.DebugTagf("history", "Recorded %s, history=%d", rec, len(t.history))
}

// Undo moves the newest record onto the Redo Log and performs one native undo
// step. With an empty History Log it does nothing.
func (t *Tracker) Undo() {
	if len(t.history) == 0 {
		return
	}
	last := t.history[len(t.history)-1]
	t.history = t.history[:len(t.history)-1]
	t.redo = append(t.redo, last)

	t.surface.EditSeparator()
	if _, err := t.surface.EditUndo(); err != nil {
		logger.Warnf("History: native undo failed: %v", err)
	}
	t.surface.EditSeparator()
	logger.DebugTagf("history", "Undo %s, history=%d redo=%d", last, len(t.history), len(t.redo))
}

// Redo moves the newest Redo Log record back onto the History Log and performs
// one native redo step. With an empty Redo Log it does nothing.
func (t *Tracker) Redo() {
	if len(t.redo) == 0 {
		return
	}
	next := t.redo[len(t.redo)-1]
	t.redo = t.redo[:len(t.redo)-1]
	t.history = append(t.history, next)

	t.surface.EditSeparator()
	if _, err := t.surface.EditRedo(); err != nil {
		logger.Warnf("History: native redo failed: %v", err)
	}
	t.surface.EditSeparator()
	logger.DebugTagf("history", "Redo %s, history=%d redo=%d", next, len(t.history), len(t.redo))
}

// Len returns the History Log length.
func (t *Tracker) Len() int {
	return len(t.history)
}

// RedoLen returns the Redo Log length.
func (t *Tracker) RedoLen() int {
	return len(t.redo)
}

// Entries returns a copy of the History Log, oldest first.
func (t *Tracker) Entries() []EditRecord {
	return append([]EditRecord(nil), t.history...)
}

// RedoEntries returns a copy of the Redo Log; the next record to redo is last.
func (t *Tracker) RedoEntries() []EditRecord {
	return append([]EditRecord(nil), t.redo...)
}
