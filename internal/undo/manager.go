package undo

import (
	"fmt"
	"sync"

	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/types"
)

// Applier performs raw edits for Undo/Redo. Edits made through an Applier
// must not be recorded back into the Manager.
type Applier interface {
	ApplyInsert(pos types.Position, text []byte) (types.Position, error)
	ApplyDelete(start, end types.Position) error
	SetCursor(pos types.Position)
}

// Manager holds the undo and redo steps.
type Manager struct {
	mutex    sync.Mutex
	undo     []step
	redo     []step
	open     bool // the last undo step still accepts changes
	grouping int  // nesting depth of BeginGroup
	maxSteps int  // 0 means unbounded
}

// NewManager creates an undo stack keeping at most maxSteps steps (0 = unbounded).
func NewManager(maxSteps int) *Manager {
	if maxSteps < 0 {
		maxSteps = 0
	}
	return &Manager{maxSteps: maxSteps}
}

// Record adds a change, clearing any redo history. The change joins the
// open step when it continues the previous change.
func (m *Manager) Record(change Change) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.redo = nil

	if m.open && len(m.undo) > 0 {
		current := m.undo[len(m.undo)-1]
		if m.grouping > 0 || current[len(current)-1].continues(change) {
			m.undo[len(m.undo)-1] = append(current, change)
			return
		}
	}

	m.undo = append(m.undo, step{change})
	m.open = true
	if m.maxSteps > 0 && len(m.undo) > m.maxSteps {
		m.undo = m.undo[len(m.undo)-m.maxSteps:]
	}
	logger.DebugTagf("undo", "Recorded %v at %v, steps=%d", change.Type, change.Start, len(m.undo))
}

// BeginGroup starts a step that takes every change until the matching
// EndGroup, regardless of type or position.
func (m *Manager) BeginGroup() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.grouping == 0 {
		m.open = false
	}
	m.grouping++
}

// EndGroup closes the step opened by BeginGroup.
func (m *Manager) EndGroup() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.grouping > 0 {
		m.grouping--
	}
	if m.grouping == 0 {
		m.open = false
	}
}

// Separator closes the current step so the next change starts a new one.
// It has no effect inside a group.
func (m *Manager) Separator() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.grouping == 0 {
		m.open = false
	}
}

// Undo reverts the last step. It returns false when there is nothing to undo.
func (m *Manager) Undo(a Applier) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.open = false
	if len(m.undo) == 0 {
		logger.DebugTagf("undo", "Nothing to undo.")
		return false, nil
	}
	last := m.undo[len(m.undo)-1]

	for i := len(last) - 1; i >= 0; i-- {
		c := last[i]
		var err error
		switch c.Type {
		case InsertAction:
			err = a.ApplyDelete(c.Start, c.End)
		case DeleteAction:
			_, err = a.ApplyInsert(c.Start, c.Text)
		}
		if err != nil {
			return false, fmt.Errorf("undo failed: %w", err)
		}
	}
	a.SetCursor(last[0].CursorBefore)

	m.undo = m.undo[:len(m.undo)-1]
	m.redo = append(m.redo, last)
	logger.DebugTagf("undo", "Undid step of %d change(s); undo=%d redo=%d", len(last), len(m.undo), len(m.redo))
	return true, nil
}

// Redo re-applies the last undone step. It returns false when there is nothing to redo.
func (m *Manager) Redo(a Applier) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.open = false
	if len(m.redo) == 0 {
		logger.DebugTagf("undo", "Nothing to redo.")
		return false, nil
	}
	next := m.redo[len(m.redo)-1]

	var cursor types.Position
	for _, c := range next {
		switch c.Type {
		case InsertAction:
			if _, err := a.ApplyInsert(c.Start, c.Text); err != nil {
				return false, fmt.Errorf("redo failed: %w", err)
			}
			cursor = c.End
		case DeleteAction:
			if err := a.ApplyDelete(c.Start, c.End); err != nil {
				return false, fmt.Errorf("redo failed: %w", err)
			}
			cursor = c.Start
		}
	}
	a.SetCursor(cursor)

	m.redo = m.redo[:len(m.redo)-1]
	m.undo = append(m.undo, next)
	logger.DebugTagf("undo", "Redid step of %d change(s); undo=%d redo=%d", len(next), len(m.undo), len(m.redo))
	return true, nil
}

// Depth returns the number of undo and redo steps.
func (m *Manager) Depth() (undo, redo int) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return len(m.undo), len(m.redo)
}
