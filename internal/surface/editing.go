package surface

import (
	"fmt"
	"strings"

	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/types"
)

// InsertText types text at the cursor, replacing the selection if any.
func (s *Surface) InsertText(text string) {
	before := s.cursor
	s.deleteSelection()
	if text == "" {
		return
	}
	s.cursor = s.recordInsert(s.cursor, []byte(text), before)
	s.ScrollToCursor()
}

// InsertNewline breaks the line at the cursor.
func (s *Surface) InsertNewline() {
	s.InsertText("\n")
}

// InsertTab inserts a literal tab.
func (s *Surface) InsertTab() {
	s.InsertText("\t")
}

// DeleteBackward removes the selection, or the rune before the cursor.
func (s *Surface) DeleteBackward() {
	if s.deleteSelection() {
		return
	}
	before := s.cursor
	var start types.Position
	switch {
	case before.Col > 0:
		start = types.Position{Line: before.Line, Col: before.Col - 1}
	case before.Line > 0:
		start = types.Position{Line: before.Line - 1, Col: s.lineLen(before.Line - 1)}
	default:
		return
	}
	s.recordDelete(start, before, before)
	s.setCursor(start)
}

// DeleteForward removes the selection, or the rune after the cursor.
func (s *Surface) DeleteForward() {
	if s.deleteSelection() {
		return
	}
	before := s.cursor
	var end types.Position
	switch {
	case before.Col < s.lineLen(before.Line):
		end = types.Position{Line: before.Line, Col: before.Col + 1}
	case before.Line < s.buf.LineCount()-1:
		end = types.Position{Line: before.Line + 1, Col: 0}
	default:
		return
	}
	s.recordDelete(before, end, before)
	s.setCursor(before)
}

// --- Selection ---

// Selection returns the selected range, normalized.
func (s *Surface) Selection() (types.Range, bool) {
	if !s.selecting {
		return types.Range{}, false
	}
	r := types.NewRange(s.anchor, s.cursor)
	if r.Empty() {
		return r, false
	}
	return r, true
}

// SelectedText returns the selected text, or "".
func (s *Surface) SelectedText() string {
	r, ok := s.Selection()
	if !ok {
		return ""
	}
	return string(s.buf.Slice(r.Start, r.End))
}

// SelectAll selects the whole content, leaving the cursor at the end.
func (s *Surface) SelectAll() {
	s.native.Separator()
	last := s.buf.LineCount() - 1
	s.selecting = true
	s.anchor = types.Position{}
	s.setCursor(types.Position{Line: last, Col: s.lineLen(last)})
}

// ClearSelection drops the selection without moving the cursor.
func (s *Surface) ClearSelection() {
	s.selecting = false
}

func (s *Surface) deleteSelection() bool {
	r, ok := s.Selection()
	s.selecting = false
	if !ok {
		return false
	}
	s.recordDelete(r.Start, r.End, s.cursor)
	s.setCursor(r.Start)
	return true
}

// --- Clipboard ---

// Copy stores the selection in the clipboard. Without a selection it does nothing.
func (s *Surface) Copy() error {
	text := s.SelectedText()
	if text == "" {
		return nil
	}
	if err := s.clip.Write(text); err != nil {
		return fmt.Errorf("copy: %w", err)
	}
	logger.Debugf("Surface: copied %d bytes", len(text))
	return nil
}

// Cut copies then deletes the selection.
func (s *Surface) Cut() error {
	if _, ok := s.Selection(); !ok {
		return nil
	}
	if err := s.Copy(); err != nil {
		return err
	}
	s.native.BeginGroup()
	s.deleteSelection()
	s.native.EndGroup()
	return nil
}

// Paste inserts the clipboard text at the cursor as its own undo step.
func (s *Surface) Paste() error {
	text, err := s.clip.Read()
	if err != nil {
		return fmt.Errorf("paste: %w", err)
	}
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	s.native.BeginGroup()
	s.InsertText(text)
	s.native.EndGroup()
	return nil
}
