package surface

import (
	"testing"

	"github.com/bethropolis/jot/internal/clipboard"
	"github.com/bethropolis/jot/internal/fonts"
	"github.com/bethropolis/jot/internal/types"
)

func newSurface() *Surface {
	return New(Config{TabWidth: 4, ScrollOff: 1, Clipboard: &clipboard.Register{}})
}

func typeString(s *Surface, text string) {
	for _, r := range text {
		if r == '\n' {
			s.InsertNewline()
			continue
		}
		s.InsertText(string(r))
	}
}

func TestTypingAndNativeUndo(t *testing.T) {
	s := newSurface()
	typeString(s, "hello")
	if s.Text() != "hello" || s.Cursor() != (types.Position{Line: 0, Col: 5}) {
		t.Fatalf("text=%q cursor=%+v", s.Text(), s.Cursor())
	}
	if !s.IsModified() {
		t.Error("typing must mark the surface modified")
	}

	s.DeleteBackward()
	s.DeleteBackward()
	if s.Text() != "hel" {
		t.Fatalf("after backspace: %q", s.Text())
	}

	if ok, err := s.EditUndo(); !ok || err != nil {
		t.Fatalf("EditUndo = %v, %v", ok, err)
	}
	if s.Text() != "hello" {
		t.Errorf("undo of deletes gave %q", s.Text())
	}
	s.EditUndo()
	if s.Text() != "" {
		t.Errorf("undo of typing gave %q", s.Text())
	}
	s.EditRedo()
	if s.Text() != "hello" {
		t.Errorf("redo gave %q", s.Text())
	}
}

func TestCursorMoveSeparatesUndoSteps(t *testing.T) {
	s := newSurface()
	typeString(s, "ab")
	s.MoveCursor(0, -1, false)
	s.MoveCursor(0, 1, false)
	typeString(s, "cd")

	s.EditUndo()
	if s.Text() != "ab" {
		t.Errorf("text = %q, want ab", s.Text())
	}
}

func TestSetTextIsOneUndoStep(t *testing.T) {
	s := newSurface()
	typeString(s, "old")
	s.SetText("new\ncontent")
	if s.Text() != "new\ncontent" || s.Cursor() != (types.Position{}) {
		t.Fatalf("text=%q cursor=%+v", s.Text(), s.Cursor())
	}
	s.EditUndo()
	if s.Text() != "old" {
		t.Errorf("undo of SetText gave %q", s.Text())
	}
}

func TestNewlineAndJoin(t *testing.T) {
	s := newSurface()
	typeString(s, "ab\ncd")
	if s.Buffer().LineCount() != 2 {
		t.Fatalf("lines = %d", s.Buffer().LineCount())
	}
	s.SetCursor(types.Position{Line: 1, Col: 0})
	s.DeleteBackward()
	if s.Text() != "abcd" || s.Cursor() != (types.Position{Line: 0, Col: 2}) {
		t.Errorf("text=%q cursor=%+v", s.Text(), s.Cursor())
	}
	s.SetCursor(types.Position{Line: 0, Col: 4})
	s.DeleteForward()
	if s.Text() != "abcd" {
		t.Errorf("delete at end changed text: %q", s.Text())
	}
}

func TestMoveCursorWraps(t *testing.T) {
	s := newSurface()
	typeString(s, "ab\ncd")
	s.SetCursor(types.Position{Line: 0, Col: 2})
	s.MoveCursor(0, 1, false)
	if s.Cursor() != (types.Position{Line: 1, Col: 0}) {
		t.Errorf("right at EOL: %+v", s.Cursor())
	}
	s.MoveCursor(0, -1, false)
	if s.Cursor() != (types.Position{Line: 0, Col: 2}) {
		t.Errorf("left at BOL: %+v", s.Cursor())
	}
	s.MoveCursor(5, 0, false)
	if s.Cursor() != (types.Position{Line: 1, Col: 2}) {
		t.Errorf("clamped down: %+v", s.Cursor())
	}
	s.MoveLineStart(false)
	if s.Cursor().Col != 0 {
		t.Errorf("home: %+v", s.Cursor())
	}
	s.MoveLineEnd(false)
	if s.Cursor().Col != 2 {
		t.Errorf("end: %+v", s.Cursor())
	}
}

func TestSelectionCopyCutPaste(t *testing.T) {
	clip := &clipboard.Register{}
	s := New(Config{Clipboard: clip})
	typeString(s, "hello world")
	s.MoveLineStart(false)
	for i := 0; i < 5; i++ {
		s.MoveCursor(0, 1, true)
	}
	if got := s.SelectedText(); got != "hello" {
		t.Fatalf("selection = %q", got)
	}
	if err := s.Cut(); err != nil {
		t.Fatalf("Cut: %v", err)
	}
	if s.Text() != " world" {
		t.Errorf("after cut: %q", s.Text())
	}
	s.MoveLineEnd(false)
	if err := s.Paste(); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if s.Text() != " worldhello" {
		t.Errorf("after paste: %q", s.Text())
	}
	s.EditUndo()
	if s.Text() != " world" {
		t.Errorf("paste must undo as one step, got %q", s.Text())
	}
}

func TestTypingReplacesSelection(t *testing.T) {
	s := newSurface()
	typeString(s, "abc")
	s.SelectAll()
	typeString(s, "x")
	if s.Text() != "x" {
		t.Errorf("text = %q, want x", s.Text())
	}
	if _, ok := s.Selection(); ok {
		t.Error("selection should be gone")
	}
}

func TestCopyWithoutSelection(t *testing.T) {
	clip := &clipboard.Register{}
	clip.Write("keep")
	s := New(Config{Clipboard: clip})
	typeString(s, "abc")
	if err := s.Copy(); err != nil {
		t.Fatal(err)
	}
	if got, _ := clip.Read(); got != "keep" {
		t.Errorf("clipboard = %q, want unchanged", got)
	}
}

func TestScrollToCursor(t *testing.T) {
	s := newSurface()
	s.SetViewSize(10, 3)
	for i := 0; i < 10; i++ {
		s.InsertNewline()
	}
	y, _ := s.Viewport()
	if s.Cursor().Line-y >= 3 || s.Cursor().Line < y {
		t.Errorf("cursor line %d not visible from viewY %d", s.Cursor().Line, y)
	}
	typeString(s, "0123456789abc")
	_, x := s.Viewport()
	if x == 0 {
		t.Error("expected horizontal scroll")
	}
}

func TestFont(t *testing.T) {
	s := newSurface()
	if s.Font() != fonts.Default() {
		t.Errorf("default font = %v", s.Font())
	}
	s.SetFont(fonts.Font{Family: "Arial", Size: 20})
	if s.Font().Size != 20 {
		t.Errorf("font = %v", s.Font())
	}
}
