// Package surface is the editable text area: content, cursor, selection,
// viewport, font and a native undo stack.
package surface

import (
	"github.com/bethropolis/jot/internal/buffer"
	"github.com/bethropolis/jot/internal/clipboard"
	"github.com/bethropolis/jot/internal/fonts"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/types"
	"github.com/bethropolis/jot/internal/undo"
)

// Config holds the settings a Surface is created with.
type Config struct {
	TabWidth  int
	ScrollOff int
	MaxUndo   int
	Font      fonts.Font
	Clipboard clipboard.Clipboard
}

// Surface holds the editable text. The authoritative content lives here only.
type Surface struct {
	buf    buffer.Buffer
	cursor types.Position

	// Selection runs from anchor to cursor while selecting is set.
	selecting bool
	anchor    types.Position

	viewY, viewX          int // top line, leftmost visual column
	viewWidth, viewHeight int
	scrollOff             int
	tabWidth              int

	font   fonts.Font
	native *undo.Manager
	clip   clipboard.Clipboard
}

// New creates an empty Surface.
func New(cfg Config) *Surface {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = 4
	}
	if cfg.Font.Family == "" {
		cfg.Font = fonts.Default()
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = &clipboard.Register{}
	}
	return &Surface{
		buf:       buffer.NewSliceBuffer(),
		scrollOff: cfg.ScrollOff,
		tabWidth:  cfg.TabWidth,
		font:      cfg.Font,
		native:    undo.NewManager(cfg.MaxUndo),
		clip:      cfg.Clipboard,
	}
}

// Buffer gives read access to the lines for drawing.
func (s *Surface) Buffer() buffer.Buffer {
	return s.buf
}

// Text returns the full content.
func (s *Surface) Text() string {
	return string(s.buf.Bytes())
}

// SetText replaces all content as one undoable step and puts the cursor at the start.
func (s *Surface) SetText(text string) {
	s.selecting = false
	s.native.BeginGroup()
	defer s.native.EndGroup()

	lastLine := s.buf.LineCount() - 1
	end := s.buf.Clamp(types.Position{Line: lastLine, Col: 1 << 30})
	if end != (types.Position{}) {
		s.recordDelete(types.Position{}, end, s.cursor)
	}
	if text != "" {
		s.recordInsert(types.Position{}, []byte(text), types.Position{})
	}

	s.cursor = types.Position{}
	s.viewY, s.viewX = 0, 0
	logger.Debugf("Surface: content replaced, %d line(s)", s.buf.LineCount())
}

// IsModified reports unsaved changes.
func (s *Surface) IsModified() bool {
	return s.buf.IsModified()
}

// SetModified overrides the modified flag.
func (s *Surface) SetModified(modified bool) {
	s.buf.SetModified(modified)
}

// TabWidth returns the tab stop width in cells.
func (s *Surface) TabWidth() int {
	return s.tabWidth
}

// Font returns the font applied to the text area.
func (s *Surface) Font() fonts.Font {
	return s.font
}

// SetFont applies a family and size to the text area.
func (s *Surface) SetFont(f fonts.Font) {
	s.font = f
	logger.Debugf("Surface: font set to %s", f)
}

// --- Native undo ---

// nativeApplier lets the undo stack edit the buffer without re-recording.
type nativeApplier struct{ s *Surface }

func (a nativeApplier) ApplyInsert(pos types.Position, text []byte) (types.Position, error) {
	return a.s.buf.Insert(pos, text)
}

func (a nativeApplier) ApplyDelete(start, end types.Position) error {
	_, err := a.s.buf.Delete(start, end)
	return err
}

func (a nativeApplier) SetCursor(pos types.Position) {
	a.s.selecting = false
	a.s.setCursor(pos)
}

// EditUndo reverts one native undo step.
func (s *Surface) EditUndo() (bool, error) {
	return s.native.Undo(nativeApplier{s})
}

// EditRedo re-applies one native undo step.
func (s *Surface) EditRedo() (bool, error) {
	return s.native.Redo(nativeApplier{s})
}

// EditSeparator closes the current native undo step.
func (s *Surface) EditSeparator() {
	s.native.Separator()
}

func (s *Surface) recordInsert(pos types.Position, text []byte, cursorBefore types.Position) types.Position {
	start := s.buf.Clamp(pos)
	end, err := s.buf.Insert(start, text)
	if err != nil {
		logger.Errorf("Surface: insert at %v failed: %v", start, err)
		return start
	}
	s.native.Record(undo.Change{Type: undo.InsertAction, Text: text, Start: start, End: end, CursorBefore: cursorBefore})
	return end
}

func (s *Surface) recordDelete(start, end, cursorBefore types.Position) {
	r := types.NewRange(s.buf.Clamp(start), s.buf.Clamp(end))
	removed, err := s.buf.Delete(r.Start, r.End)
	if err != nil {
		logger.Errorf("Surface: delete %v-%v failed: %v", r.Start, r.End, err)
		return
	}
	if len(removed) == 0 {
		return
	}
	s.native.Record(undo.Change{Type: undo.DeleteAction, Text: removed, Start: r.Start, End: r.End, CursorBefore: cursorBefore})
}
