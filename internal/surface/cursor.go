package surface

import (
	"unicode/utf8"

	"github.com/bethropolis/jot/internal/types"
	"github.com/bethropolis/jot/internal/utils"
)

// Cursor returns the insertion point.
func (s *Surface) Cursor() types.Position {
	return s.cursor
}

// SetCursor moves the insertion point, clearing any selection.
func (s *Surface) SetCursor(pos types.Position) {
	s.selecting = false
	s.native.Separator()
	s.setCursor(pos)
}

func (s *Surface) setCursor(pos types.Position) {
	s.cursor = s.buf.Clamp(pos)
	s.ScrollToCursor()
}

func (s *Surface) lineLen(line int) int {
	b, err := s.buf.Line(line)
	if err != nil {
		return 0
	}
	return utf8.RuneCount(b)
}

// MoveCursor moves by whole lines and runes, wrapping across line ends for
// horizontal moves. With extend set the selection follows the cursor.
func (s *Surface) MoveCursor(deltaLine, deltaCol int, extend bool) {
	s.beginMove(extend)
	target := s.cursor
	lineCount := s.buf.LineCount()

	switch {
	case deltaLine == 0 && deltaCol > 0 && target.Col >= s.lineLen(target.Line) && target.Line < lineCount-1:
		target = types.Position{Line: target.Line + 1, Col: 0}
	case deltaLine == 0 && deltaCol < 0 && target.Col <= 0 && target.Line > 0:
		target = types.Position{Line: target.Line - 1, Col: s.lineLen(target.Line - 1)}
	default:
		target.Line += deltaLine
		target.Col += deltaCol
	}
	s.setCursor(target)
}

// MoveLineStart moves to column 0.
func (s *Surface) MoveLineStart(extend bool) {
	s.beginMove(extend)
	s.setCursor(types.Position{Line: s.cursor.Line, Col: 0})
}

// MoveLineEnd moves past the last rune of the line.
func (s *Surface) MoveLineEnd(extend bool) {
	s.beginMove(extend)
	s.setCursor(types.Position{Line: s.cursor.Line, Col: s.lineLen(s.cursor.Line)})
}

// MovePage moves one view height up (pages < 0) or down.
func (s *Surface) MovePage(pages int, extend bool) {
	height := s.viewHeight
	if height <= 0 {
		height = 1
	}
	s.MoveCursor(pages*height, 0, extend)
}

// beginMove anchors or drops the selection before a cursor move.
func (s *Surface) beginMove(extend bool) {
	s.native.Separator()
	if extend && !s.selecting {
		s.selecting = true
		s.anchor = s.cursor
	} else if !extend {
		s.selecting = false
	}
}

// --- Viewport ---

// SetViewSize sets the text area size in cells.
func (s *Surface) SetViewSize(width, height int) {
	s.viewWidth, s.viewHeight = width, height
	s.ScrollToCursor()
}

// Viewport returns the top visible line and the leftmost visible column.
func (s *Surface) Viewport() (y, x int) {
	return s.viewY, s.viewX
}

// ScrollToCursor keeps the cursor visible with ScrollOff lines of context.
func (s *Surface) ScrollToCursor() {
	if s.viewHeight <= 0 || s.viewWidth <= 0 {
		return
	}

	scrollOff := s.scrollOff
	if scrollOff*2 >= s.viewHeight {
		scrollOff = (s.viewHeight - 1) / 2
	}
	if s.cursor.Line < s.viewY+scrollOff {
		s.viewY = s.cursor.Line - scrollOff
	} else if s.cursor.Line >= s.viewY+s.viewHeight-scrollOff {
		s.viewY = s.cursor.Line - s.viewHeight + scrollOff + 1
	}
	if maxY := s.buf.LineCount() - 1; s.viewY > maxY {
		s.viewY = maxY
	}
	if s.viewY < 0 {
		s.viewY = 0
	}

	line, _ := s.buf.Line(s.cursor.Line)
	col := utils.VisualColumn(line, s.cursor.Col, s.tabWidth)
	if col < s.viewX {
		s.viewX = col
	} else if col >= s.viewX+s.viewWidth {
		s.viewX = col - s.viewWidth + 1
	}
}
