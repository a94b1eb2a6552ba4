// internal/buffer/slice_buffer.go
package buffer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/jot/internal/types"
	"github.com/bethropolis/jot/internal/utils"
)

// SliceBuffer stores the text as one byte slice per line, without newlines.
// Splitting on every '\n' keeps Insert into an empty buffer followed by
// Bytes byte-identical.
type SliceBuffer struct {
	lines    [][]byte
	modified bool
}

// NewSliceBuffer creates an empty SliceBuffer.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines: [][]byte{{}},
	}
}

// Lines returns the underlying lines. Callers must not modify them.
func (sb *SliceBuffer) Lines() [][]byte {
	return sb.lines
}

// LineCount returns the number of lines, always at least one.
func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns one line without its newline.
func (sb *SliceBuffer) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(sb.lines) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(sb.lines)-1)
	}
	return sb.lines[index], nil
}

// Bytes joins the lines with '\n'.
func (sb *SliceBuffer) Bytes() []byte {
	return bytes.Join(sb.lines, []byte("\n"))
}

// IsModified returns true if the buffer has changed since the last SetModified(false).
func (sb *SliceBuffer) IsModified() bool {
	return sb.modified
}

// SetModified overrides the modified flag, e.g. after a save.
func (sb *SliceBuffer) SetModified(modified bool) {
	sb.modified = modified
}

// Clamp moves pos onto the nearest existing line and column.
func (sb *SliceBuffer) Clamp(pos types.Position) types.Position {
	valid, _ := sb.validatePosition(pos)
	return valid
}

// validatePosition clamps pos and returns its byte offset within the line.
func (sb *SliceBuffer) validatePosition(pos types.Position) (types.Position, int) {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(sb.lines) {
		pos.Line = len(sb.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	line := sb.lines[pos.Line]
	if runes := utf8.RuneCount(line); pos.Col > runes {
		pos.Col = runes
	}
	return pos, utils.RuneIndexToByteOffset(line, pos.Col)
}

// Insert inserts text at pos. Text may span multiple lines.
func (sb *SliceBuffer) Insert(pos types.Position, text []byte) (types.Position, error) {
	validPos, byteOffset := sb.validatePosition(pos)
	if len(text) == 0 {
		return validPos, nil
	}
	sb.modified = true

	currentLine := sb.lines[validPos.Line]
	head := append([]byte(nil), currentLine[:byteOffset]...)
	tail := append([]byte(nil), currentLine[byteOffset:]...)
	insertLines := bytes.Split(text, []byte("\n"))

	if len(insertLines) == 1 {
		sb.lines[validPos.Line] = append(append(head, text...), tail...)
		return types.Position{Line: validPos.Line, Col: validPos.Col + utf8.RuneCount(text)}, nil
	}

	newLines := make([][]byte, len(insertLines))
	newLines[0] = append(head, insertLines[0]...)
	for i := 1; i < len(insertLines); i++ {
		newLines[i] = append([]byte(nil), insertLines[i]...)
	}
	last := len(newLines) - 1
	endCol := utf8.RuneCount(newLines[last])
	newLines[last] = append(newLines[last], tail...)

	merged := make([][]byte, 0, len(sb.lines)+last)
	merged = append(merged, sb.lines[:validPos.Line]...)
	merged = append(merged, newLines...)
	merged = append(merged, sb.lines[validPos.Line+1:]...)
	sb.lines = merged

	return types.Position{Line: validPos.Line + last, Col: endCol}, nil
}

// Slice returns a copy of the text in [start, end).
func (sb *SliceBuffer) Slice(start, end types.Position) []byte {
	r := types.NewRange(start, end)
	vStart, startOffset := sb.validatePosition(r.Start)
	vEnd, endOffset := sb.validatePosition(r.End)

	if vStart.Line == vEnd.Line {
		return append([]byte(nil), sb.lines[vStart.Line][startOffset:endOffset]...)
	}
	var out bytes.Buffer
	out.Write(sb.lines[vStart.Line][startOffset:])
	for i := vStart.Line + 1; i < vEnd.Line; i++ {
		out.WriteByte('\n')
		out.Write(sb.lines[i])
	}
	out.WriteByte('\n')
	out.Write(sb.lines[vEnd.Line][:endOffset])
	return out.Bytes()
}

// Delete removes the text in [start, end). The positions may be given in any order.
func (sb *SliceBuffer) Delete(start, end types.Position) ([]byte, error) {
	r := types.NewRange(start, end)
	vStart, startOffset := sb.validatePosition(r.Start)
	vEnd, endOffset := sb.validatePosition(r.End)
	if vStart == vEnd {
		return nil, nil
	}

	removed := sb.Slice(vStart, vEnd)
	sb.modified = true

	startLine := sb.lines[vStart.Line]
	endLine := sb.lines[vEnd.Line]
	joined := append(append([]byte(nil), startLine[:startOffset]...), endLine[endOffset:]...)

	merged := make([][]byte, 0, len(sb.lines)-(vEnd.Line-vStart.Line))
	merged = append(merged, sb.lines[:vStart.Line]...)
	merged = append(merged, joined)
	merged = append(merged, sb.lines[vEnd.Line+1:]...)
	sb.lines = merged

	return removed, nil
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
