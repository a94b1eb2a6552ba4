// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/jot/internal/types"

// Buffer defines the interface for text buffer operations.
// Positions are clamped to the buffer rather than rejected.
type Buffer interface {
	Bytes() []byte
	Lines() [][]byte
	Line(index int) ([]byte, error)
	LineCount() int
	// Insert returns the position just after the inserted text.
	Insert(pos types.Position, text []byte) (types.Position, error)
	// Delete returns the removed text.
	Delete(start, end types.Position) ([]byte, error)
	Slice(start, end types.Position) []byte
	Clamp(pos types.Position) types.Position
	IsModified() bool
	SetModified(modified bool)
}
