// Package history keeps a log of the keystrokes typed into the text area
// and mirrors undo/redo requests onto the text surface's own undo stack.
package history

import (
	"fmt"

	"github.com/bethropolis/jot/internal/types"
	"github.com/gdamore/tcell/v2"
)

// EditRecord is one logged keystroke.
type EditRecord struct {
	Char   string         // Character produced by the key, control characters included; "" for keys like arrows
	Symbol string         // Key name, e.g. "a", "Enter", "Left"
	Index  types.Position // Cursor position when the key arrived
}

func (r EditRecord) String() string {
	return fmt.Sprintf("%s@%d.%d", r.Symbol, r.Index.Line+1, r.Index.Col)
}

// NewEditRecord builds a record from a key event and the cursor position at that moment.
func NewEditRecord(ev *tcell.EventKey, cursor types.Position) EditRecord {
	return EditRecord{Char: keyChar(ev), Symbol: keySymbol(ev), Index: cursor}
}

// keyChar returns what the key types: the rune for printable keys, the
// control character for Ctrl combinations, Enter, Tab, Backspace and
// Delete, and nothing for navigation and function keys.
func keyChar(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	if k := ev.Key(); k >= 0 && k <= 0x7F {
		return string(rune(k))
	}
	return ""
}

func keySymbol(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		return name
	}
	return fmt.Sprintf("Key[%d]", ev.Key())
}
