package utils

import (
	"sync"
	"time"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// RuneIndexToByteOffset converts a rune index to a byte offset in a byte slice.
// Indexes past the end clamp to len(line).
func RuneIndexToByteOffset(line []byte, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	byteOffset := 0
	currentRune := 0
	for byteOffset < len(line) {
		if currentRune == runeIndex {
			return byteOffset
		}
		_, size := utf8.DecodeRune(line[byteOffset:])
		byteOffset += size
		currentRune++
	}
	return len(line)
}

// TabCells returns the number of cells a tab occupies at visual column col.
func TabCells(col, tabWidth int) int {
	if tabWidth <= 0 {
		return 1
	}
	return tabWidth - (col % tabWidth)
}

// VisualColumn computes the screen column of runeIndex within line,
// honoring wide grapheme clusters and tab stops.
func VisualColumn(line []byte, runeIndex, tabWidth int) int {
	if runeIndex <= 0 {
		return 0
	}
	visual := 0
	current := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		if current >= runeIndex {
			break
		}
		runes := gr.Runes()
		if runes[0] == '\t' {
			visual += TabCells(visual, tabWidth)
		} else {
			visual += gr.Width()
		}
		current += len(runes)
	}
	return visual
}

// RuneIndexAtVisual is the inverse of VisualColumn: the rune index of the
// cluster covering visual column col, or the line length past the end.
func RuneIndexAtVisual(line []byte, col, tabWidth int) int {
	visual := 0
	current := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		runes := gr.Runes()
		width := gr.Width()
		if runes[0] == '\t' {
			width = TabCells(visual, tabWidth)
		}
		if col < visual+width {
			return current
		}
		visual += width
		current += len(runes)
	}
	return current
}

// Debouncer provides a way to debounce function calls
type Debouncer struct {
	mutex sync.Mutex
	timer *time.Timer
}

// Debounce calls fn after duration, canceling any previous pending call.
func (d *Debouncer) Debounce(duration time.Duration, fn func()) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(duration, func() {
		d.mutex.Lock()
		d.timer = nil
		d.mutex.Unlock()
		fn()
	})
}

// Stop cancels a pending call, if any.
func (d *Debouncer) Stop() {
	d.mutex.Lock()
	defer d.mutex.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
