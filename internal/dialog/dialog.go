// Package dialog asks the user for a file path. Cancellation is reported
// as "no path", never as an error.
package dialog

import (
	"os"
	"path/filepath"

	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Service resolves paths for open and save.
type Service interface {
	// AskOpenFilename returns an existing file, or false when cancelled.
	AskOpenFilename() (string, bool)
	// AskSaveAsFilename returns a path to write, or false when cancelled.
	AskSaveAsFilename() (string, bool)
}

// Filter is a named file name pattern such as {"Text Files", "*.txt"}.
type Filter struct {
	Name    string
	Pattern string
}

// Options configures a Terminal dialog.
type Options struct {
	Filters    []Filter
	InitialDir string
}

// Terminal is a modal path picker drawn over a tcell screen. While it is
// open it reads events from the screen itself, so the caller's event loop
// is suspended.
type Terminal struct {
	screen tcell.Screen
	theme  *theme.Theme
	opts   Options
	dir    string // last directory browsed, reused by the next call
}

// NewTerminal creates a dialog drawing on screen.
func NewTerminal(screen tcell.Screen, th *theme.Theme, opts Options) *Terminal {
	dir := opts.InitialDir
	if dir == "" {
		if wd, err := os.Getwd(); err == nil {
			dir = wd
		}
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	return &Terminal{screen: screen, theme: th, opts: opts, dir: dir}
}

// AskOpenFilename implements Service.
func (t *Terminal) AskOpenFilename() (string, bool) {
	return t.run(modeOpen)
}

// AskSaveAsFilename implements Service.
func (t *Terminal) AskSaveAsFilename() (string, bool) {
	return t.run(modeSave)
}

func (t *Terminal) run(m mode) (string, bool) {
	b := newBrowser(m, t.dir, t.opts.Filters)
	logger.DebugTagf("dialog", "%s dialog opened in '%s'", m, b.dir)

	for {
		t.draw(b)
		ev := t.screen.PollEvent()
		if ev == nil {
			return "", false
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.screen.Sync()
		case *tcell.EventKey:
			if path, done, ok := b.handleKey(ev); done {
				t.dir = b.dir
				if ok {
					logger.DebugTagf("dialog", "%s dialog chose '%s'", m, path)
				} else {
					logger.DebugTagf("dialog", "%s dialog cancelled", m)
				}
				return path, ok
			}
		case *tcell.EventMouse:
			x, y := ev.Position()
			b.mouse(t.listRow(x, y), ev.Buttons())
		}
	}
}
