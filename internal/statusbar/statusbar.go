// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/jot/internal/fonts"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/bethropolis/jot/internal/types"
	"github.com/bethropolis/jot/internal/widget"
	"github.com/gdamore/tcell/v2"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{MessageTimeout: 4 * time.Second}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	filePath   string
	isModified bool
	cursorPos  types.Position
	font       fonts.Font
	history    int
	redo       int

	tempMessage     string
	tempMessageTime time.Time
	now             func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{
		config: config,
		now:    time.Now,
	}
}

// SetFileInfo updates the file path and modified flag.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetFont updates the font shown.
func (sb *StatusBar) SetFont(f fonts.Font) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.font = f
}

// SetHistoryInfo updates the history and redo log sizes.
func (sb *StatusBar) SetHistoryInfo(history, redo int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.history = history
	sb.redo = redo
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, expiring it if its time is up.
func (sb *StatusBar) Message() (string, bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if sb.tempMessageTime.IsZero() {
		return "", false
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return "", false
	}
	return sb.tempMessage, true
}

// Text builds the default status line.
func (sb *StatusBar) Text() string {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}
	modified := ""
	if sb.isModified {
		modified = " [Modified]"
	}
	return fmt.Sprintf("%s%s -- Ln %d, Col %d -- %s -- history %d, redo %d",
		fPath, modified, sb.cursorPos.Line+1, sb.cursorPos.Col+1, sb.font, sb.history, sb.redo)
}

// Draw renders the status line on row y.
func (sb *StatusBar) Draw(screen tcell.Screen, y, width int, th *theme.Theme) {
	if width <= 0 {
		return
	}
	style := th.GetStyle(theme.StyleStatusBar)
	text, isMessage := sb.Message()
	if isMessage {
		style = th.GetStyle(theme.StyleStatusBarMessage)
	} else {
		text = sb.Text()
	}

	widget.Fill(screen, widget.Rect{X: 0, Y: y, W: width, H: 1}, style)
	widget.DrawText(screen, 0, y, width, text, style)

	sb.mu.RLock()
	modified := sb.isModified
	sb.mu.RUnlock()
	if modified && !isMessage && width > 0 {
		screen.SetContent(width-1, y, '*', nil, th.GetStyle(theme.StyleStatusBarModified))
	}
}
