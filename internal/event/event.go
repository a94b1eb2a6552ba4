// internal/event/event.go
package event

import (
	"github.com/bethropolis/jot/internal/fonts"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeFileOpened // A file replaced the text content
	TypeFileSaved  // The text content was written to a file

	// Text surface events
	TypeFontChanged // Family or size applied to the text surface
	TypeHistoryChanged

	// Window events
	TypeKeyPressed   // Raw key delivered to the text area
	TypeFocusChanged // Keyboard focus moved between widgets

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeUnknown:        "Unknown",
	TypeFileOpened:     "FileOpened",
	TypeFileSaved:      "FileSaved",
	TypeFontChanged:    "FontChanged",
	TypeHistoryChanged: "HistoryChanged",
	TypeKeyPressed:     "KeyPressed",
	TypeFocusChanged:   "FocusChanged",
	TypeAppReady:       "AppReady",
	TypeAppQuit:        "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// FileData carries the path of an opened or saved file.
type FileData struct {
	FilePath string
}

// FontChangedData carries the font now applied to the text surface.
type FontChangedData struct {
	Font fonts.Font
}

// HistoryChangedData carries the history and redo log sizes.
type HistoryChangedData struct {
	History int
	Redo    int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

// FocusChangedData names the widgets that lost and gained focus.
type FocusChangedData struct {
	From string
	To   string
}

// AppQuitData carries the error that ended the session, if any.
type AppQuitData struct {
	Err error
}

// AppReadyData is empty for now.
type AppReadyData struct{}
