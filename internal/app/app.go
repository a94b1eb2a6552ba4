// internal/app/app.go
package app

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bethropolis/jot/internal/clipboard"
	"github.com/bethropolis/jot/internal/config"
	"github.com/bethropolis/jot/internal/dialog"
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/fonts"
	"github.com/bethropolis/jot/internal/history"
	"github.com/bethropolis/jot/internal/input"
	"github.com/bethropolis/jot/internal/logger"
	"github.com/bethropolis/jot/internal/statusbar"
	"github.com/bethropolis/jot/internal/surface"
	"github.com/bethropolis/jot/internal/theme"
	"github.com/bethropolis/jot/internal/tui"
	"github.com/bethropolis/jot/internal/utils"
	"github.com/bethropolis/jot/internal/widget"
	"github.com/gdamore/tcell/v2"
)

// Options are the collaborators an App is built from. Nil fields get defaults.
type Options struct {
	Config    *config.Config
	Theme     *theme.Theme
	Catalog   *fonts.Catalog
	Dialog    dialog.Service      // defaults to the terminal dialog on the same screen
	Clipboard clipboard.Clipboard // defaults per editor.system_clipboard
	FilePath  string              // opened before the first frame
}

// App owns the window: widgets, focus, layout and the event loop.
type App struct {
	ui        *tui.TUI
	theme     *theme.Theme
	cfg       *config.Config
	catalog   *fonts.Catalog
	surface   *surface.Surface
	history   *history.Tracker
	files     dialog.Service
	statusBar *statusbar.StatusBar
	events    *event.Manager
	input     *input.InputProcessor
	dispatch  map[input.Action]actionHandler

	fontCombo  *widget.Combo
	sizeCombo  *widget.Combo
	saveButton *widget.Button
	openButton *widget.Button
	undoButton *widget.Button
	redoButton *widget.Button

	focus       focusTarget
	layout      layout
	lastButtons tcell.ButtonMask

	title       string
	docPath     string
	startupPath string
	quit        bool

	messageTimer utils.Debouncer
}

// New builds an App drawing on screen. The screen is initialized here and
// finalized when Run returns.
func New(screen tcell.Screen, opts Options) (*App, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}
	th := opts.Theme
	if th == nil {
		th = &theme.Paper
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog, _ = fonts.NewCatalog(fonts.StaticProvider{})
	}
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.New(cfg.Editor.SystemClipboard)
	}

	ui, err := tui.NewWithScreen(screen, th)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	startFont := fonts.Font{Family: cfg.Font.Family, Size: cfg.Font.Size}
	if err := catalog.Validate(startFont); err != nil {
		logger.Warnf("App: configured font %s not usable (%v), using %s", startFont, err, fonts.Default())
		startFont = fonts.Default()
	}

	surf := surface.New(surface.Config{
		TabWidth:  cfg.Editor.TabWidth,
		ScrollOff: cfg.Editor.ScrollOff,
		MaxUndo:   cfg.Editor.MaxUndo,
		Font:      startFont,
		Clipboard: clip,
	})

	files := opts.Dialog
	if files == nil {
		files = dialog.NewTerminal(screen, th, dialog.Options{
			Filters:    []dialog.Filter{{Name: cfg.Dialog.FilterName, Pattern: cfg.Dialog.FilterPattern}},
			InitialDir: cfg.Dialog.StartDir,
		})
	}

	sizes := make([]string, 0, fonts.MaxSize-fonts.MinSize+1)
	for _, s := range fonts.Sizes() {
		sizes = append(sizes, strconv.Itoa(s))
	}

	a := &App{
		ui:          ui,
		theme:       th,
		cfg:         cfg,
		catalog:     catalog,
		surface:     surf,
		history:     history.NewTracker(surf),
		files:       files,
		statusBar:   statusbar.New(statusbar.Config{MessageTimeout: config.MessageTimeout}),
		events:      event.NewManager(),
		input:       input.NewInputProcessor(),
		fontCombo:   widget.NewCombo("Font", catalog.Families(), startFont.Family),
		sizeCombo:   widget.NewCombo("Size", sizes, strconv.Itoa(startFont.Size)),
		saveButton:  widget.NewButton("Save"),
		openButton:  widget.NewButton("Open"),
		undoButton:  widget.NewButton("Undo"),
		redoButton:  widget.NewButton("Redo"),
		focus:       focusText,
		startupPath: opts.FilePath,
	}
	a.dispatch = a.actionTable()
	a.subscribe()
	a.setTitle(config.WindowTitle)
	a.statusBar.SetFont(startFont)

	w, h := ui.Size()
	a.applyLayout(w, h)
	return a, nil
}

// subscribe wires the status bar and the font selectors to the event bus.
func (a *App) subscribe() {
	a.events.Subscribe(event.TypeFocusChanged, a.handleFocusOut)
	a.events.Subscribe(event.TypeFontChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.FontChangedData); ok {
			a.statusBar.SetFont(data.Font)
		}
		return false
	})
	a.events.Subscribe(event.TypeHistoryChanged, func(e event.Event) bool {
		if data, ok := e.Data.(event.HistoryChangedData); ok {
			a.statusBar.SetHistoryInfo(data.History, data.Redo)
		}
		return false
	})
	a.events.Subscribe(event.TypeFileOpened, func(e event.Event) bool {
		if data, ok := e.Data.(event.FileData); ok {
			a.setMessage("Opened %s", data.FilePath)
		}
		return false
	})
	a.events.Subscribe(event.TypeFileSaved, func(e event.Event) bool {
		if data, ok := e.Data.(event.FileData); ok {
			a.setMessage("Saved %s", data.FilePath)
		}
		return false
	})
}

// Run opens the startup file, then draws, polls and handles events one at a
// time until quit. A file I/O failure ends the loop and is returned.
func (a *App) Run() error {
	defer a.ui.Close()
	defer a.messageTimer.Stop()

	if a.startupPath != "" {
		if err := a.openPath(a.startupPath); err != nil {
			a.events.Dispatch(event.TypeAppQuit, event.AppQuitData{Err: err})
			return err
		}
	}

	a.events.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.setMessage("Ctrl+O Open | Ctrl+S Save | Ctrl+Z Undo | Ctrl+Y Redo | F6 Focus | Ctrl+Q Quit")

	for !a.quit {
		a.draw()
		ev := a.ui.PollEvent()
		if ev == nil {
			break
		}
		if err := a.HandleEvent(ev); err != nil {
			logger.Errorf("App: %v", err)
			a.events.Dispatch(event.TypeAppQuit, event.AppQuitData{Err: err})
			return err
		}
	}

	if a.surface.IsModified() {
		logger.Warnf("App: exiting with unsaved changes")
	}
	a.events.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	logger.Infof("Exiting application.")
	return nil
}

// HandleEvent processes one screen event.
func (a *App) HandleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.ui.Sync()
		w, h := ev.Size()
		a.applyLayout(w, h)
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		return a.handleMouse(ev)
	case *tcell.EventInterrupt:
		// Posted when a status message expires; the next draw clears it.
	}
	return nil
}

// setTitle updates the title bar and, where supported, the terminal title.
func (a *App) setTitle(title string) {
	a.title = title
	a.ui.SetTitle(title)
}

// setMessage shows a temporary status message and schedules a redraw for
// when it expires.
func (a *App) setMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	a.messageTimer.Debounce(config.MessageTimeout+100*time.Millisecond, func() {
		a.ui.PostInterrupt(nil)
	})
}

func (a *App) historyChanged() {
	a.events.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
		History: a.history.Len(),
		Redo:    a.history.RedoLen(),
	})
}

// Title returns the current window title.
func (a *App) Title() string { return a.title }

// DocumentPath returns the path last used for open or save.
func (a *App) DocumentPath() string { return a.docPath }

// Surface exposes the text surface.
func (a *App) Surface() *surface.Surface { return a.surface }

// History exposes the history tracker.
func (a *App) History() *history.Tracker { return a.history }

// Events exposes the event bus.
func (a *App) Events() *event.Manager { return a.events }

// Done reports whether quit was requested.
func (a *App) Done() bool { return a.quit }
