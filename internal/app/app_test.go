package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/jot/internal/clipboard"
	"github.com/bethropolis/jot/internal/config"
	"github.com/bethropolis/jot/internal/event"
	"github.com/bethropolis/jot/internal/fonts"
	"github.com/gdamore/tcell/v2"
)

// fakeDialog answers with queued paths; an empty queue means cancel.
type fakeDialog struct {
	open []string
	save []string
}

func (f *fakeDialog) AskOpenFilename() (string, bool) {
	if len(f.open) == 0 {
		return "", false
	}
	path := f.open[0]
	f.open = f.open[1:]
	return path, true
}

func (f *fakeDialog) AskSaveAsFilename() (string, bool) {
	if len(f.save) == 0 {
		return "", false
	}
	path := f.save[0]
	f.save = f.save[1:]
	return path, true
}

func newTestApp(t *testing.T, files *fakeDialog) (*App, tcell.SimulationScreen) {
	t.Helper()
	catalog, err := fonts.NewCatalog(fonts.StaticProvider{"Arial", "Courier"})
	if err != nil {
		t.Fatal(err)
	}
	sim := tcell.NewSimulationScreen("UTF-8")
	a, err := New(sim, Options{
		Config:    config.NewDefaultConfig(),
		Catalog:   catalog,
		Dialog:    files,
		Clipboard: &clipboard.Register{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() {
		a.messageTimer.Stop()
		a.ui.Close()
	})
	return a, sim
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func keyCtrl(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModCtrl)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func send(t *testing.T, a *App, events ...tcell.Event) {
	t.Helper()
	for _, ev := range events {
		if err := a.HandleEvent(ev); err != nil {
			t.Fatalf("HandleEvent(%T): %v", ev, err)
		}
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestTypeUndoType(t *testing.T) {
	a, _ := newTestApp(t, &fakeDialog{})
	send(t, a, keyRune('a'), keyRune('b'), keyCtrl(tcell.KeyCtrlZ), keyRune('c'))

	h := a.History()
	if h.RedoLen() != 0 {
		t.Errorf("RedoLen = %d, want 0", h.RedoLen())
	}
	entries := h.Entries()
	if len(entries) != 2 || entries[0].Symbol != "a" || entries[1].Symbol != "c" {
		t.Errorf("history = %v, want records for a and c", entries)
	}
	if got := a.Surface().Text(); got != "c" {
		t.Errorf("text = %q, want %q", got, "c")
	}
}

func TestUndoRedoCounts(t *testing.T) {
	a, _ := newTestApp(t, &fakeDialog{})
	send(t, a, keyRune('x'), keyRune('y'), keyRune('z'))
	h := a.History()
	if h.Len() != 3 || h.RedoLen() != 0 {
		t.Fatalf("Len=%d RedoLen=%d, want 3 0", h.Len(), h.RedoLen())
	}

	send(t, a, keyCtrl(tcell.KeyCtrlZ))
	if h.Len() != 2 || h.RedoLen() != 1 || a.Surface().Text() != "" {
		t.Fatalf("after undo Len=%d RedoLen=%d text=%q", h.Len(), h.RedoLen(), a.Surface().Text())
	}

	send(t, a, keyCtrl(tcell.KeyCtrlY))
	if h.Len() != 3 || h.RedoLen() != 0 || a.Surface().Text() != "xyz" {
		t.Fatalf("after redo Len=%d RedoLen=%d text=%q", h.Len(), h.RedoLen(), a.Surface().Text())
	}

	send(t, a, keyCtrl(tcell.KeyCtrlY))
	if h.Len() != 3 {
		t.Errorf("redo on an empty log changed Len to %d", h.Len())
	}
}

func TestShortcutsAreNotRecorded(t *testing.T) {
	a, _ := newTestApp(t, &fakeDialog{})
	send(t, a,
		keyCtrl(tcell.KeyCtrlS), keyCtrl(tcell.KeyCtrlO),
		keyCtrl(tcell.KeyCtrlZ), keyCtrl(tcell.KeyCtrlY),
		key(tcell.KeyF6), key(tcell.KeyBacktab),
	)
	if a.History().Len() != 0 {
		t.Errorf("window shortcuts were recorded: %v", a.History().Entries())
	}
	if a.Title() != config.WindowTitle {
		t.Errorf("cancelled dialogs changed the title to %q", a.Title())
	}
}

func TestNonPrintableKeysAreRecorded(t *testing.T) {
	a, _ := newTestApp(t, &fakeDialog{})
	send(t, a, keyRune('a'), key(tcell.KeyLeft), key(tcell.KeyEnter), key(tcell.KeyF1))
	entries := a.History().Entries()
	if len(entries) != 4 {
		t.Fatalf("recorded %d keys, want 4", len(entries))
	}
	if entries[1].Symbol != "Left" || entries[1].Char != "" {
		t.Errorf("Left recorded as %+v", entries[1])
	}
	if entries[1].Index.Col != 1 {
		t.Errorf("Left recorded at col %d, want the cursor before the move (1)", entries[1].Index.Col)
	}
}

func TestOpenSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "hello.txt")
	dst := filepath.Join(dir, "copy.txt")
	writeFile(t, src, "hello")

	files := &fakeDialog{open: []string{src, dst}, save: []string{dst}}
	a, _ := newTestApp(t, files)

	send(t, a, keyCtrl(tcell.KeyCtrlO))
	if a.Surface().Text() != "hello" {
		t.Fatalf("opened text = %q", a.Surface().Text())
	}
	if a.Title() != "Open file: "+src || a.DocumentPath() != src {
		t.Errorf("title %q path %q", a.Title(), a.DocumentPath())
	}
	if a.Surface().IsModified() {
		t.Error("freshly opened text should not be modified")
	}

	send(t, a, keyCtrl(tcell.KeyCtrlS))
	if a.Title() != "Save file: "+dst {
		t.Errorf("title after save = %q", a.Title())
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "hello" {
		t.Fatalf("saved file = %q, %v", data, err)
	}

	a.Surface().SetText("scratch")
	send(t, a, keyCtrl(tcell.KeyCtrlO))
	if a.Surface().Text() != "hello" {
		t.Errorf("reopened text = %q", a.Surface().Text())
	}
}

func TestOpenFailureIsReturned(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	a, _ := newTestApp(t, &fakeDialog{open: []string{missing}})
	if err := a.HandleEvent(keyCtrl(tcell.KeyCtrlO)); err == nil {
		t.Fatal("expected an error opening a missing file")
	}
	if a.Title() != config.WindowTitle {
		t.Errorf("failed open changed the title to %q", a.Title())
	}
}

func TestSaveFailureIsReturned(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "no", "such", "dir.txt")
	a, _ := newTestApp(t, &fakeDialog{save: []string{bad}})
	if err := a.HandleEvent(keyCtrl(tcell.KeyCtrlS)); err == nil {
		t.Fatal("expected an error saving into a missing directory")
	}
}

func TestFontAppliesOnFocusOut(t *testing.T) {
	a, _ := newTestApp(t, &fakeDialog{})
	var changes []fonts.Font
	a.Events().Subscribe(event.TypeFontChanged, func(e event.Event) bool {
		changes = append(changes, e.Data.(event.FontChangedData).Font)
		return false
	})

	send(t, a, key(tcell.KeyF6))
	if a.Focus() != "font" {
		t.Fatalf("focus = %q, want font", a.Focus())
	}
	send(t, a, key(tcell.KeyEnter), key(tcell.KeyUp), key(tcell.KeyEnter))
	if a.Surface().Font() != fonts.Default() {
		t.Fatalf("font changed before focus left the selector: %v", a.Surface().Font())
	}

	send(t, a, key(tcell.KeyF6))
	want := fonts.Font{Family: "Courier", Size: 14}
	if a.Surface().Font() != want {
		t.Fatalf("font after focus-out = %v, want %v", a.Surface().Font(), want)
	}

	send(t, a, key(tcell.KeyEnter), key(tcell.KeyDown), key(tcell.KeyEnter))
	if a.Surface().Font().Size != 14 {
		t.Fatal("size changed before focus left the selector")
	}
	send(t, a, key(tcell.KeyBacktab))
	want = fonts.Font{Family: "Courier", Size: 15}
	if a.Surface().Font() != want {
		t.Errorf("font after size focus-out = %v, want %v", a.Surface().Font(), want)
	}
	if len(changes) != 2 {
		t.Errorf("FontChanged fired %d times, want 2", len(changes))
	}
	if a.History().Len() != 0 {
		t.Error("keys sent to the selectors were recorded")
	}
}

func TestChangeFontRejectsInvalid(t *testing.T) {
	a, _ := newTestApp(t, &fakeDialog{})
	a.changeFont("NoSuchFont", 12)
	a.changeFontSize(31)
	a.changeFontSize(7)
	if a.Surface().Font() != fonts.Default() {
		t.Errorf("invalid font applied: %v", a.Surface().Font())
	}
	a.changeFontSize(30)
	if a.Surface().Font().Size != 30 {
		t.Errorf("size 30 rejected")
	}
}

func TestMouseClicks(t *testing.T) {
	a, _ := newTestApp(t, &fakeDialog{})
	send(t, a, keyRune('h'), keyRune('i'))

	undo := a.undoButton.Rect
	send(t, a,
		tcell.NewEventMouse(undo.X+1, undo.Y, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(undo.X+1, undo.Y, tcell.ButtonNone, tcell.ModNone),
	)
	if a.Focus() != "undo" || a.History().RedoLen() != 1 || a.Surface().Text() != "" {
		t.Fatalf("after clicking Undo: focus=%q redo=%d text=%q", a.Focus(), a.History().RedoLen(), a.Surface().Text())
	}

	redo := a.redoButton.Rect
	send(t, a,
		tcell.NewEventMouse(redo.X+1, redo.Y, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(redo.X+1, redo.Y, tcell.ButtonNone, tcell.ModNone),
	)
	if a.Surface().Text() != "hi" {
		t.Fatalf("after clicking Redo text=%q", a.Surface().Text())
	}

	text := a.layout.text
	send(t, a,
		tcell.NewEventMouse(text.X+1, text.Y, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(text.X+1, text.Y, tcell.ButtonNone, tcell.ModNone),
	)
	if a.Focus() != "text" || a.Surface().Cursor().Col != 1 {
		t.Errorf("click in text: focus=%q cursor=%+v", a.Focus(), a.Surface().Cursor())
	}
}

func TestDrawShowsTitleAndText(t *testing.T) {
	a, sim := newTestApp(t, &fakeDialog{})
	send(t, a, keyRune('o'), keyRune('k'))
	a.draw()

	cells, w, _ := sim.GetContents()
	row := func(y, x, n int) string {
		out := make([]rune, 0, n)
		for i := x; i < x+n; i++ {
			c := cells[y*w+i]
			if len(c.Runes) == 0 {
				out = append(out, ' ')
			} else {
				out = append(out, c.Runes[0])
			}
		}
		return string(out)
	}

	titleX := (w - len(config.WindowTitle)) / 2
	if got := row(0, titleX, len(config.WindowTitle)); got != config.WindowTitle {
		t.Errorf("title row = %q", got)
	}
	if got := row(a.layout.text.Y, a.layout.text.X, 2); got != "ok" {
		t.Errorf("text row = %q", got)
	}
	save := a.saveButton.Rect
	if got := row(save.Y, save.X, save.W); got != "[ Save ]" {
		t.Errorf("save button = %q", got)
	}
}

func TestRunUntilQuit(t *testing.T) {
	a, sim := newTestApp(t, &fakeDialog{})
	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'b', tcell.ModNone)
	sim.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)

	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !a.Done() || a.Surface().Text() != "ab" {
		t.Errorf("done=%v text=%q", a.Done(), a.Surface().Text())
	}
}

func TestRunOpensStartupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "start.txt")
	writeFile(t, path, "from disk\n")

	sim := tcell.NewSimulationScreen("UTF-8")
	a, err := New(sim, Options{FilePath: path, Dialog: &fakeDialog{}, Clipboard: &clipboard.Register{}})
	if err != nil {
		t.Fatal(err)
	}
	sim.InjectKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl)
	if err := a.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if a.Surface().Text() != "from disk\n" || a.Title() != "Open file: "+path {
		t.Errorf("text=%q title=%q", a.Surface().Text(), a.Title())
	}
}

func TestRunFailsOnUnreadableStartupFile(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	a, err := New(sim, Options{
		FilePath:  filepath.Join(t.TempDir(), "missing.txt"),
		Dialog:    &fakeDialog{},
		Clipboard: &clipboard.Register{},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Run(); err == nil {
		t.Error("Run should fail when the startup file cannot be read")
	}
}
