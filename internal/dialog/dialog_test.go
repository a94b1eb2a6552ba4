package dialog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/jot/internal/theme"
	"github.com/gdamore/tcell/v2"
)

var textFilter = []Filter{{Name: "Text Files", Pattern: "*.txt"}}

// fixture creates a.txt, b.md, .hidden.txt and sub/c.txt.
func fixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "b.md", ".hidden.txt", filepath.Join("sub", "c.txt")} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(name), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func newDialog(t *testing.T, dir string) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatal(err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)
	return NewTerminal(sim, &theme.Paper, Options{Filters: textFilter, InitialDir: dir}), sim
}

// typeKeys queues keystrokes; the simulation queue holds only a handful
// of events, so tests keep each batch short.
func typeKeys(sim tcell.SimulationScreen, text string, keys ...tcell.Key) {
	for _, r := range text {
		sim.InjectKey(tcell.KeyRune, r, tcell.ModNone)
	}
	for _, k := range keys {
		sim.InjectKey(k, 0, tcell.ModNone)
	}
}

func names(b *browser) []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.name
	}
	return out
}

func TestBrowserListing(t *testing.T) {
	dir := fixture(t)
	b := newBrowser(modeOpen, dir, textFilter)
	want := []string{"..", "sub", "a.txt"}
	got := names(b)
	if len(got) != len(want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("entries = %v, want %v", got, want)
		}
	}

	b.handleKey(tcell.NewEventKey(tcell.KeyCtrlT, 0, tcell.ModCtrl))
	if b.filterLabel() != "All Files (*)" || len(b.entries) != 4 {
		t.Errorf("all-files filter: label %q entries %v", b.filterLabel(), names(b))
	}
}

func TestBrowserCompletion(t *testing.T) {
	dir := fixture(t)
	b := newBrowser(modeOpen, dir, textFilter)

	b.input = "a"
	b.complete()
	if b.input != "a.txt" {
		t.Errorf("completion of 'a' = %q", b.input)
	}

	b.input = "su"
	b.complete()
	if b.dir != filepath.Join(dir, "sub") || b.input != "" {
		t.Errorf("completing a directory should enter it; dir=%q input=%q", b.dir, b.input)
	}
}

func TestBrowserBackspaceGoesUp(t *testing.T) {
	dir := fixture(t)
	b := newBrowser(modeOpen, filepath.Join(dir, "sub"), textFilter)
	b.handleKey(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if b.dir != dir {
		t.Errorf("dir = %q, want %q", b.dir, dir)
	}
}

func TestBrowserEnterOnHighlightedDirectory(t *testing.T) {
	dir := fixture(t)
	b := newBrowser(modeOpen, dir, textFilter)
	for _, k := range []tcell.Key{tcell.KeyDown, tcell.KeyDown} {
		b.handleKey(tcell.NewEventKey(k, 0, tcell.ModNone))
	}
	if b.input != "a.txt" {
		t.Fatalf("input = %q, want a.txt", b.input)
	}
	b.handleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if b.input != "" {
		t.Errorf("input = %q after selecting a directory, want empty", b.input)
	}
	_, done, _ := b.handleKey(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if done {
		t.Fatal("Enter on a directory must not close the dialog")
	}
	if b.dir != filepath.Join(dir, "sub") {
		t.Errorf("dir = %q, want %q", b.dir, filepath.Join(dir, "sub"))
	}
}

func TestBrowserMouseHoldClicksOnce(t *testing.T) {
	dir := fixture(t)
	b := newBrowser(modeOpen, dir, textFilter)

	b.mouse(1, tcell.Button1)
	b.mouse(1, tcell.Button1) // held, or dragged within the row
	if b.dir != dir || b.entries[b.selected].name != "sub" {
		t.Fatalf("holding the button entered %q, selected %q", b.dir, b.entries[b.selected].name)
	}

	b.mouse(1, tcell.ButtonNone)
	b.mouse(1, tcell.Button1)
	if b.dir != filepath.Join(dir, "sub") {
		t.Errorf("second click should enter sub, dir = %q", b.dir)
	}
}

func TestOpenExistingFile(t *testing.T) {
	dir := fixture(t)
	d, sim := newDialog(t, dir)
	typeKeys(sim, "a.txt", tcell.KeyEnter)

	path, ok := d.AskOpenFilename()
	if !ok || path != filepath.Join(dir, "a.txt") {
		t.Errorf("AskOpenFilename = %q, %v", path, ok)
	}
}

func TestOpenCancel(t *testing.T) {
	d, sim := newDialog(t, fixture(t))
	typeKeys(sim, "", tcell.KeyEscape)
	if path, ok := d.AskOpenFilename(); ok || path != "" {
		t.Errorf("cancel returned %q, %v", path, ok)
	}
}

func TestOpenMissingFileStaysOpen(t *testing.T) {
	d, sim := newDialog(t, fixture(t))
	typeKeys(sim, "zz", tcell.KeyEnter, tcell.KeyEscape)
	if _, ok := d.AskOpenFilename(); ok {
		t.Error("a missing file must not be accepted for open")
	}
}

func TestOpenDescendsIntoDirectory(t *testing.T) {
	dir := fixture(t)
	d, sim := newDialog(t, dir)
	typeKeys(sim, "su", tcell.KeyTab)
	typeKeys(sim, "c", tcell.KeyTab, tcell.KeyEnter)

	path, ok := d.AskOpenFilename()
	if !ok || path != filepath.Join(dir, "sub", "c.txt") {
		t.Fatalf("AskOpenFilename = %q, %v", path, ok)
	}
	if d.dir != filepath.Join(dir, "sub") {
		t.Errorf("dialog should remember %q, has %q", filepath.Join(dir, "sub"), d.dir)
	}
}

func TestSaveNewFile(t *testing.T) {
	dir := fixture(t)
	d, sim := newDialog(t, dir)
	typeKeys(sim, "n.txt", tcell.KeyEnter)

	path, ok := d.AskSaveAsFilename()
	if !ok || path != filepath.Join(dir, "n.txt") {
		t.Errorf("AskSaveAsFilename = %q, %v", path, ok)
	}
}

func TestSaveOverwriteConfirmation(t *testing.T) {
	dir := fixture(t)
	d, sim := newDialog(t, dir)

	typeKeys(sim, "a.txt", tcell.KeyEnter)
	typeKeys(sim, "n", tcell.KeyEscape)
	if _, ok := d.AskSaveAsFilename(); ok {
		t.Fatal("save should not accept before confirmation")
	}

	typeKeys(sim, "a.txt", tcell.KeyEnter)
	sim.InjectKey(tcell.KeyRune, 'y', tcell.ModNone)
	path, ok := d.AskSaveAsFilename()
	if !ok || path != filepath.Join(dir, "a.txt") {
		t.Errorf("confirmed overwrite = %q, %v", path, ok)
	}
}

func TestSaveDeclineOverwrite(t *testing.T) {
	dir := fixture(t)
	d, sim := newDialog(t, dir)
	typeKeys(sim, "a.txt", tcell.KeyEnter)
	typeKeys(sim, "n", tcell.KeyEscape)
	if _, ok := d.AskSaveAsFilename(); ok {
		t.Error("declined overwrite must not be accepted")
	}
}

func TestSaveIntoMissingDirectory(t *testing.T) {
	d, sim := newDialog(t, fixture(t))
	typeKeys(sim, "q/x", tcell.KeyEnter, tcell.KeyEscape)
	if _, ok := d.AskSaveAsFilename(); ok {
		t.Error("save into a missing directory must not be accepted")
	}
}
