package dialog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bethropolis/jot/internal/logger"
	"github.com/gdamore/tcell/v2"
)

type mode int

const (
	modeOpen mode = iota
	modeSave
)

func (m mode) String() string {
	if m == modeSave {
		return "Save As"
	}
	return "Open File"
}

type entry struct {
	name  string
	isDir bool
}

// browser is the state of one dialog session. It knows nothing about drawing.
type browser struct {
	mode    mode
	dir     string
	filters []Filter
	filter  int // index into filters; len(filters) means all files

	entries  []entry
	selected int
	top      int

	input   string
	errMsg  string
	confirm string // path awaiting overwrite confirmation

	lastButtons tcell.ButtonMask
}

func newBrowser(m mode, dir string, filters []Filter) *browser {
	b := &browser{mode: m, dir: dir, filters: filters}
	b.reload()
	return b
}

// filterLabel describes the active filter, e.g. "Text Files (*.txt)".
func (b *browser) filterLabel() string {
	if b.filter >= len(b.filters) {
		return "All Files (*)"
	}
	f := b.filters[b.filter]
	return fmt.Sprintf("%s (%s)", f.Name, f.Pattern)
}

func (b *browser) matches(name string) bool {
	if b.filter >= len(b.filters) {
		return true
	}
	ok, err := filepath.Match(b.filters[b.filter].Pattern, name)
	return err == nil && ok
}

// reload lists dir: ".." first, then directories, then matching files.
// Hidden entries are skipped.
func (b *browser) reload() {
	b.entries = b.entries[:0]
	b.selected, b.top = 0, 0
	if parent := filepath.Dir(b.dir); parent != b.dir {
		b.entries = append(b.entries, entry{name: "..", isDir: true})
	}

	items, err := os.ReadDir(b.dir)
	if err != nil {
		b.errMsg = err.Error()
		logger.Warnf("dialog: listing '%s': %v", b.dir, err)
		return
	}

	var dirs, files []entry
	for _, item := range items {
		name := item.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		isDir := item.IsDir()
		if item.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(b.dir, name)); err == nil {
				isDir = info.IsDir()
			}
		}
		if isDir {
			dirs = append(dirs, entry{name: name, isDir: true})
		} else if b.matches(name) {
			files = append(files, entry{name: name})
		}
	}
	sort.Slice(dirs, func(i, j int) bool { return dirs[i].name < dirs[j].name })
	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })
	b.entries = append(b.entries, dirs...)
	b.entries = append(b.entries, files...)
}

func (b *browser) chdir(dir string) {
	b.dir = filepath.Clean(dir)
	b.input = ""
	b.reload()
}

func (b *browser) moveSelection(delta int) {
	if len(b.entries) == 0 {
		return
	}
	b.selected += delta
	if b.selected < 0 {
		b.selected = 0
	}
	if b.selected >= len(b.entries) {
		b.selected = len(b.entries) - 1
	}
	b.follow()
}

// follow mirrors the selected entry into the name field. A directory
// clears it so Enter descends instead of accepting an earlier file name.
func (b *browser) follow() {
	if e := b.entries[b.selected]; e.isDir {
		b.input = ""
	} else {
		b.input = e.name
	}
}

// scroll keeps the selection inside a list of the given height.
func (b *browser) scroll(height int) {
	if height <= 0 {
		return
	}
	if b.selected < b.top {
		b.top = b.selected
	}
	if b.selected >= b.top+height {
		b.top = b.selected - height + 1
	}
}

// complete extends the input to the longest prefix shared by the entries it matches.
func (b *browser) complete() {
	var matches []entry
	for _, e := range b.entries {
		if e.name != ".." && strings.HasPrefix(e.name, b.input) {
			matches = append(matches, e)
		}
	}
	if len(matches) == 0 {
		return
	}
	prefix := matches[0].name
	for _, e := range matches[1:] {
		for !strings.HasPrefix(e.name, prefix) {
			_, size := utf8.DecodeLastRuneInString(prefix)
			prefix = prefix[:len(prefix)-size]
		}
	}
	if len(matches) == 1 && matches[0].isDir {
		b.chdir(filepath.Join(b.dir, matches[0].name))
		return
	}
	b.input = prefix
}

// target resolves what Enter refers to: the typed name, or the selected entry.
func (b *browser) target() string {
	name := b.input
	if name == "" {
		if len(b.entries) == 0 {
			return ""
		}
		name = b.entries[b.selected].name
	}
	if strings.HasPrefix(name, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			name = filepath.Join(home, name[1:])
		}
	}
	if !filepath.IsAbs(name) {
		name = filepath.Join(b.dir, name)
	}
	return filepath.Clean(name)
}

// accept acts on Enter. It returns the chosen path when the dialog is done.
func (b *browser) accept() (string, bool) {
	path := b.target()
	if path == "" {
		return "", false
	}
	b.errMsg = ""

	info, err := os.Stat(path)
	switch {
	case err == nil && info.IsDir():
		b.chdir(path)
		return "", false
	case b.mode == modeOpen:
		if err != nil {
			b.errMsg = fmt.Sprintf("%s: file not found", filepath.Base(path))
			return "", false
		}
		if !info.Mode().IsRegular() {
			b.errMsg = fmt.Sprintf("%s: not a regular file", filepath.Base(path))
			return "", false
		}
		return path, true
	case err == nil:
		b.confirm = path
		return "", false
	case !errors.Is(err, fs.ErrNotExist):
		b.errMsg = err.Error()
		return "", false
	}

	parent, err := os.Stat(filepath.Dir(path))
	if err != nil || !parent.IsDir() {
		b.errMsg = fmt.Sprintf("%s: directory does not exist", filepath.Dir(path))
		return "", false
	}
	return path, true
}

// handleKey processes one key. done is set when the dialog should close,
// ok when path holds the answer.
func (b *browser) handleKey(ev *tcell.EventKey) (path string, done, ok bool) {
	if b.confirm != "" {
		switch {
		case ev.Key() == tcell.KeyRune && (ev.Rune() == 'y' || ev.Rune() == 'Y'):
			path, b.confirm = b.confirm, ""
			return path, true, true
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyRune && (ev.Rune() == 'n' || ev.Rune() == 'N'):
			b.confirm = ""
		}
		return "", false, false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		return "", true, false
	case tcell.KeyEnter:
		if path, ok := b.accept(); ok {
			return path, true, true
		}
	case tcell.KeyUp:
		b.moveSelection(-1)
	case tcell.KeyDown:
		b.moveSelection(1)
	case tcell.KeyPgUp:
		b.moveSelection(-10)
	case tcell.KeyPgDn:
		b.moveSelection(10)
	case tcell.KeyTab:
		b.complete()
	case tcell.KeyCtrlT:
		b.filter = (b.filter + 1) % (len(b.filters) + 1)
		b.reload()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if b.input == "" {
			b.chdir(filepath.Dir(b.dir))
		} else {
			r := []rune(b.input)
			b.input = string(r[:len(r)-1])
		}
	case tcell.KeyCtrlU:
		b.input = ""
	case tcell.KeyRune:
		b.input += string(ev.Rune())
		b.errMsg = ""
	}
	return "", false, false
}

// click selects the entry at list row (or descends into it if already selected).
func (b *browser) click(row int) {
	idx := b.top + row
	if row < 0 || idx >= len(b.entries) {
		return
	}
	if idx == b.selected && b.entries[idx].isDir {
		b.chdir(filepath.Join(b.dir, b.entries[idx].name))
		return
	}
	b.selected = idx
	b.follow()
}

// mouse handles a mouse event over list row. Only the press edge of the
// left button clicks, so holding or dragging does not repeat it.
func (b *browser) mouse(row int, buttons tcell.ButtonMask) {
	pressed := buttons&tcell.Button1 != 0 && b.lastButtons&tcell.Button1 == 0
	b.lastButtons = buttons
	if pressed {
		b.click(row)
	}
}
