package widget

import (
	"strings"
	"unicode"

	"github.com/bethropolis/jot/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Combo is a read-only drop-down selector. Choosing an entry only changes
// Value; the owner decides when the value takes effect.
type Combo struct {
	Label string
	Rect  Rect // the closed field
	// ListHeight caps the number of rows shown when open.
	ListHeight int

	values    []string
	selected  int
	open      bool
	highlight int
	top       int
}

// NewCombo creates a combo showing values with initial selected.
// An unknown initial value selects the first entry.
func NewCombo(label string, values []string, initial string) *Combo {
	c := &Combo{
		Label:      label,
		ListHeight: 10,
		values:     append([]string(nil), values...),
	}
	c.SetValue(initial)
	return c
}

// Values returns the entries.
func (c *Combo) Values() []string {
	return append([]string(nil), c.values...)
}

// Value returns the selected entry, or "" when there are none.
func (c *Combo) Value() string {
	if c.selected < 0 || c.selected >= len(c.values) {
		return ""
	}
	return c.values[c.selected]
}

// SetValue selects v if it is one of the entries.
func (c *Combo) SetValue(v string) bool {
	for i, value := range c.values {
		if value == v {
			c.selected = i
			return true
		}
	}
	return false
}

// IsOpen reports whether the list is shown.
func (c *Combo) IsOpen() bool {
	return c.open
}

// Open shows the list with the selected entry highlighted.
func (c *Combo) Open() {
	if len(c.values) == 0 {
		return
	}
	c.open = true
	c.highlight = c.selected
	c.scrollToHighlight()
}

// Close hides the list without changing the selection.
func (c *Combo) Close() {
	c.open = false
}

// ListRect is the area the open list covers, just below the field.
func (c *Combo) ListRect() Rect {
	rows := len(c.values)
	if c.ListHeight > 0 && rows > c.ListHeight {
		rows = c.ListHeight
	}
	return Rect{X: c.Rect.X, Y: c.Rect.Y + 1, W: c.Rect.W, H: rows}
}

func (c *Combo) scrollToHighlight() {
	rows := c.ListRect().H
	if rows <= 0 {
		return
	}
	if c.highlight < c.top {
		c.top = c.highlight
	}
	if c.highlight >= c.top+rows {
		c.top = c.highlight - rows + 1
	}
	// ListHeight changes on resize, so top may point past a full page.
	c.top = max(0, min(c.top, len(c.values)-rows))
}

func (c *Combo) moveHighlight(delta int) {
	c.highlight += delta
	if c.highlight < 0 {
		c.highlight = 0
	}
	if c.highlight >= len(c.values) {
		c.highlight = len(c.values) - 1
	}
	c.scrollToHighlight()
}

// jumpTo highlights the next entry starting with r, wrapping around.
func (c *Combo) jumpTo(r rune) {
	prefix := strings.ToLower(string(r))
	n := len(c.values)
	for i := 1; i <= n; i++ {
		idx := (c.highlight + i) % n
		if strings.HasPrefix(strings.ToLower(c.values[idx]), prefix) {
			c.highlight = idx
			c.scrollToHighlight()
			return
		}
	}
}

// HandleKey processes a key while the combo has focus and reports whether
// it was consumed.
func (c *Combo) HandleKey(ev *tcell.EventKey) bool {
	if !c.open {
		switch ev.Key() {
		case tcell.KeyEnter, tcell.KeyDown:
			c.Open()
			return true
		case tcell.KeyRune:
			if ev.Rune() == ' ' {
				c.Open()
				return true
			}
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyUp:
		c.moveHighlight(-1)
	case tcell.KeyDown:
		c.moveHighlight(1)
	case tcell.KeyPgUp:
		c.moveHighlight(-c.ListRect().H)
	case tcell.KeyPgDn:
		c.moveHighlight(c.ListRect().H)
	case tcell.KeyHome:
		c.moveHighlight(-len(c.values))
	case tcell.KeyEnd:
		c.moveHighlight(len(c.values))
	case tcell.KeyEnter:
		c.selected = c.highlight
		c.open = false
	case tcell.KeyEscape:
		c.open = false
	case tcell.KeyRune:
		if unicode.IsPrint(ev.Rune()) {
			c.jumpTo(ev.Rune())
		}
	default:
		return false
	}
	return true
}

// HandleClick processes a left click at (x, y) and reports whether it hit
// the field or the open list.
func (c *Combo) HandleClick(x, y int) bool {
	if c.open {
		list := c.ListRect()
		if list.Contains(x, y) {
			if idx := c.top + (y - list.Y); idx < len(c.values) {
				c.selected = idx
			}
			c.open = false
			return true
		}
	}
	if c.Rect.Contains(x, y) {
		if c.open {
			c.Close()
		} else {
			c.Open()
		}
		return true
	}
	return false
}

// Contains reports whether (x, y) is on the field or the open list.
func (c *Combo) Contains(x, y int) bool {
	return c.Rect.Contains(x, y) || (c.open && c.ListRect().Contains(x, y))
}

// Draw renders the field and, when open, the list below it.
func (c *Combo) Draw(screen tcell.Screen, th *theme.Theme, focused bool) {
	if c.Rect.Empty() {
		return
	}
	style := th.GetStyle(theme.StyleCombo)
	if focused {
		style = th.GetStyle(theme.StyleComboFocused)
	}
	Fill(screen, c.Rect, style)
	DrawText(screen, c.Rect.X, c.Rect.Y, c.Rect.W-2, c.Value(), style)
	screen.SetContent(c.Rect.X+c.Rect.W-1, c.Rect.Y, '▾', nil, style)

	if !c.open {
		return
	}
	list := c.ListRect()
	listStyle := th.GetStyle(theme.StyleComboList)
	selStyle := th.GetStyle(theme.StyleComboListSelected)
	for row := 0; row < list.H && c.top+row < len(c.values); row++ {
		idx := c.top + row
		rowStyle := listStyle
		if idx == c.highlight {
			rowStyle = selStyle
		}
		rowRect := Rect{X: list.X, Y: list.Y + row, W: list.W, H: 1}
		Fill(screen, rowRect, rowStyle)
		DrawText(screen, list.X+1, list.Y+row, list.W-1, c.values[idx], rowStyle)
	}
}
