package widget

import (
	"github.com/bethropolis/jot/internal/theme"
	"github.com/gdamore/tcell/v2"
)

// Button is a one-line push button drawn as "[ Label ]".
type Button struct {
	Label string
	Rect  Rect
}

// NewButton creates a button; its Rect is set by the layout.
func NewButton(label string) *Button {
	return &Button{Label: label}
}

// Width is the number of cells the button needs.
func (b *Button) Width() int {
	return TextWidth(b.Label) + 4
}

// Activates reports whether the key presses the button.
func (b *Button) Activates(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && ev.Rune() == ' ')
}

// Draw renders the button inside its Rect.
func (b *Button) Draw(screen tcell.Screen, th *theme.Theme, focused bool) {
	if b.Rect.Empty() {
		return
	}
	style := th.GetStyle(theme.StyleButton)
	if focused {
		style = th.GetStyle(theme.StyleButtonFocused)
	}
	Fill(screen, b.Rect, style)
	DrawText(screen, b.Rect.X, b.Rect.Y, b.Rect.W, "[ "+b.Label+" ]", style)
}
