package dialog

import (
	"fmt"

	"github.com/bethropolis/jot/internal/theme"
	"github.com/bethropolis/jot/internal/widget"
	"github.com/gdamore/tcell/v2"
)

const (
	maxBoxWidth  = 64
	maxBoxHeight = 22
	// Rows inside the border that are not list rows: directory line,
	// file name field, filter line and message line.
	fixedRows = 4
)

// box returns the dialog frame and the list area inside it.
func (t *Terminal) box() (frame, list widget.Rect) {
	w, h := t.screen.Size()
	bw, bh := min(maxBoxWidth, w-2), min(maxBoxHeight, h-2)
	if bw < 10 || bh < fixedRows+3 {
		bw, bh = w, h
	}
	frame = widget.Rect{X: (w - bw) / 2, Y: (h - bh) / 2, W: bw, H: bh}
	list = widget.Rect{X: frame.X + 1, Y: frame.Y + 2, W: frame.W - 2, H: frame.H - 2 - fixedRows}
	return frame, list
}

// listRow converts a screen cell to a list row, or -1 outside the list.
func (t *Terminal) listRow(x, y int) int {
	_, list := t.box()
	if !list.Contains(x, y) {
		return -1
	}
	return y - list.Y
}

func (t *Terminal) draw(b *browser) {
	frame, list := t.box()
	style := t.theme.GetStyle(theme.StyleDialog)
	selStyle := t.theme.GetStyle(theme.StyleDialogSelected)
	inputStyle := t.theme.GetStyle(theme.StyleDialogInput)
	errStyle := t.theme.GetStyle(theme.StyleDialogError)

	widget.Fill(t.screen, frame, style)
	drawBorder(t.screen, frame, style)
	title := " " + b.mode.String() + " "
	widget.DrawText(t.screen, frame.X+2, frame.Y, frame.W-4, title, style.Bold(true))

	inner := frame.W - 2
	x := frame.X + 1
	widget.DrawText(t.screen, x, frame.Y+1, inner, b.dir, style)

	b.scroll(list.H)
	for row := 0; row < list.H; row++ {
		idx := b.top + row
		if idx >= len(b.entries) {
			break
		}
		e := b.entries[idx]
		rowStyle := style
		if idx == b.selected {
			rowStyle = selStyle
			widget.Fill(t.screen, widget.Rect{X: list.X, Y: list.Y + row, W: list.W, H: 1}, rowStyle)
		}
		name := e.name
		if e.isDir {
			name += "/"
		}
		widget.DrawText(t.screen, list.X+1, list.Y+row, list.W-1, name, rowStyle)
	}

	y := list.Y + list.H
	label := "File name: "
	used := widget.DrawText(t.screen, x, y, inner, label, style)
	field := widget.Rect{X: x + used, Y: y, W: inner - used, H: 1}
	widget.Fill(t.screen, field, inputStyle)
	n := widget.DrawText(t.screen, field.X, y, field.W, b.input, inputStyle)
	if n < field.W {
		t.screen.ShowCursor(field.X+n, y)
	} else {
		t.screen.HideCursor()
	}

	widget.DrawText(t.screen, x, y+1, inner, "Type: "+b.filterLabel()+"  (Ctrl+T)", style)

	switch {
	case b.confirm != "":
		msg := fmt.Sprintf("%s already exists. Replace it? (y/n)", b.confirm)
		widget.DrawText(t.screen, x, y+2, inner, msg, errStyle)
		t.screen.HideCursor()
	case b.errMsg != "":
		widget.DrawText(t.screen, x, y+2, inner, b.errMsg, errStyle)
	default:
		widget.DrawText(t.screen, x, y+2, inner, "Enter: choose  Tab: complete  Esc: cancel", style)
	}
	t.screen.Show()
}

func drawBorder(s tcell.Screen, r widget.Rect, style tcell.Style) {
	if r.W < 2 || r.H < 2 {
		return
	}
	right, bottom := r.X+r.W-1, r.Y+r.H-1
	for x := r.X + 1; x < right; x++ {
		s.SetContent(x, r.Y, tcell.RuneHLine, nil, style)
		s.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		s.SetContent(r.X, y, tcell.RuneVLine, nil, style)
		s.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	s.SetContent(r.X, r.Y, tcell.RuneULCorner, nil, style)
	s.SetContent(right, r.Y, tcell.RuneURCorner, nil, style)
	s.SetContent(r.X, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}
