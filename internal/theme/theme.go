// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/jot/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names used by the widgets.
const (
	StyleDefault           = "Default"
	StyleTextArea          = "TextArea"
	StyleSelection         = "Selection"
	StyleTitleBar          = "TitleBar"
	StylePanel             = "Panel"
	StyleLabel             = "Label"
	StyleButton            = "Button"
	StyleButtonFocused     = "Button.Focused"
	StyleCombo             = "Combo"
	StyleComboFocused      = "Combo.Focused"
	StyleComboList         = "ComboList"
	StyleComboListSelected = "ComboList.Selected"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarModified = "StatusBarModified"
	StyleDialog            = "Dialog"
	StyleDialogSelected    = "Dialog.Selected"
	StyleDialogInput       = "Dialog.Input"
	StyleDialogError       = "Dialog.Error"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style. A dotted name falls back to its base
// name ("Button.Focused" -> "Button"), then to "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles[StyleDefault]; ok {
		if name != StyleDefault {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// Paper is the built-in light theme: black text on a white page.
var Paper Theme

func init() {
	page := tcell.ColorWhite
	ink := tcell.ColorBlack
	chrome := tcell.NewHexColor(0xe4e4e4)
	accent := tcell.NewHexColor(0x3465a4)
	muted := tcell.NewHexColor(0x555753)

	base := tcell.StyleDefault.Background(page).Foreground(ink)
	bar := tcell.StyleDefault.Background(chrome).Foreground(ink)

	Paper = Theme{
		Name:   "Paper",
		IsDark: false,
		Styles: map[string]tcell.Style{
			StyleDefault:   base,
			StyleTextArea:  base,
			StyleSelection: base.Background(accent).Foreground(page),

			StyleTitleBar: bar.Bold(true),
			StylePanel:    bar,
			StyleLabel:    bar.Foreground(muted),

			StyleButton:        bar,
			StyleButtonFocused: bar.Background(accent).Foreground(page).Bold(true),

			StyleCombo:             base,
			StyleComboFocused:      base.Underline(true).Bold(true),
			StyleComboList:         base,
			StyleComboListSelected: base.Background(accent).Foreground(page),

			StyleStatusBar:         bar,
			StyleStatusBarMessage:  bar.Bold(true),
			StyleStatusBarModified: bar.Foreground(tcell.ColorMaroon).Bold(true),

			StyleDialog:         base,
			StyleDialogSelected: base.Background(accent).Foreground(page),
			StyleDialogInput:    base.Underline(true),
			StyleDialogError:    base.Foreground(tcell.ColorMaroon).Bold(true),
		},
	}
}
