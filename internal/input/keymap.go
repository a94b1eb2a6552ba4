// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"
)

// Keymap maps specific key events to actions.
type Keymap map[tcell.Key]Action

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap     Keymap // Keys without Ctrl (Enter, arrows, F-keys)
	ctrlKeymap Keymap // Ctrl+letter keys
}

// NewInputProcessor creates a processor with the default bindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		ctrlKeymap: make(Keymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight
	p.keymap[tcell.KeyPgUp] = ActionMovePageUp
	p.keymap[tcell.KeyPgDn] = ActionMovePageDown
	p.keymap[tcell.KeyHome] = ActionMoveHome
	p.keymap[tcell.KeyEnd] = ActionMoveEnd
	p.keymap[tcell.KeyEnter] = ActionInsertNewLine
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBacktab] = ActionFocusPrev
	p.keymap[tcell.KeyF6] = ActionFocusNext
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyEscape] = ActionCancel

	// Ctrl+Shift+Z is deliberately not bound to redo.
	p.ctrlKeymap[tcell.KeyCtrlZ] = ActionUndo
	p.ctrlKeymap[tcell.KeyCtrlY] = ActionRedo
	p.ctrlKeymap[tcell.KeyCtrlO] = ActionOpen
	p.ctrlKeymap[tcell.KeyCtrlS] = ActionSave
	p.ctrlKeymap[tcell.KeyCtrlQ] = ActionQuit
	p.ctrlKeymap[tcell.KeyCtrlC] = ActionCopy
	p.ctrlKeymap[tcell.KeyCtrlX] = ActionCut
	p.ctrlKeymap[tcell.KeyCtrlV] = ActionPaste
	p.ctrlKeymap[tcell.KeyCtrlA] = ActionSelectAll
}

// ProcessEvent returns the action bound to ev, or ActionUnknown.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	// Ctrl+letter arrives as its own key code; the modifier bit is redundant.
	if action, ok := p.ctrlKeymap[key]; ok {
		return ActionEvent{Action: action}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action, Extend: mod&tcell.ModShift != 0 && isMovement(action)}
	}

	if key == tcell.KeyRune && mod&(tcell.ModCtrl|tcell.ModAlt) == 0 {
		return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
	}
	return ActionEvent{Action: ActionUnknown}
}

func isMovement(a Action) bool {
	return a >= ActionMoveUp && a <= ActionMoveEnd
}
