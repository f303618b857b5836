package runtime

import (
	"time"

	"github.com/odvcencio/tabpanel/pkg/ui/terminal"
)

// Message represents an event flowing into the UI.
type Message interface {
	isMessage()
}

// KeyMsg represents a keyboard input event.
type KeyMsg struct {
	Key   terminal.Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyMsg) isMessage() {}

// String renders the chord as terminal.KeyEvent does.
func (m KeyMsg) String() string {
	return terminal.KeyEvent{Key: m.Key, Rune: m.Rune, Alt: m.Alt, Ctrl: m.Ctrl, Shift: m.Shift}.String()
}

// ResizeMsg indicates the terminal size changed.
type ResizeMsg struct {
	Width  int
	Height int
}

func (ResizeMsg) isMessage() {}

// MouseMsg represents a mouse input event. Coordinates are absolute.
type MouseMsg struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

func (MouseMsg) isMessage() {}

// IsPress reports a button press that should grab focus. Wheel steps and
// motion do not.
func (m MouseMsg) IsPress() bool {
	if m.Action != MousePress {
		return false
	}
	switch m.Button {
	case MouseLeft, MouseMiddle, MouseRight:
		return true
	}
	return false
}

// PasteMsg represents pasted text from bracketed paste mode.
type PasteMsg struct {
	Text string
}

func (PasteMsg) isMessage() {}

// MouseButton identifies which mouse button was involved.
type MouseButton = terminal.MouseButton

const (
	MouseNone      = terminal.MouseNone
	MouseLeft      = terminal.MouseLeft
	MouseMiddle    = terminal.MouseMiddle
	MouseRight     = terminal.MouseRight
	MouseWheelUp   = terminal.MouseWheelUp
	MouseWheelDown = terminal.MouseWheelDown
)

// MouseAction identifies what happened with the mouse.
type MouseAction = terminal.MouseAction

const (
	MousePress   = terminal.MousePress
	MouseRelease = terminal.MouseRelease
	MouseMove    = terminal.MouseMove
)

// TickMsg is sent on each frame tick.
type TickMsg struct {
	Time time.Time
}

func (TickMsg) isMessage() {}

// ActivateMsg asks a widget to perform its primary action, as if clicked.
type ActivateMsg struct{}

func (ActivateMsg) isMessage() {}

// MessageFromEvent converts a terminal event into a runtime message. It
// returns nil for events the runtime does not route.
func MessageFromEvent(ev terminal.Event) Message {
	switch e := ev.(type) {
	case terminal.KeyEvent:
		return KeyMsg{Key: e.Key, Rune: e.Rune, Alt: e.Alt, Ctrl: e.Ctrl, Shift: e.Shift}
	case terminal.ResizeEvent:
		return ResizeMsg{Width: e.Width, Height: e.Height}
	case terminal.MouseEvent:
		return MouseMsg{
			X:      e.X,
			Y:      e.Y,
			Button: e.Button,
			Action: e.Action,
			Alt:    e.Alt,
			Ctrl:   e.Ctrl,
			Shift:  e.Shift,
		}
	case terminal.PasteEvent:
		return PasteMsg{Text: e.Text}
	default:
		return nil
	}
}
