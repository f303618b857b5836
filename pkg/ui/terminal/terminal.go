// Package terminal defines backend-neutral input events.
package terminal

import (
	"strconv"
	"strings"
)

// Event is a terminal input event.
type Event interface {
	eventMarker()
}

// KeyEvent is a key press.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) eventMarker() {}

// String renders the chord in the form used by key bindings, e.g. "ctrl+n",
// "alt+x", "left" or "q".
func (e KeyEvent) String() string {
	var sb strings.Builder
	if e.Ctrl && !e.Key.isCtrlKey() {
		sb.WriteString("ctrl+")
	}
	if e.Alt {
		sb.WriteString("alt+")
	}
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			sb.WriteString("space")
		} else {
			sb.WriteRune(e.Rune)
		}
		return sb.String()
	}
	if e.Shift {
		sb.WriteString("shift+")
	}
	sb.WriteString(e.Key.String())
	return sb.String()
}

// ResizeEvent reports a new terminal size.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) eventMarker() {}

// MouseEvent is a mouse press, release, move or wheel step.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

func (MouseEvent) eventMarker() {}

// PasteEvent carries bracketed paste content.
type PasteEvent struct {
	Text string
}

func (PasteEvent) eventMarker() {}

// MouseButton identifies which mouse button was involved.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
)

// MouseAction identifies what happened with the mouse.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
)

// Key represents special keys.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // Regular character
	KeyEnter
	KeyBackspace
	KeyTab
	KeyBacktab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyCtrlA
	KeyCtrlC
	KeyCtrlN
	KeyCtrlP
	KeyCtrlW
	KeyCtrlZ
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyBackspace: "backspace",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyEscape:    "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdn",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyCtrlA:     "ctrl+a",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlN:     "ctrl+n",
	KeyCtrlP:     "ctrl+p",
	KeyCtrlW:     "ctrl+w",
	KeyCtrlZ:     "ctrl+z",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k >= KeyF1 && k <= KeyF12 {
		return "f" + strconv.Itoa(int(k-KeyF1)+1)
	}
	return "key(" + strconv.Itoa(int(k)) + ")"
}

func (k Key) isCtrlKey() bool {
	return k >= KeyCtrlA && k <= KeyCtrlZ
}
