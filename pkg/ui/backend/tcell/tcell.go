// Package tcell implements backend.Backend on top of gdamore/tcell.
package tcell

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/tabpanel/pkg/ui/backend"
	"github.com/odvcencio/tabpanel/pkg/ui/terminal"
)

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen tcell.Screen

	mu sync.Mutex
	// button held since the last press; tcell reports releases as ButtonNone
	held terminal.MouseButton

	inPaste     bool
	pasteBuffer strings.Builder
}

// New creates a backend on the process terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen wraps an existing tcell screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnableMouse()
	b.screen.EnablePaste()
	return nil
}

func (b *Backend) Fini()                     { b.screen.Fini() }
func (b *Backend) Size() (width, height int) { return b.screen.Size() }
func (b *Backend) Show()                     { b.screen.Show() }
func (b *Backend) Clear()                    { b.screen.Clear() }
func (b *Backend) HideCursor()               { b.screen.HideCursor() }
func (b *Backend) Sync()                     { b.screen.Sync() }

func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, ConvertStyle(style))
}

// PollEvent blocks until an event is available. Key events inside a
// bracketed paste are folded into a single PasteEvent.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}

		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				b.inPaste = true
				b.pasteBuffer.Reset()
				continue
			}
			b.inPaste = false
			text := b.pasteBuffer.String()
			b.pasteBuffer.Reset()
			if text != "" {
				return terminal.PasteEvent{Text: text}
			}
			continue

		case *tcell.EventKey:
			if b.inPaste {
				switch e.Key() {
				case tcell.KeyRune:
					b.pasteBuffer.WriteRune(e.Rune())
				case tcell.KeyEnter:
					b.pasteBuffer.WriteRune('\n')
				case tcell.KeyTab:
					b.pasteBuffer.WriteRune('\t')
				}
				continue
			}

		case *tcell.EventMouse:
			return b.convertMouse(e)
		}

		if out := convertEvent(ev); out != nil {
			return out
		}
	}
}

// PostEvent injects an event into the queue.
func (b *Backend) PostEvent(ev terminal.Event) error {
	if tev := reverseConvertEvent(ev); tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

// ConvertStyle maps backend.Style onto tcell.Style.
func ConvertStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	return tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg)).
		Bold(attrs&backend.AttrBold != 0).
		Italic(attrs&backend.AttrItalic != 0).
		Underline(attrs&backend.AttrUnderline != 0).
		Dim(attrs&backend.AttrDim != 0).
		Reverse(attrs&backend.AttrReverse != 0)
}

// ConvertTcellStyle maps tcell.Style back onto backend.Style.
func ConvertTcellStyle(ts tcell.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	return backend.DefaultStyle().
		Foreground(convertTcellColor(fg)).
		Background(convertTcellColor(bg)).
		Bold(attrs&tcell.AttrBold != 0).
		Italic(attrs&tcell.AttrItalic != 0).
		Underline(attrs&tcell.AttrUnderline != 0).
		Dim(attrs&tcell.AttrDim != 0).
		Reverse(attrs&tcell.AttrReverse != 0)
}

func convertColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	if c.IsRGB() {
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.PaletteColor(int(c))
}

func convertTcellColor(tc tcell.Color) backend.Color {
	if tc == tcell.ColorDefault {
		return backend.ColorDefault
	}
	if tc&tcell.ColorIsRGB != 0 {
		r, g, b := tc.RGB()
		return backend.ColorRGB(uint8(r), uint8(g), uint8(b))
	}
	return backend.Color(tc & 0xFF)
}

func convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		mods := e.Modifiers()
		return terminal.KeyEvent{
			Key:   convertKey(e.Key()),
			Rune:  e.Rune(),
			Alt:   mods&tcell.ModAlt != 0,
			Ctrl:  mods&tcell.ModCtrl != 0,
			Shift: mods&tcell.ModShift != 0,
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	default:
		return nil
	}
}

// convertMouse turns tcell's button-state reports into press/release/move
// transitions.
func (b *Backend) convertMouse(e *tcell.EventMouse) terminal.Event {
	x, y := e.Position()
	mods := e.Modifiers()
	out := terminal.MouseEvent{
		X:     x,
		Y:     y,
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	pressed := convertMouseButton(e.Buttons())
	switch {
	case pressed == terminal.MouseWheelUp || pressed == terminal.MouseWheelDown:
		out.Button, out.Action = pressed, terminal.MousePress
	case pressed == terminal.MouseNone && b.held != terminal.MouseNone:
		out.Button, out.Action = b.held, terminal.MouseRelease
		b.held = terminal.MouseNone
	case pressed == terminal.MouseNone:
		out.Button, out.Action = terminal.MouseNone, terminal.MouseMove
	case pressed == b.held:
		out.Button, out.Action = pressed, terminal.MouseMove
	default:
		out.Button, out.Action = pressed, terminal.MousePress
		b.held = pressed
	}
	return out
}

var keyMap = map[tcell.Key]terminal.Key{
	tcell.KeyRune:       terminal.KeyRune,
	tcell.KeyUp:         terminal.KeyUp,
	tcell.KeyDown:       terminal.KeyDown,
	tcell.KeyRight:      terminal.KeyRight,
	tcell.KeyLeft:       terminal.KeyLeft,
	tcell.KeyPgUp:       terminal.KeyPageUp,
	tcell.KeyPgDn:       terminal.KeyPageDown,
	tcell.KeyHome:       terminal.KeyHome,
	tcell.KeyEnd:        terminal.KeyEnd,
	tcell.KeyInsert:     terminal.KeyInsert,
	tcell.KeyDelete:     terminal.KeyDelete,
	tcell.KeyBackspace:  terminal.KeyBackspace,
	tcell.KeyBackspace2: terminal.KeyBackspace,
	tcell.KeyTab:        terminal.KeyTab,
	tcell.KeyBacktab:    terminal.KeyBacktab,
	tcell.KeyEnter:      terminal.KeyEnter,
	tcell.KeyEscape:     terminal.KeyEscape,
	tcell.KeyCtrlA:      terminal.KeyCtrlA,
	tcell.KeyCtrlC:      terminal.KeyCtrlC,
	tcell.KeyCtrlN:      terminal.KeyCtrlN,
	tcell.KeyCtrlP:      terminal.KeyCtrlP,
	tcell.KeyCtrlW:      terminal.KeyCtrlW,
	tcell.KeyCtrlZ:      terminal.KeyCtrlZ,
}

func convertKey(k tcell.Key) terminal.Key {
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return terminal.KeyF1 + terminal.Key(k-tcell.KeyF1)
	}
	if tk, ok := keyMap[k]; ok {
		return tk
	}
	return terminal.KeyNone
}

func reverseKey(k terminal.Key) (tcell.Key, bool) {
	if k >= terminal.KeyF1 && k <= terminal.KeyF12 {
		return tcell.KeyF1 + tcell.Key(k-terminal.KeyF1), true
	}
	for tk, v := range keyMap {
		if v == k && tk != tcell.KeyBackspace {
			return tk, true
		}
	}
	return 0, false
}

func convertMouseButton(buttons tcell.ButtonMask) terminal.MouseButton {
	switch {
	case buttons&tcell.WheelUp != 0:
		return terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		return terminal.MouseWheelDown
	case buttons&tcell.Button1 != 0:
		return terminal.MouseLeft
	case buttons&tcell.Button2 != 0:
		return terminal.MouseMiddle
	case buttons&tcell.Button3 != 0:
		return terminal.MouseRight
	default:
		return terminal.MouseNone
	}
}

func reverseMouseButton(b terminal.MouseButton) tcell.ButtonMask {
	switch b {
	case terminal.MouseLeft:
		return tcell.Button1
	case terminal.MouseMiddle:
		return tcell.Button2
	case terminal.MouseRight:
		return tcell.Button3
	case terminal.MouseWheelUp:
		return tcell.WheelUp
	case terminal.MouseWheelDown:
		return tcell.WheelDown
	default:
		return tcell.ButtonNone
	}
}

func reverseMods(alt, ctrl, shift bool) tcell.ModMask {
	var m tcell.ModMask
	if alt {
		m |= tcell.ModAlt
	}
	if ctrl {
		m |= tcell.ModCtrl
	}
	if shift {
		m |= tcell.ModShift
	}
	return m
}

func reverseConvertEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	case terminal.KeyEvent:
		k, ok := reverseKey(e.Key)
		if !ok {
			return nil
		}
		return tcell.NewEventKey(k, e.Rune, reverseMods(e.Alt, e.Ctrl, e.Shift))
	case terminal.MouseEvent:
		btn := reverseMouseButton(e.Button)
		if e.Action == terminal.MouseRelease {
			btn = tcell.ButtonNone
		}
		return tcell.NewEventMouse(e.X, e.Y, btn, reverseMods(e.Alt, e.Ctrl, e.Shift))
	default:
		return nil
	}
}

var _ backend.Backend = (*Backend)(nil)
