package terminal

import "testing"

func TestKeyConstantsUnique(t *testing.T) {
	keys := []Key{
		KeyNone, KeyRune, KeyEnter, KeyBackspace, KeyTab, KeyBacktab, KeyEscape,
		KeyUp, KeyDown, KeyLeft, KeyRight, KeyHome, KeyEnd,
		KeyPageUp, KeyPageDown, KeyDelete, KeyInsert,
		KeyF1, KeyF12,
		KeyCtrlA, KeyCtrlC, KeyCtrlN, KeyCtrlP, KeyCtrlW, KeyCtrlZ,
	}

	seen := make(map[Key]bool)
	for _, k := range keys {
		if seen[k] {
			t.Errorf("duplicate key constant: %d", k)
		}
		seen[k] = true
	}
}

func TestEventInterface(t *testing.T) {
	var _ Event = KeyEvent{}
	var _ Event = ResizeEvent{}
	var _ Event = MouseEvent{}
	var _ Event = PasteEvent{}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyLeft, "left"},
		{KeyPageDown, "pgdn"},
		{KeyF1, "f1"},
		{KeyF12, "f12"},
		{KeyCtrlN, "ctrl+n"},
		{Key(999), "key(999)"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyEventString(t *testing.T) {
	tests := []struct {
		name string
		ev   KeyEvent
		want string
	}{
		{"plain rune", KeyEvent{Key: KeyRune, Rune: 'q'}, "q"},
		{"space", KeyEvent{Key: KeyRune, Rune: ' '}, "space"},
		{"alt rune", KeyEvent{Key: KeyRune, Rune: 'x', Alt: true}, "alt+x"},
		{"ctrl key not doubled", KeyEvent{Key: KeyCtrlW, Ctrl: true}, "ctrl+w"},
		{"ctrl arrow", KeyEvent{Key: KeyLeft, Ctrl: true}, "ctrl+left"},
		{"shift tab", KeyEvent{Key: KeyTab, Shift: true}, "shift+tab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMouseEvent(t *testing.T) {
	ev := MouseEvent{X: 3, Y: 4, Button: MouseLeft, Action: MouseRelease}
	if ev.Button != MouseLeft || ev.Action != MouseRelease {
		t.Errorf("unexpected mouse event %+v", ev)
	}
	if MousePress == MouseRelease {
		t.Error("press and release must differ")
	}
}
