package theme

import (
	"testing"

	"github.com/odvcencio/tabpanel/pkg/ui/backend"
)

func TestDefaultTheme(t *testing.T) {
	th := DefaultTheme()
	if th == nil {
		t.Fatal("DefaultTheme() returned nil")
	}

	if !th.TextPrimary.Has(backend.AttrBold) {
		t.Error("active tab title should be bold")
	}
	if th.TextPrimary.FG() == th.TextSecondary.FG() {
		t.Error("active and inactive titles should differ in color")
	}
	if th.BorderFocus == th.Border {
		t.Error("focused border should differ from unfocused border")
	}
	if !th.Cursor.Has(backend.AttrReverse) {
		t.Error("focused cursor should be reverse video")
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette("cyan", "", "", "#102030")
	if err != nil {
		t.Fatalf("ParsePalette() error = %v", err)
	}
	if p.Accent != backend.ColorCyan {
		t.Errorf("Accent = %v, want cyan", p.Accent)
	}
	if p.Text != DefaultPalette().Text {
		t.Error("empty text color should keep the default")
	}
	if p.Border != backend.ColorRGB(0x10, 0x20, 0x30) {
		t.Errorf("Border = %v, want #102030", p.Border)
	}

	if _, err := ParsePalette("no-such-color", "", "", ""); err == nil {
		t.Error("expected error for unknown color")
	}
}

func TestSymbolsDistinct(t *testing.T) {
	caps := []rune{
		Symbols.TeeLeft, Symbols.TeeLeftHeavy,
		Symbols.TeeRight, Symbols.TeeRightHeavy,
		Symbols.TeeDown, Symbols.TeeDownHeavy,
		Symbols.TeeUp, Symbols.TeeUpHeavy,
	}
	seen := map[rune]bool{}
	for _, r := range caps {
		if seen[r] {
			t.Errorf("duplicate cap glyph %q", r)
		}
		seen[r] = true
	}
}
