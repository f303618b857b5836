// Package theme provides the styles used to draw tab panels and their
// hosted views.
package theme

import (
	"fmt"

	"github.com/odvcencio/tabpanel/pkg/ui/backend"
)

// Theme defines the visual language for the tab widgets.
type Theme struct {
	// Text hierarchy
	TextPrimary   backend.Style // active tab title
	TextSecondary backend.Style // inactive tab titles
	TextMuted     backend.Style // hints, status line

	// Frame
	Border      backend.Style // separators and frame when unfocused
	BorderFocus backend.Style // frame of the focused region

	Cursor backend.Style // bar cursor entry while the bar has focus

	Body backend.Style
}

// Palette is the set of base colors a Theme is derived from.
type Palette struct {
	Accent backend.Color
	Text   backend.Color
	Muted  backend.Color
	Border backend.Color
}

// DefaultPalette returns the amber-on-dark palette.
func DefaultPalette() Palette {
	return Palette{
		Accent: backend.ColorRGB(255, 183, 77),
		Text:   backend.ColorRGB(240, 238, 232),
		Muted:  backend.ColorRGB(100, 98, 92),
		Border: backend.ColorRGB(80, 80, 96),
	}
}

// DefaultTheme returns the theme built from DefaultPalette.
func DefaultTheme() *Theme {
	return New(DefaultPalette())
}

// New derives a theme from a palette.
func New(p Palette) *Theme {
	base := backend.DefaultStyle()
	return &Theme{
		TextPrimary:   base.Foreground(p.Accent).Bold(true),
		TextSecondary: base.Foreground(p.Text),
		TextMuted:     base.Foreground(p.Muted),
		Border:        base.Foreground(p.Border),
		BorderFocus:   base.Foreground(p.Accent),
		Cursor:        base.Foreground(p.Text).Reverse(true),
		Body:          base.Foreground(p.Text),
	}
}

// ParsePalette overlays the non-empty color strings onto DefaultPalette.
func ParsePalette(accent, text, muted, border string) (Palette, error) {
	p := DefaultPalette()
	fields := []struct {
		name string
		raw  string
		dst  *backend.Color
	}{
		{"accent", accent, &p.Accent},
		{"text", text, &p.Text},
		{"muted", muted, &p.Muted},
		{"border", border, &p.Border},
	}
	for _, f := range fields {
		if f.raw == "" {
			continue
		}
		c, err := backend.ParseColor(f.raw)
		if err != nil {
			return p, fmt.Errorf("theme %s: %w", f.name, err)
		}
		*f.dst = c
	}
	return p, nil
}

// Symbols used by the tab bar and panel frame.
var Symbols = struct {
	Horizontal, Vertical             rune
	HorizontalHeavy, VerticalHeavy   rune
	TopLeft, TopRight                rune
	BottomLeft, BottomRight          rune
	TeeLeft, TeeLeftHeavy            rune // ┤ ┨ start cap on a horizontal bar
	TeeRight, TeeRightHeavy          rune // ├ ┠ end cap on a horizontal bar
	TeeDown, TeeDownHeavy            rune // ┬ ┯ start cap on a vertical bar
	TeeUp, TeeUpHeavy                rune // ┴ ┷ end cap on a vertical bar
}{
	Horizontal:      '─',
	Vertical:        '│',
	HorizontalHeavy: '━',
	VerticalHeavy:   '┃',
	TopLeft:         '┌',
	TopRight:        '┐',
	BottomLeft:      '└',
	BottomRight:     '┘',
	TeeLeft:         '┤',
	TeeLeftHeavy:    '┨',
	TeeRight:        '├',
	TeeRightHeavy:   '┠',
	TeeDown:         '┬',
	TeeDownHeavy:    '┯',
	TeeUp:           '┴',
	TeeUpHeavy:      '┷',
}
