package backend

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a terminal color. Values 0-255 are palette entries; values with
// the rgb flag set are true colors.
type Color int32

const rgbFlag = 0x01000000

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7

	ColorBrightBlack Color = 8
	ColorBrightWhite Color = 15
)

var colorNames = map[string]Color{
	"default":      ColorDefault,
	"black":        ColorBlack,
	"red":          ColorRed,
	"green":        ColorGreen,
	"yellow":       ColorYellow,
	"blue":         ColorBlue,
	"magenta":      ColorMagenta,
	"cyan":         ColorCyan,
	"white":        ColorWhite,
	"gray":         ColorBrightBlack,
	"bright-white": ColorBrightWhite,
}

// ColorRGB creates a true color from RGB components.
func ColorRGB(r, g, b uint8) Color {
	return Color(int32(r)<<16 | int32(g)<<8 | int32(b) | rgbFlag)
}

// ParseColor accepts a color name ("cyan"), a palette index ("208") or a
// hex triple ("#1e90ff").
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		v, err := strconv.ParseUint(s[1:], 16, 32)
		if err != nil {
			return ColorDefault, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return ColorRGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 255 {
		return ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return Color(n), nil
}

// IsRGB reports whether c is a true color.
func (c Color) IsRGB() bool {
	return c != ColorDefault && c&rgbFlag != 0
}

// RGB returns the components of a true color, or zeros for palette colors.
func (c Color) RGB() (r, g, b uint8) {
	if !c.IsRGB() {
		return 0, 0, 0
	}
	return uint8((c >> 16) & 0xFF), uint8((c >> 8) & 0xFF), uint8(c & 0xFF)
}

// AttrMask is a set of text attributes.
type AttrMask uint32

const (
	AttrBold AttrMask = 1 << iota
	AttrReverse
	AttrUnderline
	AttrDim
	AttrItalic
)

// Style combines foreground, background and attributes. The zero value is
// not the default style; use DefaultStyle.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns default colors with no attributes.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

func (s Style) Foreground(c Color) Style { s.fg = c; return s }
func (s Style) Background(c Color) Style { s.bg = c; return s }

func (s Style) Bold(on bool) Style      { return s.with(AttrBold, on) }
func (s Style) Reverse(on bool) Style   { return s.with(AttrReverse, on) }
func (s Style) Underline(on bool) Style { return s.with(AttrUnderline, on) }
func (s Style) Dim(on bool) Style       { return s.with(AttrDim, on) }
func (s Style) Italic(on bool) Style    { return s.with(AttrItalic, on) }

func (s Style) with(mask AttrMask, on bool) Style {
	if on {
		s.attrs |= mask
	} else {
		s.attrs &^= mask
	}
	return s
}

func (s Style) FG() Color            { return s.fg }
func (s Style) BG() Color            { return s.bg }
func (s Style) Attributes() AttrMask { return s.attrs }

// Has reports whether every attribute in mask is set.
func (s Style) Has(mask AttrMask) bool {
	return s.attrs&mask == mask
}

// Decompose returns the foreground, background and attributes.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}
