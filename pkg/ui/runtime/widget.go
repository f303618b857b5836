// Package runtime provides the widget runtime: constraint-based measurement,
// absolute layout, rendering into a cell buffer, message dispatch and
// directional focus.
package runtime

import (
	tperrors "github.com/odvcencio/tabpanel/pkg/errors"
)

// Constraints define the min/max space available to a widget during measure.
type Constraints struct {
	MinWidth, MaxWidth   int
	MinHeight, MaxHeight int
}

// Tight returns constraints that force an exact size.
func Tight(w, h int) Constraints {
	return Constraints{MinWidth: w, MaxWidth: w, MinHeight: h, MaxHeight: h}
}

// Loose returns constraints with only max bounds.
func Loose(w, h int) Constraints {
	return Constraints{MaxWidth: w, MaxHeight: h}
}

// Unbounded returns constraints with no limits.
func Unbounded() Constraints {
	return Constraints{MaxWidth: maxInt, MaxHeight: maxInt}
}

// Constrain clamps a size to fit within these constraints.
func (c Constraints) Constrain(s Size) Size {
	return Size{
		Width:  clamp(s.Width, c.MinWidth, c.MaxWidth),
		Height: clamp(s.Height, c.MinHeight, c.MaxHeight),
	}
}

// Shrink returns constraints reduced by dw/dh on the max side, never below
// zero. Min bounds are relaxed to fit.
func (c Constraints) Shrink(dw, dh int) Constraints {
	out := c
	if out.MaxWidth != maxInt {
		out.MaxWidth = max(0, out.MaxWidth-dw)
	}
	if out.MaxHeight != maxInt {
		out.MaxHeight = max(0, out.MaxHeight-dh)
	}
	out.MinWidth = min(max(0, out.MinWidth-dw), out.MaxWidth)
	out.MinHeight = min(max(0, out.MinHeight-dh), out.MaxHeight)
	return out
}

// MaxSize returns the maximum size allowed by constraints.
func (c Constraints) MaxSize() Size {
	return Size{Width: c.MaxWidth, Height: c.MaxHeight}
}

// MinSize returns the minimum size required by constraints.
func (c Constraints) MinSize() Size {
	return Size{Width: c.MinWidth, Height: c.MinHeight}
}

// Size is a widget's measured dimensions.
type Size struct {
	Width, Height int
}

// Rect is a positioned rectangle in absolute screen cells.
type Rect struct {
	X, Y, Width, Height int
}

// ZeroRect is the zero value rect.
var ZeroRect = Rect{}

// Size returns the rect's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersection returns the overlapping area of two rects.
func (r Rect) Intersection(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	x2 := min(r.X+r.Width, other.X+other.Width)
	y2 := min(r.Y+r.Height, other.Y+other.Height)
	if x2 <= x || y2 <= y {
		return ZeroRect
	}
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// Inset returns a rect shrunk by the given amounts.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}

// Widget is the core interface all UI components implement.
type Widget interface {
	// Measure returns desired size given constraints.
	Measure(constraints Constraints) Size

	// Layout assigns the final absolute bounds.
	Layout(bounds Rect)

	// Render draws the widget into ctx.Buffer within ctx.Bounds.
	Render(ctx RenderContext)

	// HandleMessage processes input. Unhandled results let the parent try
	// something else with the same message.
	HandleMessage(msg Message) HandleResult
}

// Focusable extends Widget for widgets that can receive keyboard focus.
type Focusable interface {
	Widget
	CanFocus() bool
	Focus()
	Blur()
	IsFocused() bool
}

// Direction names the side focus arrives from.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
	DirFront
	DirBack
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirFront:
		return "front"
	case DirBack:
		return "back"
	default:
		return "none"
	}
}

// FocusTaker is implemented by widgets that decide for themselves whether
// focus arriving from a direction is accepted. A nil error means focus was
// taken; errors.ErrCannotFocus means it was refused.
type FocusTaker interface {
	TakeFocus(from Direction) error
}

// Relayouter reports whether a widget must be laid out again.
type Relayouter interface {
	NeedsRelayout() bool
}

// NameLookup finds a descendant by name and calls fn with it.
type NameLookup interface {
	LookupName(name string, fn func(Widget)) bool
}

// AreaReporter reports the rect that should be kept visible, in absolute
// coordinates.
type AreaReporter interface {
	ImportantArea() Rect
}

// TakeFocus asks w to take focus arriving from dir.
func TakeFocus(w Widget, dir Direction) error {
	switch v := w.(type) {
	case nil:
		return tperrors.CannotFocus("no widget")
	case FocusTaker:
		return v.TakeFocus(dir)
	case Focusable:
		if !v.CanFocus() {
			return tperrors.CannotFocus("widget is not focusable")
		}
		v.Focus()
		return nil
	default:
		return tperrors.CannotFocus("widget is not focusable")
	}
}

// Blur removes focus from w if it tracks focus.
func Blur(w Widget) {
	if b, ok := w.(interface{ Blur() }); ok {
		b.Blur()
	}
}

// NeedsRelayout reports w's relayout flag, defaulting to true.
func NeedsRelayout(w Widget) bool {
	if r, ok := w.(Relayouter); ok {
		return r.NeedsRelayout()
	}
	return true
}

// LookupName searches w for a descendant called name.
func LookupName(w Widget, name string, fn func(Widget)) bool {
	if l, ok := w.(NameLookup); ok {
		return l.LookupName(name, fn)
	}
	return false
}

// ImportantArea returns w's important area, or fallback when w does not
// report one.
func ImportantArea(w Widget, fallback Rect) Rect {
	if a, ok := w.(AreaReporter); ok {
		return a.ImportantArea()
	}
	return fallback
}

// HandleResult is returned from HandleMessage.
type HandleResult struct {
	Handled  bool
	Commands []Command
}

// Handled returns a result indicating the message was consumed.
func Handled() HandleResult {
	return HandleResult{Handled: true}
}

// Unhandled returns a result indicating the message was not consumed.
func Unhandled() HandleResult {
	return HandleResult{}
}

// WithCommand returns a handled result with a single command.
func WithCommand(cmd Command) HandleResult {
	return HandleResult{Handled: true, Commands: []Command{cmd}}
}

const maxInt = int(^uint(0) >> 1)

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
