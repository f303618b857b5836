package runtime

// Named attaches a lookup name to a widget. All Widget calls pass through;
// optional capabilities of the wrapped widget are forwarded too.
type Named struct {
	Widget
	Name string
}

// NewNamed wraps w under name.
func NewNamed(name string, w Widget) *Named {
	return &Named{Widget: w, Name: name}
}

// LookupName matches this wrapper's own name first, then searches inside
// the wrapped widget.
func (n *Named) LookupName(name string, fn func(Widget)) bool {
	if name == n.Name {
		fn(n.Widget)
		return true
	}
	return LookupName(n.Widget, name, fn)
}

func (n *Named) TakeFocus(from Direction) error { return TakeFocus(n.Widget, from) }
func (n *Named) Blur()                          { Blur(n.Widget) }
func (n *Named) NeedsRelayout() bool            { return NeedsRelayout(n.Widget) }

func (n *Named) ImportantArea() Rect {
	fallback := ZeroRect
	if b, ok := n.Widget.(interface{ Bounds() Rect }); ok {
		fallback = b.Bounds()
	}
	return ImportantArea(n.Widget, fallback)
}
