package runtime

// FlexDirection specifies the main axis of a flex container.
type FlexDirection int

const (
	Column FlexDirection = iota // Vertical (VBox)
	Row                         // Horizontal (HBox)
)

// FlexChild wraps a widget with flex layout properties.
type FlexChild struct {
	Widget Widget
	Grow   float64 // 0 = fixed, otherwise a proportional share of free space
	Basis  int     // -1 = use measured size
}

// Fixed creates a child that keeps its measured size.
func Fixed(w Widget) FlexChild {
	return FlexChild{Widget: w, Basis: -1}
}

// Flexible creates a child that grows with the given factor.
func Flexible(w Widget, grow float64) FlexChild {
	return FlexChild{Widget: w, Grow: grow, Basis: -1}
}

// Expanded creates a child that grows to fill available space.
func Expanded(w Widget) FlexChild {
	return Flexible(w, 1)
}

// Sized creates a child with a fixed size on the main axis.
func Sized(w Widget, basis int) FlexChild {
	return FlexChild{Widget: w, Basis: basis}
}

// Flex lays out children along an axis.
type Flex struct {
	Direction FlexDirection
	Children  []FlexChild
	Gap       int

	bounds      Rect
	childBounds []Rect
	sizes       []Size
}

// VBox creates a vertical flex container.
func VBox(children ...FlexChild) *Flex {
	return &Flex{Direction: Column, Children: children}
}

// HBox creates a horizontal flex container.
func HBox(children ...FlexChild) *Flex {
	return &Flex{Direction: Row, Children: children}
}

// WithGap sets the gap between children.
func (f *Flex) WithGap(gap int) *Flex {
	f.Gap = gap
	return f
}

// Measure measures every child once and sums them along the main axis.
// Layout reuses these sizes, so Measure must precede Layout.
func (f *Flex) Measure(constraints Constraints) Size {
	f.sizes = make([]Size, len(f.Children))
	if len(f.Children) == 0 {
		return constraints.MinSize()
	}

	childConstraints := Loose(constraints.MaxWidth, constraints.MaxHeight)
	totalMain, maxCross := f.gaps(), 0
	for i, child := range f.Children {
		if child.Basis >= 0 {
			f.sizes[i] = f.sizeWithBasis(child.Basis)
		} else {
			f.sizes[i] = child.Widget.Measure(childConstraints)
		}
		totalMain += f.mainSize(f.sizes[i])
		maxCross = max(maxCross, f.crossSize(f.sizes[i]))
	}

	if f.Direction == Column {
		return constraints.Constrain(Size{Width: maxCross, Height: totalMain})
	}
	return constraints.Constrain(Size{Width: totalMain, Height: maxCross})
}

// Layout positions all children within the given bounds.
func (f *Flex) Layout(bounds Rect) {
	f.bounds = bounds
	f.childBounds = make([]Rect, len(f.Children))
	if len(f.Children) == 0 {
		return
	}
	if len(f.sizes) != len(f.Children) {
		f.Measure(Loose(bounds.Width, bounds.Height))
	}

	totalFixed, totalGrow := f.gaps(), 0.0
	for i, child := range f.Children {
		if child.Grow == 0 {
			totalFixed += f.mainSize(f.sizes[i])
		}
		totalGrow += child.Grow
	}
	available := max(0, f.mainSize(bounds.Size())-totalFixed)

	offset := 0
	for i, child := range f.Children {
		mainSize := f.mainSize(f.sizes[i])
		if child.Grow > 0 && totalGrow > 0 {
			mainSize = int(float64(available) * child.Grow / totalGrow)
		}

		var cb Rect
		if f.Direction == Column {
			cb = Rect{X: bounds.X, Y: bounds.Y + offset, Width: bounds.Width, Height: mainSize}
		} else {
			cb = Rect{X: bounds.X + offset, Y: bounds.Y, Width: mainSize, Height: bounds.Height}
		}
		cb = cb.Intersection(bounds)
		f.childBounds[i] = cb
		child.Widget.Layout(cb)

		offset += mainSize + f.Gap
	}
}

// Bounds returns the assigned bounds for the flex container.
func (f *Flex) Bounds() Rect {
	return f.bounds
}

// Render draws all children.
func (f *Flex) Render(ctx RenderContext) {
	for i, child := range f.Children {
		if i < len(f.childBounds) {
			child.Widget.Render(ctx.Sub(f.childBounds[i]))
		}
	}
}

// HandleMessage sends mouse messages to the child under the pointer and
// everything else to each child in turn until one handles it.
func (f *Flex) HandleMessage(msg Message) HandleResult {
	if m, ok := msg.(MouseMsg); ok {
		for i, child := range f.Children {
			if i < len(f.childBounds) && f.childBounds[i].Contains(m.X, m.Y) {
				return child.Widget.HandleMessage(msg)
			}
		}
		return Unhandled()
	}
	for _, child := range f.Children {
		if result := child.Widget.HandleMessage(msg); result.Handled {
			return result
		}
	}
	return Unhandled()
}

// TakeFocus gives focus to the first child that accepts it.
func (f *Flex) TakeFocus(from Direction) error {
	var err error
	for _, child := range f.Children {
		if err = TakeFocus(child.Widget, from); err == nil {
			return nil
		}
	}
	if err == nil {
		err = TakeFocus(nil, from)
	}
	return err
}

// LookupName searches children in order.
func (f *Flex) LookupName(name string, fn func(Widget)) bool {
	for _, child := range f.Children {
		if LookupName(child.Widget, name, fn) {
			return true
		}
	}
	return false
}

func (f *Flex) gaps() int {
	if len(f.Children) < 2 {
		return 0
	}
	return f.Gap * (len(f.Children) - 1)
}

func (f *Flex) mainSize(s Size) int {
	if f.Direction == Column {
		return s.Height
	}
	return s.Width
}

func (f *Flex) crossSize(s Size) int {
	if f.Direction == Column {
		return s.Width
	}
	return s.Height
}

func (f *Flex) sizeWithBasis(basis int) Size {
	if f.Direction == Column {
		return Size{Height: basis}
	}
	return Size{Width: basis}
}
