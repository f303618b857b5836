package tabs

import (
	"fmt"
	"strings"

	"github.com/odvcencio/tabpanel/pkg/ui/runtime"
)

// Placement is the edge of a Panel the Bar occupies.
type Placement int

const (
	HorizontalTop Placement = iota
	HorizontalBottom
	VerticalLeft
	VerticalRight
)

var placementNames = [...]string{"top", "bottom", "left", "right"}

func (p Placement) String() string {
	if p < 0 || int(p) >= len(placementNames) {
		return fmt.Sprintf("placement(%d)", int(p))
	}
	return placementNames[p]
}

// IsHorizontal reports whether buttons are stacked left to right.
func (p Placement) IsHorizontal() bool {
	return p == HorizontalTop || p == HorizontalBottom
}

// Next cycles through the four placements.
func (p Placement) Next() Placement {
	return Placement((int(p) + 1) % len(placementNames))
}

// MarshalText implements encoding.TextMarshaler.
func (p Placement) MarshalText() ([]byte, error) {
	if p < 0 || int(p) >= len(placementNames) {
		return nil, fmt.Errorf("invalid placement %d", int(p))
	}
	return []byte(placementNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Placement) UnmarshalText(text []byte) error {
	v, err := ParsePlacement(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePlacement accepts top, bottom, left or right.
func ParsePlacement(s string) (Placement, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range placementNames {
		if n == name {
			return Placement(i), nil
		}
	}
	return HorizontalTop, fmt.Errorf("unknown placement %q (want top, bottom, left or right)", s)
}

// barSide is the direction focus arrives from when it enters the panel
// through the bar edge.
func (p Placement) barSide() runtime.Direction {
	switch p {
	case HorizontalBottom:
		return runtime.DirDown
	case VerticalLeft:
		return runtime.DirLeft
	case VerticalRight:
		return runtime.DirRight
	default:
		return runtime.DirUp
	}
}

// contentSide is the direction focus arrives from when it enters the panel
// through the edge opposite the bar.
func (p Placement) contentSide() runtime.Direction {
	switch p {
	case HorizontalBottom:
		return runtime.DirUp
	case VerticalLeft:
		return runtime.DirRight
	case VerticalRight:
		return runtime.DirLeft
	default:
		return runtime.DirDown
	}
}

// Align positions the bar's buttons within the space available to it.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

var alignNames = [...]string{"start", "center", "end"}

func (a Align) String() string {
	if a < 0 || int(a) >= len(alignNames) {
		return fmt.Sprintf("align(%d)", int(a))
	}
	return alignNames[a]
}

// Next cycles through the three alignments.
func (a Align) Next() Align {
	return Align((int(a) + 1) % len(alignNames))
}

// GetOffset returns where content of the given extent starts inside a
// container. Content larger than its container starts at 0 and clips.
func (a Align) GetOffset(content, container int) int {
	if container < content {
		return 0
	}
	switch a {
	case AlignCenter:
		return (container - content) / 2
	case AlignEnd:
		return container - content
	default:
		return 0
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Align) MarshalText() ([]byte, error) {
	if a < 0 || int(a) >= len(alignNames) {
		return nil, fmt.Errorf("invalid alignment %d", int(a))
	}
	return []byte(alignNames[a]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Align) UnmarshalText(text []byte) error {
	v, err := ParseAlign(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// ParseAlign accepts start, center or end.
func ParseAlign(s string) (Align, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range alignNames {
		if n == name {
			return Align(i), nil
		}
	}
	return AlignStart, fmt.Errorf("unknown alignment %q (want start, center or end)", s)
}
