package scroll

import "fmt"

// Orientation selects one of the two scroll axes.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

var orientations = [...]Orientation{Horizontal, Vertical}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// Vec2 is a pair of per-axis values. Depending on context it holds normalized
// scroll values, content-local positions or per-tick velocities.
type Vec2 struct {
	X, Y float64
}

// Get returns the component for the given orientation.
func (v Vec2) Get(o Orientation) float64 {
	if o == Vertical {
		return v.Y
	}
	return v.X
}

// Set replaces the component for the given orientation.
func (v *Vec2) Set(o Orientation, value float64) {
	if o == Vertical {
		v.Y = value
		return
	}
	v.X = value
}

func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{v.X + w.X, v.Y + w.Y}
}

func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{v.X - w.X, v.Y - w.Y}
}

func (v Vec2) Scale(f float64) Vec2 {
	return Vec2{v.X * f, v.Y * f}
}

// Content-local Y grows upward while scrolling down moves content up, so
// vertical offsets are negated when converting between scroll values and
// positions.
const (
	horizontalSign = 1.0
	verticalSign   = -1.0
)

// sign returns the factor converting a normalized offset along o into a
// content-local coordinate.
func sign(o Orientation) float64 {
	if o == Vertical {
		return verticalSign
	}
	return horizontalSign
}

// axisMask selects which axes a scroll update touches.
type axisMask uint8

const (
	maskHorizontal axisMask = 1 << iota
	maskVertical

	maskBoth = maskHorizontal | maskVertical
)

func maskOf(o Orientation) axisMask {
	if o == Vertical {
		return maskVertical
	}
	return maskHorizontal
}

func (m axisMask) has(o Orientation) bool {
	return m&maskOf(o) != 0
}
