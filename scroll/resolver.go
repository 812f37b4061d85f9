package scroll

import "math"

// DetermineNewScrollValue returns the value an axis accepts for candidate
// under the current boundary mode. A disabled axis keeps its stored value.
// In bounce mode the candidate is accepted as is and any overshoot seeds the
// axis velocity so that later ticks spring the content back.
func (c *Controller) DetermineNewScrollValue(candidate float64, o Orientation) float64 {
	if !c.enabled[o] {
		return c.state.Scroll.Get(o)
	}
	switch c.mode {
	case Clamp:
		return clamp(candidate, 0, c.MaxScrollValue(o))
	case Bounce:
		c.setVelocityFromOvershoot(candidate, o)
		return candidate
	case Infinite:
		return candidate
	default:
		c.log().Warn("unknown scroll mode, not restricting scroll value",
			"mode", c.mode, "orientation", o)
		return candidate
	}
}

// Overshoot returns the signed distance by which the current scroll value
// of o lies outside [0, MaxScrollValue].
func (c *Controller) Overshoot(o Orientation) float64 {
	return c.toOvershoot(c.state.Scroll.Get(o), o)
}

func (c *Controller) toOvershoot(v float64, o Orientation) float64 {
	maxValue := c.MaxScrollValue(o)
	switch {
	case v < 0:
		return v
	case v > maxValue:
		return v - maxValue
	}
	return 0
}

func (c *Controller) hasOvershoot(o Orientation) bool {
	return math.Abs(c.Overshoot(o)) > overshootEpsilon
}

func (c *Controller) setVelocityFromOvershoot(v float64, o Orientation) {
	overshootPixels := c.toOvershoot(v, o) * c.maxOffset(o) * sign(o)
	if math.Abs(overshootPixels) > 0 {
		// The +1 makes a zero bounce amount snap back in a single tick.
		c.setVelocity(o, -overshootPixels/(c.bounceAmount*bounceScale+1))
	}
}
