package scroll

import "math"

// PositionToScroll converts a content-local position into normalized scroll
// values. An axis whose content cannot move maps to 0.
func (c *Controller) PositionToScroll(pos Vec2) Vec2 {
	var scroll Vec2
	for _, o := range orientations {
		maxOffset := c.maxOffset(o)
		if maxOffset == 0 {
			continue
		}
		scroll.Set(o, pos.Get(o)*sign(o)/maxOffset)
	}
	return scroll
}

// ScrollToOffset returns the content-local coordinate along o matching the
// current scroll value.
func (c *Controller) ScrollToOffset(o Orientation) float64 {
	return c.state.Scroll.Get(o) * c.maxOffset(o) * sign(o)
}

// applyTension compresses overshoot logarithmically so that dragging past a
// boundary meets increasing resistance without a hard stop.
func (c *Controller) applyTension(scroll Vec2) Vec2 {
	for _, o := range orientations {
		v := scroll.Get(o)
		overshoot := c.toOvershoot(v, o)
		switch {
		case overshoot > 0:
			scroll.Set(o, c.MaxScrollValue(o)+tensionFactor*math.Log10(1+overshoot))
		case overshoot < 0:
			scroll.Set(o, -tensionFactor*math.Log10(1-overshoot))
		}
	}
	return scroll
}

// setScrollFromContentPosition derives scroll values from a content position
// that was moved by a drag or by velocity.
func (c *Controller) setScrollFromContentPosition(pos Vec2) {
	scroll := c.PositionToScroll(pos)
	if c.drag.active {
		scroll = c.applyTension(scroll)
	}
	c.setScroll(scroll, maskBoth, false)
}

// syncContentPosition moves the content along o to the stored scroll value.
// When the content changed size since the last sync, the scroll value is
// rescaled first so the content stays where the user saw it.
func (c *Controller) syncContentPosition(o Orientation) {
	if c.content == nil {
		return
	}
	currContentSize := c.geometry.ContentSize(o)
	if c.hasPrevContentSize[o] && math.Abs(c.prevContentSize[o]-currContentSize) > resizeEpsilon {
		prevMaxOffset := c.maxOffsetFor(o, c.prevContentSize[o])
		currMaxOffset := c.maxOffsetFor(o, currContentSize)
		switch {
		case currMaxOffset == 0:
			c.state.Scroll.Set(o, 1)
		case currContentSize < c.geometry.ViewportSize(o):
			// Content that fits has a single resting place.
			c.state.Scroll.Set(o, 0)
		default:
			scroll := c.state.Scroll.Get(o) * prevMaxOffset / currMaxOffset
			c.state.Scroll.Set(o, clamp(finiteOr(scroll, 0), 0, 1))
		}
	}

	pos := c.content.LocalPosition()
	pos.Set(o, finiteOr(c.ScrollToOffset(o), 0))
	c.content.SetLocalPosition(pos)

	c.prevContentSize[o] = currContentSize
	c.hasPrevContentSize[o] = true
}
