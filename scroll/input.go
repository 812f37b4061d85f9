package scroll

import "math"

// DragStart begins a drag of the content. Inertial motion stops until the
// drag ends.
func (c *Controller) DragStart() {
	if c.content == nil {
		return
	}
	c.drag = dragSession{
		active: true,
		start:  c.content.LocalPosition(),
	}
	c.wasDragged = false
	c.state.Velocity = Vec2{}
}

// DragMove moves the dragged content to pos, given in content-local space.
// Past a boundary the position meets logarithmic resistance. The velocity is
// the delta to the previous drag position, so releasing the drag flicks the
// content.
func (c *Controller) DragMove(pos Vec2) {
	if c.content == nil || !c.drag.active {
		return
	}
	c.wasDragged = true
	c.setScrollFromContentPosition(pos)
	c.setVelocityFromDragDelta(pos)

	if !c.contentInputDisabled {
		d := pos.Sub(c.drag.start)
		if math.Abs(d.X) > c.dragThreshold || math.Abs(d.Y) > c.dragThreshold {
			c.setContentInput(false)
		}
	}
}

// DragEnd finishes the drag. The last drag velocity carries on as inertial
// motion.
func (c *Controller) DragEnd() {
	if !c.drag.active {
		return
	}
	c.drag = dragSession{}
	c.setContentInput(true)
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.drag.active
}

// WasDragged reports whether the current or last drag moved the content.
func (c *Controller) WasDragged() bool {
	return c.wasDragged
}

// Wheel scrolls by a wheel delta given in screen pixels. The delta is
// normalized by the content size and the wheel sensitivity, and the result
// is clamped to the valid range.
func (c *Controller) Wheel(dx, dy float64) {
	if !c.useWheel || c.content == nil {
		return
	}
	delta := Vec2{finiteOr(dx, 0), finiteOr(dy, 0)}
	var target Vec2
	for _, o := range orientations {
		var step float64
		if contentSize := c.geometry.ContentSize(o); math.Abs(contentSize) >= contentEpsilon {
			step = delta.Get(o) / contentSize * c.wheelSensitivity.Get(o)
		}
		target.Set(o, clamp(c.state.Scroll.Get(o)+step, 0, c.MaxScrollValue(o)))
	}
	c.SetScroll(target)
}

func (c *Controller) setVelocityFromDragDelta(pos Vec2) {
	if !c.drag.hasPrev {
		c.state.Velocity = Vec2{}
		c.drag.prev = pos
		c.drag.hasPrev = true
		return
	}
	c.setVelocity(Horizontal, pos.X-c.drag.prev.X)
	c.setVelocity(Vertical, pos.Y-c.drag.prev.Y)
	c.drag.prev = pos
}

func (c *Controller) setContentInput(enabled bool) {
	if c.contentInputDisabled == !enabled {
		return
	}
	c.contentInputDisabled = !enabled
	if c.contentInput != nil {
		c.contentInput(enabled)
	}
}

// ScrollBy scrolls by delta pixels, positive toward the end of the content,
// and stops any inertial motion. The result is clamped to the valid range.
func (c *Controller) ScrollBy(delta Vec2) {
	if c.content == nil {
		return
	}
	target := c.state.Scroll
	for _, o := range orientations {
		maxOffset := c.maxOffset(o)
		d := finiteOr(delta.Get(o), 0)
		if maxOffset == 0 || d == 0 {
			continue
		}
		target.Set(o, clamp(target.Get(o)+d/-maxOffset, 0, c.MaxScrollValue(o)))
	}
	c.SetScroll(target)
}

// FlingBy starts inertial motion that travels roughly distance pixels,
// positive toward the end of the content, before friction stops it. Without
// friction the distance is scrolled immediately.
func (c *Controller) FlingBy(distance Vec2) {
	if c.content == nil || c.drag.active {
		return
	}
	if c.friction == 0 {
		c.ScrollBy(distance)
		return
	}
	for _, o := range orientations {
		if !c.enabled[o] || c.maxOffset(o) == 0 {
			continue
		}
		c.setVelocity(o, -sign(o)*distance.Get(o)*c.friction)
	}
}
