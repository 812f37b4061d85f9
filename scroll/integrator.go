package scroll

import "math"

// Tick advances the simulation by one frame. Outside of a drag it moves the
// content by the current velocity, re-derives the scroll value and applies
// friction. In bounce mode any overshoot re-seeds the velocity first, so
// content keeps settling even after its velocity has decayed.
//
// Velocity decays on every tick and only approaches zero asymptotically;
// speeds below 1e-4 pixels per tick are treated as rest.
func (c *Controller) Tick() {
	if c.content != nil {
		c.updateVelocity()
	}
	for _, o := range orientations {
		c.syncScrollbarVisibility(o)
	}
}

// Moving reports whether the next tick will move the content.
func (c *Controller) Moving() bool {
	if c.drag.active {
		return false
	}
	if math.Abs(c.state.Velocity.X) > restVelocity || math.Abs(c.state.Velocity.Y) > restVelocity {
		return true
	}
	return c.mode == Bounce && (c.hasOvershoot(Horizontal) || c.hasOvershoot(Vertical))
}

func (c *Controller) updateVelocity() {
	if c.drag.active {
		return
	}
	if c.mode == Bounce {
		for _, o := range orientations {
			if c.hasOvershoot(o) {
				c.setVelocityFromOvershoot(c.state.Scroll.Get(o), o)
			}
		}
	}

	v := c.state.Velocity
	if math.Abs(v.X) > restVelocity || math.Abs(v.Y) > restVelocity {
		pos := c.content.LocalPosition().Add(v)
		c.content.SetLocalPosition(pos)
		c.setScrollFromContentPosition(pos)
	}

	c.state.Velocity = c.state.Velocity.Scale(1 - c.friction)
}
