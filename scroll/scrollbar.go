package scroll

import "math"

// Scrollbar receives the scroll state of one axis. Implementations may
// report value changes synchronously from SetValue; the controller ignores
// such reports while it is writing to the scrollbar.
type Scrollbar interface {
	// SetValue sets the normalized thumb position. It may lie outside [0, 1]
	// while the content overshoots.
	SetValue(value float64)
	// SetHandleSize sets the thumb length as a fraction of the track in (0, 1].
	SetHandleSize(size float64)
	// SetVisible shows or hides the scrollbar.
	SetVisible(visible bool)
}

// SetScrollbar attaches a scrollbar to o and brings it up to date. Pass nil
// to detach it.
func (c *Controller) SetScrollbar(o Orientation, bar Scrollbar) *Controller {
	c.scrollbars[o] = bar
	c.syncScrollbar(o)
	c.syncScrollbarVisibility(o)
	return c
}

// ScrollbarValueChanged handles a value reported by the scrollbar of o, for
// example after the user dragged its thumb. Reports caused by the controller
// itself are ignored.
func (c *Controller) ScrollbarValueChanged(o Orientation, value float64) {
	if c.updatingScrollbar[o] {
		return
	}
	var candidate Vec2
	candidate.Set(o, value)
	c.setScroll(candidate, maskOf(o), true)
}

// HandleSize returns the thumb length for o: the visible fraction of the
// content, shrunk further while the content overshoots.
func (c *Controller) HandleSize(o Orientation) float64 {
	viewportSize := c.geometry.ViewportSize(o)
	contentSize := c.geometry.ContentSize(o)
	if math.Abs(contentSize) < contentEpsilon {
		return 1
	}
	size := math.Min(viewportSize/contentSize, 1)
	overshoot := c.Overshoot(o)
	if overshoot == 0 {
		return size
	}
	return size / (1 + math.Abs(overshoot))
}

// ScrollbarVisible reports whether the scrollbar of o should be shown.
func (c *Controller) ScrollbarVisible(o Orientation) bool {
	enabled := c.enabled[o]
	switch c.visibility[o] {
	case ShowAlways:
		return enabled
	case ShowWhenRequired:
		return enabled && c.contentLargerThanViewport(o)
	default:
		c.log().Warn("unknown scrollbar visibility, showing scrollbar",
			"visibility", c.visibility[o], "orientation", o)
		return enabled
	}
}

func (c *Controller) syncScrollbar(o Orientation) {
	bar := c.scrollbars[o]
	if bar == nil {
		return
	}
	c.updatingScrollbar[o] = true
	bar.SetValue(c.state.Scroll.Get(o))
	bar.SetHandleSize(c.HandleSize(o))
	c.updatingScrollbar[o] = false
}

func (c *Controller) syncScrollbarVisibility(o Orientation) {
	bar := c.scrollbars[o]
	if bar == nil {
		return
	}
	bar.SetVisible(c.ScrollbarVisible(o))
}
