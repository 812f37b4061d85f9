// Package scroll implements the physics behind an inertial scroll view: it
// turns drag gestures, wheel deltas and size changes into a normalized scroll
// position per axis, integrates flick velocity with friction, and applies
// clamp, bounce or infinite boundary behavior.
//
// A Controller never renders anything. It reads sizes from a Geometry, moves
// a Content holder and mirrors its state to optional Scrollbar sinks. It is
// not safe for concurrent use; all calls are expected to come from a single
// event loop.
package scroll

import (
	"log/slog"
	"math"
)

const (
	// changeEpsilon is the smallest scroll difference treated as a change.
	changeEpsilon = 1e-5
	// resizeEpsilon is the smallest content size difference treated as a resize.
	resizeEpsilon = 1e-4
	// restVelocity is the per-axis speed below which content is not moved.
	restVelocity = 1e-4
	// overshootEpsilon is the overshoot a settling bounce ignores.
	overshootEpsilon = 1e-3
	// contentEpsilon is the content size below which content counts as empty.
	contentEpsilon = 1e-3
	// bounceScale spreads bounce amounts in [0.1, 1] from snappy to slow.
	bounceScale = 50
	// tensionFactor scales the logarithmic resistance past a boundary.
	tensionFactor = 1
)

// Geometry supplies the pixel extents of the viewport and the content.
type Geometry interface {
	ViewportSize(o Orientation) float64
	ContentSize(o Orientation) float64
}

// Content holds the content-local position of the scrolled content.
type Content interface {
	LocalPosition() Vec2
	SetLocalPosition(pos Vec2)
}

// State is a snapshot of the scroll simulation.
type State struct {
	// Scroll is the normalized position per axis. It stays within
	// [0, MaxScrollValue] in clamp mode and may overshoot otherwise.
	Scroll Vec2
	// Velocity is the content displacement applied on the next tick.
	Velocity Vec2
}

type dragSession struct {
	active  bool
	start   Vec2
	prev    Vec2
	hasPrev bool
}

// Controller is the scroll simulation for one scroll view.
type Controller struct {
	geometry Geometry
	content  Content
	logger   *slog.Logger

	mode             BoundaryMode
	bounceAmount     float64
	friction         float64
	dragThreshold    float64
	useWheel         bool
	wheelSensitivity Vec2
	enabled          [2]bool
	visibility       [2]Visibility

	state State
	drag  dragSession

	wasDragged           bool
	contentInputDisabled bool

	prevContentSize    [2]float64
	hasPrevContentSize [2]bool

	scrollbars        [2]Scrollbar
	updatingScrollbar [2]bool

	changed      func(scroll Vec2)
	contentInput func(enabled bool)
}

// New returns a controller reading sizes from geometry and moving content.
// The controller starts with DefaultConfig. Call Resize once the geometry is
// known to position the content.
func New(geometry Geometry, content Content) *Controller {
	c := &Controller{
		geometry: geometry,
		content:  content,
	}
	c.ApplyConfig(DefaultConfig())
	return c
}

// SetLogger sets the logger for warnings of this controller.
func (c *Controller) SetLogger(l *slog.Logger) *Controller {
	c.logger = l
	return c
}

// SetMode sets the boundary mode.
func (c *Controller) SetMode(mode BoundaryMode) *Controller {
	c.mode = mode
	return c
}

// Mode returns the boundary mode.
func (c *Controller) Mode() BoundaryMode {
	return c.mode
}

// SetBounceAmount sets the spring stiffness of bounce mode. 0 snaps back
// immediately, larger values settle more slowly. Negative values are treated
// as 0.
func (c *Controller) SetBounceAmount(amount float64) *Controller {
	c.bounceAmount = finiteOr(math.Max(amount, 0), 0)
	return c
}

// SetFriction sets the fraction of velocity removed per tick, clamped to
// [0, 1].
func (c *Controller) SetFriction(friction float64) *Controller {
	c.friction = clamp(finiteOr(friction, 0), 0, 1)
	return c
}

// SetDragThreshold sets the distance in pixels a drag must cover before
// content input is disabled.
func (c *Controller) SetDragThreshold(threshold float64) *Controller {
	c.dragThreshold = finiteOr(math.Max(threshold, 0), 0)
	return c
}

// SetWheel enables or disables wheel scrolling and sets the per-axis wheel
// sensitivity.
func (c *Controller) SetWheel(enabled bool, sensitivity Vec2) *Controller {
	c.useWheel = enabled
	c.wheelSensitivity = Vec2{finiteOr(sensitivity.X, 0), finiteOr(sensitivity.Y, 0)}
	return c
}

// SetScrollingEnabled enables or disables scrolling along o.
func (c *Controller) SetScrollingEnabled(o Orientation, enabled bool) *Controller {
	c.enabled[o] = enabled
	c.syncScrollbarVisibility(o)
	return c
}

// ScrollingEnabled reports whether scrolling along o is enabled.
func (c *Controller) ScrollingEnabled(o Orientation) bool {
	return c.enabled[o]
}

// SetVisibility sets the scrollbar visibility policy for o.
func (c *Controller) SetVisibility(o Orientation, visibility Visibility) *Controller {
	c.visibility[o] = visibility
	c.syncScrollbarVisibility(o)
	return c
}

// SetChangedFunc sets a handler called once per event or tick that changed
// the scroll value of at least one axis.
func (c *Controller) SetChangedFunc(handler func(scroll Vec2)) *Controller {
	c.changed = handler
	return c
}

// SetContentInputFunc sets a handler called with false when a drag exceeds
// the drag threshold and with true when that drag ends. Hosts use it to stop
// content from reacting to clicks while it is being dragged.
func (c *Controller) SetContentInputFunc(handler func(enabled bool)) *Controller {
	c.contentInput = handler
	return c
}

// Scroll returns the normalized scroll position.
func (c *Controller) Scroll() Vec2 {
	return c.state.Scroll
}

// Velocity returns the current velocity in pixels per tick.
func (c *Controller) Velocity() Vec2 {
	return c.state.Velocity
}

// State returns a snapshot of scroll and velocity.
func (c *Controller) State() State {
	return c.state
}

// SetScroll scrolls to the given normalized position and stops any inertial
// motion.
func (c *Controller) SetScroll(scroll Vec2) {
	c.setScroll(scroll, maskBoth, true)
}

// Resize resynchronizes content position and scrollbars after the viewport
// or the content changed size. The apparent content position is preserved.
func (c *Controller) Resize() {
	for _, o := range orientations {
		c.syncContentPosition(o)
	}
	for _, o := range orientations {
		c.syncScrollbar(o)
	}
	for _, o := range orientations {
		c.syncScrollbarVisibility(o)
	}
}

// MaxScrollValue returns 1 when the content is larger than the viewport
// along o and 0 otherwise.
func (c *Controller) MaxScrollValue(o Orientation) float64 {
	if c.contentLargerThanViewport(o) {
		return 1
	}
	return 0
}

func (c *Controller) contentLargerThanViewport(o Orientation) bool {
	return c.geometry.ContentSize(o) > c.geometry.ViewportSize(o)
}

func (c *Controller) maxOffset(o Orientation) float64 {
	return c.maxOffsetFor(o, c.geometry.ContentSize(o))
}

// maxOffsetFor returns how far content of the given size may shift along o.
// The result is negative or zero.
func (c *Controller) maxOffsetFor(o Orientation, contentSize float64) float64 {
	viewportSize := c.geometry.ViewportSize(o)
	if contentSize < viewportSize {
		return -viewportSize
	}
	return viewportSize - contentSize
}

// setScroll applies candidate values to the axes in mask and fires the
// changed handler at most once.
func (c *Controller) setScroll(candidate Vec2, mask axisMask, resetVelocity bool) {
	if resetVelocity {
		c.state.Velocity = Vec2{}
	}
	changed := false
	for _, o := range orientations {
		if !mask.has(o) {
			continue
		}
		if c.updateAxis(o, candidate.Get(o)) {
			changed = true
		}
	}
	if changed && c.changed != nil {
		c.changed(c.state.Scroll)
	}
}

// updateAxis commits a candidate scroll value for o and reports whether the
// stored value moved. A candidate the resolver clamps or rejects back to the
// current value is no change.
func (c *Controller) updateAxis(o Orientation, candidate float64) bool {
	if !isFinite(candidate) {
		return false
	}
	current := c.state.Scroll.Get(o)
	// A drag always writes through since the pointer owns the content
	// position. A zero candidate always commits so content smaller than the
	// viewport still snaps to its origin.
	if math.Abs(candidate-current) <= changeEpsilon && !c.drag.active && candidate != 0 {
		return false
	}
	c.state.Scroll.Set(o, finiteOr(c.DetermineNewScrollValue(candidate, o), current))
	c.syncContentPosition(o)
	c.syncScrollbar(o)
	return math.Abs(c.state.Scroll.Get(o)-current) > changeEpsilon
}

func (c *Controller) setVelocity(o Orientation, v float64) {
	c.state.Velocity.Set(o, finiteOr(v, 0))
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func finiteOr(v, fallback float64) float64 {
	if isFinite(v) {
		return v
	}
	return fallback
}
