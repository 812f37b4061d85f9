package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDragFlick(t *testing.T) {
	c, _, content := newTestController(t, Clamp)
	c.SetFriction(0.05)

	c.DragStart()
	require.True(t, c.Dragging())

	c.DragMove(Vec2{-10, 0})
	assert.Equal(t, Vec2{}, c.Velocity(), "first move has no previous position")
	c.DragMove(Vec2{-30, 0})
	assert.Equal(t, Vec2{-20, 0}, c.Velocity())
	c.DragMove(Vec2{-60, 0})
	assert.Equal(t, Vec2{-30, 0}, c.Velocity())
	assert.InDelta(t, 0.075, c.Scroll().X, 1e-12)
	assert.InDelta(t, -60, content.pos.X, 1e-9)

	c.DragEnd()
	assert.False(t, c.Dragging())
	assert.True(t, c.WasDragged())

	c.Tick()
	assert.InDelta(t, -90, content.pos.X, 1e-9)
	assert.InDelta(t, 90.0/800.0, c.Scroll().X, 1e-12)
	assert.InDelta(t, -28.5, c.Velocity().X, 1e-12)
}

func TestTickIsNoopWhileDragging(t *testing.T) {
	c, _, content := newTestController(t, Clamp)
	c.DragStart()
	c.DragMove(Vec2{-10, 0})
	c.DragMove(Vec2{-40, 0})
	before := content.pos

	c.Tick()
	assert.Equal(t, before, content.pos)
	assert.Equal(t, Vec2{-30, 0}, c.Velocity())
	assert.False(t, c.Moving())
}

func TestVerticalDragScrollsDown(t *testing.T) {
	c, _, _ := newTestController(t, Clamp)
	c.DragStart()
	c.DragMove(Vec2{0, 80})
	assert.InDelta(t, 0.1, c.Scroll().Y, 1e-12)
}

func TestDragPastBoundaryMeetsResistance(t *testing.T) {
	c, _, content := newTestController(t, Bounce)
	c.DragStart()
	c.DragMove(Vec2{50, 0})
	assert.Less(t, c.Scroll().X, 0.0)
	assert.Greater(t, content.pos.X, 0.0)
	assert.Less(t, content.pos.X, 50.0)
	assert.Less(t, c.HandleSize(Horizontal), 0.2)

	c.DragEnd()
	for i := 0; i < 200 && c.Moving(); i++ {
		c.Tick()
	}
	assert.InDelta(t, 0, c.Scroll().X, 0.01)
}

func TestDragInClampModeStopsAtBoundary(t *testing.T) {
	c, _, content := newTestController(t, Clamp)
	c.DragStart()
	c.DragMove(Vec2{50, 0})
	assert.Equal(t, 0.0, c.Scroll().X)
	assert.Equal(t, 0.0, content.pos.X)
}

func TestDragThresholdTogglesContentInput(t *testing.T) {
	c, _, _ := newTestController(t, Clamp)
	var events []bool
	c.SetDragThreshold(10).SetContentInputFunc(func(enabled bool) {
		events = append(events, enabled)
	})

	c.DragStart()
	c.DragMove(Vec2{-5, 0})
	assert.Empty(t, events)
	c.DragMove(Vec2{-15, 0})
	assert.Equal(t, []bool{false}, events)
	c.DragMove(Vec2{-25, 0})
	assert.Equal(t, []bool{false}, events)
	c.DragEnd()
	assert.Equal(t, []bool{false, true}, events)

	c.DragStart()
	c.DragEnd()
	assert.Equal(t, []bool{false, true}, events)
}

func TestDragMoveWithoutStartIsIgnored(t *testing.T) {
	c, _, content := newTestController(t, Clamp)
	c.DragMove(Vec2{-100, 0})
	assert.Equal(t, Vec2{}, c.Scroll())
	assert.Equal(t, 0.0, content.pos.X)
	assert.False(t, c.WasDragged())
}

func TestWheel(t *testing.T) {
	c, _, _ := newTestController(t, Bounce)
	c.Wheel(0, 100)
	assert.InDelta(t, 0.1, c.Scroll().Y, 1e-12)

	c.SetWheel(true, Vec2{1, 2})
	c.Wheel(50, 100)
	assert.InDelta(t, 0.05, c.Scroll().X, 1e-12)
	assert.InDelta(t, 0.3, c.Scroll().Y, 1e-12)

	c.Wheel(0, -5000)
	assert.Equal(t, 0.0, c.Scroll().Y, "wheel clamps even in bounce mode")
	assert.Equal(t, Vec2{}, c.Velocity())

	c.SetWheel(false, Vec2{1, 1})
	c.Wheel(0, 500)
	assert.Equal(t, 0.0, c.Scroll().Y)
}

func TestWheelStopsFlick(t *testing.T) {
	c, _, _ := newTestController(t, Clamp)
	c.DragStart()
	c.DragMove(Vec2{0, 10})
	c.DragMove(Vec2{0, 40})
	c.DragEnd()
	require.NotZero(t, c.Velocity().Y)

	c.Wheel(0, 10)
	assert.Equal(t, Vec2{}, c.Velocity())
}

func TestScrollBy(t *testing.T) {
	c, _, content := newTestController(t, Bounce)
	c.FlingBy(Vec2{0, 100})

	c.ScrollBy(Vec2{0, 80})
	assert.InDelta(t, 0.1, c.Scroll().Y, 1e-12)
	assert.InDelta(t, 80, content.pos.Y, 1e-9)
	assert.Equal(t, Vec2{}, c.Velocity())

	c.ScrollBy(Vec2{-1000, -1000})
	assert.Equal(t, Vec2{}, c.Scroll(), "keyboard scrolling never overshoots")
}

func TestFlingBy(t *testing.T) {
	c, _, content := newTestController(t, Clamp)
	c.SetFriction(0.05)

	c.FlingBy(Vec2{0, 400})
	assert.InDelta(t, 20, c.Velocity().Y, 1e-12)

	ticks := 0
	for c.Moving() && ticks < 1000 {
		c.Tick()
		ticks++
	}
	assert.Less(t, ticks, 1000)
	assert.InDelta(t, 0.5, c.Scroll().Y, 1e-3)
	assert.InDelta(t, 400, content.pos.Y, 1)
}

func TestFlingByWithoutFrictionJumps(t *testing.T) {
	c, _, _ := newTestController(t, Clamp)
	c.SetFriction(0)

	c.FlingBy(Vec2{400, 0})
	assert.InDelta(t, 0.5, c.Scroll().X, 1e-12)
	assert.Equal(t, Vec2{}, c.Velocity())
}
