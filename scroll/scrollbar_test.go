package scroll

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// echoScrollbar reports every value change back to the controller, the way
// an interactive scrollbar widget does.
type echoScrollbar struct {
	c           *Controller
	orientation Orientation

	value   float64
	handle  float64
	visible bool
	echoes  int
}

func (b *echoScrollbar) SetValue(value float64) {
	if value == b.value {
		return
	}
	b.value = value
	b.echoes++
	b.c.ScrollbarValueChanged(b.orientation, value+0.25)
}

func (b *echoScrollbar) SetHandleSize(size float64) { b.handle = size }
func (b *echoScrollbar) SetVisible(visible bool)    { b.visible = visible }

func TestScrollbarSyncIsNotReentrant(t *testing.T) {
	c, _, _ := newTestController(t, Clamp)
	bar := &echoScrollbar{c: c, orientation: Horizontal}
	c.SetScrollbar(Horizontal, bar)

	changes := 0
	c.SetChangedFunc(func(Vec2) { changes++ })

	c.SetScroll(Vec2{0.5, 0})
	assert.Equal(t, 0.5, c.Scroll().X)
	assert.Equal(t, 0.5, bar.value)
	assert.Equal(t, 1, bar.echoes)
	assert.Equal(t, 1, changes)
	assert.False(t, c.updatingScrollbar[Horizontal])
}

func TestScrollbarSyncResolvesOncePerAxis(t *testing.T) {
	// An unknown mode logs one warning per resolver call.
	var buf bytes.Buffer
	c, _, _ := newTestController(t, Clamp)
	c.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	c.SetMode(BoundaryMode(9))
	bar := &echoScrollbar{c: c, orientation: Horizontal}
	c.SetScrollbar(Horizontal, bar)

	c.SetScroll(Vec2{0.5, 0})
	require.Equal(t, 1, bar.echoes)

	resolved := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "unknown scroll mode") && strings.Contains(line, "orientation=horizontal") {
			resolved++
		}
	}
	assert.Equal(t, 1, resolved)
	assert.Equal(t, 0.5, c.Scroll().X)
}

func TestScrollbarValueChangedScrolls(t *testing.T) {
	c, _, content := newTestController(t, Clamp)
	bar := &echoScrollbar{c: c, orientation: Vertical}
	c.SetScrollbar(Vertical, bar)
	c.state.Velocity = Vec2{3, 4}

	c.ScrollbarValueChanged(Vertical, 0.8)
	assert.Equal(t, Vec2{0, 0.8}, c.Scroll())
	assert.Equal(t, 0.8, bar.value)
	assert.InDelta(t, 640, content.pos.Y, 1e-9)
	assert.Equal(t, Vec2{}, c.Velocity())
}

func TestHandleSize(t *testing.T) {
	c, g, _ := newTestController(t, Bounce)
	assert.InDelta(t, 0.2, c.HandleSize(Horizontal), 1e-12)

	c.state.Scroll.X = 1.5
	assert.InDelta(t, 0.2/1.5, c.HandleSize(Horizontal), 1e-12)

	g.content.Y = 100
	assert.Equal(t, 1.0, c.HandleSize(Vertical))
}

func TestScrollbarVisibility(t *testing.T) {
	c, g, _ := newTestController(t, Clamp)
	bar := &echoScrollbar{c: c, orientation: Horizontal}
	c.SetScrollbar(Horizontal, bar)
	assert.True(t, bar.visible)

	g.content.X = 100
	c.Resize()
	assert.False(t, bar.visible)

	c.SetVisibility(Horizontal, ShowAlways)
	assert.True(t, bar.visible)

	c.SetScrollingEnabled(Horizontal, false)
	assert.False(t, bar.visible)
}

func TestUnknownVisibilityShowsScrollbar(t *testing.T) {
	var buf bytes.Buffer
	c, g, _ := newTestController(t, Clamp)
	c.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	g.content.X = 100

	c.SetVisibility(Horizontal, Visibility(7))
	require.True(t, c.ScrollbarVisible(Horizontal))
	assert.Contains(t, buf.String(), "unknown scrollbar visibility")
}

func TestTickSyncsVisibility(t *testing.T) {
	c, g, _ := newTestController(t, Clamp)
	bar := &echoScrollbar{c: c, orientation: Vertical}
	c.SetScrollbar(Vertical, bar)
	require.True(t, bar.visible)

	g.content.Y = 50
	c.Tick()
	assert.False(t, bar.visible)
}
