package flick

import (
	"math"
	"testing"

	"github.com/ayn2op/flick/scroll"
	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mouseAt(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone)
}

func TestComputeScrollMetrics(t *testing.T) {
	tests := []struct {
		name   string
		handle float64
		value  float64
		want   scrollMetrics
	}{
		{"start", 0.25, 0, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 20, thumbStart: 0}},
		{"middle", 0.25, 0.5, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 20, thumbStart: 30}},
		{"end", 0.25, 1, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 20, thumbStart: 60}},
		{"overshoot start", 0.2, -0.3, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 16, thumbStart: 0}},
		{"overshoot end", 0.2, 1.4, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 16, thumbStart: 64}},
		{"minimum thumb", 0.01, 0, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: subcell, thumbStart: 0}},
		{"everything visible", 1, 0.7, scrollMetrics{trackCells: 10, trackLen: 80, thumbLen: 80, thumbStart: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, computeScrollMetrics(10, tt.handle, tt.value))
		})
	}
	assert.Equal(t, scrollMetrics{}, computeScrollMetrics(0, 0.5, 0.5))
}

func TestScrollBarSetValueReportsChanges(t *testing.T) {
	bar := NewScrollBar(scroll.Vertical)
	var reported []float64
	bar.SetChangedFunc(func(value float64) {
		reported = append(reported, value)
	})

	bar.SetValue(0.5)
	bar.SetValue(0.5)
	bar.SetValue(math.NaN())
	bar.SetValue(-0.1)
	assert.Equal(t, []float64{0.5, -0.1}, reported)
	assert.Equal(t, -0.1, bar.Value())
}

func TestScrollBarHandleSizeIsClamped(t *testing.T) {
	bar := NewScrollBar(scroll.Horizontal)
	bar.SetHandleSize(2)
	assert.Equal(t, 1.0, bar.HandleSize())
	bar.SetHandleSize(-1)
	assert.Equal(t, 0.0, bar.HandleSize())
	bar.SetHandleSize(math.NaN())
	assert.Equal(t, 0.0, bar.HandleSize())
}

func TestScrollBarLengths(t *testing.T) {
	lengths := ScrollLengths{ContentLen: 100, ViewportLen: 25}
	bar := NewVerticalScrollBar(lengths)
	assert.Equal(t, 0.25, bar.HandleSize())
	assert.True(t, bar.Visible())

	bar.SetOffset(75, lengths)
	assert.Equal(t, 1.0, bar.Value())
	bar.SetOffset(15, lengths)
	assert.Equal(t, 0.2, bar.Value())

	bar.SetLengths(ScrollLengths{ContentLen: 10, ViewportLen: 20})
	assert.Equal(t, 1.0, bar.HandleSize())
	assert.False(t, bar.Visible())
}

func TestScrollBarDrawVertical(t *testing.T) {
	screen := newTestScreen(1, 4)
	bar := NewScrollBar(scroll.Vertical)
	bar.SetRect(0, 0, 1, 4)
	bar.SetHandleSize(0.5)

	bar.Draw(screen)
	assert.Equal(t, []string{"█", "█", " ", " "}, column(screen, 0))

	bar.SetValue(0.25)
	bar.Draw(screen)
	assert.Equal(t, []string{"▄", "█", "▀", " "}, column(screen, 0))
}

func TestScrollBarDrawHorizontal(t *testing.T) {
	screen := newTestScreen(4, 1)
	bar := NewScrollBar(scroll.Horizontal)
	bar.SetRect(0, 0, 4, 1)
	bar.SetHandleSize(0.25)
	bar.SetValue(0.5)

	bar.Draw(screen)
	assert.Equal(t, " ▐▌ ", screen.row(0))
}

func TestScrollBarDrawArrows(t *testing.T) {
	screen := newTestScreen(5, 1)
	bar := NewScrollBar(scroll.Horizontal).SetArrows(ScrollBarArrowsBoth)
	bar.SetRect(0, 0, 5, 1)
	bar.SetHandleSize(1)

	bar.Draw(screen)
	assert.Equal(t, "◀███▶", screen.row(0))
}

func TestHiddenScrollBarDrawsNothing(t *testing.T) {
	screen := newTestScreen(1, 3)
	bar := NewScrollBar(scroll.Vertical)
	bar.SetRect(0, 0, 1, 3)
	bar.SetVisible(false)

	bar.Draw(screen)
	assert.Equal(t, []string{"", "", ""}, column(screen, 0))

	capture, cmd := bar.MouseHandler(MouseLeftDown, mouseAt(0, 1))
	assert.Nil(t, capture)
	assert.Nil(t, cmd)
}

func TestScrollBarTrackClickPages(t *testing.T) {
	bar := NewScrollBar(scroll.Vertical)
	bar.SetRect(0, 0, 1, 10)
	bar.SetHandleSize(0.2)

	_, cmd := bar.MouseHandler(MouseLeftDown, mouseAt(0, 5))
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.InDelta(t, 0.25, bar.Value(), 1e-12)

	bar.SetValue(0.9)
	bar.MouseHandler(MouseLeftDown, mouseAt(0, 9))
	assert.Equal(t, 1.0, bar.Value())

	bar.MouseHandler(MouseLeftDown, mouseAt(0, 0))
	assert.InDelta(t, 0.75, bar.Value(), 1e-12)
}

func TestScrollBarTrackClickJumps(t *testing.T) {
	bar := NewScrollBar(scroll.Vertical).SetTrackClickBehavior(TrackClickBehaviorJumpToClick)
	bar.SetRect(0, 0, 1, 10)
	bar.SetHandleSize(0.2)

	bar.MouseHandler(MouseLeftDown, mouseAt(0, 5))
	assert.InDelta(t, 36.0/64.0, bar.Value(), 1e-12)
}

func TestScrollBarArrowClicks(t *testing.T) {
	bar := NewScrollBar(scroll.Vertical).SetArrows(ScrollBarArrowsBoth).SetStep(0.1)
	bar.SetRect(0, 0, 1, 10)
	bar.SetHandleSize(0.2)

	bar.MouseHandler(MouseLeftDown, mouseAt(0, 9))
	assert.InDelta(t, 0.1, bar.Value(), 1e-12)
	bar.MouseHandler(MouseLeftDown, mouseAt(0, 0))
	bar.MouseHandler(MouseLeftDown, mouseAt(0, 0))
	assert.Equal(t, 0.0, bar.Value())
}

func TestScrollBarThumbDrag(t *testing.T) {
	bar := NewScrollBar(scroll.Vertical)
	bar.SetRect(0, 0, 1, 10)
	bar.SetHandleSize(0.2)
	var reported float64
	bar.SetChangedFunc(func(value float64) { reported = value })

	capture, _ := bar.MouseHandler(MouseLeftDown, mouseAt(0, 0))
	require.Equal(t, bar, capture)

	capture, cmd := bar.MouseHandler(MouseMove, mouseAt(0, 4))
	assert.Equal(t, bar, capture)
	assert.Equal(t, RedrawCommand{}, cmd)
	assert.InDelta(t, 0.5, reported, 1e-12)

	// The pointer may leave the bar while it is captured.
	bar.MouseHandler(MouseMove, mouseAt(7, 30))
	assert.Equal(t, 1.0, reported)

	capture, _ = bar.MouseHandler(MouseLeftUp, mouseAt(7, 30))
	assert.Nil(t, capture)
}

func column(screen *testScreen, x int) []string {
	out := make([]string, screen.height)
	for y := range out {
		out[y] = screen.text(x, y)
	}
	return out
}
