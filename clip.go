package flick

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// clipper is implemented by screens that only accept writes within a
// rectangle. Primitives with large content use it to skip invisible parts.
type clipper interface {
	ClipRect() (x, y, width, height int)
}

// clipRect returns the writable rectangle of screen.
func clipRect(screen tcell.Screen) (x, y, width, height int) {
	if c, ok := screen.(clipper); ok {
		return c.ClipRect()
	}
	width, height = screen.Size()
	return 0, 0, width, height
}

// clippedScreen drops all writes outside of a rectangle.
type clippedScreen struct {
	tcell.Screen
	clip rect
}

// newClippedScreen restricts screen to the given rectangle, intersected with
// the rectangle screen itself may already be clipped to.
func newClippedScreen(screen tcell.Screen, x, y, width, height int) *clippedScreen {
	px, py, pw, ph := clipRect(screen)
	x0, y0 := max(x, px), max(y, py)
	x1, y1 := min(x+width, px+pw), min(y+height, py+ph)
	return &clippedScreen{
		Screen: screen,
		clip:   rect{x0, y0, max(x1-x0, 0), max(y1-y0, 0)},
	}
}

func (s *clippedScreen) ClipRect() (int, int, int, int) {
	return s.clip.x, s.clip.y, s.clip.width, s.clip.height
}

func (s *clippedScreen) SetContent(x int, y int, primary rune, combining []rune, style tcell.Style) {
	if s.clip.contains(x, y) {
		s.Screen.SetContent(x, y, primary, combining, style)
	}
}

func (s *clippedScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	if !s.clip.contains(x, y) {
		return str, 0
	}
	return s.Screen.Put(x, y, str, style)
}

func (s *clippedScreen) PutStr(x int, y int, str string) {
	s.PutStrStyled(x, y, str, tcell.StyleDefault)
}

// PutStrStyled writes the graphemes of str that fit entirely inside the clip
// rectangle. A wide grapheme straddling an edge is skipped.
func (s *clippedScreen) PutStrStyled(x int, y int, str string, style tcell.Style) {
	if y < s.clip.y || y >= s.clip.y+s.clip.height {
		return
	}
	right := s.clip.x + s.clip.width
	state := -1
	for str != "" && x < right {
		var cluster string
		var width int
		cluster, str, width, state = uniseg.FirstGraphemeClusterInString(str, state)
		width = max(width, 1)
		if x >= s.clip.x && x+width <= right {
			s.Screen.Put(x, y, cluster, style)
		}
		x += width
	}
}

// ShowCursor hides the cursor when it falls outside the clip rectangle.
func (s *clippedScreen) ShowCursor(x int, y int) {
	if !s.clip.contains(x, y) {
		x, y = -1, -1
	}
	s.Screen.ShowCursor(x, y)
}
