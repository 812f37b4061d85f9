package flick

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type testCell struct {
	text  string
	style tcell.Style
}

// testScreen records cells written through Put. Methods not overridden here
// panic on the nil embedded screen, which keeps draws honest about what they
// touch.
type testScreen struct {
	tcell.Screen
	width  int
	height int
	cells  []testCell
}

func newTestScreen(width, height int) *testScreen {
	return &testScreen{
		width:  width,
		height: height,
		cells:  make([]testCell, width*height),
	}
}

func (s *testScreen) Size() (int, int) {
	return s.width, s.height
}

func (s *testScreen) Put(x int, y int, str string, style tcell.Style) (string, int) {
	cluster, remain, width, _ := uniseg.FirstGraphemeClusterInString(str, -1)
	if cluster == "" {
		return "", 0
	}
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return remain, width
	}
	s.cells[y*s.width+x] = testCell{text: cluster, style: style}
	// Wide graphemes cover the next cell.
	for i := 1; i < width && x+i < s.width; i++ {
		s.cells[y*s.width+x+i] = testCell{style: style}
	}
	return remain, width
}

func (s *testScreen) Get(x, y int) (string, tcell.Style, int) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return "", tcell.StyleDefault, 1
	}
	c := s.cells[y*s.width+x]
	return c.text, c.style, max(uniseg.StringWidth(c.text), 1)
}

func (s *testScreen) text(x, y int) string {
	str, _, _ := s.Get(x, y)
	return str
}

// row returns the text of row y with unwritten cells as spaces.
func (s *testScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < s.width; x++ {
		c := s.cells[y*s.width+x]
		switch {
		case c.text != "":
			b.WriteString(c.text)
		case x > 0 && uniseg.StringWidth(s.cells[y*s.width+x-1].text) > 1:
		default:
			b.WriteByte(' ')
		}
	}
	return b.String()
}
