package flick

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// TextContent is a block of styled, unwrapped lines to be hosted by a
// ScrollView. Only rows inside the clip rectangle of the target screen are
// drawn.
type TextContent struct {
	*Box

	lines []Line
	width int

	selected func(row int)
}

// NewTextContent returns an empty text block.
func NewTextContent() *TextContent {
	return &TextContent{Box: NewBox()}
}

// SetText replaces the content with text in a single style.
func (t *TextContent) SetText(text string, style tcell.Style) *TextContent {
	b := NewLineBuilder()
	b.Write(text, style)
	return t.SetLines(b.Finish())
}

// SetLines replaces the content with lines.
func (t *TextContent) SetLines(lines []Line) *TextContent {
	t.lines = lines
	t.width = 0
	for _, line := range lines {
		t.width = max(t.width, line.Width())
	}
	return t
}

// Lines returns the content lines.
func (t *TextContent) Lines() []Line {
	return t.lines
}

// Size returns the widest line width and the line count.
func (t *TextContent) Size() (width, height int) {
	return t.width, len(t.lines)
}

// SetSelectedFunc sets a handler called with the row index of a left click.
func (t *TextContent) SetSelectedFunc(handler func(row int)) *TextContent {
	t.selected = handler
	return t
}

// Draw draws the visible rows.
func (t *TextContent) Draw(screen tcell.Screen) {
	x, y, _, _ := t.GetRect()
	clipX, clipY, clipWidth, clipHeight := clipRect(screen)
	right := clipX + clipWidth

	first := max(clipY-y, 0)
	last := min(clipY+clipHeight-y, len(t.lines))
	for row := first; row < last; row++ {
		col := x
		for _, segment := range t.lines[row] {
			if col >= right {
				break
			}
			Print(screen, segment.Text, col, y+row, right-col, AlignmentLeft, segment.Style)
			col += uniseg.StringWidth(segment.Text)
		}
	}
}

// MouseHandler reports left clicks on a row to the selected func.
func (t *TextContent) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()
	if action != MouseLeftClick || !t.InRect(x, y) {
		return nil, nil
	}
	_, top, _, _ := t.GetRect()
	if t.selected != nil {
		t.selected(y - top)
	}
	return nil, RedrawCommand{}
}

var _ ScrollContent = &TextContent{}
