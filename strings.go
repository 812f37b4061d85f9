package flick

import (
	"strings"

	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

// Segment is a styled piece of text.
type Segment struct {
	Text  string
	Style tcell.Style
}

// Line is a list of styled segments.
type Line []Segment

// Width returns the screen width of the line in cells.
func (l Line) Width() int {
	width := 0
	for _, segment := range l {
		width += uniseg.StringWidth(segment.Text)
	}
	return width
}

// LineBuilder collects styled writes into lines. Adjacent writes in the same
// style share a segment.
type LineBuilder struct {
	lines   []Line
	current Line
}

var writeReplacer = strings.NewReplacer("\t", "    ", "\r", "")

func NewLineBuilder() *LineBuilder {
	return &LineBuilder{}
}

// Write appends text in style, starting a new line at every newline. Tabs
// become four spaces and carriage returns are dropped.
func (b *LineBuilder) Write(text string, style tcell.Style) {
	for i, part := range strings.Split(writeReplacer.Replace(text), "\n") {
		if i > 0 {
			b.NewLine()
		}
		if part == "" {
			continue
		}
		if n := len(b.current); n > 0 && b.current[n-1].Style == style {
			b.current[n-1].Text += part
		} else {
			b.current = append(b.current, Segment{Text: part, Style: style})
		}
	}
}

// NewLine ends the current line, even when it is empty.
func (b *LineBuilder) NewLine() {
	b.lines = append(b.lines, append(Line{}, b.current...))
	b.current = b.current[:0]
}

// Finish ends a pending line and returns all lines. An empty builder yields a
// single empty line.
func (b *LineBuilder) Finish() []Line {
	if len(b.current) > 0 || len(b.lines) == 0 {
		b.NewLine()
	}
	return b.lines
}
