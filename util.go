package flick

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type Alignment int

const (
	AlignmentLeft Alignment = iota
	AlignmentCenter
	AlignmentRight
)

// Print prints text onto the screen into the box at (x,y,maxWidth,1), not
// exceeding that box. Text that does not fit is cut off at a grapheme
// boundary according to the alignment.
//
// Returns the screen width actually used and whether the text was cut.
func Print(screen tcell.Screen, text string, x, y, maxWidth int, alignment Alignment, style tcell.Style) (width int, cut bool) {
	if maxWidth <= 0 || text == "" {
		return 0, false
	}

	textWidth := uniseg.StringWidth(text)
	skip := 0
	switch alignment {
	case AlignmentRight:
		if textWidth > maxWidth {
			skip = textWidth - maxWidth
		} else {
			x += maxWidth - textWidth
		}
	case AlignmentCenter:
		if textWidth > maxWidth {
			skip = (textWidth - maxWidth) / 2
		} else {
			x += (maxWidth - textWidth) / 2
		}
	}

	end := x + maxWidth
	state := -1
	for text != "" {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if skip > 0 {
			skip -= w
			cut = true
			continue
		}
		if x+w > end {
			return width, true
		}
		if w > 0 {
			screen.Put(x, y, cluster, style)
		}
		x += w
		width += w
	}
	return width, cut
}

// PrintSimple prints text in the primary text color at the given position.
func PrintSimple(screen tcell.Screen, text string, x, y int) {
	w, _ := screen.Size()
	Print(screen, text, x, y, w-x, AlignmentLeft, tcell.StyleDefault.Foreground(Styles.PrimaryTextColor))
}
