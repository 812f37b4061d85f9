package flick

import (
	"github.com/gdamore/tcell/v3"
	"github.com/rivo/uniseg"
)

type rect struct {
	x, y, width, height int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.width && y >= r.y && y < r.y+r.height
}

// Box is the base of the other primitives. It fills its rectangle with a
// background color and may draw a border, a title in the top row and a footer
// in the bottom row. Content goes into the inner rectangle.
type Box struct {
	rect

	background tcell.Color

	borders     Borders
	borderSet   BorderSet
	borderStyle tcell.Style

	title          string
	titleStyle     tcell.Style
	titleAlignment Alignment

	footer      string
	footerStyle tcell.Style

	hasFocus bool
}

// NewBox returns a Box without a border.
func NewBox() *Box {
	return &Box{
		rect:       rect{width: 15, height: 10},
		background: Styles.PrimitiveBackgroundColor,

		borderStyle: tcell.StyleDefault.Foreground(Styles.BorderColor).Background(Styles.PrimitiveBackgroundColor),
		borderSet:   BorderSetPlain(),

		titleStyle:     tcell.StyleDefault.Foreground(Styles.TitleColor),
		titleAlignment: AlignmentCenter,
		footerStyle:    tcell.StyleDefault.Foreground(Styles.SecondaryTextColor),
	}
}

// GetRect returns the position and size of the box.
func (b *Box) GetRect() (int, int, int, int) {
	return b.x, b.y, b.width, b.height
}

// SetRect moves and resizes the box.
func (b *Box) SetRect(x, y, width, height int) {
	b.rect = rect{x, y, width, height}
}

// GetInnerRect returns the rectangle left for content once the border, the
// title and the footer are taken away. Width and height are never negative.
func (b *Box) GetInnerRect() (int, int, int, int) {
	inner := b.inner()
	return inner.x, inner.y, inner.width, inner.height
}

func (b *Box) inner() rect {
	r := b.rect
	if b.title != "" || b.borders.Has(BordersTop) {
		r.y++
		r.height--
	}
	if b.footer != "" || b.borders.Has(BordersBottom) {
		r.height--
	}
	if b.borders.Has(BordersLeft) {
		r.x++
		r.width--
	}
	if b.borders.Has(BordersRight) {
		r.width--
	}
	r.width, r.height = max(r.width, 0), max(r.height, 0)
	return r
}

// InRect reports whether the cell is inside the box.
func (b *Box) InRect(x, y int) bool {
	return b.contains(x, y)
}

// InInnerRect reports whether the cell is inside the inner rectangle.
func (b *Box) InInnerRect(x, y int) bool {
	return b.inner().contains(x, y)
}

// InputHandler ignores key events.
func (b *Box) InputHandler(event *tcell.EventKey) Command {
	return nil
}

// PasteHandler ignores pasted text.
func (b *Box) PasteHandler(text string) Command {
	return nil
}

// MouseHandler focuses the box when the left button is pressed inside it.
func (b *Box) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if action == MouseLeftDown && b.InRect(event.Position()) {
		return nil, SetFocusCommand{Target: b}
	}
	return nil, nil
}

func (b *Box) SetBackgroundColor(color tcell.Color) *Box {
	b.background = color
	return b
}

func (b *Box) SetBorders(flag Borders) *Box {
	b.borders = flag
	return b
}

func (b *Box) SetBorderSet(borderSet BorderSet) *Box {
	b.borderSet = borderSet
	return b
}

func (b *Box) SetBorderStyle(style tcell.Style) *Box {
	b.borderStyle = style
	return b
}

// SetTitle sets the text drawn centered in the top row.
func (b *Box) SetTitle(title string) *Box {
	b.title = title
	return b
}

func (b *Box) GetTitle() string {
	return b.title
}

// SetFooter sets the text drawn left-aligned in the bottom row.
func (b *Box) SetFooter(footer string) *Box {
	b.footer = footer
	return b
}

// Draw clears the box and draws its border, title and footer.
func (b *Box) Draw(screen tcell.Screen) {
	if b.width <= 0 || b.height <= 0 {
		return
	}

	fill := tcell.StyleDefault.Background(b.background)
	for y := b.y; y < b.y+b.height; y++ {
		for x := b.x; x < b.x+b.width; x++ {
			screen.Put(x, y, " ", fill)
		}
	}

	if b.borders != BordersNone && b.width >= 2 && b.height >= 2 {
		b.drawBorders(screen)
	}
	if b.width >= 4 {
		if b.title != "" {
			b.drawLabel(screen, b.title, b.y, b.titleAlignment, b.titleStyle)
		}
		if b.footer != "" {
			b.drawLabel(screen, b.footer, b.y+b.height-1, AlignmentLeft, b.footerStyle)
		}
	}
}

func (b *Box) drawBorders(screen tcell.Screen) {
	right, bottom := b.x+b.width-1, b.y+b.height-1
	set, style := b.borderSet, b.borderStyle

	edges := []struct {
		side   Borders
		glyph  string
		from   int
		to     int
		fixed  int
		across bool // the edge runs horizontally
	}{
		{BordersTop, set.Top, b.x + 1, right, b.y, true},
		{BordersBottom, set.Bottom, b.x + 1, right, bottom, true},
		{BordersLeft, set.Left, b.y + 1, bottom, b.x, false},
		{BordersRight, set.Right, b.y + 1, bottom, right, false},
	}
	for _, e := range edges {
		if !b.borders.Has(e.side) {
			continue
		}
		for i := e.from; i < e.to; i++ {
			if e.across {
				screen.Put(i, e.fixed, e.glyph, style)
			} else {
				screen.Put(e.fixed, i, e.glyph, style)
			}
		}
	}

	corners := []struct {
		sides Borders
		glyph string
		x, y  int
	}{
		{BordersTop | BordersLeft, set.TopLeft, b.x, b.y},
		{BordersTop | BordersRight, set.TopRight, right, b.y},
		{BordersBottom | BordersLeft, set.BottomLeft, b.x, bottom},
		{BordersBottom | BordersRight, set.BottomRight, right, bottom},
	}
	for _, c := range corners {
		if b.borders.Has(c.sides) {
			screen.Put(c.x, c.y, c.glyph, style)
		}
	}
}

// drawLabel prints a title or footer on row y, replacing the last visible
// cell with an ellipsis when the text is cut.
func (b *Box) drawLabel(screen tcell.Screen, text string, y int, alignment Alignment, style tcell.Style) {
	maxWidth := b.width - 2
	if uniseg.StringWidth(text) <= maxWidth {
		Print(screen, text, b.x+1, y, maxWidth, alignment, style)
		return
	}
	if alignment == AlignmentRight {
		Print(screen, text, b.x+2, y, maxWidth-1, AlignmentRight, style)
		screen.Put(b.x+1, y, horizontalEllipsis, style)
		return
	}
	Print(screen, text, b.x+1, y, maxWidth-1, AlignmentLeft, style)
	screen.Put(b.x+b.width-2, y, horizontalEllipsis, style)
}

// Focus is called when this primitive directly receives focus.
func (b *Box) Focus(delegate func(p Primitive)) {
	b.hasFocus = true
}

// Blur is called when this primitive directly loses focus.
func (b *Box) Blur() {
	b.hasFocus = false
}

// HasFocus returns whether or not this primitive has focus.
func (b *Box) HasFocus() bool {
	return b.hasFocus
}
