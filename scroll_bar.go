package flick

import (
	"math"

	"github.com/ayn2op/flick/scroll"
	"github.com/gdamore/tcell/v3"
)

// ScrollBarArrows controls which endcaps are rendered.
type ScrollBarArrows uint8

const (
	ScrollBarArrowsNone ScrollBarArrows = iota
	ScrollBarArrowsStart
	ScrollBarArrowsEnd
	ScrollBarArrowsBoth
)

func (a ScrollBarArrows) hasStart() bool {
	return a == ScrollBarArrowsStart || a == ScrollBarArrowsBoth
}

func (a ScrollBarArrows) hasEnd() bool {
	return a == ScrollBarArrowsEnd || a == ScrollBarArrowsBoth
}

// TrackClickBehavior configures behavior when clicking scrollBar track cells
// outside the thumb.
type TrackClickBehavior uint8

const (
	TrackClickBehaviorPage TrackClickBehavior = iota
	TrackClickBehaviorJumpToClick
)

// ScrollLengths bundles content and viewport lengths in logical units.
type ScrollLengths struct {
	ContentLen  int
	ViewportLen int
}

const subcell = 8

// GlyphSet defines track, arrow, and fractional thumb glyphs for both
// orientations.
type GlyphSet struct {
	TrackVertical   string
	TrackHorizontal string

	ArrowVerticalStart   string
	ArrowVerticalEnd     string
	ArrowHorizontalStart string
	ArrowHorizontalEnd   string

	// Indexed by fill length in eighths minus one.
	ThumbVerticalLower   [8]string
	ThumbVerticalUpper   [8]string
	ThumbHorizontalLeft  [8]string
	ThumbHorizontalRight [8]string
}

// MinimalGlyphSet returns the minimal glyph set (space track, fractional thumbs).
func MinimalGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.TrackVertical = " "
	g.TrackHorizontal = " "
	return g
}

// LegacyComputingGlyphSet returns legacy-computing symbols for full 1/8 fractional fidelity.
func LegacyComputingGlyphSet() GlyphSet {
	return GlyphSet{
		TrackVertical:   "│",
		TrackHorizontal: "─",

		ArrowVerticalStart:   "▲",
		ArrowVerticalEnd:     "▼",
		ArrowHorizontalStart: "◀",
		ArrowHorizontalEnd:   "▶",

		ThumbVerticalLower:   [8]string{"▁", "▂", "▃", "▄", "▅", "▆", "▇", "█"},
		ThumbVerticalUpper:   [8]string{"▔", "🮂", "🮃", "▀", "🮄", "🮅", "🮆", "█"},
		ThumbHorizontalLeft:  [8]string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"},
		ThumbHorizontalRight: [8]string{"▕", "🮇", "🮈", "▐", "🮉", "🮊", "🮋", "█"},
	}
}

// UnicodeGlyphSet returns a standard-unicode-only approximation set.
func UnicodeGlyphSet() GlyphSet {
	g := LegacyComputingGlyphSet()
	g.ThumbVerticalUpper = [8]string{"▔", "▔", "▀", "▀", "▀", "▀", "█", "█"}
	g.ThumbHorizontalRight = [8]string{"▕", "▕", "▐", "▐", "▐", "▐", "█", "█"}
	return g
}

// ScrollBar renders a scrollbar along one axis. It displays a normalized
// value and handle size and reports value changes made by the user through
// the changed func. A ScrollBar satisfies scroll.Scrollbar.
type ScrollBar struct {
	*Box

	orientation scroll.Orientation
	value       float64
	handleSize  float64
	visible     bool

	trackStyle tcell.Style
	thumbStyle tcell.Style
	arrowStyle tcell.Style

	glyphSet GlyphSet
	arrows   ScrollBarArrows

	trackClickBehavior TrackClickBehavior
	step               float64
	showTrack          bool

	// Subcell offset of the pointer inside the thumb while dragging it.
	grab     int
	dragging bool

	changed func(value float64)
}

// NewScrollBar returns a new scrollBar along orientation.
func NewScrollBar(orientation scroll.Orientation) *ScrollBar {
	return &ScrollBar{
		Box:                NewBox(),
		orientation:        orientation,
		handleSize:         1,
		visible:            true,
		trackStyle:         tcell.StyleDefault.Foreground(Styles.ScrollBarTrackColor),
		thumbStyle:         tcell.StyleDefault.Foreground(Styles.ScrollBarThumbColor),
		arrowStyle:         tcell.StyleDefault.Foreground(Styles.ScrollBarTrackColor),
		glyphSet:           MinimalGlyphSet(),
		trackClickBehavior: TrackClickBehaviorPage,
		step:               0.1,
		showTrack:          true,
	}
}

// NewVerticalScrollBar creates a vertical scrollBar from lengths.
func NewVerticalScrollBar(lengths ScrollLengths) *ScrollBar {
	return NewScrollBar(scroll.Vertical).SetLengths(lengths)
}

// Orientation returns the axis of the scrollBar.
func (s *ScrollBar) Orientation() scroll.Orientation {
	return s.orientation
}

// SetValue sets the normalized thumb position and calls the changed func if
// the value differs. Values outside [0, 1] pin the thumb to the track ends.
func (s *ScrollBar) SetValue(value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value == s.value {
		return
	}
	s.value = value
	if s.changed != nil {
		s.changed(value)
	}
}

// Value returns the normalized thumb position.
func (s *ScrollBar) Value() float64 {
	return s.value
}

// SetHandleSize sets the thumb length as a fraction of the track.
func (s *ScrollBar) SetHandleSize(size float64) {
	if math.IsNaN(size) {
		return
	}
	s.handleSize = min(max(size, 0), 1)
}

// HandleSize returns the thumb length as a fraction of the track.
func (s *ScrollBar) HandleSize() float64 {
	return s.handleSize
}

// SetVisible shows or hides the scrollBar.
func (s *ScrollBar) SetVisible(visible bool) {
	s.visible = visible
}

// Visible reports whether the scrollBar is drawn.
func (s *ScrollBar) Visible() bool {
	return s.visible
}

// SetChangedFunc sets a handler called with the new value whenever the value
// changes.
func (s *ScrollBar) SetChangedFunc(handler func(value float64)) *ScrollBar {
	s.changed = handler
	return s
}

// SetLengths derives the handle size from content and viewport lengths. The
// scrollBar hides itself when everything fits.
func (s *ScrollBar) SetLengths(lengths ScrollLengths) *ScrollBar {
	contentLen := max(lengths.ContentLen, 1)
	viewportLen := max(lengths.ViewportLen, 0)
	s.SetHandleSize(float64(viewportLen) / float64(contentLen))
	s.SetVisible(lengths.ContentLen > viewportLen)
	return s
}

// SetOffset sets the value from a logical offset within lengths.
func (s *ScrollBar) SetOffset(offset int, lengths ScrollLengths) *ScrollBar {
	maxOffset := lengths.ContentLen - lengths.ViewportLen
	if maxOffset <= 0 {
		s.SetValue(0)
		return s
	}
	s.SetValue(float64(min(max(offset, 0), maxOffset)) / float64(maxOffset))
	return s
}

// SetGlyphSet applies a glyph set.
func (s *ScrollBar) SetGlyphSet(g GlyphSet) *ScrollBar {
	s.glyphSet = g
	return s
}

// SetArrows sets which arrow endcaps are rendered.
func (s *ScrollBar) SetArrows(arrows ScrollBarArrows) *ScrollBar {
	s.arrows = arrows
	return s
}

// SetTrackClickBehavior sets behavior used for track clicks.
func (s *ScrollBar) SetTrackClickBehavior(behavior TrackClickBehavior) *ScrollBar {
	s.trackClickBehavior = behavior
	return s
}

// SetStep sets the value change of an arrow click.
func (s *ScrollBar) SetStep(step float64) *ScrollBar {
	if step > 0 {
		s.step = step
	}
	return s
}

// SetThumbStyle sets the thumb style.
func (s *ScrollBar) SetThumbStyle(style tcell.Style) *ScrollBar {
	s.thumbStyle = style
	return s
}

// SetTrackGlyph sets the track symbol of the scrollBar's orientation and its
// visibility.
func (s *ScrollBar) SetTrackGlyph(glyph string, visible bool) *ScrollBar {
	if s.orientation == scroll.Vertical {
		s.glyphSet.TrackVertical = glyph
	} else {
		s.glyphSet.TrackHorizontal = glyph
	}
	s.showTrack = visible
	return s
}

// SetTrackStyle sets the track style.
func (s *ScrollBar) SetTrackStyle(style tcell.Style) *ScrollBar {
	s.trackStyle = style
	return s
}

// SetArrowStyle sets the arrow endcap style.
func (s *ScrollBar) SetArrowStyle(style tcell.Style) *ScrollBar {
	s.arrowStyle = style
	return s
}

// length returns the cell count along the scrollBar's axis.
func (s *ScrollBar) length() int {
	_, _, width, height := s.GetInnerRect()
	if s.orientation == scroll.Vertical {
		return height
	}
	return width
}

// along returns the cell index of screen position (x, y) along the axis.
func (s *ScrollBar) along(x, y int) int {
	innerX, innerY, _, _ := s.GetInnerRect()
	if s.orientation == scroll.Vertical {
		return y - innerY
	}
	return x - innerX
}

func (s *ScrollBar) startArrowCells() int {
	if s.arrows.hasStart() {
		return 1
	}
	return 0
}

func (s *ScrollBar) trackCells(length int) int {
	arrows := s.startArrowCells()
	if s.arrows.hasEnd() {
		arrows++
	}
	return max(length-arrows, 0)
}

type scrollMetrics struct {
	trackCells int
	trackLen   int
	thumbLen   int
	thumbStart int
}

func (m scrollMetrics) travel() int {
	return m.trackLen - m.thumbLen
}

// metrics computes scrollBar geometry in subcell units.
func (s *ScrollBar) metrics(length int) scrollMetrics {
	return computeScrollMetrics(s.trackCells(length), s.handleSize, s.value)
}

func computeScrollMetrics(trackCells int, handleSize, value float64) scrollMetrics {
	trackLen := trackCells * subcell
	if trackLen == 0 {
		return scrollMetrics{}
	}

	// Subcell math lets the thumb move in 1/8-cell steps.
	thumbLen := min(max(int(math.Round(float64(trackLen)*handleSize)), subcell), trackLen)
	thumbTravel := trackLen - thumbLen
	thumbStart := int(math.Round(float64(thumbTravel) * min(max(value, 0), 1)))
	return scrollMetrics{trackCells: trackCells, trackLen: trackLen, thumbLen: thumbLen, thumbStart: thumbStart}
}

func cellFill(m scrollMetrics, cellIndex int) (start int, fillLen int) {
	if m.thumbLen == 0 {
		return 0, 0
	}
	cellStart := cellIndex * subcell
	cellEnd := cellStart + subcell
	thumbEnd := m.thumbStart + m.thumbLen
	start = max(m.thumbStart, cellStart)
	end := min(thumbEnd, cellEnd)
	if end <= start {
		return 0, 0
	}
	// Convert absolute subcell coverage into cell-local [start,len] used by fractional glyph selection.
	fillLen = min(end-start, subcell)
	start = min(max(start-cellStart, 0), subcell)
	return start, fillLen
}

func (s *ScrollBar) glyph(start, fillLen int) (string, tcell.Style) {
	vertical := s.orientation == scroll.Vertical
	if fillLen <= 0 {
		switch {
		case !s.showTrack:
			return " ", s.trackStyle
		case vertical:
			return s.glyphSet.TrackVertical, s.trackStyle
		default:
			return s.glyphSet.TrackHorizontal, s.trackStyle
		}
	}

	ix := min(fillLen, subcell) - 1
	// A thumb touching the start of a cell covers its top or left part.
	switch {
	case vertical && start == 0:
		return s.glyphSet.ThumbVerticalUpper[ix], s.thumbStyle
	case vertical:
		return s.glyphSet.ThumbVerticalLower[ix], s.thumbStyle
	case start == 0:
		return s.glyphSet.ThumbHorizontalLeft[ix], s.thumbStyle
	default:
		return s.glyphSet.ThumbHorizontalRight[ix], s.thumbStyle
	}
}

func (s *ScrollBar) put(screen tcell.Screen, index int, glyph string, style tcell.Style) {
	x, y, _, _ := s.GetInnerRect()
	if s.orientation == scroll.Vertical {
		screen.Put(x, y+index, glyph, style)
	} else {
		screen.Put(x+index, y, glyph, style)
	}
}

// Draw draws the scrollBar.
func (s *ScrollBar) Draw(screen tcell.Screen) {
	if !s.visible {
		return
	}
	s.Box.Draw(screen)

	length := s.length()
	m := s.metrics(length)
	if m.trackLen == 0 {
		return
	}

	arrowStart, arrowEnd := s.glyphSet.ArrowHorizontalStart, s.glyphSet.ArrowHorizontalEnd
	if s.orientation == scroll.Vertical {
		arrowStart, arrowEnd = s.glyphSet.ArrowVerticalStart, s.glyphSet.ArrowVerticalEnd
	}

	idx := 0
	if s.arrows.hasStart() {
		s.put(screen, idx, arrowStart, s.arrowStyle)
		idx++
	}

	for cell := 0; cell < m.trackCells; cell++ {
		start, fillLen := cellFill(m, cell)
		glyph, style := s.glyph(start, fillLen)
		s.put(screen, idx, glyph, style)
		idx++
	}

	if s.arrows.hasEnd() {
		s.put(screen, idx, arrowEnd, s.arrowStyle)
	}
}

// MouseHandler handles arrow clicks, track clicks and thumb drags. A thumb
// drag captures the mouse until the button is released.
func (s *ScrollBar) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	if !s.visible {
		s.dragging = false
		return nil, nil
	}
	x, y := event.Position()
	length := s.length()
	m := s.metrics(length)
	pos := s.along(x, y)
	// Subcell position of the pointer on the track, centered in its cell.
	sub := (pos-s.startArrowCells())*subcell + subcell/2

	if s.dragging {
		switch action {
		case MouseMove:
			if travel := m.travel(); travel > 0 {
				s.SetValue(min(max(float64(sub-s.grab)/float64(travel), 0), 1))
			}
			return s, RedrawCommand{}
		case MouseLeftUp:
			s.dragging = false
			return nil, RedrawCommand{}
		}
		return s, nil
	}

	if action != MouseLeftDown || !s.InInnerRect(x, y) || m.trackLen == 0 {
		return nil, nil
	}

	switch {
	case s.arrows.hasStart() && pos == 0:
		s.SetValue(min(max(s.value-s.step, 0), 1))
	case s.arrows.hasEnd() && pos == length-1:
		s.SetValue(min(max(s.value+s.step, 0), 1))
	case sub >= m.thumbStart && sub < m.thumbStart+m.thumbLen:
		s.dragging = true
		s.grab = sub - m.thumbStart
		return s, RedrawCommand{}
	case s.trackClickBehavior == TrackClickBehaviorJumpToClick:
		if travel := m.travel(); travel > 0 {
			s.SetValue(min(max(float64(sub-m.thumbLen/2)/float64(travel), 0), 1))
		}
	default:
		s.page(sub < m.thumbStart)
	}
	return nil, RedrawCommand{}
}

// page moves the value by one viewport toward the start or the end.
func (s *ScrollBar) page(backward bool) {
	if s.handleSize >= 1 {
		return
	}
	// With handle = viewport/content, one viewport is handle/(1-handle) of
	// the scrollable range.
	page := s.handleSize / (1 - s.handleSize)
	if backward {
		page = -page
	}
	s.SetValue(min(max(s.value+page, 0), 1))
}

var (
	_ Primitive        = &ScrollBar{}
	_ scroll.Scrollbar = &ScrollBar{}
)
