package flick

import (
	"log/slog"
	"math"

	"github.com/ayn2op/flick/keybind"
	"github.com/ayn2op/flick/scroll"
	"github.com/gdamore/tcell/v3"
)

// ScrollContent is a primitive hosted by a ScrollView. Size reports its full
// extent in cells; the view positions it and clips it to the viewport.
type ScrollContent interface {
	Primitive
	Size() (width, height int)
}

// ScrollKeyMap holds the key bindings of a ScrollView.
type ScrollKeyMap struct {
	Up       keybind.Keybind
	Down     keybind.Keybind
	Left     keybind.Keybind
	Right    keybind.Keybind
	PageUp   keybind.Keybind
	PageDown keybind.Keybind
	Top      keybind.Keybind
	Bottom   keybind.Keybind
}

// DefaultScrollKeyMap returns arrow, page and home/end bindings with vi-style
// alternatives.
func DefaultScrollKeyMap() ScrollKeyMap {
	return ScrollKeyMap{
		Up:       keybind.NewKeybind(keybind.WithKeys("up", "k"), keybind.WithHelp("↑/k", "up")),
		Down:     keybind.NewKeybind(keybind.WithKeys("down", "j"), keybind.WithHelp("↓/j", "down")),
		Left:     keybind.NewKeybind(keybind.WithKeys("left", "h"), keybind.WithHelp("←/h", "left")),
		Right:    keybind.NewKeybind(keybind.WithKeys("right", "l"), keybind.WithHelp("→/l", "right")),
		PageUp:   keybind.NewKeybind(keybind.WithKeys("pgup", "ctrl+b"), keybind.WithHelp("pgup", "page up")),
		PageDown: keybind.NewKeybind(keybind.WithKeys("pgdn", "ctrl+f", " "), keybind.WithHelp("pgdn", "page down")),
		Top:      keybind.NewKeybind(keybind.WithKeys("home", "g"), keybind.WithHelp("home/g", "top")),
		Bottom:   keybind.NewKeybind(keybind.WithKeys("end", "G"), keybind.WithHelp("end/G", "bottom")),
	}
}

// ShortHelp returns the bindings shown in one-line help.
func (k ScrollKeyMap) ShortHelp() []keybind.Keybind {
	return []keybind.Keybind{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom}
}

// viewGeometry reports the viewport and content extents of a ScrollView to
// its controller.
type viewGeometry struct {
	viewport scroll.Vec2
	content  scroll.Vec2
}

func (g *viewGeometry) ViewportSize(o scroll.Orientation) float64 { return g.viewport.Get(o) }
func (g *viewGeometry) ContentSize(o scroll.Orientation) float64  { return g.content.Get(o) }

// viewContent stores the content-local position of the hosted content. Its
// Y axis points up.
type viewContent struct {
	pos scroll.Vec2
}

func (c *viewContent) LocalPosition() scroll.Vec2       { return c.pos }
func (c *viewContent) SetLocalPosition(pos scroll.Vec2) { c.pos = pos }

// ScrollView hosts a ScrollContent larger than its viewport and scrolls it
// with inertia. Content can be dragged with the left mouse button and flicked,
// scrolled with the wheel and the keyboard, or moved through the scrollbars.
// Motion continues between input events; the application advances it through
// Tick.
type ScrollView struct {
	*Box

	content    ScrollContent
	controller *scroll.Controller
	geometry   viewGeometry
	position   viewContent
	bars       [2]*ScrollBar
	keys       ScrollKeyMap
	wheelStep  int

	// Viewport origin and the sizes of the last layout.
	viewX, viewY int
	laidOut      bool
	lastViewport scroll.Vec2
	lastContent  scroll.Vec2

	// Pointer drag state. dragOrigin is the screen cell of the button press
	// and dragStart the content position at that time.
	dragging   bool
	dragOrigin [2]int
	dragStart  scroll.Vec2

	// The scrollbar that captured the mouse during a thumb drag.
	captured *ScrollBar

	contentInput bool
}

// NewScrollView returns a view scrolling content.
func NewScrollView(content ScrollContent) *ScrollView {
	v := &ScrollView{
		Box:          NewBox(),
		content:      content,
		keys:         DefaultScrollKeyMap(),
		wheelStep:    3,
		contentInput: true,
	}
	v.controller = scroll.New(&v.geometry, &v.position)
	v.controller.SetContentInputFunc(func(enabled bool) {
		v.contentInput = enabled
	})
	for _, o := range []scroll.Orientation{scroll.Horizontal, scroll.Vertical} {
		bar := NewScrollBar(o)
		bar.SetChangedFunc(func(value float64) {
			v.controller.ScrollbarValueChanged(o, value)
		})
		v.bars[o] = bar
		v.controller.SetScrollbar(o, bar)
	}
	return v
}

// Controller returns the scroll simulation of the view.
func (v *ScrollView) Controller() *scroll.Controller {
	return v.controller
}

// ScrollBar returns the scrollbar along o.
func (v *ScrollView) ScrollBar(o scroll.Orientation) *ScrollBar {
	return v.bars[o]
}

// Content returns the hosted content.
func (v *ScrollView) Content() ScrollContent {
	return v.content
}

// SetConfig applies cfg to the controller.
func (v *ScrollView) SetConfig(cfg scroll.Config) *ScrollView {
	v.controller.ApplyConfig(cfg)
	return v
}

// SetLogger sets the logger for controller warnings.
func (v *ScrollView) SetLogger(logger *slog.Logger) *ScrollView {
	v.controller.SetLogger(logger)
	return v
}

// SetKeyMap replaces the key bindings.
func (v *ScrollView) SetKeyMap(keys ScrollKeyMap) *ScrollView {
	v.keys = keys
	return v
}

// KeyMap returns the key bindings.
func (v *ScrollView) KeyMap() ScrollKeyMap {
	return v.keys
}

// SetWheelStep sets the distance in cells of one wheel notch.
func (v *ScrollView) SetWheelStep(cells int) *ScrollView {
	v.wheelStep = max(cells, 1)
	return v
}

// SetChangedFunc sets a handler called with the normalized scroll position
// whenever it changes.
func (v *ScrollView) SetChangedFunc(handler func(scroll scroll.Vec2)) *ScrollView {
	v.controller.SetChangedFunc(handler)
	return v
}

// ScrollTo scrolls to a normalized position and stops inertial motion.
func (v *ScrollView) ScrollTo(pos scroll.Vec2) *ScrollView {
	v.controller.SetScroll(pos)
	return v
}

// Scroll returns the normalized scroll position.
func (v *ScrollView) Scroll() scroll.Vec2 {
	return v.controller.Scroll()
}

// Layout measures the viewport and the content and resynchronizes the
// controller when either changed. Draw calls it; call it directly to apply
// size changes without drawing.
func (v *ScrollView) Layout() {
	x, y, width, height := v.GetInnerRect()
	cw, ch := v.content.Size()
	content := scroll.Vec2{X: float64(cw), Y: float64(ch)}

	// Scrollbars take space from the viewport, which may in turn change
	// whether they are needed. Two passes settle it.
	viewport := scroll.Vec2{X: float64(width), Y: float64(height)}
	for range 2 {
		v.geometry.content = content
		v.geometry.viewport = viewport
		next := scroll.Vec2{X: float64(width), Y: float64(height)}
		if v.controller.ScrollbarVisible(scroll.Vertical) {
			next.X--
		}
		if v.controller.ScrollbarVisible(scroll.Horizontal) {
			next.Y--
		}
		next = scroll.Vec2{X: math.Max(next.X, 0), Y: math.Max(next.Y, 0)}
		if next == viewport {
			break
		}
		viewport = next
	}
	v.geometry.viewport = viewport

	if !v.laidOut || v.lastViewport != viewport || v.lastContent != content {
		v.laidOut = true
		v.lastViewport, v.lastContent = viewport, content
		v.controller.Resize()
	}

	vw, vh := int(viewport.X), int(viewport.Y)
	v.viewX, v.viewY = x, y
	v.bars[scroll.Vertical].SetRect(x+vw, y, 1, vh)
	v.bars[scroll.Horizontal].SetRect(x, y+vh, vw, 1)
}

// contentOrigin returns the screen cell of the content's top-left corner.
func (v *ScrollView) contentOrigin() (int, int) {
	pos := v.position.pos
	return v.viewX + int(math.Round(pos.X)), v.viewY - int(math.Round(pos.Y))
}

func (v *ScrollView) viewportSize() (int, int) {
	return int(v.geometry.viewport.X), int(v.geometry.viewport.Y)
}

func (v *ScrollView) inViewport(x, y int) bool {
	vw, vh := v.viewportSize()
	return x >= v.viewX && x < v.viewX+vw && y >= v.viewY && y < v.viewY+vh
}

// Draw draws the view, the visible part of its content and its scrollbars.
func (v *ScrollView) Draw(screen tcell.Screen) {
	v.Box.Draw(screen)
	v.Layout()

	vw, vh := v.viewportSize()
	cx, cy := v.contentOrigin()
	cw, ch := v.content.Size()
	v.content.SetRect(cx, cy, cw, ch)
	if vw > 0 && vh > 0 {
		v.content.Draw(newClippedScreen(screen, v.viewX, v.viewY, vw, vh))
	}

	for _, bar := range v.bars {
		bar.Draw(screen)
	}
}

// Tick advances inertial motion by one frame and requests a redraw while
// anything moved.
func (v *ScrollView) Tick() Command {
	moving := v.controller.Moving()
	before := v.controller.Scroll()
	visible := v.barsVisible()

	v.controller.Tick()

	var cmd Command
	if moving || before != v.controller.Scroll() || visible != v.barsVisible() {
		cmd = RedrawCommand{}
	}
	if ticker, ok := v.content.(Ticker); ok {
		cmd = AppendCommand(cmd, ticker.Tick())
	}
	return cmd
}

func (v *ScrollView) barsVisible() [2]bool {
	return [2]bool{v.bars[scroll.Horizontal].Visible(), v.bars[scroll.Vertical].Visible()}
}

// InputHandler scrolls by line, by page or to either end. Keys it does not
// handle go to the content.
func (v *ScrollView) InputHandler(event *tcell.EventKey) Command {
	_, vh := v.viewportSize()
	switch {
	case keybind.Matches(event, v.keys.Up):
		v.controller.ScrollBy(scroll.Vec2{Y: -1})
	case keybind.Matches(event, v.keys.Down):
		v.controller.ScrollBy(scroll.Vec2{Y: 1})
	case keybind.Matches(event, v.keys.Left):
		v.controller.ScrollBy(scroll.Vec2{X: -1})
	case keybind.Matches(event, v.keys.Right):
		v.controller.ScrollBy(scroll.Vec2{X: 1})
	case keybind.Matches(event, v.keys.PageUp):
		v.controller.FlingBy(scroll.Vec2{Y: -float64(max(vh-1, 1))})
	case keybind.Matches(event, v.keys.PageDown):
		v.controller.FlingBy(scroll.Vec2{Y: float64(max(vh-1, 1))})
	case keybind.Matches(event, v.keys.Top):
		v.controller.SetScroll(scroll.Vec2{X: v.controller.Scroll().X})
	case keybind.Matches(event, v.keys.Bottom):
		v.controller.SetScroll(scroll.Vec2{
			X: v.controller.Scroll().X,
			Y: v.controller.MaxScrollValue(scroll.Vertical),
		})
	default:
		return v.content.InputHandler(event)
	}
	return RedrawCommand{}
}

// PasteHandler forwards pasted text to the content.
func (v *ScrollView) PasteHandler(text string) Command {
	return v.content.PasteHandler(text)
}

// MouseHandler drags the content with the left button, scrolls with the
// wheel and routes events over the scrollbars to them. Clicks reach the
// content unless they ended a drag.
func (v *ScrollView) MouseHandler(action MouseAction, event *tcell.EventMouse) (Primitive, Command) {
	x, y := event.Position()

	if v.captured != nil {
		capture, cmd := v.captured.MouseHandler(action, event)
		if capture == nil {
			v.captured = nil
			return nil, cmd
		}
		return v, cmd
	}

	if v.dragging {
		switch action {
		case MouseMove:
			delta := scroll.Vec2{
				X: float64(x - v.dragOrigin[0]),
				Y: -float64(y - v.dragOrigin[1]),
			}
			v.controller.DragMove(v.dragStart.Add(delta))
			return v, RedrawCommand{}
		case MouseLeftUp:
			v.dragging = false
			v.controller.DragEnd()
			return nil, RedrawCommand{}
		}
		return v, nil
	}

	if !v.InRect(x, y) {
		return nil, nil
	}

	step := float64(v.wheelStep)
	switch action {
	case MouseScrollUp:
		v.controller.Wheel(0, -step)
		return nil, RedrawCommand{}
	case MouseScrollDown:
		v.controller.Wheel(0, step)
		return nil, RedrawCommand{}
	case MouseScrollLeft:
		v.controller.Wheel(-step, 0)
		return nil, RedrawCommand{}
	case MouseScrollRight:
		v.controller.Wheel(step, 0)
		return nil, RedrawCommand{}
	}

	for _, bar := range v.bars {
		if !bar.Visible() || !bar.InRect(x, y) {
			continue
		}
		capture, cmd := bar.MouseHandler(action, event)
		if capture != nil {
			v.captured = bar
			return v, AppendCommand(SetFocusCommand{Target: v}, cmd)
		}
		return nil, cmd
	}

	if !v.inViewport(x, y) {
		return nil, nil
	}

	switch action {
	case MouseLeftDown:
		v.dragging = true
		v.dragOrigin = [2]int{x, y}
		v.dragStart = v.position.pos
		v.controller.DragStart()
		return v, AppendCommand(SetFocusCommand{Target: v}, RedrawCommand{})
	case MouseLeftClick, MouseLeftDoubleClick:
		if v.controller.WasDragged() {
			return nil, nil
		}
	}
	if !v.contentInput {
		return nil, nil
	}
	_, cmd := v.content.MouseHandler(action, event)
	return nil, cmd
}

var (
	_ Primitive = &ScrollView{}
	_ Ticker    = &ScrollView{}
)
