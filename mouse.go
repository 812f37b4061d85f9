package flick

import (
	"time"

	"github.com/gdamore/tcell/v3"
)

// DoubleClickInterval specifies the maximum time between clicks to register a
// double click rather than click.
var DoubleClickInterval = 500 * time.Millisecond

// MouseAction indicates one of the actions the mouse is logically doing.
type MouseAction int16

// Available mouse actions.
const (
	MouseMove MouseAction = iota
	MouseLeftDown
	MouseLeftUp
	MouseLeftClick
	MouseLeftDoubleClick
	MouseMiddleDown
	MouseMiddleUp
	MouseMiddleClick
	MouseMiddleDoubleClick
	MouseRightDown
	MouseRightUp
	MouseRightClick
	MouseRightDoubleClick
	MouseScrollUp
	MouseScrollDown
	MouseScrollLeft
	MouseScrollRight
)

var mouseButtonActions = [...]struct {
	button                  tcell.ButtonMask
	down, up, click, dclick MouseAction
}{
	{tcell.ButtonPrimary, MouseLeftDown, MouseLeftUp, MouseLeftClick, MouseLeftDoubleClick},
	{tcell.ButtonMiddle, MouseMiddleDown, MouseMiddleUp, MouseMiddleClick, MouseMiddleDoubleClick},
	{tcell.ButtonSecondary, MouseRightDown, MouseRightUp, MouseRightClick, MouseRightDoubleClick},
}

var mouseWheelActions = [...]struct {
	button tcell.ButtonMask
	action MouseAction
}{
	{tcell.WheelUp, MouseScrollUp},
	{tcell.WheelDown, MouseScrollDown},
	{tcell.WheelLeft, MouseScrollLeft},
	{tcell.WheelRight, MouseScrollRight},
}

// mouseTracker turns raw terminal mouse reports, which only carry a position
// and the buttons currently held, into logical actions.
type mouseTracker struct {
	x, y         int
	downX, downY int // Where a button was last pressed.
	buttons      tcell.ButtonMask
	lastClick    time.Time
}

// update returns the actions event stands for and records its state. A
// release at the press position is a click, or a double click when it follows
// another click within DoubleClickInterval.
func (m *mouseTracker) update(event *tcell.EventMouse, now time.Time) []MouseAction {
	x, y := event.Position()
	buttons := event.Buttons()

	var actions []MouseAction
	if x != m.x || y != m.y {
		actions = append(actions, MouseMove)
		m.x, m.y = x, y
	}

	clickMoved := x != m.downX || y != m.downY
	changed := buttons ^ m.buttons
	pressed := false
	for _, b := range mouseButtonActions {
		if changed&b.button == 0 {
			continue
		}
		if buttons&b.button != 0 {
			actions = append(actions, b.down)
			pressed = true
			continue
		}
		actions = append(actions, b.up)
		if clickMoved {
			continue
		}
		if now.Sub(m.lastClick) > DoubleClickInterval {
			actions = append(actions, b.click)
			m.lastClick = now
		} else {
			actions = append(actions, b.dclick)
			m.lastClick = time.Time{}
		}
	}

	for _, w := range mouseWheelActions {
		if buttons&w.button != 0 {
			actions = append(actions, w.action)
		}
	}

	m.buttons = buttons
	if pressed {
		m.downX, m.downY = x, y
	}
	return actions
}
