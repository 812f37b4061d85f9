package flick

import "github.com/gdamore/tcell/v3"

// Primitive is a rectangular element of the screen. Handlers never touch the
// application directly; they return a Command for the event loop to run.
type Primitive interface {
	// Draw draws the primitive within its rectangle.
	Draw(screen tcell.Screen)

	GetRect() (int, int, int, int)
	SetRect(x, y, width, height int)

	// InputHandler receives key events while the primitive has focus.
	InputHandler(event *tcell.EventKey) Command
	// MouseHandler receives mouse actions. A non-nil capture receives all
	// following mouse actions until it returns nil.
	MouseHandler(action MouseAction, event *tcell.EventMouse) (capture Primitive, cmd Command)
	// PasteHandler receives bracketed paste text while the primitive has focus.
	PasteHandler(text string) Command

	// HasFocus reports whether the primitive or one of its children has focus.
	HasFocus() bool
	// Focus gives the primitive the focus. It may hand it on to a child
	// through delegate.
	Focus(delegate func(p Primitive))
	Blur()
}

// Ticker is implemented by primitives that animate between input events. The
// application calls Tick on its root primitive once per frame; containers
// forward the call to their children.
type Ticker interface {
	Tick() Command
}
