package flick

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v3"
)

const (
	// The size of the queued updates channel.
	updatesQueueSize = 100
	// DefaultFrameInterval is the period of the animation clock.
	DefaultFrameInterval = 16 * time.Millisecond
)

// queuedUpdate is a function queued by QueueUpdate. done, if not nil,
// receives one value after f returned.
type queuedUpdate struct {
	f    func()
	done chan struct{}
}

// Application owns the screen, runs the event loop and drives the animation
// clock. Every frame it calls Tick on the root primitive if the root
// implements Ticker, and redraws when the returned command asks for it.
//
// The following displays a primitive p until the application is stopped, for
// example via QuitCommand:
//
//	if err := flick.NewApplication().SetRoot(p).Run(); err != nil {
//	    panic(err)
//	}
type Application struct {
	sync.RWMutex

	screen tcell.Screen
	root   Primitive
	focus  Primitive

	// Functions queued from other goroutines, run on the event loop.
	updates chan queuedUpdate

	frameInterval time.Duration
	logger        *slog.Logger

	// Mouse state. Only touched by the event loop.
	mouse        mouseTracker
	mouseCapture Primitive

	// Bracketed paste state. Only touched by the event loop.
	pasting bool
	paste   strings.Builder

	// clear requests a full clear before the next frame.
	clear bool
}

// NewApplication creates and returns a new application.
func NewApplication() *Application {
	return &Application{
		updates:       make(chan queuedUpdate, updatesQueueSize),
		frameInterval: DefaultFrameInterval,
		logger:        slog.Default(),
	}
}

// SetScreen sets the screen Run draws on instead of the terminal. It has no
// effect once a screen has been set.
func (a *Application) SetScreen(screen tcell.Screen) *Application {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		a.screen = screen
		a.clear = true
	}
	return a
}

// SetFrameInterval sets the period of the animation clock. Values of zero or
// less restore DefaultFrameInterval.
func (a *Application) SetFrameInterval(interval time.Duration) *Application {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	a.Lock()
	a.frameInterval = interval
	a.Unlock()
	return a
}

// SetLogger sets the logger used for event loop diagnostics. A nil logger
// restores slog.Default().
func (a *Application) SetLogger(logger *slog.Logger) *Application {
	if logger == nil {
		logger = slog.Default()
	}
	a.Lock()
	a.logger = logger
	a.Unlock()
	return a
}

func (a *Application) log() *slog.Logger {
	a.RLock()
	defer a.RUnlock()
	return a.logger
}

// Run starts the application and thus the event loop. It returns when Stop
// was called or the terminal reported an error.
func (a *Application) Run() error {
	a.Lock()
	if a.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			a.Unlock()
			return err
		}
		if err = screen.Init(); err != nil {
			a.Unlock()
			return err
		}
		a.screen = screen
	}
	a.screen.EnableMouse()
	a.screen.EnablePaste()
	events := a.screen.EventQ()
	interval := a.frameInterval
	a.Unlock()

	// A panic leaves the terminal in raw mode unless the screen is finalized.
	defer func() {
		if p := recover(); p != nil {
			a.Stop()
			panic(p)
		}
	}()

	a.draw()

	frames := time.NewTicker(interval)
	defer frames.Stop()
	logger := a.log()
	logger.Debug("event loop started", "frame_interval", interval)
	defer logger.Debug("event loop stopped")

	for {
		select {
		case event := <-events:
			if event == nil {
				return nil
			}
			if err, ok := event.(*tcell.EventError); ok {
				logger.Error("terminal error", "err", err)
				a.Stop()
				return err
			}
			if a.handleEvent(event) {
				a.draw()
			}

		case <-frames.C:
			if a.tick() {
				a.draw()
			}

		case update := <-a.updates:
			update.f()
			if update.done != nil {
				update.done <- struct{}{}
			}
		}
	}
}

// handleEvent routes a terminal event to the root primitive and reports
// whether the screen needs a redraw.
func (a *Application) handleEvent(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventKey:
		// Keys arriving inside a bracketed paste are collected instead.
		if a.pasting {
			switch event.Key() {
			case tcell.KeyRune:
				a.paste.WriteString(event.Str())
			case tcell.KeyEnter:
				a.paste.WriteByte('\n')
			case tcell.KeyTab:
				a.paste.WriteByte('\t')
			}
			return false
		}
		root := a.getRoot()
		if root == nil || !root.HasFocus() {
			return false
		}
		return a.executeCommand(root.InputHandler(event))

	case *tcell.EventPaste:
		switch {
		case event.Start():
			a.pasting = true
			a.paste.Reset()
		case event.End():
			a.pasting = false
			root := a.getRoot()
			if root != nil && root.HasFocus() && a.paste.Len() > 0 {
				return a.executeCommand(root.PasteHandler(a.paste.String()))
			}
		}
		return false

	case *tcell.EventResize:
		a.Lock()
		a.clear = true
		a.Unlock()
		return true

	case *tcell.EventMouse:
		return a.fireMouseActions(event)
	}
	return false
}

// tick advances animations by one frame and reports whether a redraw is
// needed.
func (a *Application) tick() bool {
	ticker, ok := a.getRoot().(Ticker)
	if !ok {
		return false
	}
	return a.executeCommand(ticker.Tick())
}

func (a *Application) getRoot() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.root
}

// fireMouseActions derives mouse actions from event and delivers them to the
// capturing primitive, or to the root. Actions of one event that follow a
// capture go to the same primitive even when the capture was just released,
// so a release and its click reach the primitive that saw the press.
func (a *Application) fireMouseActions(event *tcell.EventMouse) (handled bool) {
	var target Primitive
	for _, action := range a.mouse.update(event, time.Now()) {
		switch {
		case a.mouseCapture != nil:
			target = a.mouseCapture
		case target == nil:
			target = a.getRoot()
		}
		if target == nil {
			continue
		}
		capture, cmd := target.MouseHandler(action, event)
		a.mouseCapture = capture
		if a.executeCommand(cmd) {
			handled = true
		}
	}
	return handled
}

// Stop finalizes the screen, causing Run to return.
func (a *Application) Stop() {
	a.Lock()
	defer a.Unlock()
	if a.screen == nil {
		return
	}
	a.screen.Fini()
	a.screen = nil
}

// Suspend leaves terminal UI mode, calls f and enters it again. It returns
// false without calling f when there is no screen or it could not be
// suspended.
func (a *Application) Suspend(f func()) bool {
	a.RLock()
	screen := a.screen
	a.RUnlock()
	if screen == nil {
		return false
	}
	if err := screen.Suspend(); err != nil {
		a.log().Warn("suspend failed", "err", err)
		return false
	}

	f()

	a.Lock()
	a.clear = true
	a.Unlock()
	screen.Resume()
	return true
}

func (a *Application) draw() {
	a.Lock()
	screen := a.screen
	root := a.root
	full := a.clear
	a.clear = false
	a.Unlock()

	if screen == nil || root == nil {
		return
	}

	width, height := screen.Size()
	root.SetRect(0, 0, width, height)
	if full {
		screen.Clear()
	}
	root.Draw(screen)
	screen.Show()
}

// SetRoot sets the root primitive for this application and focuses it. This
// function must be called at least once or nothing will be displayed.
func (a *Application) SetRoot(root Primitive) *Application {
	a.Lock()
	a.root = root
	a.clear = true
	a.Unlock()

	a.SetFocus(root)
	return a
}

// SetFocus blurs the focused primitive and focuses p, which may delegate the
// focus further.
func (a *Application) SetFocus(p Primitive) *Application {
	a.Lock()
	if a.focus != nil {
		a.focus.Blur()
	}
	a.focus = p
	if a.screen != nil {
		a.screen.HideCursor()
	}
	a.Unlock()
	if p != nil {
		p.Focus(func(p Primitive) {
			a.SetFocus(p)
		})
	}
	return a
}

// GetFocus returns the primitive which has the current focus. If none has it,
// nil is returned.
func (a *Application) GetFocus() Primitive {
	a.RLock()
	defer a.RUnlock()
	return a.focus
}

// QueueUpdate runs f on the event loop and returns after it ran. Use it to
// touch primitives from other goroutines; it must not be called from the
// event loop itself.
func (a *Application) QueueUpdate(f func()) *Application {
	ch := make(chan struct{})
	a.updates <- queuedUpdate{f: f, done: ch}
	<-ch
	return a
}

// QueueUpdateDraw works like QueueUpdate and redraws after f ran.
func (a *Application) QueueUpdateDraw(f func()) *Application {
	return a.QueueUpdate(func() {
		f()
		a.draw()
	})
}

// executeCommand runs cmd and reports whether the screen needs a redraw.
func (a *Application) executeCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return false
	case BatchCommand:
		redraw := false
		for _, item := range c {
			if a.executeCommand(item) {
				redraw = true
			}
		}
		return redraw
	case RedrawCommand:
		return true
	case QuitCommand:
		a.Stop()
		return false
	case SetFocusCommand:
		if c.Target == nil {
			return false
		}
		changed := a.GetFocus() != c.Target
		a.SetFocus(c.Target)
		return changed
	case SetTitleCommand:
		a.RLock()
		screen := a.screen
		a.RUnlock()
		if screen != nil {
			screen.SetTitle(string(c))
		}
		return false
	}
	a.log().Warn("unknown command", "command", cmd)
	return false
}
