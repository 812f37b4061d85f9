// Command flickdemo shows a long text in an inertial scroll view. Drag it
// with the mouse and let go to flick it, or use the wheel and the keyboard.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/ayn2op/flick"
	"github.com/ayn2op/flick/help"
	"github.com/ayn2op/flick/keybind"
	"github.com/ayn2op/flick/scroll"
	"github.com/gdamore/tcell/v3"
)

type options struct {
	configPath string
	logPath    string
	mode       string
	lines      int
	frame      time.Duration
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("flickdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "TOML file with scroll settings")
	fs.StringVar(&opts.logPath, "log", "", "write logs to this file")
	fs.StringVar(&opts.mode, "mode", "", "boundary mode override: clamp, bounce or infinite")
	fs.IntVar(&opts.lines, "lines", 400, "number of generated lines")
	fs.DurationVar(&opts.frame, "frame", flick.DefaultFrameInterval, "animation frame interval")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: flickdemo [flags]\n\n")
		fs.PrintDefaults()
	}
	err := fs.Parse(args)
	return opts, err
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run starts the demo and returns the process exit code. It returns instead
// of exiting so that the log file is closed on every path.
func run(args []string, stderr io.Writer) (code int) {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	logger, closeLog, err := newLogger(opts.logPath)
	if err != nil {
		fmt.Fprintf(stderr, "flickdemo: %v\n", err)
		return 1
	}
	defer closeLog()
	slog.SetDefault(logger)
	scroll.SetLogger(logger)

	cfg, err := loadConfig(opts.configPath, opts.mode)
	if err != nil {
		logger.Error("load config", "err", err)
		fmt.Fprintf(stderr, "flickdemo: %v\n", err)
		return 2
	}

	app := flick.NewApplication().SetLogger(logger).SetFrameInterval(opts.frame)

	// Restore the terminal before reporting a crash.
	defer func() {
		if r := recover(); r != nil {
			app.Stop()
			logger.Error("crashed", "panic", r, "stack", string(debug.Stack()))
			fmt.Fprintf(stderr, "flickdemo crashed: %v\n%s\n", r, debug.Stack())
			code = 1
		}
	}()

	content := flick.NewTextContent().SetLines(sampleLines(opts.lines))
	view := flick.NewScrollView(content).SetConfig(cfg).SetLogger(logger)
	view.SetBorders(flick.BordersAll).SetBorderSet(flick.BorderSetRound())
	view.SetTitle(" flick ")
	content.SetSelectedFunc(func(row int) {
		view.SetTitle(fmt.Sprintf(" clicked line %d ", row+1))
	})
	view.SetChangedFunc(func(s scroll.Vec2) {
		logger.Debug("scroll changed", "x", s.X, "y", s.Y)
	})

	root := newLayout(view)
	logger.Info("starting", "mode", cfg.Mode, "friction", cfg.Friction, "lines", opts.lines)
	if err := app.SetRoot(root).Run(); err != nil {
		logger.Error("run", "err", err)
		fmt.Fprintf(stderr, "flickdemo: %v\n", err)
		return 1
	}
	return 0
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, func() { f.Close() }, nil
}

func loadConfig(path, mode string) (scroll.Config, error) {
	cfg := scroll.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = scroll.LoadConfig(path); err != nil {
			return cfg, err
		}
	}
	if mode != "" {
		m, err := scroll.ParseBoundaryMode(mode)
		if err != nil {
			return cfg, fmt.Errorf("-mode: %w", err)
		}
		cfg.Mode = m
	}
	return cfg, nil
}

func sampleLines(n int) []flick.Line {
	number := tcell.StyleDefault.Foreground(flick.Styles.SecondaryTextColor)
	text := tcell.StyleDefault.Foreground(flick.Styles.PrimaryTextColor)
	words := strings.Fields("the quick brown fox jumps over the lazy dog while a terminal scroll view keeps flicking")

	b := flick.NewLineBuilder()
	for i := range n {
		b.Write(fmt.Sprintf("%4d ", i+1), number)
		// Every seventh line is wide enough to need horizontal scrolling.
		count := 4 + i%9
		if i%7 == 0 {
			count = 3 * len(words)
		}
		parts := make([]string, count)
		for j := range parts {
			parts[j] = words[(i+j)%len(words)]
		}
		b.Write(strings.Join(parts, " "), text)
		b.NewLine()
	}
	return b.Finish()
}

// layout stacks the scroll view above a one-row key help.
type layout struct {
	*flick.Box
	view *flick.ScrollView
	help *help.Help
	quit keybind.Keybind
}

func newLayout(view *flick.ScrollView) *layout {
	keys := view.KeyMap()
	quit := keybind.NewKeybind(keybind.WithKeys("q", "ctrl+c"), keybind.WithHelp("q", "quit"))
	return &layout{
		Box:  flick.NewBox(),
		view: view,
		help: help.New().SetKeyMap(helpKeys{keys, quit}),
		quit: quit,
	}
}

type helpKeys struct {
	scroll flick.ScrollKeyMap
	quit   keybind.Keybind
}

func (k helpKeys) ShortHelp() []keybind.Keybind {
	return append(k.scroll.ShortHelp(), k.quit)
}

func (l *layout) SetRect(x, y, width, height int) {
	l.Box.SetRect(x, y, width, height)
	l.view.SetRect(x, y, width, max(height-1, 0))
	l.help.SetRect(x, y+height-1, width, 1)
}

func (l *layout) Draw(screen tcell.Screen) {
	l.view.Draw(screen)
	l.help.Draw(screen)
}

func (l *layout) InputHandler(event *tcell.EventKey) flick.Command {
	if keybind.Matches(event, l.quit) {
		return flick.QuitCommand{}
	}
	return l.view.InputHandler(event)
}

func (l *layout) MouseHandler(action flick.MouseAction, event *tcell.EventMouse) (flick.Primitive, flick.Command) {
	return l.view.MouseHandler(action, event)
}

func (l *layout) PasteHandler(text string) flick.Command {
	return l.view.PasteHandler(text)
}

func (l *layout) Tick() flick.Command {
	return l.view.Tick()
}

func (l *layout) Focus(delegate func(p flick.Primitive)) {
	delegate(l.view)
}

func (l *layout) HasFocus() bool {
	return l.view.HasFocus()
}

var _ flick.Ticker = &layout{}
