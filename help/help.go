// Package help renders one-line key binding help.
package help

import (
	"github.com/ayn2op/flick"
	"github.com/ayn2op/flick/keybind"
	"github.com/gdamore/tcell/v3"
)

type KeyMap interface {
	// ShortHelp returns keybinds for single-line help.
	ShortHelp() []keybind.Keybind
}

// Help is a primitive drawing the short help of a key map on its first row.
type Help struct {
	*flick.Box
	Styles Styles

	keyMap    KeyMap
	separator string
	ellipsis  string
}

func New() *Help {
	return &Help{
		Box:       flick.NewBox(),
		Styles:    DefaultStyles(),
		separator: " • ",
		ellipsis:  "…",
	}
}

// SetKeyMap sets the key map used by this help primitive.
func (h *Help) SetKeyMap(keyMap KeyMap) *Help {
	h.keyMap = keyMap
	return h
}

func (h *Help) SetSeparator(separator string) *Help {
	h.separator = separator
	return h
}

// SetEllipsis sets the marker appended when bindings are left out.
func (h *Help) SetEllipsis(ellipsis string) *Help {
	h.ellipsis = ellipsis
	return h
}

// Draw draws this primitive onto the screen.
func (h *Help) Draw(screen tcell.Screen) {
	h.Box.Draw(screen)
	if h.keyMap == nil {
		return
	}

	x, y, width, height := h.GetInnerRect()
	if height <= 0 {
		return
	}
	for _, segment := range h.ShortLine(width) {
		w, _ := flick.Print(screen, segment.Text, x, y, width, flick.AlignmentLeft, segment.Style)
		x += w
		width -= w
	}
}

// ShortLine lays out the enabled bindings of the key map separated by the
// separator. Bindings that do not fit within maxWidth are dropped and
// replaced by the ellipsis if it fits. A maxWidth of zero or less means no
// limit.
func (h *Help) ShortLine(maxWidth int) flick.Line {
	if h.keyMap == nil {
		return nil
	}

	var out flick.Line
	for _, kb := range h.keyMap.ShortHelp() {
		if !kb.Enabled() {
			continue
		}
		item := h.item(kb.Help())
		if len(item) == 0 {
			continue
		}

		candidate := append(flick.Line(nil), out...)
		if len(candidate) > 0 {
			candidate = append(candidate, flick.Segment{Text: h.separator, Style: h.Styles.SeparatorStyle})
		}
		candidate = append(candidate, item...)
		if maxWidth > 0 && candidate.Width() > maxWidth {
			return h.truncate(out, maxWidth)
		}
		out = candidate
	}
	return out
}

func (h *Help) item(help keybind.Help) flick.Line {
	switch {
	case help.Key == "" && help.Desc == "":
		return nil
	case help.Key == "":
		return flick.Line{{Text: help.Desc, Style: h.Styles.DescStyle}}
	case help.Desc == "":
		return flick.Line{{Text: help.Key, Style: h.Styles.KeyStyle}}
	default:
		return flick.Line{
			{Text: help.Key, Style: h.Styles.KeyStyle},
			{Text: " " + help.Desc, Style: h.Styles.DescStyle},
		}
	}
}

// truncate appends the ellipsis to line if it fully fits.
func (h *Help) truncate(line flick.Line, maxWidth int) flick.Line {
	if h.ellipsis == "" {
		return line
	}
	tail := flick.Segment{Text: " " + h.ellipsis, Style: h.Styles.EllipsisStyle}
	if line.Width()+(flick.Line{tail}).Width() > maxWidth {
		return line
	}
	return append(line, tail)
}
