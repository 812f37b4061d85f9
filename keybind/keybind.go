// Package keybind matches key events against configurable key bindings and
// carries the help text shown for them.
package keybind

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v3"
)

// Keybind is a set of keys triggering one action.
type Keybind struct {
	keys     []string
	help     Help
	disabled bool
}

// Help is the text shown for a binding in key help.
type Help struct {
	Key  string
	Desc string
}

type Option func(*Keybind)

func NewKeybind(options ...Option) Keybind {
	var k Keybind
	for _, option := range options {
		option(&k)
	}
	return k
}

// WithKeys sets the keys of the binding, e.g. "down", "j", "ctrl+f".
func WithKeys(keys ...string) Option {
	return func(k *Keybind) {
		k.SetKeys(keys...)
	}
}

func WithHelp(key, desc string) Option {
	return func(k *Keybind) {
		k.help = Help{Key: key, Desc: desc}
	}
}

// WithDisabled creates the binding disabled.
func WithDisabled() Option {
	return func(k *Keybind) {
		k.disabled = true
	}
}

func (k Keybind) Keys() []string {
	return k.keys
}

func (k *Keybind) SetKeys(keys ...string) {
	normalized := make([]string, 0, len(keys))
	for _, key := range keys {
		if key = normalize(key); key != "" {
			normalized = append(normalized, key)
		}
	}
	k.keys = normalized
}

func (k Keybind) Help() Help {
	return k.help
}

// Enabled reports whether the binding has keys and was not disabled.
func (k Keybind) Enabled() bool {
	return !k.disabled && len(k.keys) > 0
}

func (k *Keybind) SetEnabled(enabled bool) {
	k.disabled = !enabled
}

// Matches reports whether event triggers any of the enabled keybinds.
func Matches(event *tcell.EventKey, keybinds ...Keybind) bool {
	if event == nil {
		return false
	}
	key := eventString(event)
	for _, k := range keybinds {
		if k.Enabled() && slices.Contains(k.keys, key) {
			return true
		}
	}
	return false
}

var aliases = map[string]string{
	"escape":   "esc",
	"return":   "enter",
	"pageup":   "pgup",
	"pagedown": "pgdn",
	"space":    " ",
	"control":  "ctrl",
}

var modifierOrder = []string{"ctrl", "alt", "shift", "meta"}

// normalize turns a key description into its canonical form: modifiers in a
// fixed order joined with "+", followed by the key. Single characters keep
// their case unless a modifier is present.
func normalize(key string) string {
	if key == " " {
		return key
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	mods := make(map[string]bool)
	primary := ""
	for part := range strings.SplitSeq(key, "+") {
		part = strings.TrimSpace(part)
		lower := strings.ToLower(part)
		if alias, ok := aliases[lower]; ok {
			lower = alias
		}
		switch {
		case part == "":
		case slices.Contains(modifierOrder, lower):
			mods[lower] = true
		case len([]rune(part)) == 1:
			primary = part
		default:
			primary = lower
		}
	}
	if primary == "" {
		return ""
	}
	if primary == "backtab" {
		mods["shift"] = true
		primary = "tab"
	}
	return join(mods, primary)
}

func join(mods map[string]bool, primary string) string {
	if len(mods) == 0 {
		return primary
	}
	if len([]rune(primary)) == 1 {
		primary = strings.ToLower(primary)
	}
	parts := make([]string, 0, len(mods)+1)
	for _, mod := range modifierOrder {
		if mods[mod] {
			parts = append(parts, mod)
		}
	}
	return strings.Join(append(parts, primary), "+")
}

func eventString(event *tcell.EventKey) string {
	key := event.Key()
	if key >= tcell.KeyCtrlA && key <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+(key-tcell.KeyCtrlA)))
	}

	primary, ok := keyNames[key]
	if !ok && key == tcell.KeyRune {
		primary, ok = event.Str(), true
	}
	if !ok {
		return normalize(event.Name())
	}

	mods := make(map[string]bool)
	m := event.Modifiers()
	mods["ctrl"] = m&tcell.ModCtrl != 0
	mods["alt"] = m&tcell.ModAlt != 0
	mods["shift"] = m&tcell.ModShift != 0 && key != tcell.KeyRune
	mods["meta"] = m&tcell.ModMeta != 0
	for mod, set := range mods {
		if !set {
			delete(mods, mod)
		}
	}
	if key == tcell.KeyBacktab {
		mods["shift"] = true
	}
	return join(mods, primary)
}

var keyNames = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyEscape:     "esc",
	tcell.KeyTab:        "tab",
	tcell.KeyBacktab:    "tab",
	tcell.KeyHome:       "home",
	tcell.KeyEnd:        "end",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyPgUp:       "pgup",
	tcell.KeyPgDn:       "pgdn",
	tcell.KeyDelete:     "delete",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyInsert:     "insert",
}
