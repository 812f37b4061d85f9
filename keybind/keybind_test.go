package keybind

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"down", "down"},
		{" PageDown ", "pgdn"},
		{"Escape", "esc"},
		{"G", "G"},
		{"Ctrl+F", "ctrl+f"},
		{"shift+ctrl+x", "ctrl+shift+x"},
		{"backtab", "shift+tab"},
		{"space", " "},
		{" ", " "},
		{"ctrl+", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize(tt.in), "normalize(%q)", tt.in)
	}
}

func TestMatches(t *testing.T) {
	down := NewKeybind(WithKeys("down", "j"), WithHelp("↓/j", "down"))
	bottom := NewKeybind(WithKeys("end", "G"))

	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone), down))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "j", tcell.ModNone), down))
	assert.False(t, Matches(tcell.NewEventKey(tcell.KeyRune, "J", tcell.ModNone), down))
	assert.True(t, Matches(tcell.NewEventKey(tcell.KeyRune, "G", tcell.ModShift), down, bottom))
	assert.False(t, Matches(nil, down))
}

func TestDisabledKeybindNeverMatches(t *testing.T) {
	k := NewKeybind(WithKeys("down"), WithDisabled())
	assert.False(t, k.Enabled())
	assert.False(t, Matches(tcell.NewEventKey(tcell.KeyDown, "", tcell.ModNone), k))

	k.SetEnabled(true)
	assert.True(t, k.Enabled())
	assert.False(t, NewKeybind(WithHelp("x", "nothing")).Enabled(), "a binding without keys is disabled")
}

func TestSetKeysDoesNotAlias(t *testing.T) {
	a := NewKeybind(WithKeys("up", "k"))
	b := a
	b.SetKeys("down")
	assert.Equal(t, []string{"up", "k"}, a.Keys())
	assert.Equal(t, []string{"down"}, b.Keys())
	assert.Equal(t, Help{}, b.Help())
}
