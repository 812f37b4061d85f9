package flick

import (
	"testing"

	"github.com/gdamore/tcell/v3"
	"github.com/stretchr/testify/assert"
)

func TestTextContentSize(t *testing.T) {
	content := NewTextContent().SetText("ab\n日本語\n\tx", tcell.StyleDefault)

	width, height := content.Size()
	assert.Equal(t, 6, width)
	assert.Equal(t, 3, height)

	content.SetText("", tcell.StyleDefault)
	width, height = content.Size()
	assert.Equal(t, 0, width)
	assert.Equal(t, 1, height)
}

func TestTextContentDrawsVisibleRows(t *testing.T) {
	screen := newTestScreen(6, 2)
	content := NewTextContent().SetText("ab\n日本語\n\tx", tcell.StyleDefault)
	content.SetRect(0, -1, 6, 3)

	content.Draw(screen)
	assert.Equal(t, "日本語", screen.row(0))
	assert.Equal(t, "    x ", screen.row(1))
}

func TestTextContentHonorsHorizontalClip(t *testing.T) {
	screen := newTestScreen(3, 1)
	content := NewTextContent().SetText("abcd", tcell.StyleDefault)
	content.SetRect(-1, 0, 4, 1)

	content.Draw(newClippedScreen(screen, 0, 0, 3, 1))
	assert.Equal(t, "bcd", screen.row(0))
}

func TestTextContentSelectedRow(t *testing.T) {
	content := NewTextContent().SetText("a\nb\nc", tcell.StyleDefault)
	content.SetRect(0, 5, 10, 3)

	selected := -1
	content.SetSelectedFunc(func(row int) { selected = row })

	_, cmd := content.MouseHandler(MouseLeftClick, mouseAt(2, 6))
	assert.Equal(t, 1, selected)
	assert.Equal(t, RedrawCommand{}, cmd)

	selected = -1
	_, cmd = content.MouseHandler(MouseLeftClick, mouseAt(2, 9))
	assert.Nil(t, cmd)
	_, cmd = content.MouseHandler(MouseLeftDown, mouseAt(2, 6))
	assert.Nil(t, cmd)
	assert.Equal(t, -1, selected)
}
