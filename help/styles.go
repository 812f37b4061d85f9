package help

import (
	"github.com/ayn2op/flick"
	"github.com/gdamore/tcell/v3"
)

type Styles struct {
	KeyStyle       tcell.Style
	DescStyle      tcell.Style
	SeparatorStyle tcell.Style
	EllipsisStyle  tcell.Style
}

func DefaultStyles() Styles {
	dim := tcell.StyleDefault.Foreground(flick.Styles.SecondaryTextColor)
	normal := tcell.StyleDefault.Foreground(flick.Styles.PrimaryTextColor)
	return Styles{
		KeyStyle:       dim.Bold(true),
		DescStyle:      normal,
		SeparatorStyle: dim,
		EllipsisStyle:  dim,
	}
}
