package flick

import (
	"github.com/gdamore/tcell/v3"
	"github.com/gdamore/tcell/v3/color"
)

// Theme defines the colors used when primitives are initialized.
type Theme struct {
	PrimitiveBackgroundColor tcell.Color // Main background color for primitives.
	BorderColor              tcell.Color // Box borders.
	TitleColor               tcell.Color // Box titles and footers.
	PrimaryTextColor         tcell.Color // Primary text.
	SecondaryTextColor       tcell.Color // Secondary text (e.g. key help).
	ScrollBarTrackColor      tcell.Color // Scroll bar tracks and arrows.
	ScrollBarThumbColor      tcell.Color // Scroll bar thumbs.
}

// Styles defines the theme for applications. The default is for a black
// background and white text.
var Styles = Theme{
	PrimitiveBackgroundColor: color.Black,
	BorderColor:              color.White,
	TitleColor:               color.White,
	PrimaryTextColor:         color.White,
	SecondaryTextColor:       color.Yellow,
	ScrollBarTrackColor:      color.Gray,
	ScrollBarThumbColor:      color.White,
}
