package flick

// Box drawing characters used by the predefined border sets.
const (
	boxLightHorizontal  = "─"
	boxLightVertical    = "│"
	boxLightDownRight   = "┌"
	boxLightDownLeft    = "┐"
	boxLightUpRight     = "└"
	boxLightUpLeft      = "┘"
	boxArcDownRight     = "╭"
	boxArcDownLeft      = "╮"
	boxArcUpLeft        = "╯"
	boxArcUpRight       = "╰"
	boxDoubleHorizontal = "═"
	boxDoubleVertical   = "║"
	boxDoubleDownRight  = "╔"
	boxDoubleDownLeft   = "╗"
	boxDoubleUpRight    = "╚"
	boxDoubleUpLeft     = "╝"
	horizontalEllipsis  = "…"
)

// BorderSet defines the glyphs used when a box border is drawn.
type BorderSet struct {
	Top         string
	Bottom      string
	Left        string
	Right       string
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string
}

func BorderSetHidden() BorderSet {
	return BorderSet{
		Top:         " ",
		Bottom:      " ",
		Left:        " ",
		Right:       " ",
		TopLeft:     " ",
		TopRight:    " ",
		BottomLeft:  " ",
		BottomRight: " ",
	}
}

func BorderSetPlain() BorderSet {
	return BorderSet{
		Top:         boxLightHorizontal,
		Bottom:      boxLightHorizontal,
		Left:        boxLightVertical,
		Right:       boxLightVertical,
		TopLeft:     boxLightDownRight,
		TopRight:    boxLightDownLeft,
		BottomLeft:  boxLightUpRight,
		BottomRight: boxLightUpLeft,
	}
}

func BorderSetRound() BorderSet {
	b := BorderSetPlain()
	b.TopLeft = boxArcDownRight
	b.TopRight = boxArcDownLeft
	b.BottomLeft = boxArcUpRight
	b.BottomRight = boxArcUpLeft
	return b
}

func BorderSetDouble() BorderSet {
	return BorderSet{
		Top:         boxDoubleHorizontal,
		Bottom:      boxDoubleHorizontal,
		Left:        boxDoubleVertical,
		Right:       boxDoubleVertical,
		TopLeft:     boxDoubleDownRight,
		TopRight:    boxDoubleDownLeft,
		BottomLeft:  boxDoubleUpRight,
		BottomRight: boxDoubleUpLeft,
	}
}

type Borders uint

const (
	BordersTop Borders = 1 << iota
	BordersBottom
	BordersLeft
	BordersRight

	BordersNone Borders = 0
	BordersAll  Borders = BordersTop | BordersBottom | BordersLeft | BordersRight
)

func (b Borders) Has(flag Borders) bool {
	return b&flag != 0
}
