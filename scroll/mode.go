package scroll

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownMode       = errors.New("unknown boundary mode")
	ErrUnknownVisibility = errors.New("unknown scrollbar visibility")
)

// BoundaryMode controls what happens when a scroll value leaves [0, max].
type BoundaryMode uint8

const (
	// Clamp pins the scroll value to the valid range.
	Clamp BoundaryMode = iota
	// Bounce lets the value overshoot and springs it back.
	Bounce
	// Infinite accepts any value.
	Infinite
)

func (m BoundaryMode) String() string {
	switch m {
	case Clamp:
		return "clamp"
	case Bounce:
		return "bounce"
	case Infinite:
		return "infinite"
	}
	return fmt.Sprintf("BoundaryMode(%d)", uint8(m))
}

func (m BoundaryMode) MarshalText() ([]byte, error) {
	if m > Infinite {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *BoundaryMode) UnmarshalText(text []byte) error {
	mode, err := ParseBoundaryMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseBoundaryMode parses "clamp", "bounce" or "infinite", ignoring case.
func ParseBoundaryMode(s string) (BoundaryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "clamp":
		return Clamp, nil
	case "bounce":
		return Bounce, nil
	case "infinite":
		return Infinite, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Visibility decides when a scrollbar is shown.
type Visibility uint8

const (
	// ShowAlways shows the scrollbar whenever scrolling is enabled on its axis.
	ShowAlways Visibility = iota
	// ShowWhenRequired additionally hides it while the content fits the viewport.
	ShowWhenRequired
)

func (v Visibility) String() string {
	switch v {
	case ShowAlways:
		return "always"
	case ShowWhenRequired:
		return "required"
	}
	return fmt.Sprintf("Visibility(%d)", uint8(v))
}

func (v Visibility) MarshalText() ([]byte, error) {
	if v > ShowWhenRequired {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVisibility, uint8(v))
	}
	return []byte(v.String()), nil
}

func (v *Visibility) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "always", "show_always":
		*v = ShowAlways
	case "required", "when_required", "show_when_required":
		*v = ShowWhenRequired
	default:
		return fmt.Errorf("%w: %q", ErrUnknownVisibility, text)
	}
	return nil
}
