package scroll

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunables of a Controller. It is usually loaded from a
// TOML file:
//
//	mode = "bounce"
//	bounce_amount = 0.1
//	friction = 0.05
//
//	[vertical]
//	enabled = true
//	scrollbar = "required"
//	wheel_sensitivity = 1.0
type Config struct {
	Mode          BoundaryMode `toml:"mode"`
	BounceAmount  float64      `toml:"bounce_amount"`
	Friction      float64      `toml:"friction"`
	DragThreshold float64      `toml:"drag_threshold"`
	UseWheel      bool         `toml:"use_wheel"`

	Horizontal AxisConfig `toml:"horizontal"`
	Vertical   AxisConfig `toml:"vertical"`
}

// AxisConfig holds the per-axis part of a Config.
type AxisConfig struct {
	Enabled          bool       `toml:"enabled"`
	Scrollbar        Visibility `toml:"scrollbar"`
	WheelSensitivity float64    `toml:"wheel_sensitivity"`
}

// DefaultConfig returns the configuration a new Controller starts with.
func DefaultConfig() Config {
	axis := AxisConfig{
		Enabled:          true,
		Scrollbar:        ShowWhenRequired,
		WheelSensitivity: 1,
	}
	return Config{
		Mode:          Bounce,
		BounceAmount:  0.1,
		Friction:      0.05,
		DragThreshold: 10,
		UseWheel:      true,
		Horizontal:    axis,
		Vertical:      axis,
	}
}

// Axis returns the configuration of o.
func (c Config) Axis(o Orientation) AxisConfig {
	if o == Vertical {
		return c.Vertical
	}
	return c.Horizontal
}

// Validate reports values a Controller would have to correct.
func (c Config) Validate() error {
	if c.Mode > Infinite {
		return fmt.Errorf("%w: %d", ErrUnknownMode, uint8(c.Mode))
	}
	if c.BounceAmount < 0 {
		return fmt.Errorf("bounce_amount must not be negative, got %v", c.BounceAmount)
	}
	if c.Friction < 0 || c.Friction > 1 {
		return fmt.Errorf("friction must be within [0, 1], got %v", c.Friction)
	}
	if c.DragThreshold < 0 {
		return fmt.Errorf("drag_threshold must not be negative, got %v", c.DragThreshold)
	}
	for _, o := range orientations {
		if v := c.Axis(o).Scrollbar; v > ShowWhenRequired {
			return fmt.Errorf("%s: %w: %d", o, ErrUnknownVisibility, uint8(v))
		}
	}
	return nil
}

// ParseConfig reads a TOML configuration. Keys missing from r keep their
// DefaultConfig values; unknown keys are an error.
func ParseConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode scroll config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid scroll config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Config returns the current configuration of the controller.
func (c *Controller) Config() Config {
	axis := func(o Orientation) AxisConfig {
		return AxisConfig{
			Enabled:          c.enabled[o],
			Scrollbar:        c.visibility[o],
			WheelSensitivity: c.wheelSensitivity.Get(o),
		}
	}
	return Config{
		Mode:          c.mode,
		BounceAmount:  c.bounceAmount,
		Friction:      c.friction,
		DragThreshold: c.dragThreshold,
		UseWheel:      c.useWheel,
		Horizontal:    axis(Horizontal),
		Vertical:      axis(Vertical),
	}
}

// ApplyConfig applies cfg to the controller. Out-of-range values are
// corrected the same way the individual setters correct them.
func (c *Controller) ApplyConfig(cfg Config) *Controller {
	c.SetMode(cfg.Mode).
		SetBounceAmount(cfg.BounceAmount).
		SetFriction(cfg.Friction).
		SetDragThreshold(cfg.DragThreshold).
		SetWheel(cfg.UseWheel, Vec2{cfg.Horizontal.WheelSensitivity, cfg.Vertical.WheelSensitivity})
	for _, o := range orientations {
		axis := cfg.Axis(o)
		c.visibility[o] = axis.Scrollbar
		c.SetScrollingEnabled(o, axis.Enabled)
	}
	return c
}
