package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the tunables of the drawing board. Zero-valued fields in a
// config file keep their defaults.
type Config struct {
	AppID      string  `toml:"app_id"`
	StorageKey string  `toml:"storage_key"`
	InkColor   string  `toml:"ink_color"`
	LineWidth  float64 `toml:"line_width"`

	// Viewports wider than Breakpoint use WideScale, others NarrowScale.
	Breakpoint  float32 `toml:"breakpoint"`
	WideScale   float32 `toml:"wide_scale"`
	NarrowScale float32 `toml:"narrow_scale"`

	WindowWidth  float32 `toml:"window_width"`
	WindowHeight float32 `toml:"window_height"`
}

func Default() Config {
	return Config{
		AppID:        "io.localsketch.board",
		StorageKey:   "drawing",
		InkColor:     "#2c3e50",
		LineWidth:    5,
		Breakpoint:   768,
		WideScale:    0.7,
		NarrowScale:  0.9,
		WindowWidth:  1024,
		WindowHeight: 768,
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	var file Config
	if err := toml.Unmarshal(data, &file); err != nil {
		return Default(), fmt.Errorf("parse config: %w", err)
	}
	cfg := Default().merge(file)
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func (c Config) merge(o Config) Config {
	if o.AppID != "" {
		c.AppID = o.AppID
	}
	if o.StorageKey != "" {
		c.StorageKey = o.StorageKey
	}
	if o.InkColor != "" {
		c.InkColor = o.InkColor
	}
	if o.LineWidth != 0 {
		c.LineWidth = o.LineWidth
	}
	if o.Breakpoint != 0 {
		c.Breakpoint = o.Breakpoint
	}
	if o.WideScale != 0 {
		c.WideScale = o.WideScale
	}
	if o.NarrowScale != 0 {
		c.NarrowScale = o.NarrowScale
	}
	if o.WindowWidth != 0 {
		c.WindowWidth = o.WindowWidth
	}
	if o.WindowHeight != 0 {
		c.WindowHeight = o.WindowHeight
	}
	return c
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.StorageKey) == "" {
		errs = append(errs, errors.New("storage_key must not be blank"))
	}
	if _, err := colorful.Hex(c.InkColor); err != nil {
		errs = append(errs, fmt.Errorf("ink_color %q: %w", c.InkColor, err))
	}
	if c.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("line_width must be positive, got %v", c.LineWidth))
	}
	if c.Breakpoint < 0 {
		errs = append(errs, fmt.Errorf("breakpoint must not be negative, got %v", c.Breakpoint))
	}
	for name, s := range map[string]float32{"wide_scale": c.WideScale, "narrow_scale": c.NarrowScale} {
		if s <= 0 || s > 1 {
			errs = append(errs, fmt.Errorf("%s must be in (0, 1], got %v", name, s))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SquareEdge returns the edge length of the square drawing surface for a
// viewport of the given size.
func (c Config) SquareEdge(viewWidth, viewHeight float32) float32 {
	scale := c.NarrowScale
	if viewWidth > c.Breakpoint {
		scale = c.WideScale
	}
	return min(viewWidth, viewHeight) * scale
}
