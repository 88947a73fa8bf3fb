package willowui

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings holds the tunables a Context is created with.
type Settings struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// TicksPerSecond converts ticks to seconds for tweens and smooth scrolling.
	TicksPerSecond int `toml:"ticks_per_second"`
	// ScrollSpeed is the pixel distance of one scroll step.
	ScrollSpeed int `toml:"scroll_speed"`
	// SmoothScroll animates wheel scrolling instead of jumping.
	SmoothScroll bool `toml:"smooth_scroll"`
	// SmoothScrollSeconds is the duration of a smooth scroll animation.
	SmoothScrollSeconds float64 `toml:"smooth_scroll_seconds"`
	// TooltipDelayTicks is how long the cursor must rest before tooltips show.
	TooltipDelayTicks int `toml:"tooltip_delay_ticks"`
	// DefaultCursor is returned by CursorAt when no widget names one.
	DefaultCursor string `toml:"default_cursor"`
	// Debug enables tree-size warnings and misuse panics.
	Debug bool `toml:"debug"`
}

// DefaultSettings returns the settings used for unset fields.
func DefaultSettings() Settings {
	return Settings{
		Width:               1024,
		Height:              768,
		TicksPerSecond:      60,
		ScrollSpeed:         25,
		SmoothScroll:        true,
		SmoothScrollSeconds: 0.15,
		TooltipDelayTicks:   20,
		DefaultCursor:       "default",
	}
}

// withDefaults fills zero fields from DefaultSettings.
func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.Width <= 0 {
		s.Width = d.Width
	}
	if s.Height <= 0 {
		s.Height = d.Height
	}
	if s.TicksPerSecond <= 0 {
		s.TicksPerSecond = d.TicksPerSecond
	}
	if s.ScrollSpeed <= 0 {
		s.ScrollSpeed = d.ScrollSpeed
	}
	if s.SmoothScrollSeconds < 0 {
		s.SmoothScrollSeconds = 0
	}
	if s.DefaultCursor == "" {
		s.DefaultCursor = d.DefaultCursor
	}
	return s
}

// Validate reports settings that cannot drive a Context.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.TicksPerSecond <= 0 {
		return fmt.Errorf("ticks_per_second must be positive, got %d", s.TicksPerSecond)
	}
	if s.TooltipDelayTicks < 0 {
		return fmt.Errorf("tooltip_delay_ticks must not be negative, got %d", s.TooltipDelayTicks)
	}
	return nil
}

type settingsFile struct {
	UI Settings `toml:"ui"`
}

// ParseSettings decodes the [ui] table of a TOML document. Keys that are
// absent keep their DefaultSettings value.
func ParseSettings(data []byte) (Settings, error) {
	f := settingsFile{UI: DefaultSettings()}
	if err := toml.Unmarshal(data, &f); err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
	}
	if err := f.UI.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return f.UI, nil
}

// LoadSettings reads and parses a TOML settings file.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// MarshalSettings encodes s as a TOML document with a [ui] table.
func MarshalSettings(s Settings) ([]byte, error) {
	return toml.Marshal(settingsFile{UI: s})
}
