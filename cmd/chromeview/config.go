package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/phanxgames/willowui"
)

// Config holds chromeview configuration.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	UI     UIConfig     `mapstructure:"ui"`

	// Templates are YAML chrome files loaded in order.
	Templates []string `mapstructure:"templates"`
	// Open is the template ID opened as the first window.
	Open string `mapstructure:"open"`

	// Script is an optional JSON input script replayed at startup.
	Script           string `mapstructure:"script"`
	ExitOnScriptDone bool   `mapstructure:"exit_on_script_done"`
	// ScreenshotDir receives PNGs from the script's screenshot steps.
	ScreenshotDir string `mapstructure:"screenshot_dir"`
}

// WindowConfig holds host window settings.
type WindowConfig struct {
	Title   string `mapstructure:"title"`
	Scale   int    `mapstructure:"scale"`
	ShowFPS bool   `mapstructure:"show_fps"`
}

// UIConfig mirrors willowui.Settings.
type UIConfig struct {
	Width               int     `mapstructure:"width"`
	Height              int     `mapstructure:"height"`
	TicksPerSecond      int     `mapstructure:"ticks_per_second"`
	ScrollSpeed         int     `mapstructure:"scroll_speed"`
	SmoothScroll        bool    `mapstructure:"smooth_scroll"`
	SmoothScrollSeconds float64 `mapstructure:"smooth_scroll_seconds"`
	TooltipDelayTicks   int     `mapstructure:"tooltip_delay_ticks"`
	DefaultCursor       string  `mapstructure:"default_cursor"`
	Debug               bool    `mapstructure:"debug"`
}

// Settings converts the [ui] table into validated willowui settings.
func (c Config) Settings() (willowui.Settings, error) {
	s := willowui.Settings{
		Width:               c.UI.Width,
		Height:              c.UI.Height,
		TicksPerSecond:      c.UI.TicksPerSecond,
		ScrollSpeed:         c.UI.ScrollSpeed,
		SmoothScroll:        c.UI.SmoothScroll,
		SmoothScrollSeconds: c.UI.SmoothScrollSeconds,
		TooltipDelayTicks:   c.UI.TooltipDelayTicks,
		DefaultCursor:       c.UI.DefaultCursor,
		Debug:               c.UI.Debug,
	}
	if err := s.Validate(); err != nil {
		return willowui.Settings{}, fmt.Errorf("invalid ui settings: %w", err)
	}
	return s, nil
}

// LoadConfig reads configuration from path (optional) and the environment.
// Env var overrides use prefix CHROMEVIEW_, e.g. CHROMEVIEW_UI_WIDTH.
// Relative template and script paths resolve against the config file's
// directory.
func LoadConfig(path string) (Config, error) {
	v := viper.New()

	d := willowui.DefaultSettings()
	v.SetDefault("window.title", "chromeview")
	v.SetDefault("window.scale", 1)
	v.SetDefault("window.show_fps", false)
	v.SetDefault("ui.width", d.Width)
	v.SetDefault("ui.height", d.Height)
	v.SetDefault("ui.ticks_per_second", d.TicksPerSecond)
	v.SetDefault("ui.scroll_speed", d.ScrollSpeed)
	v.SetDefault("ui.smooth_scroll", d.SmoothScroll)
	v.SetDefault("ui.smooth_scroll_seconds", d.SmoothScrollSeconds)
	v.SetDefault("ui.tooltip_delay_ticks", d.TooltipDelayTicks)
	v.SetDefault("ui.default_cursor", d.DefaultCursor)
	v.SetDefault("ui.debug", d.Debug)
	v.SetDefault("templates", []string{})
	v.SetDefault("open", "")
	v.SetDefault("script", "")
	v.SetDefault("exit_on_script_done", false)
	v.SetDefault("screenshot_dir", "screenshots")

	v.SetConfigType("toml")
	v.SetEnvPrefix("CHROMEVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if path != "" {
		dir := filepath.Dir(path)
		for i, t := range c.Templates {
			c.Templates[i] = resolve(dir, t)
		}
		if c.Script != "" {
			c.Script = resolve(dir, c.Script)
		}
	}
	return c, nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
