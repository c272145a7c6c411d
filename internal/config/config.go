package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle       = "burrow"
	DefaultWidth       = 1280
	DefaultHeight      = 720
	DefaultTPS         = 60
	DefaultRoute       = "/bunny"
	DefaultBunnies     = 20000
	DefaultTexture     = "bunny"
	DefaultWinDuration = 500.0
	DefaultBackground  = "#1099bb"
	DefaultScreenshots = "screenshots"
)

type Config struct {
	Window        WindowConfig `yaml:"window"`
	Route         string       `yaml:"route"`
	Bunny         BunnyConfig  `yaml:"bunny"`
	Win           WinConfig    `yaml:"win"`
	ShowStats     bool         `yaml:"show_stats"`
	Debug         bool         `yaml:"debug"`
	ScreenshotDir string       `yaml:"screenshot_dir"`
	Background    string       `yaml:"background"`
}

type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TPS       int    `yaml:"tps"`
	Resizable bool   `yaml:"resizable"`
}

type BunnyConfig struct {
	Count            int    `yaml:"count"`
	Texture          string `yaml:"texture"`
	PreferCompressed bool   `yaml:"prefer_compressed"`
	Seed             uint64 `yaml:"seed"`
}

type WinConfig struct {
	Texture  string  `yaml:"texture"`
	Duration float64 `yaml:"duration"`
}

func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:     DefaultTitle,
			Width:     DefaultWidth,
			Height:    DefaultHeight,
			TPS:       DefaultTPS,
			Resizable: true,
		},
		Route: DefaultRoute,
		Bunny: BunnyConfig{
			Count:            DefaultBunnies,
			Texture:          DefaultTexture,
			PreferCompressed: true,
		},
		Win: WinConfig{
			Texture:  DefaultTexture,
			Duration: DefaultWinDuration,
		},
		ShowStats:     true,
		ScreenshotDir: DefaultScreenshots,
		Background:    DefaultBackground,
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports every out-of-range field.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("config: tps %d must be positive", c.Window.TPS))
	}
	if c.Bunny.Count < 0 {
		errs = append(errs, fmt.Errorf("config: bunny count %d must not be negative", c.Bunny.Count))
	}
	if c.Win.Duration <= 0 {
		errs = append(errs, fmt.Errorf("config: win duration %v must be positive", c.Win.Duration))
	}
	if _, err := c.BackgroundRGB(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// BackgroundRGB parses Background ("#rrggbb" or "rrggbb") into a packed
// 0xRRGGBB value.
func (c *Config) BackgroundRGB() (uint32, error) {
	s := strings.TrimPrefix(c.Background, "#")
	if len(s) != 6 {
		return 0, fmt.Errorf("config: background %q is not #rrggbb", c.Background)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("config: background %q: %w", c.Background, err)
	}
	return uint32(v), nil
}
