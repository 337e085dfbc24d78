package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Built-in defaults. The yaml file only overrides what it names.
const (
	DefaultWindowWidth  = 960
	DefaultWindowHeight = 720

	// AnalysisWindow is the number of recent samples fed to the band
	// analyzer each frame.
	AnalysisWindow = 2048
)

// Config is the application configuration. Every numeric field is
// clamped into its valid range on load; a malformed value degrades to
// the nearest valid one instead of failing startup.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Log      LogConfig      `yaml:"log"`
	Rings    RingsConfig    `yaml:"rings"`
	Presence PresenceConfig `yaml:"presence"`
}

// WindowConfig sets the host window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LogConfig sets logging behavior.
type LogConfig struct {
	Level  string `yaml:"level"`
	Colors bool   `yaml:"colors"`
}

// RingsConfig sets the three ring tiers and the shared arc range.
type RingsConfig struct {
	MinArcFraction float64    `yaml:"min_arc_fraction"`
	MaxArcFraction float64    `yaml:"max_arc_fraction"`
	Hour           RingConfig `yaml:"hour"`
	Minute         RingConfig `yaml:"minute"`
	Second         RingConfig `yaml:"second"`
}

// RingConfig sets one ring tier.
type RingConfig struct {
	Radius       float64    `yaml:"radius"`
	Thickness    float64    `yaml:"thickness"`
	Points       int        `yaml:"points"`
	FalloffShape float64    `yaml:"falloff_shape"` // 0..1
	Color        [3]float64 `yaml:"color"`         // RGB, each 0..1
	TailFloor    float64    `yaml:"tail_floor"`    // 0..1
}

// PresenceConfig sets the staged fade timeline.
type PresenceConfig struct {
	HourFadeSeconds   float64 `yaml:"hour_fade_seconds"`
	MinuteFadeSeconds float64 `yaml:"minute_fade_seconds"`
	SecondFadeSeconds float64 `yaml:"second_fade_seconds"`
	EasePower         float64 `yaml:"ease_power"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  "The Still",
		},
		Log: LogConfig{
			Level:  "info",
			Colors: true,
		},
		Rings: RingsConfig{
			MinArcFraction: 0.04,
			MaxArcFraction: 0.96,
			Hour: RingConfig{
				Radius: 18, Thickness: 0.9, Points: 720,
				FalloffShape: 0.65,
				Color:        [3]float64{1.0, 0.78, 0.35},
				TailFloor:    0.12,
			},
			Minute: RingConfig{
				Radius: 14, Thickness: 0.7, Points: 540,
				FalloffShape: 0.45,
				Color:        [3]float64{0.35, 0.85, 0.95},
				TailFloor:    0.07,
			},
			Second: RingConfig{
				Radius: 10, Thickness: 0.5, Points: 360,
				FalloffShape: 0.25,
				Color:        [3]float64{0.75, 0.45, 1.0},
				TailFloor:    0.03,
			},
		},
		Presence: PresenceConfig{
			HourFadeSeconds:   60,
			MinuteFadeSeconds: 30,
			SecondFadeSeconds: 15,
			EasePower:         1,
		},
	}
}

// Load reads path over the defaults and clamps the result. A missing
// file is not an error: the defaults run as-is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				cfg.Clamp()
				return cfg, nil
			}
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}
	cfg.Clamp()
	return cfg, nil
}

// Clamp forces every field into its valid range.
func (c *Config) Clamp() {
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultWindowHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = "The Still"
	}

	c.Rings.MinArcFraction = clamp01(c.Rings.MinArcFraction)
	c.Rings.MaxArcFraction = clamp01(c.Rings.MaxArcFraction)
	if c.Rings.MaxArcFraction < c.Rings.MinArcFraction {
		c.Rings.MinArcFraction, c.Rings.MaxArcFraction = c.Rings.MaxArcFraction, c.Rings.MinArcFraction
	}
	clampRing(&c.Rings.Hour)
	clampRing(&c.Rings.Minute)
	clampRing(&c.Rings.Second)

	if c.Presence.HourFadeSeconds <= 0 {
		c.Presence.HourFadeSeconds = 60
	}
	if c.Presence.MinuteFadeSeconds <= 0 {
		c.Presence.MinuteFadeSeconds = 30
	}
	if c.Presence.SecondFadeSeconds <= 0 {
		c.Presence.SecondFadeSeconds = 15
	}
	if c.Presence.EasePower < 0 {
		c.Presence.EasePower = 0
	}
}

func clampRing(r *RingConfig) {
	if r.Radius <= 0 {
		r.Radius = 1
	}
	if r.Thickness <= 0 {
		r.Thickness = 0.1
	}
	if r.Points < 3 {
		r.Points = 3
	}
	r.FalloffShape = clamp01(r.FalloffShape)
	for i := range r.Color {
		r.Color[i] = clamp01(r.Color[i])
	}
	r.TailFloor = clamp01(r.TailFloor)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
