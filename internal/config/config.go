// Package config handles loading and saving spotlight configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/spotlight/internal/mask"
	"github.com/f3rmion/spotlight/internal/pinyin"
	"github.com/f3rmion/spotlight/internal/reveal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment overrides, e.g. SPOTLIGHT_RADIUS.
const EnvPrefix = "SPOTLIGHT"

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// Tracking regions.
const (
	TrackContainer = "container"
	TrackWindow    = "window"
)

var (
	// ErrEmptyPalette is returned when a colour list is empty.
	ErrEmptyPalette = errors.New("config: colour list must not be empty")
	// ErrInvalidMode is returned for a mode other than block or cell.
	ErrInvalidMode = errors.New("config: invalid mode")
	// ErrInvalidTrack is returned for a track other than container or window.
	ErrInvalidTrack = errors.New("config: invalid track")
	// ErrInvalidRomanize is returned for an unknown romanize style.
	ErrInvalidRomanize = errors.New("config: invalid romanize style")
	// ErrInvalidMetrics is returned for non-positive cell sizes.
	ErrInvalidMetrics = errors.New("config: cell size must be positive")
	// ErrInvalidFontSize is returned for a zero, negative or NaN font size.
	ErrInvalidFontSize = errors.New("config: font size must be positive")
)

// Config holds all user configuration for a spotlight title.
type Config struct {
	Text            string   `yaml:"text" mapstructure:"text"`
	BaseColors      []string `yaml:"base_colors" mapstructure:"base_colors"`
	HighlightColors []string `yaml:"highlight_colors" mapstructure:"highlight_colors"`

	Radius         float64 `yaml:"radius" mapstructure:"radius"`                   // Mask radius in pixel-equivalents
	SoftEdge       float64 `yaml:"soft_edge" mapstructure:"soft_edge"`             // Width of the feather band
	FeatherOpacity float64 `yaml:"feather_opacity" mapstructure:"feather_opacity"` // Opacity where the feather starts

	FontSize float64 `yaml:"font_size" mapstructure:"font_size"`
	Gap      float64 `yaml:"gap" mapstructure:"gap"`
	Font     string  `yaml:"font,omitempty" mapstructure:"font"` // Font file, "system", or empty for the embedded face

	Mode       string  `yaml:"mode" mapstructure:"mode"` // block or cell
	CellWidth  float64 `yaml:"cell_width" mapstructure:"cell_width"`
	CellHeight float64 `yaml:"cell_height" mapstructure:"cell_height"`

	Romanize string `yaml:"romanize,omitempty" mapstructure:"romanize"` // tone, plain, or empty
	Track    string `yaml:"track" mapstructure:"track"`                  // container or window

	Tagline []string `yaml:"tagline,omitempty" mapstructure:"tagline"`
	Footer  string   `yaml:"footer,omitempty" mapstructure:"footer"`
}

// DefaultBaseColors and DefaultHighlightColors are used when no palette is configured.
var (
	DefaultBaseColors      = []string{"#9ca3af"}
	DefaultHighlightColors = []string{
		"#f87171", // red-400
		"#fb923c", // orange-400
		"#fbbf24", // amber-400
		"#facc15", // yellow-400
		"#a3e635", // lime-400
		"#4ade80", // green-400
		"#34d399", // emerald-400
		"#2dd4bf", // teal-400
		"#22d3ee", // cyan-400
		"#38bdf8", // sky-400
		"#60a5fa", // blue-400
		"#818cf8", // indigo-400
		"#a78bfa", // violet-400
		"#c084fc", // purple-400
	}
)

// Default returns the stock settings.
func Default() *Config {
	return &Config{
		Text:            "spotlight",
		BaseColors:      append([]string(nil), DefaultBaseColors...),
		HighlightColors: append([]string(nil), DefaultHighlightColors...),
		Radius:          mask.DefaultRadius,
		SoftEdge:        mask.DefaultSoftEdge,
		FeatherOpacity:  mask.DefaultFeatherOpacity,
		FontSize:        reveal.DefaultFontSize,
		Gap:             0,
		Mode:            reveal.ModeBlock.String(),
		CellWidth:       reveal.DefaultMetrics.CellWidth,
		CellHeight:      reveal.DefaultMetrics.CellHeight,
		Track:           TrackContainer,
	}
}

// Preset returns the storymaster.ai landing page title.
func Preset() *Config {
	cfg := Default()
	cfg.Text = "storymaster.ai"
	cfg.Radius = 120
	cfg.SoftEdge = 40
	cfg.Tagline = []string{
		"real people | rpg mechanics | stats numbers | skills",
		"infinite story",
	}
	cfg.Footer = "(debut late 2025)"
	return cfg
}

// SetDefaults registers every default on v so missing keys fall back to them.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("text", d.Text)
	v.SetDefault("base_colors", d.BaseColors)
	v.SetDefault("highlight_colors", d.HighlightColors)
	v.SetDefault("radius", d.Radius)
	v.SetDefault("soft_edge", d.SoftEdge)
	v.SetDefault("feather_opacity", d.FeatherOpacity)
	v.SetDefault("font_size", d.FontSize)
	v.SetDefault("gap", d.Gap)
	v.SetDefault("font", d.Font)
	v.SetDefault("mode", d.Mode)
	v.SetDefault("cell_width", d.CellWidth)
	v.SetDefault("cell_height", d.CellHeight)
	v.SetDefault("romanize", d.Romanize)
	v.SetDefault("track", d.Track)
	v.SetDefault("tagline", d.Tagline)
	v.SetDefault("footer", d.Footer)
}

// Load reads configuration from v: defaults, then the config file if one is
// set and exists, then SPOTLIGHT_* environment variables and bound flags.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// A missing file is fine: defaults and overrides still apply.
	if path := v.ConfigFileUsed(); path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigType("yaml")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads a config file with the usual defaults and overrides.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return Load(v)
}

// Save writes cfg as YAML.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks the settings that would otherwise only fail at render time.
func (c *Config) Validate() error {
	if len(c.BaseColors) == 0 {
		return fmt.Errorf("base_colors: %w", ErrEmptyPalette)
	}
	if len(c.HighlightColors) == 0 {
		return fmt.Errorf("highlight_colors: %w", ErrEmptyPalette)
	}
	if _, err := reveal.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("mode %q: %w", c.Mode, ErrInvalidMode)
	}
	switch c.Track {
	case TrackContainer, TrackWindow:
	default:
		return fmt.Errorf("track %q: %w", c.Track, ErrInvalidTrack)
	}
	if _, err := pinyin.ParseStyle(c.Romanize); err != nil {
		return fmt.Errorf("romanize %q: %w", c.Romanize, ErrInvalidRomanize)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("cell %vx%v: %w", c.CellWidth, c.CellHeight, ErrInvalidMetrics)
	}
	if !(c.FontSize > 0) {
		return fmt.Errorf("font_size %v: %w", c.FontSize, ErrInvalidFontSize)
	}
	return nil
}

// Metrics returns the configured terminal cell size.
func (c *Config) Metrics() reveal.Metrics {
	return reveal.Metrics{CellWidth: c.CellWidth, CellHeight: c.CellHeight}
}

// RenderText returns the title as it will be drawn, romanised if configured.
func (c *Config) RenderText() string {
	style, err := pinyin.ParseStyle(c.Romanize)
	if err != nil {
		return c.Text
	}
	return pinyin.NewRomanizer(style).Romanize(c.Text)
}

// MissingGlyphs reports whether the drawn title still holds Han runes while
// no font file is configured. The built-in face has no CJK glyphs.
func (c *Config) MissingGlyphs() bool {
	return c.Font == "" && pinyin.HasHan(c.RenderText())
}

// Options converts the config into renderer options.
func (c *Config) Options() reveal.Options {
	return reveal.Options{
		Text:            c.RenderText(),
		BaseColors:      c.BaseColors,
		HighlightColors: c.HighlightColors,
		Radius:          c.Radius,
		SoftEdge:        c.SoftEdge,
		FeatherOpacity:  c.FeatherOpacity,
		FontSize:        c.FontSize,
		Gap:             c.Gap,
	}
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "spotlight"), nil
}

// EnsureConfigDir creates the config directory if it doesn't exist.
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
