// Package config loads sketchpad settings from a TOML file.
//
// A config file is optional. Any key it leaves out keeps its default, and the
// window size defaults depend on the chosen variant:
//
//	variant = "editor"        # "button" (default) or "editor"
//	initial_color = "black"
//
//	[window]
//	width = 500
//	height = 800
//
//	[slider]
//	track_width = 500
//	track_height = 44
//	step = 5
//
//	[log]
//	level = "info"            # "debug", "info", "warn", "error"
//	file = ""                 # empty means the default state directory
package config

import (
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sketchpad/pkg/errors"
	"github.com/matzehuels/sketchpad/pkg/palette"
	"github.com/matzehuels/sketchpad/pkg/slider"
)

const (
	// AppName is used for config and state directories.
	AppName = "sketchpad"

	// VariantButton shows a "Print Color Name" button under the slider.
	VariantButton = "button"

	// VariantEditor shows a text editor styled by the color and slider.
	VariantEditor = "editor"
)

// Variants lists the accepted variant names.
var Variants = []string{VariantButton, VariantEditor}

// LogLevels lists the accepted log level names.
var LogLevels = []string{"debug", "info", "warn", "error"}

// Config is the full set of user settings.
type Config struct {
	Variant      string       `toml:"variant"`
	InitialColor string       `toml:"initial_color"`
	Window       WindowConfig `toml:"window"`
	Slider       SliderConfig `toml:"slider"`
	Log          LogConfig    `toml:"log"`

	// window dimensions set explicitly by a config file
	fileWidth  bool
	fileHeight bool
}

// WindowConfig is the composed view size in points.
type WindowConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// SliderConfig is the slider geometry in points and the keyboard step size.
type SliderConfig struct {
	TrackWidth  float64 `toml:"track_width"`
	TrackHeight float64 `toml:"track_height"`
	Step        float64 `toml:"step"`
}

// LogConfig controls the session log.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the defaults for variant. Unknown variants fall back to
// the button layout.
func Default(variant string) Config {
	if variant != VariantEditor {
		variant = VariantButton
	}
	return Config{
		Variant:      variant,
		InitialColor: palette.Black.String(),
		Window:       DefaultWindow(variant),
		Slider: SliderConfig{
			TrackWidth:  500,
			TrackHeight: 44,
			Step:        5,
		},
		Log: LogConfig{Level: "info"},
	}
}

// DefaultWindow returns the fixed window size of a variant.
func DefaultWindow(variant string) WindowConfig {
	if variant == VariantEditor {
		return WindowConfig{Width: 500, Height: 800}
	}
	return WindowConfig{Width: 500, Height: 400}
}

// Load reads the file at path on top of the defaults.
// A missing file is an ErrCodeFileNotFound error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	return Parse(string(data))
}

// LoadDefault reads the file at DefaultPath, returning the button defaults
// when it does not exist.
func LoadDefault() (Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(VariantButton), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(VariantButton), nil
	}
	return cfg, err
}

// Parse decodes TOML text on top of the defaults and validates the result.
func Parse(text string) (Config, error) {
	cfg := Default(VariantButton)
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}

	variant, err := errors.ValidateChoice(errors.ErrCodeInvalidVariant, "variant", cfg.Variant, Variants...)
	if err != nil {
		return Config{}, err
	}
	cfg.fileWidth = md.IsDefined("window", "width")
	cfg.fileHeight = md.IsDefined("window", "height")
	cfg.SetVariant(variant)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetVariant switches to variant. Window dimensions the config file did not
// set follow the variant's default size.
func (c *Config) SetVariant(variant string) {
	c.Variant = variant
	window := DefaultWindow(variant)
	if !c.fileWidth {
		c.Window.Width = window.Width
	}
	if !c.fileHeight {
		c.Window.Height = window.Height
	}
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := errors.ValidateChoice(errors.ErrCodeInvalidVariant, "variant", c.Variant, Variants...); err != nil {
		return err
	}
	if _, err := palette.Parse(c.InitialColor); err != nil {
		return err
	}
	dims := []struct {
		field string
		v     float64
	}{
		{"window.width", c.Window.Width},
		{"window.height", c.Window.Height},
		{"slider.track_width", c.Slider.TrackWidth},
		{"slider.track_height", c.Slider.TrackHeight},
		{"slider.step", c.Slider.Step},
	}
	for _, d := range dims {
		if err := errors.ValidateDimension(d.field, d.v); err != nil {
			return err
		}
	}
	if c.Slider.TrackHeight/2 > slider.MaxPercentage {
		return errors.New(errors.ErrCodeInvalidConfig, "slider.track_height %g leaves no room for the thumb", c.Slider.TrackHeight)
	}
	if _, err := errors.ValidateChoice(errors.ErrCodeInvalidConfig, "log.level", c.Log.Level, LogLevels...); err != nil {
		return err
	}
	return nil
}

// Color returns the parsed initial color.
func (c Config) Color() palette.Color {
	color, err := palette.Parse(c.InitialColor)
	if err != nil {
		return palette.Black
	}
	return color
}

// Track returns the slider geometry.
func (c Config) Track() slider.Track {
	return slider.Track{Width: c.Slider.TrackWidth, Height: c.Slider.TrackHeight}
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// DefaultPath returns the config file location using the XDG standard
// (~/.config/sketchpad/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// StateDir returns the directory for session logs using the XDG standard
// (~/.local/state/sketchpad/).
func StateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", AppName), nil
}
