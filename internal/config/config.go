package config

import (
	"os"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/dsviz/internal/bst"
)

const (
	DefaultWidth        = 1600
	DefaultHeight       = 900
	DefaultFPS          = 60
	DefaultTopOffset    = 150.0
	DefaultRowHeight    = 100.0
	DefaultNodeRadius   = 25.0
	DefaultGain         = 5.0
	DefaultSnapEpsilon  = 0.5
	DefaultSearchDelay  = 0.5
	DefaultArrowSpeed   = 1.5
	DefaultFadeRate     = 2.0
	DefaultFoundHold    = 1.0
	DefaultNotification = 2.0
	DefaultTheme        = "default"
	DefaultDataDir      = ".dsviz"
)

type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Layout    LayoutConfig    `yaml:"layout"`
	Animation AnimationConfig `yaml:"animation"`
	Theme     string          `yaml:"theme"`
	DataDir   string          `yaml:"data_dir"`
}

type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type LayoutConfig struct {
	TopOffset  float64 `yaml:"top_offset"`
	RowHeight  float64 `yaml:"row_height"`
	NodeRadius float64 `yaml:"node_radius"`
}

// AnimationConfig holds rates in seconds or units per second.
type AnimationConfig struct {
	PositionGain float64 `yaml:"position_gain"`
	SnapEpsilon  float64 `yaml:"snap_epsilon"`
	SearchDelay  float64 `yaml:"search_delay"`
	ArrowSpeed   float64 `yaml:"arrow_speed"`
	FadeRate     float64 `yaml:"fade_rate"`
	FoundHold    float64 `yaml:"found_hold"`
	Notification float64 `yaml:"notification"`
}

func DefaultConfig() *Config {
	return &Config{
		Screen: ScreenConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
			FPS:    DefaultFPS,
		},
		Layout: LayoutConfig{
			TopOffset:  DefaultTopOffset,
			RowHeight:  DefaultRowHeight,
			NodeRadius: DefaultNodeRadius,
		},
		Animation: AnimationConfig{
			PositionGain: DefaultGain,
			SnapEpsilon:  DefaultSnapEpsilon,
			SearchDelay:  DefaultSearchDelay,
			ArrowSpeed:   DefaultArrowSpeed,
			FadeRate:     DefaultFadeRate,
			FoundHold:    DefaultFoundHold,
			Notification: DefaultNotification,
		},
		Theme:   DefaultTheme,
		DataDir: DefaultDataDir,
	}
}

// Load reads a YAML file over the defaults, so a partial file only
// overrides the keys it sets.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return errors.Wrapf(os.WriteFile(path, data, 0644), "writing config %s", path)
}

func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return errors.Wrapf(ErrInvalidScreen, "%dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.FPS <= 0 {
		return errors.Wrapf(ErrInvalidScreen, "fps %d", c.Screen.FPS)
	}
	if c.Layout.RowHeight <= 0 || c.Layout.NodeRadius <= 0 {
		return errors.Wrapf(ErrInvalidLayout, "row height %g, radius %g", c.Layout.RowHeight, c.Layout.NodeRadius)
	}
	rates := []struct {
		name string
		v    float64
	}{
		{"position_gain", c.Animation.PositionGain},
		{"snap_epsilon", c.Animation.SnapEpsilon},
		{"search_delay", c.Animation.SearchDelay},
		{"arrow_speed", c.Animation.ArrowSpeed},
		{"fade_rate", c.Animation.FadeRate},
		{"notification", c.Animation.Notification},
	}
	for _, r := range rates {
		if r.v <= 0 {
			return errors.Wrapf(ErrInvalidRate, "%s = %g", r.name, r.v)
		}
	}
	if c.Animation.FoundHold < 0 {
		return errors.Wrapf(ErrInvalidRate, "found_hold = %g", c.Animation.FoundHold)
	}
	return nil
}

// EngineParams converts the config into tree parameters.
func (c *Config) EngineParams() bst.Params {
	return bst.Params{
		Width:                float64(c.Screen.Width),
		Height:               float64(c.Screen.Height),
		TopOffset:            c.Layout.TopOffset,
		RowHeight:            c.Layout.RowHeight,
		NodeRadius:           c.Layout.NodeRadius,
		PositionGain:         c.Animation.PositionGain,
		SnapEpsilon:          c.Animation.SnapEpsilon,
		SearchDelay:          c.Animation.SearchDelay,
		ArrowSpeed:           c.Animation.ArrowSpeed,
		FadeRate:             c.Animation.FadeRate,
		FoundHold:            c.Animation.FoundHold,
		NotificationDuration: c.Animation.Notification,
	}
}
