package config

import "sort"

// Presets are display profiles selectable with --preset.
var Presets = map[string]*Config{
	"classroom": DefaultConfig(),
	"lecture": {
		Screen:    ScreenConfig{Width: 1920, Height: 1080, FPS: 60},
		Layout:    LayoutConfig{TopOffset: 180, RowHeight: 120, NodeRadius: 30},
		Animation: AnimationConfig{PositionGain: 3, SnapEpsilon: 0.5, SearchDelay: 1.0, ArrowSpeed: 0.75, FadeRate: 1.0, FoundHold: 2.0, Notification: 3.0},
		Theme:     "default",
		DataDir:   DefaultDataDir,
	},
	"fast": {
		Screen:    ScreenConfig{Width: 1600, Height: 900, FPS: 60},
		Layout:    LayoutConfig{TopOffset: 150, RowHeight: 100, NodeRadius: 25},
		Animation: AnimationConfig{PositionGain: 10, SnapEpsilon: 0.5, SearchDelay: 0.2, ArrowSpeed: 4, FadeRate: 4, FoundHold: 0.5, Notification: 1.5},
		Theme:     "default",
		DataDir:   DefaultDataDir,
	},
	"compact": {
		Screen:    ScreenConfig{Width: 1280, Height: 720, FPS: 60},
		Layout:    LayoutConfig{TopOffset: 120, RowHeight: 80, NodeRadius: 20},
		Animation: DefaultConfig().Animation,
		Theme:     "default",
		DataDir:   DefaultDataDir,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
