package viz

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/dsviz/internal/bst"
)

// Theme defines the panel colors and how node colors are tinted.
type Theme struct {
	Name    string
	Primary lipgloss.Color
	Accent  lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Warning lipgloss.Color
	// Tint blends node colors toward Primary in Lab space; 0 keeps the
	// engine palette.
	Tint float64
	// Desaturate mixes node colors toward their own gray.
	Desaturate float64
}

var (
	ThemeDefault = Theme{
		Name:    "default",
		Primary: lipgloss.Color("#0079f1"),
		Accent:  lipgloss.Color("#ffcb00"),
		Text:    lipgloss.Color("#ffffff"),
		Muted:   lipgloss.Color("#666688"),
		Warning: lipgloss.Color("#ffa100"),
	}

	ThemeRetroGreen = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"),
		Accent:  lipgloss.Color("#88ff88"),
		Text:    lipgloss.Color("#00ff00"),
		Muted:   lipgloss.Color("#005500"),
		Warning: lipgloss.Color("#ffff00"),
		Tint:    0.5,
	}

	ThemeOcean = Theme{
		Name:    "ocean",
		Primary: lipgloss.Color("#0077be"),
		Accent:  lipgloss.Color("#ffd700"),
		Text:    lipgloss.Color("#e0f0ff"),
		Muted:   lipgloss.Color("#4488aa"),
		Warning: lipgloss.Color("#ffcc00"),
		Tint:    0.25,
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"),
		Accent:  lipgloss.Color("#feca57"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
		Warning: lipgloss.Color("#ffc048"),
		Tint:    0.3,
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Accent:     lipgloss.Color("#0088ff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Warning:    lipgloss.Color("#ffaa00"),
		Desaturate: 0.6,
	}

	Themes = []Theme{
		ThemeDefault,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
		ThemeMinimal,
	}
)

// GetTheme returns a theme by name, falling back to the default.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeDefault
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// NextTheme returns the theme after name in Themes.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeDefault
}

// Apply maps an engine color through the theme.
func (t Theme) Apply(c bst.Color) bst.Color {
	if t.Tint == 0 && t.Desaturate == 0 {
		return c
	}
	col := toColorful(c)
	if t.Tint > 0 {
		if p, err := colorful.Hex(string(t.Primary)); err == nil {
			col = col.BlendLab(p, t.Tint)
		}
	}
	if t.Desaturate > 0 {
		h, s, l := col.Hsl()
		col = colorful.Hsl(h, s*(1-t.Desaturate), l)
	}
	col = col.Clamped()
	r, g, b := col.RGB255()
	return bst.Color{R: r, G: g, B: b, A: 255}
}

func toColorful(c bst.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func hex(c bst.Color) string {
	return toColorful(c).Hex()
}
