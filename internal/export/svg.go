package export

import (
	"fmt"
	"html"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/dsviz/internal/bst"
	"github.com/san-kum/dsviz/internal/scenario"
)

// glyphWidth approximates the advance of a sans-serif glyph as a fraction
// of the font size.
const glyphWidth = 0.6

// Hex converts an engine color to #rrggbb.
func Hex(c bst.Color) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// SVG is a bst.Surface that accumulates SVG elements.
type SVG struct {
	sb strings.Builder
}

func (s *SVG) DrawLine(from, to bst.Vec2, thickness float64, c bst.Color) {
	fmt.Fprintf(&s.sb, `<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>
`, from.X, from.Y, to.X, to.Y, Hex(c), thickness)
}

func (s *SVG) DrawCircle(center bst.Vec2, radius float64, c bst.Color) {
	fmt.Fprintf(&s.sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, center.X, center.Y, radius, Hex(c))
}

func (s *SVG) DrawTriangle(a, b, c bst.Vec2, col bst.Color) {
	fmt.Fprintf(&s.sb, `<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="%s"/>
`, a.X, a.Y, b.X, b.Y, c.X, c.Y, Hex(col))
}

// DrawText places text with its top-left corner at pos, like raylib.
func (s *SVG) DrawText(text string, pos bst.Vec2, size int, c bst.Color) {
	fmt.Fprintf(&s.sb, `<text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%d" dominant-baseline="hanging" fill="%s">%s</text>
`, pos.X, pos.Y, size, Hex(c), html.EscapeString(text))
}

func (s *SVG) MeasureText(text string, size int) float64 {
	return float64(len(text)) * float64(size) * glyphWidth
}

// TreeToSVG renders the current frame of tree as a standalone document.
func TreeToSVG(tree *bst.Tree, width, height int) string {
	var s SVG
	tree.Draw(&s)

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#f5f5f5"/>
`, width, height, width, height)
	sb.WriteString(s.sb.String())
	sb.WriteString("</svg>")
	return sb.String()
}

// TimelineToSVG plots the number of moving nodes per frame.
func TimelineToSVG(frames []scenario.Frame, width, height int, strokeColor string) string {
	if len(frames) < 2 {
		return ""
	}

	maxT := frames[len(frames)-1].Time
	maxA := 1
	for _, f := range frames {
		if f.Animating > maxA {
			maxA = f.Animating
		}
	}
	if maxT <= 0 {
		maxT = 1
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, f := range frames {
		x := f.Time / maxT * float64(width)
		y := float64(height) - float64(f.Animating)/float64(maxA)*float64(height)*0.9
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
