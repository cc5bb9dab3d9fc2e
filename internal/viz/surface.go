package viz

import (
	"math"

	"github.com/san-kum/dsviz/internal/bst"
)

// Surface draws engine frames onto a Canvas, scaling world coordinates
// (the engine's Width x Height) to braille sub-pixels.
type Surface struct {
	canvas         *Canvas
	scaleX, scaleY float64
}

func NewSurface(c *Canvas, worldW, worldH float64) *Surface {
	return &Surface{
		canvas: c,
		scaleX: float64(c.Width*2) / worldW,
		scaleY: float64(c.Height*4) / worldH,
	}
}

func (s *Surface) project(v bst.Vec2) (int, int) {
	return int(math.Round(v.X * s.scaleX)), int(math.Round(v.Y * s.scaleY))
}

func (s *Surface) DrawLine(from, to bst.Vec2, _ float64, c bst.Color) {
	x0, y0 := s.project(from)
	x1, y1 := s.project(to)
	s.canvas.DrawLine(x0, y0, x1, y1, c)
}

func (s *Surface) DrawCircle(center bst.Vec2, radius float64, c bst.Color) {
	x, y := s.project(center)
	rx := int(math.Round(radius * s.scaleX))
	ry := int(math.Round(radius * s.scaleY))
	s.canvas.FillEllipse(x, y, rx, ry, c)
}

func (s *Surface) DrawTriangle(a, b, c bst.Vec2, col bst.Color) {
	s.DrawLine(a, b, 1, col)
	s.DrawLine(b, c, 1, col)
	s.DrawLine(c, a, 1, col)
}

// DrawText writes text in whole cells. pos is the top-left corner; labels
// are vertically centered on the row their middle falls in.
func (s *Surface) DrawText(text string, pos bst.Vec2, size int, c bst.Color) {
	x, y := s.project(bst.Vec2{X: pos.X, Y: pos.Y + float64(size)/2})
	s.canvas.Label(int(math.Round(float64(x)/2)), y/4, text, c)
}

// MeasureText returns the world width of text laid out one rune per cell.
func (s *Surface) MeasureText(text string, _ int) float64 {
	return float64(len([]rune(text))) * 2 / s.scaleX
}
