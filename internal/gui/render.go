package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/dsviz/internal/bst"
)

// surface draws engine frames with raylib's immediate-mode 2D calls. It
// must only be used between BeginDrawing and EndDrawing.
type surface struct{}

func vec(v bst.Vec2) rl.Vector2 { return rl.NewVector2(float32(v.X), float32(v.Y)) }

func color(c bst.Color) rl.Color { return rl.NewColor(c.R, c.G, c.B, c.A) }

func (surface) DrawLine(from, to bst.Vec2, thickness float64, c bst.Color) {
	if thickness <= 1 {
		rl.DrawLineV(vec(from), vec(to), color(c))
		return
	}
	rl.DrawLineEx(vec(from), vec(to), float32(thickness), color(c))
}

func (surface) DrawCircle(center bst.Vec2, radius float64, c bst.Color) {
	rl.DrawCircleV(vec(center), float32(radius), color(c))
}

// DrawTriangle draws both windings; raylib culls the clockwise one.
func (surface) DrawTriangle(a, b, c bst.Vec2, col bst.Color) {
	rl.DrawTriangle(vec(a), vec(b), vec(c), color(col))
	rl.DrawTriangle(vec(a), vec(c), vec(b), color(col))
}

func (surface) DrawText(text string, pos bst.Vec2, size int, c bst.Color) {
	rl.DrawText(text, int32(pos.X), int32(pos.Y), int32(size), color(c))
}

func (surface) MeasureText(text string, size int) float64 {
	return float64(rl.MeasureText(text, int32(size)))
}
