package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dsviz/internal/bst"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Canvas is a grid of braille cells, each carrying the color of the last
// dot set in it. Text labels sit on top of the dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]bst.Color
	Labels        [][]rune
	LabelColors   [][]bst.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{Width: w, Height: h}
	c.Grid = make([][]rune, h)
	c.Colors = make([][]bst.Color, h)
	c.Labels = make([][]rune, h)
	c.LabelColors = make([][]bst.Color, h)
	for i := 0; i < h; i++ {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]bst.Color, w)
		c.Labels[i] = make([]rune, w)
		c.LabelColors[i] = make([]bst.Color, w)
	}
	c.Clear()
	return c
}

// Set lights the sub-pixel (x, y). The canvas is (Width*2) x (Height*4)
// sub-pixels.
func (c *Canvas) Set(x, y int, col bst.Color) {
	if x < 0 || y < 0 {
		return
	}

	cx := x / 2
	row := y / 4
	if cx >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][cx] |= rune(pixelMap[y%4][x%2])
	c.Colors[row][cx] = col
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Labels[i][j] = 0
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col bst.Color) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillEllipse lights every sub-pixel inside the axis-aligned ellipse.
func (c *Canvas) FillEllipse(cx, cy, rx, ry int, col bst.Color) {
	if rx <= 0 || ry <= 0 {
		c.Set(cx, cy, col)
		return
	}
	for y := -ry; y <= ry; y++ {
		fy := float64(y) / float64(ry)
		half := int(math.Round(float64(rx) * math.Sqrt(math.Max(0, 1-fy*fy))))
		for x := -half; x <= half; x++ {
			c.Set(cx+x, cy+y, col)
		}
	}
}

// Label writes text starting at cell (col, row), clipped to the canvas.
func (c *Canvas) Label(col, row int, text string, fg bst.Color) {
	if row < 0 || row >= c.Height {
		return
	}
	for i, r := range []rune(text) {
		x := col + i
		if x < 0 || x >= c.Width {
			continue
		}
		c.Labels[row][x] = r
		c.LabelColors[row][x] = fg
	}
}

// String renders the canvas without color.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		for j, r := range row {
			if l := c.Labels[i][j]; l != 0 {
				r = l
			}
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Render draws the canvas with each run of equally colored cells styled
// once. tint maps engine colors to the active theme.
func (c *Canvas) Render(tint func(bst.Color) bst.Color) string {
	var b strings.Builder
	for i := 0; i < c.Height; i++ {
		var run strings.Builder
		var style lipgloss.Style
		var key cellStyle
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(style.Render(run.String()))
				run.Reset()
			}
		}
		for j := 0; j < c.Width; j++ {
			r, k := c.cell(i, j)
			if k != key || j == 0 {
				flush()
				key = k
				style = k.style(tint)
			}
			run.WriteRune(r)
		}
		flush()
		b.WriteByte('\n')
	}
	return b.String()
}

type cellStyle struct {
	fg, bg     bst.Color
	label, lit bool
}

func (c *Canvas) cell(i, j int) (rune, cellStyle) {
	if l := c.Labels[i][j]; l != 0 {
		return l, cellStyle{fg: c.LabelColors[i][j], bg: c.Colors[i][j], label: true, lit: c.Grid[i][j] != blank}
	}
	r := c.Grid[i][j]
	if r == blank {
		return r, cellStyle{}
	}
	return r, cellStyle{fg: c.Colors[i][j], lit: true}
}

func (k cellStyle) style(tint func(bst.Color) bst.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if !k.lit && !k.label {
		return s
	}
	s = s.Foreground(lipgloss.Color(hex(tint(k.fg))))
	if k.label && k.lit {
		s = s.Background(lipgloss.Color(hex(tint(k.bg)))).Bold(true)
	}
	return s
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
