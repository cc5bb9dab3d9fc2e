package bst_test

import (
	"fmt"

	"github.com/san-kum/dsviz/internal/bst"
)

// frame is a binary-exact step so timer thresholds are hit on exact frames.
const frame = 1.0 / 64

type recorder struct {
	events []bst.Event
}

func (r *recorder) OnEvent(e bst.Event) { r.events = append(r.events, e) }

func (r *recorder) kinds() []bst.EventKind {
	out := make([]bst.EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}

func (r *recorder) reset() { r.events = r.events[:0] }

// settle steps the tree until it is idle and returns the number of frames
// taken, or -1 if it never settled.
func settle(tree *bst.Tree, dt float64, maxFrames int) int {
	for i := 0; i < maxFrames; i++ {
		if tree.Idle() {
			return i
		}
		tree.Update(dt)
	}
	if tree.Idle() {
		return maxFrames
	}
	return -1
}

func build(tree *bst.Tree, values ...int) {
	for _, v := range values {
		tree.Insert(v)
		if settle(tree, frame, 100000) < 0 {
			panic(fmt.Sprintf("insert %d did not settle", v))
		}
	}
}

func valueOf(tree *bst.Tree, id bst.NodeID) int {
	n, ok := tree.Node(id)
	if !ok {
		return -1
	}
	return n.Value
}

// surfaceCall is one primitive recorded by recordingSurface.
type surfaceCall struct {
	op    string
	text  string
	color bst.Color
	a, b  bst.Vec2
	width float64
}

type recordingSurface struct {
	calls []surfaceCall
}

func (s *recordingSurface) DrawLine(from, to bst.Vec2, thickness float64, c bst.Color) {
	s.calls = append(s.calls, surfaceCall{op: "line", a: from, b: to, width: thickness, color: c})
}

func (s *recordingSurface) DrawCircle(center bst.Vec2, radius float64, c bst.Color) {
	s.calls = append(s.calls, surfaceCall{op: "circle", a: center, width: radius, color: c})
}

func (s *recordingSurface) DrawTriangle(a, b, c bst.Vec2, col bst.Color) {
	s.calls = append(s.calls, surfaceCall{op: "triangle", a: a, b: b, color: col})
}

func (s *recordingSurface) DrawText(text string, pos bst.Vec2, size int, c bst.Color) {
	s.calls = append(s.calls, surfaceCall{op: "text", text: text, a: pos, width: float64(size), color: c})
}

func (s *recordingSurface) MeasureText(text string, size int) float64 {
	return float64(len(text)*size) / 2
}

func (s *recordingSurface) ops() []string {
	out := make([]string, len(s.calls))
	for i, c := range s.calls {
		out[i] = c.op
	}
	return out
}
