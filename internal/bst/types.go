package bst

import (
	"fmt"
	"math"
)

type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Lerp moves v toward to by the fraction t.
func (v Vec2) Lerp(to Vec2, t float64) Vec2 {
	return v.Add(to.Sub(v).Scale(t))
}

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Color is an RGBA color. Node colors always carry A == 255.
type Color struct {
	R, G, B, A uint8
}

// Palette shared by every renderer. Values follow raylib's defaults.
var (
	Blue   = Color{0, 121, 241, 255}
	Red    = Color{230, 41, 55, 255}
	Green  = Color{0, 228, 48, 255}
	Gold   = Color{255, 203, 0, 255}
	Orange = Color{255, 161, 0, 255}
	Black  = Color{0, 0, 0, 255}
	White  = Color{255, 255, 255, 255}

	// Baseline is the color of a node with no highlight.
	Baseline = Blue
)

// LerpColor interpolates each channel linearly. t is clamped to [0, 1] and
// the result is always opaque.
func LerpColor(from, to Color, t float64) Color {
	t = math.Max(0, math.Min(1, t))
	return Color{
		R: lerpChannel(from.R, to.R, t),
		G: lerpChannel(from.G, to.G, t),
		B: lerpChannel(from.B, to.B, t),
		A: 255,
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}

// Within reports whether every RGB channel differs from o by at most tol.
func (c Color) Within(o Color, tol int) bool {
	return absDiff(c.R, o.R) <= tol && absDiff(c.G, o.G) <= tol && absDiff(c.B, o.B) <= tol
}

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

// Params holds the layout geometry and animation rates of a Tree.
type Params struct {
	Width  float64
	Height float64

	TopOffset  float64
	RowHeight  float64
	NodeRadius float64

	PositionGain float64
	SnapEpsilon  float64

	SearchDelay float64
	ArrowSpeed  float64

	FadeRate  float64
	FoundHold float64

	NotificationDuration float64
}

func DefaultParams() Params {
	return Params{
		Width:                1600,
		Height:               900,
		TopOffset:            150,
		RowHeight:            100,
		NodeRadius:           25,
		PositionGain:         5,
		SnapEpsilon:          0.5,
		SearchDelay:          0.5,
		ArrowSpeed:           1.5,
		FadeRate:             2.0,
		FoundHold:            1.0,
		NotificationDuration: 2.0,
	}
}

// Surface is the drawing target of Tree.Draw.
type Surface interface {
	DrawLine(from, to Vec2, thickness float64, c Color)
	DrawCircle(center Vec2, radius float64, c Color)
	DrawTriangle(a, b, c Vec2, col Color)
	DrawText(text string, pos Vec2, size int, c Color)
	MeasureText(text string, size int) float64
}

type TraversalKind int

const (
	TraversalIdle TraversalKind = iota
	TraversalSearch
	TraversalInsert
)

func (k TraversalKind) String() string {
	switch k {
	case TraversalSearch:
		return "search"
	case TraversalInsert:
		return "insert"
	default:
		return "idle"
	}
}

func (k TraversalKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *TraversalKind) UnmarshalText(b []byte) error {
	for c := TraversalIdle; c <= TraversalInsert; c++ {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown traversal kind %q", b)
}

// Phase is the step of the active traversal's state machine.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseStepping
	PhaseArriving
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseStepping:
		return "stepping"
	case PhaseArriving:
		return "arriving"
	case PhaseDone:
		return "done"
	default:
		return "idle"
	}
}

type EventKind int

const (
	// EventVisit: a search step highlighted Node.
	EventVisit EventKind = iota
	// EventHop: an insert arrow finished moving from From to Node.
	EventHop
	// EventCommit: Node was attached to the tree.
	EventCommit
	EventFound
	EventNotFound
	// EventSuperseded: the traversal was replaced before it finished.
	EventSuperseded
)

func (k EventKind) String() string {
	switch k {
	case EventVisit:
		return "visit"
	case EventHop:
		return "hop"
	case EventCommit:
		return "commit"
	case EventFound:
		return "found"
	case EventNotFound:
		return "not-found"
	case EventSuperseded:
		return "superseded"
	default:
		return "unknown"
	}
}

func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *EventKind) UnmarshalText(b []byte) error {
	for c := EventVisit; c <= EventSuperseded; c++ {
		if c.String() == string(b) {
			*k = c
			return nil
		}
	}
	return fmt.Errorf("unknown event kind %q", b)
}

// Event reports a step of a traversal. Value is the operand of the command
// that produced it.
type Event struct {
	Kind  EventKind     `json:"kind"`
	Op    TraversalKind `json:"op"`
	Node  NodeID        `json:"node"`
	From  NodeID        `json:"from,omitempty"`
	Value int           `json:"value"`
	Time  float64       `json:"time"`
}

type Observer interface {
	OnEvent(e Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(e Event)

func (f ObserverFunc) OnEvent(e Event) { f(e) }
