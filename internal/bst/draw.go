package bst

import (
	"math"
	"strconv"
)

const (
	labelSize        = 20
	edgeThickness    = 1
	arrowThickness   = 4
	arrowHeadLength  = 10
	arrowHeadAngle   = 0.3
	notificationY    = 50
	notificationSize = 20
)

// Draw renders the current frame: edges below nodes, then the insert arrow
// and the notification on top.
func (t *Tree) Draw(s Surface) {
	t.store.walk(func(_ NodeID, n *Node, _ int) {
		for _, c := range [2]NodeID{n.Left, n.Right} {
			if c != NoNode {
				s.DrawLine(n.Position, t.store.get(c).Position, edgeThickness, Black)
			}
		}
	})

	t.store.walk(func(_ NodeID, n *Node, _ int) {
		s.DrawCircle(n.Position, t.params.NodeRadius, n.Color)
		label := strconv.Itoa(n.Value)
		w := s.MeasureText(label, labelSize)
		s.DrawText(label, Vec2{X: n.Position.X - w/2, Y: n.Position.Y - labelSize/2}, labelSize, White)
	})

	if a, ok := t.Arrow(); ok {
		s.DrawLine(a.Start, a.Tip, arrowThickness, Gold)
		left, right := arrowHead(a.Start, a.End, a.Tip)
		s.DrawTriangle(a.Tip, left, right, Gold)
	}

	if msg := t.notice.message; msg != "" {
		w := s.MeasureText(msg, notificationSize)
		s.DrawText(msg, Vec2{X: t.params.Width/2 - w/2, Y: notificationY}, notificationSize, Orange)
	}
}

// arrowHead returns the two back corners of the head at tip, oriented along
// start->end.
func arrowHead(start, end, tip Vec2) (Vec2, Vec2) {
	angle := math.Atan2(end.Y-start.Y, end.X-start.X)
	left := Vec2{
		X: tip.X - arrowHeadLength*math.Cos(angle-arrowHeadAngle),
		Y: tip.Y - arrowHeadLength*math.Sin(angle-arrowHeadAngle),
	}
	right := Vec2{
		X: tip.X - arrowHeadLength*math.Cos(angle+arrowHeadAngle),
		Y: tip.Y - arrowHeadLength*math.Sin(angle+arrowHeadAngle),
	}
	return left, right
}
