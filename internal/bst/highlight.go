package bst

import "math"

// updateColors runs the per-node color state machine. Priority is
// found, then traversal, then insert; a node with none of them fades
// linearly from the color it had when the fade began back to Baseline.
// A found node is green for at least the frame it was found in, even with
// a zero hold.
func (t *Tree) updateColors(dt float64) {
	s := &t.store
	for i := 1; i < len(s.nodes); i++ {
		n := &s.nodes[i]
		switch {
		case n.Found:
			hold(n, Green)
			n.FoundHold -= dt
			if n.FoundHold <= 0 {
				n.Found = false
				n.FoundHold = 0
			}
		case n.TraversalHighlight:
			hold(n, Red)
		case n.InsertHighlight:
			hold(n, Gold)
		default:
			t.fade(n, dt)
		}
	}
}

func hold(n *Node, c Color) {
	n.Color = c
	n.TargetColor = c
	n.Fading = false
	n.FadeProgress = 0
}

func (t *Tree) fade(n *Node, dt float64) {
	n.TargetColor = Baseline
	if n.Color == Baseline {
		n.Fading = false
		return
	}
	if !n.Fading {
		n.Fading = true
		n.FadeFrom = n.Color
		n.FadeProgress = 0
	}
	n.FadeProgress = math.Min(1, n.FadeProgress+t.params.FadeRate*dt)
	n.Color = LerpColor(n.FadeFrom, Baseline, n.FadeProgress)
	if n.Color.Within(Baseline, 1) {
		n.Color = Baseline
		n.Fading = false
		n.FadeProgress = 1
	}
}
