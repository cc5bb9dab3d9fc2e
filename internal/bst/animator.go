package bst

import "math"

// animator moves newly placed nodes toward their targets with a first
// order lag and snaps them once close enough.
type animator struct {
	gain    float64
	epsilon float64
	active  []NodeID
}

func newAnimator(p Params) animator {
	return animator{gain: p.PositionGain, epsilon: p.SnapEpsilon}
}

func (a *animator) add(s *store, id NodeID) {
	n := s.get(id)
	if n.Animating {
		return
	}
	n.Animating = true
	a.active = append(a.active, id)
}

func (a *animator) len() int { return len(a.active) }

func (a *animator) update(s *store, dt float64) {
	if len(a.active) == 0 {
		return
	}
	f := math.Min(1, a.gain*dt)
	kept := a.active[:0]
	for _, id := range a.active {
		n := s.get(id)
		n.Position = n.Position.Lerp(n.Target, f)
		if math.Abs(n.Target.X-n.Position.X) < a.epsilon && math.Abs(n.Target.Y-n.Position.Y) < a.epsilon {
			n.Position = n.Target
			n.Animating = false
			continue
		}
		kept = append(kept, id)
	}
	a.active = kept
}

// meanDistance is the average remaining distance of the active set.
func (a *animator) meanDistance(s *store) float64 {
	if len(a.active) == 0 {
		return 0
	}
	var sum float64
	for _, id := range a.active {
		n := s.get(id)
		sum += n.Target.Sub(n.Position).Len()
	}
	return sum / float64(len(a.active))
}
