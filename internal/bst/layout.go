package bst

// computeLayout assigns targets to nodes that have never been placed. A
// node covering [xMin, xMax) at depth d is centered in its span on row d;
// its children split the span at the midpoint. Nodes placed earlier keep
// their target even if the tree has grown around them.
func (t *Tree) computeLayout() {
	s := &t.store
	if s.root == NoNode {
		return
	}

	type span struct {
		id         NodeID
		xMin, xMax float64
		depth      int
	}
	stack := []span{{s.root, 0, t.params.Width, 0}}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		mid := (sp.xMin + sp.xMax) / 2
		n := s.get(sp.id)
		if !n.Positioned {
			n.Target = Vec2{X: mid, Y: t.params.TopOffset + float64(sp.depth)*t.params.RowHeight}
			n.Positioned = true
			n.Depth = sp.depth
			n.Span = sp.xMax - sp.xMin
			t.anim.add(s, sp.id)
		}

		if n.Right != NoNode {
			stack = append(stack, span{n.Right, mid, sp.xMax, sp.depth + 1})
		}
		if n.Left != NoNode {
			stack = append(stack, span{n.Left, sp.xMin, mid, sp.depth + 1})
		}
	}
}
