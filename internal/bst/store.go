package bst

// NodeID addresses a node in the arena. IDs are stable for the lifetime of
// the Tree because nodes are never freed.
type NodeID int32

// NoNode marks an empty child slot or a missing node.
const NoNode NodeID = 0

// Node is one arena slot.
type Node struct {
	Value       int
	Left, Right NodeID

	Position Vec2
	Target   Vec2
	// Depth and Span record the row and horizontal extent the node was
	// placed with.
	Depth int
	Span  float64

	Positioned bool
	Animating  bool

	TraversalHighlight bool
	InsertHighlight    bool
	Found              bool
	Fading             bool

	Color        Color
	TargetColor  Color
	FadeFrom     Color
	FadeProgress float64
	FoundHold    float64
}

// store owns every node. nodes[0] is the NoNode sentinel and is never
// handed out.
type store struct {
	nodes []Node
	root  NodeID
}

func newStore() store {
	return store{nodes: make([]Node, 1, 16)}
}

func (s *store) len() int { return len(s.nodes) - 1 }

// get returns the slot for id. The pointer is invalidated by alloc.
func (s *store) get(id NodeID) *Node {
	return &s.nodes[id]
}

func (s *store) alloc(value int, pos Vec2) NodeID {
	s.nodes = append(s.nodes, Node{
		Value:       value,
		Position:    pos,
		Target:      pos,
		Color:       Baseline,
		TargetColor: Baseline,
		FadeFrom:    Baseline,
	})
	return NodeID(len(s.nodes) - 1)
}

// next returns the child of id that a walk toward value descends into.
func (s *store) next(id NodeID, value int) NodeID {
	n := &s.nodes[id]
	if value < n.Value {
		return n.Left
	}
	return n.Right
}

// path collects the nodes visited from the root toward value. With
// stopOnMatch the walk ends at the first node holding value; otherwise it
// runs until an empty child slot, so the last element is the parent an
// insert would attach to.
func (s *store) path(value int, stopOnMatch bool) []NodeID {
	var out []NodeID
	for id := s.root; id != NoNode; id = s.next(id, value) {
		out = append(out, id)
		if stopOnMatch && s.nodes[id].Value == value {
			break
		}
	}
	return out
}

// parentFor returns the node a new value would hang from, or NoNode for an
// empty tree.
func (s *store) parentFor(value int) NodeID {
	parent := NoNode
	for id := s.root; id != NoNode; id = s.next(id, value) {
		parent = id
	}
	return parent
}

// attach links child under parent on the side its value selects. The slot
// must be empty.
func (s *store) attach(parent, child NodeID) {
	p := &s.nodes[parent]
	if s.nodes[child].Value < p.Value {
		p.Left = child
	} else {
		p.Right = child
	}
}

// find returns the first node on the search path that holds value.
func (s *store) find(value int) NodeID {
	for id := s.root; id != NoNode; id = s.next(id, value) {
		if s.nodes[id].Value == value {
			return id
		}
	}
	return NoNode
}

// walk visits every reachable node in pre-order with its depth.
func (s *store) walk(fn func(id NodeID, n *Node, depth int)) {
	if s.root == NoNode {
		return
	}
	type frame struct {
		id    NodeID
		depth int
	}
	stack := []frame{{s.root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &s.nodes[f.id]
		fn(f.id, n, f.depth)
		if n.Right != NoNode {
			stack = append(stack, frame{n.Right, f.depth + 1})
		}
		if n.Left != NoNode {
			stack = append(stack, frame{n.Left, f.depth + 1})
		}
	}
}

// inOrder returns the node IDs sorted by the tree order.
func (s *store) inOrder() []NodeID {
	out := make([]NodeID, 0, s.len())
	var stack []NodeID
	id := s.root
	for id != NoNode || len(stack) > 0 {
		for id != NoNode {
			stack = append(stack, id)
			id = s.nodes[id].Left
		}
		id = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, id)
		id = s.nodes[id].Right
	}
	return out
}
