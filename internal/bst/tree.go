package bst

import (
	"math"

	"github.com/san-kum/dsviz/internal/logging"
)

// Tree is the animated binary search tree. See the package documentation
// for the frame model.
type Tree struct {
	params Params
	store  store
	anim   animator
	active traversal
	notice notifier
	clock  float64

	logger   logging.Logger
	observer Observer
}

type Option func(*Tree)

func WithLogger(l logging.Logger) Option {
	return func(t *Tree) { t.logger = l }
}

// WithObserver registers o to receive every traversal event.
func WithObserver(o Observer) Option {
	return func(t *Tree) { t.observer = o }
}

func New(p Params, opts ...Option) *Tree {
	t := &Tree{
		params: p,
		store:  newStore(),
		anim:   newAnimator(p),
		notice: notifier{duration: p.NotificationDuration},
		logger: logging.Discard,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Insert starts an animated insert of v. The first value of an empty tree
// becomes the root immediately.
func (t *Tree) Insert(v int) {
	t.cancel()
	if t.store.root == NoNode {
		id := t.store.alloc(v, Vec2{X: t.params.Width / 2, Y: 0})
		t.store.root = id
		t.computeLayout()
		t.logger.Infof("insert %d: root", v)
		t.emit(Event{Kind: EventCommit, Op: TraversalInsert, Node: id, Value: v})
		return
	}
	t.active = newInsertTraversal(&t.store, v)
	t.logger.Infof("insert %d: started", v)
}

// Search starts an animated search for v. Any previous found marker is
// cleared first.
func (t *Tree) Search(v int) {
	t.cancel()
	for i := 1; i < len(t.store.nodes); i++ {
		n := &t.store.nodes[i]
		n.Found = false
		n.FoundHold = 0
	}
	t.active = newSearchTraversal(&t.store, v)
	t.logger.Infof("search %d: started", v)
}

// cancel abandons the active traversal. A pending insert never commits. It
// must run before the next traversal is built so that abandon cannot clear
// highlights the new one has just set.
func (t *Tree) cancel() {
	if t.active == nil {
		return
	}
	prev := t.active
	t.active = nil
	if prev.phase() == PhaseDone {
		return
	}
	prev.abandon(t)
	t.logger.Infof("%s %d: superseded", prev.kind(), prev.value())
	t.emit(Event{Kind: EventSuperseded, Op: prev.kind(), Value: prev.value()})
}

// Update advances the tree by dt seconds. Non-positive and NaN steps are
// ignored.
func (t *Tree) Update(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return
	}
	t.clock += dt

	t.anim.update(&t.store, dt)
	if t.active != nil {
		t.active.advance(t, dt)
		if t.active.phase() == PhaseDone {
			t.active = nil
		}
	}
	t.updateColors(dt)
	t.notice.update(dt)
}

func (t *Tree) commit(v int) {
	parent := t.store.parentFor(v)
	if parent == NoNode {
		return
	}
	pos := t.store.get(parent).Position
	id := t.store.alloc(v, pos)
	t.store.attach(parent, id)
	t.computeLayout()
	for i := 1; i < len(t.store.nodes); i++ {
		n := &t.store.nodes[i]
		n.TraversalHighlight = false
		n.InsertHighlight = false
	}
	t.logger.Infof("insert %d: committed under %d", v, t.store.get(parent).Value)
	t.emit(Event{Kind: EventCommit, Op: TraversalInsert, Node: id, From: parent, Value: v})
}

func (t *Tree) emit(e Event) {
	if t.observer == nil {
		return
	}
	e.Time = t.clock
	t.observer.OnEvent(e)
}

func (t *Tree) Params() Params { return t.params }

// Clock is the total simulated time consumed by Update.
func (t *Tree) Clock() float64 { return t.clock }

func (t *Tree) Root() NodeID { return t.store.root }

func (t *Tree) Len() int { return t.store.len() }

// Node returns a copy of the node with the given id.
func (t *Tree) Node(id NodeID) (Node, bool) {
	if id <= NoNode || int(id) >= len(t.store.nodes) {
		return Node{}, false
	}
	return t.store.nodes[id], true
}

// Walk calls fn for every node in pre-order with its depth.
func (t *Tree) Walk(fn func(id NodeID, n Node, depth int)) {
	t.store.walk(func(id NodeID, n *Node, depth int) { fn(id, *n, depth) })
}

// InOrder returns the stored values in tree order.
func (t *Tree) InOrder() []int {
	ids := t.store.inOrder()
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = t.store.nodes[id].Value
	}
	return out
}

// Find returns the node holding v without animating anything.
func (t *Tree) Find(v int) (NodeID, bool) {
	id := t.store.find(v)
	return id, id != NoNode
}

// Traversal reports the kind and phase of the running traversal.
func (t *Tree) Traversal() (TraversalKind, Phase) {
	if t.active == nil {
		return TraversalIdle, PhaseIdle
	}
	return t.active.kind(), t.active.phase()
}

// Notification returns the current message, or "" when none is shown.
func (t *Tree) Notification() string { return t.notice.message }

// Animating is the number of nodes still moving toward their target.
func (t *Tree) Animating() int { return t.anim.len() }

// MeanDistance is the average remaining distance of moving nodes.
func (t *Tree) MeanDistance() float64 { return t.anim.meanDistance(&t.store) }

// ArrowView describes the insert arrow of the current frame.
type ArrowView struct {
	From, To NodeID
	Start    Vec2
	End      Vec2
	Tip      Vec2
	Progress float64
}

func (t *Tree) Arrow() (ArrowView, bool) {
	it, ok := t.active.(*insertTraversal)
	if !ok {
		return ArrowView{}, false
	}
	from, to, progress, ok := it.arrow()
	if !ok {
		return ArrowView{}, false
	}
	start := t.store.get(from).Position
	end := t.store.get(to).Position
	return ArrowView{
		From:     from,
		To:       to,
		Start:    start,
		End:      end,
		Tip:      start.Lerp(end, progress),
		Progress: progress,
	}, true
}

// Idle reports whether nothing is left to animate: no traversal, no
// moving node and every node at Baseline.
func (t *Tree) Idle() bool {
	if t.active != nil || t.anim.len() > 0 {
		return false
	}
	for i := 1; i < len(t.store.nodes); i++ {
		n := &t.store.nodes[i]
		if n.Found || n.Fading || n.Color != Baseline {
			return false
		}
	}
	return true
}
