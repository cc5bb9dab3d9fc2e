package bst

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

const (
	msgNotFound = "Value not found!"
	msgFound    = "Found node: %d"
)

// traversal is the single animated operation a Tree may be running.
type traversal interface {
	kind() TraversalKind
	phase() Phase
	value() int
	advance(t *Tree, dt float64)
	// abandon clears every highlight the traversal still owns.
	abandon(t *Tree)
}

// searchTraversal visits the search path one node per SearchDelay.
type searchTraversal struct {
	target  int
	queue   *linkedlistqueue.Queue
	timer   float64
	current NodeID
	state   Phase
}

func newSearchTraversal(s *store, value int) *searchTraversal {
	q := linkedlistqueue.New()
	for _, id := range s.path(value, true) {
		q.Enqueue(id)
	}
	return &searchTraversal{target: value, queue: q, state: PhaseStepping}
}

func (st *searchTraversal) kind() TraversalKind { return TraversalSearch }
func (st *searchTraversal) phase() Phase        { return st.state }
func (st *searchTraversal) value() int          { return st.target }

func (st *searchTraversal) advance(t *Tree, dt float64) {
	if st.state != PhaseStepping {
		return
	}
	if st.queue.Empty() {
		st.miss(t)
		return
	}

	st.timer += dt
	if st.timer < t.params.SearchDelay {
		return
	}
	st.timer = 0

	v, _ := st.queue.Dequeue()
	id := v.(NodeID)
	if st.current != NoNode {
		t.store.get(st.current).TraversalHighlight = false
	}
	for _, q := range st.queue.Values() {
		t.store.get(q.(NodeID)).TraversalHighlight = false
	}
	st.current = id
	n := t.store.get(id)
	n.TraversalHighlight = true
	t.emit(Event{Kind: EventVisit, Op: TraversalSearch, Node: id, Value: st.target})

	switch {
	case n.Value == st.target:
		n.TraversalHighlight = false
		n.Found = true
		n.FoundHold = t.params.FoundHold
		st.current = NoNode
		st.state = PhaseDone
		t.notice.publish(fmt.Sprintf(msgFound, n.Value))
		t.emit(Event{Kind: EventFound, Op: TraversalSearch, Node: id, Value: st.target})
	case st.queue.Empty():
		st.miss(t)
	}
}

func (st *searchTraversal) miss(t *Tree) {
	last := st.current
	if st.current != NoNode {
		t.store.get(st.current).TraversalHighlight = false
		st.current = NoNode
	}
	st.state = PhaseDone
	t.notice.publish(msgNotFound)
	t.emit(Event{Kind: EventNotFound, Op: TraversalSearch, Node: last, Value: st.target})
}

func (st *searchTraversal) abandon(t *Tree) {
	if st.current != NoNode {
		t.store.get(st.current).TraversalHighlight = false
		st.current = NoNode
	}
	for _, q := range st.queue.Values() {
		t.store.get(q.(NodeID)).TraversalHighlight = false
	}
	st.queue.Clear()
	st.state = PhaseDone
}

// insertTraversal replays the root-to-parent walk as arrow hops and then
// attaches the new node.
type insertTraversal struct {
	val      int
	path     []NodeID
	step     int
	progress float64
	state    Phase
}

func newInsertTraversal(s *store, value int) *insertTraversal {
	it := &insertTraversal{val: value, path: s.path(value, false), state: PhaseStepping}
	if len(it.path) <= 1 {
		it.state = PhaseArriving
	} else {
		s.get(it.path[0]).InsertHighlight = true
	}
	return it
}

func (it *insertTraversal) kind() TraversalKind { return TraversalInsert }
func (it *insertTraversal) phase() Phase        { return it.state }
func (it *insertTraversal) value() int          { return it.val }

func (it *insertTraversal) advance(t *Tree, dt float64) {
	switch it.state {
	case PhaseStepping:
		from := it.path[it.step]
		t.store.get(from).InsertHighlight = true
		it.progress += dt * t.params.ArrowSpeed
		if it.progress < 1 {
			return
		}
		it.progress = 0
		t.store.get(from).InsertHighlight = false
		it.step++
		t.emit(Event{Kind: EventHop, Op: TraversalInsert, From: from, Node: it.path[it.step], Value: it.val})
		if it.step >= len(it.path)-1 {
			it.state = PhaseArriving
		}
	case PhaseArriving:
		t.commit(it.val)
		it.state = PhaseDone
	}
}

func (it *insertTraversal) abandon(t *Tree) {
	for _, id := range it.path {
		t.store.get(id).InsertHighlight = false
	}
	it.state = PhaseDone
}

// arrow reports the hop being animated.
func (it *insertTraversal) arrow() (from, to NodeID, progress float64, ok bool) {
	if it.state != PhaseStepping || it.step+1 >= len(it.path) {
		return NoNode, NoNode, 0, false
	}
	return it.path[it.step], it.path[it.step+1], it.progress, true
}
