package bst_test

import (
	"math"
	"math/rand"

	"github.com/google/btree"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dsviz/internal/bst"
)

var _ = Describe("Tree", func() {
	var (
		tree *bst.Tree
		rec  *recorder
	)

	BeforeEach(func() {
		rec = &recorder{}
		tree = bst.New(bst.DefaultParams(), bst.WithObserver(rec))
	})

	nodeWith := func(v int) bst.Node {
		id, ok := tree.Find(v)
		Expect(ok).To(BeTrue(), "value %d not in tree", v)
		n, _ := tree.Node(id)
		return n
	}

	Describe("Insert", func() {
		It("creates the root at the top center and lays it out", func() {
			tree.Insert(1)

			n, ok := tree.Node(tree.Root())
			Expect(ok).To(BeTrue())
			Expect(n.Position).To(Equal(bst.Vec2{X: 800, Y: 0}))
			Expect(n.Target).To(Equal(bst.Vec2{X: 800, Y: 150}))
			Expect(n.Positioned).To(BeTrue())
			Expect(n.Animating).To(BeTrue())
			Expect(rec.kinds()).To(Equal([]bst.EventKind{bst.EventCommit}))
		})

		It("starts a new node at its parent's position", func() {
			build(tree, 50)
			tree.Insert(30)
			tree.Update(frame)

			n := nodeWith(30)
			Expect(n.Position).To(Equal(bst.Vec2{X: 800, Y: 150}))
			Expect(n.Target).To(Equal(bst.Vec2{X: 400, Y: 250}))
		})

		It("replays the path as hops before committing", func() {
			build(tree, 50, 30)
			rec.reset()

			tree.Insert(20)
			kind, phase := tree.Traversal()
			Expect(kind).To(Equal(bst.TraversalInsert))
			Expect(phase).To(Equal(bst.PhaseStepping))
			Expect(settle(tree, frame, 10000)).To(BeNumerically(">", 0))

			Expect(rec.kinds()).To(Equal([]bst.EventKind{bst.EventHop, bst.EventCommit}))
			Expect(valueOf(tree, rec.events[0].From)).To(Equal(50))
			Expect(valueOf(tree, rec.events[0].Node)).To(Equal(30))
			Expect(valueOf(tree, rec.events[1].From)).To(Equal(30))
			Expect(valueOf(tree, rec.events[1].Node)).To(Equal(20))
		})

		It("routes duplicates to the right", func() {
			build(tree, 50, 50)

			root, _ := tree.Node(tree.Root())
			Expect(root.Left).To(Equal(bst.NoNode))
			Expect(valueOf(tree, root.Right)).To(Equal(50))
		})

		It("keeps tree order for any insert sequence", func() {
			type entry struct{ value, seq int }
			oracle := btree.NewG[entry](2, func(a, b entry) bool {
				if a.value != b.value {
					return a.value < b.value
				}
				return a.seq < b.seq
			})

			rng := rand.New(rand.NewSource(7))
			for i := 0; i < 40; i++ {
				v := rng.Intn(21) - 5
				oracle.ReplaceOrInsert(entry{v, i})
				build(tree, v)
			}

			var want []int
			oracle.Ascend(func(e entry) bool {
				want = append(want, e.value)
				return true
			})
			Expect(tree.Len()).To(Equal(40))
			Expect(tree.InOrder()).To(Equal(want))
		})

		It("never moves a node that already has a target", func() {
			targets := map[bst.NodeID]bst.Vec2{}
			for _, v := range []int{1, 2, 3, 4} {
				build(tree, v)
				tree.Walk(func(id bst.NodeID, n bst.Node, _ int) {
					if prev, ok := targets[id]; ok {
						Expect(n.Target).To(Equal(prev))
					}
					targets[id] = n.Target
				})
			}

			var rows, spans []float64
			tree.Walk(func(_ bst.NodeID, n bst.Node, _ int) {
				rows = append(rows, n.Target.Y)
				spans = append(spans, n.Span)
			})
			Expect(rows).To(Equal([]float64{150, 250, 350, 450}))
			Expect(spans).To(Equal([]float64{1600, 800, 400, 200}))
			for i := 1; i < len(spans); i++ {
				Expect(rows[i]).To(BeNumerically(">", rows[i-1]))
				Expect(spans[i]).To(BeNumerically("<=", spans[i-1]))
			}
		})
	})

	Describe("Search", func() {
		BeforeEach(func() {
			build(tree, 50, 30, 70)
			rec.reset()
		})

		It("visits the path and marks the match found", func() {
			tree.Search(70)
			tree.Update(0.25)
			tree.Update(0.25)

			Expect(nodeWith(50).TraversalHighlight).To(BeTrue())
			Expect(nodeWith(50).Color).To(Equal(bst.Red))

			tree.Update(0.25)
			tree.Update(0.25)

			Expect(nodeWith(70).Found).To(BeTrue())
			Expect(nodeWith(70).Color).To(Equal(bst.Green))
			Expect(nodeWith(50).TraversalHighlight).To(BeFalse())
			Expect(tree.Notification()).To(Equal("Found node: 70"))
			Expect(rec.kinds()).To(Equal([]bst.EventKind{bst.EventVisit, bst.EventVisit, bst.EventFound}))
			Expect(valueOf(tree, rec.events[0].Node)).To(Equal(50))
			Expect(valueOf(tree, rec.events[1].Node)).To(Equal(70))

			kind, _ := tree.Traversal()
			Expect(kind).To(Equal(bst.TraversalIdle))
		})

		It("reports a miss after the last path node", func() {
			tree.Search(99)
			for i := 0; i < 4; i++ {
				tree.Update(0.25)
			}

			Expect(tree.Notification()).To(Equal("Value not found!"))
			Expect(rec.kinds()).To(Equal([]bst.EventKind{bst.EventVisit, bst.EventVisit, bst.EventNotFound}))
			Expect(valueOf(tree, rec.events[1].Node)).To(Equal(70))
			tree.Walk(func(_ bst.NodeID, n bst.Node, _ int) {
				Expect(n.Found).To(BeFalse())
				Expect(n.TraversalHighlight).To(BeFalse())
			})
		})

		It("holds green, then fades back to baseline", func() {
			tree.Search(70)
			for i := 0; i < 4; i++ {
				tree.Update(0.25)
			}
			for i := 0; i < 3; i++ {
				tree.Update(0.25)
				Expect(nodeWith(70).Color).To(Equal(bst.Green))
			}
			Expect(nodeWith(70).Found).To(BeFalse())

			Expect(settle(tree, 0.25, 20)).To(BeNumerically("<=", 2))
			Expect(nodeWith(70).Color).To(Equal(bst.Baseline))
			Expect(nodeWith(70).Found).To(BeFalse())
		})

		It("shows a found node green for one frame with a zero hold", func() {
			p := bst.DefaultParams()
			p.FoundHold = 0
			tree = bst.New(p, bst.WithObserver(rec))
			build(tree, 50, 30, 70)

			tree.Search(70)
			sawGreen := false
			for i := 0; i < 200; i++ {
				tree.Update(frame)
				if nodeWith(70).Color == bst.Green {
					sawGreen = true
					break
				}
			}
			Expect(sawGreen).To(BeTrue())
			Expect(nodeWith(70).Found).To(BeFalse())

			tree.Update(frame)
			Expect(nodeWith(70).Fading).To(BeTrue())
			Expect(settle(tree, frame, 1000)).To(BeNumerically(">", 0))
			Expect(nodeWith(70).Color).To(Equal(bst.Baseline))
		})

		It("clears the previous found marker", func() {
			tree.Search(70)
			for i := 0; i < 4; i++ {
				tree.Update(0.25)
			}
			Expect(nodeWith(70).Found).To(BeTrue())

			tree.Search(30)
			Expect(nodeWith(70).Found).To(BeFalse())
		})

		It("expires the notification", func() {
			tree.Search(70)
			for i := 0; i < 4; i++ {
				tree.Update(0.25)
			}
			for i := 0; i < 6; i++ {
				tree.Update(0.25)
			}
			Expect(tree.Notification()).To(Equal("Found node: 70"))
			tree.Update(0.25)
			Expect(tree.Notification()).To(BeEmpty())
		})

		It("fades a visited node within one fade period", func() {
			p := bst.DefaultParams()
			tree.Search(70)

			var n bst.Node
			for i := 0; i < 1000; i++ {
				tree.Update(frame)
				if n = nodeWith(50); n.Fading {
					break
				}
			}
			Expect(n.Fading).To(BeTrue())

			frames := 1
			for ; frames < 1000 && nodeWith(50).Color != bst.Baseline; frames++ {
				tree.Update(frame)
			}
			Expect(frames).To(BeNumerically("<=", int(math.Ceil(1/(p.FadeRate*frame)))+1))
			Expect(nodeWith(50).Fading).To(BeFalse())
		})
	})

	It("reports a miss on the first update of an empty tree", func() {
		tree.Search(1)
		tree.Update(frame)

		Expect(tree.Notification()).To(Equal("Value not found!"))
		Expect(rec.kinds()).To(Equal([]bst.EventKind{bst.EventNotFound}))
	})

	It("runs a single traversal at a time", func() {
		build(tree, 50, 30, 70)
		rec.reset()

		tree.Insert(5)
		tree.Update(0.25)
		Expect(nodeWith(50).InsertHighlight).To(BeTrue())

		tree.Search(3)
		kind, phase := tree.Traversal()
		Expect(kind).To(Equal(bst.TraversalSearch))
		Expect(phase).To(Equal(bst.PhaseStepping))
		Expect(nodeWith(50).InsertHighlight).To(BeFalse())
		Expect(rec.events[0].Kind).To(Equal(bst.EventSuperseded))
		Expect(rec.events[0].Op).To(Equal(bst.TraversalInsert))
		Expect(rec.events[0].Value).To(Equal(5))

		Expect(settle(tree, frame, 10000)).To(BeNumerically(">", 0))
		_, ok := tree.Find(5)
		Expect(ok).To(BeFalse())
		Expect(tree.Len()).To(Equal(3))
		for _, e := range rec.events {
			Expect(e.Kind).NotTo(Equal(bst.EventCommit))
		}
	})

	It("keeps the highlights of an insert that replaces an insert", func() {
		build(tree, 50, 30, 70)
		tree.Insert(20)
		tree.Update(0.8)
		_, phase := tree.Traversal()
		Expect(phase).To(Equal(bst.PhaseArriving))
		rec.reset()

		tree.Insert(80)
		Expect(nodeWith(50).InsertHighlight).To(BeTrue())
		Expect(nodeWith(30).InsertHighlight).To(BeFalse())
		Expect(rec.kinds()).To(Equal([]bst.EventKind{bst.EventSuperseded}))
		Expect(rec.events[0].Value).To(Equal(20))

		Expect(settle(tree, frame, 10000)).To(BeNumerically(">", 0))
		Expect(tree.InOrder()).To(Equal([]int{30, 50, 70, 80}))
	})

	It("cancels a pending search when the root is inserted", func() {
		tree.Search(5)
		tree.Insert(5)

		kind, _ := tree.Traversal()
		Expect(kind).To(Equal(bst.TraversalIdle))
		Expect(rec.kinds()).To(Equal([]bst.EventKind{bst.EventSuperseded, bst.EventCommit}))
	})

	It("ignores non-positive and NaN steps", func() {
		build(tree, 50)
		clock := tree.Clock()

		tree.Insert(30)
		tree.Update(0)
		tree.Update(-1)
		tree.Update(math.NaN())

		Expect(tree.Clock()).To(Equal(clock))
		Expect(tree.Len()).To(Equal(1))
	})

	It("is stable once settled", func() {
		build(tree, 50, 30, 70, 60)
		tree.Search(60)
		Expect(settle(tree, frame, 10000)).To(BeNumerically(">", 0))

		before := map[bst.NodeID]bst.Node{}
		tree.Walk(func(id bst.NodeID, n bst.Node, _ int) { before[id] = n })
		for i := 0; i < 30; i++ {
			tree.Update(frame)
		}
		Expect(tree.Idle()).To(BeTrue())
		tree.Walk(func(id bst.NodeID, n bst.Node, _ int) {
			Expect(n.Position).To(Equal(before[id].Position))
			Expect(n.Color).To(Equal(before[id].Color))
		})
	})

	Describe("Draw", func() {
		It("draws edges below nodes", func() {
			build(tree, 50, 30, 70)
			s := &recordingSurface{}
			tree.Draw(s)

			Expect(s.ops()).To(Equal([]string{"line", "line", "circle", "text", "circle", "text", "circle", "text"}))
			Expect(s.calls[0].color).To(Equal(bst.Black))
			Expect(s.calls[3].text).To(Equal("50"))
			Expect(s.calls[3].color).To(Equal(bst.White))
			// centered: MeasureText("50", 20) == 20
			Expect(s.calls[3].a).To(Equal(bst.Vec2{X: 790, Y: 140}))
		})

		It("draws the insert arrow and the notification on top", func() {
			build(tree, 50, 30, 70)
			tree.Insert(20)
			tree.Update(0.25)

			a, ok := tree.Arrow()
			Expect(ok).To(BeTrue())
			Expect(valueOf(tree, a.From)).To(Equal(50))
			Expect(valueOf(tree, a.To)).To(Equal(30))
			Expect(a.Progress).To(BeNumerically("~", 0.375, 1e-9))

			s := &recordingSurface{}
			tree.Draw(s)
			ops := s.ops()
			Expect(ops[len(ops)-2:]).To(Equal([]string{"line", "triangle"}))
			shaft := s.calls[len(s.calls)-2]
			Expect(shaft.width).To(Equal(4.0))
			Expect(shaft.color).To(Equal(bst.Gold))
			Expect(shaft.b).To(Equal(a.Tip))

			tree.Search(1000)
			for i := 0; i < 4; i++ {
				tree.Update(0.25)
			}
			Expect(tree.Notification()).To(Equal("Value not found!"))

			s = &recordingSurface{}
			tree.Draw(s)
			last := s.calls[len(s.calls)-1]
			Expect(last.op).To(Equal("text"))
			Expect(last.text).To(Equal("Value not found!"))
			Expect(last.color).To(Equal(bst.Orange))
			Expect(last.a.Y).To(Equal(50.0))
		})
	})
})
