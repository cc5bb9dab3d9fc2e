package scenario

import (
	"context"
	"math"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/dsviz/internal/bst"
	"github.com/san-kum/dsviz/internal/logging"
)

// Frame is the tree state after one Update.
type Frame struct {
	Time         float64 `json:"time"`
	Nodes        int     `json:"nodes"`
	Animating    int     `json:"animating"`
	Traversal    string  `json:"traversal"`
	Phase        string  `json:"phase"`
	Notification string  `json:"notification,omitempty"`
	MeanDistance float64 `json:"mean_distance"`
}

// Result holds everything recorded while a scenario ran.
type Result struct {
	Scenario string             `json:"scenario"`
	Dt       float64            `json:"dt"`
	Frames   []Frame            `json:"frames"`
	Events   []bst.Event        `json:"events"`
	InOrder  []int              `json:"in_order"`
	Metrics  map[string]float64 `json:"metrics"`

	// Tree is the engine in its final state.
	Tree *bst.Tree `json:"-"`
}

type runner struct {
	ctx    context.Context
	sc     *Scenario
	tree   *bst.Tree
	result *Result
	logger logging.Logger
}

// Run plays sc on a new tree built from p. Cancelling ctx stops the run
// between frames; the partial result is returned with the error.
func Run(ctx context.Context, sc *Scenario, p bst.Params, logger logging.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.Discard
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	res := &Result{Scenario: sc.Name, Dt: sc.Dt}
	r := &runner{ctx: ctx, sc: sc, result: res, logger: logger}
	r.tree = bst.New(p,
		bst.WithLogger(logging.Prefixed(logger, sc.Name+": ")),
		bst.WithObserver(bst.ObserverFunc(func(e bst.Event) {
			res.Events = append(res.Events, e)
		})),
	)
	res.Tree = r.tree

	err := r.run()
	res.InOrder = r.tree.InOrder()
	res.Metrics = summarize(res)
	return res, err
}

func (r *runner) run() error {
	for i, st := range r.sc.Steps {
		r.logger.Infof("step %d/%d: %s", i+1, len(r.sc.Steps), st.Op)

		var err error
		switch st.Op {
		case OpInsert:
			if st.Value != nil {
				r.tree.Insert(*st.Value)
			}
			for _, v := range st.Values {
				r.tree.Insert(v)
				if err = r.settle(st.MaxWait); err != nil {
					break
				}
			}
		case OpSearch:
			r.tree.Search(*st.Value)
		case OpWait:
			err = r.advance(st.Seconds)
		case OpSettle:
			err = r.settle(st.MaxWait)
		}
		if err != nil {
			return errors.Wrapf(err, "step %d", i+1)
		}
	}
	return nil
}

func (r *runner) frame() error {
	if err := r.ctx.Err(); err != nil {
		return err
	}
	r.tree.Update(r.sc.Dt)

	kind, phase := r.tree.Traversal()
	r.result.Frames = append(r.result.Frames, Frame{
		Time:         r.tree.Clock(),
		Nodes:        r.tree.Len(),
		Animating:    r.tree.Animating(),
		Traversal:    kind.String(),
		Phase:        phase.String(),
		Notification: r.tree.Notification(),
		MeanDistance: r.tree.MeanDistance(),
	})
	return nil
}

func (r *runner) advance(seconds float64) error {
	n := int(math.Round(seconds / r.sc.Dt))
	for i := 0; i < n; i++ {
		if err := r.frame(); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) settle(maxWait float64) error {
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}
	limit := int(math.Ceil(maxWait / r.sc.Dt))
	for i := 0; !r.tree.Idle(); i++ {
		if i >= limit {
			return errors.Wrapf(ErrNotSettled, "after %gs", maxWait)
		}
		if err := r.frame(); err != nil {
			return err
		}
	}
	return nil
}

func summarize(res *Result) map[string]float64 {
	m := map[string]float64{
		"frames": float64(len(res.Frames)),
		"nodes":  float64(len(res.InOrder)),
	}
	for _, e := range res.Events {
		m[e.Kind.String()]++
	}
	var maxAnim int
	for _, f := range res.Frames {
		if f.Animating > maxAnim {
			maxAnim = f.Animating
		}
	}
	m["max_animating"] = float64(maxAnim)
	if n := len(res.Frames); n > 0 {
		m["duration"] = res.Frames[n-1].Time
	}
	return m
}
