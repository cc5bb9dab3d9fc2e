package scenario

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/dsviz/internal/bst"
)

func countEvents(res *Result, kind bst.EventKind) int {
	n := 0
	for _, e := range res.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		inOrder []int
		found   int
		missed  int
		super   int
	}{
		{"balanced", []int{20, 30, 40, 50, 60, 70, 80}, 0, 0, 0},
		{"chain", []int{1, 2, 3, 4, 5}, 0, 0, 0},
		{"search-hit", []int{30, 50, 70}, 1, 0, 0},
		{"search-miss", []int{30, 50, 70}, 0, 1, 0},
		{"supersede", []int{30, 50, 70}, 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := GetPreset(tt.name)
			require.NotNil(t, sc)

			res, err := Run(context.Background(), sc, bst.DefaultParams(), nil)
			require.NoError(t, err)
			require.Equal(t, tt.inOrder, res.InOrder)
			require.Equal(t, len(tt.inOrder), countEvents(res, bst.EventCommit))
			require.Equal(t, tt.found, countEvents(res, bst.EventFound))
			require.Equal(t, tt.missed, countEvents(res, bst.EventNotFound))
			require.Equal(t, tt.super, countEvents(res, bst.EventSuperseded))
			require.True(t, res.Tree.Idle())

			require.NotEmpty(t, res.Frames)
			last := res.Frames[len(res.Frames)-1]
			require.Equal(t, 0, last.Animating)
			require.Equal(t, "idle", last.Traversal)
			require.Equal(t, float64(len(res.Frames)), res.Metrics["frames"])
		})
	}
}

func TestFramesAreMonotonic(t *testing.T) {
	res, err := Run(context.Background(), GetPreset("balanced"), bst.DefaultParams(), nil)
	require.NoError(t, err)

	for i := 1; i < len(res.Frames); i++ {
		require.Greater(t, res.Frames[i].Time, res.Frames[i-1].Time)
		require.GreaterOrEqual(t, res.Frames[i].Nodes, res.Frames[i-1].Nodes)
	}
	require.Greater(t, res.Metrics["max_animating"], 0.0)
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Run(ctx, GetPreset("chain"), bst.DefaultParams(), nil)
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	require.Empty(t, res.Frames)
}

func TestSettleTimeout(t *testing.T) {
	sc := &Scenario{
		Name: "slow",
		Dt:   DefaultDt,
		Steps: []Step{
			{Op: OpInsert, Values: []int{1}},
			{Op: OpInsert, Value: intp(2)},
			{Op: OpSettle, MaxWait: 0.1},
		},
	}
	_, err := Run(context.Background(), sc, bst.DefaultParams(), nil)
	require.True(t, errors.Is(err, ErrNotSettled), "got %v", err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		sc   Scenario
		want error
	}{
		{"zero dt", Scenario{Dt: 0}, ErrInvalidDt},
		{"unknown op", Scenario{Dt: 0.1, Steps: []Step{{Op: "delete", Value: intp(1)}}}, ErrUnknownOp},
		{"insert without value", Scenario{Dt: 0.1, Steps: []Step{{Op: OpInsert}}}, ErrMissingValue},
		{"search without value", Scenario{Dt: 0.1, Steps: []Step{{Op: OpSearch, Values: []int{1}}}}, ErrMissingValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, errors.Is(tt.sc.Validate(), tt.want))
		})
	}
}

func TestLoadScenario(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	data := `name: demo
steps:
  - op: insert
    values: [8, 4, 12]
  - op: search
    value: 12
  - op: wait
    seconds: 0.5
  - op: settle
    max_wait: 10
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	sc, err := LoadScenario(path)
	require.NoError(t, err)
	require.Equal(t, "demo", sc.Name)
	require.Equal(t, DefaultDt, sc.Dt)
	require.Len(t, sc.Steps, 4)
	require.Equal(t, 12, *sc.Steps[1].Value)

	res, err := Run(context.Background(), sc, bst.DefaultParams(), nil)
	require.NoError(t, err)
	require.Equal(t, []int{4, 8, 12}, res.InOrder)
	require.Equal(t, 1, countEvents(res, bst.EventFound))
}

func TestResolve(t *testing.T) {
	sc, err := Resolve("chain")
	require.NoError(t, err)
	require.Equal(t, "chain", sc.Name)

	_, err = Resolve("no-such-preset")
	require.True(t, errors.Is(err, ErrUnknownPreset))

	require.Equal(t, []string{"balanced", "chain", "search-hit", "search-miss", "supersede"}, ListPresets())
}
