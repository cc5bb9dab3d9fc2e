package scenario

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/san-kum/dsviz/internal/bst"
)

func TestRunAll(t *testing.T) {
	scs := AllPresets()
	require.Len(t, scs, len(Presets))

	results, err := RunAll(context.Background(), scs, bst.DefaultParams(), nil)
	require.NoError(t, err)
	require.Len(t, results, len(scs))
	for i, res := range results {
		require.Equal(t, scs[i].Name, res.Scenario)
		require.NotEmpty(t, res.Frames)
		require.True(t, res.Tree.Idle())
	}

	// Each run owns its tree, so results match a sequential run.
	seq, err := Run(context.Background(), GetPreset("balanced"), bst.DefaultParams(), nil)
	require.NoError(t, err)
	for _, res := range results {
		if res.Scenario == "balanced" {
			require.Equal(t, seq.InOrder, res.InOrder)
			require.Len(t, res.Frames, len(seq.Frames))
		}
	}
}

func TestRunAllReportsFailure(t *testing.T) {
	bad := &Scenario{Name: "bad", Dt: DefaultDt, Steps: []Step{{Op: "jump"}}}
	log := &errorLog{}
	results, err := RunAll(context.Background(), []*Scenario{GetPreset("chain"), bad}, bst.DefaultParams(), log)
	require.ErrorIs(t, err, ErrUnknownOp)
	require.Contains(t, err.Error(), "scenario bad")
	require.NotNil(t, results[0])
	require.Nil(t, results[1])
	require.Len(t, log.errors, 1)
	require.Contains(t, log.errors[0], "scenario bad")
}

// errorLog keeps Errorf messages. RunAll only logs errors after its
// goroutines finish, so no locking is needed.
type errorLog struct {
	errors []string
}

func (l *errorLog) Infof(string, ...interface{}) {}

func (l *errorLog) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}
