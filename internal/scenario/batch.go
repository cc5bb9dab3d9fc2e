package scenario

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/san-kum/dsviz/internal/bst"
	"github.com/san-kum/dsviz/internal/logging"
)

// RunAll plays every scenario on its own tree concurrently. Results are in
// the order of scs. The first failing scenario's error is returned along
// with whatever results completed.
func RunAll(ctx context.Context, scs []*Scenario, p bst.Params, logger logging.Logger) ([]*Result, error) {
	if logger == nil {
		logger = logging.Discard
	}
	results := make([]*Result, len(scs))
	errs := make([]error, len(scs))

	var wg sync.WaitGroup
	for i, sc := range scs {
		wg.Add(1)
		go func(idx int, sc *Scenario) {
			defer wg.Done()
			results[idx], errs[idx] = Run(ctx, sc, p, logger)
		}(i, sc)
	}
	wg.Wait()

	var first error
	for i, err := range errs {
		if err == nil {
			continue
		}
		logger.Errorf("scenario %s: %v", scs[i].Name, err)
		if first == nil {
			first = errors.Wrapf(err, "scenario %s", scs[i].Name)
		}
	}
	return results, first
}

// AllPresets returns a copy of every built-in scenario, sorted by name.
func AllPresets() []*Scenario {
	names := ListPresets()
	scs := make([]*Scenario, 0, len(names))
	for _, name := range names {
		scs = append(scs, GetPreset(name))
	}
	return scs
}
