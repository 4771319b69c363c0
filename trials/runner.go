// Package trials drives repeated-refit experiments: Monte Carlo
// resimulation under known parameters and bootstrap resampling of an
// observed dataset. Both share one sequential runner, so the empirical
// coefficient distributions they collect are directly comparable.
package trials

import (
	"github.com/jmurray1022/learnR/dataset"
	"github.com/jmurray1022/learnR/pkg/errors"
	"github.com/jmurray1022/learnR/regression"
)

// Coefficients is the pair of point estimates recorded for one trial.
type Coefficients struct {
	Intercept float64
	Slope     float64
}

// Option configures a trial run.
type Option func(*config)

type config struct {
	skipDegenerate bool
}

// WithSkipDegenerate makes the runner skip trials whose resample is
// degenerate (for example, a bootstrap draw where every row is the same
// observation) instead of aborting the whole run. Skipped trials are
// counted on the Collection so the caller can judge how much of the
// empirical distribution is missing. The default is to fail fast,
// because silently dropping trials biases the collection.
func WithSkipDegenerate() Option {
	return func(c *config) {
		c.skipDegenerate = true
	}
}

// run executes n trials sequentially. gen produces the sample for one
// trial; it is called exactly once per trial in order, so a deterministic
// gen (seeded RNG) yields a deterministic Collection.
func run(op string, n int, gen func(trial int) (*dataset.Sample, error), opts ...Option) (*Collection, error) {
	if n < 1 {
		return nil, errors.NewInvalidParameterError(op, "trials", "must be at least 1", n)
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	col := &Collection{Trials: make([]Coefficients, 0, n)}
	for i := 0; i < n; i++ {
		sample, err := gen(i)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: trial %d", op, i)
		}

		model, err := regression.Fit(sample)
		if err != nil {
			var degenerate *errors.DegenerateSampleError
			if cfg.skipDegenerate && errors.As(err, &degenerate) {
				col.Skipped++
				continue
			}
			return nil, errors.Wrapf(err, "%s: trial %d", op, i)
		}

		col.Trials = append(col.Trials, Coefficients{
			Intercept: model.Intercept,
			Slope:     model.Slope,
		})
	}

	return col, nil
}
