package trials

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat"

	"github.com/jmurray1022/learnR/dataset"
	"github.com/jmurray1022/learnR/pkg/errors"
	"github.com/jmurray1022/learnR/sim"
)

// RunMonteCarlo refits the model n times over the fixed predictor design x,
// drawing fresh Gaussian noise from src for each trial. The design is
// validated once up front, so a run that could never fit fails before any
// randomness is consumed.
func RunMonteCarlo(n int, x []float64, params sim.Params, src rand.Source, opts ...Option) (*Collection, error) {
	const op = "trials.RunMonteCarlo"

	if len(x) < 3 {
		return nil, errors.NewDegenerateSampleError(op,
			"design needs at least 3 observations", len(x))
	}
	xMean := stat.Mean(x, nil)
	var sxx float64
	for _, xi := range x {
		d := xi - xMean
		sxx += d * d
	}
	if sxx == 0 {
		return nil, errors.NewDegenerateSampleError(op,
			"all design predictor values are identical", len(x))
	}
	if params.NoiseStd < 0 {
		return nil, errors.NewInvalidParameterError(op, "params.NoiseStd",
			"must be non-negative", params.NoiseStd)
	}
	if src == nil {
		return nil, errors.NewInvalidParameterError(op, "src", "must not be nil", nil)
	}

	return run(op, n, func(int) (*dataset.Sample, error) {
		return sim.SimulateResponse(x, params, src)
	}, opts...)
}

// RunBootstrap refits the model n times on resamples of the observed
// sample, drawing rows uniformly with replacement. Each trial draws
// sample.Len() indices from src, so a reseeded source reproduces the
// collection bit for bit.
func RunBootstrap(n int, sample *dataset.Sample, src rand.Source, opts ...Option) (*Collection, error) {
	const op = "trials.RunBootstrap"

	if sample == nil {
		return nil, errors.NewInvalidParameterError(op, "sample", "must not be nil", nil)
	}
	if src == nil {
		return nil, errors.NewInvalidParameterError(op, "src", "must not be nil", nil)
	}

	rng := rand.New(src)
	size := sample.Len()
	indices := make([]int, size)

	return run(op, n, func(int) (*dataset.Sample, error) {
		for i := range indices {
			indices[i] = rng.IntN(size)
		}
		return sample.Take(indices), nil
	}, opts...)
}
