// Package sim generates synthetic samples under a known normal linear
// model, for studying how well least squares recovers the truth.
//
// All randomness flows through an explicit rand.Source supplied by the
// caller; the package never touches the global generator, so any run can
// be reproduced by reseeding.
package sim

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jmurray1022/learnR/dataset"
	"github.com/jmurray1022/learnR/pkg/errors"
)

// Params are the true parameters of the generating model
// y = Intercept + Slope*x + e, with e ~ N(0, NoiseStd^2).
// Params are read-only inputs; nothing in the pipeline mutates them.
type Params struct {
	Intercept float64
	Slope     float64
	NoiseStd  float64
}

// Simulate draws n predictor values uniformly from [xMin, xMax), adds
// Gaussian noise around the model line, and returns the resulting sample.
// The predictors are drawn first, then the noise, so a reseeded source
// reproduces the sample exactly.
func Simulate(n int, xMin, xMax float64, params Params, src rand.Source) (*dataset.Sample, error) {
	if n < 1 {
		return nil, errors.NewInvalidParameterError("sim.Simulate", "n", "must be at least 1", n)
	}
	if xMin >= xMax {
		return nil, errors.NewInvalidParameterError("sim.Simulate", "xRange",
			"min must be strictly below max", [2]float64{xMin, xMax})
	}
	if err := validParams("sim.Simulate", params); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.NewInvalidParameterError("sim.Simulate", "src", "must not be nil", nil)
	}

	uniform := distuv.Uniform{Min: xMin, Max: xMax, Src: src}
	x := make([]float64, n)
	for i := range x {
		x[i] = uniform.Rand()
	}

	return respond(x, params, src), nil
}

// SimulateResponse draws fresh noise over a fixed predictor design and
// returns the resulting sample. This is the Monte Carlo building block:
// same x, new realization of the response.
func SimulateResponse(x []float64, params Params, src rand.Source) (*dataset.Sample, error) {
	if len(x) < 1 {
		return nil, errors.NewInvalidParameterError("sim.SimulateResponse", "x",
			"must not be empty", len(x))
	}
	if err := validParams("sim.SimulateResponse", params); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, errors.NewInvalidParameterError("sim.SimulateResponse", "src", "must not be nil", nil)
	}

	return respond(x, params, src), nil
}

func respond(x []float64, params Params, src rand.Source) *dataset.Sample {
	noise := distuv.Normal{Mu: 0, Sigma: params.NoiseStd, Src: src}
	y := make([]float64, len(x))
	for i, xi := range x {
		y[i] = params.Intercept + params.Slope*xi + noise.Rand()
	}
	// Sample built directly: lengths match by construction, and a
	// single-row sample is legal to simulate even though it cannot be fit.
	return &dataset.Sample{X: append([]float64(nil), x...), Y: y}
}

func validParams(op string, params Params) error {
	if params.NoiseStd < 0 {
		return errors.NewInvalidParameterError(op, "params.NoiseStd",
			"must be non-negative", params.NoiseStd)
	}
	return nil
}
