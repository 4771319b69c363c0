// Package diagnostics summarizes the residuals of a fitted model for
// assumption checking: normality, independence, and constant variance.
// It is pure computation; rendering the summary (residual-vs-predictor
// scatter, histogram, Q-Q plot) is left to an external collaborator.
package diagnostics

import (
	"gonum.org/v1/gonum/stat"

	"github.com/jmurray1022/learnR/pkg/errors"
	"github.com/jmurray1022/learnR/regression"
)

// Point pairs one predictor value with the residual of its observation.
type Point struct {
	X        float64
	Residual float64
}

// Summary describes the residual distribution of a fitted model.
type Summary struct {
	ResidualMean float64
	ResidualStd  float64

	// Points holds (predictor, residual) pairs in sample order, ready
	// for a residual-vs-predictor plot.
	Points []Point
}

// Diagnose computes the residual summary for a fitted model over the
// predictor values it was fitted on.
func Diagnose(model *regression.Model, x []float64) (*Summary, error) {
	if model == nil {
		return nil, errors.NewInvalidParameterError("diagnostics.Diagnose", "model",
			"must not be nil", nil)
	}
	if len(x) != len(model.Residuals) {
		return nil, errors.NewInvalidParameterError("diagnostics.Diagnose", "x",
			"length differs from model residuals", len(x))
	}

	mean, stddev := stat.MeanStdDev(model.Residuals, nil)

	points := make([]Point, len(x))
	for i, xi := range x {
		points[i] = Point{X: xi, Residual: model.Residuals[i]}
	}

	return &Summary{
		ResidualMean: mean,
		ResidualStd:  stddev,
		Points:       points,
	}, nil
}
