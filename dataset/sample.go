// Package dataset defines the paired predictor/response sample that the
// estimation pipeline operates on, plus loading of tabular data files.
package dataset

import (
	"github.com/jmurray1022/learnR/pkg/errors"
)

// Sample is an ordered sequence of (predictor, response) pairs.
// X and Y always have equal length of at least 2. A Sample is never
// mutated after construction; resampling produces a new Sample.
type Sample struct {
	X []float64
	Y []float64
}

// New validates and copies the given predictor and response sequences.
func New(x, y []float64) (*Sample, error) {
	if len(x) != len(y) {
		return nil, errors.NewInvalidParameterError("dataset.New", "y",
			"predictor and response lengths differ", len(y))
	}
	if len(x) < 2 {
		return nil, errors.NewDegenerateSampleError("dataset.New",
			"need at least 2 observations", len(x))
	}
	s := &Sample{
		X: make([]float64, len(x)),
		Y: make([]float64, len(y)),
	}
	copy(s.X, x)
	copy(s.Y, y)
	return s, nil
}

// Len returns the number of observations.
func (s *Sample) Len() int {
	return len(s.X)
}

// Take returns a new Sample built from the rows at the given indices,
// in order. Indices must lie in [0, Len()); duplicates are allowed,
// which is what bootstrap resampling relies on.
func (s *Sample) Take(indices []int) *Sample {
	out := &Sample{
		X: make([]float64, len(indices)),
		Y: make([]float64, len(indices)),
	}
	for i, idx := range indices {
		out.X[i] = s.X[idx]
		out.Y[i] = s.Y[idx]
	}
	return out
}
