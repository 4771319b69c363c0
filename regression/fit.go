// Package regression fits the simple linear regression model
// y = intercept + slope*x by ordinary least squares and derives the
// normal-theory uncertainty of the fit: coefficient standard errors,
// t-based confidence intervals, and prediction intervals for new
// observations.
package regression

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/jmurray1022/learnR/dataset"
	"github.com/jmurray1022/learnR/pkg/errors"
)

// Model holds the result of one least-squares fit. It is immutable once
// produced; all interval methods are pure derivations from its fields.
type Model struct {
	Intercept float64
	Slope     float64

	// Normal-theory standard errors of the coefficients.
	InterceptSE float64
	SlopeSE     float64

	// ResidualSE is sqrt(RSS / (n-2)), the estimate of the noise
	// standard deviation.
	ResidualSE float64

	// Residuals[i] = y[i] - Fitted[i], in sample order.
	Residuals []float64
	Fitted    []float64

	n     int
	xMean float64
	sxx   float64 // sum of squared predictor deviations
	tss   float64 // total sum of squares of the response
	rss   float64 // residual sum of squares
}

// Fit estimates the regression line for the sample using the closed-form
// least-squares solution.
//
// It fails with a DegenerateSampleError when the sample has fewer than 3
// observations (no residual degree of freedom would remain) or when all
// predictor values are identical (the slope is undefined).
func Fit(sample *dataset.Sample) (*Model, error) {
	if sample == nil {
		return nil, errors.NewInvalidParameterError("regression.Fit", "sample", "must not be nil", nil)
	}
	n := sample.Len()
	if n < 3 {
		return nil, errors.NewDegenerateSampleError("regression.Fit",
			"need at least 3 observations for a residual degree of freedom", n)
	}

	xMean := stat.Mean(sample.X, nil)
	var sxx float64
	for _, x := range sample.X {
		d := x - xMean
		sxx += d * d
	}
	if sxx == 0 {
		return nil, errors.NewDegenerateSampleError("regression.Fit",
			"all predictor values are identical, slope is undefined", n)
	}

	alpha, beta := stat.LinearRegression(sample.X, sample.Y, nil, false)

	m := &Model{
		Intercept: alpha,
		Slope:     beta,
		Residuals: make([]float64, n),
		Fitted:    make([]float64, n),
		n:         n,
		xMean:     xMean,
		sxx:       sxx,
	}

	yMean := stat.Mean(sample.Y, nil)
	for i, x := range sample.X {
		m.Fitted[i] = alpha + beta*x
		m.Residuals[i] = sample.Y[i] - m.Fitted[i]
		m.rss += m.Residuals[i] * m.Residuals[i]
		dy := sample.Y[i] - yMean
		m.tss += dy * dy
	}

	m.ResidualSE = math.Sqrt(m.rss / float64(n-2))
	m.SlopeSE = m.ResidualSE / math.Sqrt(sxx)
	m.InterceptSE = m.ResidualSE * math.Sqrt(1/float64(n)+xMean*xMean/sxx)

	return m, nil
}

// PredictAt returns the fitted mean response at x.
func (m *Model) PredictAt(x float64) float64 {
	return m.Intercept + m.Slope*x
}

// RSquared returns the coefficient of determination, 1 - RSS/TSS.
// A constant response has no variation to explain; the score is 0 then.
func (m *Model) RSquared() float64 {
	if m.tss == 0 {
		return 0
	}
	return 1 - m.rss/m.tss
}

// NumObservations returns the size of the fitted sample.
func (m *Model) NumObservations() int {
	return m.n
}

// DegreesOfFreedom returns the residual degrees of freedom, n-2.
func (m *Model) DegreesOfFreedom() int {
	return m.n - 2
}
