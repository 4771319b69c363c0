package regression

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jmurray1022/learnR/pkg/errors"
)

// Coefficient selects which regression coefficient an interval refers to.
type Coefficient int

const (
	Intercept Coefficient = iota
	Slope
)

func (c Coefficient) String() string {
	switch c {
	case Intercept:
		return "intercept"
	case Slope:
		return "slope"
	default:
		return "unknown"
	}
}

// ConfidenceInterval is a two-sided t-interval for one coefficient.
type ConfidenceInterval struct {
	Coefficient Coefficient
	Estimate    float64
	Lower       float64
	Upper       float64
	Level       float64
}

// PredictionInterval is a two-sided t-interval for a single new response
// at predictor value X. It accounts for both parameter uncertainty and
// residual noise, so it is strictly wider than an interval built from
// the residual standard error alone.
type PredictionInterval struct {
	X     float64
	Point float64
	Lower float64
	Upper float64
	Level float64
}

// tQuantile returns the two-sided critical value t_{level, n-2}.
func (m *Model) tQuantile(level float64) float64 {
	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(m.n - 2)}
	return t.Quantile(0.5 + level/2)
}

func validLevel(op string, level float64) error {
	if level <= 0 || level >= 1 {
		return errors.NewInvalidParameterError(op, "level", "must be in (0, 1)", level)
	}
	return nil
}

// ConfidenceInterval returns estimate ± t_{level, n-2} * se for the chosen
// coefficient, using the Student's t distribution with n-2 degrees of freedom.
func (m *Model) ConfidenceInterval(coef Coefficient, level float64) (ConfidenceInterval, error) {
	if err := validLevel("regression.ConfidenceInterval", level); err != nil {
		return ConfidenceInterval{}, err
	}

	var estimate, se float64
	switch coef {
	case Intercept:
		estimate, se = m.Intercept, m.InterceptSE
	case Slope:
		estimate, se = m.Slope, m.SlopeSE
	default:
		return ConfidenceInterval{}, errors.NewInvalidParameterError(
			"regression.ConfidenceInterval", "coef", "unknown coefficient", int(coef))
	}

	half := m.tQuantile(level) * se
	return ConfidenceInterval{
		Coefficient: coef,
		Estimate:    estimate,
		Lower:       estimate - half,
		Upper:       estimate + half,
		Level:       level,
	}, nil
}

// PredictionInterval returns the t-interval for a new individual response
// observed at x. The interval half-width is
//
//	t_{level, n-2} * residual_se * sqrt(1 + 1/n + (x - mean(x))^2 / Sxx)
//
// The leading 1 under the square root carries the residual noise of the new
// observation and the remaining terms carry the uncertainty of the fitted
// line, which keeps this interval wider than the naive ±t*residual_se band.
func (m *Model) PredictionInterval(x, level float64) (PredictionInterval, error) {
	if err := validLevel("regression.PredictionInterval", level); err != nil {
		return PredictionInterval{}, err
	}

	point := m.PredictAt(x)
	d := x - m.xMean
	variance := m.ResidualSE * m.ResidualSE * (1 + 1/float64(m.n) + d*d/m.sxx)
	half := m.tQuantile(level) * math.Sqrt(variance)

	return PredictionInterval{
		X:     x,
		Point: point,
		Lower: point - half,
		Upper: point + half,
		Level: level,
	}, nil
}
