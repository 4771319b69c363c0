package trials

import "gonum.org/v1/gonum/stat"

// Collection is the empirical distribution of coefficient estimates
// gathered over a completed run, one entry per successful trial.
// It is read-only once the driver returns it.
type Collection struct {
	Trials []Coefficients

	// Skipped counts degenerate trials dropped under WithSkipDegenerate.
	// Always 0 in the default fail-fast mode.
	Skipped int
}

// Len returns the number of successful trials.
func (c *Collection) Len() int {
	return len(c.Trials)
}

// InterceptEstimates returns the intercept estimate of every trial, in
// trial order.
func (c *Collection) InterceptEstimates() []float64 {
	out := make([]float64, len(c.Trials))
	for i, t := range c.Trials {
		out[i] = t.Intercept
	}
	return out
}

// SlopeEstimates returns the slope estimate of every trial, in trial order.
func (c *Collection) SlopeEstimates() []float64 {
	out := make([]float64, len(c.Trials))
	for i, t := range c.Trials {
		out[i] = t.Slope
	}
	return out
}

// InterceptStats returns the empirical mean and standard deviation of the
// intercept estimates. The standard deviation is the Monte Carlo (or
// bootstrap) counterpart of the analytic intercept standard error.
func (c *Collection) InterceptStats() (mean, stddev float64) {
	return stat.MeanStdDev(c.InterceptEstimates(), nil)
}

// SlopeStats returns the empirical mean and standard deviation of the
// slope estimates.
func (c *Collection) SlopeStats() (mean, stddev float64) {
	return stat.MeanStdDev(c.SlopeEstimates(), nil)
}
