package trials

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmurray1022/learnR/pkg/errors"
	"github.com/jmurray1022/learnR/regression"
	"github.com/jmurray1022/learnR/sim"
)

func fixedDesign() []float64 {
	return []float64{0.5, 1.5, 2.5, 3.5, 4.5, 5.5, 6.5, 7.5, 8.5, 9.5}
}

func TestRunMonteCarlo_CollectsOnePairPerTrial(t *testing.T) {
	params := sim.Params{Intercept: 1, Slope: 2, NoiseStd: 1}

	col, err := RunMonteCarlo(200, fixedDesign(), params, rand.NewPCG(1, 1))
	require.NoError(t, err)

	assert.Equal(t, 200, col.Len())
	assert.Equal(t, 0, col.Skipped)
}

func TestRunMonteCarlo_Deterministic(t *testing.T) {
	params := sim.Params{Intercept: 1, Slope: 2, NoiseStd: 1}

	a, err := RunMonteCarlo(500, fixedDesign(), params, rand.NewPCG(42, 42))
	require.NoError(t, err)
	b, err := RunMonteCarlo(500, fixedDesign(), params, rand.NewPCG(42, 42))
	require.NoError(t, err)

	assert.Equal(t, a.Trials, b.Trials)
}

func TestRunMonteCarlo_InvalidInputs(t *testing.T) {
	params := sim.Params{Intercept: 1, Slope: 2, NoiseStd: 1}
	design := fixedDesign()

	_, err := RunMonteCarlo(0, design, params, rand.NewPCG(1, 1))
	require.Error(t, err)
	var invalid *errors.InvalidParameterError
	assert.True(t, errors.As(err, &invalid))

	_, err = RunMonteCarlo(10, design, sim.Params{NoiseStd: -1}, rand.NewPCG(1, 1))
	require.Error(t, err)

	_, err = RunMonteCarlo(10, design, params, nil)
	require.Error(t, err)
}

func TestRunMonteCarlo_DegenerateDesignFailsUpFront(t *testing.T) {
	params := sim.Params{Intercept: 1, Slope: 2, NoiseStd: 1}

	_, err := RunMonteCarlo(10, []float64{3, 3, 3, 3}, params, rand.NewPCG(1, 1))
	require.Error(t, err)
	var degenerate *errors.DegenerateSampleError
	assert.True(t, errors.As(err, &degenerate))

	_, err = RunMonteCarlo(10, []float64{1, 2}, params, rand.NewPCG(1, 1))
	require.Error(t, err)
	assert.True(t, errors.As(err, &degenerate))
}

// TestRunMonteCarlo_MatchesNormalTheory is the core validation of the
// whole exercise: over many resimulations, the empirical spread of the
// slope estimates should match the analytic standard error formula.
func TestRunMonteCarlo_MatchesNormalTheory(t *testing.T) {
	params := sim.Params{Intercept: -2, Slope: 1.25, NoiseStd: 3}

	sample, err := sim.Simulate(50, 0, 10, params, rand.NewPCG(7, 7))
	require.NoError(t, err)

	col, err := RunMonteCarlo(5000, sample.X, params, rand.NewPCG(7, 7))
	require.NoError(t, err)
	require.Equal(t, 5000, col.Len())

	slopeMean, slopeSD := col.SlopeStats()
	_, interceptSD := col.InterceptStats()

	// Unbiasedness: the mean of 5000 estimates sits very close to truth.
	assert.InDelta(t, params.Slope, slopeMean, 0.02)

	// The true sampling standard deviation for this fixed design is
	// noise_std / sqrt(Sxx); 5000 trials pin it down to a percent or two.
	var xMean, sxx float64
	for _, x := range sample.X {
		xMean += x
	}
	xMean /= float64(len(sample.X))
	for _, x := range sample.X {
		d := x - xMean
		sxx += d * d
	}
	trueSlopeSD := params.NoiseStd / math.Sqrt(sxx)
	assert.InDelta(t, trueSlopeSD, slopeSD, 0.05*trueSlopeSD)

	// The analytic SEs from a single fit estimate the same quantities
	// through the estimated residual variance, so they land within a
	// looser band of the Monte Carlo answer.
	model, err := regression.Fit(sample)
	require.NoError(t, err)
	assert.InDelta(t, model.SlopeSE, slopeSD, 0.25*model.SlopeSE)
	assert.InDelta(t, model.InterceptSE, interceptSD, 0.25*model.InterceptSE)
}

// TestEndToEndScenario walks the documented acceptance scenario:
// known truth, one fitted sample, and a Monte Carlo check of the slope SE.
func TestEndToEndScenario(t *testing.T) {
	params := sim.Params{Intercept: -2, Slope: 1.25, NoiseStd: 3}

	sample, err := sim.Simulate(50, 0, 10, params, rand.NewPCG(7, 7))
	require.NoError(t, err)

	model, err := regression.Fit(sample)
	require.NoError(t, err)
	assert.InDelta(t, 1.25, model.Slope, 0.5)

	col, err := RunMonteCarlo(5000, sample.X, params, rand.NewPCG(7, 7))
	require.NoError(t, err)

	_, slopeSD := col.SlopeStats()
	assert.InDelta(t, model.SlopeSE, slopeSD, 0.25*model.SlopeSE)
}
