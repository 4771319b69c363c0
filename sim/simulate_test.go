package sim

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/jmurray1022/learnR/pkg/errors"
)

func TestSimulate_ShapeAndRange(t *testing.T) {
	params := Params{Intercept: 1, Slope: 2, NoiseStd: 0.5}

	s, err := Simulate(200, -3, 7, params, rand.NewPCG(1, 1))
	require.NoError(t, err)

	require.Equal(t, 200, s.Len())
	for i, x := range s.X {
		assert.GreaterOrEqual(t, x, -3.0, "x[%d]", i)
		assert.Less(t, x, 7.0, "x[%d]", i)
	}
}

func TestSimulate_Deterministic(t *testing.T) {
	params := Params{Intercept: -2, Slope: 1.25, NoiseStd: 3}

	a, err := Simulate(50, 0, 10, params, rand.NewPCG(7, 7))
	require.NoError(t, err)
	b, err := Simulate(50, 0, 10, params, rand.NewPCG(7, 7))
	require.NoError(t, err)

	assert.Equal(t, a.X, b.X)
	assert.Equal(t, a.Y, b.Y)

	c, err := Simulate(50, 0, 10, params, rand.NewPCG(8, 8))
	require.NoError(t, err)
	assert.NotEqual(t, a.Y, c.Y)
}

func TestSimulate_ZeroNoiseIsExactLine(t *testing.T) {
	params := Params{Intercept: 4, Slope: -0.5, NoiseStd: 0}

	s, err := Simulate(20, 0, 1, params, rand.NewPCG(3, 3))
	require.NoError(t, err)

	for i, x := range s.X {
		assert.InDelta(t, 4-0.5*x, s.Y[i], 1e-12)
	}
}

func TestSimulate_NoiseCenteredOnLine(t *testing.T) {
	params := Params{Intercept: 0, Slope: 2, NoiseStd: 1}

	s, err := Simulate(20000, 0, 1, params, rand.NewPCG(5, 5))
	require.NoError(t, err)

	noise := make([]float64, s.Len())
	for i, x := range s.X {
		noise[i] = s.Y[i] - 2*x
	}
	mean, stddev := stat.MeanStdDev(noise, nil)
	assert.InDelta(t, 0.0, mean, 0.03)
	assert.InDelta(t, 1.0, stddev, 0.03)
}

func TestSimulate_InvalidParameters(t *testing.T) {
	params := Params{Intercept: 0, Slope: 1, NoiseStd: 1}
	src := rand.NewPCG(1, 1)

	cases := []struct {
		name string
		call func() error
	}{
		{"zero n", func() error {
			_, err := Simulate(0, 0, 1, params, src)
			return err
		}},
		{"negative n", func() error {
			_, err := Simulate(-5, 0, 1, params, src)
			return err
		}},
		{"inverted range", func() error {
			_, err := Simulate(10, 5, 5, params, src)
			return err
		}},
		{"negative noise", func() error {
			_, err := Simulate(10, 0, 1, Params{NoiseStd: -1}, src)
			return err
		}},
		{"nil source", func() error {
			_, err := Simulate(10, 0, 1, params, nil)
			return err
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.Error(t, err)

			var invalid *errors.InvalidParameterError
			assert.True(t, errors.As(err, &invalid))
		})
	}
}

func TestSimulateResponse_FixedDesign(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	params := Params{Intercept: 1, Slope: 1, NoiseStd: 0}

	s, err := SimulateResponse(x, params, rand.NewPCG(2, 2))
	require.NoError(t, err)

	assert.Equal(t, x, s.X)
	assert.Equal(t, []float64{2, 3, 4, 5}, s.Y)

	// The design slice is copied, not aliased.
	x[0] = 99
	assert.Equal(t, 1.0, s.X[0])
}

func TestSimulateResponse_FreshNoisePerCall(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	params := Params{Intercept: 0, Slope: 1, NoiseStd: 2}
	src := rand.NewPCG(9, 9)

	a, err := SimulateResponse(x, params, src)
	require.NoError(t, err)
	b, err := SimulateResponse(x, params, src)
	require.NoError(t, err)

	assert.Equal(t, a.X, b.X)
	assert.NotEqual(t, a.Y, b.Y)
}

func TestSimulateResponse_Invalid(t *testing.T) {
	_, err := SimulateResponse(nil, Params{}, rand.NewPCG(1, 1))
	require.Error(t, err)

	_, err = SimulateResponse([]float64{1, 2}, Params{NoiseStd: -0.1}, rand.NewPCG(1, 1))
	require.Error(t, err)

	_, err = SimulateResponse([]float64{1, 2}, Params{}, nil)
	require.Error(t, err)
}
