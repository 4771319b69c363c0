// Package learnr is an educational toolkit for the normal linear
// regression model. It simulates data under known parameters, fits
// ordinary least squares, and checks the normal-theory standard errors
// empirically, by Monte Carlo resimulation and by bootstrap resampling.
//
// The pieces mirror the steps of a classic statistics lab:
//
//   - sim generates (x, y) samples under a known line with Gaussian noise
//   - regression fits the line and derives standard errors and t-intervals
//   - trials repeats the fit over fresh noise (Monte Carlo) or resampled
//     rows (bootstrap) and collects the coefficient distributions
//   - diagnostics summarizes residuals for assumption checking
//   - dataset holds the sample type and loads tabular data files
//
// Every randomized operation takes an explicit math/rand/v2 source, so
// any experiment reproduces exactly from its seed:
//
//	params := sim.Params{Intercept: -2, Slope: 1.25, NoiseStd: 3}
//	sample, err := sim.Simulate(50, 0, 10, params, rand.NewPCG(7, 7))
//	if err != nil {
//		log.Fatal(err)
//	}
//	model, err := regression.Fit(sample)
//	if err != nil {
//		log.Fatal(err)
//	}
//	mc, err := trials.RunMonteCarlo(5000, sample.X, params, rand.NewPCG(7, 7))
//	if err != nil {
//		log.Fatal(err)
//	}
//	_, empiricalSE := mc.SlopeStats()
//	fmt.Printf("analytic %.4f vs empirical %.4f\n", model.SlopeSE, empiricalSE)
//
// The library core performs no I/O, printing, or plotting; see
// examples/newsprint for a complete driver that loads the newspaper
// circulation dataset and renders residual plots.
package learnr
