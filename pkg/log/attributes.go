// Standard attribute keys for the simulation and estimation pipeline.
// Using these keys keeps demo and wrapper log output filterable.

package log

const (
	// OperationKey names the pipeline step being performed.
	// Standard values: "simulate", "fit", "monte_carlo", "bootstrap", "diagnose".
	OperationKey = "op"

	// SamplesKey is the number of observations in the sample.
	SamplesKey = "data.samples"

	// TrialsKey is the number of Monte Carlo or bootstrap trials.
	TrialsKey = "trials.count"

	// SkippedKey is the number of degenerate trials skipped when
	// skip-and-count is enabled.
	SkippedKey = "trials.skipped"

	// SeedKey records the RNG seed for reproducibility.
	SeedKey = "config.seed"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
