package config

import (
	"time"

	"github.com/go-logr/logr"
)

type Config struct {
	Logger logr.Logger
	// Variants are the names of the observer variants to benchmark. If empty, all variants are benchmarked.
	Variants []string
	// CreationCount is the number of observers attached to the subject of every benchmark.
	CreationCount int
	// BenchTime is the minimum time a benchmark runs for. If zero, the default of the testing package is used.
	BenchTime time.Duration
	// CollectMetrics enables an instrumented notification pass after the benchmarks whose metrics are reported.
	CollectMetrics bool
	// ShowProgress enables the progress bar.
	ShowProgress bool
}
