package bench

import (
	"context"
	"flag"
	"fmt"
	"io"
	"testing"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/schollz/progressbar/v3"

	"github.com/nginx/observer-bench/internal/config"
	"github.com/nginx/observer-bench/internal/metrics/collectors"
	"github.com/nginx/observer-bench/internal/observer"
)

// DefaultCreationCount is the default number of observers attached to the subject of a benchmark.
const DefaultCreationCount = 250_000

// Operation is a benchmarked operation.
type Operation string

const (
	// OperationAttach attaches all the observers again to the subject they are attached to.
	OperationAttach Operation = "attach"
	// OperationNotification changes the subject, which notifies all the observers.
	OperationNotification Operation = "notification"
)

// Result is the result of benchmarking an operation of a Case.
type Result struct {
	Case        string
	Operation   Operation
	Observers   int
	Iterations  int
	NsPerOp     int64
	AllocsPerOp int64
	BytesPerOp  int64
	// Relative is NsPerOp divided by the NsPerOp of the first case benchmarked for the same operation.
	Relative float64
}

// NsPerObserver returns the average time spent per observer.
func (r Result) NsPerObserver() float64 {
	if r.Observers == 0 {
		return 0
	}
	return float64(r.NsPerOp) / float64(r.Observers)
}

// Runner runs the benchmark cases.
type Runner struct {
	logger   logr.Logger
	progress io.Writer
	cfg      config.Config
}

// NewRunner creates a new Runner. If progress is not nil and cfg.ShowProgress is set, a progress bar is
// written to it.
func NewRunner(cfg config.Config, progress io.Writer) *Runner {
	if cfg.CreationCount <= 0 {
		cfg.CreationCount = DefaultCreationCount
	}

	return &Runner{
		cfg:      cfg,
		logger:   cfg.Logger,
		progress: progress,
	}
}

// Run benchmarks the attach and notification operations of the selected cases.
// It stops before the next case once ctx is canceled.
func (r *Runner) Run(ctx context.Context) ([]Result, error) {
	cases, err := SelectCases(r.cfg.Variants)
	if err != nil {
		return nil, err
	}

	if err := r.configureBenchTime(); err != nil {
		return nil, err
	}

	bar := r.newProgressBar(len(cases)*2, "benchmarking")
	defer func() {
		_ = bar.Finish()
	}()

	results := make([]Result, 0, len(cases)*2)
	baselines := make(map[Operation]int64, 2)

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return results, fmt.Errorf("benchmarks interrupted before case %s: %w", c.Name(), err)
		}

		caseLogger := r.logger.WithValues("case", c.Name(), "observers", r.cfg.CreationCount)
		caseLogger.Info("Preparing benchmark case")

		f := c.newFixture(r.cfg.CreationCount)

		for _, op := range []Operation{OperationAttach, OperationNotification} {
			bar.Describe(fmt.Sprintf("%s %s", c.Name(), op))

			res := testing.Benchmark(benchmarkFunc(f, op))
			result := newResult(c, op, r.cfg.CreationCount, res)

			if baseline, ok := baselines[op]; ok {
				if baseline > 0 {
					result.Relative = float64(result.NsPerOp) / float64(baseline)
				}
			} else {
				baselines[op] = result.NsPerOp
				result.Relative = 1
			}

			caseLogger.Info(
				"Finished benchmark",
				"operation", op,
				"iterations", result.Iterations,
				"nsPerOp", result.NsPerOp,
				"allocsPerOp", result.AllocsPerOp,
			)

			results = append(results, result)
			_ = bar.Add(1)
		}
	}

	return results, nil
}

// Measure attaches the observers of every selected case to an instrumented subject and sends one notification.
// It returns the registry holding the collected metrics, labeled by case.
func (r *Runner) Measure(ctx context.Context) (*prometheus.Registry, error) {
	cases, err := SelectCases(r.cfg.Variants)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("measurement interrupted before case %s: %w", c.Name(), err)
		}

		collector := collectors.NewSubjectCollector(map[string]string{"case": c.Name()})
		if err := registry.Register(collector); err != nil {
			return nil, fmt.Errorf("error registering metrics collector of case %s: %w", c.Name(), err)
		}

		f := c.newFixture(r.cfg.CreationCount, observer.WithMetricsCollector(collector))
		f.notify()

		r.logger.Info("Measured case", "case", c.Name(), "observers", r.cfg.CreationCount)
	}

	return registry, nil
}

// configureBenchTime sets the minimum time of the benchmarks run with testing.Benchmark.
func (r *Runner) configureBenchTime() error {
	if r.cfg.BenchTime <= 0 {
		return nil
	}

	testing.Init()
	if err := flag.Set("test.benchtime", r.cfg.BenchTime.String()); err != nil {
		return fmt.Errorf("error setting benchmark time: %w", err)
	}

	return nil
}

func (r *Runner) newProgressBar(total int, description string) *progressbar.ProgressBar {
	if !r.cfg.ShowProgress || r.progress == nil {
		return progressbar.DefaultSilent(int64(total), description)
	}

	return progressbar.NewOptions(
		total,
		progressbar.OptionSetWriter(r.progress),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func benchmarkFunc(f fixture, op Operation) func(b *testing.B) {
	return func(b *testing.B) {
		b.ReportAllocs()

		switch op {
		case OperationAttach:
			for range b.N {
				f.attach()
			}
		case OperationNotification:
			for range b.N {
				f.notify()
			}
		}
	}
}

func newResult(c Case, op Operation, observers int, res testing.BenchmarkResult) Result {
	return Result{
		Case:        c.Name(),
		Operation:   op,
		Observers:   observers,
		Iterations:  res.N,
		NsPerOp:     res.NsPerOp(),
		AllocsPerOp: res.AllocsPerOp(),
		BytesPerOp:  res.AllocedBytesPerOp(),
	}
}
