package main

import (
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	ctlrZap "sigs.k8s.io/controller-runtime/pkg/log/zap"

	"github.com/nginx/observer-bench/internal/bench"
	"github.com/nginx/observer-bench/internal/config"
)

// flag names shared by the commands
const (
	logLevelFlag = "log-level"
	variantFlag  = "variant"
	variantUsage = `The observer variant to use. Must be one of "reference", "value" or "all".`
)

func createRootCommand() *cobra.Command {
	// flag values
	logLevel := stringValidatingValue{
		validator: validateLogLevel,
		value:     "info",
	}

	rootCmd := &cobra.Command{
		Use:           "observer-bench",
		Short:         "Compare the reference and value semantics implementations of the observer pattern",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().Var(
		&logLevel,
		logLevelFlag,
		`The log level. Must be one of "debug", "info" or "error".`,
	)

	return rootCmd
}

func createScenarioCommand() *cobra.Command {
	// flag values
	variant := stringValidatingValue{
		validator: validateVariant,
		value:     variantAll,
	}

	cmd := &cobra.Command{
		Use:   "scenario",
		Short: "Run the observer scenario and check the values seen by the observers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := createLogger(cmd)

			var errs []error
			for _, v := range selectVariants(variant.value) {
				if err := bench.RunScenario(v, logger.WithValues("variant", v)); err != nil {
					errs = append(errs, err)
					continue
				}

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "scenario passed for variant %s\n", v); err != nil {
					return err
				}
			}

			return errors.Join(errs...)
		},
	}

	cmd.Flags().Var(
		&variant,
		variantFlag,
		variantUsage,
	)

	return cmd
}

func createRunCommand() *cobra.Command {
	// flag names
	const (
		countFlag     = "count"
		benchTimeFlag = "bench-time"
		metricsFlag   = "metrics"
		progressFlag  = "progress"
	)

	// flag values
	var (
		variant = stringValidatingValue{
			validator: validateVariant,
			value:     variantAll,
		}
		creationCount = intValidatingValue{
			validator: validateCreationCount,
			value:     bench.DefaultCreationCount,
		}
		benchTime      time.Duration
		collectMetrics bool
		showProgress   bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Benchmark attaching and notifying observers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := validateBenchTime(benchTime); err != nil {
				return fmt.Errorf("invalid %s flag: %w", benchTimeFlag, err)
			}

			logger := createLogger(cmd).WithValues("runID", uuid.NewString())

			commit, date, dirty := getBuildInfo()
			logger.Info(
				"Starting observer benchmarks",
				"version", version,
				"commit", commit,
				"date", date,
				"dirty", dirty,
			)

			flagKeys, flagValues := parseFlags(cmd.Flags())
			logger.V(1).Info("Parsed flags", "flags", flagKeys, "values", flagValues)

			conf := config.Config{
				Logger:         logger,
				Variants:       selectVariants(variant.value),
				CreationCount:  creationCount.value,
				BenchTime:      benchTime,
				CollectMetrics: collectMetrics,
				ShowProgress:   showProgress,
			}

			runner := bench.NewRunner(conf, cmd.ErrOrStderr())

			results, err := runner.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to run benchmarks: %w", err)
			}

			if err := bench.WriteResults(cmd.OutOrStdout(), results); err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}

			if !conf.CollectMetrics {
				return nil
			}

			registry, err := runner.Measure(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to measure metrics: %w", err)
			}

			if err := bench.WriteMetrics(cmd.OutOrStdout(), registry); err != nil {
				return fmt.Errorf("failed to write metrics: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().Var(
		&variant,
		variantFlag,
		variantUsage,
	)

	cmd.Flags().Var(
		&creationCount,
		countFlag,
		fmt.Sprintf("The number of observers attached to the subject. Must be between 1 and %d.", maxCreationCount),
	)

	cmd.Flags().DurationVar(
		&benchTime,
		benchTimeFlag,
		time.Second,
		"The minimum time each benchmark runs for. Must be parsable by https://pkg.go.dev/time#ParseDuration",
	)

	cmd.Flags().BoolVar(
		&collectMetrics,
		metricsFlag,
		false,
		"Send one instrumented notification per case after the benchmarks and print the collected metrics.",
	)

	cmd.Flags().BoolVar(
		&showProgress,
		progressFlag,
		true,
		"Show the progress of the benchmarks on stderr.",
	)

	return cmd
}

func createVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and build information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			commit, date, dirty := getBuildInfo()

			_, err := fmt.Fprintf(
				cmd.OutOrStdout(),
				"version: %s\ncommit: %s\ndate: %s\ndirty: %s\n",
				version,
				commit,
				date,
				dirty,
			)

			return err
		},
	}
}

// createLogger creates a logger writing to the error output of cmd, at the level of the log-level flag.
func createLogger(cmd *cobra.Command) logr.Logger {
	atom := zap.NewAtomicLevel()

	if flag := cmd.Flags().Lookup(logLevelFlag); flag != nil {
		// the flag value is validated when set
		_ = atom.UnmarshalText([]byte(flag.Value.String()))
	}

	return ctlrZap.New(ctlrZap.Level(atom), ctlrZap.WriteTo(cmd.ErrOrStderr()))
}

func selectVariants(variant string) []string {
	if variant == variantAll {
		return bench.Variants()
	}

	return []string{variant}
}

func parseFlags(flags *pflag.FlagSet) ([]string, []string) {
	var flagKeys, flagValues []string

	flags.VisitAll(
		func(flag *pflag.Flag) {
			flagKeys = append(flagKeys, flag.Name)

			if flag.Value.Type() == "bool" {
				flagValues = append(flagValues, flag.Value.String())
			} else {
				val := "user-defined"
				if flag.Value.String() == flag.DefValue {
					val = "default"
				}

				flagValues = append(flagValues, val)
			}
		},
	)

	return flagKeys, flagValues
}

func getBuildInfo() (commitHash string, commitTime string, dirtyBuild string) {
	commitHash = "unknown"
	commitTime = "unknown"
	dirtyBuild = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	for _, kv := range info.Settings {
		switch kv.Key {
		case "vcs.revision":
			commitHash = kv.Value
		case "vcs.time":
			commitTime = kv.Value
		case "vcs.modified":
			dirtyBuild = kv.Value
		}
	}

	return
}
