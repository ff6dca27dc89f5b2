package main

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/nginx/observer-bench/internal/bench"
)

const (
	variantAll       = "all"
	maxCreationCount = 10_000_000
)

var logLevels = []string{"debug", "info", "error"}

func validateVariant(value string) error {
	if len(value) == 0 {
		return errors.New("must be set")
	}

	allowed := append(bench.Variants(), variantAll)
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid variant: %s; must be one of %v", value, allowed)
	}

	return nil
}

func validateCreationCount(value int) error {
	if value < 1 || value > maxCreationCount {
		return fmt.Errorf("count must be between 1 and %d, got %d", maxCreationCount, value)
	}

	return nil
}

func validateLogLevel(value string) error {
	if !slices.Contains(logLevels, value) {
		return fmt.Errorf("invalid log level: %s; must be one of %v", value, logLevels)
	}

	return nil
}

func validateBenchTime(value time.Duration) error {
	if value <= 0 {
		return fmt.Errorf("bench time must be positive, got %s", value)
	}

	return nil
}
