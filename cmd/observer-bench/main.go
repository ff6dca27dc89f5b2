package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/controller-runtime/pkg/manager/signals"
)

// Set during go build.
var version string

func main() {
	rootCmd := createRootCommand()

	rootCmd.AddCommand(
		createScenarioCommand(),
		createRunCommand(),
		createVersionCommand(),
	)

	if err := rootCmd.ExecuteContext(signals.SetupSignalHandler()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
