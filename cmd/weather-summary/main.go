/*
PURPOSE:
  Entry point for the weather-summary application.
  Builds the CLI root command and executes it.

REQUIREMENTS:
  User-specified:
  - Single binary entry point.
  - Non-zero exit status when the city is missing or anything else fails.

  Implementation-discovered:
  - cobra reports the missing-flag error; main only decides the exit code.

ARCHITECTURE INTEGRATION:
  - Calls: internal/cli.Execute()

ERROR HANDLING:
  - Any error returned by Execute() is printed to stderr; exit code 1.

IMPLEMENTATION RULES:
  - Keep main() minimal. All logic belongs in internal/ packages.

USAGE:
  go build -o weather-summary ./cmd/weather-summary
  ./weather-summary --city "New York"

RELATED FILES:
  - internal/cli/root.go - The actual root command definition.
*/

package main

import (
	"fmt"
	"os"

	"github.com/daryltucker/weather-summary/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
