/*
PURPOSE:
  Defines the root Cobra command for the weather-summary CLI.
  The root command itself prints the report; subcommands are helpers.

REQUIREMENTS:
  User-specified:
  - Required --city/-c flag.
  - --help prints usage and exits successfully.
  - A missing --city exits non-zero with a usage message.

  Implementation-discovered:
  - Tests need a fresh command tree per run (cobra remembers parsed flags),
    so the tree is built by NewRootCmd() instead of package-level vars.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/weather-summary/main.go
  - Calls: runSummary (run.go), cities subcommand (cities.go)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - cobra prints usage for flag errors only; runtime errors skip it.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Config is loaded and the logger configured in PersistentPreRunE.

USAGE:
  Called by main.go.

RELATED FILES:
  - cmd/weather-summary/main.go
  - internal/cli/run.go
*/

package cli

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/daryltucker/weather-summary/internal/config"
	"github.com/daryltucker/weather-summary/internal/output"
)

// options holds parsed flag values and the config built from them.
type options struct {
	cfgFile string
	verbose bool

	city   string
	format string
	color  string

	cfg *config.Config
}

// NewRootCmd builds the weather-summary command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "weather-summary",
		Short: "Print a simulated weather summary for a city",
		Long: `Looks up a city in a small built-in table of simulated weather and prints a
styled summary. City names are matched ignoring case and surrounding whitespace;
cities that are not in the table get a default "Fair" record.

Use 'weather-summary cities' to see which cities are known.`,
		Example: `  # Styled summary
  weather-summary --city "New York"

  # Short flag, machine-readable output
  weather-summary -c seattle --format json

  # Plain text for logs
  weather-summary -c Chicago --color never`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Required flags are checked after this hook; check them first so a
			// missing --city still prints usage.
			if err := cmd.ValidateRequiredFlags(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "YAML config file (format, color, log_level)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	addSummaryFlags(rootCmd, opts)
	rootCmd.AddCommand(newCitiesCmd())

	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the config file and configures the logger.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.LogLevel = "debug"
	}

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	output.Configure(cmd.ErrOrStderr(), lvl, "run_id", uuid.NewString())
	output.Logger.Debug("Config loaded", "file", o.cfgFile, "format", cfg.Format, "color", cfg.Color)

	o.cfg = cfg
	return nil
}
