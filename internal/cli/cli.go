package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/coursegrid/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Environment variables that override the default of the matching flag.
const (
	EnvLogFormat = "COURSEGRID_LOG_FORMAT"
	EnvLogLevel  = "COURSEGRID_LOG_LEVEL"
)

// envDefault returns the value of the environment variable key, or fallback
// when it is unset or empty.
func envDefault(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var parsed *app.Config
	root := newRootCommand(&parsed)
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	if err := root.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if parsed == nil {
		slog.Debug("No command selected, exiting after help output.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", parsed)
	return parsed, false, nil
}

// newRootCommand builds the command tree. A subcommand that runs stores its
// validated configuration in *parsed.
func newRootCommand(parsed **app.Config) *cobra.Command {
	var logFormat, logLevel, walkthroughPath string

	root := &cobra.Command{
		Use:   "coursegrid",
		Short: "coursegrid - list and discount exercises",
		Long: `coursegrid runs two small exercises:

  lists     walks an integer sequence through append, insert, extend,
            pop, sort and index, printing the sequence after each step
  discount  asks for a price and a discount percentage and prints the
            final price (discounts apply from 20% upwards)`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&logFormat, "log-format", envDefault(EnvLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	root.PersistentFlags().StringVar(&logLevel, "log-level", envDefault(EnvLogLevel, "warn"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	build := func(command app.Command) error {
		cfg, err := app.NewConfig(app.Config{
			Command:         command,
			WalkthroughPath: walkthroughPath,
			LogFormat:       logFormat,
			LogLevel:        logLevel,
		})
		if err != nil {
			return err
		}
		*parsed = cfg
		return nil
	}

	lists := &cobra.Command{
		Use:   "lists",
		Short: "Run the list operations walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(app.CommandLists)
		},
	}
	lists.Flags().StringVarP(&walkthroughPath, "walkthrough", "w", "", "Path to a .hcl/.yaml walkthrough file, or a directory of .hcl files.")

	discount := &cobra.Command{
		Use:   "discount",
		Short: "Compute a discounted price from console input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(app.CommandDiscount)
		},
	}

	root.AddCommand(lists, discount)
	return root
}
