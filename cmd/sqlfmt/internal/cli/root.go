// Package cli wires cobra subcommands for the sqlfmt binary: a rootCmd in
// its own file, one file per subcommand, package-level flag variables bound
// in Execute.
package cli

import (
	"errors"
	"fmt"

	"github.com/gofrs/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:          "sqlfmt",
		Short:        "sqlfmt",
		SilenceUsage: true,
		Long:         "A dialect-aware SQL pretty-printer.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}

	dumpTokens bool
	verbose    bool
	configPath string
)

// ExitCode is a RunE error that carries a specific process exit code (0
// success, 1 runtime error, 2 usage/configuration error), rather than
// letting cobra print a bare "Error: ..." and exit 1 for everything.
type ExitCode int

func (e ExitCode) Error() string { return fmt.Sprintf("sqlfmt: exit %d", int(e)) }

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.PersistentFlags().BoolVar(&dumpTokens, "dump-tokens", false, "dump the lexed/disambiguated token stream to stderr before formatting")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log per-invocation detail (dialect, token count, elapsed time) at debug level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a sqlfmt YAML config file (default: .sqlfmt.yaml in the current directory, if present)")

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var code ExitCode
	if errors.As(err, &code) {
		return int(code)
	}
	return 1
}

// requestLogger returns a logrus entry tagged with a fresh per-invocation
// correlation ID so a single run's log lines can be grepped out of a
// multi-invocation log stream.
func requestLogger() *logrus.Entry {
	return logrus.StandardLogger().WithField("invocation_id", uuid.Must(uuid.NewV4()).String())
}
