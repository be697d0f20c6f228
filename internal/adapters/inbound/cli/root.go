package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "pagelens",
		Short:         "Audit a web page and grade it",
		Long:          "Pagelens loads a page in headless Chrome, runs pluggable audits against it, and produces a weighted Lighthouse-style report with per-category scores and grades.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	logger := func() zerolog.Logger {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	}

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newAuditCmd(logger))
	cmd.AddCommand(newServeCmd(logger))
	cmd.AddCommand(newMCPCmd(logger))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
