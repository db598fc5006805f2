package cmd

import (
	"fmt"
	"os"

	"country-explorer/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "country-explorer",
	Short: "Country data explorer",
	Long: `Country Explorer merges country records from a local CSV file and a remote
JSON API, then lets you search, filter, sort, summarize and export them from
a web server, an interactive console or one-shot commands.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits with status 1 on failure.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Development config gives readable timestamps on a terminal.
		l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
		if logErr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
		os.Exit(1)
	}
}
