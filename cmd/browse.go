package cmd

import (
	"context"
	"os"

	"country-explorer/feature/console"

	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Open the interactive console menu",
	Long:  `Loads both sources and opens a numbered menu to search, filter, sort, summarize, export and refresh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		e, err := setup(ctx)
		if err != nil {
			return err
		}
		defer e.log.Sync()

		c := console.New(e.store, os.Stdin, cmd.OutOrStdout(), console.Options{
			ExportPath: e.cfg.Export.Path,
			Logger:     e.log,
		})
		return c.Run(ctx)
	},
}

func init() {
	RootCmd.AddCommand(browseCmd)
}
