package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"country-explorer/core/query"
	"country-explorer/core/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	queryOpts queryFlags
	queryJSON bool
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Filter and sort countries once and print the result",
	Long: `Loads both sources, applies the filters in order (name, continent, population
range, area range) and the optional sort, then prints the matching countries
and their statistics.

Examples:
  # Countries between one and fifty million people, most populous first
  query --min-population 1000000 --max-population 50000000 --sort population --desc

  # Exact name lookup as JSON
  query --name chile --exact --json`,
	RunE: runQuery,
}

func init() {
	queryOpts.register(queryCmd)
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "Print JSON instead of a table")
	RootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.log.Sync()

	snap, err := e.store.Load(ctx)
	if err != nil {
		return describeLoadError(err, snap.Summary)
	}

	res, warnings := query.Apply(snap.Records, queryOpts.params(cmd))
	for _, w := range warnings {
		e.log.Warn("Query parameter ignored", zap.Error(w))
	}

	out := cmd.OutOrStdout()
	if queryJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}
	return printTable(out, res)
}

func printTable(w io.Writer, res query.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "NAME\tPOPULATION\tAREA\tCONTINENT\t")
	for _, r := range res.Records {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t\n", r.Name, r.Population, r.Area, r.Continent)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	s := res.Stats
	if s == nil {
		_, err := fmt.Fprintln(w, "\nNo countries match.")
		return err
	}
	fmt.Fprintf(w, "\n%d countries. Most populous: %s (%d). Least populous: %s (%d).\n",
		s.Count, s.MostPopulous.Name, s.MostPopulous.Population, s.LeastPopulous.Name, s.LeastPopulous.Population)
	fmt.Fprintf(w, "Mean population: %.2f. Mean area: %.2f.\n", s.MeanPopulation, s.MeanArea)
	for _, cc := range s.ByContinent {
		fmt.Fprintf(w, "  %s: %d\n", cc.Continent, cc.Count)
	}
	return nil
}

// describeLoadError adds the source summary to ErrNoData.
func describeLoadError(err error, s reconcile.Summary) error {
	if !errors.Is(err, reconcile.ErrNoData) {
		return err
	}
	return fmt.Errorf("%w (tabular: %s, remote: %s)", err, orNone(s.TabularError), orNone(s.RemoteError))
}

func orNone(s string) string {
	if s == "" {
		return "no records"
	}
	return s
}
