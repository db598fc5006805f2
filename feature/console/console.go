package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"country-explorer/core/country"
	"country-explorer/core/export"
	"country-explorer/core/query"
	"country-explorer/core/reconcile"

	"go.uber.org/zap"
)

// MaxAttempts bounds how often a prompt is repeated after an invalid answer.
const MaxAttempts = 3

// errGaveUp cancels the current option after MaxAttempts invalid answers.
var errGaveUp = errors.New("too many invalid answers")

const menu = `
Country explorer
1) Search by name (exact or partial)
2) Filter by continent
3) Filter by population range
4) Filter by area range
5) Sort (name/population/area)
6) Show statistics
7) Show all countries
8) Export last listing to CSV
9) Refresh sources
0) Exit
`

// Options configures a Console.
type Options struct {
	// ExportPath is offered as the default export destination.
	ExportPath string
	Logger     *zap.Logger
}

// Console is the interactive menu over the shared store.
type Console struct {
	store      *reconcile.Store
	in         *bufio.Reader
	out        io.Writer
	exportPath string
	logger     *zap.Logger

	last []country.Record
}

// New creates a Console reading answers from in and writing to out.
func New(store *reconcile.Store, in io.Reader, out io.Writer, opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	path := opts.ExportPath
	if path == "" {
		path = "export.csv"
	}
	return &Console{
		store:      store,
		in:         bufio.NewReader(in),
		out:        out,
		exportPath: path,
		logger:     logger,
	}
}

// Run loads the data and serves the menu until the user exits or the input
// ends. It fails when no source produced any record.
func (c *Console) Run(ctx context.Context) error {
	snap, err := c.store.Load(ctx)
	c.printSummary(snap.Summary)
	if err != nil {
		return err
	}
	c.last = snap.Records

	for {
		fmt.Fprint(c.out, menu)
		choice, err := c.ask("Choose an option: ")
		if err != nil {
			return ignoreEOF(err)
		}

		if choice == "0" {
			fmt.Fprintln(c.out, "Goodbye!")
			return nil
		}
		if err := c.dispatch(ctx, choice); err != nil {
			if errors.Is(err, errGaveUp) {
				fmt.Fprintln(c.out, "Too many invalid answers, back to the menu.")
				continue
			}
			return ignoreEOF(err)
		}
	}
}

func (c *Console) dispatch(ctx context.Context, choice string) error {
	records := c.store.Snapshot().Records

	switch choice {
	case "1":
		text, err := c.ask("Name (full or partial): ")
		if err != nil {
			return err
		}
		exact, err := c.askYesNo("Exact match? (y/n): ")
		if err != nil {
			return err
		}
		c.show(query.SearchByName(records, text, exact))

	case "2":
		continent, err := c.ask("Continent (América/Europa/Asia/África/Oceanía): ")
		if err != nil {
			return err
		}
		c.show(query.FilterByContinent(records, continent))

	case "3", "4":
		field, label := country.FieldPopulation, "Population"
		if choice == "4" {
			field, label = country.FieldArea, "Area (km²)"
		}
		lo, err := c.askBound(label + " minimum (Enter for none): ")
		if err != nil {
			return err
		}
		hi, err := c.askBound(label + " maximum (Enter for none): ")
		if err != nil {
			return err
		}
		res, err := query.FilterByRange(records, field, lo, hi)
		if err != nil {
			return err
		}
		c.show(res)

	case "5":
		key, err := c.ask("Key (name/population/area): ")
		if err != nil {
			return err
		}
		asc, err := c.askYesNo("Ascending? (y/n): ")
		if err != nil {
			return err
		}
		res, err := query.Sort(records, key, asc)
		if err != nil {
			fmt.Fprintln(c.out, "Error:", err)
			return nil
		}
		c.show(res)

	case "6":
		c.printStats(query.Statistics(records))

	case "7":
		c.show(records)

	case "8":
		return c.exportLast()

	case "9":
		fmt.Fprintln(c.out, "Refreshing sources.")
		snap, err := c.store.Refresh(ctx)
		c.printSummary(snap.Summary)
		if err != nil {
			fmt.Fprintln(c.out, "Refresh failed:", err)
		}

	default:
		fmt.Fprintln(c.out, "Invalid option, choose one of 0-9.")
	}
	return nil
}

func (c *Console) exportLast() error {
	if len(c.last) == 0 {
		fmt.Fprintln(c.out, "No listing to export.")
		return nil
	}
	dest, err := c.ask(fmt.Sprintf("Destination CSV file (Enter for %s): ", c.exportPath))
	if err != nil {
		return err
	}
	if dest == "" {
		dest = c.exportPath
	}
	if err := export.ToFile(dest, c.last); err != nil {
		c.logger.Warn("Export failed", zap.String("path", dest), zap.Error(err))
		fmt.Fprintln(c.out, "Export failed:", err)
		return nil
	}
	fmt.Fprintf(c.out, "Exported to '%s' (%d rows).\n", dest, len(c.last))
	return nil
}

// show prints records and remembers them as the last listing.
func (c *Console) show(records []country.Record) {
	c.last = records
	if len(records) == 0 {
		fmt.Fprintln(c.out, "No countries to show.")
		return
	}
	rule := strings.Repeat("-", 76)
	fmt.Fprintf(c.out, "\nCountries (%d):\n%s\n", len(records), rule)
	for _, r := range records {
		fmt.Fprintf(c.out, "%-22s | Pop: %12d | Area(km²): %10d | %s\n", r.Name, r.Population, r.Area, r.Continent)
	}
	fmt.Fprintln(c.out, rule)
}

func (c *Console) printStats(s *query.Stats) {
	if s == nil {
		fmt.Fprintln(c.out, "No data for statistics.")
		return
	}
	fmt.Fprintln(c.out, "\nStatistics")
	fmt.Fprintf(c.out, "* Most populous: %s (%d)\n", s.MostPopulous.Name, s.MostPopulous.Population)
	fmt.Fprintf(c.out, "* Least populous: %s (%d)\n", s.LeastPopulous.Name, s.LeastPopulous.Population)
	fmt.Fprintf(c.out, "* Mean population: %.2f\n", s.MeanPopulation)
	fmt.Fprintf(c.out, "* Mean area: %.2f\n", s.MeanArea)
	fmt.Fprintln(c.out, "* Countries per continent:")
	for _, cc := range s.ByContinent {
		fmt.Fprintf(c.out, "   - %s: %d\n", cc.Continent, cc.Count)
	}
}

func (c *Console) printSummary(s reconcile.Summary) {
	if s.TabularError != "" {
		fmt.Fprintln(c.out, "CSV not loaded:", s.TabularError)
	}
	fmt.Fprintf(c.out, "CSV loaded: %d records.\n", s.Tabular)
	if s.RemoteError != "" {
		fmt.Fprintln(c.out, "API not loaded:", s.RemoteError)
	}
	fmt.Fprintf(c.out, "API loaded: %d records.\n", s.Remote)
	fmt.Fprintf(c.out, "Total merged: %d countries.\n", s.Merged)
}

// ask prints prompt and returns the trimmed answer.
func (c *Console) ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && (line == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askBound reads an optional non-negative integer. Empty input is no bound.
func (c *Console) askBound(prompt string) (*int64, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		answer, err := c.ask(prompt)
		if err != nil {
			return nil, err
		}
		if answer == "" {
			return nil, nil
		}
		if v, err := strconv.ParseInt(answer, 10, 64); err == nil && v >= 0 {
			return &v, nil
		}
		fmt.Fprintln(c.out, "Enter a whole number, or press Enter to leave it empty.")
	}
	return nil, errGaveUp
}

// askYesNo accepts y/yes/n/no and their Spanish forms.
func (c *Console) askYesNo(prompt string) (bool, error) {
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		answer, err := c.ask(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes", "s", "si", "sí":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(c.out, "Please answer 'y' or 'n'.")
	}
	return false, errGaveUp
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
