package cmd

import (
	"country-explorer/core/query"

	"github.com/spf13/cobra"
)

// queryFlags holds the filter and sort flags shared by query and export.
type queryFlags struct {
	name          string
	exact         bool
	continent     string
	minPopulation int64
	maxPopulation int64
	minArea       int64
	maxArea       int64
	sort          string
	desc          bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.name, "name", "", "Keep countries whose name contains this text")
	fs.BoolVar(&f.exact, "exact", false, "Require the whole name to match")
	fs.StringVar(&f.continent, "continent", "", "Keep countries of this continent")
	fs.Int64Var(&f.minPopulation, "min-population", 0, "Minimum population")
	fs.Int64Var(&f.maxPopulation, "max-population", 0, "Maximum population")
	fs.Int64Var(&f.minArea, "min-area", 0, "Minimum area in km²")
	fs.Int64Var(&f.maxArea, "max-area", 0, "Maximum area in km²")
	fs.StringVar(&f.sort, "sort", "", "Sort key: name, population or area")
	fs.BoolVar(&f.desc, "desc", false, "Sort in descending order")
}

// params converts the flags, treating bounds that were not given as open.
func (f *queryFlags) params(cmd *cobra.Command) query.Params {
	fs := cmd.Flags()
	bound := func(flag string, v int64) *int64 {
		if !fs.Changed(flag) {
			return nil
		}
		return &v
	}
	return query.Params{
		Name:          f.name,
		Exact:         f.exact,
		Continent:     f.continent,
		MinPopulation: bound("min-population", f.minPopulation),
		MaxPopulation: bound("max-population", f.maxPopulation),
		MinArea:       bound("min-area", f.minArea),
		MaxArea:       bound("max-area", f.maxArea),
		SortKey:       f.sort,
		Ascending:     !f.desc,
	}
}
