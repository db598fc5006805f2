package query

import (
	"strconv"
	"strings"

	"country-explorer/core/country"
)

// Params carries the query parameters front ends expose.
type Params struct {
	Name          string
	Exact         bool
	Continent     string
	MinPopulation *int64
	MaxPopulation *int64
	MinArea       *int64
	MaxArea       *int64
	// SortKey is empty for "keep merge order".
	SortKey   string
	Ascending bool
}

// Result is the outcome of Apply.
type Result struct {
	Records []country.Record `json:"countries"`
	Stats   *Stats           `json:"stats"`
}

// Apply runs the non-empty parameters in order: name, continent, population
// range, area range, sort. An invalid sort key is reported as a warning and the
// records are sorted by name ascending instead.
func Apply(records []country.Record, p Params) (Result, []error) {
	var warnings []error
	out := records

	if strings.TrimSpace(p.Name) != "" {
		out = SearchByName(out, p.Name, p.Exact)
	}
	if strings.TrimSpace(p.Continent) != "" {
		out = FilterByContinent(out, p.Continent)
	}
	if p.MinPopulation != nil || p.MaxPopulation != nil {
		out, _ = FilterByRange(out, country.FieldPopulation, p.MinPopulation, p.MaxPopulation)
	}
	if p.MinArea != nil || p.MaxArea != nil {
		out, _ = FilterByRange(out, country.FieldArea, p.MinArea, p.MaxArea)
	}
	if p.SortKey != "" {
		sorted, err := Sort(out, p.SortKey, p.Ascending)
		if err != nil {
			warnings = append(warnings, err)
			sorted, _ = Sort(out, country.FieldName, true)
		}
		out = sorted
	}

	if out == nil {
		out = []country.Record{}
	}
	return Result{Records: out, Stats: Statistics(out)}, warnings
}

// ParseBound reads an optional non-negative integer bound. Blank input yields
// nil. Malformed or negative input yields nil plus an invalid argument error the
// caller reports as a warning.
func ParseBound(name, s string) (*int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v < 0 {
		return nil, country.InvalidArgument("ignoring %s=%q: must be a non-negative integer", name, s)
	}
	return &v, nil
}
