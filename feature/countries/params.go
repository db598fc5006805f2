package countries

import (
	"country-explorer/core/country"
	"country-explorer/core/query"

	"github.com/gofiber/fiber/v2"
)

// parseParams reads the query string. Malformed bounds are dropped and
// reported as warnings. Without a sort parameter, results are sorted by name
// ascending.
func parseParams(c *fiber.Ctx) (query.Params, []error) {
	var warnings []error
	bound := func(name string) *int64 {
		v, err := query.ParseBound(name, c.Query(name))
		if err != nil {
			warnings = append(warnings, err)
		}
		return v
	}

	p := query.Params{
		Name:          c.Query("name"),
		Exact:         c.QueryBool("exact", false),
		Continent:     c.Query("continent"),
		MinPopulation: bound("min_population"),
		MaxPopulation: bound("max_population"),
		MinArea:       bound("min_area"),
		MaxArea:       bound("max_area"),
		SortKey:       c.Query("sort", country.FieldName),
		Ascending:     c.QueryBool("asc", true),
	}
	return p, warnings
}
