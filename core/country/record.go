package country

import (
	"strings"
)

// Canonical field names shared by every source and the exporter.
const (
	FieldName       = "name"
	FieldPopulation = "population"
	FieldArea       = "area"
	FieldContinent  = "continent"
)

// Fields lists the canonical fields in export column order.
var Fields = []string{FieldName, FieldPopulation, FieldArea, FieldContinent}

// aliases maps the column names used by Spanish-language CSV files onto the
// canonical field names.
var aliases = map[string]string{
	"nombre":     FieldName,
	"poblacion":  FieldPopulation,
	"población":  FieldPopulation,
	"superficie": FieldArea,
	"continente": FieldContinent,
}

// Record is a validated country.
type Record struct {
	// Name is the display name, trimmed but not case-folded.
	Name string `json:"name"`
	// Population is the number of inhabitants, always >= 0.
	Population int64 `json:"population"`
	// Area is the surface in square kilometres, always > 0.
	Area int64 `json:"area"`
	// Continent is the free-form continent or region label.
	Continent string `json:"continent"`
}

// Key returns the identity key used for deduplication.
func (r Record) Key() string {
	return Normalize(r.Name)
}

// Raw is an unvalidated record keyed by canonical field name.
type Raw map[string]any

// Normalize trims and case-folds text for comparisons.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// CanonicalField resolves a column, field or sort key name to its canonical
// form. It accepts the canonical names and the Spanish aliases, in any case.
func CanonicalField(name string) (string, bool) {
	n := Normalize(name)
	for _, f := range Fields {
		if n == f {
			return f, true
		}
	}
	f, ok := aliases[n]
	return f, ok
}
