package query

import (
	"sort"
	"strings"

	"country-explorer/core/country"
)

// SearchByName keeps records whose normalized name equals (exact) or contains
// the normalized text. An empty text matches nothing.
func SearchByName(records []country.Record, text string, exact bool) []country.Record {
	needle := country.Normalize(text)
	out := []country.Record{}
	if needle == "" {
		return out
	}
	for _, r := range records {
		name := r.Key()
		if exact {
			if name == needle {
				out = append(out, r)
			}
		} else if strings.Contains(name, needle) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByContinent keeps records whose normalized continent equals the
// normalized argument.
func FilterByContinent(records []country.Record, continent string) []country.Record {
	want := country.Normalize(continent)
	out := []country.Record{}
	for _, r := range records {
		if country.Normalize(r.Continent) == want {
			out = append(out, r)
		}
	}
	return out
}

// FilterByRange keeps records whose population or area lies within the
// inclusive bounds. A nil bound is unconstrained.
func FilterByRange(records []country.Record, field string, min, max *int64) ([]country.Record, error) {
	value, err := numericField(field)
	if err != nil {
		return nil, err
	}

	out := make([]country.Record, 0, len(records))
	for _, r := range records {
		v := value(r)
		if (min == nil || v >= *min) && (max == nil || v <= *max) {
			out = append(out, r)
		}
	}
	return out, nil
}

// Sort orders records by name (case-insensitive), population or area.
// The sort is stable; with ascending false, equal keys keep their input order.
func Sort(records []country.Record, key string, ascending bool) ([]country.Record, error) {
	field, ok := country.CanonicalField(key)
	if !ok || field == country.FieldContinent {
		return nil, country.InvalidArgument("invalid sort key %q: use name, population or area", key)
	}

	out := make([]country.Record, len(records))
	copy(out, records)

	var less func(a, b country.Record) bool
	switch field {
	case country.FieldName:
		less = func(a, b country.Record) bool { return a.Key() < b.Key() }
	case country.FieldPopulation:
		less = func(a, b country.Record) bool { return a.Population < b.Population }
	default:
		less = func(a, b country.Record) bool { return a.Area < b.Area }
	}

	if ascending {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	} else {
		sort.SliceStable(out, func(i, j int) bool { return less(out[j], out[i]) })
	}
	return out, nil
}

func numericField(field string) (func(country.Record) int64, error) {
	canonical, _ := country.CanonicalField(field)
	switch canonical {
	case country.FieldPopulation:
		return func(r country.Record) int64 { return r.Population }, nil
	case country.FieldArea:
		return func(r country.Record) int64 { return r.Area }, nil
	default:
		return nil, country.InvalidArgument("invalid range field %q: use population or area", field)
	}
}
