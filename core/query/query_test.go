package query

import (
	"testing"

	"country-explorer/core/country"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v int64) *int64 { return &v }

func sample() []country.Record {
	return []country.Record{
		{Name: "Argentina", Population: 45000000, Area: 2780000, Continent: "América"},
		{Name: "Chile", Population: 19000000, Area: 756000, Continent: "América"},
		{Name: "Spain", Population: 47000000, Area: 505990, Continent: "Europa"},
		{Name: "Andorra", Population: 77000, Area: 468, Continent: "Europa"},
		{Name: "Brazil", Population: 210000000, Area: 8500000, Continent: "América"},
	}
}

func names(records []country.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestSearchByName(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		exact bool
		want  []string
	}{
		{"substring", "an", false, []string{"Andorra"}},
		{"case insensitive", "  CHI ", false, []string{"Chile"}},
		{"exact", "spain", true, []string{"Spain"}},
		{"exact needs whole name", "spa", true, []string{}},
		{"empty text", "   ", false, []string{}},
		{"no match", "xyz", false, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(SearchByName(sample(), tt.text, tt.exact)))
		})
	}
}

func TestSearchByName_SubstringSetContainsExact(t *testing.T) {
	for _, r := range sample() {
		exact := SearchByName(sample(), r.Name, true)
		loose := SearchByName(sample(), r.Name, false)
		for _, e := range exact {
			assert.Contains(t, loose, e)
		}
	}
}

func TestFilterByContinent(t *testing.T) {
	got := FilterByContinent(sample(), " europa ")
	assert.Equal(t, []string{"Spain", "Andorra"}, names(got))

	assert.Empty(t, FilterByContinent(sample(), "Oceania"))
	// Only case and surrounding space are folded; accents are significant.
	assert.Equal(t, []string{"Argentina", "Chile", "Brazil"}, names(FilterByContinent(sample(), "AMÉRICA")))
	assert.Empty(t, FilterByContinent(sample(), "america"))
}

func TestFilterByRange(t *testing.T) {
	got, err := FilterByRange(sample(), "poblacion", ptr(1000000), ptr(50000000))
	require.NoError(t, err)
	assert.Equal(t, []string{"Argentina", "Chile", "Spain"}, names(got))
	for _, r := range got {
		assert.GreaterOrEqual(t, r.Population, int64(1000000))
		assert.LessOrEqual(t, r.Population, int64(50000000))
	}

	t.Run("inclusive bounds", func(t *testing.T) {
		got, err := FilterByRange(sample(), country.FieldArea, ptr(468), ptr(468))
		require.NoError(t, err)
		assert.Equal(t, []string{"Andorra"}, names(got))
	})

	t.Run("open bounds are identity", func(t *testing.T) {
		got, err := FilterByRange(sample(), "superficie", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, sample(), got)
	})

	t.Run("min only", func(t *testing.T) {
		got, err := FilterByRange(sample(), country.FieldPopulation, ptr(100000000), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"Brazil"}, names(got))
	})

	t.Run("invalid field", func(t *testing.T) {
		_, err := FilterByRange(sample(), "name", nil, nil)
		require.Error(t, err)
		assert.True(t, country.IsKind(err, country.KindInvalidArgument))
	})
}

func TestSort(t *testing.T) {
	t.Run("population descending", func(t *testing.T) {
		got, err := Sort(sample(), "poblacion", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"Brazil", "Spain", "Argentina", "Chile", "Andorra"}, names(got))
	})

	t.Run("name ascending ignores case", func(t *testing.T) {
		records := append(sample(), country.Record{Name: "bolivia", Continent: "América", Area: 1})
		got, err := Sort(records, "nombre", true)
		require.NoError(t, err)
		assert.Equal(t, []string{"Andorra", "Argentina", "bolivia", "Brazil", "Chile", "Spain"}, names(got))
	})

	t.Run("descending reverses ascending without ties", func(t *testing.T) {
		asc, err := Sort(sample(), country.FieldArea, true)
		require.NoError(t, err)
		desc, err := Sort(sample(), country.FieldArea, false)
		require.NoError(t, err)
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
	})

	t.Run("stable on ties", func(t *testing.T) {
		records := []country.Record{
			{Name: "A", Population: 5},
			{Name: "B", Population: 1},
			{Name: "C", Population: 5},
			{Name: "D", Population: 1},
		}
		asc, err := Sort(records, country.FieldPopulation, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"B", "D", "A", "C"}, names(asc))

		desc, err := Sort(records, country.FieldPopulation, false)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "C", "B", "D"}, names(desc))
	})

	t.Run("does not modify input", func(t *testing.T) {
		in := sample()
		_, err := Sort(in, country.FieldPopulation, true)
		require.NoError(t, err)
		assert.Equal(t, sample(), in)
	})

	t.Run("invalid key", func(t *testing.T) {
		for _, key := range []string{"continent", "gdp", ""} {
			_, err := Sort(sample(), key, true)
			require.Error(t, err, key)
			assert.True(t, country.IsKind(err, country.KindInvalidArgument))
		}
	})
}

func TestStatistics(t *testing.T) {
	assert.Nil(t, Statistics(nil))
	assert.Nil(t, Statistics([]country.Record{}))

	single := country.Record{Name: "Chile", Population: 19000000, Area: 756000, Continent: "América"}
	s := Statistics([]country.Record{single})
	require.NotNil(t, s)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, single, s.MostPopulous)
	assert.Equal(t, single, s.LeastPopulous)
	assert.Equal(t, float64(19000000), s.MeanPopulation)
	assert.Equal(t, float64(756000), s.MeanArea)
	assert.Equal(t, []ContinentCount{{Continent: "América", Count: 1}}, s.ByContinent)

	s = Statistics(sample())
	require.NotNil(t, s)
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, "Brazil", s.MostPopulous.Name)
	assert.Equal(t, "Andorra", s.LeastPopulous.Name)
	assert.InDelta(t, 64215400.0, s.MeanPopulation, 0.001)
	assert.Equal(t, []ContinentCount{
		{Continent: "América", Count: 3},
		{Continent: "Europa", Count: 2},
	}, s.ByContinent)
}

func TestStatistics_TiesGoToFirst(t *testing.T) {
	records := []country.Record{
		{Name: "A", Population: 10, Continent: "x"},
		{Name: "B", Population: 10, Continent: "x"},
	}
	s := Statistics(records)
	require.NotNil(t, s)
	assert.Equal(t, "A", s.MostPopulous.Name)
	assert.Equal(t, "A", s.LeastPopulous.Name)
}

func TestApply(t *testing.T) {
	res, warnings := Apply(sample(), Params{
		Continent:     " américa ",
		MinPopulation: ptr(20000000),
		SortKey:       "population",
		Ascending:     true,
	})
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"Argentina", "Brazil"}, names(res.Records))
	require.NotNil(t, res.Stats)
	assert.Equal(t, 2, res.Stats.Count)

	res, warnings = Apply(sample(), Params{Continent: "europa", SortKey: "gdp", Ascending: false})
	require.Len(t, warnings, 1)
	assert.True(t, country.IsKind(warnings[0], country.KindInvalidArgument))
	assert.Equal(t, []string{"Andorra", "Spain"}, names(res.Records))

	res, warnings = Apply(sample(), Params{Name: "nowhere"})
	assert.Empty(t, warnings)
	assert.Equal(t, []country.Record{}, res.Records)
	assert.Nil(t, res.Stats)
}

func TestParseBound(t *testing.T) {
	v, err := ParseBound("min_population", " 42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(42), *v)

	v, err = ParseBound("min_population", "")
	require.NoError(t, err)
	assert.Nil(t, v)

	for _, bad := range []string{"abc", "-1", "1.5"} {
		v, err = ParseBound("max_area", bad)
		assert.Nil(t, v)
		assert.True(t, country.IsKind(err, country.KindInvalidArgument), bad)
	}
}
