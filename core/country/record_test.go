package country_test

import (
	"errors"
	"fmt"
	"testing"

	"country-explorer/core/country"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "brazil", country.Normalize("  BraZil "))
	assert.Equal(t, "", country.Normalize("   "))
	assert.Equal(t, "américa", country.Normalize("América"))
}

func TestRecord_Key(t *testing.T) {
	r := country.Record{Name: " Côte d'Ivoire"}
	assert.Equal(t, "côte d'ivoire", r.Key())
}

func TestCanonicalField(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"name", "name", true},
		{"Population", "population", true},
		{" AREA ", "area", true},
		{"continent", "continent", true},
		{"nombre", "name", true},
		{"poblacion", "population", true},
		{"superficie", "area", true},
		{"Continente", "continent", true},
		{"capital", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := country.CanonicalField(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestError(t *testing.T) {
	cause := errors.New("boom")
	err := fmt.Errorf("loading: %w", &country.Error{Kind: country.KindNetwork, Network: country.NetworkTimeout, Message: "timed out", Err: cause})

	assert.Equal(t, country.KindNetwork, country.KindOf(err))
	assert.True(t, country.IsKind(err, country.KindNetwork))
	assert.False(t, country.IsKind(err, country.KindIO))
	assert.Equal(t, country.NetworkTimeout, country.NetworkFailureOf(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "loading: timed out: boom", err.Error())

	assert.Equal(t, country.Kind(""), country.KindOf(errors.New("plain")))
	assert.False(t, country.IsKind(nil, country.KindIO))

	inv := country.InvalidArgument("bad key %q", "x")
	assert.Equal(t, `bad key "x"`, inv.Error())
	assert.False(t, inv.Skippable())
}
