package cmd

import (
	"bytes"
	"errors"
	"testing"

	"country-explorer/core/country"
	"country-explorer/core/query"
	"country-explorer/core/reconcile"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryFlags_Params(t *testing.T) {
	var f queryFlags
	c := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	f.register(c)
	require.NoError(t, c.ParseFlags([]string{"--name", "chi", "--min-population", "0", "--max-area", "1000", "--sort", "area", "--desc"}))

	p := f.params(c)
	assert.Equal(t, "chi", p.Name)
	require.NotNil(t, p.MinPopulation)
	assert.Equal(t, int64(0), *p.MinPopulation)
	assert.Nil(t, p.MaxPopulation)
	assert.Nil(t, p.MinArea)
	require.NotNil(t, p.MaxArea)
	assert.Equal(t, int64(1000), *p.MaxArea)
	assert.Equal(t, "area", p.SortKey)
	assert.False(t, p.Ascending)
}

func TestPrintTable(t *testing.T) {
	res, _ := query.Apply([]country.Record{
		{Name: "Chile", Population: 19000000, Area: 756000, Continent: "América"},
	}, query.Params{})

	var buf bytes.Buffer
	require.NoError(t, printTable(&buf, res))
	assert.Contains(t, buf.String(), "Chile")
	assert.Contains(t, buf.String(), "1 countries.")
	assert.Contains(t, buf.String(), "América: 1")

	buf.Reset()
	require.NoError(t, printTable(&buf, query.Result{}))
	assert.Contains(t, buf.String(), "No countries match.")
}

func TestDescribeLoadError(t *testing.T) {
	err := describeLoadError(reconcile.ErrNoData, reconcile.Summary{RemoteError: "timeout"})
	assert.ErrorIs(t, err, reconcile.ErrNoData)
	assert.Contains(t, err.Error(), "tabular: no records")
	assert.Contains(t, err.Error(), "remote: timeout")

	other := errors.New("boom")
	assert.Same(t, other, describeLoadError(other, reconcile.Summary{}))
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range RootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"start", "browse", "query", "export"} {
		assert.True(t, names[want], want)
	}
}
