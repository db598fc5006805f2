package console

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"country-explorer/core/country"
	"country-explorer/core/reconcile"
	"country-explorer/core/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	records []country.Record
}

func (s *stubLoader) Name() string { return "tabular" }

func (s *stubLoader) Load(context.Context) (*source.Result, error) {
	return &source.Result{Source: "tabular", Records: s.records}, nil
}

var records = []country.Record{
	{Name: "Argentina", Population: 45000000, Area: 2780000, Continent: "América"},
	{Name: "Chile", Population: 19000000, Area: 756000, Continent: "América"},
	{Name: "Spain", Population: 47000000, Area: 505990, Continent: "Europa"},
}

func run(t *testing.T, input string, recs []country.Record, exportPath string) (string, error) {
	t.Helper()
	store := reconcile.NewStore(&stubLoader{records: recs}, nil, reconcile.Options{PreferTabular: true})
	var out bytes.Buffer
	c := New(store, strings.NewReader(input), &out, Options{ExportPath: exportPath})
	err := c.Run(context.Background())
	return out.String(), err
}

func TestRun_Exit(t *testing.T) {
	out, err := run(t, "0\n", records, "")
	require.NoError(t, err)
	assert.Contains(t, out, "CSV loaded: 3 records.")
	assert.Contains(t, out, "Total merged: 3 countries.")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_NoData(t *testing.T) {
	out, err := run(t, "0\n", nil, "")
	assert.ErrorIs(t, err, reconcile.ErrNoData)
	assert.Contains(t, out, "Total merged: 0 countries.")
}

func TestRun_EndOfInput(t *testing.T) {
	_, err := run(t, "7\n", records, "")
	assert.NoError(t, err)
}

func TestRun_Search(t *testing.T) {
	out, err := run(t, "1\nchi\nn\n0\n", records, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Countries (1):")
	assert.Contains(t, out, "Chile")
}

func TestRun_SortDescending(t *testing.T) {
	out, err := run(t, "5\npoblacion\nn\n0\n", records, "")
	require.NoError(t, err)
	spain := strings.Index(out, "Spain ")
	argentina := strings.Index(out, "Argentina ")
	chile := strings.Index(out, "Chile ")
	assert.Less(t, spain, argentina)
	assert.Less(t, argentina, chile)
}

func TestRun_SortInvalidKey(t *testing.T) {
	out, err := run(t, "5\ncontinent\ny\n0\n", records, "")
	require.NoError(t, err)
	assert.Contains(t, out, "invalid sort key")
}

func TestRun_RangeRetries(t *testing.T) {
	out, err := run(t, "3\nabc\n20000000\n\n0\n", records, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter a whole number")
	assert.Contains(t, out, "Countries (2):")
}

func TestRun_GivesUpAfterMaxAttempts(t *testing.T) {
	out, err := run(t, "1\nchile\nmaybe\nperhaps\nwhatever\n0\n", records, "")
	require.NoError(t, err)
	assert.Equal(t, MaxAttempts, strings.Count(out, "Please answer 'y' or 'n'."))
	assert.Contains(t, out, "Too many invalid answers")
	assert.Contains(t, out, "Goodbye!")
}

func TestRun_ExportLastListing(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.csv")
	out, err := run(t, "2\neuropa\n8\n"+dest+"\n0\n", records, "")
	require.NoError(t, err)
	assert.Contains(t, out, "(1 rows)")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "name,population,area,continent\nSpain,47000000,505990,Europa\n", string(data))
}

func TestRun_ExportDefaultPath(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "default.csv")
	_, err := run(t, "8\n\n0\n", records, dest)
	require.NoError(t, err)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(string(data), "\n"))
}

func TestRun_ExportEmptyListing(t *testing.T) {
	out, err := run(t, "1\natlantis\ny\n8\n0\n", records, "")
	require.NoError(t, err)
	assert.Contains(t, out, "No countries to show.")
	assert.Contains(t, out, "No listing to export.")
}

func TestRun_Statistics(t *testing.T) {
	out, err := run(t, "6\n0\n", records, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Most populous: Spain (47000000)")
	assert.Contains(t, out, "Least populous: Chile (19000000)")
	assert.Contains(t, out, "   - América: 2")
}

func TestRun_RefreshAndInvalidOption(t *testing.T) {
	out, err := run(t, "9\nx\n0\n", records, "")
	require.NoError(t, err)
	assert.Contains(t, out, "Refreshing sources.")
	assert.Equal(t, 2, strings.Count(out, "Total merged: 3 countries."))
	assert.Contains(t, out, "Invalid option")
}
