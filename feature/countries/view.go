package countries

import (
	"embed"
	"html/template"
	"io"
	"math"
	"strconv"

	"country-explorer/core/query"

	"github.com/dustin/go-humanize"
)

//go:embed templates/index.html
var templates embed.FS

type view struct {
	tmpl *template.Template
}

type viewData struct {
	Params   query.Params
	Listing  Listing
	MinPop   string
	MaxPop   string
	MinArea  string
	MaxArea  string
	SortKeys []string
}

func newView() *view {
	funcs := template.FuncMap{
		"thousands": humanize.Comma,
		"mean":      func(f float64) string { return humanize.Comma(int64(math.Round(f))) },
	}
	return &view{
		tmpl: template.Must(template.New("index.html").Funcs(funcs).ParseFS(templates, "templates/index.html")),
	}
}

func (v *view) render(w io.Writer, p query.Params, listing Listing) error {
	return v.tmpl.Execute(w, viewData{
		Params:   p,
		Listing:  listing,
		MinPop:   bound(p.MinPopulation),
		MaxPop:   bound(p.MaxPopulation),
		MinArea:  bound(p.MinArea),
		MaxArea:  bound(p.MaxArea),
		SortKeys: []string{"name", "population", "area"},
	})
}

func bound(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}
