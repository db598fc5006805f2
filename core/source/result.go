package source

import (
	"context"
	"errors"
	"fmt"

	"country-explorer/core/country"
)

// MaxReportedRejections caps how many remote rejections are kept for reporting.
const MaxReportedRejections = 10

// ErrSourceMissing is returned when a tabular source does not exist.
var ErrSourceMissing = errors.New("source not found")

// Loader produces records from one input.
type Loader interface {
	// Name identifies the source in logs and metrics ("tabular", "remote").
	Name() string
	// Load reads the whole source.
	Load(ctx context.Context) (*Result, error)
}

// Rejection describes one row or item that was left out of a load.
type Rejection struct {
	// Row is the 1-based data row (tabular) or array item (remote).
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

func (r Rejection) String() string {
	return fmt.Sprintf("row %d: %s", r.Row, r.Reason)
}

// Result is the outcome of a successful load.
type Result struct {
	Source     string           `json:"source"`
	Records    []country.Record `json:"records"`
	Rejections []Rejection      `json:"rejections"`
	// RejectedTotal counts every rejection, including the ones not kept in Rejections.
	RejectedTotal int `json:"rejected_total"`
	// limit caps len(Rejections); zero means unlimited.
	limit int
}

func newResult(source string, limit int) *Result {
	return &Result{
		Source:     source,
		Records:    []country.Record{},
		Rejections: []Rejection{},
		limit:      limit,
	}
}

// Truncated reports whether more rejections occurred than were kept.
func (r *Result) Truncated() bool {
	return r.RejectedTotal > len(r.Rejections)
}

func (r *Result) reject(row int, reason string) {
	r.RejectedTotal++
	if r.limit > 0 && len(r.Rejections) >= r.limit {
		return
	}
	r.Rejections = append(r.Rejections, Rejection{Row: row, Reason: reason})
}

// rejectErr records a validation failure, dropping the row prefix the
// Rejection already carries.
func (r *Result) rejectErr(row int, err error) {
	var verr *country.Error
	if errors.As(err, &verr) {
		reason := verr.Message
		if verr.Field != "" {
			reason = verr.Field + ": " + reason
		}
		r.reject(row, reason)
		return
	}
	r.reject(row, err.Error())
}
