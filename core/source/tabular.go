package source

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"country-explorer/core/country"
	"country-explorer/core/storage"

	"github.com/minio/minio-go/v7"
)

const tabularSource = "tabular"

// ParseTabular reads a CSV table with a header row. Header names are matched
// case-insensitively and may use the Spanish aliases (nombre, poblacion,
// superficie, continente). Data rows are numbered from 1.
func ParseTabular(r io.Reader) (*Result, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, &country.Error{Kind: country.KindStructural, Message: "cannot read header row", Err: err}
	}

	columns := make(map[string]int, len(country.Fields))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if field, ok := country.CanonicalField(h); ok {
			if _, dup := columns[field]; !dup {
				columns[field] = i
			}
		}
	}
	for _, field := range country.Fields {
		if _, ok := columns[field]; !ok {
			return nil, &country.Error{
				Kind:    country.KindStructural,
				Message: fmt.Sprintf("missing required column %q", field),
			}
		}
	}

	res := newResult(tabularSource, 0)
	row := 0
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		row++
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				res.reject(row, "malformed line: "+perr.Err.Error())
				continue
			}
			return nil, &country.Error{Kind: country.KindStructural, Row: row, Message: "cannot read row", Err: err}
		}

		raw := make(country.Raw, len(columns))
		for field, i := range columns {
			if i < len(cells) {
				raw[field] = cells[i]
			}
		}

		rec, err := country.Validate(raw, row)
		if err != nil {
			res.rejectErr(row, err)
			continue
		}
		res.Records = append(res.Records, rec)
	}

	return res, nil
}

// FileLoader reads the tabular source from the local filesystem.
type FileLoader struct {
	Path string
}

// NewFileLoader creates a loader for the CSV file at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{Path: path}
}

// Name returns the source name.
func (l *FileLoader) Name() string {
	return tabularSource
}

// Load opens and parses the file. A missing file yields ErrSourceMissing.
func (l *FileLoader) Load(ctx context.Context) (*Result, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceMissing, l.Path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", l.Path, err)
	}
	defer f.Close()

	res, err := ParseTabular(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.Path, err)
	}
	return res, nil
}

// ObjectLoader reads the tabular source from an object storage bucket.
type ObjectLoader struct {
	client storage.Client
	bucket string
	object string
}

// NewObjectLoader creates a loader for bucket/object.
func NewObjectLoader(client storage.Client, bucket, object string) *ObjectLoader {
	return &ObjectLoader{client: client, bucket: bucket, object: object}
}

// Name returns the source name.
func (l *ObjectLoader) Name() string {
	return tabularSource
}

// Load downloads and parses the object. A missing object yields ErrSourceMissing.
func (l *ObjectLoader) Load(ctx context.Context) (*Result, error) {
	obj, err := l.client.GetObject(ctx, l.bucket, l.object, minio.GetObjectOptions{})
	if err != nil {
		return nil, l.wrap(err)
	}
	defer obj.Close()

	// Minio reports a missing key on first read, so buffer before parsing.
	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, l.wrap(err)
	}

	res, err := ParseTabular(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s/%s: %w", l.bucket, l.object, err)
	}
	return res, nil
}

func (l *ObjectLoader) wrap(err error) error {
	if storage.IsNotFound(err) {
		return fmt.Errorf("%w: %s/%s", ErrSourceMissing, l.bucket, l.object)
	}
	return fmt.Errorf("failed to read %s/%s: %w", l.bucket, l.object, err)
}
