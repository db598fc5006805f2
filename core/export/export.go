package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"country-explorer/core/country"
	"country-explorer/core/storage"

	"github.com/minio/minio-go/v7"
)

// Write encodes records as CSV with a header row.
func Write(w io.Writer, records []country.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(country.Fields); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			r.Name,
			strconv.FormatInt(r.Population, 10),
			strconv.FormatInt(r.Area, 10),
			r.Continent,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ToFile writes records to path, replacing any existing file.
func ToFile(path string, records []country.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return ioError(path, err)
	}
	if err := Write(f, records); err != nil {
		_ = f.Close()
		return ioError(path, err)
	}
	if err := f.Close(); err != nil {
		return ioError(path, err)
	}
	return nil
}

// ToObject uploads records as a CSV object.
func ToObject(ctx context.Context, client storage.Client, bucket, object string, records []country.Record) error {
	var buf bytes.Buffer
	if err := Write(&buf, records); err != nil {
		return ioError(object, err)
	}

	_, err := client.PutObject(ctx, bucket, object, &buf, int64(buf.Len()), minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return ioError(fmt.Sprintf("%s/%s", bucket, object), err)
	}
	return nil
}

func ioError(dest string, err error) error {
	return &country.Error{
		Kind:    country.KindIO,
		Message: fmt.Sprintf("cannot write %s", dest),
		Err:     err,
	}
}
