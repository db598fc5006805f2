package countries

import (
	"context"
	"errors"

	"country-explorer/core/country"
	"country-explorer/core/export"
	"country-explorer/core/query"
	"country-explorer/core/reconcile"
	"country-explorer/core/storage"

	"go.uber.org/zap"
)

// ErrStorageDisabled is returned by ExportObject when no storage client is configured.
var ErrStorageDisabled = errors.New("object storage is not enabled")

// Listing is the outcome of a query over the current snapshot.
type Listing struct {
	query.Result
	Warnings []string          `json:"warnings"`
	Summary  reconcile.Summary `json:"summary"`
}

// Service runs queries and refreshes against the shared store.
type Service struct {
	store  *reconcile.Store
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewService creates a Service. client may be nil when object storage is disabled.
func NewService(store *reconcile.Store, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{store: store, client: client, bucket: bucket, logger: logger}
}

// Query loads the data on first use, then applies p to the current snapshot.
// An empty data set is reported as a warning rather than an error.
func (s *Service) Query(ctx context.Context, p query.Params, warnings []error) Listing {
	snap, err := s.store.EnsureLoaded(ctx)
	if err != nil {
		warnings = append(warnings, err)
	}

	res, qw := query.Apply(snap.Records, p)
	warnings = append(warnings, qw...)

	msgs := make([]string, 0, len(warnings))
	for _, w := range warnings {
		msgs = append(msgs, w.Error())
	}
	return Listing{Result: res, Warnings: msgs, Summary: snap.Summary}
}

// Refresh reloads both sources.
func (s *Service) Refresh(ctx context.Context) (reconcile.Summary, error) {
	snap, err := s.store.Refresh(ctx)
	if snap == nil {
		return reconcile.Summary{}, err
	}
	return snap.Summary, err
}

// ExportObject uploads records to the storage bucket under object.
func (s *Service) ExportObject(ctx context.Context, object string, records []country.Record) error {
	if s.client == nil {
		return ErrStorageDisabled
	}
	if object == "" {
		return country.InvalidArgument("object name is required")
	}
	if err := export.ToObject(ctx, s.client, s.bucket, object, records); err != nil {
		return err
	}
	s.logger.Info("Exported records to storage",
		zap.String("bucket", s.bucket),
		zap.String("object", object),
		zap.Int("records", len(records)),
	)
	return nil
}
