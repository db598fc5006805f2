package reconcile

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"country-explorer/core/country"
	"country-explorer/core/metrics"
	"country-explorer/core/source"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNoData is returned when neither source produced any record.
var ErrNoData = errors.New("no country data loaded (neither tabular nor remote source)")

// Summary describes how the current snapshot was built.
type Summary struct {
	Tabular         int       `json:"tabular"`
	Remote          int       `json:"remote"`
	Merged          int       `json:"merged"`
	TabularRejected int       `json:"tabular_rejected"`
	RemoteRejected  int       `json:"remote_rejected"`
	TabularError    string    `json:"tabular_error,omitempty"`
	RemoteError     string    `json:"remote_error,omitempty"`
	LoadedAt        time.Time `json:"loaded_at"`
}

// Snapshot is an immutable view of the merged record set.
// Callers must not modify Records.
type Snapshot struct {
	Records []country.Record `json:"records"`
	Summary Summary          `json:"summary"`
}

// Loaded reports whether the snapshot comes from a completed load.
func (s *Snapshot) Loaded() bool {
	return !s.Summary.LoadedAt.IsZero()
}

// Options configures a Store.
type Options struct {
	// PreferTabular keeps tabular records on name collisions.
	PreferTabular bool
	Logger        *zap.Logger
	Metrics       *metrics.Metrics
}

// Store owns the process-wide record set. Readers take snapshots; Load and
// Refresh build a new set and publish it with a single atomic swap.
type Store struct {
	tabular       source.Loader
	remote        source.Loader
	preferTabular bool
	logger        *zap.Logger
	metrics       *metrics.Metrics

	current atomic.Pointer[Snapshot]
	sf      singleflight.Group

	mu          sync.Mutex
	lastTabular []country.Record
}

// NewStore creates a store over the given loaders. Either loader may be nil to
// disable that source.
func NewStore(tabular, remote source.Loader, opts Options) *Store {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		tabular:       tabular,
		remote:        remote,
		preferTabular: opts.PreferTabular,
		logger:        logger,
		metrics:       opts.Metrics,
	}
	s.current.Store(&Snapshot{Records: []country.Record{}})
	return s
}

// Snapshot returns the current record set. It never returns nil.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Load reads both sources from scratch and replaces the record set.
// A failed source contributes no records. ErrNoData is returned, alongside the
// published empty snapshot, when nothing could be loaded.
func (s *Store) Load(ctx context.Context) (*Snapshot, error) {
	return s.rebuild(ctx, false)
}

// Refresh reloads both sources and replaces the record set. If the tabular
// source fails, the tabular records of the previous load are reused.
func (s *Store) Refresh(ctx context.Context) (*Snapshot, error) {
	return s.rebuild(ctx, true)
}

// EnsureLoaded performs the initial Load if nothing was loaded yet.
func (s *Store) EnsureLoaded(ctx context.Context) (*Snapshot, error) {
	if snap := s.Snapshot(); snap.Loaded() {
		return snap, nil
	}
	return s.Load(ctx)
}

func (s *Store) rebuild(ctx context.Context, keepTabular bool) (*Snapshot, error) {
	v, err, _ := s.sf.Do("rebuild", func() (interface{}, error) {
		return s.build(ctx, keepTabular), nil
	})
	if err != nil {
		return nil, err
	}

	snap := v.(*Snapshot)
	if len(snap.Records) == 0 {
		return snap, ErrNoData
	}
	return snap, nil
}

func (s *Store) build(ctx context.Context, keepTabular bool) *Snapshot {
	start := time.Now()
	var summary Summary

	tabular, rejected, err := s.loadSource(ctx, s.tabular)
	summary.TabularRejected = rejected
	if err != nil {
		summary.TabularError = err.Error()
		if keepTabular {
			s.mu.Lock()
			tabular = s.lastTabular
			s.mu.Unlock()
			if len(tabular) > 0 {
				s.logger.Info("Keeping tabular records from previous load", zap.Int("records", len(tabular)))
			}
		}
	} else {
		s.mu.Lock()
		s.lastTabular = tabular
		s.mu.Unlock()
	}

	remote, rejected, err := s.loadSource(ctx, s.remote)
	summary.RemoteRejected = rejected
	if err != nil {
		summary.RemoteError = err.Error()
	}

	merged := Merge(tabular, remote, s.preferTabular)

	summary.Tabular = len(tabular)
	summary.Remote = len(remote)
	summary.Merged = len(merged)
	summary.LoadedAt = time.Now()

	snap := &Snapshot{Records: merged, Summary: summary}
	s.current.Store(snap)
	s.metrics.ObserveRebuild(start, len(merged))

	s.logger.Info("Country records loaded",
		zap.Int("tabular", summary.Tabular),
		zap.Int("remote", summary.Remote),
		zap.Int("merged", summary.Merged),
		zap.Bool("prefer_tabular", s.preferTabular),
		zap.Duration("duration", time.Since(start)),
	)
	if len(merged) == 0 {
		s.logger.Warn("No country data available from any source")
	}

	return snap
}

// loadSource runs one loader, logging and counting its rejections. A nil
// loader is a disabled source.
func (s *Store) loadSource(ctx context.Context, loader source.Loader) ([]country.Record, int, error) {
	if loader == nil {
		return []country.Record{}, 0, nil
	}

	l := s.logger.With(zap.String("source", loader.Name()))

	res, err := loader.Load(ctx)
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, source.ErrSourceMissing) {
			outcome = metrics.OutcomeMissing
			l.Info("Source not found, continuing without it", zap.Error(err))
		} else {
			fields := []zap.Field{zap.Error(err)}
			if kind := country.KindOf(err); kind != "" {
				fields = append(fields, zap.String("kind", string(kind)))
			}
			if failure := country.NetworkFailureOf(err); failure != "" {
				fields = append(fields, zap.String("network", string(failure)))
			}
			l.Warn("Source load failed, continuing without it", fields...)
		}
		s.metrics.ObserveLoad(loader.Name(), outcome, 0, 0)
		return []country.Record{}, 0, err
	}

	for _, rej := range res.Rejections {
		l.Warn("Skipped invalid row", zap.Int("row", rej.Row), zap.String("reason", rej.Reason))
	}
	if res.Truncated() {
		l.Warn("More rows were skipped", zap.Int("omitted", res.RejectedTotal-len(res.Rejections)))
	}

	s.metrics.ObserveLoad(loader.Name(), metrics.OutcomeSuccess, len(res.Records), res.RejectedTotal)
	l.Info("Source loaded", zap.Int("records", len(res.Records)), zap.Int("rejected", res.RejectedTotal))

	return res.Records, res.RejectedTotal, nil
}
