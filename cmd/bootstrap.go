package cmd

import (
	"context"
	"fmt"
	"time"

	"country-explorer/core/config"
	"country-explorer/core/logger"
	"country-explorer/core/metrics"
	"country-explorer/core/reconcile"
	"country-explorer/core/source"
	"country-explorer/core/storage"

	"go.uber.org/zap"
)

// env is what every command builds from configuration.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	storage storage.Client
	metrics *metrics.Metrics
	store   *reconcile.Store
}

// setup loads configuration and wires the loaders into a store. Object storage
// is only contacted when enabled.
func setup(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	e := &env{cfg: cfg, log: l, metrics: metrics.New()}

	if cfg.Storage.Enabled {
		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		bctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
		err = storage.EnsureBucket(bctx, client, cfg.Storage.Bucket, cfg.Storage.Region)
		cancel()
		if err != nil {
			return nil, err
		}
		e.storage = client
	}

	var tabular source.Loader = source.NewFileLoader(cfg.Source.TabularPath)
	if cfg.Source.TabularObject != "" {
		if e.storage == nil {
			l.Warn("source.tabular_object is set but storage is disabled, reading the local file",
				zap.String("path", cfg.Source.TabularPath))
		} else {
			tabular = source.NewObjectLoader(e.storage, cfg.Storage.Bucket, cfg.Source.TabularObject)
		}
	}

	var remote source.Loader
	if cfg.Source.RemoteEnabled {
		remote = source.NewRemoteLoader(cfg.Source.RemoteURL, cfg.Source.Timeout(), nil)
	}

	e.store = reconcile.NewStore(tabular, remote, reconcile.Options{
		PreferTabular: cfg.Source.PreferTabular,
		Logger:        l,
		Metrics:       e.metrics,
	})
	return e, nil
}
