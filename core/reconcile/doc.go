// Package reconcile merges the tabular and remote country sources into one
// deduplicated record set and owns that set for the lifetime of the process.
//
// # Merge
//
// Merge keys records by normalized name. The primary list fixes the output
// order; the preferPrimary flag decides which record survives a collision.
// Whole records are kept or replaced, fields are never mixed.
//
// # Store
//
// Store runs the loaders, merges their output and publishes the result as an
// immutable Snapshot through an atomic pointer. Readers never observe a
// partially rebuilt set, and concurrent Load/Refresh calls are collapsed into a
// single rebuild with singleflight.
//
// Source failures are logged and degrade to an empty contribution, so the store
// stays usable with only tabular data, only remote data, or neither (ErrNoData).
//
// # Usage Example
//
//	store := reconcile.NewStore(
//	    source.NewFileLoader(cfg.Source.TabularPath),
//	    source.NewRemoteLoader(cfg.Source.RemoteURL, cfg.Source.Timeout(), nil),
//	    reconcile.Options{PreferTabular: cfg.Source.PreferTabular, Logger: logg},
//	)
//	if _, err := store.Load(ctx); errors.Is(err, reconcile.ErrNoData) {
//	    fmt.Println("No countries loaded")
//	}
//	records := store.Snapshot().Records
package reconcile
