// Package source loads country records from the two supported inputs.
//
// # Loaders
//
//   - FileLoader / ObjectLoader: a CSV table with a header row, read from the local
//     filesystem or from object storage. Parsing is shared in ParseTabular.
//   - RemoteLoader: a JSON array of restcountries-style objects fetched over HTTP.
//
// Every loader returns a Result holding the validated records and the rejected
// rows. Per-row problems never abort a load; a missing required column, a
// network failure or a malformed payload do, and are returned as *country.Error
// values with the matching Kind.
//
// # Usage
//
//	res, err := source.NewFileLoader("countries.csv").Load(ctx)
//	if err != nil {
//	    // structural error or missing file
//	}
//	for _, rej := range res.Rejections {
//	    log.Warn("row skipped", zap.Int("row", rej.Row), zap.String("reason", rej.Reason))
//	}
package source
