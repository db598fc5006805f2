// Package export writes country records as CSV.
//
// The header row is always written, so an empty list produces a file with the
// header only. Destinations are a local file or an object in the storage bucket.
package export
