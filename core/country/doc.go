// Package country defines the canonical country record and the validation
// boundary every source passes through.
//
// # Record
//
// A Record has exactly four typed fields: Name, Population, Area and Continent.
// Records are only constructed by Validate, so every Record in the application
// is well typed and has non-empty Name and Continent.
//
// # Identity
//
// Names keep their original casing for display. Comparisons and merge keys use
// Normalize, which trims and lower-cases the text.
//
// # Errors
//
// Error carries a Kind that tells callers whether to skip the offending item
// (KindRowValidation) or abort the operation (every other kind).
//
//	rec, err := country.Validate(country.Raw{"name": "Chile", ...}, 3)
//	if country.IsKind(err, country.KindRowValidation) {
//	    // collect as a rejection and keep going
//	}
package country
