package reconcile

import "country-explorer/core/country"

// Merge combines two record lists into one list, unique by normalized name.
//
// Primary records are inserted first and fix the output order; a later primary
// duplicate replaces the value but keeps the original position. A secondary
// record with a new key is appended. A secondary record with an existing key
// replaces the entry only when preferPrimary is false. Secondary records whose
// normalized name is empty are skipped.
func Merge(primary, secondary []country.Record, preferPrimary bool) []country.Record {
	index := make(map[string]int, len(primary)+len(secondary))
	merged := make([]country.Record, 0, len(primary)+len(secondary))

	for _, rec := range primary {
		key := rec.Key()
		if pos, ok := index[key]; ok {
			merged[pos] = rec
			continue
		}
		index[key] = len(merged)
		merged = append(merged, rec)
	}

	for _, rec := range secondary {
		key := rec.Key()
		if key == "" {
			continue
		}
		if pos, ok := index[key]; ok {
			if !preferPrimary {
				merged[pos] = rec
			}
			continue
		}
		index[key] = len(merged)
		merged = append(merged, rec)
	}

	return merged
}
