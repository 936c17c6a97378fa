package catalog

import "time"

// Reconcile merges a scraped candidate into the catalog. The first
// existing product that is the same entity as the candidate (per
// SameEntity) is replaced in place: the updated record takes every field
// from the candidate but keeps the existing ID and original creation
// Timestamp, with LastUpdated set to now. If no product matches, the
// candidate is appended with a fresh ID and both times set to now.
//
// The input slice is not modified; Reconcile returns a new catalog so
// persistence can be an explicit, separate step. The second return value
// reports whether a new entry was inserted, which is what gates
// discovery notifications.
func Reconcile(candidate Product, catalog []Product, now time.Time) ([]Product, bool) {
	updated := make([]Product, len(catalog))
	copy(updated, catalog)

	for i, existing := range updated {
		if SameEntity(existing, candidate) {
			merged := candidate
			merged.ID = existing.ID
			merged.Timestamp = existing.Timestamp
			merged.LastUpdated = now
			updated[i] = merged
			return updated, false
		}
	}

	inserted := candidate
	if inserted.ID == "" {
		inserted.ID = NewID()
	}
	inserted.Timestamp = now
	inserted.LastUpdated = now
	return append(updated, inserted), true
}
