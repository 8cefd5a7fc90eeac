package domain

// Reconcile computes which rows need a label change and comment
//
// A row counts as changed when its tuple differs from lastSeen, and a first
// sighting always counts. updated carries the latest tuple for every row
// regardless of change, keeping the map aligned with the most recent read
func Reconcile(rows []Row, lastSeen map[string]Tuple) (changed []Row, updated map[string]Tuple) {
	updated = make(map[string]Tuple, len(lastSeen)+len(rows))
	for id, t := range lastSeen {
		updated[id] = t
	}
	seen := make(map[string]bool, len(rows))
	for _, row := range rows {
		if seen[row.PaperID] {
			// first occurrence wins within one snapshot
			continue
		}
		seen[row.PaperID] = true

		next := TupleOf(row)
		if prev, ok := lastSeen[row.PaperID]; !ok || prev != next {
			changed = append(changed, row)
		}
		updated[row.PaperID] = next
	}
	return changed, updated
}
