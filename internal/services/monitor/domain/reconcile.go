package domain

import "papersync/internal/core/review"

// Reconcile computes which rows need a fresh issue
//
// A row is skipped when its paper id is already in processed or when an issue
// with the matching title already exists on the tracker. Duplicate paper ids
// within one snapshot follow first occurrence wins. toCreate preserves input
// row order, and updated contains processed plus every id queued for creation
func Reconcile(rows []Row, processed map[string]bool, existingTitles map[string]bool) (toCreate []Row, updated map[string]bool) {
	updated = make(map[string]bool, len(processed)+len(rows))
	for id := range processed {
		updated[id] = true
	}
	for _, row := range rows {
		if updated[row.PaperID] {
			continue
		}
		if existingTitles[review.Title(row.PaperID)] {
			// defends against state loss or manual issue creation, without
			// claiming the id as processed
			continue
		}
		toCreate = append(toCreate, row)
		updated[row.PaperID] = true
	}
	return toCreate, updated
}
