// Package domain holds the core business logic and data structures for the
// status update pipeline
package domain

import "papersync/internal/core/sheetcsv"

// Row re-exports the parsed sheet row shape
type Row = sheetcsv.Row

// Tuple is the tracked slice of a row that drives updates
type Tuple struct {
	Status   string `json:"status"`
	Reviewer string `json:"reviewer"`
	Notes    string `json:"notes"`
}

// TupleOf extracts the tracked tuple from a row
func TupleOf(r Row) Tuple {
	return Tuple{Status: r.Status, Reviewer: r.Reviewer, Notes: r.Notes}
}

// Summary reports what a single status run did
type Summary struct {
	RunID     string `json:"run_id"`
	Rows      int    `json:"rows"`
	Changed   int    `json:"changed"`
	Unchanged int    `json:"unchanged"`
	Missing   int    `json:"missing"`
	Failed    int    `json:"failed"`
	DryRun    bool   `json:"dry_run"`
}
