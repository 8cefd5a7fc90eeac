// Package domain holds the core business logic and data structures for the
// new-row monitor pipeline
package domain

import "papersync/internal/core/sheetcsv"

// Row re-exports the parsed sheet row shape
type Row = sheetcsv.Row

// Summary reports what a single monitor run did
type Summary struct {
	RunID   string `json:"run_id"`
	Rows    int    `json:"rows"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
	Failed  int    `json:"failed"`
	DryRun  bool   `json:"dry_run"`
}
