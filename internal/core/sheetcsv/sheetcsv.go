// Package sheetcsv parses the spreadsheet CSV export into row records
//
// The format is deliberately simple: a header line followed by data lines
// split naively on commas. Fields may carry a single pair of surrounding
// double quotes. Embedded commas inside quoted fields are a documented
// limitation, not a supported case
package sheetcsv

import "strings"

// Row is one spreadsheet data line keyed by paper id
type Row struct {
	PaperID  string
	Status   string
	Reviewer string
	Notes    string
}

// Tuple returns the comparable status triple for the row
func (r Row) Tuple() [3]string { return [3]string{r.Status, r.Reviewer, r.Notes} }

// Parse turns raw CSV text into rows in original line order
// the header line and blank lines are skipped, lines whose first field is
// empty after trim and quote strip are silently dropped
func Parse(raw string) []Row {
	lines := strings.Split(raw, "\n")
	rows := make([]Row, 0, len(lines))
	for i, line := range lines {
		if i == 0 {
			// header
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		id := clean(field(fields, 0))
		if id == "" {
			continue
		}
		rows = append(rows, Row{
			PaperID:  id,
			Status:   clean(field(fields, 1)),
			Reviewer: clean(field(fields, 2)),
			Notes:    clean(field(fields, 3)),
		})
	}
	return rows
}

// field returns fields[i] or "" when the column is missing
func field(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

// clean trims whitespace and strips one pair of surrounding double quotes
func clean(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
