// Package review holds the text conventions that link sheet rows to tracker issues
package review

import (
	"fmt"
	"strings"
	"time"
)

// TitlePrefix is the fixed prefix every managed issue title carries
const TitlePrefix = "Paper Review: "

// Labels every managed issue must keep
const (
	ReviewLabel    = "paper-review"
	AutomatedLabel = "automated"
)

// Title returns the issue title for a paper id
func Title(paperID string) string { return TitlePrefix + paperID }

// PaperID extracts the paper id from a managed issue title
// ok is false when the title does not carry the managed prefix
func PaperID(title string) (string, bool) {
	if !strings.HasPrefix(title, TitlePrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(title, TitlePrefix)), true
}

// EnsureEssential appends the managed labels when missing, preserving order
func EnsureEssential(labels []string) []string {
	out := append([]string(nil), labels...)
	for _, want := range []string{ReviewLabel, AutomatedLabel} {
		found := false
		for _, l := range out {
			if l == want {
				found = true
				break
			}
		}
		if !found {
			out = append(out, want)
		}
	}
	return out
}

// IssueBody renders the body for a freshly created review issue
func IssueBody(paperID string, now time.Time) string {
	return fmt.Sprintf(`## Paper Review Request

**Paper ID:** %s

**Date Added:** %s

### Tasks
- [ ] Review paper content
- [ ] Analyze methodology
- [ ] Check results and conclusions
- [ ] Prepare review summary

### Notes
This issue was automatically created from spreadsheet monitoring.
`, paperID, now.Format("2006-01-02 15:04:05"))
}

// CommentBody renders the appended status update comment
// notes are included only when non-blank
func CommentBody(status, reviewer, notes string, now time.Time) string {
	b := fmt.Sprintf(`## Status Update

**Status:** %s
**Reviewer:** %s
**Updated:** %s

`, status, reviewer, now.Format("2006-01-02 15:04:05"))
	if strings.TrimSpace(notes) != "" {
		b += fmt.Sprintf("**Notes:** %s\n", notes)
	}
	return b
}
