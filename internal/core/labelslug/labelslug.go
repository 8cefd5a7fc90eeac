// Package labelslug turns free-form status text into tracker label names
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Unicode NFKD decomposition
// 3 Case folding
// 4 Remove zero-width and combining marks
// 5 Width fold fullwidth to ASCII
// 6 Collapse non-alphanumeric runs to single hyphens and trim
package labelslug

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Prefix marks labels managed by the status pipeline
const Prefix = "status-"

// pool of fresh transformer chains
var chainPool = sync.Pool{
	New: func() any {
		// order matters and mirrors the documented pipeline
		return transform.Chain(
			norm.NFKD,
			cases.Fold(),                       // unicode case folding
			runes.Remove(runes.In(unicode.Mn)), // strip combining marks
			runes.Remove(runes.In(unicode.Cf)), // strip format chars ZWJ ZWNJ FEFF etc
			width.Fold,                         // map fullwidth forms to ASCII
		)
	},
}

// Slug returns the normalized slug form of s
// empty input and input with no usable runes both yield ""
func Slug(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}

	// 1 repair UTF-8 drop invalid bytes
	s = strings.ToValidUTF8(s, "")

	// 2-5 transform via pooled chain then reset and return it
	tr := chainPool.Get().(transform.Transformer)
	ns, _, _ := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)

	// 6 collapse anything that is not a letter or digit into single hyphens
	var b strings.Builder
	b.Grow(len(ns))
	hyphen := false
	for _, r := range ns {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
			continue
		}
		hyphen = true
	}
	return b.String()
}

// StatusLabel returns the full label name for a status value
// ok is false when the status slugs to nothing
func StatusLabel(status string) (string, bool) {
	slug := Slug(status)
	if slug == "" {
		return "", false
	}
	return Prefix + slug, true
}

// Apply replaces the managed status label in existing with the one for status
// every label outside the managed prefix is preserved in order
// a status that slugs to nothing removes the managed label without adding one
func Apply(existing []string, status string) []string {
	out := make([]string, 0, len(existing)+1)
	for _, l := range existing {
		if strings.HasPrefix(l, Prefix) {
			continue
		}
		out = append(out, l)
	}
	if label, ok := StatusLabel(status); ok {
		out = append(out, label)
	}
	return out
}

// palette for managed labels, keyed by slug
var colors = map[string]string{
	"pending":     "FFA500",
	"in-progress": "0366d6",
	"reviewing":   "6f42c1",
	"completed":   "28a745",
	"rejected":    "d73a4a",
	"approved":    "28a745",
}

// Color returns the hex color for a managed label slug
// unknown slugs fall back to a neutral gray
func Color(slug string) string {
	if c, ok := colors[slug]; ok {
		return c
	}
	return "ededed"
}

// Description returns the human label description for a managed slug
// "in-progress" becomes "Status: In Progress"
func Description(slug string) string {
	if slug == "" {
		return ""
	}
	words := strings.ReplaceAll(slug, "-", " ")
	return "Status: " + cases.Title(language.Und).String(words)
}
