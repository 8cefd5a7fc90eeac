package labelslug

import (
	"reflect"
	"testing"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"In Progress", "in-progress"},
		{"  Completed  ", "completed"},
		{"In   Review", "in-review"},
		{"BLOCKED", "blocked"},
		{"needs/changes", "needs-changes"},
		{"Phase 2", "phase-2"},
		{"", ""},
		{"   ", ""},
		{"---", ""},
		{"Ｄｏｎｅ", "done"},    // fullwidth folds to ASCII
		{"Résumé", "resume"}, // marks decompose under NFKD and get stripped
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.want {
			t.Fatalf("Slug(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	label, ok := StatusLabel("In Progress")
	if !ok || label != "status-in-progress" {
		t.Fatalf("StatusLabel = %q ok=%v", label, ok)
	}
	if _, ok := StatusLabel("   "); ok {
		t.Fatalf("blank status should not produce a label")
	}
}

func TestApply(t *testing.T) {
	existing := []string{"paper-review", "automated", "status-pending"}

	got := Apply(existing, "In Progress")
	want := []string{"paper-review", "automated", "status-in-progress"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply = %v, want %v", got, want)
	}

	// blank status drops the managed label and keeps the rest
	got = Apply(existing, "")
	want = []string{"paper-review", "automated"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply blank = %v, want %v", got, want)
	}

	// no managed label present just appends
	got = Apply([]string{"paper-review"}, "Done")
	want = []string{"paper-review", "status-done"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Apply append = %v, want %v", got, want)
	}
}

func TestColor(t *testing.T) {
	if Color("in-progress") != "0366d6" {
		t.Fatalf("known slug color mismatch")
	}
	if Color("whatever") != "ededed" {
		t.Fatalf("unknown slug should fall back to gray")
	}
}

func TestDescription(t *testing.T) {
	if got := Description("in-progress"); got != "Status: In Progress" {
		t.Fatalf("Description = %q", got)
	}
	if got := Description(""); got != "" {
		t.Fatalf("Description on empty slug = %q", got)
	}
}
