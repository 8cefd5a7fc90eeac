package review

import (
	"strings"
	"testing"
	"time"
)

func TestTitleRoundTrip(t *testing.T) {
	title := Title("P42")
	if title != "Paper Review: P42" {
		t.Fatalf("Title = %q", title)
	}
	id, ok := PaperID(title)
	if !ok || id != "P42" {
		t.Fatalf("PaperID = %q ok=%v", id, ok)
	}
	if _, ok := PaperID("Random issue"); ok {
		t.Fatalf("foreign titles should not parse")
	}
}

func TestEnsureEssential(t *testing.T) {
	got := EnsureEssential([]string{"status-done"})
	if len(got) != 3 || got[1] != ReviewLabel || got[2] != AutomatedLabel {
		t.Fatalf("EnsureEssential = %v", got)
	}
	// already present stays put, no duplicates
	got = EnsureEssential([]string{ReviewLabel, AutomatedLabel})
	if len(got) != 2 {
		t.Fatalf("EnsureEssential dup = %v", got)
	}
}

func TestIssueBody(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	body := IssueBody("P1", now)
	for _, want := range []string{"## Paper Review Request", "**Paper ID:** P1", "2026-08-30 12:00:00", "- [ ] Review paper content"} {
		if !strings.Contains(body, want) {
			t.Fatalf("body missing %q:\n%s", want, body)
		}
	}
}

func TestCommentBody_NotesOnlyWhenPresent(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	with := CommentBody("In Progress", "Ada", "halfway", now)
	if !strings.Contains(with, "**Notes:** halfway") {
		t.Fatalf("notes missing:\n%s", with)
	}
	without := CommentBody("In Progress", "Ada", "   ", now)
	if strings.Contains(without, "**Notes:**") {
		t.Fatalf("blank notes should be omitted:\n%s", without)
	}
}
