package repo

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadProcessed_MissingFile(t *testing.T) {
	r := NewFiles(filepath.Join(t.TempDir(), FileName))
	got, err := r.LoadProcessed()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("missing file should yield empty set: %v", got)
	}
}

func TestSaveProcessed_SortedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	r := NewFiles(path)

	if err := r.SaveProcessed(map[string]bool{"P3": true, "P1": true, "P2": true}); err != nil {
		t.Fatalf("save: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	// sorted and under the documented key
	if !strings.Contains(string(raw), "processed_paper_ids") {
		t.Fatalf("file = %s", raw)
	}
	if strings.Index(string(raw), "P1") > strings.Index(string(raw), "P2") {
		t.Fatalf("ids not sorted: %s", raw)
	}

	got, err := r.LoadProcessed()
	if err != nil || len(got) != 3 || !got["P2"] {
		t.Fatalf("round trip = %v err=%v", got, err)
	}
}
