// Package repo persists the monitor's processed set as a JSON file
package repo

import (
	"sort"

	"papersync/internal/platform/state"
)

// FileName is the snapshot file the monitor maintains in the state dir
const FileName = "sheet_state.json"

type processedDoc struct {
	ProcessedPaperIDs []string `json:"processed_paper_ids"`
}

// Files is the file backed implementation of domain.StateRepo
type Files struct {
	file state.File[processedDoc]
}

// NewFiles returns a repo rooted at path
func NewFiles(path string) *Files {
	return &Files{file: state.NewFile[processedDoc](path)}
}

// LoadProcessed reads the processed set, empty when the file does not exist yet
func (f *Files) LoadProcessed() (map[string]bool, error) {
	doc, _, err := f.file.Load()
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(doc.ProcessedPaperIDs))
	for _, id := range doc.ProcessedPaperIDs {
		out[id] = true
	}
	return out, nil
}

// SaveProcessed writes the processed set sorted for stable diffs
func (f *Files) SaveProcessed(ids map[string]bool) error {
	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}
	sort.Strings(list)
	return f.file.Save(processedDoc{ProcessedPaperIDs: list})
}
