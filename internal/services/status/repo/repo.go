// Package repo persists the status pipeline's last seen tuples as a JSON file
package repo

import (
	"papersync/internal/platform/state"
	"papersync/internal/services/status/domain"
)

// FileName is the snapshot file the status pipeline maintains in the state dir
const FileName = "issue_status_state.json"

type statusDoc struct {
	LastUpdated map[string]domain.Tuple `json:"last_updated"`
}

// Files is the file backed implementation of domain.StateRepo
type Files struct {
	file state.File[statusDoc]
}

// NewFiles returns a repo rooted at path
func NewFiles(path string) *Files {
	return &Files{file: state.NewFile[statusDoc](path)}
}

// LoadLastSeen reads the tuple map, empty when the file does not exist yet
func (f *Files) LoadLastSeen() (map[string]domain.Tuple, error) {
	doc, _, err := f.file.Load()
	if err != nil {
		return nil, err
	}
	if doc.LastUpdated == nil {
		return map[string]domain.Tuple{}, nil
	}
	return doc.LastUpdated, nil
}

// SaveLastSeen writes the tuple map
func (f *Files) SaveLastSeen(m map[string]domain.Tuple) error {
	return f.file.Save(statusDoc{LastUpdated: m})
}
