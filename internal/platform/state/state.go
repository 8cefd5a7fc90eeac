// Package state persists run state as pretty-printed JSON files
//
// Files are written atomically via a temp file and rename so a crashed run
// never leaves a half-written snapshot behind
package state

import (
	"encoding/json"
	"os"
	"path/filepath"

	perr "papersync/internal/platform/errors"
	"papersync/internal/platform/logger"
)

// File binds a JSON document type to a path on disk
type File[T any] struct {
	Path string
}

// NewFile returns a File for path
func NewFile[T any](path string) File[T] {
	return File[T]{Path: path}
}

// Load reads and decodes the file
// a missing file is not an error: it returns the zero value and found=false
func (f File[T]) Load() (doc T, found bool, err error) {
	b, rerr := os.ReadFile(f.Path)
	if rerr != nil {
		if os.IsNotExist(rerr) {
			return doc, false, nil
		}
		return doc, false, perr.Wrapf(rerr, perr.ErrorCodeUnknown, "state read %s", f.Path)
	}
	if jerr := json.Unmarshal(b, &doc); jerr != nil {
		return doc, false, perr.Wrapf(jerr, perr.ErrorCodeJSON, "state decode %s", f.Path)
	}
	return doc, true, nil
}

// Save encodes doc and writes it atomically
func (f File[T]) Save(doc T) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "state encode %s", f.Path)
	}
	b = append(b, '\n')

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "state mkdir %s", dir)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.Path)+".tmp-*")
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "state temp %s", f.Path)
	}
	tmpName := tmp.Name()
	defer func() {
		// best effort cleanup when rename never happened
		if _, serr := os.Stat(tmpName); serr == nil {
			if rerr := os.Remove(tmpName); rerr != nil {
				logger.Named("state").Warn().Err(rerr).Str("tmp", tmpName).Msg("state temp cleanup failed")
			}
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "state write %s", f.Path)
	}
	if err := tmp.Close(); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "state close %s", f.Path)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "state chmod %s", f.Path)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "state rename %s", f.Path)
	}
	return nil
}
