package module

import (
	"path/filepath"
	"time"

	"papersync/internal/platform/config"
	strepo "papersync/internal/services/status/repo"
)

// Options holds everything the status pipeline reads from the environment
type Options struct {
	SheetID    string
	SheetGID   string
	Token      string
	Repository string
	StatePath  string
	Timeout    time.Duration
	DryRun     bool
}

// FromConfig reads status options, panicking on missing required values
// before any network call is made
func FromConfig(cfg config.Conf) Options {
	ps := cfg.Prefix("PAPERSYNC_")
	return Options{
		SheetID:    cfg.MustString("GOOGLE_SHEET_ID"),
		SheetGID:   cfg.MayString("GOOGLE_SHEET_GID", ""),
		Token:      cfg.MustString("GITHUB_TOKEN"),
		Repository: cfg.MustString("GITHUB_REPOSITORY"),
		StatePath:  filepath.Join(ps.MayString("STATE_DIR", "."), strepo.FileName),
		Timeout:    ps.MayDuration("HTTP_TIMEOUT", 30*time.Second),
		DryRun:     ps.MayBool("DRY_RUN", false),
	}
}
