package module

import (
	"path/filepath"
	"time"

	"papersync/internal/platform/config"
	monrepo "papersync/internal/services/monitor/repo"
)

// Options holds everything the monitor pipeline reads from the environment
type Options struct {
	SheetID    string
	SheetGID   string
	Token      string
	Repository string
	StatePath  string
	Timeout    time.Duration
	DryRun     bool
}

// FromConfig reads monitor options, panicking on missing required values
// before any network call is made
func FromConfig(cfg config.Conf) Options {
	ps := cfg.Prefix("PAPERSYNC_")
	return Options{
		SheetID:    cfg.MustString("GOOGLE_SHEET_ID"),
		SheetGID:   cfg.MayString("GOOGLE_SHEET_GID", ""),
		Token:      cfg.MustString("GITHUB_TOKEN"),
		Repository: cfg.MustString("GITHUB_REPOSITORY"),
		StatePath:  filepath.Join(ps.MayString("STATE_DIR", "."), monrepo.FileName),
		Timeout:    ps.MayDuration("HTTP_TIMEOUT", 30*time.Second),
		DryRun:     ps.MayBool("DRY_RUN", false),
	}
}
