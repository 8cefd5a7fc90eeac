// Package module provides the status module implementation
package module

import (
	gh "papersync/internal/adapters/github"
	"papersync/internal/adapters/sheets"
	"papersync/internal/modkit"
	phttp "papersync/internal/platform/net/http"
	"papersync/internal/services/status/domain"
	"papersync/internal/services/status/repo"
	"papersync/internal/services/status/service"
)

// Ports defines the status module ports
// DryRunner always runs in dry-run mode regardless of configuration
type Ports struct {
	Runner    domain.RunnerPort
	DryRunner domain.RunnerPort
}

// Module implements the status module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the status module
// It wires the sheet fetcher, tracker client, and state repo using config
// from deps.Cfg. It does not mount any routes
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	fetch := sheets.NewHTTPFetcher(opts.SheetID, opts.SheetGID, opts.Timeout)
	tracker := gh.NewClient(gh.Options{
		Token:      opts.Token,
		Repository: opts.Repository,
		Timeout:    opts.Timeout,
	})
	store := repo.NewFiles(opts.StatePath)

	svc := service.New(fetch, tracker, store, service.Config{DryRun: opts.DryRun})
	dry := service.New(fetch, tracker, store, service.Config{DryRun: true})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc, DryRunner: dry}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "status" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// MountRoutes is a no-op as status exposes no routes of its own
func (m *Module) MountRoutes(_ phttp.Router) {}
