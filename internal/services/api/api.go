// Package api provides the HTTP API for the sync pipelines
package api

import (
	"papersync/internal/platform/config"
	"papersync/internal/platform/logger"
	phttp "papersync/internal/platform/net/http"

	"papersync/internal/modkit"
	"papersync/internal/modkit/httpkit"
	"papersync/internal/modkit/module"

	metamod "papersync/internal/services/api/meta/module"
	syncmod "papersync/internal/services/api/sync/module"

	monmod "papersync/internal/services/monitor/module"
	stmod "papersync/internal/services/status/module"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Logger         logger.Logger
	EnableProfiler bool
}

// Mount mounts the API service onto the given router
func Mount(r phttp.Router, opt Options) {
	deps := modkit.Deps{
		Cfg: opt.Config,
		Log: opt.Logger,
	}

	ps := opt.Config.Prefix("PAPERSYNC_")
	token := ps.MayString("API_TOKEN", "")
	origins := ps.MayCSV("CORS_ORIGINS", nil)

	// pipeline modules own the runner ports; the sync API module borrows them
	monitor := monmod.New(deps)
	status := stmod.New(deps)

	monPorts := module.MustPortsOf[monmod.Ports](monitor)
	stPorts := module.MustPortsOf[stmod.Ports](status)
	syncAPI := syncmod.New(deps, modkit.WithPorts(syncmod.Ports{
		Monitor:    monPorts.Runner,
		MonitorDry: monPorts.DryRunner,
		Status:     stPorts.Runner,
		StatusDry:  stPorts.DryRunner,
	}))

	mods := []module.Module{
		metamod.New(deps),
		monitor,
		status,
		syncAPI,
	}

	stack := append(httpkit.CommonStack(origins), httpkit.Auth(token))

	httpkit.MountAPIV1(r, stack, func(api httpkit.Router) {
		phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(api)
		}
	})
}
