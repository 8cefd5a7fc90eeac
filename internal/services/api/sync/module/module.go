// Package module wires the sync pipelines into the API using modkit
package module

import (
	"net/http"

	modkit "papersync/internal/modkit"
	"papersync/internal/modkit/httpkit"
	str "papersync/internal/platform/strings"

	synchttp "papersync/internal/services/api/sync/http"
	mondomain "papersync/internal/services/monitor/domain"
	stdomain "papersync/internal/services/status/domain"
)

// Ports declares the injected pipeline runners this API module depends on
// the Dry variants serve requests that ask for a dry run
type Ports struct {
	Monitor    mondomain.RunnerPort
	MonitorDry mondomain.RunnerPort
	Status     stdomain.RunnerPort
	StatusDry  stdomain.RunnerPort
}

// Module implements the sync API module
type Module struct {
	deps   modkit.Deps
	name   string
	prefix string
	mws    []func(http.Handler) http.Handler
	ports  Ports

	subrouter func(httpkit.Router) httpkit.Router
	register  func(httpkit.Router)
}

// New constructs a sync module, requires WithPorts(Ports{...})
func New(deps modkit.Deps, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("sync"),
		modkit.WithPrefix("/sync"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok || ports.Monitor == nil || ports.Status == nil {
		panic("sync: module requires monitor and status runner ports")
	}
	if ports.MonitorDry == nil {
		ports.MonitorDry = ports.Monitor
	}
	if ports.StatusDry == nil {
		ports.StatusDry = ports.Status
	}

	m := &Module{
		deps:      deps,
		name:      b.Name,
		prefix:    b.Prefix,
		mws:       b.Mw,
		ports:     ports,
		subrouter: b.Subrouter,
	}

	external := b.Register
	m.register = func(r httpkit.Router) {
		synchttp.Register(r, synchttp.Deps{
			Monitor:    ports.Monitor,
			MonitorDry: ports.MonitorDry,
			Status:     ports.Status,
			StatusDry:  ports.StatusDry,
		})
		if external != nil {
			external(r)
		}
	}

	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	r.Route(m.prefix, func(rr httpkit.Router) {
		for _, mw := range m.mws {
			rr.Use(mw)
		}
		if m.subrouter != nil {
			rr = m.subrouter(rr)
		}
		if m.register != nil {
			m.register(rr)
		}
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return str.MustString(m.name, "sync") }

// Prefix implements the modkit.Module interface
func (m *Module) Prefix() string { return str.MustPrefix(m.prefix) }

// Middlewares implements the modkit.Module interface
func (m *Module) Middlewares() []func(http.Handler) http.Handler { return m.mws }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
