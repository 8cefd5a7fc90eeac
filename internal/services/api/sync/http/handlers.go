// Package http provides http transport for the sync pipelines
package http

import (
	stdhttp "net/http"

	"papersync/internal/modkit/httpkit"
	mondomain "papersync/internal/services/monitor/domain"
	stdomain "papersync/internal/services/status/domain"
)

// Deps are the injected pipeline runners
// the Dry variants always run in dry-run mode
type Deps struct {
	Monitor    mondomain.RunnerPort
	MonitorDry mondomain.RunnerPort
	Status     stdomain.RunnerPort
	StatusDry  stdomain.RunnerPort
}

// RunRequest is the optional trigger body; an empty body means a live run
type RunRequest struct {
	DryRun bool `json:"dry_run"`
}

// Register mounts the sync routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}
	httpkit.PostJSONOptional[RunRequest](r, "/monitor", h.monitor)
	httpkit.PostJSONOptional[RunRequest](r, "/status", h.status)
}

type handlers struct{ deps Deps }

// monitor runs one monitor pass and returns its summary
func (h *handlers) monitor(r *stdhttp.Request, in RunRequest) (any, error) {
	runner := h.deps.Monitor
	if in.DryRun {
		runner = h.deps.MonitorDry
	}
	sum, err := runner.Run(r.Context())
	if err != nil {
		return nil, err
	}
	return sum, nil
}

// status runs one status pass and returns its summary
func (h *handlers) status(r *stdhttp.Request, in RunRequest) (any, error) {
	runner := h.deps.Status
	if in.DryRun {
		runner = h.deps.StatusDry
	}
	sum, err := runner.Run(r.Context())
	if err != nil {
		return nil, err
	}
	return sum, nil
}
