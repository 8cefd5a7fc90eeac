package http_test

import (
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	phttp "papersync/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestAdaptChi_RoutesAndGroups(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)

	phttp.GetJSON(r, "/ping", func(req *stdhttp.Request) (any, error) {
		return map[string]string{"pong": "ok"}, nil
	})

	r.Route("/api", func(sub phttp.Router) {
		type in struct {
			DryRun bool `json:"dry_run"`
		}
		phttp.PostJSON(sub, "/run", func(req *stdhttp.Request, body in) (any, error) {
			return map[string]bool{"dry_run": body.DryRun}, nil
		})
	})

	srv := httptest.NewServer(r.Mux())
	defer srv.Close()

	resp, err := stdhttp.Get(srv.URL + "/ping")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("GET /ping = %d", resp.StatusCode)
	}

	resp2, err := stdhttp.Post(srv.URL+"/api/run", "application/json", strings.NewReader(`{"dry_run":true}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != stdhttp.StatusOK {
		t.Fatalf("POST /api/run = %d", resp2.StatusCode)
	}
}

func TestMountProfiler_Disabled(t *testing.T) {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	phttp.MountProfiler(r, "/debug", false)

	srv := httptest.NewServer(r.Mux())
	defer srv.Close()

	resp, err := stdhttp.Get(srv.URL + "/debug/pprof/")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != stdhttp.StatusNotFound {
		t.Fatalf("disabled profiler should 404, got %d", resp.StatusCode)
	}
}
