package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	perr "papersync/internal/platform/errors"
	phttp "papersync/internal/platform/net/http"
	mondomain "papersync/internal/services/monitor/domain"
	stdomain "papersync/internal/services/status/domain"
)

type fakeMonitor struct {
	sum mondomain.Summary
	err error
}

func (f fakeMonitor) Run(context.Context) (mondomain.Summary, error) { return f.sum, f.err }

type fakeStatus struct {
	sum stdomain.Summary
	err error
}

func (f fakeStatus) Run(context.Context) (stdomain.Summary, error) { return f.sum, f.err }

func serve(t *testing.T, d Deps, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	mux := chi.NewRouter()
	Register(phttp.AdaptChi(mux), d)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestMonitorEndpointReturnsSummary(t *testing.T) {
	d := Deps{
		Monitor:    fakeMonitor{sum: mondomain.Summary{RunID: "r1", Rows: 3, Created: 2, Skipped: 1}},
		MonitorDry: fakeMonitor{},
		Status:     fakeStatus{},
		StatusDry:  fakeStatus{},
	}
	rec := serve(t, d, stdhttp.MethodPost, "/monitor", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data mondomain.Summary `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Created != 2 || env.Data.RunID != "r1" {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestStatusEndpointReturnsSummary(t *testing.T) {
	d := Deps{
		Monitor:    fakeMonitor{},
		MonitorDry: fakeMonitor{},
		Status:     fakeStatus{sum: stdomain.Summary{RunID: "r2", Rows: 4, Changed: 1, Unchanged: 3}},
		StatusDry:  fakeStatus{},
	}
	rec := serve(t, d, stdhttp.MethodPost, "/status", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data stdomain.Summary `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Changed != 1 || env.Data.RunID != "r2" {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestDryRunBodySelectsDryRunner(t *testing.T) {
	d := Deps{
		Monitor:    fakeMonitor{sum: mondomain.Summary{RunID: "live"}},
		MonitorDry: fakeMonitor{sum: mondomain.Summary{RunID: "dry", DryRun: true}},
		Status:     fakeStatus{},
		StatusDry:  fakeStatus{},
	}
	rec := serve(t, d, stdhttp.MethodPost, "/monitor", `{"dry_run": true}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data mondomain.Summary `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.RunID != "dry" || !env.Data.DryRun {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestEmptyBodyRunsLive(t *testing.T) {
	d := Deps{
		Monitor:    fakeMonitor{},
		MonitorDry: fakeMonitor{},
		Status:     fakeStatus{sum: stdomain.Summary{RunID: "live"}},
		StatusDry:  fakeStatus{sum: stdomain.Summary{RunID: "dry", DryRun: true}},
	}
	rec := serve(t, d, stdhttp.MethodPost, "/status", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data stdomain.Summary `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.RunID != "live" || env.Data.DryRun {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestUnknownBodyFieldRejected(t *testing.T) {
	d := Deps{
		Monitor:    fakeMonitor{},
		MonitorDry: fakeMonitor{},
		Status:     fakeStatus{},
		StatusDry:  fakeStatus{},
	}
	rec := serve(t, d, stdhttp.MethodPost, "/monitor", `{"bogus": 1}`)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
}

func TestRunFailureMapsToErrorEnvelope(t *testing.T) {
	d := Deps{
		Monitor:    fakeMonitor{err: perr.Fetchf("sheet unreachable")},
		MonitorDry: fakeMonitor{},
		Status:     fakeStatus{},
		StatusDry:  fakeStatus{},
	}
	rec := serve(t, d, stdhttp.MethodPost, "/monitor", "")
	if rec.Code != stdhttp.StatusBadGateway {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Code != perr.ErrorCodeFetch {
		t.Fatalf("code = %v", env.Code)
	}
}
