package sheets

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	perr "papersync/internal/platform/errors"
)

func newFetcher(t *testing.T, h http.HandlerFunc) *HTTPFetcher {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	f := NewHTTPFetcher("sheet123", "0", time.Second)
	f.BaseURL = srv.URL
	return f
}

func TestFetchCSV_OK(t *testing.T) {
	var gotPath, gotQuery string
	f := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte("paper_id,status\nP1,pending\n"))
	})

	body, err := f.FetchCSV(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if body != "paper_id,status\nP1,pending\n" {
		t.Fatalf("body = %q", body)
	}
	if gotPath != "/spreadsheets/d/sheet123/export" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotQuery != "format=csv&gid=0" {
		t.Fatalf("query = %q", gotQuery)
	}
}

func TestFetchCSV_Non200(t *testing.T) {
	f := newFetcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	_, err := f.FetchCSV(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeFetch) {
		t.Fatalf("want fetch error, got %v", err)
	}
}

func TestFetchCSV_TransportError(t *testing.T) {
	f := NewHTTPFetcher("x", "", time.Second)
	f.BaseURL = "http://127.0.0.1:1" // nothing listens here
	_, err := f.FetchCSV(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeFetch) {
		t.Fatalf("want fetch error, got %v", err)
	}
}
